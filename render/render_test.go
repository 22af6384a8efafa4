package render

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/config"
	"github.com/DanBellman/Wandern-to-kill-a-Box/economy"
	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/network"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/system"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, scr.Init())
	scr.SetSize(w, h)
	t.Cleanup(scr.Fini)
	return scr
}

func row(scr tcell.Screen, y int) string {
	w, _ := scr.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := scr.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(scr tcell.Screen) string {
	_, h := scr.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = row(scr, y)
	}
	return strings.Join(rows, "\n")
}

func newLevel() *engine.World {
	w := engine.NewWorld(economy.New(config.Default()), zerolog.Nop(), rand.New(rand.NewSource(1)))
	system.SpawnLevel(w)
	return w
}

func TestCamera_RoundTrip(t *testing.T) {
	cam := NewCamera(80, 24)
	assert.InDelta(t, 80.0/48.0, cam.Aspect(), 1e-9)

	for _, cell := range [][2]int{{0, 0}, {40, 12}, {79, 23}} {
		p := cam.ScreenToWorld(cell[0], cell[1])
		x, y, ok := cam.WorldToScreen(p)
		require.True(t, ok)
		assert.Equal(t, cell, [2]int{x, y})
	}

	x, y, ok := cam.WorldToScreen(vmath.V2(0, 0))
	assert.True(t, ok)
	assert.Equal(t, 40, x)
	assert.Equal(t, 12, y)

	_, _, ok = cam.WorldToScreen(vmath.V2(0, 400))
	assert.False(t, ok, "above the viewport")
}

func TestCamera_RectClipped(t *testing.T) {
	cam := NewCamera(80, 24)
	x0, y0, x1, y1 := cam.Rect(vmath.V2(0, parameter.GroundY), parameter.GroundWidth/2, parameter.GroundHeight/2)
	assert.Equal(t, 0, x0)
	assert.Equal(t, 79, x1)
	assert.LessOrEqual(t, y0, y1)
	assert.Less(t, y1, 24)
}

type stamp struct {
	r       rune
	x       int
	visible bool
}

func (s *stamp) Render(ctx Context, scr tcell.Screen) { scr.SetContent(s.x, 0, s.r, nil, styleDefault) }
func (s *stamp) IsVisible() bool                      { return s.visible }

func TestOrchestrator_PriorityAndVisibility(t *testing.T) {
	scr := newScreen(t, 10, 2)
	o := NewOrchestrator(scr)

	o.Register(&stamp{r: 'b', x: 0, visible: true}, PriorityHUD)
	o.Register(&stamp{r: 'a', x: 0, visible: true}, PriorityWorld)
	o.Register(&stamp{r: 'h', x: 1, visible: false}, PriorityDebug)

	o.RenderFrame(Context{Camera: o.Camera()})
	assert.Equal(t, "b", strings.TrimSpace(row(scr, 0)), "later priority draws over earlier; hidden layers skipped")
}

func TestWorldRenderer_DrawsLevel(t *testing.T) {
	w := newLevel()
	scr := newScreen(t, 80, 24)
	cam := NewCamera(80, 24)

	NewWorldRenderer(w).Render(Context{Camera: cam}, scr)

	pos, ok := w.PlayerPosition()
	require.True(t, ok)
	x, y, ok := cam.WorldToScreen(pos)
	require.True(t, ok)
	r, _, _, _ := scr.GetContent(x, y)
	assert.Equal(t, '@', r)

	tx, ty, _ := cam.WorldToScreen(vmath.V2(parameter.TargetX, parameter.TargetY))
	r, _, _, _ = scr.GetContent(tx, ty)
	assert.Equal(t, '#', r)

	text := screenText(scr)
	assert.Contains(t, text, "WEAPONS")
	assert.Contains(t, text, "UPGRADES")
}

func TestWorldRenderer_DrawsBeam(t *testing.T) {
	w := newLevel()
	origin, _ := w.PlayerPosition()
	dir := vmath.V2(0, 1)

	eb := w.NewEntity()
	engine.With(eb, w.Components.Position, component.PositionComponent{Vec2: vmath.V2Add(origin, vmath.V2Scale(dir, 300))})
	engine.With(eb, w.Components.Beam, component.BeamComponent{
		Weapon: component.WeaponLaserBeam,
		Dir:    dir,
		Center: vmath.V2Add(origin, vmath.V2Scale(dir, 300)),
		Length: parameter.BeamLength,
	})
	engine.With(eb, w.Components.Visual, component.VisualComponent{Hint: component.VisualBeam, Glyph: '|'})
	eb.Build()

	scr := newScreen(t, 80, 24)
	cam := NewCamera(80, 24)
	NewWorldRenderer(w).Render(Context{Camera: cam}, scr)

	x, y, _ := cam.WorldToScreen(vmath.V2(0, 200))
	r, _, _, _ := scr.GetContent(x, y)
	assert.Equal(t, '|', r)
}

func TestHUDRenderer(t *testing.T) {
	scr := newScreen(t, 100, 10)
	NewHUDRenderer().Render(Context{HUD: network.HUDState{
		Currency:      1234,
		BufferCurrent: 15,
		BufferMax:     30,
		BufferPercent: 0.5,
		Weapon:        "Sniper",
		Elapsed:       "01:05",
		Paused:        true,
	}}, scr)

	top := row(scr, 0)
	assert.Contains(t, top, "$ 1234")
	assert.Contains(t, top, "[##########----------]")
	assert.Contains(t, top, "15/30")
	assert.Contains(t, top, "Weapon: Sniper")
	assert.True(t, strings.HasSuffix(strings.TrimRight(top, " "), "01:05"))
	assert.Contains(t, row(scr, 5), "PAUSED")
}

func TestBufferBar(t *testing.T) {
	assert.Equal(t, "[----]", BufferBar(0, 4))
	assert.Equal(t, "[##--]", BufferBar(0.5, 4))
	assert.Equal(t, "[####]", BufferBar(2, 4))
	assert.Equal(t, "[----]", BufferBar(-1, 4))
}

func TestShopRenderer(t *testing.T) {
	econ := economy.New(config.Default())
	econ.Restore(economy.State{Currency: 600, OwnedWeapons: []string{"Normal", "RapidFire"}})
	scr := newScreen(t, 80, 24)
	r := NewShopRenderer(econ)

	r.Render(Context{}, scr)
	assert.NotContains(t, screenText(scr), "SHOP", "nothing away from shops")

	econ.Shop.Enter(component.ShopWeapon)
	r.Render(Context{}, scr)
	assert.Contains(t, screenText(scr), "Press E to open the WEAPON shop")

	require.True(t, econ.Shop.ToggleUI())
	scr.Clear()
	r.Render(Context{}, scr)
	text := screenText(scr)
	assert.Contains(t, text, "WEAPON SHOP")
	assert.Contains(t, text, "RapidFire")
	assert.Contains(t, text, "owned")
	assert.Contains(t, text, "Uzi")
}

func TestOfferLine(t *testing.T) {
	assert.Equal(t, "3  BufferUpgrade 1/10     600  buy", OfferLine(economy.Offer{
		Slot: 3, Item: economy.UpgradeItem(component.UpgradeBuffer), Cost: 600, Level: 1, Max: 10,
	}))
	assert.Equal(t, "2  CoinMagnet           maxed", OfferLine(economy.Offer{
		Slot: 2, Item: economy.UpgradeItem(component.UpgradeCoinMagnet), Cost: 600, Level: 1, Max: 1, State: economy.OfferMaxed,
	}))
	assert.Contains(t, OfferLine(economy.Offer{
		Slot: 7, Item: economy.WeaponItem(component.WeaponBazooka), Cost: 5000, State: economy.OfferTooExpensive,
	}), "too expensive")
}

type countingFeed struct{ huds, events int }

func (f *countingFeed) PublishHUD(network.HUDState)       { f.huds++ }
func (f *countingFeed) PublishEvent(network.EventNotice) { f.events++ }

func TestNotices(t *testing.T) {
	next := &countingFeed{}
	n := NewNotices(next)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n.now = func() time.Time { return now }

	n.PublishEvent(network.EventNotice{Name: "ProximityChanged", Detail: "None"})
	_, ok := n.Current(now)
	assert.False(t, ok, "proximity is not shown as a message")

	n.PublishEvent(network.EventNotice{Name: "PurchaseRejected", Detail: "Not enough money"})
	text, warn := n.Current(now.Add(time.Second))
	assert.Equal(t, "Not enough money", text)
	assert.True(t, warn)

	n.PublishEvent(network.EventNotice{Name: "SessionSaved", Detail: "quicksave"})
	text, warn = n.Current(now)
	assert.Equal(t, "Saved to Quick Save", text)
	assert.False(t, warn)

	text, _ = n.Current(now.Add(parameter.MessageDuration + time.Millisecond))
	assert.Empty(t, text)

	n.PublishHUD(network.HUDState{})
	assert.Equal(t, 3, next.events, "every notice is forwarded")
	assert.Equal(t, 1, next.huds)
}

func TestDebugLine(t *testing.T) {
	line := DebugLine(map[string]float64{
		"zeta":         1,
		"combat.hits":  3,
		"weapon.shots": 4,
		"alpha":        2.5,
	})
	assert.Equal(t, "weapon.shots=4 combat.hits=3 alpha=2.5 zeta=1", line)
}
