package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/config"
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/economy"
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/network"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

func newWorld() *World {
	return NewWorld(economy.New(config.Default()), zerolog.Nop(), rand.New(rand.NewSource(1)))
}

// probe records updates and handled events into a shared trace
type probe struct {
	name     string
	priority int
	trace    *[]string
	handles  []event.EventType
	onUpdate func()
}

func (p *probe) Name() string  { return p.name }
func (p *probe) Priority() int { return p.priority }

func (p *probe) Update() {
	*p.trace = append(*p.trace, p.name+".update")
	if p.onUpdate != nil {
		p.onUpdate()
	}
}

func (p *probe) EventTypes() []event.EventType { return p.handles }

func (p *probe) HandleEvent(ev event.GameEvent) {
	*p.trace = append(*p.trace, p.name+"."+ev.Type.String())
}

func TestWorld_SystemsRunInPriorityOrder(t *testing.T) {
	w := newWorld()
	var trace []string

	w.AddSystem(&probe{name: "late", priority: 30, trace: &trace})
	w.AddSystem(&probe{name: "early", priority: 10, trace: &trace})
	w.AddSystem(&probe{name: "mid-a", priority: 20, trace: &trace})
	w.AddSystem(&probe{name: "mid-b", priority: 20, trace: &trace})

	w.Step(16 * time.Millisecond)
	assert.Equal(t, []string{"early.update", "mid-a.update", "mid-b.update", "late.update"}, trace)
}

func TestWorld_EventsConsumedWithinTick(t *testing.T) {
	w := newWorld()
	var trace []string

	w.AddSystem(&probe{name: "producer", priority: 10, trace: &trace, onUpdate: func() {
		w.PushEvent(event.EventShotFired, nil)
	}})
	w.AddSystem(&probe{name: "consumer", priority: 20, trace: &trace, handles: []event.EventType{event.EventShotFired}})

	w.Step(16 * time.Millisecond)
	require.Len(t, trace, 3)
	assert.Equal(t, "producer.update", trace[0])
	assert.Equal(t, "consumer."+event.EventShotFired.String(), trace[1], "dispatched before the next system runs")
	assert.Equal(t, "consumer.update", trace[2])
}

func TestWorld_EventsPushedOutsideTickSettleFirst(t *testing.T) {
	w := newWorld()
	var trace []string
	w.AddSystem(&probe{name: "sys", priority: 10, trace: &trace, handles: []event.EventType{event.EventGameReset}})

	w.PushEvent(event.EventGameReset, nil)
	w.Step(16 * time.Millisecond)
	assert.Equal(t, []string{"sys." + event.EventGameReset.String(), "sys.update"}, trace)
}

func TestWorld_FlushDoesNotAdvanceTime(t *testing.T) {
	w := newWorld()
	var trace []string
	w.AddSystem(&probe{name: "sys", priority: 10, trace: &trace, handles: []event.EventType{event.EventPauseToggle}})

	w.PushEvent(event.EventPauseToggle, nil)
	w.Flush()
	assert.Equal(t, []string{"sys." + event.EventPauseToggle.String()}, trace)
	assert.Zero(t, w.Resources.Time.FrameNumber)
	assert.Zero(t, w.Resources.Time.GameTime)
}

func TestWorld_StepClampsDelta(t *testing.T) {
	w := newWorld()

	w.Step(5 * time.Second)
	assert.Equal(t, parameter.MaxFrameDelta, w.Resources.Time.DeltaTime)

	w.Step(-time.Second)
	assert.Zero(t, w.Resources.Time.DeltaTime)
	assert.Equal(t, parameter.MaxFrameDelta, w.Resources.Time.GameTime)
	assert.EqualValues(t, 2, w.Resources.Time.FrameNumber)
}

func TestEntityBuilder_BuildRecordsSpawn(t *testing.T) {
	w := newWorld()

	eb := w.NewEntity()
	With(eb, w.Components.Position, component.PositionComponent{Vec2: vmath.V2(3, 4)})
	With(eb, w.Components.Visual, component.VisualComponent{Hint: component.VisualCoin, Glyph: 'o'})
	With(eb, w.Components.Coin, component.CoinComponent{Value: 25})
	e := eb.Build()

	require.NotZero(t, e)
	assert.Equal(t, e, eb.Build(), "Build is idempotent")

	c, ok := w.Components.Coin.GetComponent(e)
	require.True(t, ok)
	assert.Equal(t, 25, c.Value)

	records := w.Resources.Spawns.Drain()
	require.Len(t, records, 1)
	assert.Equal(t, ActionSpawn, records[0].Action)
	assert.Equal(t, component.VisualCoin, records[0].Visual)
	assert.Equal(t, vmath.V2(3, 4), records[0].Pos)

	assert.Panics(t, func() {
		With(eb, w.Components.Coin, component.CoinComponent{})
	})
}

func TestWorld_DestroyRecordsDespawnAndClearsPlayer(t *testing.T) {
	w := newWorld()

	eb := w.NewEntity()
	With(eb, w.Components.Position, component.PositionComponent{Vec2: vmath.V2(1, 2)})
	With(eb, w.Components.Visual, component.VisualComponent{Hint: component.VisualPlayer})
	With(eb, w.Components.Player, component.PlayerComponent{})
	e := eb.Build()
	w.Resources.Player.Entity = e
	w.Resources.Spawns.Drain()

	pos, ok := w.PlayerPosition()
	require.True(t, ok)
	assert.Equal(t, vmath.V2(1, 2), pos)

	w.DestroyEntity(e)
	assert.False(t, w.Components.Position.HasEntity(e))
	assert.False(t, w.Components.Player.HasEntity(e))
	assert.Zero(t, w.Resources.Player.Entity)

	_, ok = w.PlayerPosition()
	assert.False(t, ok)

	records := w.Resources.Spawns.Drain()
	require.Len(t, records, 1)
	assert.Equal(t, ActionDespawn, records[0].Action)
}

func TestSpawnLog_DiscardsOldestOverLimit(t *testing.T) {
	l := NewSpawnLog(2)
	for e := core.Entity(1); e <= 3; e++ {
		l.append(SpawnRecord{Entity: e})
	}
	assert.Equal(t, 2, l.Len())

	records := l.Drain()
	require.Len(t, records, 2)
	assert.Equal(t, core.Entity(2), records[0].Entity)
	assert.Equal(t, core.Entity(3), records[1].Entity)
	assert.Zero(t, l.Len())
}

func TestStore_SwapRemoveKeepsIndex(t *testing.T) {
	s := NewStore[int]()
	s.SetComponent(1, 10)
	s.SetComponent(2, 20)
	s.SetComponent(3, 30)

	s.RemoveEntity(1)
	assert.Equal(t, 2, s.CountEntities())
	v, ok := s.GetComponent(3)
	require.True(t, ok)
	assert.Equal(t, 30, v)

	s.SetComponent(2, 21)
	v, _ = s.GetComponent(2)
	assert.Equal(t, 21, v)

	s.RemoveEntity(99)
	assert.ElementsMatch(t, []core.Entity{2, 3}, s.GetAllEntities())
}

func TestViewport_SetAspect(t *testing.T) {
	var v ViewportResource
	v.SetAspect(2)
	assert.Equal(t, 300.0, v.HalfHeight)
	assert.Equal(t, 600.0, v.HalfWidth)

	v.SetAspect(0)
	assert.InDelta(t, 300*parameter.DefaultAspect, v.HalfWidth, 1e-9)
}

type silentPlayer struct{}

func (silentPlayer) Play(core.SoundType) {}

type nopFeed struct{}

func (nopFeed) PublishHUD(network.HUDState)       {}
func (nopFeed) PublishEvent(network.EventNotice) {}

func TestResource_ServiceBridgeRoutesByInterface(t *testing.T) {
	w := newWorld()
	assert.Nil(t, w.Resources.Audio.Player)
	assert.Nil(t, w.Resources.Network.Feed)

	w.Resources.ServiceBridge(silentPlayer{})
	w.Resources.ServiceBridge(nopFeed{})
	w.Resources.ServiceBridge("ignored")

	assert.Equal(t, silentPlayer{}, w.Resources.Audio.Player)
	assert.Equal(t, nopFeed{}, w.Resources.Network.Feed)
}
