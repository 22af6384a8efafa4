package system

import (
	"math"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/config"
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/economy"
	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/input"
	"github.com/DanBellman/Wandern-to-kill-a-Box/network"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/registry"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

const tick = 16 * time.Millisecond

func newTestWorld(t *testing.T) *engine.World {
	t.Helper()
	econ := economy.New(config.Default())
	w := engine.NewWorld(econ, zerolog.Nop(), rand.New(rand.NewSource(1)))
	registry.Build(w)
	SpawnLevel(w)
	require.NotZero(t, w.Resources.Player.Entity)
	return w
}

func step(w *engine.World, frame input.Frame, n int) {
	for i := 0; i < n; i++ {
		w.Resources.Input.Frame = frame
		w.Step(tick)
	}
}

// stepUntil steps with frame until cond holds, at most max ticks
func stepUntil(w *engine.World, frame input.Frame, max int, cond func() bool) bool {
	for i := 0; i < max; i++ {
		w.Resources.Input.Frame = frame
		w.Step(tick)
		if cond() {
			return true
		}
	}
	return false
}

func counter(w *engine.World, key string) int64 {
	return w.Resources.Status.Ints.Get(key).Load()
}

func coinValues(w *engine.World) []int {
	var values []int
	for _, e := range w.Components.Coin.GetAllEntities() {
		c, _ := w.Components.Coin.GetComponent(e)
		values = append(values, c.Value)
	}
	return values
}

func targetEntity(t *testing.T, w *engine.World) core.Entity {
	t.Helper()
	targets := w.Components.Target.GetAllEntities()
	require.Len(t, targets, 1)
	return targets[0]
}

func movePlayer(w *engine.World, x float64) {
	e := w.Resources.Player.Entity
	w.Components.Position.SetComponent(e, component.PositionComponent{Vec2: vmath.V2(x, parameter.PlayerSpawnY)})
}

func aimAtTarget() input.Frame {
	return input.Frame{Aim: vmath.V2(parameter.TargetX, parameter.TargetY), AimValid: true}
}

func TestSystems_RegisteredInTickOrder(t *testing.T) {
	w := newTestWorld(t)

	var names []string
	for _, s := range w.Systems() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		"input", "shop", "weapon", "movement", "projectile", "coin",
		"collision", "combat", "economy", "timer", "broadcast", "audio",
	}, names)
}

func TestCombat_NormalHitSpawnsFourCoins(t *testing.T) {
	w := newTestWorld(t)

	fire := aimAtTarget()
	fire.FirePressed = true
	step(w, fire, 1)
	require.Equal(t, 1, w.Components.Projectile.CountEntities())

	hit := stepUntil(w, aimAtTarget(), 60, func() bool { return counter(w, "combat.hits") == 1 })
	require.True(t, hit, "projectile never reached the target")

	assert.Equal(t, []int{25, 25, 25, 25}, coinValues(w))
	assert.Zero(t, w.Components.Projectile.CountEntities(), "hit consumes the projectile")
	assert.EqualValues(t, 4, counter(w, "coin.spawned"))
	assert.EqualValues(t, 100, counter(w, "coin.value_spawned"))
}

func TestCombat_BazookaRewardConservation(t *testing.T) {
	w := newTestWorld(t)
	w.Resources.Economy.Restore(economy.State{
		OwnedWeapons:  []string{"Normal", "Bazooka"},
		CurrentWeapon: "Bazooka",
	})

	fire := aimAtTarget()
	fire.FirePressed = true
	step(w, fire, 1)
	require.True(t, stepUntil(w, aimAtTarget(), 60, func() bool { return counter(w, "combat.hits") == 1 }))

	values := coinValues(w)
	require.Len(t, values, 40)
	sum := 0
	for _, v := range values {
		assert.Equal(t, 10, v)
		sum += v
	}
	assert.Equal(t, 400, sum)
}

func TestCombat_CoinsSpawnInsideBounds(t *testing.T) {
	w := newTestWorld(t)
	w.Resources.Viewport.SetAspect(0.2) // Half-width 60, narrower than the scatter
	target := targetEntity(t, w)

	c := &CombatSystem{world: w}
	c.statSpawned = w.Resources.Status.Ints.Get("x.spawned")
	c.statValue = w.Resources.Status.Ints.Get("x.value")
	c.burst(target, component.WeaponBazooka, component.HitRewards[component.WeaponBazooka], false)

	half := parameter.CoinSize / 2
	for _, e := range w.Components.Coin.GetAllEntities() {
		p, _ := w.Components.Position.GetComponent(e)
		assert.LessOrEqual(t, p.X, 60-half)
		assert.GreaterOrEqual(t, p.X, -60+half)
		assert.GreaterOrEqual(t, p.Y, parameter.GroundTop+half)
	}
}

func TestCombat_CooldownBlocksSameEpisodeHits(t *testing.T) {
	w := newTestWorld(t)

	// Two shots entering the target on the same tick
	origin := vmath.V2(parameter.TargetX, parameter.TargetY-parameter.TargetSize/2-10)
	spawnProjectile(w, component.WeaponNormal, origin, vmath.V2(0, 1))
	spawnProjectile(w, component.WeaponNormal, origin, vmath.V2(0, 1))

	step(w, input.Frame{}, 1)
	assert.EqualValues(t, 1, counter(w, "combat.hits"))
	assert.Equal(t, 1, w.Components.Projectile.CountEntities(), "second shot passes through")

	step(w, input.Frame{}, 20)
	assert.EqualValues(t, 1, counter(w, "combat.hits"), "a contact episode credits at most once")
	assert.EqualValues(t, 4, counter(w, "coin.spawned"))
}

func TestCombat_CooldownExpires(t *testing.T) {
	w := newTestWorld(t)
	origin := vmath.V2(parameter.TargetX, parameter.TargetY-parameter.TargetSize/2-10)

	spawnProjectile(w, component.WeaponNormal, origin, vmath.V2(0, 1))
	step(w, input.Frame{}, 1)
	require.EqualValues(t, 1, counter(w, "combat.hits"))

	// Past the cooldown a new episode credits again
	step(w, input.Frame{}, int(parameter.HitCooldown/tick)+1)
	spawnProjectile(w, component.WeaponNormal, origin, vmath.V2(0, 1))
	step(w, input.Frame{}, 1)
	assert.EqualValues(t, 2, counter(w, "combat.hits"))
}

func TestCombat_BeamCreditsOnCadence(t *testing.T) {
	w := newTestWorld(t)
	w.Resources.Economy.Restore(economy.State{
		OwnedWeapons:  []string{"Normal", "LaserBeam"},
		CurrentWeapon: "LaserBeam",
	})

	hold := aimAtTarget()
	hold.FireHeld = true

	// 18 ticks = 288ms, below the interval
	step(w, hold, 18)
	assert.EqualValues(t, 0, counter(w, "combat.beam_ticks"))
	assert.Equal(t, 1, w.Components.Beam.CountEntities(), "exactly one beam while held")

	step(w, hold, 1)
	assert.EqualValues(t, 1, counter(w, "combat.beam_ticks"))
	assert.Equal(t, []int{24, 24, 24, 24, 24}, coinValues(w))

	target := targetEntity(t, w)
	tc, _ := w.Components.Target.GetComponent(target)
	assert.Zero(t, tc.BeamTimer, "timer resets on credit")
	assert.True(t, tc.Beamed)

	step(w, input.Frame{}, 1)
	assert.Zero(t, w.Components.Beam.CountEntities(), "released beam is removed")
	tc, _ = w.Components.Target.GetComponent(target)
	assert.False(t, tc.Beamed)
}

func TestCombat_BeamDisengageDropsPartialCredit(t *testing.T) {
	w := newTestWorld(t)
	w.Resources.Economy.Restore(economy.State{
		OwnedWeapons:  []string{"Normal", "LaserBeam"},
		CurrentWeapon: "LaserBeam",
	})

	hold := aimAtTarget()
	hold.FireHeld = true

	step(w, hold, 15)
	step(w, input.Frame{}, 1)
	step(w, hold, 15)
	assert.EqualValues(t, 0, counter(w, "combat.beam_ticks"))
}

func TestCombat_BeamAimedAwayMisses(t *testing.T) {
	w := newTestWorld(t)
	w.Resources.Economy.Restore(economy.State{
		OwnedWeapons:  []string{"Normal", "LaserBeam"},
		CurrentWeapon: "LaserBeam",
	})

	// Pointing straight down-left puts the beam centre far from the target
	hold := input.Frame{FireHeld: true, Aim: vmath.V2(-500, -600), AimValid: true}
	step(w, hold, 40)
	assert.EqualValues(t, 0, counter(w, "combat.beam_ticks"))
}

func TestCoin_LandsOnGround(t *testing.T) {
	w := newTestWorld(t)
	coin := spawnCoin(w, vmath.V2(200, -100), 25)

	landed := stepUntil(w, input.Frame{}, 120, func() bool {
		c, _ := w.Components.Coin.GetComponent(coin)
		return c.Landed
	})
	require.True(t, landed)

	p, _ := w.Components.Position.GetComponent(coin)
	assert.InDelta(t, parameter.GroundTop+parameter.CoinSize/2, p.Y, 1e-9)
	assert.False(t, w.Components.Kinetic.HasEntity(coin), "landed coins have no physics")

	step(w, input.Frame{}, 10)
	p2, _ := w.Components.Position.GetComponent(coin)
	assert.Equal(t, p, p2)
}

func TestCoin_AbsorbedOnContact(t *testing.T) {
	w := newTestWorld(t)
	econ := w.Resources.Economy
	spawnCoin(w, vmath.V2(0, parameter.PlayerSpawnY), 25)

	step(w, input.Frame{}, 1)
	assert.Zero(t, w.Components.Coin.CountEntities())
	assert.Equal(t, 25, econ.Wallet.Balance())
	assert.Greater(t, econ.Buffer.Current(), 0.9)
}

func TestCoin_RejectedWhileFullThenRetried(t *testing.T) {
	w := newTestWorld(t)
	econ := w.Resources.Economy
	for !econ.Buffer.Full() {
		require.True(t, econ.Buffer.TryAbsorb(0, econ.Wallet))
	}
	require.Zero(t, econ.Wallet.Balance())

	coin := spawnCoin(w, vmath.V2(0, parameter.PlayerSpawnY), 25)

	step(w, input.Frame{}, 1)
	assert.True(t, w.Components.Coin.HasEntity(coin), "rejected coin stays in the world")
	assert.Zero(t, econ.Wallet.Balance())
	assert.EqualValues(t, 1, counter(w, "coin.rejected"))

	// Drain freed room; the still-touching coin is absorbed without a new contact
	step(w, input.Frame{}, 1)
	assert.False(t, w.Components.Coin.HasEntity(coin))
	assert.Equal(t, 25, econ.Wallet.Balance())
	assert.EqualValues(t, 1, counter(w, "coin.rejected"))
	assert.LessOrEqual(t, econ.Buffer.Current(), econ.Buffer.Capacity())
}

func TestWeapon_SpreadFiresThree(t *testing.T) {
	w := newTestWorld(t)
	w.Resources.Economy.Restore(economy.State{
		OwnedWeapons:  []string{"Normal", "SpreadShot"},
		CurrentWeapon: "SpreadShot",
	})

	fire := aimAtTarget()
	fire.FirePressed = true
	step(w, fire, 1)
	require.Equal(t, 3, w.Components.Projectile.CountEntities())

	// Aimed straight up: side shots lean by the spread angle
	var xs []float64
	for _, e := range w.Components.Projectile.GetAllEntities() {
		k, _ := w.Components.Kinetic.GetComponent(e)
		assert.InDelta(t, 800, vmath.V2Mag(k.Vel), 1e-6)
		xs = append(xs, k.Vel.X)
	}
	sort.Float64s(xs)
	side := 800 * math.Sin(parameter.SpreadAngle)
	assert.InDelta(t, -side, xs[0], 1e-6)
	assert.InDelta(t, 0, xs[1], 1e-6)
	assert.InDelta(t, side, xs[2], 1e-6)
	assert.EqualValues(t, 3, counter(w, "weapon.shots"))
}

func TestWeapon_FireIsEdgeTriggered(t *testing.T) {
	w := newTestWorld(t)

	held := aimAtTarget()
	held.FireHeld = true
	step(w, held, 5)
	assert.Zero(t, w.Components.Projectile.CountEntities(), "holding a discrete weapon does not fire")

	noAim := input.Frame{FirePressed: true}
	step(w, noAim, 1)
	assert.Zero(t, w.Components.Projectile.CountEntities(), "no aim, no shot")
}

func TestWeapon_CycleThroughOwned(t *testing.T) {
	w := newTestWorld(t)
	ledger := w.Resources.Economy.Ledger
	ledger.Grant(economy.WeaponItem(component.WeaponSniper))
	ledger.Grant(economy.WeaponItem(component.WeaponHammer))

	cycle := input.Frame{CycleWeapon: true}
	var seen []component.WeaponKind
	for i := 0; i < 4; i++ {
		step(w, cycle, 1)
		seen = append(seen, w.Resources.Economy.Ledger.CurrentWeapon())
	}
	assert.Equal(t, []component.WeaponKind{
		component.WeaponSniper, component.WeaponHammer, component.WeaponNormal, component.WeaponSniper,
	}, seen)
}

func TestWeapon_SwitchAwayStopsBeam(t *testing.T) {
	w := newTestWorld(t)
	w.Resources.Economy.Restore(economy.State{
		OwnedWeapons:  []string{"Normal", "LaserBeam"},
		CurrentWeapon: "LaserBeam",
	})

	hold := aimAtTarget()
	hold.FireHeld = true
	step(w, hold, 3)
	require.Equal(t, 1, w.Components.Beam.CountEntities())

	hold.CycleWeapon = true
	step(w, hold, 1)
	hold.CycleWeapon = false
	step(w, hold, 1)
	assert.Equal(t, component.WeaponNormal, w.Resources.Economy.Ledger.CurrentWeapon())
	assert.Zero(t, w.Components.Beam.CountEntities())
}

type recordingFeed struct {
	huds    []network.HUDState
	notices []network.EventNotice
}

func (f *recordingFeed) PublishHUD(s network.HUDState)      { f.huds = append(f.huds, s) }
func (f *recordingFeed) PublishEvent(n network.EventNotice) { f.notices = append(f.notices, n) }

type recordingPlayer struct {
	played []core.SoundType
}

func (p *recordingPlayer) Play(s core.SoundType) { p.played = append(p.played, s) }

func TestBroadcast_ThrottlesHUD(t *testing.T) {
	w := newTestWorld(t)
	feed := &recordingFeed{}
	w.Resources.ServiceBridge(feed)

	step(w, input.Frame{}, 1)
	assert.Len(t, feed.huds, 1, "first tick publishes")

	step(w, input.Frame{}, 6)
	assert.Len(t, feed.huds, 1)

	step(w, input.Frame{}, 1)
	assert.Len(t, feed.huds, 2)
	assert.Equal(t, "00:00", feed.huds[1].Elapsed)
	assert.Equal(t, "Normal", feed.huds[1].Weapon)
}

func TestAudio_CuesFollowEvents(t *testing.T) {
	w := newTestWorld(t)
	player := &recordingPlayer{}
	w.Resources.ServiceBridge(player)

	fire := aimAtTarget()
	fire.FirePressed = true
	step(w, fire, 1)
	require.True(t, stepUntil(w, aimAtTarget(), 60, func() bool { return counter(w, "combat.hits") == 1 }))

	assert.Contains(t, player.played, core.SoundFire)
	assert.Contains(t, player.played, core.SoundHit)
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00", FormatElapsed(0))
	assert.Equal(t, "01:05", FormatElapsed(65*time.Second+900*time.Millisecond))
	assert.Equal(t, "61:01", FormatElapsed(time.Hour+61*time.Second))
	assert.Equal(t, "00:00", FormatElapsed(-time.Second))
}

func spawnLandedCoin(w *engine.World, x float64, value int) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Position, component.PositionComponent{Vec2: vmath.V2(x, parameter.GroundTop+parameter.CoinSize/2)})
	engine.With(eb, w.Components.Coin, component.CoinComponent{Value: value, Landed: true})
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		HalfW: parameter.CoinSize / 2,
		HalfH: parameter.CoinSize / 2,
		Layer: component.LayerCoin,
	})
	return eb.Build()
}

func fillBuffer(t *testing.T, w *engine.World) {
	econ := w.Resources.Economy
	for !econ.Buffer.Full() {
		require.True(t, econ.Buffer.TryAbsorb(0, econ.Wallet))
	}
}

func TestCoin_CoveredByPlayerIsCollectedOnceRoomFrees(t *testing.T) {
	w := newTestWorld(t)
	econ := w.Resources.Economy
	fillBuffer(t, w)

	// Centred under the player: the coin box lies entirely inside the player box
	coin := spawnLandedCoin(w, 0, 25)
	for i := 0; i < 60; i++ {
		fillBuffer(t, w)
		step(w, input.Frame{}, 1)
	}
	require.True(t, w.Components.Coin.HasEntity(coin))
	assert.EqualValues(t, 1, counter(w, "coin.rejected"), "one rejection per contact")

	step(w, input.Frame{}, 1)
	assert.False(t, w.Components.Coin.HasEntity(coin))
	assert.Equal(t, 25, econ.Wallet.Balance())
}

func TestCoin_FallingIntoStandingPlayerIsAbsorbed(t *testing.T) {
	w := newTestWorld(t)
	coin := spawnCoin(w, vmath.V2(0, parameter.PlayerSpawnY+4), 10)

	step(w, input.Frame{}, 1)
	assert.False(t, w.Components.Coin.HasEntity(coin))
	assert.Equal(t, 10, w.Resources.Economy.Wallet.Balance())
}

func TestCollision_LandedCoinsStopTouchingGround(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 50; i++ {
		spawnLandedCoin(w, 100+float64(i)*5, 1)
	}

	begins := counter(w, "collision.begins")
	step(w, input.Frame{}, 3)
	assert.Equal(t, begins, counter(w, "collision.begins"), "resting coins raise no ground contacts")
}

func TestCollision_ContactBurstDoesNotOverflowQueue(t *testing.T) {
	w := newTestWorld(t)
	movePlayer(w, parameter.WeaponShopX)
	fillBuffer(t, w)

	n := parameter.EventQueueSize + 100
	for i := 0; i < n; i++ {
		spawnLandedCoin(w, parameter.WeaponShopX, 1)
	}

	fillBuffer(t, w)
	step(w, input.Frame{}, 1)

	assert.Zero(t, w.DroppedEvents())
	assert.Equal(t, economy.ProximityWeapon, w.Resources.Economy.Shop.Proximity)
	assert.EqualValues(t, n, counter(w, "coin.rejected"))
}
