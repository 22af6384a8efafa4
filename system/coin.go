package system

import (
	"sync/atomic"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/physics"
)

// CoinSystem runs pickup physics, landing and absorption into the collection buffer
// A pickup rejected by a full buffer stays in the world; absorption is retried every tick
// while its contact with the player lasts
type CoinSystem struct {
	world *engine.World

	// pending holds coins touching the player that the buffer rejected
	pending map[core.Entity]struct{}

	// Telemetry
	statAbsorbed *atomic.Int64
	statRejected *atomic.Int64
	statLive     *atomic.Int64

	enabled bool
}

func NewCoinSystem(world *engine.World) engine.System {
	s := &CoinSystem{
		world: world,
	}

	s.statAbsorbed = world.Resources.Status.Ints.Get("coin.absorbed")
	s.statRejected = world.Resources.Status.Ints.Get("coin.rejected")
	s.statLive = world.Resources.Status.Ints.Get("coin.live")

	s.Init()
	return s
}

func (s *CoinSystem) Init() {
	s.pending = make(map[core.Entity]struct{})
	s.statAbsorbed.Store(0)
	s.statRejected.Store(0)
	s.statLive.Store(0)
	s.enabled = true
}

func (s *CoinSystem) Name() string {
	return "coin"
}

func (s *CoinSystem) Priority() int {
	return parameter.PriorityCoin
}

func (s *CoinSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCollisionBegin,
		event.EventCollisionEnd,
		event.EventGameReset,
	}
}

func (s *CoinSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	payload, ok := ev.Payload.(*event.CollisionPayload)
	if !ok {
		return
	}

	switch ev.Type {
	case event.EventCollisionBegin:
		if _, coin, ok := payload.Pair(component.LayerPlayer, component.LayerCoin); ok {
			if !s.absorb(coin) {
				s.pending[coin] = struct{}{}
			}
			return
		}
		if coin, _, ok := payload.Pair(component.LayerCoin, component.LayerGround); ok {
			s.land(coin)
		}

	case event.EventCollisionEnd:
		if _, coin, ok := payload.Pair(component.LayerPlayer, component.LayerCoin); ok {
			delete(s.pending, coin)
		}
	}
}

func (s *CoinSystem) Update() {
	if !s.enabled {
		return
	}

	// Contacts that persist get another chance once the buffer has drained
	for coin := range s.pending {
		if !s.world.Components.Coin.HasEntity(coin) {
			delete(s.pending, coin)
			continue
		}
		if s.absorbQuiet(coin) {
			delete(s.pending, coin)
		}
	}

	dt := s.world.Resources.Time.DeltaTime.Seconds()
	half := parameter.CoinSize / 2
	halfWidth := s.world.Resources.Viewport.HalfWidth

	coins := s.world.Components.Coin.GetAllEntities()
	for _, e := range coins {
		c, _ := s.world.Components.Coin.GetComponent(e)
		if c.Landed {
			continue
		}
		k, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		pos, ok := s.world.Components.Position.GetComponent(e)
		if !ok {
			continue
		}

		physics.Integrate(&pos.Vec2, &k, dt)
		pos.X = physics.ClampX(pos.X, halfWidth, half)
		s.world.Components.Position.SetComponent(e, pos)
		s.world.Components.Kinetic.SetComponent(e, k)

		if pos.Y-half <= parameter.GroundTop {
			s.land(e)
		}
	}
	s.statLive.Store(int64(s.world.Components.Coin.CountEntities()))
}

// land rests a coin on the ground and stops its physics; repeated calls are no-ops
func (s *CoinSystem) land(e core.Entity) {
	c, ok := s.world.Components.Coin.GetComponent(e)
	if !ok || c.Landed {
		return
	}
	c.Landed = true
	s.world.Components.Coin.SetComponent(e, c)
	s.world.Components.Kinetic.RemoveEntity(e)

	if pos, ok := s.world.Components.Position.GetComponent(e); ok {
		pos.Y = physics.RestOn(parameter.GroundTop, parameter.CoinSize/2)
		s.world.Components.Position.SetComponent(e, pos)
	}
	s.world.PushEvent(event.EventCoinLanded, &event.CoinPayload{Coin: e, Value: c.Value})
}

// absorb converts a coin into currency; a rejection is reported once per contact
func (s *CoinSystem) absorb(e core.Entity) bool {
	if s.absorbQuiet(e) {
		return true
	}
	c, ok := s.world.Components.Coin.GetComponent(e)
	if !ok {
		return true
	}

	s.statRejected.Add(1)
	buf := s.world.Resources.Economy.Buffer
	s.world.Resources.Log.Debug().
		Float64("buffer", buf.Current()).
		Float64("capacity", buf.Capacity()).
		Msg("buffer full, pickup left in world")
	s.world.PushEvent(event.EventCoinRejected, &event.CoinPayload{Coin: e, Value: c.Value})
	return false
}

func (s *CoinSystem) absorbQuiet(e core.Entity) bool {
	c, ok := s.world.Components.Coin.GetComponent(e)
	if !ok {
		// Already gone; nothing left to retry
		return true
	}

	econ := s.world.Resources.Economy
	if !econ.Buffer.TryAbsorb(c.Value, econ.Wallet) {
		return false
	}

	s.world.DestroyEntity(e)
	s.statAbsorbed.Add(1)
	s.world.PushEvent(event.EventCoinAbsorbed, &event.CoinPayload{Coin: e, Value: c.Value})
	return true
}
