package system

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/physics"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

// MovementSystem applies upgrade multipliers to player movement and the coin magnet
// Movement is one-dimensional; the player's y never changes
type MovementSystem struct {
	world *engine.World

	enabled bool
}

func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *MovementSystem) Init() {
	s.enabled = true
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *MovementSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *MovementSystem) Update() {
	if !s.enabled {
		return
	}

	e := s.world.Resources.Player.Entity
	if e == 0 {
		return
	}
	player, ok := s.world.Components.Player.GetComponent(e)
	if !ok {
		return
	}
	pos, ok := s.world.Components.Position.GetComponent(e)
	if !ok {
		return
	}

	econ := s.world.Resources.Economy
	dt := s.world.Resources.Time.DeltaTime.Seconds()

	speed := player.BaseSpeed * econ.SpeedMultiplier()
	pos.X += speed * player.Intent * dt
	pos.X = physics.ClampX(pos.X, s.world.Resources.Viewport.HalfWidth, parameter.PlayerBoundsMargin)
	s.world.Components.Position.SetComponent(e, pos)

	if econ.MagnetActive() {
		s.applyMagnet(pos.Vec2, dt)
	}
}

// applyMagnet biases airborne coin velocity toward the player; landed coins are at rest
func (s *MovementSystem) applyMagnet(player vmath.Vec2, dt float64) {
	positions := s.world.Components.Position
	kinetics := s.world.Components.Kinetic
	for _, c := range s.world.Components.Coin.GetAllEntities() {
		k, ok := kinetics.GetComponent(c)
		if !ok {
			continue
		}
		p, ok := positions.GetComponent(c)
		if !ok {
			continue
		}
		bias, ok := physics.MagnetPull(p.Vec2, player, &physics.CoinMagnet, dt)
		if !ok {
			continue
		}
		physics.ApplyImpulse(&k, bias)
		kinetics.SetComponent(c, k)
	}
}
