package system

import (
	"sync/atomic"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

// WeaponSystem turns fire intent into projectiles or the beam, and cycles the equipped weapon
//
// Discrete kinds fire on the press edge: Idle -> Firing -> Idle within one tick
// LaserBeam is level-triggered: Idle <-> Beaming while fire is held
type WeaponSystem struct {
	world *engine.World

	// beam is the live beam entity, zero when Idle
	beam core.Entity

	// Telemetry
	statShots *atomic.Int64
	statBeam  *atomic.Int64

	enabled bool
}

func NewWeaponSystem(world *engine.World) engine.System {
	s := &WeaponSystem{
		world: world,
	}

	s.statShots = world.Resources.Status.Ints.Get("weapon.shots")
	s.statBeam = world.Resources.Status.Ints.Get("weapon.beaming")

	s.Init()
	return s
}

func (s *WeaponSystem) Init() {
	s.stopBeam(false)
	s.statShots.Store(0)
	s.statBeam.Store(0)
	s.enabled = true
}

func (s *WeaponSystem) Name() string {
	return "weapon"
}

func (s *WeaponSystem) Priority() int {
	return parameter.PriorityWeapon
}

func (s *WeaponSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWeaponCycleRequest,
		event.EventGameReset,
	}
}

func (s *WeaponSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	if ev.Type == event.EventWeaponCycleRequest {
		ledger := s.world.Resources.Economy.Ledger
		before := ledger.CurrentWeapon()
		next := ledger.CycleWeapon()
		if next != before {
			s.world.PushEvent(event.EventWeaponChanged, &event.WeaponChangedPayload{Weapon: next})
		}
	}
}

func (s *WeaponSystem) Update() {
	if !s.enabled {
		return
	}

	origin, ok := s.world.PlayerPosition()
	if !ok {
		s.stopBeam(true)
		return
	}

	frame := &s.world.Resources.Input.Frame
	kind := s.world.Resources.Economy.Ledger.CurrentWeapon()
	profile := &component.WeaponProfiles[kind]

	if profile.Mode == component.FireBeam {
		if frame.FireHeld && frame.AimValid {
			s.holdBeam(kind, origin, aimDirection(origin, frame.Aim))
		} else {
			s.stopBeam(true)
		}
		return
	}

	// A beam left over from a weapon switch stops on the next tick
	s.stopBeam(true)

	if !frame.FirePressed || !frame.AimValid {
		return
	}

	dir := aimDirection(origin, frame.Aim)
	count := 0
	switch profile.Mode {
	case component.FireSpread:
		for _, angle := range [...]float64{-parameter.SpreadAngle, 0, parameter.SpreadAngle} {
			spawnProjectile(s.world, kind, origin, vmath.V2Rotate(dir, angle))
			count++
		}
	default:
		spawnProjectile(s.world, kind, origin, dir)
		count = 1
	}

	s.statShots.Add(int64(count))
	s.world.PushEvent(event.EventShotFired, &event.ShotPayload{Weapon: kind, Projectiles: count})
}

// holdBeam keeps exactly one beam alive and re-aims it
func (s *WeaponSystem) holdBeam(kind component.WeaponKind, origin, dir vmath.Vec2) {
	if s.beam != 0 && s.world.Components.Beam.HasEntity(s.beam) {
		b, _ := s.world.Components.Beam.GetComponent(s.beam)
		b.Weapon = kind
		b.Dir = dir
		b.Center = beamCenter(origin, dir)
		s.world.Components.Beam.SetComponent(s.beam, b)
		s.world.Components.Position.SetComponent(s.beam, component.PositionComponent{Vec2: b.Center})
		return
	}

	s.beam = spawnBeam(s.world, kind, origin, dir)
	s.statBeam.Store(1)
	s.world.PushEvent(event.EventBeamStarted, &event.ShotPayload{Weapon: kind, Projectiles: 1})
}

// stopBeam removes the beam if one is active
func (s *WeaponSystem) stopBeam(notify bool) {
	if s.beam == 0 {
		return
	}
	kind := component.WeaponLaserBeam
	if b, ok := s.world.Components.Beam.GetComponent(s.beam); ok {
		kind = b.Weapon
		s.world.DestroyEntity(s.beam)
	}
	s.beam = 0
	s.statBeam.Store(0)
	if notify {
		s.world.PushEvent(event.EventBeamStopped, &event.ShotPayload{Weapon: kind})
	}
}

// aimDirection returns the unit vector from origin toward aim, straight up when they coincide
func aimDirection(origin, aim vmath.Vec2) vmath.Vec2 {
	dir := vmath.V2Normalize(vmath.V2Sub(aim, origin))
	if dir == (vmath.Vec2{}) {
		return vmath.V2(0, 1)
	}
	return dir
}
