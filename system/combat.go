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

// CombatSystem converts hits on targets into coin bursts
//
// Discrete: a projectile/target contact credits once if the target's cooldown has elapsed,
// consuming the projectile
// Continuous: while a beam overlaps a target its timer accumulates; every full interval
// credits one burst, and disengaging discards partial progress
type CombatSystem struct {
	world *engine.World

	// Telemetry
	statHits    *atomic.Int64
	statTicks   *atomic.Int64
	statSpawned *atomic.Int64
	statValue   *atomic.Int64

	enabled bool
}

func NewCombatSystem(world *engine.World) engine.System {
	s := &CombatSystem{
		world: world,
	}

	s.statHits = world.Resources.Status.Ints.Get("combat.hits")
	s.statTicks = world.Resources.Status.Ints.Get("combat.beam_ticks")
	s.statSpawned = world.Resources.Status.Ints.Get("coin.spawned")
	s.statValue = world.Resources.Status.Ints.Get("coin.value_spawned")

	s.Init()
	return s
}

func (s *CombatSystem) Init() {
	s.statHits.Store(0)
	s.statTicks.Store(0)
	s.statSpawned.Store(0)
	s.statValue.Store(0)
	s.enabled = true
}

func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

func (s *CombatSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCollisionBegin,
		event.EventGameReset,
	}
}

func (s *CombatSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	if ev.Type == event.EventCollisionBegin {
		if payload, ok := ev.Payload.(*event.CollisionPayload); ok {
			if projectile, target, ok := payload.Pair(component.LayerProjectile, component.LayerTarget); ok {
				s.resolveHit(projectile, target)
			}
		}
	}
}

// resolveHit credits one discrete hit, honouring the per-target cooldown
func (s *CombatSystem) resolveHit(projectile, target core.Entity) {
	p, ok := s.world.Components.Projectile.GetComponent(projectile)
	if !ok {
		return
	}
	t, ok := s.world.Components.Target.GetComponent(target)
	if !ok {
		return
	}

	now := s.world.Resources.Time.GameTime
	if t.Hit && now-t.LastHit <= parameter.HitCooldown {
		return
	}

	s.world.DestroyEntity(projectile)
	t.LastHit = now
	t.Hit = true
	s.world.Components.Target.SetComponent(target, t)

	s.statHits.Add(1)
	s.burst(target, p.Weapon, component.HitRewards[p.Weapon], false)
}

func (s *CombatSystem) Update() {
	if !s.enabled {
		return
	}

	centers := s.beamCenters()
	dt := s.world.Resources.Time.DeltaTime

	for _, e := range s.world.Components.Target.GetAllEntities() {
		t, _ := s.world.Components.Target.GetComponent(e)
		pos, ok := s.world.Components.Position.GetComponent(e)
		if !ok {
			continue
		}

		weapon, overlapped := overlappingBeam(centers, pos.Vec2)
		t.Beamed = overlapped
		if !overlapped {
			t.BeamTimer = 0
			s.world.Components.Target.SetComponent(e, t)
			continue
		}

		t.BeamTimer += dt
		credit := t.BeamTimer >= parameter.BeamTickInterval
		if credit {
			t.BeamTimer = 0
		}
		s.world.Components.Target.SetComponent(e, t)

		if credit {
			s.statTicks.Add(1)
			s.burst(e, weapon, component.TickRewards[weapon], true)
		}
	}
}

type beamSample struct {
	weapon component.WeaponKind
	center vmath.Vec2
}

// beamCenters re-anchors every beam to the player's current position
func (s *CombatSystem) beamCenters() []beamSample {
	beams := s.world.Components.Beam.GetAllEntities()
	if len(beams) == 0 {
		return nil
	}
	origin, ok := s.world.PlayerPosition()
	if !ok {
		return nil
	}

	out := make([]beamSample, 0, len(beams))
	for _, e := range beams {
		b, _ := s.world.Components.Beam.GetComponent(e)
		b.Center = beamCenter(origin, b.Dir)
		s.world.Components.Beam.SetComponent(e, b)
		s.world.Components.Position.SetComponent(e, component.PositionComponent{Vec2: b.Center})
		out = append(out, beamSample{weapon: b.Weapon, center: b.Center})
	}
	return out
}

func overlappingBeam(beams []beamSample, target vmath.Vec2) (component.WeaponKind, bool) {
	for _, b := range beams {
		if vmath.V2Distance(b.center, target) < parameter.BeamRange {
			return b.weapon, true
		}
	}
	return 0, false
}

// burst spawns a reward's coins around the target and reports the hit
func (s *CombatSystem) burst(target core.Entity, weapon component.WeaponKind, reward component.Reward, continuous bool) {
	pos, ok := s.world.Components.Position.GetComponent(target)
	if !ok {
		return
	}

	coins := spawnCoinBurst(s.world, pos.Vec2, reward)
	value := coins * reward.PerCoin()
	s.statSpawned.Add(int64(coins))
	s.statValue.Add(int64(value))

	s.world.PushEvent(event.EventTargetHit, &event.TargetHitPayload{
		Target:     target,
		Weapon:     weapon,
		Continuous: continuous,
		Coins:      coins,
		Value:      value,
	})
}
