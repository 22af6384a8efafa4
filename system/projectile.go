package system

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/physics"
)

// ProjectileSystem moves discrete shots and removes them when their lifetime runs out
type ProjectileSystem struct {
	world *engine.World

	enabled bool
}

func NewProjectileSystem(world *engine.World) engine.System {
	s := &ProjectileSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *ProjectileSystem) Init() {
	s.enabled = true
}

func (s *ProjectileSystem) Name() string {
	return "projectile"
}

func (s *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

func (s *ProjectileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *ProjectileSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *ProjectileSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	for _, e := range s.world.Components.Projectile.GetAllEntities() {
		p, _ := s.world.Components.Projectile.GetComponent(e)
		p.Remaining -= dt
		if p.Remaining <= 0 {
			// Expired shots leave no effect
			s.world.DestroyEntity(e)
			continue
		}
		s.world.Components.Projectile.SetComponent(e, p)

		pos, ok := s.world.Components.Position.GetComponent(e)
		if !ok {
			continue
		}
		k, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		physics.Integrate(&pos.Vec2, &k, dt.Seconds())
		s.world.Components.Position.SetComponent(e, pos)
		s.world.Components.Kinetic.SetComponent(e, k)
	}
}
