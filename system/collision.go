package system

import (
	"sync/atomic"

	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/physics"
)

// CollisionSystem syncs colliders into the broadphase and emits contact episodes
// Each contact yields one begin and one end; a removed entity ends all its contacts
type CollisionSystem struct {
	world    *engine.World
	detector *physics.Detector

	// Telemetry
	statBodies *atomic.Int64
	statBegins *atomic.Int64

	enabled bool
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{
		world:    world,
		detector: physics.NewDetector(physics.DefaultPairs),
	}

	s.statBodies = world.Resources.Status.Ints.Get("collision.bodies")
	s.statBegins = world.Resources.Status.Ints.Get("collision.begins")

	s.Init()
	return s
}

func (s *CollisionSystem) Init() {
	s.detector.Reset()
	s.statBodies.Store(0)
	s.statBegins.Store(0)
	s.enabled = true
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *CollisionSystem) Update() {
	if !s.enabled {
		return
	}

	s.detector.Begin()
	colliders := s.world.Components.Collider
	for _, e := range colliders.GetAllEntities() {
		pos, ok := s.world.Components.Position.GetComponent(e)
		if !ok {
			continue
		}
		c, _ := colliders.GetComponent(e)
		if coin, ok := s.world.Components.Coin.GetComponent(e); ok && coin.Landed {
			// Landing is one-way; the ground contact carries no further meaning
			s.detector.SyncResting(e, pos.Vec2, c)
			continue
		}
		s.detector.Sync(e, pos.Vec2, c)
	}

	begins, ends := s.detector.Detect()
	queued := 0
	for _, c := range ends {
		queued = s.push(event.EventCollisionEnd, c, queued)
	}
	for _, c := range begins {
		queued = s.push(event.EventCollisionBegin, c, queued)
	}

	s.statBodies.Store(int64(s.detector.Len()))
	s.statBegins.Add(int64(len(begins)))
}

// push queues one contact event, flushing every CollisionDispatchChunk events
func (s *CollisionSystem) push(t event.EventType, c physics.Contact, queued int) int {
	if queued == parameter.CollisionDispatchChunk {
		s.world.Flush()
		queued = 0
	}
	s.world.PushEvent(t, &event.CollisionPayload{A: c.A, B: c.B, LayerA: c.LayerA, LayerB: c.LayerB})
	return queued + 1
}
