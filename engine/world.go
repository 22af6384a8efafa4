package engine

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/economy"
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/status"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

// spawnLogLimit bounds undrained spawn records when no presentation layer is attached
const spawnLogLimit = 4096

// World is the simulation context: entities, typed component stores, resources and systems
// One tick is a single uninterruptible Step; no state is shared outside it
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
	Resources  Resource

	eventQueue *event.EventQueue
	router     *EventRouter

	systems []System
}

// NewWorld creates a world around an economy
func NewWorld(econ *economy.Economy, log zerolog.Logger, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	queue := event.NewEventQueue()
	w := &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		eventQueue:   queue,
		router:       NewEventRouter(queue),
		Resources: Resource{
			Time:     &TimeResource{},
			Economy:  econ,
			Viewport: &ViewportResource{},
			Player:   &PlayerResource{},
			Input:    &InputResource{},
			Spawns:   NewSpawnLog(spawnLogLimit),
			Status:   status.NewRegistry(),
			Log:      log,
			Rand:     rng,
			Audio:    &AudioResource{},
			Network:  &NetworkResource{},
		},
	}
	w.Resources.Viewport.SetAspect(parameter.DefaultAspect)
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// Spawn records a visible entity for the presentation collaborator
// Call after its position, visual and kinetic components are set
func (w *World) Spawn(e core.Entity) {
	r := SpawnRecord{Action: ActionSpawn, Entity: e}
	if v, ok := w.Components.Visual.GetComponent(e); ok {
		r.Visual = v.Hint
		r.Glyph = v.Glyph
	}
	if p, ok := w.Components.Position.GetComponent(e); ok {
		r.Pos = p.Vec2
	}
	if k, ok := w.Components.Kinetic.GetComponent(e); ok {
		r.Vel = k.Vel
	}
	w.Resources.Spawns.append(r)
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	if v, ok := w.Components.Visual.GetComponent(e); ok {
		r := SpawnRecord{Action: ActionDespawn, Entity: e, Visual: v.Hint}
		if p, ok := w.Components.Position.GetComponent(e); ok {
			r.Pos = p.Vec2
		}
		w.Resources.Spawns.append(r)
	}
	w.Components.removeAll(e)
	if w.Resources.Player.Entity == e {
		w.Resources.Player.Entity = 0
	}
}

// Clear removes all entities and pending events
func (w *World) Clear() {
	w.Components.clearAll()
	w.Resources.Player.Entity = 0
	w.Resources.Spawns.Drain()
	w.eventQueue.Consume()
}

// AddSystem adds a system, registers it for events and keeps priority order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Insertion sort keeps equal priorities in registration order
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}

	if h, ok := system.(EventHandler); ok {
		w.router.Register(h)
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// PushEvent queues a game event for the next dispatch
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}

// Step advances the simulation by one tick
// Systems run in priority order; queued events are dispatched after each system,
// so events produced earlier in the tick are consumed within the same tick
func (w *World) Step(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	w.Resources.Time.Advance(dt)

	// Events pushed outside the tick (reset, session) settle first
	w.router.DispatchAll()
	for _, s := range w.systems {
		s.Update()
		w.router.DispatchAll()
	}
}

// Flush dispatches pending events without advancing time
func (w *World) Flush() {
	w.router.DispatchAll()
}

// DroppedEvents returns events lost to queue overflow
func (w *World) DroppedEvents() uint64 {
	return w.eventQueue.Dropped()
}

// PlayerPosition returns the player's position; false when the player is absent
func (w *World) PlayerPosition() (vmath.Vec2, bool) {
	e := w.Resources.Player.Entity
	if e == 0 {
		return vmath.Vec2{}, false
	}
	p, ok := w.Components.Position.GetComponent(e)
	return p.Vec2, ok
}

// EntitiesWithVisual returns the drawable entities with their hint and position
func (w *World) EntitiesWithVisual(fn func(e core.Entity, v component.VisualComponent, pos vmath.Vec2)) {
	for _, e := range w.Components.Visual.GetAllEntities() {
		v, _ := w.Components.Visual.GetComponent(e)
		p, ok := w.Components.Position.GetComponent(e)
		if !ok {
			continue
		}
		fn(e, v, p.Vec2)
	}
}
