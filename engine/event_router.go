package engine

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
)

// EventRouter dispatches queued events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch inside the tick
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events pushed by handlers are dispatched in the same call, up to MaxDispatchRounds
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes pending events and routes them in FIFO order
// Returns the number of events dispatched
func (r *EventRouter) DispatchAll() int {
	dispatched := 0
	for round := 0; round < parameter.MaxDispatchRounds; round++ {
		events := r.queue.Consume()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		dispatched += len(events)
	}
	return dispatched
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
