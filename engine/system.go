package engine

import "github.com/DanBellman/Wandern-to-kill-a-Box/event"

// System is a per-tick simulation step
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
