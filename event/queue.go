package event

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
)

// EventQueue is a bounded ring buffer drained fully each dispatch
// Single producer and consumer: the simulation tick
//
// Overflow: oldest events overwritten when full, counted in Dropped
type EventQueue struct {
	events  [parameter.EventQueueSize]GameEvent
	head    uint64 // Read index
	tail    uint64 // Write index
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, evicting the oldest when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
		eq.dropped++
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if eq.tail == eq.head {
		return nil
	}
	result := make([]GameEvent, 0, eq.tail-eq.head)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & parameter.EventBufferMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Dropped returns the number of events evicted by overflow
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
