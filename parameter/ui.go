package parameter

import "time"

// UI
const (
	// MessageDuration is how long a shop feedback message stays on screen
	MessageDuration = 2 * time.Second

	// InputHoldWindow treats a key as held for this long after its last repeat
	InputHoldWindow = 150 * time.Millisecond

	// InputSlotQueue caps purchase presses waiting for a frame
	InputSlotQueue = 9

	// SaveListLimit caps the number of slots shown
	SaveListLimit = 20
)
