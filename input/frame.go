package input

import "github.com/DanBellman/Wandern-to-kill-a-Box/vmath"

// Frame is the intent sampled for one simulation tick
// Edge fields are true only on the tick the action was triggered
type Frame struct {
	// Horizontal movement intent in [-1, 1]
	Horizontal float64

	// Aim is the pointed-at world position, valid only when AimValid
	Aim      vmath.Vec2
	AimValid bool

	FirePressed bool // Edge
	FireHeld    bool // Level

	Interact     bool // Edge: toggle shop panel
	PurchaseSlot int  // Edge: 1-based slot, 0 = none; further presses wait for later frames
	CycleWeapon  bool // Edge

	// Session-level edges, handled outside the simulation step
	TogglePause bool
	QuickSave   bool
	QuickLoad   bool

	// Driver edges
	ToggleMute  bool
	ToggleDebug bool
	Quit        bool
}

// Clamp bounds Horizontal into [-1, 1]
func (f *Frame) Clamp() {
	if f.Horizontal > 1 {
		f.Horizontal = 1
	} else if f.Horizontal < -1 {
		f.Horizontal = -1
	}
}
