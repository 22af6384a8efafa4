package component

import "github.com/DanBellman/Wandern-to-kill-a-Box/vmath"

// PositionComponent is an entity's centre in world units
type PositionComponent struct {
	vmath.Vec2
}

// KineticComponent holds velocity for integrated bodies
type KineticComponent struct {
	Vel     vmath.Vec2
	Gravity bool // Affected by world gravity
}
