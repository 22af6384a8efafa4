package physics

import "github.com/DanBellman/Wandern-to-kill-a-Box/vmath"

// ClampX keeps x within [-halfWidth+margin, halfWidth-margin]
// A viewport narrower than twice the margin pins x to the centre
func ClampX(x, halfWidth, margin float64) float64 {
	limit := halfWidth - margin
	if limit <= 0 {
		return 0
	}
	return vmath.Clamp(x, -limit, limit)
}

// RestOn returns the y of a body with halfHeight resting on a surface at top
func RestOn(top, halfHeight float64) float64 {
	return top + halfHeight
}
