package parameter

import "time"

// Discrete hit resolution
const (
	// HitCooldown is the minimum time between discrete hit credits on one target
	HitCooldown = 100 * time.Millisecond

	// SpreadAngle is the SpreadShot side-projectile offset in radians
	SpreadAngle = 0.2
)

// Beam
const (
	// BeamLength is the full beam length; its centre sits at half length from the player
	BeamLength = 600.0

	// BeamRange is the distance from the beam centre within which a target is overlapped
	BeamRange = 300.0

	// BeamTickInterval is the continuous damage credit cadence
	BeamTickInterval = 300 * time.Millisecond

	BeamWidth = 4.0
)

// Coin burst scatter around the target
const (
	CoinScatterMin = 20.0
	CoinScatterMax = 80.0
)
