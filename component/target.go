package component

import "time"

// TargetComponent is a damageable, non-destructible entity
type TargetComponent struct {
	// LastHit is game time of the last discrete credit; valid only when Hit is set
	LastHit time.Duration
	Hit     bool

	// BeamTimer accumulates continuous overlap time toward the next tick credit
	BeamTimer time.Duration
	// Beamed is set when a beam overlapped this target in the current tick
	Beamed bool
}
