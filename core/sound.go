package core

// SoundType represents the gameplay sound cues
type SoundType int

const (
	SoundFire       SoundType = iota // Discrete shot
	SoundBeam                        // Beam switched on
	SoundHit                         // Credited hit on the target
	SoundCoin                        // Pickup absorbed
	SoundBufferFull                  // Pickup rejected by a full buffer
	SoundPurchase                    // Purchase committed
	SoundReject                      // Purchase or toggle rejected
	SoundSwitch                      // Weapon changed
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundFire:       "fire",
	SoundBeam:       "beam",
	SoundHit:        "hit",
	SoundCoin:       "coin",
	SoundBufferFull: "buffer_full",
	SoundPurchase:   "purchase",
	SoundReject:     "reject",
	SoundSwitch:     "switch",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
