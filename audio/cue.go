package audio

import (
	"time"

	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
)

// Cue describes how a sound type is synthesized
type Cue struct {
	Freq     float64
	Sweep    float64 // End frequency as a ratio of Freq
	Duration time.Duration
}

var cues = [core.SoundTypeCount]Cue{
	core.SoundFire:       {Freq: parameter.CueFireFreq, Sweep: 0.5, Duration: parameter.CueShortDuration},
	core.SoundBeam:       {Freq: parameter.CueFireFreq, Sweep: 1.5, Duration: parameter.CueLongDuration},
	core.SoundHit:        {Freq: parameter.CueHitFreq, Sweep: 0.7, Duration: parameter.CueShortDuration},
	core.SoundCoin:       {Freq: parameter.CueCoinFreq, Sweep: 1.5, Duration: parameter.CueShortDuration},
	core.SoundBufferFull: {Freq: parameter.CueBufferFullFreq, Sweep: 1, Duration: parameter.CueLongDuration},
	core.SoundPurchase:   {Freq: parameter.CuePurchaseFreq, Sweep: 2, Duration: parameter.CueLongDuration},
	core.SoundReject:     {Freq: parameter.CueRejectFreq, Sweep: 0.8, Duration: parameter.CueLongDuration},
	core.SoundSwitch:     {Freq: parameter.CuePurchaseFreq, Sweep: 1.2, Duration: parameter.CueShortDuration},
}

// CueFor returns the synthesis parameters of a sound type
func CueFor(s core.SoundType) (Cue, bool) {
	if s < 0 || s >= core.SoundTypeCount {
		return Cue{}, false
	}
	return cues[s], true
}
