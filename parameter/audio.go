package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioCueQueueSize bounds pending cues; excess cues are dropped
	AudioCueQueueSize = 32

	// MinSoundGap between two cues of the same kind
	MinSoundGap = 40 * time.Millisecond
)

// Cue tones
const (
	AudioVolume = 0.25

	CueFireFreq       = 880.0
	CueHitFreq        = 220.0
	CueCoinFreq       = 1320.0
	CueBufferFullFreq = 110.0
	CuePurchaseFreq   = 660.0
	CueRejectFreq     = 150.0

	CueShortDuration = 40 * time.Millisecond
	CueLongDuration  = 120 * time.Millisecond
)
