package audio

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Service plays gameplay cues through a beep mixer
// Degrades to silent operation when muted or when no audio backend is available
type Service struct {
	log zerolog.Logger
	now func() time.Time

	mu       sync.Mutex
	mixer    *beep.Mixer
	lastPlay [core.SoundTypeCount]time.Time
	speaker  bool // Speaker initialized and playing the mixer

	muted    atomic.Bool
	disabled atomic.Bool
	played   atomic.Int64
}

func NewService(log zerolog.Logger) *Service {
	return &Service{
		log:   log.With().Str("service", "audio").Logger(),
		now:   time.Now,
		mixer: &beep.Mixer{},
	}
}

func (s *Service) Name() string { return "audio" }

func (s *Service) Dependencies() []string { return nil }

// Init accepts an optional bool mute flag, muted by default
func (s *Service) Init(args ...any) error {
	s.muted.Store(true)
	for _, arg := range args {
		if muted, ok := arg.(bool); ok {
			s.muted.Store(muted)
		}
	}
	return nil
}

// Start opens the speaker unless muted; a missing backend disables audio without error
func (s *Service) Start(ctx context.Context) error {
	if s.muted.Load() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.speaker {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		s.disabled.Store(true)
		s.log.Warn().Err(err).Msg("audio backend unavailable, continuing silent")
		return nil
	}
	speaker.Play(s.mixer)
	s.speaker = true
	return nil
}

// Stop silences the mixer; idempotent
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.speaker {
		return nil
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.speaker = false
	return nil
}

// SetMuted toggles playback at runtime
func (s *Service) SetMuted(muted bool) {
	s.muted.Store(muted)
}

// Muted reports whether cues are suppressed
func (s *Service) Muted() bool {
	return s.muted.Load() || s.disabled.Load()
}

// Play queues a cue on the mixer without blocking the caller
// Repeats of the same cue within MinSoundGap are dropped
func (s *Service) Play(sound core.SoundType) {
	if s.Muted() {
		return
	}
	cue, ok := CueFor(sound)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastPlay[sound]) < parameter.MinSoundGap {
		return
	}
	s.lastPlay[sound] = now

	streamer := beep.Take(sampleRate.N(cue.Duration),
		NewToneGenerator(sampleRate, cue.Freq, cue.Sweep, parameter.AudioVolume, cue.Duration))

	if s.speaker {
		speaker.Lock()
		if s.mixer.Len() < parameter.AudioCueQueueSize {
			s.mixer.Add(streamer)
		}
		speaker.Unlock()
	} else if s.mixer.Len() < parameter.AudioCueQueueSize {
		s.mixer.Add(streamer)
	}
	s.played.Add(1)
}

// Played returns the number of cues accepted
func (s *Service) Played() int64 {
	return s.played.Load()
}

// Pending returns streamers still in the mixer
func (s *Service) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.speaker {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return s.mixer.Len()
}
