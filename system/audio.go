package system

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
)

// AudioSystem maps gameplay events to sound cues
// Decouples game systems from direct audio service access
type AudioSystem struct {
	world *engine.World

	enabled bool
}

// NewAudioSystem creates an audio system; without a bridged player it stays silent
func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AudioSystem) Init() {
	s.enabled = true
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShotFired,
		event.EventBeamStarted,
		event.EventTargetHit,
		event.EventCoinAbsorbed,
		event.EventCoinRejected,
		event.EventPurchaseCompleted,
		event.EventPurchaseRejected,
		event.EventWeaponChanged,
		event.EventGameReset,
	}
}

// HandleEvent plays the cue bound to an event
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	player := s.world.Resources.Audio.Player
	if player == nil {
		return
	}
	if sound, ok := cueFor(ev.Type); ok {
		player.Play(sound)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}

func cueFor(t event.EventType) (core.SoundType, bool) {
	switch t {
	case event.EventShotFired:
		return core.SoundFire, true
	case event.EventBeamStarted:
		return core.SoundBeam, true
	case event.EventTargetHit:
		return core.SoundHit, true
	case event.EventCoinAbsorbed:
		return core.SoundCoin, true
	case event.EventCoinRejected:
		return core.SoundBufferFull, true
	case event.EventPurchaseCompleted:
		return core.SoundPurchase, true
	case event.EventPurchaseRejected:
		return core.SoundReject, true
	case event.EventWeaponChanged:
		return core.SoundSwitch, true
	}
	return 0, false
}
