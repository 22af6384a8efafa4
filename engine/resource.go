package engine

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/economy"
	"github.com/DanBellman/Wandern-to-kill-a-Box/input"
	"github.com/DanBellman/Wandern-to-kill-a-Box/network"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/status"
)

// Resource holds singleton session resources, accessed via World.Resources
type Resource struct {
	Time     *TimeResource
	Economy  *economy.Economy
	Viewport *ViewportResource
	Player   *PlayerResource
	Input    *InputResource
	Spawns   *SpawnLog

	// Telemetry
	Status *status.Registry
	Log    zerolog.Logger

	// Rand drives cosmetic scatter; seed it for reproducible tests
	Rand *rand.Rand

	// Bridged resources from services
	Audio   *AudioResource
	Network *NetworkResource
}

// ServiceBridge routes a service-contributed resource to its typed field
func (r *Resource) ServiceBridge(res any) {
	switch v := res.(type) {
	case SoundPlayer:
		r.Audio.Player = v
	case network.Publisher:
		r.Network.Feed = v
	}
}

// TimeResource wraps time data for systems
// Updated by World.Step at the start of each tick
type TimeResource struct {
	// GameTime is simulated time since session start, paused time excluded
	GameTime time.Duration

	// DeltaTime is the duration of the current tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64

	// Paused freezes the simulation; set by the timer system on pause toggles
	Paused bool
}

// Advance moves game time forward by one tick
func (tr *TimeResource) Advance(dt time.Duration) {
	tr.DeltaTime = dt
	tr.GameTime += dt
	tr.FrameNumber++
}

// ViewportResource holds the world-space horizontal extent of the visible area
type ViewportResource struct {
	HalfWidth  float64
	HalfHeight float64
}

// SetAspect recomputes the half-width from a width/height ratio at the fixed viewport height
func (v *ViewportResource) SetAspect(aspect float64) {
	if aspect <= 0 {
		aspect = parameter.DefaultAspect
	}
	v.HalfHeight = parameter.ViewportHeight / 2
	v.HalfWidth = v.HalfHeight * aspect
}

// PlayerResource points at the player entity, zero when absent
type PlayerResource struct {
	Entity core.Entity
}

// InputResource holds the intent frame for the current tick
type InputResource struct {
	Frame input.Frame
}

// SoundPlayer plays gameplay cues without blocking
type SoundPlayer interface {
	Play(sound core.SoundType)
}

// AudioResource bridges the audio service; a nil Player is silent
type AudioResource struct {
	Player SoundPlayer
}

// NetworkResource bridges the HUD feed; a nil Feed disables broadcasting
type NetworkResource struct {
	Feed network.Publisher
}
