package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/DanBellman/Wandern-to-kill-a-Box/config"
	"github.com/DanBellman/Wandern-to-kill-a-Box/economy"
	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/input"
	"github.com/DanBellman/Wandern-to-kill-a-Box/network"
	"github.com/DanBellman/Wandern-to-kill-a-Box/registry"
	"github.com/DanBellman/Wandern-to-kill-a-Box/save"
	"github.com/DanBellman/Wandern-to-kill-a-Box/system"
)

// quickTimeout bounds quick save/load issued from the tick
const quickTimeout = 2 * time.Second

// Session is one running game: the world, its economy and the run identity
// Not safe for concurrent use; the driver calls it from a single loop
type Session struct {
	World   *engine.World
	Economy *economy.Economy
	RunID   string

	log   zerolog.Logger
	clock engine.Clock
	store save.Store
	slot  string // Target of the save and load keys
}

// NewSession builds a world from the registered systems and spawns the level
// A nil rng seeds from the clock; a nil clock uses wall time
func NewSession(b config.Balance, log zerolog.Logger, rng *rand.Rand, clock engine.Clock) *Session {
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(clock.Now().UnixNano()))
	}

	runID := uuid.NewString()
	log = log.With().Str("run", runID).Logger()

	econ := economy.New(b)
	w := engine.NewWorld(econ, log, rng)
	registry.Build(w)
	system.SpawnLevel(w)

	log.Info().Str("preset", b.Preset).Int("systems", len(w.Systems())).Msg("session started")

	return &Session{
		World:   w,
		Economy: econ,
		RunID:   runID,
		log:     log,
		clock:   clock,
		slot:    save.QuickSlot,
	}
}

// AttachStore sets the store used by quick save and quick load
func (s *Session) AttachStore(store save.Store) {
	s.store = store
}

// SetSaveSlot points the save and load keys at slot instead of the quick slot
func (s *Session) SetSaveSlot(slot string) error {
	if !save.ValidSlot(slot) {
		return fmt.Errorf("save slot %q: %w", slot, save.ErrInvalidSlot)
	}
	s.slot = slot
	return nil
}

// SaveSlot returns the slot written by the save key
func (s *Session) SaveSlot() string {
	return s.slot
}

// Step applies session edges from the frame, then advances the world unless paused
func (s *Session) Step(frame input.Frame, dt time.Duration) {
	if frame.TogglePause {
		s.World.PushEvent(event.EventPauseToggle, nil)
		s.World.Flush()
	}
	if frame.QuickSave {
		s.quick(func(ctx context.Context) error { return s.Save(ctx, s.store, s.slot) })
	}
	if frame.QuickLoad {
		s.quick(func(ctx context.Context) error { return s.Load(ctx, s.store, s.slot) })
	}

	if s.Paused() {
		return
	}
	s.World.Resources.Input.Frame = frame
	s.World.Step(dt)
}

func (s *Session) quick(fn func(ctx context.Context) error) {
	if s.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), quickTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		s.log.Warn().Err(err).Msg("quick slot")
	}
}

// Paused reports whether the simulation is frozen
func (s *Session) Paused() bool {
	return s.World.Resources.Time.Paused
}

// SetViewport recomputes the horizontal bounds from a width/height ratio
func (s *Session) SetViewport(aspect float64) {
	s.World.Resources.Viewport.SetAspect(aspect)
}

// HUD returns the display read model
func (s *Session) HUD() network.HUDState {
	return system.BuildHUD(s.World)
}

// Snapshot captures the persistable state stamped with run and time
func (s *Session) Snapshot() save.Snapshot {
	return save.Snapshot{
		RunID:   s.RunID,
		SavedAt: s.clock.Now(),
		State:   s.Economy.Snapshot(),
	}
}

// Restore replaces economy state and resets per-session system state
// World entities stay; the beam and pending contacts are dropped by the reset
func (s *Session) Restore(snap save.Snapshot) {
	s.restore(snap, "")
}

func (s *Session) restore(snap save.Snapshot, slot string) {
	s.Economy.Restore(snap.State)
	s.World.PushEvent(event.EventGameReset, nil)
	s.World.PushEvent(event.EventSessionRestored, &event.SessionPayload{Slot: slot, RunID: snap.RunID})
	s.World.Flush()
}

// Save writes a snapshot to slot
func (s *Session) Save(ctx context.Context, store save.Store, slot string) error {
	if store == nil {
		return fmt.Errorf("save %s: no store", slot)
	}
	snap := s.Snapshot()
	if err := store.Save(ctx, slot, snap); err != nil {
		return err
	}
	s.log.Info().Str("slot", slot).Int("money", snap.Currency).Msg("saved")
	s.World.PushEvent(event.EventSessionSaved, &event.SessionPayload{Slot: slot, RunID: s.RunID})
	s.World.Flush()
	return nil
}

// Load restores the snapshot in slot; on error the session is unchanged
func (s *Session) Load(ctx context.Context, store save.Store, slot string) error {
	if store == nil {
		return fmt.Errorf("load %s: no store", slot)
	}
	snap, err := store.Load(ctx, slot)
	if err != nil {
		return err
	}
	s.restore(snap, slot)
	s.log.Info().Str("slot", slot).Str("from_run", snap.RunID).Int("money", snap.Currency).Msg("loaded")
	return nil
}
