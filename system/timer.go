package system

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
)

// TimerSystem owns the pause flag and publishes elapsed play time
// Game time only advances in World.Step, so paused time is never counted
type TimerSystem struct {
	world *engine.World

	// Telemetry
	statElapsed *atomic.Int64
	statPaused  *atomic.Int64

	enabled bool
}

func NewTimerSystem(world *engine.World) engine.System {
	s := &TimerSystem{
		world: world,
	}

	s.statElapsed = world.Resources.Status.Ints.Get("time.elapsed_ms")
	s.statPaused = world.Resources.Status.Ints.Get("time.paused")

	s.Init()
	return s
}

func (s *TimerSystem) Init() {
	s.world.Resources.Time.Paused = false
	s.statPaused.Store(0)
	s.enabled = true
}

func (s *TimerSystem) Name() string {
	return "timer"
}

func (s *TimerSystem) Priority() int {
	return parameter.PriorityTimer
}

func (s *TimerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPauseToggle,
		event.EventGameReset,
	}
}

func (s *TimerSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	if ev.Type == event.EventPauseToggle {
		t := s.world.Resources.Time
		t.Paused = !t.Paused
		var paused int64
		if t.Paused {
			paused = 1
		}
		s.statPaused.Store(paused)
	}
}

func (s *TimerSystem) Update() {
	if !s.enabled {
		return
	}
	s.statElapsed.Store(s.world.Resources.Time.GameTime.Milliseconds())
}

// FormatElapsed renders play time as MM:SS; minutes keep counting past an hour
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
