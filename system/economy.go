package system

import (
	"sync/atomic"

	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/status"
)

// EconomySystem drains the collection buffer once per tick
// Runs after coin absorption, so a pickup absorbed this tick is counted before any drain
type EconomySystem struct {
	world *engine.World

	// Telemetry
	statBalance  *atomic.Int64
	statBuffer   *status.AtomicFloat
	statCapacity *status.AtomicFloat

	enabled bool
}

func NewEconomySystem(world *engine.World) engine.System {
	s := &EconomySystem{
		world: world,
	}

	s.statBalance = world.Resources.Status.Ints.Get("wallet.balance")
	s.statBuffer = world.Resources.Status.Floats.Get("buffer.current")
	s.statCapacity = world.Resources.Status.Floats.Get("buffer.capacity")

	s.Init()
	return s
}

func (s *EconomySystem) Init() {
	s.publish()
	s.enabled = true
}

func (s *EconomySystem) Name() string {
	return "economy"
}

func (s *EconomySystem) Priority() int {
	return parameter.PriorityEconomy
}

func (s *EconomySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *EconomySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *EconomySystem) Update() {
	if !s.enabled {
		return
	}

	// Restore may swap the buffer; always read it through the economy
	s.world.Resources.Economy.Buffer.Drain(s.world.Resources.Time.DeltaTime)
	s.publish()
}

func (s *EconomySystem) publish() {
	econ := s.world.Resources.Economy
	s.statBalance.Store(int64(econ.Wallet.Balance()))
	s.statBuffer.Set(econ.Buffer.Current())
	s.statCapacity.Set(econ.Buffer.Capacity())
}
