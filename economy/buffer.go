package economy

import (
	"time"

	"github.com/DanBellman/Wandern-to-kill-a-Box/config"
)

// Buffer is the capacity-limited collection buffer gating pickup conversion
// 0 <= current <= capacity holds after every operation
type Buffer struct {
	current  float64
	capacity float64

	drainRate float64
	tuning    config.BufferBalance
}

// NewBuffer creates an empty buffer sized for the given upgrade level
func NewBuffer(tuning config.BufferBalance, level int) *Buffer {
	b := &Buffer{
		drainRate: tuning.DrainRate,
		tuning:    tuning,
	}
	b.SetLevel(level)
	return b
}

// Drain decays current toward zero at the fixed drain rate
func (b *Buffer) Drain(dt time.Duration) {
	if dt <= 0 {
		return
	}
	b.current = max(0, b.current-b.drainRate*dt.Seconds())
}

// TryAbsorb converts one pickup into currency
// Returns false without any change when the buffer is full
func (b *Buffer) TryAbsorb(value int, w *Wallet) bool {
	if b.current >= b.capacity {
		return false
	}
	b.current = min(b.current+1, b.capacity)
	w.credit(value)
	return true
}

// SetLevel recomputes capacity for an upgrade level, clamping current into range
func (b *Buffer) SetLevel(level int) {
	b.capacity = b.tuning.Capacity(level)
	if b.current > b.capacity {
		b.current = b.capacity
	}
}

func (b *Buffer) Capacity() float64 {
	return b.capacity
}

func (b *Buffer) Current() float64 {
	return b.current
}

// Full reports whether the next absorption would be rejected
func (b *Buffer) Full() bool {
	return b.current >= b.capacity
}

// Percentage returns fill ratio in [0, 1]
func (b *Buffer) Percentage() float64 {
	if b.capacity <= 0 {
		return 0
	}
	return b.current / b.capacity
}

// fill sets current directly, clamped into range
func (b *Buffer) fill(v float64) {
	b.current = max(0, min(v, b.capacity))
}
