package economy

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanBellman/Wandern-to-kill-a-Box/config"
)

func TestBufferStaysInBounds(t *testing.T) {
	b := NewBuffer(config.Default().Buffer, 1)
	w := &Wallet{}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		if rng.Intn(3) == 0 {
			b.Drain(time.Duration(rng.Intn(500)) * time.Millisecond)
		} else {
			b.TryAbsorb(rng.Intn(50)+1, w)
		}
		require.GreaterOrEqual(t, b.Current(), 0.0, "step %d", i)
		require.LessOrEqual(t, b.Current(), b.Capacity(), "step %d", i)
	}
}

func TestBufferRejectsWhenFull(t *testing.T) {
	b := NewBuffer(config.Default().Buffer, 1)
	w := &Wallet{currency: 42}
	b.fill(b.Capacity())

	ok := b.TryAbsorb(25, w)

	assert.False(t, ok)
	assert.Equal(t, 42, w.Balance(), "wallet unchanged on rejection")
	assert.Equal(t, b.Capacity(), b.Current(), "buffer unchanged on rejection")
}

func TestBufferFillsToCapacity(t *testing.T) {
	// Default level 1: capacity 20 + 1*10
	b := NewBuffer(config.Default().Buffer, 1)
	w := &Wallet{}
	require.Equal(t, 30.0, b.Capacity())

	b.fill(29)
	assert.True(t, b.TryAbsorb(10, w))
	assert.Equal(t, 30.0, b.Current())
	assert.Equal(t, 10, w.Balance())

	assert.False(t, b.TryAbsorb(10, w))
	assert.Equal(t, 30.0, b.Current())
	assert.Equal(t, 10, w.Balance())
}

func TestBufferFractionalHeadroom(t *testing.T) {
	b := NewBuffer(config.Default().Buffer, 1)
	w := &Wallet{}
	b.fill(29.5)

	assert.True(t, b.TryAbsorb(5, w), "below capacity still absorbs")
	assert.Equal(t, 30.0, b.Current(), "increment clamps to capacity")
}

func TestBufferDrain(t *testing.T) {
	b := NewBuffer(config.Default().Buffer, 1)
	b.fill(10)

	b.Drain(time.Second)
	assert.InDelta(t, 8.0, b.Current(), 1e-9)

	b.Drain(time.Minute)
	assert.Equal(t, 0.0, b.Current(), "drain floors at zero")

	b.Drain(-time.Second)
	assert.Equal(t, 0.0, b.Current())
}

func TestBufferPercentage(t *testing.T) {
	b := NewBuffer(config.Default().Buffer, 1)
	assert.Equal(t, 0.0, b.Percentage())

	b.fill(15)
	assert.InDelta(t, 0.5, b.Percentage(), 1e-9)

	b.fill(1000)
	assert.Equal(t, 1.0, b.Percentage())
}

func TestBufferSetLevel(t *testing.T) {
	b := NewBuffer(config.Wide().Buffer, 1)
	assert.Equal(t, 70.0, b.Capacity())

	b.fill(60)
	b.SetLevel(0)
	assert.Equal(t, 20.0, b.Capacity())
	assert.Equal(t, 20.0, b.Current(), "current clamps when capacity shrinks")
}
