package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator is a decaying sine sweep from Freq toward Freq*Sweep
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	sweep  float64
	volume float64
	pos    int
	total  int
	phase  float64
}

// NewToneGenerator creates a tone lasting d
func NewToneGenerator(sr beep.SampleRate, freq, sweep, volume float64, d time.Duration) *ToneGenerator {
	total := sr.N(d)
	if total < 1 {
		total = 1
	}
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		sweep:  sweep,
		volume: volume,
		total:  total,
	}
}

// Stream fills samples until the tone is exhausted
func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)

		freq := g.freq * (1 + (g.sweep-1)*progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Short attack, linear release
		attack := math.Min(progress/0.05, 1.0)
		sample := g.volume * attack * (1 - progress) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
