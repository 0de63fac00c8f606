// Package audio sonifies the LFO: a sine tone whose pitch follows the
// oscillator offset that drives the flow field.
package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
)

// LFOTone is a beep.Streamer producing a sine tone at
// baseFreq + depth*lfo, where lfo is the normalised oscillator value in [-1, 1].
// SetLFO may be called from any goroutine while the speaker is streaming.
type LFOTone struct {
	rate     beep.SampleRate
	baseFreq float64
	depth    float64
	volume   float64

	lfo   atomic.Uint64 // math.Float64bits of the normalised LFO value
	phase float64       // cycles, [0, 1)
}

// NewLFOTone creates a tone generator.
func NewLFOTone(rate beep.SampleRate, baseFreq, depth, volume float64) *LFOTone {
	return &LFOTone{
		rate:     rate,
		baseFreq: baseFreq,
		depth:    depth,
		volume:   math.Max(0, math.Min(volume, 1)),
	}
}

// SetLFO sets the normalised oscillator value. Values are clamped to [-1, 1].
func (t *LFOTone) SetLFO(v float64) {
	v = math.Max(-1, math.Min(v, 1))
	t.lfo.Store(math.Float64bits(v))
}

// Frequency returns the current tone frequency in Hz, never negative.
func (t *LFOTone) Frequency() float64 {
	lfo := math.Float64frombits(t.lfo.Load())
	return math.Max(0, t.baseFreq+t.depth*lfo)
}

// Stream fills samples with the tone. It never ends.
func (t *LFOTone) Stream(samples [][2]float64) (n int, ok bool) {
	step := t.Frequency() / float64(t.rate)
	for i := range samples {
		v := t.volume * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = v
		samples[i][1] = v

		t.phase += step
		t.phase -= math.Floor(t.phase)
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (t *LFOTone) Err() error { return nil }
