package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOscillateBounded(t *testing.T) {
	for w := Waveform(0); int(w) < NumWaveforms; w++ {
		for _, rate := range []float64{0.01, 0.5, 1, 2} {
			for ti := 0; ti < 1000; ti++ {
				v := Oscillate(float64(ti)*0.0137, rate, 250, w)
				if v < -250 || v > 250 {
					t.Fatalf("%s rate=%v: %v out of range", w, rate, v)
				}
			}
		}
	}
}

func TestOscillateZeroRate(t *testing.T) {
	for w := Waveform(0); int(w) < NumWaveforms; w++ {
		assert.Equal(t, 0.0, Oscillate(3.7, 0, 100, w), w.String())
		assert.Equal(t, 0.0, Oscillate(3.7, -1, 100, w), w.String())
	}
}

func TestOscillateSquareQuarterCycle(t *testing.T) {
	assert.Equal(t, 10.0, Oscillate(0.25, 1, 10, WaveSquare))
	assert.Equal(t, -10.0, Oscillate(0.75, 1, 10, WaveSquare))
}

func TestOscillateShapes(t *testing.T) {
	assert.InDelta(t, 10.0, Oscillate(0.25, 1, 10, WaveSine), 1e-9)
	assert.InDelta(t, 10.0, Oscillate(0, 1, 10, WaveTriangle), 1e-9)
	assert.InDelta(t, -10.0, Oscillate(0.5, 1, 10, WaveTriangle), 1e-9)
	assert.InDelta(t, -10.0, Oscillate(0, 1, 10, WaveSaw), 1e-9)
	assert.InDelta(t, 0.0, Oscillate(0.5, 1, 10, WaveSaw), 1e-9)
}

func TestWaveformString(t *testing.T) {
	assert.Equal(t, "Triangle", WaveTriangle.String())
	assert.Equal(t, "Sine", Waveform(99).String())
}

func TestLFOValueDisabled(t *testing.T) {
	c := Controls{LFO: LFOSettings{Enabled: false, Amplitude: 100, Rate: 1, Waveform: WaveSquare}}
	assert.Equal(t, 0.0, c.LFOValue(0.25))

	c.LFO.Enabled = true
	assert.Equal(t, 100.0, c.LFOValue(0.25))
}
