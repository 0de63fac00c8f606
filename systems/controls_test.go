package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlsClamped(t *testing.T) {
	c := Controls{
		Speed:      50,
		Steering:   -1,
		NoiseScale: -0.5,
		LFO:        LFOSettings{Amplitude: 9000, Rate: -3, Waveform: Waveform(12)},
		Hue:        HuePair{Start: -30, End: 720},
	}.Clamped(DefaultLimits())

	assert.Equal(t, 10.0, c.Speed)
	assert.Equal(t, 0.001, c.Steering)
	assert.Equal(t, 0.0, c.NoiseScale)
	assert.Equal(t, 500.0, c.LFO.Amplitude)
	assert.Equal(t, 0.0, c.LFO.Rate)
	assert.Equal(t, WaveSine, c.LFO.Waveform)
	assert.InDelta(t, 330.0, c.Hue.Start, 1e-9)
	assert.InDelta(t, 0.0, c.Hue.End, 1e-9)
}

func TestControlsClampedKeepsValidValues(t *testing.T) {
	in := Controls{
		Speed:      3,
		Steering:   0.01,
		NoiseScale: DefaultNoiseScale,
		LFO:        LFOSettings{Enabled: true, Amplitude: 100, Rate: 0.5, Waveform: WaveSaw},
		Hue:        HuePair{Start: 0, End: 240},
	}
	assert.Equal(t, in, in.Clamped(DefaultLimits()))
}

func TestSteeringNeverExceedsOne(t *testing.T) {
	l := DefaultLimits()
	l.Steering = Range{Min: 0, Max: 5}
	c := Controls{Steering: 4}.Clamped(l)
	assert.Equal(t, 1.0, c.Steering)
}
