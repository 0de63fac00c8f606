package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func circularDistance(a, b float64) float64 {
	d := math.Abs(normalizeDegrees(a) - normalizeDegrees(b))
	return math.Min(d, 360-d)
}

func TestInterpolateHueShortArc(t *testing.T) {
	assert.Less(t, circularDistance(InterpolateHue(350, 10, 0.5), 0), 1e-9)
	assert.Less(t, circularDistance(InterpolateHue(10, 350, 0.5), 0), 1e-9)
	assert.Less(t, circularDistance(InterpolateHue(350, 10, 0.25), 355), 1e-9)
}

func TestInterpolateHueDirect(t *testing.T) {
	assert.InDelta(t, 60.0, InterpolateHue(0, 120, 0.5), 1e-9)
	assert.InDelta(t, 0.0, InterpolateHue(0, 120, 0), 1e-9)
	assert.InDelta(t, 120.0, InterpolateHue(0, 120, 1), 1e-9)
	assert.InDelta(t, 180.0, InterpolateHue(100, 260, 0.5), 1e-9)
}

func TestInterpolateHueWrapsStart(t *testing.T) {
	// 0 and 240 are more than half a turn apart, so the path runs through 300.
	assert.InDelta(t, 300.0, InterpolateHue(0, 240, 0.5), 1e-9)
	assert.Less(t, circularDistance(InterpolateHue(0, 240, 0), 0), 1e-9)
	assert.InDelta(t, 240.0, InterpolateHue(0, 240, 1), 1e-9)
}

func TestDirectionalColor(t *testing.T) {
	hues := HuePair{Start: 0, End: 120}
	assert.Equal(t, RGB{R: 255}, DirectionalColor(0, hues))
	assert.Equal(t, RGB{R: 255}, DirectionalColor(360, hues))
}

func TestPositionalColorSingleParticle(t *testing.T) {
	pair := RGBPair{Start: RGB{R: 255}, End: RGB{B: 255}}
	assert.Equal(t, pair.Start, PositionalColor(0, 1, pair))
}

func TestPositionalColorEndpoints(t *testing.T) {
	pair := RGBPair{Start: RGB{R: 255}, End: RGB{B: 255}}
	assert.Equal(t, pair.Start, PositionalColor(0, 5, pair))
	assert.Equal(t, pair.End, PositionalColor(4, 5, pair))

	mid := PositionalColor(1, 3, pair)
	assert.InDelta(t, 127, int(mid.R), 1)
	assert.Equal(t, uint8(0), mid.G)
	assert.InDelta(t, 127, int(mid.B), 1)
}

func TestParticleColorMode(t *testing.T) {
	c := Controls{
		Hue: HuePair{Start: 0, End: 240},
		RGB: RGBPair{Start: RGB{G: 255}, End: RGB{B: 255}},
	}
	p := Particle{Heading: 0}

	c.ColorMode = ColorPositional
	assert.Equal(t, RGB{G: 255}, ParticleColor(0, 10, p, c))

	c.ColorMode = ColorDirectional
	assert.Equal(t, RGB{R: 255}, ParticleColor(0, 10, p, c))
}

func TestDensityColor(t *testing.T) {
	hot, alpha := DensityColor(10, 10)
	assert.Equal(t, RGB{R: 255}, hot)
	assert.Equal(t, uint8(255), alpha)

	cold, alpha := DensityColor(0, 10)
	assert.Equal(t, uint8(80), alpha)
	assert.Greater(t, cold.B, cold.R)
	assert.Less(t, int(cold.B), 64)

	// Zero max is treated as 1.
	_, alpha = DensityColor(0, 0)
	assert.Equal(t, uint8(80), alpha)
}
