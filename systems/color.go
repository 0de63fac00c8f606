package systems

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// InterpolateHue blends two hues (degrees) along the shorter arc.
// rel is in [0, 1]; the result is in [0, 360).
func InterpolateHue(start, end, rel float64) float64 {
	h1 := start / 360
	h2 := end / 360
	if math.Abs(h2-h1) > 0.5 {
		if h1 > h2 {
			h2 += 1
		} else {
			h1 += 1
		}
	}
	return normalizeDegrees(frac(h1+(h2-h1)*rel) * 360)
}

// DirectionalColor maps a heading in degrees to a fully saturated color
// between the hue endpoints.
func DirectionalColor(heading float64, hues HuePair) RGB {
	rel := normalizeDegrees(heading) / 360
	h := InterpolateHue(hues.Start, hues.End, rel)
	r, g, b := colorful.Hsv(h, 1, 1).RGB255()
	return RGB{R: r, G: g, B: b}
}

// PositionalColor blends the RGB endpoints by a particle's population index.
// A population of one yields the start color.
func PositionalColor(index, population int, pair RGBPair) RGB {
	denom := population - 1
	if denom < 1 {
		denom = 1
	}
	rel := clamp(float64(index)/float64(denom), 0, 1)

	a := toColorful(pair.Start)
	b := toColorful(pair.End)
	r, g, bl := a.BlendRgb(b, rel).Clamped().RGB255()
	return RGB{R: r, G: g, B: bl}
}

// ParticleColor picks the color for the i-th particle according to c.ColorMode.
func ParticleColor(i, population int, p Particle, c Controls) RGB {
	if c.ColorMode == ColorDirectional {
		return DirectionalColor(p.Heading, c.Hue)
	}
	return PositionalColor(i, population, c.RGB)
}

// DensityColor maps a cell count to a heat-map color and alpha.
// Empty cells run cold and faint; the busiest cell is bright red and opaque.
func DensityColor(count, max int) (RGB, uint8) {
	if max < 1 {
		max = 1
	}
	r := clamp(float64(count)/float64(max), 0, 1)

	hue := frac(0.6-0.6*r) * 360
	value := 0.2 + 0.8*r
	cr, cg, cb := colorful.Hsv(hue, 1, value).RGB255()
	alpha := uint8(80 + 175*r)
	return RGB{R: cr, G: cg, B: cb}, alpha
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
