// Package systems implements the flow field: noise sampling, particle
// stepping, the density grid and particle colour.
package systems

import (
	"math"
	"math/rand"
)

// DefaultNoiseScale converts world units to noise units.
const DefaultNoiseScale = 0.002

// Particle is a single flow particle.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Heading float64 // degrees, [0, 360)
}

// NewParticle places a particle uniformly inside bounds with zero velocity.
func NewParticle(rng *rand.Rand, bounds Bounds) Particle {
	return Particle{
		X: wrap(rng.Float64()*bounds.Width, bounds.Width),
		Y: wrap(rng.Float64()*bounds.Height, bounds.Height),
	}
}

// SteeringAngle samples the field for the particle's target direction in radians.
// The LFO offset is applied to x; flipping swaps which coordinate feeds which
// noise axis.
func SteeringAngle(field NoiseField, x, y, t float64, c Controls) float64 {
	lfo := c.LFOValue(t)
	scale := c.NoiseScale
	var n float64
	if c.FlipDimension {
		n = field.Sample(y*scale, (x+lfo)*scale, t)
	} else {
		n = field.Sample((x+lfo)*scale, y*scale, t)
	}
	return n * 2 * math.Pi
}

// Step advances the particle by one frame.
// Velocity eases toward the field's target velocity by c.Steering; the heading
// is taken from the target angle so color can lead the actual motion.
func (p *Particle) Step(t float64, c Controls, field NoiseField, bounds Bounds) {
	angle := SteeringAngle(field, p.X, p.Y, t, c)
	p.steerToward(math.Cos(angle)*c.Speed, math.Sin(angle)*c.Speed, c.Steering)

	p.X += p.VX
	p.Y += p.VY

	p.Heading = normalizeDegrees(angle * 180 / math.Pi)

	p.X = wrap(p.X, bounds.Width)
	p.Y = wrap(p.Y, bounds.Height)
}

// steerToward applies one step of exponential smoothing toward (tx, ty).
func (p *Particle) steerToward(tx, ty, strength float64) {
	p.VX += (tx - p.VX) * strength
	p.VY += (ty - p.VY) * strength
}

// Speed returns the velocity magnitude.
func (p Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}
