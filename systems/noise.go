package systems

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// NoiseField maps a sample point (x, y, t) to a scalar in [-1, 1].
// Implementations must be deterministic for the lifetime of the value and
// continuous in all three inputs.
type NoiseField interface {
	Sample(x, y, t float64) float64
}

// Noise backend names accepted by NewNoiseField.
const (
	BackendPerlin   = "perlin"
	BackendSimplex  = "simplex"
	BackendGoPerlin = "goperlin"
)

// NewNoiseField creates the named noise backend. Unknown names fall back to
// the built-in Perlin implementation.
func NewNoiseField(backend string, seed int64) NoiseField {
	switch backend {
	case BackendPerlin, "":
		return NewPerlinNoise(seed)
	case BackendSimplex:
		return NewSimplexField(seed)
	case BackendGoPerlin:
		return NewGoPerlinField(seed)
	default:
		slog.Warn("unknown noise backend, using perlin", "backend", backend)
		return NewPerlinNoise(seed)
	}
}

// PerlinNoise generates coherent noise values.
type PerlinNoise struct {
	perm [512]int
}

// NewPerlinNoise creates a new Perlin noise generator.
func NewPerlinNoise(seed int64) *PerlinNoise {
	p := &PerlinNoise{}
	rng := rand.New(rand.NewSource(seed))

	// Initialize permutation table
	var perm [256]int
	for i := range perm {
		perm[i] = i
	}

	// Shuffle
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	// Duplicate
	for i := 0; i < 256; i++ {
		p.perm[i] = perm[i]
		p.perm[i+256] = perm[i]
	}

	return p
}

// Sample implements NoiseField.
func (p *PerlinNoise) Sample(x, y, t float64) float64 {
	return clamp(p.Noise3D(x, y, t), -1, 1)
}

// Noise3D returns a noise value for 3D coordinates.
func (p *PerlinNoise) Noise3D(x, y, z float64) float64 {
	// Find unit cube
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255
	Z := int(math.Floor(z)) & 255

	// Find relative position in cube
	x -= math.Floor(x)
	y -= math.Floor(y)
	z -= math.Floor(z)

	// Compute fade curves
	u := fade(x)
	v := fade(y)
	w := fade(z)

	// Hash coordinates of cube corners
	A := p.perm[X] + Y
	AA := p.perm[A] + Z
	AB := p.perm[A+1] + Z
	B := p.perm[X+1] + Y
	BA := p.perm[B] + Z
	BB := p.perm[B+1] + Z

	// Blend results from 8 corners
	return lerp(w, lerp(v, lerp(u, grad3D(p.perm[AA], x, y, z),
		grad3D(p.perm[BA], x-1, y, z)),
		lerp(u, grad3D(p.perm[AB], x, y-1, z),
			grad3D(p.perm[BB], x-1, y-1, z))),
		lerp(v, lerp(u, grad3D(p.perm[AA+1], x, y, z-1),
			grad3D(p.perm[BA+1], x-1, y, z-1)),
			lerp(u, grad3D(p.perm[AB+1], x, y-1, z-1),
				grad3D(p.perm[BB+1], x-1, y-1, z-1))))
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad3D(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// SimplexField samples OpenSimplex noise.
type SimplexField struct {
	noise opensimplex.Noise
}

// NewSimplexField creates an OpenSimplex-backed field.
func NewSimplexField(seed int64) *SimplexField {
	return &SimplexField{noise: opensimplex.New(seed)}
}

// Sample implements NoiseField.
func (s *SimplexField) Sample(x, y, t float64) float64 {
	return clamp(s.noise.Eval3(x, y, t), -1, 1)
}

// GoPerlinField samples multi-octave Perlin noise from go-perlin.
type GoPerlinField struct {
	noise *perlin.Perlin
}

// Octave parameters for go-perlin: weight falloff, frequency gain, octaves.
const (
	goPerlinAlpha   = 2.0
	goPerlinBeta    = 2.0
	goPerlinOctaves = 3
)

// NewGoPerlinField creates a go-perlin-backed field.
func NewGoPerlinField(seed int64) *GoPerlinField {
	return &GoPerlinField{noise: perlin.NewPerlin(goPerlinAlpha, goPerlinBeta, goPerlinOctaves, seed)}
}

// Sample implements NoiseField.
func (g *GoPerlinField) Sample(x, y, t float64) float64 {
	return clamp(g.noise.Noise3D(x, y, t), -1, 1)
}
