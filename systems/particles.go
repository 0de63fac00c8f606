package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/flowfield/components"
)

// DefaultParallelThreshold is the population at which StepAll switches to
// the worker pool.
const DefaultParallelThreshold = 2048

// ParticleSystem owns the particle population.
// Particles live as entities in an ECS world; order records insertion order
// so that Remove drops the newest particles and colors can be indexed.
type ParticleSystem struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Heading]
	order  []ecs.Entity

	bounds Bounds
	field  NoiseField
	rng    *rand.Rand

	// Per-step snapshot; workers only touch this slice.
	scratch []Particle

	pool              *workerPool
	parallelThreshold int

	density DensityGrid
}

// NewParticleSystem creates a system with n particles at random positions.
// A parallelThreshold <= 0 disables the worker pool.
func NewParticleSystem(bounds Bounds, field NoiseField, rng *rand.Rand, n, parallelThreshold int) *ParticleSystem {
	if field == nil {
		field = NewPerlinNoise(0)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	world := ecs.NewWorld()
	s := &ParticleSystem{
		world:             world,
		mapper:            ecs.NewMap3[components.Position, components.Velocity, components.Heading](world),
		bounds:            bounds,
		field:             field,
		rng:               rng,
		parallelThreshold: parallelThreshold,
	}
	if parallelThreshold > 0 {
		s.pool = newWorkerPool(0)
	}

	s.Add(n)
	return s
}

// Close stops the worker pool, if any.
func (s *ParticleSystem) Close() {
	if s.pool != nil {
		s.pool.stop()
	}
}

// Bounds returns the world rectangle.
func (s *ParticleSystem) Bounds() Bounds {
	return s.bounds
}

// Field returns the noise field used for steering.
func (s *ParticleSystem) Field() NoiseField {
	return s.field
}

// SetField swaps the noise field used by subsequent steps.
func (s *ParticleSystem) SetField(field NoiseField) {
	if field != nil {
		s.field = field
	}
}

// Population returns the number of live particles.
func (s *ParticleSystem) Population() int {
	return len(s.order)
}

// StepAll advances every particle by one frame.
// Every particle sees the same t and controls. StepAll returns only after all
// particles have been stepped.
func (s *ParticleSystem) StepAll(t float64, c Controls) {
	n := len(s.order)
	if n == 0 {
		return
	}

	// Phase A: snapshot components (single-threaded)
	s.snapshot()

	// Phase B: compute (parallel above threshold)
	step := func(start, end int) {
		for i := start; i < end; i++ {
			s.scratch[i].Step(t, c, s.field, s.bounds)
		}
	}
	if s.pool != nil && n >= s.parallelThreshold {
		s.pool.run(n, step)
	} else {
		step(0, n)
	}

	// Phase C: apply (single-threaded)
	s.apply()
}

func (s *ParticleSystem) snapshot() {
	if cap(s.scratch) < len(s.order) {
		s.scratch = make([]Particle, len(s.order))
	}
	s.scratch = s.scratch[:len(s.order)]

	for i, e := range s.order {
		pos, vel, head := s.mapper.Get(e)
		s.scratch[i] = Particle{X: pos.X, Y: pos.Y, VX: vel.X, VY: vel.Y, Heading: head.Deg}
	}
}

func (s *ParticleSystem) apply() {
	for i, e := range s.order {
		p := &s.scratch[i]
		pos, vel, head := s.mapper.Get(e)
		pos.X, pos.Y = p.X, p.Y
		vel.X, vel.Y = p.VX, p.VY
		head.Deg = p.Heading
	}
}

// Add appends n particles at uniform random positions with zero velocity.
func (s *ParticleSystem) Add(n int) {
	for i := 0; i < n; i++ {
		p := NewParticle(s.rng, s.bounds)
		pos := components.Position{X: p.X, Y: p.Y}
		vel := components.Velocity{}
		head := components.Heading{}
		s.order = append(s.order, s.mapper.NewEntity(&pos, &vel, &head))
	}
}

// Remove deletes up to n of the most recently added particles and returns how
// many were removed.
func (s *ParticleSystem) Remove(n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(s.order) {
		n = len(s.order)
	}

	keep := len(s.order) - n
	for _, e := range s.order[keep:] {
		s.world.RemoveEntity(e)
	}
	clear(s.order[keep:])
	s.order = s.order[:keep]
	return n
}

// Reset moves every particle to a fresh uniform random position and zeroes
// its velocity. Population is unchanged.
func (s *ParticleSystem) Reset() {
	for _, e := range s.order {
		p := NewParticle(s.rng, s.bounds)
		pos, vel, head := s.mapper.Get(e)
		pos.X, pos.Y = p.X, p.Y
		vel.X, vel.Y = 0, 0
		head.Deg = 0
	}
}

// At returns a copy of the i-th particle in insertion order.
func (s *ParticleSystem) At(i int) Particle {
	pos, vel, head := s.mapper.Get(s.order[i])
	return Particle{X: pos.X, Y: pos.Y, VX: vel.X, VY: vel.Y, Heading: head.Deg}
}

// Set overwrites the i-th particle. Positions are wrapped into bounds.
func (s *ParticleSystem) Set(i int, p Particle) {
	pos, vel, head := s.mapper.Get(s.order[i])
	pos.X = wrap(p.X, s.bounds.Width)
	pos.Y = wrap(p.Y, s.bounds.Height)
	vel.X, vel.Y = p.VX, p.VY
	head.Deg = normalizeDegrees(p.Heading)
}

// ForEach calls fn for every particle in insertion order.
func (s *ParticleSystem) ForEach(fn func(i int, p Particle)) {
	for i, e := range s.order {
		pos, vel, head := s.mapper.Get(e)
		fn(i, Particle{X: pos.X, Y: pos.Y, VX: vel.X, VY: vel.Y, Heading: head.Deg})
	}
}

// Particles returns a copy of the population in insertion order.
func (s *ParticleSystem) Particles() []Particle {
	out := make([]Particle, 0, len(s.order))
	s.ForEach(func(_ int, p Particle) {
		out = append(out, p)
	})
	return out
}

// RebuildDensity bins the current positions into a grid of cellSize cells.
// The returned grid is owned by the system and is overwritten by the next call.
func (s *ParticleSystem) RebuildDensity(cellSize int) *DensityGrid {
	s.density.reset(cellSize, s.bounds)
	for _, e := range s.order {
		pos, _, _ := s.mapper.Get(e)
		s.density.insert(pos.X, pos.Y)
	}
	s.density.finish()
	return &s.density
}
