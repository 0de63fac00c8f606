package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSystem(t testing.TB, n, threshold int) *ParticleSystem {
	t.Helper()
	s := NewParticleSystem(Bounds{Width: 800, Height: 600}, NewPerlinNoise(1), rand.New(rand.NewSource(1)), n, threshold)
	t.Cleanup(s.Close)
	return s
}

func TestParticleSystemPopulation(t *testing.T) {
	s := newTestSystem(t, 1000, 0)
	assert.Equal(t, 1000, s.Population())
	assert.Len(t, s.Particles(), 1000)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	s := newTestSystem(t, 10, 0)
	before := s.Particles()

	s.Add(5)
	assert.Equal(t, 15, s.Population())

	removed := s.Remove(5)
	assert.Equal(t, 5, removed)
	assert.Equal(t, 10, s.Population())
	assert.Equal(t, before, s.Particles(), "remove should drop the newest particles")
}

func TestRemoveMoreThanPopulation(t *testing.T) {
	s := newTestSystem(t, 3, 0)
	assert.Equal(t, 3, s.Remove(1000))
	assert.Equal(t, 0, s.Population())
	assert.Equal(t, 0, s.Remove(1))
	assert.Equal(t, 0, s.Remove(-4))

	// Stepping an empty system is a no-op.
	s.StepAll(0, testControls())
	assert.Empty(t, s.Particles())
}

func TestAddNewParticlesAtRest(t *testing.T) {
	s := newTestSystem(t, 0, 0)
	s.Add(100)
	s.ForEach(func(i int, p Particle) {
		assert.Zero(t, p.VX)
		assert.Zero(t, p.VY)
	})
}

func TestStepAllKeepsParticlesInBounds(t *testing.T) {
	s := newTestSystem(t, 500, 0)
	c := testControls()
	c.Speed = 10
	c.Steering = 0.2
	c.LFO = LFOSettings{Enabled: true, Amplitude: 300, Rate: 1}

	b := s.Bounds()
	for step := 0; step < 100; step++ {
		s.StepAll(float64(step)*0.005, c)
	}
	s.ForEach(func(i int, p Particle) {
		require.True(t, p.X >= 0 && p.X < b.Width, "particle %d x=%v", i, p.X)
		require.True(t, p.Y >= 0 && p.Y < b.Height, "particle %d y=%v", i, p.Y)
	})
}

func TestResetKeepsPopulationAndSpreadsUniformly(t *testing.T) {
	s := newTestSystem(t, 10000, 0)
	c := testControls()
	for step := 0; step < 20; step++ {
		s.StepAll(float64(step)*0.005, c)
	}

	s.Reset()
	require.Equal(t, 10000, s.Population())

	// 4x4 buckets, each expecting ~625 particles.
	var buckets [16]int
	b := s.Bounds()
	s.ForEach(func(i int, p Particle) {
		assert.Zero(t, p.VX)
		assert.Zero(t, p.VY)
		col := int(p.X / (b.Width / 4))
		row := int(p.Y / (b.Height / 4))
		buckets[row*4+col]++
	})
	for i, n := range buckets {
		assert.InDelta(t, 625, n, 156, "bucket %d", i)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	seq := newTestSystem(t, 5000, 0)
	par := newTestSystem(t, 5000, 1)

	c := testControls()
	c.LFO = LFOSettings{Enabled: true, Amplitude: 100, Rate: 0.5, Waveform: WaveTriangle}
	for step := 0; step < 10; step++ {
		tm := float64(step) * 0.005
		seq.StepAll(tm, c)
		par.StepAll(tm, c)
	}

	assert.Equal(t, seq.Particles(), par.Particles())
}

func TestSetAndAt(t *testing.T) {
	s := newTestSystem(t, 2, 0)
	s.Set(1, Particle{X: 810, Y: -10, VX: 1, VY: 2, Heading: 370})

	p := s.At(1)
	assert.InDelta(t, 10.0, p.X, 1e-9)
	assert.InDelta(t, 590.0, p.Y, 1e-9)
	assert.Equal(t, 1.0, p.VX)
	assert.Equal(t, 2.0, p.VY)
	assert.InDelta(t, 10.0, p.Heading, 1e-9)
}

func TestSetFieldIgnoresNil(t *testing.T) {
	s := newTestSystem(t, 1, 0)
	f := s.Field()
	s.SetField(nil)
	assert.Same(t, f, s.Field())

	simplex := NewSimplexField(3)
	s.SetField(simplex)
	assert.Same(t, simplex, s.Field())
}

func BenchmarkStepAllSequential(b *testing.B) {
	benchmarkStepAll(b, 0)
}

func BenchmarkStepAllParallel(b *testing.B) {
	benchmarkStepAll(b, 1)
}

func benchmarkStepAll(b *testing.B, threshold int) {
	s := newTestSystem(b, 20000, threshold)
	c := testControls()

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		s.StepAll(float64(n)*0.005, c)
	}
}
