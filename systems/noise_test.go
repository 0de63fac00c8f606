package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allBackends = []string{BackendPerlin, BackendSimplex, BackendGoPerlin}

func TestNoiseBackendsBounded(t *testing.T) {
	for _, backend := range allBackends {
		t.Run(backend, func(t *testing.T) {
			field := NewNoiseField(backend, 7)
			for x := -5.0; x <= 5; x += 0.37 {
				for y := -5.0; y <= 5; y += 0.41 {
					v := field.Sample(x, y, 0.123)
					require.GreaterOrEqual(t, v, -1.0)
					require.LessOrEqual(t, v, 1.0)
				}
			}
		})
	}
}

func TestNoiseDeterministic(t *testing.T) {
	for _, backend := range allBackends {
		a := NewNoiseField(backend, 42)
		b := NewNoiseField(backend, 42)
		for i := 0; i < 50; i++ {
			x, y, z := float64(i)*0.13, float64(i)*0.29, float64(i)*0.005
			assert.Equal(t, a.Sample(x, y, z), b.Sample(x, y, z), backend)
		}
	}
}

func TestNoiseContinuous(t *testing.T) {
	const eps = 1e-4
	for _, backend := range allBackends {
		field := NewNoiseField(backend, 3)
		for i := 0; i < 100; i++ {
			x, y, z := float64(i)*0.071, float64(i)*0.053, float64(i)*0.011
			v := field.Sample(x, y, z)
			assert.InDelta(t, v, field.Sample(x+eps, y, z), 0.01, backend)
			assert.InDelta(t, v, field.Sample(x, y+eps, z), 0.01, backend)
			assert.InDelta(t, v, field.Sample(x, y, z+eps), 0.01, backend)
		}
	}
}

func TestNoiseFieldsVary(t *testing.T) {
	for _, backend := range allBackends {
		field := NewNoiseField(backend, 11)
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := 0; i < 200; i++ {
			v := field.Sample(float64(i)*0.31, float64(i)*0.17, 0)
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		assert.Greater(t, hi-lo, 0.1, "%s should not be flat", backend)
	}
}

func TestUnknownBackendFallsBack(t *testing.T) {
	_, ok := NewNoiseField("worley", 1).(*PerlinNoise)
	assert.True(t, ok)

	_, ok = NewNoiseField("", 1).(*PerlinNoise)
	assert.True(t, ok)
}
