package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/flowfield/systems"
)

func TestComputeMotionStatsEmpty(t *testing.T) {
	assert.Equal(t, MotionStats{}, ComputeMotionStats(nil))
}

func TestComputeMotionStatsSpeeds(t *testing.T) {
	particles := make([]systems.Particle, 5)
	for i := range particles {
		particles[i] = systems.Particle{VX: float64(i + 1)}
	}

	ms := ComputeMotionStats(particles)
	assert.InDelta(t, 3.0, ms.SpeedMean, 1e-9)
	assert.InDelta(t, 1.5811, ms.SpeedStd, 1e-3)
	assert.InDelta(t, 1.0, ms.SpeedP10, 1e-9)
	assert.InDelta(t, 3.0, ms.SpeedP50, 1e-9)
	assert.InDelta(t, 5.0, ms.SpeedP90, 1e-9)
}

func TestComputeMotionStatsSingleParticle(t *testing.T) {
	ms := ComputeMotionStats([]systems.Particle{{VX: 3, VY: 4, Heading: 90}})
	assert.InDelta(t, 5.0, ms.SpeedMean, 1e-9)
	assert.Zero(t, ms.SpeedStd)
	assert.InDelta(t, 90.0, ms.HeadingMean, 1e-9)
	assert.InDelta(t, 1.0, ms.Coherence, 1e-9)
}

func TestHeadingCoherence(t *testing.T) {
	aligned := []systems.Particle{{Heading: 350}, {Heading: 10}, {Heading: 0}}
	ms := ComputeMotionStats(aligned)
	assert.Greater(t, ms.Coherence, 0.97)
	// Circular mean of 350/10/0 is 0, not 120.
	assert.True(t, ms.HeadingMean < 1e-6 || ms.HeadingMean > 360-1e-6, "mean=%v", ms.HeadingMean)

	opposed := []systems.Particle{{Heading: 0}, {Heading: 90}, {Heading: 180}, {Heading: 270}}
	assert.InDelta(t, 0.0, ComputeMotionStats(opposed).Coherence, 1e-9)
}
