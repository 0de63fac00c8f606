package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/flowfield/config"
)

func newHeadlessGame(t *testing.T) *Game {
	t.Helper()
	require.NoError(t, config.Init(""))
	g := NewGameWithOptions(Options{Seed: 7, Headless: true, Particles: 50})
	t.Cleanup(g.Unload)
	return g
}

func TestUpdateHeadlessSteps(t *testing.T) {
	g := newHeadlessGame(t)
	step := config.Cfg().Field.TimeStep

	for i := 0; i < 3; i++ {
		g.UpdateHeadless()
	}
	assert.Equal(t, int32(3), g.Tick())
	assert.InDelta(t, 3*step, g.Time(), 1e-12)
	assert.Equal(t, 50, g.Population())
}

func TestPausedClockKeepsRunning(t *testing.T) {
	g := newHeadlessGame(t)
	step := config.Cfg().Field.TimeStep

	g.UpdateHeadless()
	before := g.particles.Particles()

	g.paused = true
	for i := 0; i < 4; i++ {
		g.UpdateHeadless()
	}

	assert.True(t, g.Paused())
	assert.Equal(t, int32(1), g.Tick())
	assert.InDelta(t, 5*step, g.Time(), 1e-12)
	assert.Equal(t, before, g.particles.Particles())
}
