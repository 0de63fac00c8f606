package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseStep)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseDensity)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	assert.Positive(t, stats.AvgTickDuration)
	assert.Contains(t, stats.PhaseAvg, PhaseStep)
	assert.Contains(t, stats.PhaseAvg, PhaseDensity)
	assert.NotContains(t, stats.PhaseAvg, PhaseRender)
	assert.LessOrEqual(t, stats.MinTickDuration, stats.AvgTickDuration)
	assert.GreaterOrEqual(t, stats.MaxTickDuration, stats.AvgTickDuration)
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseStep)
		time.Sleep(10 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	assert.Positive(t, stats.AvgTickDuration)
	assert.Positive(t, stats.TicksPerSecond)
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase("fast")
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase("slow")
		time.Sleep(2 * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	assert.Greater(t, stats.PhasePct["slow"], stats.PhasePct["fast"])
	assert.LessOrEqual(t, stats.PhasePct["slow"]+stats.PhasePct["fast"], 100.0+1e-9)
}

func TestPerfCollector_ReenteredPhaseAccumulates(t *testing.T) {
	pc := NewPerfCollector(1)

	pc.StartTick()
	pc.StartPhase(PhaseStep)
	time.Sleep(time.Millisecond)
	pc.StartPhase(PhaseRender)
	pc.StartPhase(PhaseStep)
	time.Sleep(time.Millisecond)
	pc.EndTick()

	assert.GreaterOrEqual(t, pc.Stats().PhaseAvg[PhaseStep], 2*time.Millisecond)
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	assert.Zero(t, stats.AvgTickDuration)
	assert.NotNil(t, stats.PhaseAvg)
	assert.NotNil(t, stats.PhasePct)
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	require.GreaterOrEqual(t, stats.FrameDuration, 15*time.Millisecond)
	assert.Positive(t, stats.FPS)
	assert.Less(t, stats.FPS, 70.0)
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{
		AvgTickDuration: 2 * time.Millisecond,
		PhasePct:        map[string]float64{PhaseStep: 60, PhaseRender: 30},
	}
	row := s.ToCSV(600, 1000)

	assert.Equal(t, int32(600), row.WindowEnd)
	assert.Equal(t, 1000, row.Population)
	assert.Equal(t, int64(2000), row.AvgTickUS)
	assert.Equal(t, 60.0, row.StepPct)
	assert.Equal(t, 30.0, row.RenderPct)
	assert.Zero(t, row.DensityPct)
}
