package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/flowfield/config"
)

func TestNilOutputManager(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	require.Nil(t, om)

	assert.NoError(t, om.WriteTelemetry(WindowStats{}))
	assert.NoError(t, om.WritePerf(PerfStats{}, 0, 0))
	assert.NoError(t, om.WriteConfig(nil))
	assert.NoError(t, om.Close())
	assert.Empty(t, om.Dir())
}

func TestOutputManagerWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, om.WriteConfig(cfg))

	for i := int32(1); i <= 3; i++ {
		require.NoError(t, om.WriteTelemetry(WindowStats{WindowEndTick: i * 600, Population: 1000}))
		require.NoError(t, om.WritePerf(PerfStats{PhasePct: map[string]float64{}}, i*600, 1000))
	}
	require.NoError(t, om.Close())

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4, "header plus one row per window")
	assert.True(t, strings.HasPrefix(lines[0], "window_end,sim_time,population"))
	assert.True(t, strings.HasPrefix(lines[3], "1800,"))

	data, err = os.ReadFile(filepath.Join(dir, "perf.csv"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 4)

	reloaded, err := config.Load(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, cfg.Controls, reloaded.Controls)
}
