package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 2560, cfg.Screen.Width)
	assert.Equal(t, 1440, cfg.Screen.Height)
	assert.Equal(t, 1000, cfg.Particles.Initial)
	assert.Equal(t, "perlin", cfg.Field.Backend)
	assert.InDelta(t, 0.002, cfg.Field.NoiseScale, 1e-12)
	assert.InDelta(t, 0.005, cfg.Field.TimeStep, 1e-12)
	assert.InDelta(t, 3.0, cfg.Controls.Speed, 1e-12)
	assert.InDelta(t, 0.01, cfg.Controls.Steering, 1e-12)
	assert.Equal(t, [3]int{255, 0, 0}, cfg.Controls.RGBStart)
	assert.Equal(t, [3]int{0, 0, 255}, cfg.Controls.RGBEnd)
	assert.InDelta(t, 500.0, cfg.Limits.LFOAmplitude.Max, 1e-12)
}

func TestDerivedWorldFallsBackToScreen(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, float64(cfg.Screen.Width), cfg.Derived.WorldW)
	assert.Equal(t, float64(cfg.Screen.Height), cfg.Derived.WorldH)
	assert.InDelta(t, 1.0/60.0, cfg.Derived.FrameDT, 1e-12)
	assert.Equal(t, int32(600), cfg.Derived.WindowTicks)
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	data := []byte("world:\n  width: 100\n  height: 80\ncontrols:\n  speed: 5.5\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, cfg.Derived.WorldW, 1e-12)
	assert.InDelta(t, 80.0, cfg.Derived.WorldH, 1e-12)
	assert.InDelta(t, 5.5, cfg.Controls.Speed, 1e-12)
	// Untouched fields keep their defaults
	assert.InDelta(t, 0.01, cfg.Controls.Steering, 1e-12)
	assert.Equal(t, 32, cfg.Controls.GridSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Controls.HueEnd = 123

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 123.0, loaded.Controls.HueEnd, 1e-12)
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() { global = saved }()

	assert.Panics(t, func() { Cfg() })
}
