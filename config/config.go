// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Particles ParticlesConfig `yaml:"particles"`
	Field     FieldConfig     `yaml:"field"`
	Controls  ControlsConfig  `yaml:"controls"`
	Limits    LimitsConfig    `yaml:"limits"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Audio     AudioConfig     `yaml:"audio"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds simulation world dimensions.
type WorldConfig struct {
	Width  int `yaml:"width"`  // World width in world units (0 = use screen width)
	Height int `yaml:"height"` // World height in world units (0 = use screen height)
}

// ParticlesConfig holds population parameters.
type ParticlesConfig struct {
	Initial           int `yaml:"initial"`
	BatchSize         int `yaml:"batch_size"`         // Particles added/removed per button press
	ParallelThreshold int `yaml:"parallel_threshold"` // Below this, StepAll stays single-threaded
}

// FieldConfig holds noise field parameters.
type FieldConfig struct {
	Backend    string  `yaml:"backend"`     // perlin, simplex or goperlin
	Seed       int64   `yaml:"seed"`        // 0 = time-based
	NoiseScale float64 `yaml:"noise_scale"` // World units to noise units
	TimeStep   float64 `yaml:"time_step"`   // Field time advanced per frame
}

// ControlsConfig holds the initial (and reset) values of the control panel.
type ControlsConfig struct {
	Speed         float64 `yaml:"speed"`
	Steering      float64 `yaml:"steering"`
	FlipDimension bool    `yaml:"flip_dimension"`
	GridSize      int     `yaml:"grid_size"`
	ShowDensity   bool    `yaml:"show_density"`
	Directional   bool    `yaml:"directional"`
	HueStart      float64 `yaml:"hue_start"`
	HueEnd        float64 `yaml:"hue_end"`
	RGBStart      [3]int  `yaml:"rgb_start"`
	RGBEnd        [3]int  `yaml:"rgb_end"`
	ParticleSize  int     `yaml:"particle_size"`
	ParticleShape int     `yaml:"particle_shape"` // 0 = circle, 1 = square
	LFOEnabled    bool    `yaml:"lfo_enabled"`
	LFOAmplitude  float64 `yaml:"lfo_amplitude"`
	LFORate       float64 `yaml:"lfo_rate"`
	Waveform      int     `yaml:"waveform"` // 0 sine, 1 square, 2 triangle, 3 saw
	MenuCollapsed bool    `yaml:"menu_collapsed"`
}

// Range is an inclusive slider range.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// LimitsConfig holds the valid range of every control.
type LimitsConfig struct {
	Speed        Range `yaml:"speed"`
	Steering     Range `yaml:"steering"`
	GridSize     Range `yaml:"grid_size"`
	ParticleSize Range `yaml:"particle_size"`
	LFOAmplitude Range `yaml:"lfo_amplitude"`
	LFORate      Range `yaml:"lfo_rate"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds of wall-clock frames per window (at target fps)
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// AudioConfig holds LFO sonification parameters.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	BaseFreq   float64 `yaml:"base_freq"` // Tone frequency at zero LFO
	Depth      float64 `yaml:"depth"`     // Hz of pitch swing per unit of normalised LFO
	Volume     float64 `yaml:"volume"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW      float64 // Effective world width
	WorldH      float64 // Effective world height
	FrameDT     float64 // Seconds per frame at target fps
	WindowTicks int32   // Frames per telemetry window
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW <= 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH <= 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW = float64(worldW)
	c.Derived.WorldH = float64(worldH)

	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.FrameDT = 1.0 / float64(fps)

	ticks := int32(c.Telemetry.StatsWindow / c.Derived.FrameDT)
	if ticks < 1 {
		ticks = 1
	}
	c.Derived.WindowTicks = ticks

	if c.Particles.BatchSize <= 0 {
		c.Particles.BatchSize = 1000
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
