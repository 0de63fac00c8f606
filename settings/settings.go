// Package settings holds the user-editable state of the control panel and
// maps it onto the per-frame simulation controls.
package settings

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/flowfield/config"
	"github.com/pthm-cable/flowfield/systems"
)

// Shape is how a particle is drawn.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
)

// String returns the display name.
func (s Shape) String() string {
	if s == ShapeSquare {
		return "Square"
	}
	return "Circle"
}

// Settings is everything the control panel edits.
type Settings struct {
	Speed         float64
	Steering      float64
	FlipDimension bool

	GridSize    int
	ShowDensity bool

	Directional bool
	HueStart    float64
	HueEnd      float64
	RGBStart    systems.RGB
	RGBEnd      systems.RGB

	ParticleSize  int
	ParticleShape Shape

	LFOEnabled   bool
	LFOAmplitude float64
	LFORate      float64
	Waveform     systems.Waveform

	MenuCollapsed bool
}

// FromConfig builds the default settings from the controls section.
func FromConfig(c config.ControlsConfig) Settings {
	return Settings{
		Speed:         c.Speed,
		Steering:      c.Steering,
		FlipDimension: c.FlipDimension,
		GridSize:      c.GridSize,
		ShowDensity:   c.ShowDensity,
		Directional:   c.Directional,
		HueStart:      c.HueStart,
		HueEnd:        c.HueEnd,
		RGBStart:      rgbFromConfig(c.RGBStart),
		RGBEnd:        rgbFromConfig(c.RGBEnd),
		ParticleSize:  c.ParticleSize,
		ParticleShape: Shape(c.ParticleShape),
		LFOEnabled:    c.LFOEnabled,
		LFOAmplitude:  c.LFOAmplitude,
		LFORate:       c.LFORate,
		Waveform:      systems.Waveform(c.Waveform),
		MenuCollapsed: c.MenuCollapsed,
	}
}

func rgbFromConfig(c [3]int) systems.RGB {
	return systems.RGB{R: clampByte(c[0]), G: clampByte(c[1]), B: clampByte(c[2])}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Limits maps the limits section onto the simulation's control limits.
func Limits(l config.LimitsConfig) systems.Limits {
	return systems.Limits{
		Speed:        systems.Range{Min: l.Speed.Min, Max: l.Speed.Max},
		Steering:     systems.Range{Min: l.Steering.Min, Max: l.Steering.Max},
		LFOAmplitude: systems.Range{Min: l.LFOAmplitude.Min, Max: l.LFOAmplitude.Max},
		LFORate:      systems.Range{Min: l.LFORate.Min, Max: l.LFORate.Max},
	}
}

// Controls returns the simulation controls for these settings.
func (s Settings) Controls(noiseScale float64) systems.Controls {
	mode := systems.ColorPositional
	if s.Directional {
		mode = systems.ColorDirectional
	}
	return systems.Controls{
		Speed:         s.Speed,
		Steering:      s.Steering,
		FlipDimension: s.FlipDimension,
		NoiseScale:    noiseScale,
		LFO: systems.LFOSettings{
			Enabled:   s.LFOEnabled,
			Amplitude: s.LFOAmplitude,
			Rate:      s.LFORate,
			Waveform:  s.Waveform,
		},
		ColorMode: mode,
		Hue:       systems.HuePair{Start: s.HueStart, End: s.HueEnd},
		RGB:       systems.RGBPair{Start: s.RGBStart, End: s.RGBEnd},
	}
}

// Clamp moves every numeric setting into its slider range.
func (s *Settings) Clamp(l config.LimitsConfig) {
	s.Speed = clampRange(s.Speed, l.Speed)
	s.Steering = clampRange(s.Steering, l.Steering)
	s.GridSize = int(math.Round(clampRange(float64(s.GridSize), l.GridSize)))
	s.ParticleSize = int(math.Round(clampRange(float64(s.ParticleSize), l.ParticleSize)))
	s.LFOAmplitude = clampRange(s.LFOAmplitude, l.LFOAmplitude)
	s.LFORate = clampRange(s.LFORate, l.LFORate)
	s.HueStart = clampRange(s.HueStart, config.Range{Min: 0, Max: 360})
	s.HueEnd = clampRange(s.HueEnd, config.Range{Min: 0, Max: 360})
	if s.Waveform < 0 || int(s.Waveform) >= systems.NumWaveforms {
		s.Waveform = systems.WaveSine
	}
	if s.ParticleShape != ShapeSquare {
		s.ParticleShape = ShapeCircle
	}
}

func clampRange(v float64, r config.Range) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Randomize draws every slider uniformly from its range, except particle
// size. Toggles and the waveform are left alone.
func (s *Settings) Randomize(rng *rand.Rand, l config.LimitsConfig) {
	s.Speed = uniform(rng, l.Speed)
	s.Steering = uniform(rng, l.Steering)
	s.GridSize = int(math.Round(uniform(rng, l.GridSize)))
	s.HueStart = rng.Float64() * 360
	s.HueEnd = rng.Float64() * 360
	s.RGBStart = randomRGB(rng)
	s.RGBEnd = randomRGB(rng)
	s.LFOAmplitude = uniform(rng, l.LFOAmplitude)
	s.LFORate = uniform(rng, l.LFORate)
}

func uniform(rng *rand.Rand, r config.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func randomRGB(rng *rand.Rand) systems.RGB {
	return systems.RGB{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))}
}

// NextWaveform cycles to the following waveform.
func (s *Settings) NextWaveform() {
	s.Waveform = systems.Waveform((int(s.Waveform) + 1) % systems.NumWaveforms)
}

// ToggleShape switches between circle and square.
func (s *Settings) ToggleShape() {
	if s.ParticleShape == ShapeSquare {
		s.ParticleShape = ShapeCircle
	} else {
		s.ParticleShape = ShapeSquare
	}
}
