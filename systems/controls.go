package systems

// ColorMode selects how particle colors are derived.
type ColorMode int

const (
	// ColorPositional interpolates RGB endpoints by population index.
	ColorPositional ColorMode = iota
	// ColorDirectional interpolates hue endpoints by heading.
	ColorDirectional
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// HuePair holds start and end hues in degrees.
type HuePair struct {
	Start, End float64
}

// RGBPair holds start and end colors.
type RGBPair struct {
	Start, End RGB
}

// LFOSettings configures the oscillator that offsets the noise sample point.
type LFOSettings struct {
	Enabled   bool
	Amplitude float64
	Rate      float64
	Waveform  Waveform
}

// Controls is the per-frame parameter bundle handed to the simulation.
// It is passed by value; the core never keeps a reference to it.
type Controls struct {
	Speed         float64
	Steering      float64 // Fraction of the velocity error removed per step, (0, 1]
	FlipDimension bool
	NoiseScale    float64
	LFO           LFOSettings

	ColorMode ColorMode
	Hue       HuePair
	RGB       RGBPair
}

// LFOValue returns the oscillator offset at time t, or 0 when disabled.
func (c Controls) LFOValue(t float64) float64 {
	if !c.LFO.Enabled {
		return 0
	}
	return Oscillate(t, c.LFO.Rate, c.LFO.Amplitude, c.LFO.Waveform)
}

// Range is an inclusive interval.
type Range struct {
	Min, Max float64
}

// Clamp clamps v into the range.
func (r Range) Clamp(v float64) float64 {
	return clamp(v, r.Min, r.Max)
}

// Limits holds the valid input domain of each control.
type Limits struct {
	Speed        Range
	Steering     Range
	LFOAmplitude Range
	LFORate      Range
}

// DefaultLimits returns the slider ranges of the control panel.
func DefaultLimits() Limits {
	return Limits{
		Speed:        Range{Min: 0.1, Max: 10},
		Steering:     Range{Min: 0.001, Max: 0.2},
		LFOAmplitude: Range{Min: 0, Max: 500},
		LFORate:      Range{Min: 0, Max: 2},
	}
}

// Clamped returns a copy of c with every field moved into its valid domain.
func (c Controls) Clamped(l Limits) Controls {
	c.Speed = l.Speed.Clamp(c.Speed)
	c.Steering = clamp(l.Steering.Clamp(c.Steering), 0, 1)
	c.LFO.Amplitude = l.LFOAmplitude.Clamp(c.LFO.Amplitude)
	c.LFO.Rate = l.LFORate.Clamp(c.LFO.Rate)
	if c.LFO.Waveform < 0 || int(c.LFO.Waveform) >= NumWaveforms {
		c.LFO.Waveform = WaveSine
	}
	if c.NoiseScale < 0 {
		c.NoiseScale = 0
	}
	c.Hue.Start = normalizeDegrees(c.Hue.Start)
	c.Hue.End = normalizeDegrees(c.Hue.End)
	return c
}
