package systems

import "math"

// Waveform selects the LFO shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

// NumWaveforms is the number of selectable waveforms.
const NumWaveforms = 4

var waveformNames = [NumWaveforms]string{"Sine", "Square", "Triangle", "Saw"}

// String returns the display name. Unknown values report as Sine.
func (w Waveform) String() string {
	if w < 0 || int(w) >= NumWaveforms {
		return waveformNames[WaveSine]
	}
	return waveformNames[w]
}

// Oscillate evaluates a low-frequency oscillator at time t.
// Phase is measured in cycles (t*rate). A non-positive rate yields exactly 0.
// The result always lies in [-amplitude, amplitude].
func Oscillate(t, rate, amplitude float64, w Waveform) float64 {
	if rate <= 0 {
		return 0
	}
	phase := t * rate

	switch w {
	case WaveSquare:
		if math.Sin(2*math.Pi*phase) >= 0 {
			return amplitude
		}
		return -amplitude
	case WaveTriangle:
		return amplitude * (2*math.Abs(2*frac(phase)-1) - 1)
	case WaveSaw:
		return amplitude * (2*frac(phase) - 1)
	default:
		return amplitude * math.Sin(2*math.Pi*phase)
	}
}
