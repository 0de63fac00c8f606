package systems

import "math"

// Bounds describes the toroidal world rectangle [0, Width) x [0, Height).
type Bounds struct {
	Width, Height float64
}

// wrap maps v into [0, size). Handles any number of laps in either direction.
func wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	r := math.Mod(v, size)
	if r < 0 {
		r += size
	}
	// r+size can round up to size for tiny negative r
	if r >= size {
		r = 0
	}
	return r
}

// frac returns x - floor(x), always in [0, 1).
func frac(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}

// clamp clamps v between minVal and maxVal.
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// normalizeDegrees wraps an angle in degrees to [0, 360).
func normalizeDegrees(deg float64) float64 {
	return wrap(deg, 360)
}
