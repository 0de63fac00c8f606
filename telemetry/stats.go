package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/flowfield/systems"
)

// WindowStats holds aggregated statistics for a window of frames.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTime         float64 `csv:"sim_time"` // field time t at window end

	// Population at window end and changes during the window
	Population int `csv:"population"`
	Added      int `csv:"added"`
	Removed    int `csv:"removed"`
	Resets     int `csv:"resets"`
	Frames     int `csv:"frames"` // frames actually stepped (paused frames excluded)

	// Speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Heading alignment
	HeadingMean float64 `csv:"heading_mean"` // circular mean, degrees
	Coherence   float64 `csv:"coherence"`    // mean resultant length, 0 (random) to 1 (aligned)

	// Density
	DensityMax       int     `csv:"density_max"`
	DensityOccupancy float64 `csv:"density_occupancy"` // fraction of non-empty cells

	// Controls at window end
	Speed    float64 `csv:"ctl_speed"`
	Steering float64 `csv:"ctl_steering"`
	LFO      float64 `csv:"lfo_offset"`
}

// MotionStats summarises particle velocities and headings.
type MotionStats struct {
	SpeedMean, SpeedStd          float64
	SpeedP10, SpeedP50, SpeedP90 float64
	HeadingMean                  float64 // degrees, [0, 360)
	Coherence                    float64
}

// ComputeMotionStats computes speed percentiles and heading alignment.
// An empty population yields the zero value.
func ComputeMotionStats(particles []systems.Particle) MotionStats {
	n := len(particles)
	if n == 0 {
		return MotionStats{}
	}

	speeds := make([]float64, n)
	headings := make([]float64, n)
	var sumCos, sumSin float64
	for i := range particles {
		speeds[i] = particles[i].Speed()
		rad := particles[i].Heading * math.Pi / 180
		headings[i] = rad
		sumCos += math.Cos(rad)
		sumSin += math.Sin(rad)
	}

	var ms MotionStats
	ms.SpeedMean, ms.SpeedStd = stat.MeanStdDev(speeds, nil)
	if n < 2 {
		ms.SpeedStd = 0
	}

	sort.Float64s(speeds)
	ms.SpeedP10 = stat.Quantile(0.10, stat.Empirical, speeds, nil)
	ms.SpeedP50 = stat.Quantile(0.50, stat.Empirical, speeds, nil)
	ms.SpeedP90 = stat.Quantile(0.90, stat.Empirical, speeds, nil)

	mean := stat.CircularMean(headings, nil) * 180 / math.Pi
	if mean < 0 {
		mean += 360
	}
	ms.HeadingMean = mean
	ms.Coherence = math.Hypot(sumCos, sumSin) / float64(n)

	return ms
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTime),
		slog.Int("population", s.Population),
		slog.Int("added", s.Added),
		slog.Int("removed", s.Removed),
		slog.Int("resets", s.Resets),
		slog.Int("frames", s.Frames),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("heading_mean", s.HeadingMean),
		slog.Float64("coherence", s.Coherence),
		slog.Int("density_max", s.DensityMax),
		slog.Float64("density_occupancy", s.DensityOccupancy),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTime,
		"population", s.Population,
		"added", s.Added,
		"removed", s.Removed,
		"resets", s.Resets,
		"frames", s.Frames,
		"speed_mean", s.SpeedMean,
		"speed_std", s.SpeedStd,
		"speed_p10", s.SpeedP10,
		"speed_p50", s.SpeedP50,
		"speed_p90", s.SpeedP90,
		"heading_mean", s.HeadingMean,
		"coherence", s.Coherence,
		"density_max", s.DensityMax,
		"density_occupancy", s.DensityOccupancy,
		"ctl_speed", s.Speed,
		"ctl_steering", s.Steering,
		"lfo_offset", s.LFO,
	)
}
