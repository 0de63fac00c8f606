package telemetry

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Phase names for one frame.
const (
	PhaseStep      = "step"
	PhaseDensity   = "density"
	PhaseTelemetry = "telemetry"
	PhaseRender    = "render"
)

// phaseOrder fixes the order phases are logged in.
var phaseOrder = []string{PhaseStep, PhaseDensity, PhaseTelemetry, PhaseRender}

// PerfSample holds timing data for a single frame.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks frame timings over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	tickStart     time.Time
	phaseStart    time.Time
	lastPhase     string

	// Wall-clock time between Draw calls (graphics mode)
	lastFrameTime time.Time
	frameDuration time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize frames.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartTick begins timing a frame.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase ends the running phase, if any, and starts timing phase.
// Re-entering a phase within one frame accumulates.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.lastPhase = phase
}

// EndTick closes the frame and stores it in the window.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)

	p.samples[p.writeIndex] = PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
}

// RecordFrame records the interval since the previous call.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrameTime.IsZero() {
		p.frameDuration = now.Sub(p.lastFrameTime)
	}
	p.lastFrameTime = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	TickJitter      time.Duration // standard deviation of frame time

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // share of average frame time, 0-100

	TicksPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats aggregates the samples currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	out := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frameDuration,
	}
	if p.frameDuration > 0 {
		out.FPS = float64(time.Second) / float64(p.frameDuration)
	}
	if p.sampleCount == 0 {
		return out
	}

	ticks := make([]float64, p.sampleCount)
	phaseSum := make(map[string]time.Duration)
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		ticks[i] = float64(s.TickDuration)
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	mean, std := stat.MeanStdDev(ticks, nil)
	if p.sampleCount < 2 {
		std = 0
	}
	out.AvgTickDuration = time.Duration(mean)
	out.MinTickDuration = time.Duration(floats.Min(ticks))
	out.MaxTickDuration = time.Duration(floats.Max(ticks))
	out.TickJitter = time.Duration(std)

	n := time.Duration(p.sampleCount)
	for phase, sum := range phaseSum {
		avg := sum / n
		out.PhaseAvg[phase] = avg
		if out.AvgTickDuration > 0 {
			out.PhasePct[phase] = float64(avg) / float64(out.AvgTickDuration) * 100
		}
	}

	if out.AvgTickDuration > 0 {
		out.TicksPerSecond = float64(time.Second) / float64(out.AvgTickDuration)
	}
	return out
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"min_tick_us", s.MinTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"jitter_us", s.TickJitter.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}

	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}

	for _, phase := range phaseOrder {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", int(pct*10)/10.0)
		}
	}

	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Int64("jitter_us", s.TickJitter.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}

	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}

	for _, phase := range phaseOrder {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}

	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	Population   int     `csv:"population"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	JitterUS     int64   `csv:"jitter_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	StepPct      float64 `csv:"step_pct"`
	DensityPct   float64 `csv:"density_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
	RenderPct    float64 `csv:"render_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(windowEnd int32, population int) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		Population:   population,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		JitterUS:     s.TickJitter.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		StepPct:      s.PhasePct[PhaseStep],
		DensityPct:   s.PhasePct[PhaseDensity],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
		RenderPct:    s.PhasePct[PhaseRender],
	}
}
