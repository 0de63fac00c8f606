// Package telemetry aggregates windowed flow statistics, bookmarks notable
// windows, and writes CSV logs and state files.
package telemetry

import "github.com/pthm-cable/flowfield/systems"

// Collector accumulates events within fixed-length windows of frames and
// produces WindowStats.
type Collector struct {
	windowDurationTicks int32

	windowStartTick int32

	// Event counters for current window
	added   int
	removed int
	resets  int
	frames  int
}

// NewCollector creates a collector that flushes every windowTicks frames.
func NewCollector(windowTicks int32) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowDurationTicks: windowTicks}
}

// RecordAdd records n particles added.
func (c *Collector) RecordAdd(n int) {
	c.added += n
}

// RecordRemove records n particles removed.
func (c *Collector) RecordRemove(n int) {
	c.removed += n
}

// RecordReset records a position reset.
func (c *Collector) RecordReset() {
	c.resets++
}

// RecordFrame records one stepped frame.
func (c *Collector) RecordFrame() {
	c.frames++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Snapshot is the simulation state sampled at the end of a window.
type Snapshot struct {
	Tick      int32
	Time      float64
	Particles []systems.Particle
	Density   *systems.DensityGrid // may be nil
	Controls  systems.Controls
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(snap Snapshot) WindowStats {
	ms := ComputeMotionStats(snap.Particles)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   snap.Tick,
		SimTime:         snap.Time,

		Population: len(snap.Particles),
		Added:      c.added,
		Removed:    c.removed,
		Resets:     c.resets,
		Frames:     c.frames,

		SpeedMean: ms.SpeedMean,
		SpeedStd:  ms.SpeedStd,
		SpeedP10:  ms.SpeedP10,
		SpeedP50:  ms.SpeedP50,
		SpeedP90:  ms.SpeedP90,

		HeadingMean: ms.HeadingMean,
		Coherence:   ms.Coherence,

		Speed:    snap.Controls.Speed,
		Steering: snap.Controls.Steering,
		LFO:      snap.Controls.LFOValue(snap.Time),
	}

	if g := snap.Density; g != nil && len(g.Counts) > 0 {
		stats.DensityMax = g.Max
		stats.DensityOccupancy = float64(g.Occupied()) / float64(len(g.Counts))
	}

	c.windowStartTick = snap.Tick
	c.added = 0
	c.removed = 0
	c.resets = 0
	c.frames = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
