package game

import (
	"log/slog"

	"github.com/pthm-cable/flowfield/telemetry"
)

// flushTelemetry closes the stats window once enough frames have passed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	// Telemetry always sees a fresh grid, even when the heat-map is hidden.
	g.density = g.particles.RebuildDensity(g.settings.GridSize)

	stats := g.collector.Flush(telemetry.Snapshot{
		Tick:      g.tick,
		Time:      g.t,
		Particles: g.particles.Particles(),
		Density:   g.density,
		Controls:  g.Controls(),
	})
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	for _, bm := range g.bookmarks.Check(stats) {
		bm.LogBookmark()
		if g.snapshotDir != "" {
			g.dumpState(&bm)
		}
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick, stats.Population); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// dumpDir is where state dumps go when no snapshot directory was given.
func (g *Game) dumpDir() string {
	switch {
	case g.snapshotDir != "":
		return g.snapshotDir
	case g.outputManager != nil:
		return g.outputManager.Dir()
	default:
		return "."
	}
}

// dumpState writes the current particles and clock, tagged with bm if set.
func (g *Game) dumpState(bm *telemetry.Bookmark) {
	b := g.particles.Bounds()
	state := &telemetry.StateDump{
		Version:     telemetry.DumpVersion,
		Seed:        g.fieldSeed,
		Backend:     g.backend,
		WorldWidth:  b.Width,
		WorldHeight: b.Height,
		Tick:        g.tick,
		Time:        g.t,
		Particles:   telemetry.NewParticleStates(g.particles.Particles()),
		Bookmark:    bm,
	}

	path, err := telemetry.WriteStateDump(state, g.dumpDir())
	if err != nil {
		slog.Error("failed to write state dump", "error", err)
		return
	}
	slog.Info("state dumped", "path", path, "particles", len(state.Particles))
}
