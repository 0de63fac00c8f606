package game

import (
	"log/slog"

	"github.com/pthm-cable/flowfield/systems"
	"github.com/pthm-cable/flowfield/ui"
)

// applyActions performs the panel's button presses for this frame.
func (g *Game) applyActions(act ui.Actions) {
	if act.TogglePause {
		g.paused = !g.paused
		slog.Info("pause toggled", "paused", g.paused, "tick", g.tick)
	}
	if act.AddBatch {
		g.addParticles(g.batchSize)
	}
	if act.RemoveBatch {
		g.removeParticles(g.batchSize)
	}
	if act.ResetPositions {
		g.resetPositions()
	}
	if act.ResetDefaults {
		collapsed := g.settings.MenuCollapsed
		g.settings = g.defaults
		g.settings.MenuCollapsed = collapsed
	}
	if act.RandomizeSliders {
		g.settings.Randomize(g.rng, g.cfg.Limits)
	}
	g.settings.Clamp(g.cfg.Limits)
}

func (g *Game) addParticles(n int) {
	g.particles.Add(n)
	g.collector.RecordAdd(n)
}

func (g *Game) removeParticles(n int) {
	removed := g.particles.Remove(n)
	g.collector.RecordRemove(removed)
}

func (g *Game) resetPositions() {
	g.particles.Reset()
	g.collector.RecordReset()
}

// backendCycle is the order the B key steps through noise backends.
var backendCycle = []string{systems.BackendPerlin, systems.BackendSimplex, systems.BackendGoPerlin}

// cycleBackend switches the noise field to the next backend, keeping the seed.
func (g *Game) cycleBackend() {
	next := backendCycle[0]
	for i, b := range backendCycle {
		if b == g.backend {
			next = backendCycle[(i+1)%len(backendCycle)]
			break
		}
	}

	g.particles.SetField(systems.NewNoiseField(next, g.fieldSeed))
	g.backend = next
	slog.Info("noise backend changed", "backend", next)
}
