package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flowfield/telemetry"
	"github.com/pthm-cable/flowfield/ui"
)

// Draw renders the frame and the control panel, then applies panel actions.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	if g.settings.ShowDensity {
		g.perfCollector.StartPhase(telemetry.PhaseDensity)
		g.density = g.particles.RebuildDensity(g.settings.GridSize)
		g.densityRenderer.Draw(g.density)
	}

	g.perfCollector.StartPhase(telemetry.PhaseRender)
	g.particleRenderer.Draw(g.particles, g.Controls(), g.settings.ParticleSize, g.settings.ParticleShape)

	act := g.panel.Draw(&g.settings, ui.Info{
		Population: g.particles.Population(),
		BatchSize:  g.batchSize,
		Paused:     g.paused,
		FPS:        rl.GetFPS(),
		Time:       g.t,
		Backend:    g.backend,
	})

	rl.EndDrawing()

	g.perfCollector.EndTick()
	g.perfCollector.RecordFrame()

	g.applyActions(act)
}
