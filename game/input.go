package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flowfield/ui"
)

// handleInput processes keyboard shortcuts. They mirror the panel buttons.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	var act ui.Actions
	act.TogglePause = rl.IsKeyPressed(rl.KeySpace)
	act.ResetPositions = rl.IsKeyPressed(rl.KeyR)
	act.AddBatch = rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd)
	act.RemoveBatch = rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract)
	g.applyActions(act)

	if rl.IsKeyPressed(rl.KeyTab) {
		g.settings.MenuCollapsed = !g.settings.MenuCollapsed
	}
	if rl.IsKeyPressed(rl.KeyD) {
		g.settings.ShowDensity = !g.settings.ShowDensity
	}
	if rl.IsKeyPressed(rl.KeyF) {
		g.settings.FlipDimension = !g.settings.FlipDimension
	}
	if rl.IsKeyPressed(rl.KeyB) {
		g.cycleBackend()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		g.dumpState(nil)
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW, g.screenH = w, h

	g.particleRenderer.Resize(w, h)
	g.densityRenderer.Resize(w, h)
}
