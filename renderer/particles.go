// Package renderer draws the particle system and its density grid with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flowfield/settings"
	"github.com/pthm-cable/flowfield/systems"
)

// ParticleRenderer draws particles as filled circles or squares.
type ParticleRenderer struct {
	view viewport
}

// NewParticleRenderer creates a renderer mapping a world of worldW x worldH
// onto a screen of screenW x screenH.
func NewParticleRenderer(screenW, screenH int32, worldW, worldH float64) *ParticleRenderer {
	return &ParticleRenderer{view: newViewport(screenW, screenH, worldW, worldH)}
}

// Resize updates the screen size after a window resize.
func (r *ParticleRenderer) Resize(screenW, screenH int32) {
	r.view.resize(screenW, screenH)
}

// Draw renders every particle colored according to c.ColorMode.
func (r *ParticleRenderer) Draw(ps *systems.ParticleSystem, c systems.Controls, size int, shape settings.Shape) {
	if size < 1 {
		size = 1
	}
	n := ps.Population()
	radius := float32(size)
	side := int32(size)

	ps.ForEach(func(i int, p systems.Particle) {
		rgb := systems.ParticleColor(i, n, p, c)
		color := rl.Color{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}

		x := float32(p.X) * r.view.scaleX
		y := float32(p.Y) * r.view.scaleY
		if shape == settings.ShapeSquare {
			rl.DrawRectangle(int32(x)-side/2, int32(y)-side/2, side, side, color)
			return
		}
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, color)
	})
}
