package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flowfield/systems"
)

// DensityRenderer draws a density grid as a translucent heat-map.
type DensityRenderer struct {
	view viewport
}

// NewDensityRenderer creates a renderer for a world of worldW x worldH shown
// on a screen of screenW x screenH.
func NewDensityRenderer(screenW, screenH int32, worldW, worldH float64) *DensityRenderer {
	return &DensityRenderer{view: newViewport(screenW, screenH, worldW, worldH)}
}

// Resize updates the screen size after a window resize.
func (r *DensityRenderer) Resize(screenW, screenH int32) {
	r.view.resize(screenW, screenH)
}

// Draw renders one rectangle per cell. Empty cells are drawn too, so the
// background reads as a cold field rather than black.
func (r *DensityRenderer) Draw(g *systems.DensityGrid) {
	if g == nil || g.CellSize < 1 {
		return
	}
	cw := float32(g.CellSize) * r.view.scaleX
	ch := float32(g.CellSize) * r.view.scaleY

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			rgb, alpha := systems.DensityColor(g.Count(col, row), g.Max)
			rl.DrawRectangleRec(
				rl.Rectangle{X: float32(col) * cw, Y: float32(row) * ch, Width: cw, Height: ch},
				rl.Color{R: rgb.R, G: rgb.G, B: rgb.B, A: alpha},
			)
		}
	}
}
