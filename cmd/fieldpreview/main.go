// Flow field preview tool - shows the steering angle of each noise backend as
// a hue map with direction ticks.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"image/color"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/flowfield/systems"
)

const (
	windowWidth  = 1100
	windowHeight = 640
	previewW     = 720
	previewH     = 540
	gridW        = 180
	gridH        = 135
	arrowStep    = 9 // grid cells between direction ticks
	panelWidth   = windowWidth - previewW - 30
)

var backends = []string{systems.BackendPerlin, systems.BackendSimplex, systems.BackendGoPerlin}

// FieldParams holds the sampling parameters
type FieldParams struct {
	Backend    int
	Seed       int64
	NoiseScale float32
	TimeRate   float32
	Flip       bool
}

func defaultParams() FieldParams {
	return FieldParams{
		Backend:    0,
		Seed:       1,
		NoiseScale: systems.DefaultNoiseScale,
		TimeRate:   0.005,
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Flow Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()
	field := systems.NewNoiseField(backends[params.Backend], params.Seed)

	angles := make([]float64, gridW*gridH)
	img := rl.GenImageColor(gridW, gridH, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	var t float64
	animating := false
	needsRegen := true

	for !rl.WindowShouldClose() {
		if animating {
			t += float64(params.TimeRate)
			needsRegen = true
		}

		if needsRegen {
			c := systems.Controls{NoiseScale: float64(params.NoiseScale), FlipDimension: params.Flip}
			sampleAngles(angles, field, t, c)
			updateTexture(texture, angles)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: gridW, Height: gridH},
			rl.Rectangle{X: 10, Y: 10, Width: previewW, Height: previewH},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		drawTicks(angles)
		rl.DrawRectangleLines(10, 10, previewW, previewH, rl.DarkGray)

		statsY := int32(previewH + 25)
		mean, spread := angleStats(angles)
		rl.DrawText(fmt.Sprintf("Mean angle: %.1f deg  Coherence: %.3f", mean, spread), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Time: %.3f", t), 15, statsY+20, 16, rl.DarkGray)

		panelX := float32(previewW + 20)
		panelY := float32(10)

		rl.DrawText("Flow Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("Noise scale (world to noise units)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newScale := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"", "",
			params.NoiseScale, 0.0002, 0.01,
		)
		rl.DrawText(fmt.Sprintf("%.4f", params.NoiseScale), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newScale != params.NoiseScale {
			params.NoiseScale = newScale
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Time rate (per frame)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.TimeRate = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"", "",
			params.TimeRate, 0, 0.05,
		)
		rl.DrawText(fmt.Sprintf("%.3f", params.TimeRate), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 35

		rl.DrawText("Seed", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"", "",
			float32(params.Seed), 0, 9999,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Seed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int64(newSeed) != params.Seed {
			params.Seed = int64(newSeed)
			field = systems.NewNoiseField(backends[params.Backend], params.Seed)
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Backend: "+backends[params.Backend]) {
			params.Backend = (params.Backend + 1) % len(backends)
			field = systems.NewNoiseField(backends[params.Backend], params.Seed)
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, toggleText(params.Flip, "Flipped", "Flip Axes")) {
			params.Flip = !params.Flip
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			t = 0
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 9999))
			field = systems.NewNoiseField(backends[params.Backend], params.Seed)
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			field = systems.NewNoiseField(backends[params.Backend], params.Seed)
			t = 0
			needsRegen = true
		}
		panelY += 55

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			out := ""
			for _, line := range yamlLines(params) {
				out += line + "\n"
			}
			rl.SetClipboardText(out)
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

func yamlLines(p FieldParams) []string {
	return []string{
		"field:",
		fmt.Sprintf("  backend: %s", backends[p.Backend]),
		fmt.Sprintf("  seed: %d", p.Seed),
		fmt.Sprintf("  noise_scale: %.4f", p.NoiseScale),
		fmt.Sprintf("  time_step: %.3f", p.TimeRate),
	}
}

// sampleAngles fills angles (radians) using the same sampling as particle steering.
// Grid cells map onto a previewW x previewH world.
func sampleAngles(angles []float64, field systems.NoiseField, t float64, c systems.Controls) {
	cellW := float64(previewW) / gridW
	cellH := float64(previewH) / gridH
	for y := 0; y < gridH; y++ {
		wy := (float64(y) + 0.5) * cellH
		for x := 0; x < gridW; x++ {
			wx := (float64(x) + 0.5) * cellW
			angles[y*gridW+x] = systems.SteeringAngle(field, wx, wy, t, c)
		}
	}
}

// angleStats returns the circular mean in degrees and the resultant length.
func angleStats(angles []float64) (float64, float64) {
	var sx, sy float64
	for _, a := range angles {
		sx += math.Cos(a)
		sy += math.Sin(a)
	}
	n := float64(len(angles))
	mean := math.Atan2(sy, sx) * 180 / math.Pi
	if mean < 0 {
		mean += 360
	}
	return mean, math.Hypot(sx, sy) / n
}

func drawTicks(angles []float64) {
	cellW := float32(previewW) / gridW
	cellH := float32(previewH) / gridH
	length := cellW * arrowStep * 0.4
	for y := arrowStep / 2; y < gridH; y += arrowStep {
		for x := arrowStep / 2; x < gridW; x += arrowStep {
			a := angles[y*gridW+x]
			cx := 10 + (float32(x)+0.5)*cellW
			cy := 10 + (float32(y)+0.5)*cellH
			ex := cx + float32(math.Cos(a))*length
			ey := cy + float32(math.Sin(a))*length
			rl.DrawLineV(rl.Vector2{X: cx, Y: cy}, rl.Vector2{X: ex, Y: ey}, rl.Black)
			rl.DrawCircleV(rl.Vector2{X: ex, Y: ey}, 1.5, rl.Black)
		}
	}
}

// updateTexture colors each cell by its steering angle around the hue wheel.
func updateTexture(texture rl.Texture2D, angles []float64) {
	pixels := make([]color.RGBA, len(angles))
	for i, a := range angles {
		deg := math.Mod(a*180/math.Pi, 360)
		if deg < 0 {
			deg += 360
		}
		r, g, b := colorful.Hsv(deg, 0.65, 0.95).RGB255()
		pixels[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	rl.UpdateTexture(texture, pixels)
}
