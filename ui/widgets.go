package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight + 2
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// Slider draws a labelled raygui slider bar and returns the (possibly
// changed) value and the next Y position.
func (r *Renderer) Slider(x, y, width int32, label, format string, value, minVal, maxVal float32) (float32, int32) {
	rl.DrawText(label, x, y, r.Theme.FontSize, r.Theme.LabelColor)

	valueText := fmt.Sprintf(format, value)
	valueWidth := rl.MeasureText(valueText, r.Theme.FontSize)
	rl.DrawText(valueText, x+width-valueWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	y += r.Theme.LineHeight

	value = gui.SliderBar(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(r.Theme.SliderHeight)},
		"", "",
		value, minVal, maxVal,
	)
	return value, y + r.Theme.SliderHeight + 6
}

// SliderFloat edits *value with a slider over [minVal, maxVal]. The value is
// only written back when the slider moved, so float32 rounding never leaks
// into untouched settings.
func (r *Renderer) SliderFloat(x, y, width int32, label, format string, value *float64, minVal, maxVal float64) int32 {
	cur := float32(*value)
	next, y := r.Slider(x, y, width, label, format, cur, float32(minVal), float32(maxVal))
	if next != cur {
		*value = float64(next)
	}
	return y
}

// SliderInt is SliderFloat for integer settings.
func (r *Renderer) SliderInt(x, y, width int32, label string, value *int, minVal, maxVal float64) int32 {
	cur := float32(*value)
	next, y := r.Slider(x, y, width, label, "%.0f", cur, float32(minVal), float32(maxVal))
	if next != cur {
		*value = int(math.Round(float64(next)))
	}
	return y
}

// Button draws a raygui button of the given width at (x, y).
func (r *Renderer) Button(x, y, width int32, text string) bool {
	return gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(r.Theme.ButtonHeight)}, text)
}

// Swatch draws a small filled color square.
func (r *Renderer) Swatch(x, y, size int32, c rl.Color) {
	rl.DrawRectangle(x, y, size, size, c)
	rl.DrawRectangleLines(x, y, size, size, r.Theme.PanelBorder)
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
