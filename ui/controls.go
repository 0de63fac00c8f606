package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flowfield/config"
	"github.com/pthm-cable/flowfield/settings"
	"github.com/pthm-cable/flowfield/systems"
)

// Actions are the one-shot button presses of a frame.
type Actions struct {
	TogglePause      bool
	AddBatch         bool
	RemoveBatch      bool
	ResetPositions   bool
	ResetDefaults    bool
	RandomizeSliders bool
}

// Info is read-only status shown at the top of the panel.
type Info struct {
	Population int
	BatchSize  int
	Paused     bool
	FPS        int32
	Time       float64
	Backend    string
}

// Panel is the left-side control panel. Sliders and toggles edit Settings in
// place; buttons that act on the simulation are reported as Actions.
type Panel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	limits   config.LimitsConfig
}

// NewPanel creates a panel anchored at (x, y).
func NewPanel(x, y, width int32, limits config.LimitsConfig) *Panel {
	return &Panel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		limits:   limits,
	}
}

// Draw renders the panel and applies user edits to s.
func (p *Panel) Draw(s *settings.Settings, info Info) Actions {
	var act Actions
	r := p.renderer
	pad := r.Theme.Padding

	if s.MenuCollapsed {
		if r.Button(p.x, p.y, 70, "Menu >") {
			s.MenuCollapsed = false
		}
		return act
	}

	r.DrawPanel(p.x, p.y, p.width, int32(rl.GetScreenHeight())-p.y*2)

	x := p.x + pad
	y := p.y + pad
	inner := p.width - pad*2
	half := (inner - pad) / 2

	rl.DrawText("Flow Field", x, y, 18, rl.White)
	if r.Button(x+inner-30, y-2, 30, "<") {
		s.MenuCollapsed = true
	}
	y += 28

	y = r.DrawLabelValue(x, y, "Particles", fmt.Sprintf("%d", info.Population))
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", info.FPS))
	y = r.DrawLabelValue(x, y, "Time", fmt.Sprintf("%.3f", info.Time))
	y = r.DrawLabelValue(x, y, "Noise", info.Backend)
	y += 6

	if r.Button(x, y, half, toggleText(info.Paused, "Resume", "Pause")) {
		act.TogglePause = true
	}
	if r.Button(x+half+pad, y, half, "Randomize positions") {
		act.ResetPositions = true
	}
	y += r.Theme.ButtonHeight + 4

	if r.Button(x, y, half, fmt.Sprintf("+%d", info.BatchSize)) {
		act.AddBatch = true
	}
	if r.Button(x+half+pad, y, half, fmt.Sprintf("-%d", info.BatchSize)) {
		act.RemoveBatch = true
	}
	y += r.Theme.ButtonHeight + 4

	if r.Button(x, y, half, "Reset defaults") {
		act.ResetDefaults = true
	}
	if r.Button(x+half+pad, y, half, "Randomize sliders") {
		act.RandomizeSliders = true
	}
	y += r.Theme.ButtonHeight + 10

	y = p.drawMotion(s, x, y, inner, half)
	y = p.drawDensity(s, x, y, inner, half)
	y = p.drawColor(s, x, y, inner)
	y = p.drawParticle(s, x, y, inner, half)
	p.drawLFO(s, x, y, inner, half)

	return act
}

func (p *Panel) drawMotion(s *settings.Settings, x, y, inner, half int32) int32 {
	r := p.renderer
	l := p.limits

	y = r.DrawSectionHeader(x, y, "Motion")

	y = r.SliderFloat(x, y, inner, "Speed", "%.2f", &s.Speed, l.Speed.Min, l.Speed.Max)
	y = r.SliderFloat(x, y, inner, "Steering", "%.3f", &s.Steering, l.Steering.Min, l.Steering.Max)

	if r.Button(x, y, half, toggleText(s.FlipDimension, "Flip: on", "Flip: off")) {
		s.FlipDimension = !s.FlipDimension
	}
	return y + r.Theme.ButtonHeight + 10
}

func (p *Panel) drawDensity(s *settings.Settings, x, y, inner, half int32) int32 {
	r := p.renderer
	l := p.limits

	y = r.DrawSectionHeader(x, y, "Density")
	if r.Button(x, y, half, toggleText(s.ShowDensity, "Heat-map: on", "Heat-map: off")) {
		s.ShowDensity = !s.ShowDensity
	}
	y += r.Theme.ButtonHeight + 4

	y = r.SliderInt(x, y, inner, "Grid size", &s.GridSize, l.GridSize.Min, l.GridSize.Max)
	return y + 4
}

func (p *Panel) drawColor(s *settings.Settings, x, y, inner int32) int32 {
	r := p.renderer

	y = r.DrawSectionHeader(x, y, "Color")
	if r.Button(x, y, inner, toggleText(s.Directional, "Mode: directional", "Mode: positional")) {
		s.Directional = !s.Directional
	}
	y += r.Theme.ButtonHeight + 4

	if s.Directional {
		y = r.SliderFloat(x, y, inner, "Hue start", "%.0f", &s.HueStart, 0, 360)
		y = r.SliderFloat(x, y, inner, "Hue end", "%.0f", &s.HueEnd, 0, 360)

		// Preview strip across the full heading range.
		hues := systems.HuePair{Start: s.HueStart, End: s.HueEnd}
		for i := int32(0); i < inner; i++ {
			rgb := systems.DirectionalColor(float64(i)/float64(inner)*360, hues)
			rl.DrawRectangle(x+i, y, 1, 8, rl.Color{R: rgb.R, G: rgb.G, B: rgb.B, A: 255})
		}
		return y + 16
	}

	y = p.rgbSliders(&s.RGBStart, "Start", x, y, inner)
	y = p.rgbSliders(&s.RGBEnd, "End", x, y, inner)
	return y + 4
}

func (p *Panel) rgbSliders(c *systems.RGB, name string, x, y, inner int32) int32 {
	r := p.renderer

	y = r.DrawLabelValue(x, y, name, "")
	r.Swatch(x+inner-12, y-r.Theme.LineHeight, 12, rl.Color{R: c.R, G: c.G, B: c.B, A: 255})

	channels := []struct {
		label string
		value *uint8
	}{{"R", &c.R}, {"G", &c.G}, {"B", &c.B}}
	for _, ch := range channels {
		v := int(*ch.value)
		y = r.SliderInt(x, y, inner, ch.label, &v, 0, 255)
		*ch.value = uint8(v)
	}
	return y
}

func (p *Panel) drawParticle(s *settings.Settings, x, y, inner, half int32) int32 {
	r := p.renderer
	l := p.limits

	y = r.DrawSectionHeader(x, y, "Particles")

	y = r.SliderInt(x, y, inner, "Size", &s.ParticleSize, l.ParticleSize.Min, l.ParticleSize.Max)

	if r.Button(x, y, half, "Shape: "+s.ParticleShape.String()) {
		s.ToggleShape()
	}
	return y + r.Theme.ButtonHeight + 10
}

func (p *Panel) drawLFO(s *settings.Settings, x, y, inner, half int32) int32 {
	r := p.renderer
	l := p.limits
	pad := r.Theme.Padding

	y = r.DrawSectionHeader(x, y, "LFO")
	if r.Button(x, y, half, toggleText(s.LFOEnabled, "LFO: on", "LFO: off")) {
		s.LFOEnabled = !s.LFOEnabled
	}
	if r.Button(x+half+pad, y, half, s.Waveform.String()) {
		s.NextWaveform()
	}
	y += r.Theme.ButtonHeight + 4

	y = r.SliderFloat(x, y, inner, "Amplitude", "%.0f", &s.LFOAmplitude, l.LFOAmplitude.Min, l.LFOAmplitude.Max)
	y = r.SliderFloat(x, y, inner, "Rate", "%.2f", &s.LFORate, l.LFORate.Min, l.LFORate.Max)
	return y
}
