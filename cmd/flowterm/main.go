// Terminal viewer - runs the particle system without a window and draws its
// density grid as a heat-map, one terminal cell per grid cell.
//
// Usage: go run ./cmd/flowterm [-config path] [-particles n] [-backend name]
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/flowfield/config"
	"github.com/pthm-cable/flowfield/settings"
	"github.com/pthm-cable/flowfield/systems"
)

// shades map normalized density to glyphs, sparse to dense.
var shades = []rune{' ', '.', ':', '-', '=', '+', '*', '#', '%', '@'}

type viewer struct {
	screen        tcell.Screen
	width, height int

	ps       *systems.ParticleSystem
	settings settings.Settings
	limits   config.LimitsConfig
	scale    float64
	step     float64
	t        float64
	paused   bool
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	particles := flag.Int("particles", 0, "Initial particle count (0 = use config)")
	backend := flag.String("backend", "", "Noise backend (empty = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	fps := flag.Int("fps", 30, "Frames per second")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	v, err := newViewer(cfg, *particles, *backend, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "starting terminal: %v\n", err)
		os.Exit(1)
	}
	defer v.close()

	v.run(time.Second / time.Duration(max(*fps, 1)))
}

func newViewer(cfg *config.Config, particles int, backend string, seed int64) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if backend == "" {
		backend = cfg.Field.Backend
	}
	if particles <= 0 {
		particles = cfg.Particles.Initial
	}

	s := settings.FromConfig(cfg.Controls)
	s.Clamp(cfg.Limits)

	bounds := systems.Bounds{Width: cfg.Derived.WorldW, Height: cfg.Derived.WorldH}
	rng := rand.New(rand.NewSource(seed))
	v := &viewer{
		screen:   screen,
		ps:       systems.NewParticleSystem(bounds, systems.NewNoiseField(backend, seed), rng, particles, cfg.Particles.ParallelThreshold),
		settings: s,
		limits:   cfg.Limits,
		scale:    cfg.Field.NoiseScale,
		step:     cfg.Field.TimeStep,
	}
	v.width, v.height = screen.Size()
	return v, nil
}

func (v *viewer) close() {
	v.ps.Close()
	v.screen.Fini()
}

func (v *viewer) run(frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if !v.paused {
				v.ps.StepAll(v.t, v.settings.Controls(v.scale))
			}
			v.t += v.step
			v.draw()
		}
	}
}

// handleEvent returns false when the viewer should exit.
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case 'r':
			v.ps.Reset()
		case 'f':
			v.settings.FlipDimension = !v.settings.FlipDimension
		case 'l':
			v.settings.LFOEnabled = !v.settings.LFOEnabled
		case '+', '=':
			v.settings.Speed += 0.5
		case '-':
			v.settings.Speed -= 0.5
		}
		v.settings.Clamp(v.limits)
	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return true
}

// draw bins particles into one cell per terminal character. The last row is
// the status line.
func (v *viewer) draw() {
	v.screen.Clear()
	rows := v.height - 1
	if v.width < 1 || rows < 1 {
		v.screen.Show()
		return
	}

	grid := v.ps.RebuildDensity(cellSizeFor(v.ps.Bounds(), v.width, rows))

	for row := 0; row < grid.Rows && row < rows; row++ {
		for col := 0; col < grid.Cols && col < v.width; col++ {
			n := grid.Count(col, row)
			if n == 0 {
				continue
			}
			rgb, _ := systems.DensityColor(n, grid.Max)
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B)))
			v.screen.SetContent(col, row, shadeFor(grid.Intensity(col, row)), nil, style)
		}
	}

	status := fmt.Sprintf(" n=%d t=%.2f speed=%.1f flip=%t lfo=%t max=%d %s | space pause  r reset  f flip  l lfo  +/- speed  q quit",
		v.ps.Population(), v.t, v.settings.Speed, v.settings.FlipDimension, v.settings.LFOEnabled, grid.Max, pausedLabel(v.paused))
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(status) {
		if i >= v.width {
			break
		}
		v.screen.SetContent(i, v.height-1, r, nil, style)
	}

	v.screen.Show()
}

func shadeFor(intensity float64) rune {
	i := int(intensity * float64(len(shades)-1))
	if i < 1 {
		i = 1
	}
	if i >= len(shades) {
		i = len(shades) - 1
	}
	return shades[i]
}

// cellSizeFor returns the smallest cell size whose grid fits in cols x rows.
func cellSizeFor(b systems.Bounds, cols, rows int) int {
	if cols < 1 || rows < 1 {
		return 1
	}
	cw := int(math.Ceil(b.Width / float64(cols)))
	ch := int(math.Ceil(b.Height / float64(rows)))
	return max(cw, ch, 1)
}

func pausedLabel(paused bool) string {
	if paused {
		return "[paused]"
	}
	return ""
}
