// Package game wires the particle system, control panel, renderers, audio
// and telemetry into a frame loop.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/flowfield/audio"
	"github.com/pthm-cable/flowfield/config"
	"github.com/pthm-cable/flowfield/renderer"
	"github.com/pthm-cable/flowfield/settings"
	"github.com/pthm-cable/flowfield/systems"
	"github.com/pthm-cable/flowfield/telemetry"
	"github.com/pthm-cable/flowfield/ui"
)

// Panel geometry
const (
	panelMargin = 10
	panelWidth  = 280
)

// Options configures a Game beyond what config.yaml holds.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string
	SnapshotDir    string // state dumps on bookmarks
	Headless       bool
	StepsPerUpdate int
	Backend        string // "" = use config
	Particles      int    // 0 = use config
	Audio          bool   // force audio on

	// StatsCallback, if set, receives every flushed telemetry window.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete simulation state.
type Game struct {
	cfg     *config.Config
	rng     *rand.Rand
	rngSeed int64

	particles *systems.ParticleSystem
	backend   string
	fieldSeed int64

	settings   settings.Settings
	defaults   settings.Settings
	limits     systems.Limits
	noiseScale float64
	timeStep   float64
	batchSize  int

	t              float64
	tick           int32
	paused         bool
	headless       bool
	stepsPerUpdate int

	// Last rebuilt density grid; owned by particles.
	density *systems.DensityGrid

	// Rendering (nil when headless)
	panel            *ui.Panel
	particleRenderer *renderer.ParticleRenderer
	densityRenderer  *renderer.DensityRenderer
	screenW, screenH int32

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	bookmarks   *telemetry.BookmarkDetector
	snapshotDir string

	audio *audio.Player
}

// NewGameWithOptions creates a game from the global config.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	backend := cfg.Field.Backend
	if opts.Backend != "" {
		backend = opts.Backend
	}
	initial := cfg.Particles.Initial
	if opts.Particles > 0 {
		initial = opts.Particles
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}
	windowTicks := cfg.Derived.WindowTicks
	if opts.StatsWindowSec > 0 {
		windowTicks = int32(opts.StatsWindowSec / cfg.Derived.FrameDT)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	fieldSeed := cfg.Field.Seed
	if fieldSeed == 0 {
		fieldSeed = opts.Seed
	}

	bounds := systems.Bounds{Width: cfg.Derived.WorldW, Height: cfg.Derived.WorldH}
	field := systems.NewNoiseField(backend, fieldSeed)

	defaults := settings.FromConfig(cfg.Controls)
	defaults.Clamp(cfg.Limits)

	g := &Game{
		cfg:            cfg,
		rng:            rng,
		rngSeed:        opts.Seed,
		particles:      systems.NewParticleSystem(bounds, field, rng, initial, cfg.Particles.ParallelThreshold),
		backend:        backend,
		fieldSeed:      fieldSeed,
		settings:       defaults,
		defaults:       defaults,
		limits:         settings.Limits(cfg.Limits),
		noiseScale:     cfg.Field.NoiseScale,
		timeStep:       cfg.Field.TimeStep,
		batchSize:      cfg.Particles.BatchSize,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
		collector:      telemetry.NewCollector(windowTicks),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:       opts.LogStats,
		statsCallback:  opts.StatsCallback,
		bookmarks:      telemetry.NewBookmarkDetector(10),
		snapshotDir:    opts.SnapshotDir,
	}

	if !opts.Headless {
		g.screenW = int32(cfg.Screen.Width)
		g.screenH = int32(cfg.Screen.Height)
		g.panel = ui.NewPanel(panelMargin, panelMargin, panelWidth, cfg.Limits)
		g.particleRenderer = renderer.NewParticleRenderer(g.screenW, g.screenH, bounds.Width, bounds.Height)
		g.densityRenderer = renderer.NewDensityRenderer(g.screenW, g.screenH, bounds.Width, bounds.Height)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else if om != nil {
		g.outputManager = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config", "error", err)
		}
		slog.Info("output enabled", "dir", om.Dir())
	}

	if (opts.Audio || cfg.Audio.Enabled) && !opts.Headless {
		player := audio.NewPlayer(cfg.Audio)
		if err := player.Start(); err != nil {
			slog.Warn("audio disabled", "error", err)
		} else {
			g.audio = player
		}
	}

	slog.Info("simulation created",
		"seed", g.rngSeed,
		"field_seed", g.fieldSeed,
		"particles", g.particles.Population(),
		"backend", backend,
		"world_w", bounds.Width,
		"world_h", bounds.Height,
		"window_ticks", g.collector.WindowDurationTicks(),
	)

	return g
}

// Controls returns the controls handed to the particle system this frame.
func (g *Game) Controls() systems.Controls {
	return g.settings.Controls(g.noiseScale).Clamped(g.limits)
}

// Update handles input and advances the simulation (graphics mode).
func (g *Game) Update() {
	g.handleInput()

	g.perfCollector.StartTick()
	g.advance()
}

// UpdateHeadless advances the simulation without touching raylib.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartTick()
	g.advance()
	g.perfCollector.EndTick()
}

// advance runs stepsPerUpdate frames unless paused.
// The field clock keeps running while paused, one time step per update, so
// the field has drifted when stepping resumes.
func (g *Game) advance() {
	if g.paused {
		g.t += g.timeStep
		g.audio.Update(g.Controls(), g.t, true)
		return
	}

	c := g.Controls()
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.perfCollector.StartPhase(telemetry.PhaseStep)
		g.particles.StepAll(g.t, c)
		g.t += g.timeStep
		g.tick++
		g.collector.RecordFrame()

		g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
		g.flushTelemetry()
	}
	g.audio.Update(c, g.t, false)
}

// Unload releases resources and flushes output.
func (g *Game) Unload() {
	g.particles.Close()
	g.audio.Close()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Tick returns the number of frames stepped so far.
func (g *Game) Tick() int32 {
	return g.tick
}

// Time returns the field time t.
func (g *Game) Time() float64 {
	return g.t
}

// Population returns the current particle count.
func (g *Game) Population() int {
	return g.particles.Population()
}

// Paused reports whether stepping is suspended.
func (g *Game) Paused() bool {
	return g.paused
}
