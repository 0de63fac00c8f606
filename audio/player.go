package audio

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/flowfield/config"
	"github.com/pthm-cable/flowfield/systems"
)

// Player plays an LFOTone through the system speaker.
// A nil *Player is valid and does nothing.
type Player struct {
	tone        *LFOTone
	ctrl        *beep.Ctrl
	rate        beep.SampleRate
	initialized bool
}

// NewPlayer creates a player from the audio config. It does not touch the
// audio device until Start.
func NewPlayer(cfg config.AudioConfig) *Player {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}
	tone := NewLFOTone(rate, cfg.BaseFreq, cfg.Depth, cfg.Volume)
	return &Player{
		tone: tone,
		ctrl: &beep.Ctrl{Streamer: tone, Paused: true},
		rate: rate,
	}
}

// Start opens the speaker and begins streaming (initially paused).
func (p *Player) Start() error {
	if p == nil || p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(p.ctrl)
	p.initialized = true
	slog.Info("audio started", "sample_rate", int(p.rate))
	return nil
}

// Update follows the LFO of c at time t. The tone is silent while the
// simulation is paused or the LFO is off.
func (p *Player) Update(c systems.Controls, t float64, paused bool) {
	if p == nil {
		return
	}
	p.tone.SetLFO(NormalizedLFO(c, t))

	silent := paused || !c.LFO.Enabled || c.LFO.Rate <= 0
	if !p.initialized {
		p.ctrl.Paused = silent
		return
	}
	speaker.Lock()
	p.ctrl.Paused = silent
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	if p == nil || !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// NormalizedLFO returns the LFO offset of c at time t divided by its amplitude.
func NormalizedLFO(c systems.Controls, t float64) float64 {
	if c.LFO.Amplitude <= 0 {
		return 0
	}
	return c.LFOValue(t) / c.LFO.Amplitude
}
