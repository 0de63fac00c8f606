package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm-cable/flowfield/systems"
)

// DumpVersion is incremented when the dump format changes.
const DumpVersion = 1

// StateDump is a point-in-time export of the field settings, the clock and
// every particle in insertion order, for offline inspection.
type StateDump struct {
	Version int    `json:"version"`
	Seed    int64  `json:"seed"`
	Backend string `json:"backend"`

	WorldWidth  float64 `json:"world_width"`
	WorldHeight float64 `json:"world_height"`

	Tick int32   `json:"tick"`
	Time float64 `json:"time"`

	Particles []ParticleState `json:"particles"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// ParticleState is the JSON form of one particle.
type ParticleState struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	VX      float64 `json:"vx"`
	VY      float64 `json:"vy"`
	Heading float64 `json:"heading"`
}

// NewParticleStates converts particles to their dumped form.
func NewParticleStates(ps []systems.Particle) []ParticleState {
	out := make([]ParticleState, len(ps))
	for i, p := range ps {
		out[i] = ParticleState{X: p.X, Y: p.Y, VX: p.VX, VY: p.VY, Heading: p.Heading}
	}
	return out
}

// WriteStateDump writes a dump file to dir and returns its path.
func WriteStateDump(state *StateDump, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create dump dir: %w", err)
	}

	name := fmt.Sprintf("state_%d", state.Tick)
	if state.Bookmark != nil {
		sanitized := strings.ReplaceAll(string(state.Bookmark.Type), " ", "_")
		name = fmt.Sprintf("state_%d_%s", state.Tick, sanitized)
	}
	path := filepath.Join(dir, name+".json")

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal dump: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write dump: %w", err)
	}
	return path, nil
}
