// Package components defines ECS components for the simulation.
package components

// Position represents a particle's world position.
type Position struct {
	X, Y float64
}

// Velocity represents a particle's velocity in world units per frame.
type Velocity struct {
	X, Y float64
}

// Heading is the steering direction in degrees, [0, 360).
// It follows the field's target angle, not the (lagging) velocity.
type Heading struct {
	Deg float64
}
