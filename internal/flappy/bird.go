// Package flappy implements the flappy simulation: a bird falling under
// gravity, one recycled pipe pair scrolling toward it, and the session state
// machine that ties them together. Everything here runs on a fixed tick and
// has no rendering or terminal dependencies.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Tilt tuning. Applied per tick, so tilt behaviour is tied to the tick rate.
const (
	MaxTilt       = 25.0 // Degrees, both directions
	TiltPerSpeed  = 3.0  // Degrees of target tilt per unit of upward velocity
	TiltSmoothing = 0.15 // Fraction of the remaining tilt covered each tick
)

// Bird is the player entity. X never changes; the world scrolls instead.
type Bird struct {
	X        float64 // Fixed horizontal center
	Y        float64 // Vertical center
	Velocity float64 // Vertical speed, positive = down
	Tilt     float64 // Visual tilt in degrees, positive = nose up

	width       float64
	height      float64
	gravity     float64
	jumpImpulse float64
}

// NewBird creates a bird at rest at the configured start position.
func NewBird(s config.BirdSettings) Bird {
	return Bird{
		X:           s.X,
		Y:           s.Y,
		width:       s.Width,
		height:      s.Height,
		gravity:     s.Gravity,
		jumpImpulse: s.JumpImpulse,
	}
}

// Jump sets the velocity to the jump impulse, overriding whatever it was.
func (b *Bird) Jump() {
	b.Velocity = b.jumpImpulse
}

// Update advances the bird by one tick.
func (b *Bird) Update() {
	b.Velocity += b.gravity
	b.Y += b.Velocity

	target := core.ClampF(-b.Velocity*TiltPerSpeed, -MaxTilt, MaxTilt)
	b.Tilt += (target - b.Tilt) * TiltSmoothing
}

// Box returns the bird's hitbox centered on its position.
// The hitbox does not rotate with the tilt.
func (b Bird) Box() core.Box {
	return core.CenteredBox(b.X, b.Y, b.width, b.height)
}
