package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Player is the bird. It only moves vertically; its column is fixed by config.
type Player struct {
	Y        float64 // Center of the bird
	Velocity float64 // Positive is downward
}

// Integrate advances the bird by one frame with semi-implicit Euler:
// velocity first, then position with the new velocity.
func (p *Player) Integrate(gravity float64) {
	p.Velocity += gravity
	p.Y += p.Velocity
}

// Flap assigns the jump impulse. It overwrites the velocity, so repeated
// flaps never stack.
func (p *Player) Flap(impulse float64) {
	p.Velocity = impulse
}

// HorizontalSpan returns the bird's extent along x.
func (p Player) HorizontalSpan(cfg config.PlayerConfig) core.Span {
	return core.Around(cfg.X, cfg.HalfSize())
}

// BoundsSpan returns the vertical extent checked against the ceiling and the ground.
func (p Player) BoundsSpan(cfg config.PlayerConfig) core.Span {
	return core.Around(p.Y, cfg.HalfSize())
}

// BodySpan returns the vertical extent checked against pipe gaps. It is a
// little slimmer than BoundsSpan because the bird is drawn as an ellipse.
func (p Player) BodySpan(cfg config.PlayerConfig) core.Span {
	return core.Around(p.Y, cfg.PipeHalfHeight())
}
