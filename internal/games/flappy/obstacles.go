package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Obstacle is a pipe pair with a gap for the bird to pass through.
type Obstacle struct {
	X      float64 // Left edge
	GapTop float64 // Bottom edge of the upper pipe
	Passed bool    // Whether the bird has cleared it (for scoring)
}

// Right returns the trailing edge of the pipe.
func (o Obstacle) Right(width float64) float64 {
	return o.X + width
}

// HorizontalSpan returns the pipe's extent along x.
func (o Obstacle) HorizontalSpan(width float64) core.Span {
	return core.Span{Min: o.X, Max: o.X + width}
}

// GapSpan returns the open vertical band between the two pipes.
func (o Obstacle) GapSpan(gap float64) core.Span {
	return core.Span{Min: o.GapTop, Max: o.GapTop + gap}
}

// Course holds the live pipes in spawn order.
type Course struct {
	obstacles []Obstacle
}

// NewCourse creates an empty course.
func NewCourse() *Course {
	return &Course{obstacles: make([]Obstacle, 0, 8)}
}

// Reset removes every pipe.
func (c *Course) Reset() {
	c.obstacles = c.obstacles[:0]
}

// Spawn appends a pipe at x with the given gap top.
func (c *Course) Spawn(x, gapTop float64) {
	c.obstacles = append(c.obstacles, Obstacle{X: x, GapTop: gapTop})
}

// Advance scrolls every pipe left by speed, then drops the ones whose
// trailing edge has left the field. The prune test uses the moved position.
func (c *Course) Advance(speed, width float64) {
	for i := range c.obstacles {
		c.obstacles[i].X -= speed
	}

	kept := c.obstacles[:0]
	for _, o := range c.obstacles {
		if o.X > -width {
			kept = append(kept, o)
		}
	}
	c.obstacles = kept
}

// MarkPassed flags every pipe whose trailing edge is strictly left of
// playerX and returns how many were newly flagged. A pipe counts once.
func (c *Course) MarkPassed(playerX, width float64) int {
	passed := 0
	for i := range c.obstacles {
		if !c.obstacles[i].Passed && c.obstacles[i].Right(width) < playerX {
			c.obstacles[i].Passed = true
			passed++
		}
	}
	return passed
}

// Obstacles returns the live pipes. The slice is owned by the course.
func (c *Course) Obstacles() []Obstacle {
	return c.obstacles
}

// Collides reports whether the bird touches the ceiling, the ground band or
// any pipe it is horizontally inside. The result does not depend on the
// order of obstacles.
func Collides(p Player, obstacles []Obstacle, cfg config.FlappyConfig) bool {
	air := core.Span{Min: 0, Max: cfg.Field.GroundY()}
	if !air.Contains(p.BoundsSpan(cfg.Player)) {
		return true
	}

	column := p.HorizontalSpan(cfg.Player)
	body := p.BodySpan(cfg.Player)
	for _, o := range obstacles {
		if !column.Overlaps(o.HorizontalSpan(cfg.Obstacles.Width)) {
			continue
		}
		if !o.GapSpan(cfg.Obstacles.Gap).Contains(body) {
			return true
		}
	}
	return false
}
