// Package core provides the drawing surface, geometry and input vocabulary
// shared by the game and its frontends. It has no UI dependencies so the
// simulation stays testable.
package core

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Span is a closed interval on one axis of the logical playfield.
type Span struct {
	Min, Max float64
}

// Around returns the span of half-width extent centered on c.
func Around(c, extent float64) Span {
	return Span{Min: c - extent, Max: c + extent}
}

// Overlaps reports whether the open interiors of the two spans intersect.
// Spans that only touch at an edge do not overlap.
func (s Span) Overlaps(o Span) bool {
	return s.Max > o.Min && s.Min < o.Max
}

// Contains reports whether inner lies entirely within s, edges included.
func (s Span) Contains(inner Span) bool {
	return inner.Min >= s.Min && inner.Max <= s.Max
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
