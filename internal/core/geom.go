// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned bounding box in playfield units.
// All edges are inclusive: two boxes that merely touch overlap.
type Box struct {
	Left, Top, Right, Bottom float64
}

// NewBox creates a box from its top-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// CenterX returns the horizontal midpoint.
func (b Box) CenterX() float64 {
	return b.Left + b.Width()/2
}

// Overlaps reports whether two boxes intersect using closed intervals.
// The test is symmetric in its arguments.
func (b Box) Overlaps(other Box) bool {
	return b.Right >= other.Left &&
		b.Left <= other.Right &&
		b.Bottom >= other.Top &&
		b.Top <= other.Bottom
}

// ContainsX reports whether x lies within [Left, Right].
func (b Box) ContainsX(x float64) bool {
	return x >= b.Left && x <= b.Right
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{Left: b.Left + dx, Top: b.Top + dy, Right: b.Right + dx, Bottom: b.Bottom + dy}
}

// Circle is a round shape described by its center and radius.
type Circle struct {
	CX, CY float64
	R      float64
}

// Bounds returns the bounding square of the circle.
func (c Circle) Bounds() Box {
	return Box{Left: c.CX - c.R, Top: c.CY - c.R, Right: c.CX + c.R, Bottom: c.CY + c.R}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
