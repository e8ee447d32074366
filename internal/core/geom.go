// Package core provides fundamental types and utilities for the drone game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Box is an axis-aligned bounding box in field units.
// Field units are the simulation's continuous coordinate space; y grows downward.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Overlaps returns true if the open interiors of the two boxes intersect.
// Touching edges do not count as overlap.
func (b Box) Overlaps(other Box) bool {
	return b.X < other.Right() && b.Right() > other.X &&
		b.Y < other.Bottom() && b.Bottom() > other.Y
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Dist returns the Euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// Rect represents an axis-aligned rectangle in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Scale maps field units onto screen cells.
type Scale struct {
	SX, SY float64 // Cells per field unit on each axis
}

// NewScale returns the scale that fits a field of fieldW×fieldH units onto
// a screen of w×h cells.
func NewScale(w, h int, fieldW, fieldH float64) Scale {
	s := Scale{SX: 1, SY: 1}
	if fieldW > 0 {
		s.SX = float64(w) / fieldW
	}
	if fieldH > 0 {
		s.SY = float64(h) / fieldH
	}
	return s
}

// Point converts a field position to a cell position.
func (s Scale) Point(x, y float64) (int, int) {
	return int(math.Floor(x * s.SX)), int(math.Floor(y * s.SY))
}

// Rect converts a field box to the covering cell rectangle.
// Any box with positive area covers at least one cell.
func (s Scale) Rect(b Box) Rect {
	x0 := int(math.Floor(b.X * s.SX))
	y0 := int(math.Floor(b.Y * s.SY))
	x1 := int(math.Ceil(b.Right() * s.SX))
	y1 := int(math.Ceil(b.Bottom() * s.SY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
