// Package graphics provides the plain geometry value types shared by the
// render tree, alignment resolution, and canvas backends.
package graphics

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance for floating-point comparisons.
const Epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the componentwise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the componentwise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Neg returns the offset with both components negated.
func (o Offset) Neg() Offset {
	return Offset{X: -o.X, Y: -o.Y}
}

func (o Offset) String() string {
	return fmt.Sprintf("Offset(%g, %g)", o.X, o.Y)
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty returns true if the size has zero or negative area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Center returns the offset of the center of a box of this size,
// relative to its top-left corner.
func (s Size) Center() Offset {
	return Offset{X: s.Width / 2, Y: s.Height / 2}
}

func (s Size) String() string {
	return fmt.Sprintf("Size(%g, %g)", s.Width, s.Height)
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// TopLeft returns the top-left corner of the rectangle.
func (r Rect) TopLeft() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// FloatEqual returns true if two float64 values are approximately equal.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}
