package layout

import (
	"fmt"

	"github.com/go-drift/fresco/pkg/graphics"
)

// AlignmentGeometry is an alignment intent that may depend on text
// direction. Resolve converts it into an absolute Alignment.
type AlignmentGeometry interface {
	Resolve(direction TextDirection) Alignment
}

// Alignment describes a position within a box as a fraction of its size.
//
// Each axis runs from -1 (start) through 0 (center) to 1 (end), so
// Alignment{-1, -1} is the top-left corner and Alignment{1, 1} the bottom
// right. Values outside [-1, 1] are not clamped; they extrapolate linearly
// past the box edges, which callers occasionally want for overshoot effects.
type Alignment struct {
	X float64
	Y float64
}

// Preset alignments covering the 3x3 start/center/end grid.
var (
	AlignmentTopLeft      = Alignment{X: -1, Y: -1}
	AlignmentTopCenter    = Alignment{X: 0, Y: -1}
	AlignmentTopRight     = Alignment{X: 1, Y: -1}
	AlignmentCenterLeft   = Alignment{X: -1, Y: 0}
	AlignmentCenter       = Alignment{X: 0, Y: 0}
	AlignmentCenterRight  = Alignment{X: 1, Y: 0}
	AlignmentBottomLeft   = Alignment{X: -1, Y: 1}
	AlignmentBottomCenter = Alignment{X: 0, Y: 1}
	AlignmentBottomRight  = Alignment{X: 1, Y: 1}
)

var alignmentNames = []struct {
	value Alignment
	name  string
}{
	{AlignmentTopLeft, "AlignmentTopLeft"},
	{AlignmentTopCenter, "AlignmentTopCenter"},
	{AlignmentTopRight, "AlignmentTopRight"},
	{AlignmentCenterLeft, "AlignmentCenterLeft"},
	{AlignmentCenter, "AlignmentCenter"},
	{AlignmentCenterRight, "AlignmentCenterRight"},
	{AlignmentBottomLeft, "AlignmentBottomLeft"},
	{AlignmentBottomCenter, "AlignmentBottomCenter"},
	{AlignmentBottomRight, "AlignmentBottomRight"},
}

// Along returns the point this alignment selects within a box of the given
// size: the center displaced by the alignment fraction of the half-extent
// on each axis.
func (a Alignment) Along(size graphics.Size) graphics.Offset {
	centerX := size.Width / 2
	centerY := size.Height / 2
	return graphics.Offset{
		X: centerX + a.X*centerX,
		Y: centerY + a.Y*centerY,
	}
}

// WithinRect returns the top-left offset that positions a child of the
// given size inside rect according to this alignment.
func (a Alignment) WithinRect(rect graphics.Rect, childSize graphics.Size) graphics.Offset {
	halfWidthDelta := (rect.Width() - childSize.Width) / 2
	halfHeightDelta := (rect.Height() - childSize.Height) / 2
	return graphics.Offset{
		X: rect.Left + halfWidthDelta + a.X*halfWidthDelta,
		Y: rect.Top + halfHeightDelta + a.Y*halfHeightDelta,
	}
}

// Add returns the componentwise sum of two alignments.
func (a Alignment) Add(other Alignment) Alignment {
	return Alignment{X: a.X + other.X, Y: a.Y + other.Y}
}

// Sub returns the componentwise difference of two alignments.
func (a Alignment) Sub(other Alignment) Alignment {
	return Alignment{X: a.X - other.X, Y: a.Y - other.Y}
}

// Neg returns the alignment with both components negated.
func (a Alignment) Neg() Alignment {
	return Alignment{X: -a.X, Y: -a.Y}
}

// Resolve implements AlignmentGeometry. An absolute alignment resolves to
// itself regardless of text direction.
func (a Alignment) Resolve(TextDirection) Alignment {
	return a
}

// String prints the preset name on an exact match, raw coordinates
// otherwise. The presets are never produced by transcendental math, so
// exact floating-point comparison against them is reliable.
func (a Alignment) String() string {
	for _, preset := range alignmentNames {
		if preset.value == a {
			return preset.name
		}
	}
	return fmt.Sprintf("Alignment(%g, %g)", a.X, a.Y)
}

// AlignmentDirectional is an alignment whose horizontal component is
// expressed relative to text flow: Start is the reading edge, so it maps to
// the left in LTR and to the right in RTL. It must be resolved against a
// TextDirection before it can position anything.
type AlignmentDirectional struct {
	Start float64
	Y     float64
}

// Preset directional alignments covering the 3x3 start/center/end grid.
var (
	AlignmentDirectionalTopStart     = AlignmentDirectional{Start: -1, Y: -1}
	AlignmentDirectionalTopCenter    = AlignmentDirectional{Start: 0, Y: -1}
	AlignmentDirectionalTopEnd       = AlignmentDirectional{Start: 1, Y: -1}
	AlignmentDirectionalCenterStart  = AlignmentDirectional{Start: -1, Y: 0}
	AlignmentDirectionalCenter       = AlignmentDirectional{Start: 0, Y: 0}
	AlignmentDirectionalCenterEnd    = AlignmentDirectional{Start: 1, Y: 0}
	AlignmentDirectionalBottomStart  = AlignmentDirectional{Start: -1, Y: 1}
	AlignmentDirectionalBottomCenter = AlignmentDirectional{Start: 0, Y: 1}
	AlignmentDirectionalBottomEnd    = AlignmentDirectional{Start: 1, Y: 1}
)

var alignmentDirectionalNames = []struct {
	value AlignmentDirectional
	name  string
}{
	{AlignmentDirectionalTopStart, "AlignmentDirectionalTopStart"},
	{AlignmentDirectionalTopCenter, "AlignmentDirectionalTopCenter"},
	{AlignmentDirectionalTopEnd, "AlignmentDirectionalTopEnd"},
	{AlignmentDirectionalCenterStart, "AlignmentDirectionalCenterStart"},
	{AlignmentDirectionalCenter, "AlignmentDirectionalCenter"},
	{AlignmentDirectionalCenterEnd, "AlignmentDirectionalCenterEnd"},
	{AlignmentDirectionalBottomStart, "AlignmentDirectionalBottomStart"},
	{AlignmentDirectionalBottomCenter, "AlignmentDirectionalBottomCenter"},
	{AlignmentDirectionalBottomEnd, "AlignmentDirectionalBottomEnd"},
}

// Resolve implements AlignmentGeometry: Start keeps its sign in LTR and is
// negated in RTL.
func (a AlignmentDirectional) Resolve(direction TextDirection) Alignment {
	x := a.Start
	if direction == TextDirectionRTL {
		x = -x
	}
	return Alignment{X: x, Y: a.Y}
}

// Add returns the componentwise sum of two directional alignments.
func (a AlignmentDirectional) Add(other AlignmentDirectional) AlignmentDirectional {
	return AlignmentDirectional{Start: a.Start + other.Start, Y: a.Y + other.Y}
}

// Sub returns the componentwise difference of two directional alignments.
func (a AlignmentDirectional) Sub(other AlignmentDirectional) AlignmentDirectional {
	return AlignmentDirectional{Start: a.Start - other.Start, Y: a.Y - other.Y}
}

// Neg returns the directional alignment with both components negated.
func (a AlignmentDirectional) Neg() AlignmentDirectional {
	return AlignmentDirectional{Start: -a.Start, Y: -a.Y}
}

// MulScalar scales both components by factor. Directional alignments get
// scalar ops because they are combined before resolution; absolute
// alignments are always resolved first and never need scaling.
func (a AlignmentDirectional) MulScalar(factor float64) AlignmentDirectional {
	return AlignmentDirectional{Start: a.Start * factor, Y: a.Y * factor}
}

// DivScalar divides both components by divisor.
func (a AlignmentDirectional) DivScalar(divisor float64) AlignmentDirectional {
	return AlignmentDirectional{Start: a.Start / divisor, Y: a.Y / divisor}
}

// String prints the preset name on an exact match, raw coordinates otherwise.
func (a AlignmentDirectional) String() string {
	for _, preset := range alignmentDirectionalNames {
		if preset.value == a {
			return preset.name
		}
	}
	return fmt.Sprintf("AlignmentDirectional(%g, %g)", a.Start, a.Y)
}
