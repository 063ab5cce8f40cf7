package rendering

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how a shape is drawn.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
}

// DefaultPaint returns an opaque black fill.
func DefaultPaint() Paint {
	return Paint{Color: ColorBlack, Style: PaintStyleFill, StrokeWidth: 1}
}

func (p Paint) String() string {
	if p.Style == PaintStyleStroke {
		return fmt.Sprintf("Paint(#%08X, stroke %g)", uint32(p.Color), p.StrokeWidth)
	}
	return fmt.Sprintf("Paint(#%08X, fill)", uint32(p.Color))
}
