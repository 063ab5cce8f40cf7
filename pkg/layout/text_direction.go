// Package layout provides alignment geometry: resolving declarative
// alignment intents into concrete offsets within a bounding size.
package layout

import "fmt"

// TextDirection is the horizontal flow direction of text.
type TextDirection int

const (
	// TextDirectionLTR lays text out left to right.
	TextDirectionLTR TextDirection = iota
	// TextDirectionRTL lays text out right to left.
	TextDirectionRTL
)

func (d TextDirection) String() string {
	switch d {
	case TextDirectionLTR:
		return "ltr"
	case TextDirectionRTL:
		return "rtl"
	default:
		return fmt.Sprintf("TextDirection(%d)", int(d))
	}
}
