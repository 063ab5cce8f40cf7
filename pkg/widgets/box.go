// Package widgets provides basic render-tree widgets built on the traversal
// context: colored boxes that position their children by alignment or by
// flex weight.
package widgets

import (
	"github.com/go-drift/fresco/pkg/graphics"
	"github.com/go-drift/fresco/pkg/layout"
	"github.com/go-drift/fresco/pkg/render"
	"github.com/go-drift/fresco/pkg/rendering"
)

// BoxParentData is the metadata a Box stores on each child through the
// parent-data slot: the flex weight assigned during layout and the local
// offset computed during paint.
type BoxParentData struct {
	Offset graphics.Offset
	Weight float64
}

// Box is a solid-colored rectangle that paints its children inside itself.
//
// Children with a positive flex weight (in their BoxParentData) are packed
// left to right in child order. All other children are positioned by their
// own Alignment preference, resolved against the box's text direction.
type Box struct {
	Fill rendering.Color

	// Alignment is where this box prefers to be placed inside its parent.
	// Nil means centered.
	Alignment layout.AlignmentGeometry

	// Direction resolves directional alignments of this box's children.
	Direction layout.TextDirection
}

// Paint draws the box at offset and recurses into every child.
func (b *Box) Paint(ctx *render.PaintContext, canvas rendering.Canvas, offset graphics.Offset) {
	size := ctx.Size()
	canvas.DrawRect(
		graphics.RectFromLTWH(offset.X, offset.Y, size.Width, size.Height),
		rendering.Paint{Color: b.Fill, Style: rendering.PaintStyleFill},
	)

	bounds := graphics.RectFromLTWH(0, 0, size.Width, size.Height)
	var cursor float64
	for child := range ctx.Children() {
		childSize := child.Size()

		var local graphics.Offset
		if data, ok := render.ParentDataMut[BoxParentData](child); ok {
			if data.Get().Weight > 0 {
				local = graphics.Offset{X: cursor}
				cursor += childSize.Width
			} else {
				local = b.placeByAlignment(child, bounds, childSize)
			}
			updated := data.Get()
			updated.Offset = local
			data.Set(updated)
			data.Release()
		} else {
			local = b.placeByAlignment(child, bounds, childSize)
			render.SetParentData(child, BoxParentData{Offset: local})
		}

		child.Paint(canvas, offset.Add(local))
	}
}

func (b *Box) placeByAlignment(child *render.PaintContext, bounds graphics.Rect, childSize graphics.Size) graphics.Offset {
	align := layout.AlignmentGeometry(layout.AlignmentCenter)
	if box, ok := child.Node().Widget().(*Box); ok && box.Alignment != nil {
		align = box.Alignment
	}
	return align.Resolve(b.Direction).WithinRect(bounds, childSize)
}
