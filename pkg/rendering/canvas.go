// Package rendering defines the drawing surface the render tree paints onto
// and two backends: a recording canvas that captures operations into a
// replayable display list, and a raster canvas that draws into an image.
package rendering

import "github.com/go-drift/fresco/pkg/graphics"

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect graphics.Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect graphics.Rect, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end graphics.Offset, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() graphics.Size
}
