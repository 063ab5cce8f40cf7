package rendering

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/go-drift/fresco/pkg/graphics"
)

// RasterCanvas renders drawing commands into an in-memory image.
// It is the backend behind the CLI's PNG output.
type RasterCanvas struct {
	dc   *gg.Context
	size graphics.Size
}

// NewRasterCanvas creates a raster canvas of the given pixel dimensions.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{
		dc:   gg.NewContext(width, height),
		size: graphics.Size{Width: float64(width), Height: float64(height)},
	}
}

// Image returns the rendered image.
func (c *RasterCanvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the rendered image to a PNG file.
func (c *RasterCanvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// Save pushes the current transform and clip state.
func (c *RasterCanvas) Save() {
	c.dc.Push()
}

// Restore pops the most recent transform and clip state.
func (c *RasterCanvas) Restore() {
	c.dc.Pop()
}

// Translate moves the origin by the given offset.
func (c *RasterCanvas) Translate(dx, dy float64) {
	c.dc.Translate(dx, dy)
}

// ClipRect restricts future drawing to the given rectangle.
func (c *RasterCanvas) ClipRect(rect graphics.Rect) {
	c.dc.DrawRectangle(rect.Left, rect.Top, rect.Width(), rect.Height())
	c.dc.Clip()
}

// Clear fills the entire canvas with the given color.
func (c *RasterCanvas) Clear(color Color) {
	c.setColor(color)
	c.dc.Clear()
}

// DrawRect draws a rectangle with the provided paint.
func (c *RasterCanvas) DrawRect(rect graphics.Rect, paint Paint) {
	c.setColor(paint.Color)
	c.dc.DrawRectangle(rect.Left, rect.Top, rect.Width(), rect.Height())
	if paint.Style == PaintStyleStroke {
		c.dc.SetLineWidth(paint.StrokeWidth)
		c.dc.Stroke()
	} else {
		c.dc.Fill()
	}
}

// DrawLine draws a line segment with the provided paint.
func (c *RasterCanvas) DrawLine(start, end graphics.Offset, paint Paint) {
	c.setColor(paint.Color)
	c.dc.SetLineWidth(paint.StrokeWidth)
	c.dc.DrawLine(start.X, start.Y, end.X, end.Y)
	c.dc.Stroke()
}

// Size returns the size of the canvas in pixels.
func (c *RasterCanvas) Size() graphics.Size {
	return c.size
}

func (c *RasterCanvas) setColor(color Color) {
	r, g, b, a := color.RGBAF()
	c.dc.SetRGBA(r, g, b, a)
}
