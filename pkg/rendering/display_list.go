package rendering

import (
	"fmt"
	"strings"

	"github.com/go-drift/fresco/pkg/graphics"
)

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size graphics.Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() graphics.Size {
	return d.size
}

// OpCount returns the number of recorded operations.
func (d *DisplayList) OpCount() int {
	return len(d.ops)
}

// String returns the recorded operations, one per line.
func (d *DisplayList) String() string {
	var sb strings.Builder
	for _, op := range d.ops {
		sb.WriteString(op.describe())
		sb.WriteString("\n")
	}
	return sb.String()
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	size      graphics.Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size graphics.Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
	describe() string
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     graphics.Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(opSave{})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(opRestore{})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(opTranslate{dx: dx, dy: dy})
}

func (c *recordingCanvas) ClipRect(rect graphics.Rect) {
	c.recorder.append(opClipRect{rect: rect})
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.append(opClear{color: color})
}

func (c *recordingCanvas) DrawRect(rect graphics.Rect, paint Paint) {
	c.recorder.append(opRect{rect: rect, paint: paint})
}

func (c *recordingCanvas) DrawLine(start, end graphics.Offset, paint Paint) {
	c.recorder.append(opLine{start: start, end: end, paint: paint})
}

func (c *recordingCanvas) Size() graphics.Size {
	return c.size
}

type opSave struct{}

func (opSave) execute(canvas Canvas) { canvas.Save() }
func (opSave) describe() string      { return "save" }

type opRestore struct{}

func (opRestore) execute(canvas Canvas) { canvas.Restore() }
func (opRestore) describe() string      { return "restore" }

type opTranslate struct {
	dx, dy float64
}

func (o opTranslate) execute(canvas Canvas) { canvas.Translate(o.dx, o.dy) }
func (o opTranslate) describe() string {
	return fmt.Sprintf("translate %g %g", o.dx, o.dy)
}

type opClipRect struct {
	rect graphics.Rect
}

func (o opClipRect) execute(canvas Canvas) { canvas.ClipRect(o.rect) }
func (o opClipRect) describe() string {
	return fmt.Sprintf("clipRect (%g, %g, %g, %g)", o.rect.Left, o.rect.Top, o.rect.Right, o.rect.Bottom)
}

type opClear struct {
	color Color
}

func (o opClear) execute(canvas Canvas) { canvas.Clear(o.color) }
func (o opClear) describe() string {
	return fmt.Sprintf("clear #%08X", uint32(o.color))
}

type opRect struct {
	rect  graphics.Rect
	paint Paint
}

func (o opRect) execute(canvas Canvas) { canvas.DrawRect(o.rect, o.paint) }
func (o opRect) describe() string {
	return fmt.Sprintf("drawRect (%g, %g, %g, %g) %s", o.rect.Left, o.rect.Top, o.rect.Right, o.rect.Bottom, o.paint)
}

type opLine struct {
	start, end graphics.Offset
	paint      Paint
}

func (o opLine) execute(canvas Canvas) { canvas.DrawLine(o.start, o.end, o.paint) }
func (o opLine) describe() string {
	return fmt.Sprintf("drawLine (%g, %g) -> (%g, %g) %s", o.start.X, o.start.Y, o.end.X, o.end.Y, o.paint)
}
