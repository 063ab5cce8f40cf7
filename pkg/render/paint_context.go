package render

import (
	"iter"

	"github.com/go-drift/fresco/pkg/errors"
	"github.com/go-drift/fresco/pkg/graphics"
	"github.com/go-drift/fresco/pkg/rendering"
)

// PaintContext mediates a single paint-pass visit to one node.
//
// A context is a lightweight value handle: a node reference plus two
// offsets. offset is the absolute position the node was painted at, recorded
// when Paint runs on this instance. parentOffset is the parent context's
// offset at the moment this context was derived - copied by value, so
// reusing or repainting the parent afterwards cannot retroactively move
// already-derived children.
//
// Offsets are not stored as absolute coordinates on the node. A node may be
// repainted at a different absolute origin every frame (after a scroll, for
// example), so Paint always recomputes LocalOffset from the current offsets
// rather than trusting anything cached.
type PaintContext struct {
	node         *Node
	offset       graphics.Offset
	parentOffset graphics.Offset
}

// NewPaintContext returns the root context for a paint pass over the tree
// rooted at node. Both offsets start at the origin.
func NewPaintContext(node *Node) *PaintContext {
	return &PaintContext{node: node}
}

// Clone returns an independent copy of the context.
func (c *PaintContext) Clone() *PaintContext {
	clone := *c
	return &clone
}

// Node returns the node this context is bound to.
func (c *PaintContext) Node() *Node {
	return c.node
}

// Offset returns the absolute offset recorded by the most recent Paint on
// this context instance.
func (c *PaintContext) Offset() graphics.Offset {
	return c.offset
}

// Paint visits the bound node: it records offset as the node's absolute
// paint position, stores LocalOffset = offset - parentOffset into the node's
// render data, and hands control to the widget's own paint logic with a
// clone of this context.
//
// Painting a node whose layout has not run is a bug in the surrounding
// toolkit and fails fatally.
func (c *PaintContext) Paint(canvas rendering.Canvas, offset graphics.Offset) {
	data := c.node.Data()
	laidOut := data.LaidOut()
	data.Release()
	if !laidOut {
		errors.Contract("render.PaintContext.Paint", errors.KindLayout,
			"node %T was not laid out before paint", c.node.widget)
	}

	// Children derived after this point see offset as their parentOffset.
	c.offset = offset

	mut := c.node.DataMut()
	mut.SetLocalOffset(offset.Sub(c.parentOffset))
	mut.Release()

	c.node.widget.Paint(c.Clone(), canvas, offset)
}

// Child returns a context bound to the indexed child. The caller is expected
// to know its own child count; an out-of-range index fails fatally.
func (c *PaintContext) Child(index int) *PaintContext {
	child, ok := c.TryChild(index)
	if !ok {
		errors.Contract("render.PaintContext.Child", errors.KindPaint,
			"node %T has no child at index %d (%d children)",
			c.node.widget, index, c.node.ChildCount())
	}
	return child
}

// TryChild returns a context bound to the indexed child, or ok=false if the
// index is out of range. Child is defined in terms of this.
func (c *PaintContext) TryChild(index int) (*PaintContext, bool) {
	node := c.node.ChildAt(index)
	if node == nil {
		return nil, false
	}
	return &PaintContext{node: node, parentOffset: c.offset}, true
}

// Children returns a lazy sequence of contexts, one per child in order.
// The sequence is restartable; each ranging derives fresh contexts with
// parentOffset fixed to this context's offset at that time.
func (c *PaintContext) Children() iter.Seq[*PaintContext] {
	return func(yield func(*PaintContext) bool) {
		for _, node := range c.node.children {
			if !yield(&PaintContext{node: node, parentOffset: c.offset}) {
				return
			}
		}
	}
}

// Size returns the bound node's resolved size. Valid any time after layout,
// independent of paint state.
func (c *PaintContext) Size() graphics.Size {
	data := c.node.Data()
	defer data.Release()
	return data.Size()
}
