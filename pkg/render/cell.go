package render

import (
	"github.com/go-drift/fresco/pkg/errors"
	"github.com/go-drift/fresco/pkg/graphics"
)

// exclusiveBorrow is the borrows sentinel for an outstanding DataMutRef.
const exclusiveBorrow = -1

// Data acquires a shared view of the node's render data.
//
// Any number of shared views may be outstanding at once, but acquiring one
// while an exclusive view exists is a fatal access conflict. The traversal
// is single-threaded, so the check is a plain counter, not a lock: it exists
// to catch aliasing bugs (e.g. holding a parent-data read guard across a
// call that also writes the node), not to synchronize goroutines.
//
// The returned guard must be released; Release is idempotent and safe to
// defer.
func (n *Node) Data() *DataRef {
	if n.borrows == exclusiveBorrow {
		errors.Contract("render.Node.Data", errors.KindBorrow,
			"node %T already borrowed exclusively", n.widget)
	}
	n.borrows++
	return &DataRef{node: n}
}

// DataMut acquires the exclusive view of the node's render data.
// Fatal access conflict if any other view, shared or exclusive, is
// outstanding.
func (n *Node) DataMut() *DataMutRef {
	if n.borrows != 0 {
		errors.Contract("render.Node.DataMut", errors.KindBorrow,
			"node %T already borrowed (state %d)", n.widget, n.borrows)
	}
	n.borrows = exclusiveBorrow
	return &DataMutRef{node: n}
}

// DataRef is a shared, read-only view of a node's RenderData.
type DataRef struct {
	node     *Node
	released bool
}

func (r *DataRef) check(op string) {
	if r.released {
		errors.Contract(op, errors.KindBorrow, "use of released shared view")
	}
}

// Size returns the node's resolved size.
func (r *DataRef) Size() graphics.Size {
	r.check("render.DataRef.Size")
	return r.node.data.size
}

// LocalOffset returns the node's offset relative to its parent's origin,
// as of the most recent paint.
func (r *DataRef) LocalOffset() graphics.Offset {
	r.check("render.DataRef.LocalOffset")
	return r.node.data.localOffset
}

// LaidOut reports whether the layout pass has resolved this node.
func (r *DataRef) LaidOut() bool {
	r.check("render.DataRef.LaidOut")
	return r.node.data.laidOut
}

func (r *DataRef) parentData() any {
	r.check("render.DataRef.parentData")
	return r.node.data.parentData
}

// Release returns the shared view. Idempotent.
func (r *DataRef) Release() {
	if r.released {
		return
	}
	r.released = true
	r.node.borrows--
}

// DataMutRef is the exclusive, mutable view of a node's RenderData.
type DataMutRef struct {
	node     *Node
	released bool
}

func (r *DataMutRef) check(op string) {
	if r.released {
		errors.Contract(op, errors.KindBorrow, "use of released exclusive view")
	}
}

// Size returns the node's resolved size.
func (r *DataMutRef) Size() graphics.Size {
	r.check("render.DataMutRef.Size")
	return r.node.data.size
}

// SetSize records the size resolved by the layout pass.
func (r *DataMutRef) SetSize(size graphics.Size) {
	r.check("render.DataMutRef.SetSize")
	r.node.data.size = size
}

// LocalOffset returns the node's offset relative to its parent's origin.
func (r *DataMutRef) LocalOffset() graphics.Offset {
	r.check("render.DataMutRef.LocalOffset")
	return r.node.data.localOffset
}

// SetLocalOffset records the node's offset relative to its parent's origin.
func (r *DataMutRef) SetLocalOffset(offset graphics.Offset) {
	r.check("render.DataMutRef.SetLocalOffset")
	r.node.data.localOffset = offset
}

// LaidOut reports whether the layout pass has resolved this node.
func (r *DataMutRef) LaidOut() bool {
	r.check("render.DataMutRef.LaidOut")
	return r.node.data.laidOut
}

// SetLaidOut records that the layout pass resolved (or invalidated) this node.
func (r *DataMutRef) SetLaidOut(laidOut bool) {
	r.check("render.DataMutRef.SetLaidOut")
	r.node.data.laidOut = laidOut
}

func (r *DataMutRef) parentData() any {
	r.check("render.DataMutRef.parentData")
	return r.node.data.parentData
}

func (r *DataMutRef) setParentData(data any) {
	r.check("render.DataMutRef.setParentData")
	r.node.data.parentData = data
}

// Release returns the exclusive view. Idempotent.
func (r *DataMutRef) Release() {
	if r.released {
		return
	}
	r.released = true
	r.node.borrows = 0
}
