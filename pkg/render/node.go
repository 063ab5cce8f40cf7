package render

import "github.com/go-drift/fresco/pkg/graphics"

// RenderData is the per-node mutable geometry record.
//
// Size and LaidOut are written by the layout pass, LocalOffset by the paint
// pass, and the parent-data slot by the node's parent. All access goes
// through the borrow guards returned by Node.Data and Node.DataMut; the
// fields themselves are reachable only from this package.
type RenderData struct {
	size        graphics.Size
	localOffset graphics.Offset
	laidOut     bool
	parentData  any
}

// Node is one element of the render tree: a widget plus its render data and
// an ordered list of children.
//
// The tree is built and owned by the surrounding widget layer; this package
// never creates or prunes nodes on its own. A *Node is the cheap,
// identity-preserving handle traversal contexts hold - any number of handles
// may reference the same node, and the borrow discipline on its RenderData
// keeps that aliasing safe.
type Node struct {
	widget   Widget
	children []*Node
	data     RenderData

	// borrows tracks outstanding guards: 0 free, >0 shared count,
	// exclusiveBorrow when a DataMutRef is held.
	borrows int
}

// NewNode creates a tree node for the given widget with the given children.
func NewNode(widget Widget, children ...*Node) *Node {
	return &Node{widget: widget, children: children}
}

// Widget returns the widget this node was created for.
func (n *Node) Widget() Widget {
	return n.widget
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// ChildAt returns the child at index, or nil if out of range.
func (n *Node) ChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// VisitChildren calls the visitor for each child in order.
func (n *Node) VisitChildren(visitor func(*Node)) {
	for _, child := range n.children {
		visitor(child)
	}
}
