// Package render implements the retained-mode render tree core: tree nodes
// with per-node render data, the paint-pass traversal context, and the
// runtime-checked access discipline for node state shared between contexts.
package render

import (
	"github.com/go-drift/fresco/pkg/graphics"
	"github.com/go-drift/fresco/pkg/rendering"
)

// Widget is the paint entry point the traversal context invokes once per
// visit. Implementations receive a context bound to their own node, the
// drawing surface, and the absolute offset to paint at. To paint children
// they derive child contexts from ctx and call Paint on those.
type Widget interface {
	Paint(ctx *PaintContext, canvas rendering.Canvas, offset graphics.Offset)
}
