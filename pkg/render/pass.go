package render

import (
	"github.com/go-drift/fresco/pkg/errors"
	"github.com/go-drift/fresco/pkg/graphics"
	"github.com/go-drift/fresco/pkg/rendering"
)

// PaintRoot runs a full paint pass over the tree rooted at root, starting
// from the origin with an empty context.
//
// Inside the pass, contract violations abort immediately by panicking. At
// this boundary they are recovered, reported to the global error handler,
// and returned as an error, so embedding callers (the CLI, test drivers)
// get a diagnosable failure instead of a crashed process. Panics that are
// not contract violations are re-raised.
func PaintRoot(root *Node, canvas rendering.Canvas) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		contract, ok := r.(*errors.ContractError)
		if !ok {
			panic(r)
		}
		ferr := &errors.FrescoError{
			Op:         "render.PaintRoot",
			Kind:       contract.Kind,
			Err:        contract,
			StackTrace: errors.CaptureStack(),
		}
		errors.Report(ferr)
		err = ferr
	}()

	NewPaintContext(root).Paint(canvas, graphics.Offset{})
	return nil
}
