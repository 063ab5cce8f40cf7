package render

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/fresco/pkg/errors"
	"github.com/go-drift/fresco/pkg/graphics"
	"github.com/go-drift/fresco/pkg/rendering"
)

type silentHandler struct{}

func (silentHandler) HandleError(*errors.FrescoError) {}
func (silentHandler) HandlePanic(*errors.PanicError)  {}

type panickyWidget struct{}

func (panickyWidget) Paint(*PaintContext, rendering.Canvas, graphics.Offset) {
	panic("widget exploded")
}

func TestPaintRoot_PaintsTree(t *testing.T) {
	widget := &testWidget{}
	root := NewNode(widget)
	markLaidOut(t, root, graphics.Size{Width: 10, Height: 10})

	canvas := testCanvas(graphics.Size{Width: 10, Height: 10})
	if err := PaintRoot(root, canvas); err != nil {
		t.Fatalf("expected clean pass, got %v", err)
	}
	if len(widget.painted) != 1 || widget.painted[0] != (graphics.Offset{}) {
		t.Fatalf("expected root painted once at origin, got %v", widget.painted)
	}
}

func TestPaintRoot_RecoversContractViolation(t *testing.T) {
	errors.SetHandler(silentHandler{})
	defer errors.SetHandler(nil)

	root := NewNode(&testWidget{}) // never laid out
	canvas := testCanvas(graphics.Size{Width: 10, Height: 10})

	err := PaintRoot(root, canvas)
	if err == nil {
		t.Fatalf("expected an error from painting an unlaid tree")
	}
	var contract *errors.ContractError
	if !stderrors.As(err, &contract) {
		t.Fatalf("expected the contract violation in the chain, got %v", err)
	}
	if contract.Kind != errors.KindLayout {
		t.Fatalf("expected layout kind, got %s", contract.Kind)
	}
}

func TestPaintRoot_ForeignPanicsPropagate(t *testing.T) {
	root := NewNode(panickyWidget{})
	markLaidOut(t, root, graphics.Size{Width: 1, Height: 1})
	canvas := testCanvas(graphics.Size{Width: 10, Height: 10})

	defer func() {
		if recover() == nil {
			t.Fatalf("expected the widget panic to propagate")
		}
	}()
	_ = PaintRoot(root, canvas)
}
