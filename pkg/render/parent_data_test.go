package render

import (
	"testing"

	"github.com/go-drift/fresco/pkg/errors"
	"github.com/go-drift/fresco/pkg/graphics"
)

type flexData struct {
	Weight float64
}

type gridData struct {
	Row, Col int
}

func TestParentData_RoundTrip(t *testing.T) {
	ctx := NewPaintContext(NewNode(&testWidget{}))

	SetParentData(ctx, flexData{Weight: 2})

	ref, ok := ParentData[flexData](ctx)
	if !ok {
		t.Fatalf("expected parent data of type flexData")
	}
	if got := ref.Get(); got != (flexData{Weight: 2}) {
		t.Fatalf("expected flexData{2}, got %+v", got)
	}
	ref.Release()
}

func TestParentData_TypeMismatchIsRecoverable(t *testing.T) {
	ctx := NewPaintContext(NewNode(&testWidget{}))

	SetParentData(ctx, flexData{Weight: 1})

	if _, ok := ParentData[gridData](ctx); ok {
		t.Fatalf("expected mismatched type lookup to report nothing")
	}
	if _, ok := ParentDataMut[gridData](ctx); ok {
		t.Fatalf("expected mismatched mutable lookup to report nothing")
	}

	// The failed lookups must not leak borrows.
	mut := ctx.Node().DataMut()
	mut.Release()
}

func TestParentData_EmptySlot(t *testing.T) {
	ctx := NewPaintContext(NewNode(&testWidget{}))

	if _, ok := ParentData[flexData](ctx); ok {
		t.Fatalf("expected empty slot to report nothing")
	}
}

func TestSetParentData_OverwritesPreviousType(t *testing.T) {
	ctx := NewPaintContext(NewNode(&testWidget{}))

	SetParentData(ctx, flexData{Weight: 1})
	SetParentData(ctx, gridData{Row: 2, Col: 3})

	if _, ok := ParentData[flexData](ctx); ok {
		t.Fatalf("expected flexData to be discarded")
	}
	ref, ok := ParentData[gridData](ctx)
	if !ok {
		t.Fatalf("expected gridData after overwrite")
	}
	if got := ref.Get(); got != (gridData{Row: 2, Col: 3}) {
		t.Fatalf("expected gridData{2, 3}, got %+v", got)
	}
	ref.Release()
}

func TestParentDataMut_MutatesInPlace(t *testing.T) {
	ctx := NewPaintContext(NewNode(&testWidget{}))

	SetParentData(ctx, flexData{Weight: 1})

	mut, ok := ParentDataMut[flexData](ctx)
	if !ok {
		t.Fatalf("expected mutable parent data")
	}
	mut.Set(flexData{Weight: 5})
	mut.Release()

	ref, _ := ParentData[flexData](ctx)
	defer ref.Release()
	if got := ref.Get(); got.Weight != 5 {
		t.Fatalf("expected weight 5 after mutation, got %g", got.Weight)
	}
}

func TestParentData_HeldViewConflictsWithWrite(t *testing.T) {
	ctx := NewPaintContext(NewNode(&testWidget{}))
	SetParentData(ctx, flexData{Weight: 1})

	ref, _ := ParentData[flexData](ctx)
	defer ref.Release()

	// Holding a read view across a write is exactly the aliasing mistake the
	// borrow discipline exists to catch.
	expectContract(t, errors.KindBorrow, func() {
		SetParentData(ctx, flexData{Weight: 2})
	})
}

func TestParentDataMut_ConflictsWithSharedView(t *testing.T) {
	node := NewNode(&testWidget{})
	ctx := NewPaintContext(node)
	SetParentData(ctx, flexData{Weight: 1})

	shared := node.Data()
	defer shared.Release()

	expectContract(t, errors.KindBorrow, func() {
		ParentDataMut[flexData](ctx)
	})
}

func TestParentData_GuardReleasesNode(t *testing.T) {
	ctx := NewPaintContext(NewNode(&testWidget{}))
	SetParentData(ctx, flexData{Weight: 1})

	ref, _ := ParentData[flexData](ctx)
	ref.Release()
	ref.Release()

	mut, _ := ParentDataMut[flexData](ctx)
	mut.Release()

	guard := ctx.Node().DataMut()
	guard.SetLocalOffset(graphics.Offset{X: 1, Y: 1})
	guard.Release()
}
