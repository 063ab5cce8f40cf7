package graphics

import "testing"

func TestOffsetArithmetic(t *testing.T) {
	a := Offset{X: 3, Y: -2}
	b := Offset{X: 1, Y: 5}

	if got := a.Add(b); got != (Offset{X: 4, Y: 3}) {
		t.Errorf("add: expected (4, 3), got %v", got)
	}
	if got := a.Sub(b); got != (Offset{X: 2, Y: -7}) {
		t.Errorf("sub: expected (2, -7), got %v", got)
	}
	if got := a.Neg(); got != (Offset{X: -3, Y: 2}) {
		t.Errorf("neg: expected (-3, 2), got %v", got)
	}
	if got := a.Add(b).Sub(b); got != a {
		t.Errorf("add then sub: expected %v, got %v", a, got)
	}
}

func TestSize(t *testing.T) {
	if !(Size{}).IsEmpty() {
		t.Errorf("zero size should be empty")
	}
	if (Size{Width: 1, Height: 1}).IsEmpty() {
		t.Errorf("1x1 should not be empty")
	}
	if got := (Size{Width: 10, Height: 4}).Center(); got != (Offset{X: 5, Y: 2}) {
		t.Errorf("center: expected (5, 2), got %v", got)
	}
}

func TestRect(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)

	if r.Width() != 30 || r.Height() != 40 {
		t.Fatalf("expected 30x40, got %gx%g", r.Width(), r.Height())
	}
	if got := r.Size(); got != (Size{Width: 30, Height: 40}) {
		t.Errorf("size: expected (30, 40), got %v", got)
	}
	if got := r.TopLeft(); got != (Offset{X: 10, Y: 20}) {
		t.Errorf("top left: expected (10, 20), got %v", got)
	}
	if got := r.Center(); got != (Offset{X: 25, Y: 40}) {
		t.Errorf("center: expected (25, 40), got %v", got)
	}

	moved := r.Translate(5, -5)
	if moved.Left != 15 || moved.Top != 15 || moved.Right != 45 || moved.Bottom != 55 {
		t.Errorf("translate: got %+v", moved)
	}
	if r.IsEmpty() {
		t.Errorf("non-degenerate rect should not be empty")
	}
	if !RectFromLTWH(0, 0, 0, 10).IsEmpty() {
		t.Errorf("zero-width rect should be empty")
	}
}

func TestFloatEqual(t *testing.T) {
	if !FloatEqual(1.0, 1.0+Epsilon/2) {
		t.Errorf("values within epsilon should compare equal")
	}
	if FloatEqual(1.0, 1.01) {
		t.Errorf("values past epsilon should not compare equal")
	}
}
