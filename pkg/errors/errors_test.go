package errors

import (
	"strings"
	"testing"
	"time"
)

func TestFrescoErrorString(t *testing.T) {
	err := &FrescoError{
		Op:   "scene.Load",
		Kind: KindScene,
		Err:  &ContractError{Op: "inner", Kind: KindBorrow, Detail: "conflict"},
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	if !strings.Contains(got, "scene.Load") || !strings.Contains(got, "[scene]") {
		t.Errorf("error string %q should contain op and kind", got)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindBorrow, "borrow"},
		{KindLayout, "layout"},
		{KindPaint, "paint"},
		{KindParentData, "parentdata"},
		{KindScene, "scene"},
		{KindRender, "render"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestContract(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Contract to panic")
		}
		contract, ok := r.(*ContractError)
		if !ok {
			t.Fatalf("expected *ContractError, got %T", r)
		}
		if contract.Op != "render.Paint" || contract.Kind != KindLayout {
			t.Errorf("wrong contract payload: %+v", contract)
		}
		if !strings.Contains(contract.Detail, "index 3") {
			t.Errorf("expected formatted detail, got %q", contract.Detail)
		}
	}()
	Contract("render.Paint", KindLayout, "bad index %d", 3)
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got := err.Error(); got != "panic: test panic" {
		t.Errorf("PanicError.Error() = %q", got)
	}

	err.Op = "render.PaintPass"
	if got := err.Error(); got != "panic in render.PaintPass: test panic" {
		t.Errorf("PanicError.Error() = %q", got)
	}
}

func TestReport(t *testing.T) {
	var captured *FrescoError
	handler := &testHandler{onError: func(err *FrescoError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&FrescoError{Op: "test.op", Kind: KindRender})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v", captured.Value)
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if DefaultHandler == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

type testHandler struct {
	onError func(*FrescoError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *FrescoError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
