// Package errors provides structured error handling for the Fresco render core.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindBorrow indicates a shared/exclusive access conflict on node state.
	KindBorrow
	// KindLayout indicates a layout contract failure (e.g. paint before layout).
	KindLayout
	// KindPaint indicates a paint pass error.
	KindPaint
	// KindParentData indicates a parent-data slot error.
	KindParentData
	// KindScene indicates a scene description loading error.
	KindScene
	// KindRender indicates a canvas or rasterization error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindBorrow:
		return "borrow"
	case KindLayout:
		return "layout"
	case KindPaint:
		return "paint"
	case KindParentData:
		return "parentdata"
	case KindScene:
		return "scene"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FrescoError represents a structured, recoverable error in the render core.
type FrescoError struct {
	// Op is the operation that failed (e.g., "scene.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FrescoError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FrescoError) Unwrap() error {
	return e.Err
}

// ContractError represents a violated precondition in the traversal API.
//
// Contract violations are bugs in the surrounding toolkit or widget code,
// not runtime conditions: painting a node that was never laid out, indexing
// a child that does not exist, or aliasing node state against the borrow
// rules. They are raised as panics carrying a *ContractError so the
// offending operation halts immediately with a diagnostic.
type ContractError struct {
	// Op is the operation whose precondition was violated (e.g., "render.PaintContext.Child").
	Op string
	// Kind categorizes the violation.
	Kind ErrorKind
	// Detail describes the violated precondition.
	Detail string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Op, e.Kind, e.Detail)
}

// Contract panics with a *ContractError for the given operation.
// It never returns.
func Contract(op string, kind ErrorKind, format string, args ...any) {
	panic(&ContractError{
		Op:     op,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	})
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "render.PaintPass").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the render core.
type ErrorHandler interface {
	// HandleError is called when a recoverable error occurs.
	HandleError(err *FrescoError)
	// HandlePanic is called when a panic is recovered at a pass boundary.
	HandlePanic(err *PanicError)
}
