// Package errors provides structured error reporting for the widget runtime.
//
// Failures that cannot be returned to a caller, such as a panic inside a
// widget's Build or an error raised while painting, are reported to a
// process-wide [ErrorHandler]. The default handler logs through
// [logging.Default].
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
	// KindConfig indicates invalid construction parameters.
	KindConfig
	// KindBuild indicates a failure while building widgets.
	KindBuild
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindRender indicates a failure while painting or rasterizing.
	KindRender
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindBuild:
		return "build"
	case KindPanic:
		return "panic"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// DriftError is a categorized error raised by an operation.
type DriftError struct {
	// Op is the operation that failed, e.g. "expandable.NewGroup".
	Op   string
	Kind ErrorKind
	Err  error
	// StackTrace is optional and filled in for recovered panics.
	StackTrace string
	Timestamp  time.Time
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DriftError) Unwrap() error {
	return e.Err
}

// PanicError is a panic recovered outside widget builds.
type PanicError struct {
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// BuildError is a failure inside a widget's Build method.
type BuildError struct {
	// Widget is the type name of the widget that failed.
	Widget string
	// Element is the hosting element type.
	Element string
	// Recovered is the panic value, nil for returned errors.
	Recovered  any
	Err        error
	StackTrace string
	Timestamp  time.Time
}

func (e *BuildError) Error() string {
	switch {
	case e.Recovered != nil:
		return fmt.Sprintf("panic in %s.Build(): %v", e.Widget, e.Recovered)
	case e.Err != nil:
		return fmt.Sprintf("error in %s.Build(): %v", e.Widget, e.Err)
	default:
		return fmt.Sprintf("unknown error in %s.Build()", e.Widget)
	}
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
