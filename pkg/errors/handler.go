package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tomortec/drift-expandable/pkg/logging"
)

// ErrorHandler receives errors reported by the runtime.
type ErrorHandler interface {
	HandleError(err *DriftError)
	HandlePanic(err *PanicError)
	HandleBuildError(err *BuildError)
}

var (
	handlerMu      sync.RWMutex
	defaultHandler ErrorHandler = &LogHandler{}
)

// SetHandler installs the global error handler and returns the previous
// one. Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := defaultHandler
	if h == nil {
		h = &LogHandler{}
	}
	defaultHandler = h
	return prev
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return defaultHandler
}

// Report sends an error to the global handler, stamping it if needed.
func Report(err *DriftError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// ReportBuildError sends a build failure to the global handler.
func ReportBuildError(err *BuildError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleBuildError(err)
}

// Recover reports a panic in progress. Use it deferred:
//
//	defer errors.Recover("engine.HandlePointer")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
	}
}

// CaptureStack returns the caller's stack, one frame per two lines.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}

// LogHandler logs reported errors through a logging.Logger.
type LogHandler struct {
	// Logger receives the entries; nil uses logging.Default.
	Logger *logging.Logger
	// Verbose adds stack traces.
	Verbose bool
}

func (h *LogHandler) logger() *logging.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return logging.Default()
}

// HandleError logs a DriftError.
func (h *LogHandler) HandleError(err *DriftError) {
	args := []any{"op", err.Op, "kind", err.Kind.String(), "error", err.Err}
	if h.Verbose && err.StackTrace != "" {
		args = append(args, "stack", err.StackTrace)
	}
	h.logger().Error("operation failed", args...)
}

// HandlePanic logs a recovered panic.
func (h *LogHandler) HandlePanic(err *PanicError) {
	args := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		args = append(args, "stack", err.StackTrace)
	}
	h.logger().Error("recovered panic", args...)
}

// HandleBuildError logs a widget build failure.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	args := []any{"widget", err.Widget, "element", err.Element, "error", err.Error()}
	if h.Verbose && err.StackTrace != "" {
		args = append(args, "stack", err.StackTrace)
	}
	h.logger().Error("build failed", args...)
}
