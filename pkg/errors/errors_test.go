package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/tomortec/drift-expandable/pkg/logging"
)

type testHandler struct {
	errs   []*DriftError
	panics []*PanicError
	builds []*BuildError
}

func (h *testHandler) HandleError(err *DriftError)      { h.errs = append(h.errs, err) }
func (h *testHandler) HandlePanic(err *PanicError)      { h.panics = append(h.panics, err) }
func (h *testHandler) HandleBuildError(err *BuildError) { h.builds = append(h.builds, err) }

func installTestHandler(t *testing.T) *testHandler {
	t.Helper()
	h := &testHandler{}
	prev := SetHandler(h)
	t.Cleanup(func() { SetHandler(prev) })
	return h
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindBuild, "build"},
		{KindPanic, "panic"},
		{KindRender, "render"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestDriftErrorUnwrap(t *testing.T) {
	sentinel := stderrors.New("bad pairing")
	err := &DriftError{Op: "expandable.NewGroup", Kind: KindConfig, Err: sentinel}
	if !stderrors.Is(err, sentinel) {
		t.Fatal("errors.Is should see the wrapped error")
	}
	want := "expandable.NewGroup [config]: bad pairing"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestBuildErrorString(t *testing.T) {
	tests := []struct {
		err  *BuildError
		want string
	}{
		{&BuildError{Widget: "expandable.Card", Recovered: "boom"}, "panic in expandable.Card.Build(): boom"},
		{&BuildError{Widget: "expandable.Card", Err: stderrors.New("nope")}, "error in expandable.Card.Build(): nope"},
		{&BuildError{Widget: "expandable.Card"}, "unknown error in expandable.Card.Build()"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestReportStampsTimestamp(t *testing.T) {
	h := installTestHandler(t)
	Report(&DriftError{Op: "raster.Encode", Kind: KindRender, Err: stderrors.New("disk full")})
	ReportBuildError(&BuildError{Widget: "widgets.Text", Recovered: "x"})
	if len(h.errs) != 1 || h.errs[0].Timestamp.IsZero() {
		t.Fatalf("errors = %+v", h.errs)
	}
	if len(h.builds) != 1 || h.builds[0].Timestamp.IsZero() {
		t.Fatalf("builds = %+v", h.builds)
	}
}

func TestRecover(t *testing.T) {
	h := installTestHandler(t)
	func() {
		defer Recover("engine.HandlePointer")
		panic("intentional test panic")
	}()
	if len(h.panics) != 1 {
		t.Fatalf("panics = %d, want 1", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "engine.HandlePointer" || p.Value != "intentional test panic" {
		t.Errorf("unexpected panic %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestSetHandlerNilRestoresLogHandler(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Fatalf("Handler() = %T, want *LogHandler", Handler())
	}
}

func TestLogHandlerWritesThroughLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLogger(&buf, logging.LevelInfo, logging.FormatText)
	if err != nil {
		t.Fatal(err)
	}
	h := &LogHandler{Logger: logger}
	h.HandleBuildError(&BuildError{Widget: "expandable.Card", Element: "*core.StatefulElement", Recovered: "boom"})
	out := buf.String()
	if !strings.Contains(out, "build failed") || !strings.Contains(out, "expandable.Card") {
		t.Fatalf("unexpected log output %q", out)
	}
}
