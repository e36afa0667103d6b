package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/widgets"
)

type fakeT struct {
	fatals []string
	errs   []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return "TestFake" }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errs = append(f.errs, fmt.Sprintf(format, args...))
}

func snapshotWidget(color graphics.Color) *WidgetTester {
	tester := NewWidgetTester()
	tester.SetSize(graphics.Size{Width: 100, Height: 100})
	tester.PumpWidget(widgets.Center{Child: widgets.SizedBox{
		Width:  40,
		Height: 20,
		Child:  widgets.DecoratedBox{Color: color},
	}})
	return tester
}

func TestCaptureSnapshot(t *testing.T) {
	tester := snapshotWidget(graphics.ColorCyan)
	t.Cleanup(tester.Cleanup)

	snap := tester.CaptureSnapshot()
	if snap.RenderTree == nil {
		t.Fatal("expected render tree")
	}
	if snap.RenderTree.Size != [2]float64{100, 100} {
		t.Errorf("root size = %v", snap.RenderTree.Size)
	}
	box := snap.RenderTree.Children[0]
	if box.Offset != [2]float64{30, 40} || box.Size != [2]float64{40, 20} {
		t.Errorf("box = %+v", box)
	}

	found := false
	for _, op := range snap.DisplayOps {
		if op.Op == graphics.OpDrawRect.String() && op.Color == graphics.ColorCyan.String() {
			found = true
		}
	}
	if !found {
		t.Errorf("display ops = %+v, want a cyan rect", snap.DisplayOps)
	}
}

func TestSnapshot_RoundTripsThroughFile(t *testing.T) {
	tester := snapshotWidget(graphics.ColorPink)
	t.Cleanup(tester.Cleanup)

	path := filepath.Join(t.TempDir(), "nested", "box.snapshot.yaml")
	snap := tester.CaptureSnapshot()
	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	ft := &fakeT{}
	snap.MatchesFile(ft, path)
	if len(ft.fatals)+len(ft.errs) != 0 {
		t.Errorf("unexpected failures: %v %v", ft.fatals, ft.errs)
	}
}

func TestSnapshot_ReportsDiff(t *testing.T) {
	pink := snapshotWidget(graphics.ColorPink)
	t.Cleanup(pink.Cleanup)
	path := filepath.Join(t.TempDir(), "box.snapshot.yaml")
	if err := pink.CaptureSnapshot().UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	want := pink.CaptureSnapshot()
	pink.Cleanup()

	mint := snapshotWidget(graphics.ColorMint)
	t.Cleanup(mint.Cleanup)
	got := mint.CaptureSnapshot()

	if diff := got.Diff(want); !strings.Contains(diff, graphics.ColorMint.String()) {
		t.Errorf("diff does not mention new color:\n%s", diff)
	}

	ft := &fakeT{}
	got.MatchesFile(ft, path)
	if len(ft.errs) != 1 || !strings.Contains(ft.errs[0], UpdateSnapshotsEnv) {
		t.Errorf("errors = %v", ft.errs)
	}
}

func TestSnapshot_MissingFile(t *testing.T) {
	tester := snapshotWidget(graphics.ColorYellow)
	t.Cleanup(tester.Cleanup)

	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, filepath.Join(t.TempDir(), "missing.yaml"))
	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], "missing") {
		t.Errorf("fatals = %v", ft.fatals)
	}
}

func TestSnapshot_UpdateEnv(t *testing.T) {
	tester := snapshotWidget(graphics.ColorOrange)
	t.Cleanup(tester.Cleanup)
	t.Setenv(UpdateSnapshotsEnv, "1")

	path := filepath.Join(t.TempDir(), "box.snapshot.yaml")
	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, path)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
}
