package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/tomortec/drift-expandable/pkg/animation"
	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/widgets"
)

func TestNewWidgetTester_Defaults(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	if tester.size.Width != DefaultTestWidth || tester.size.Height != DefaultTestHeight {
		t.Errorf("expected default size %dx%d, got %vx%v", DefaultTestWidth, DefaultTestHeight, tester.size.Width, tester.size.Height)
	}
	if tester.clock == nil {
		t.Fatal("expected fake clock to be set")
	}
}

func TestPumpWidget_MountsTree(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(widgets.Text{Content: "hello"}); err != nil {
		t.Fatal(err)
	}
	if tester.RootElement() == nil {
		t.Fatal("expected root element after PumpWidget")
	}
	if tester.RootRenderObject() == nil {
		t.Fatal("expected root render object after PumpWidget")
	}
	if tester.LastFrame() == nil {
		t.Fatal("expected a recorded frame after PumpWidget")
	}
}

func TestPumpWidget_Remount(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	tester.PumpWidget(widgets.Text{Content: "first"})
	first := tester.RootElement()

	tester.PumpWidget(widgets.Text{Content: "second"})
	second := tester.RootElement()

	if first == second {
		t.Error("expected new root element after remount")
	}
}

func TestUpdateWidget_KeepsRoot(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	tester.PumpWidget(widgets.Text{Content: "first"})
	first := tester.RootElement()

	tester.UpdateWidget(widgets.Text{Content: "second"})
	if tester.RootElement() != first {
		t.Error("expected root element to be reused")
	}
	if !tester.Find(ByText("second")).Exists() {
		t.Error("expected updated text")
	}
}

func TestSetSize(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 375, Height: 667})

	tester.PumpWidget(widgets.SizedBox{Width: 10, Height: 10})
	size := tester.RootRenderObject().Size()
	if size.Width != 375 || size.Height != 667 {
		t.Errorf("root size = %v, want tight 375x667", size)
	}
}

func TestCleanupRestoresClock(t *testing.T) {
	before := animation.Now()
	tester := NewWidgetTester()
	tester.Clock().Advance(time.Hour)
	if got := animation.Now(); !got.Equal(tester.Clock().Now()) {
		t.Fatalf("animation clock = %v, want fake %v", got, tester.Clock().Now())
	}
	tester.Cleanup()
	if animation.Now().Before(before) {
		t.Error("expected real clock after Cleanup")
	}
}

func TestDispatch_RunsOnPump(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.SizedBox{})

	ran := false
	tester.Dispatch(func() { ran = true })
	if ran {
		t.Fatal("dispatch ran before pump")
	}
	tester.Pump()
	if !ran {
		t.Error("dispatch did not run on pump")
	}
}

// ticking is a widget that animates a value from 0 to 1 on mount.
type ticking struct {
	core.StatefulBase
	duration time.Duration
}

func (w ticking) CreateState() core.State { return &tickingState{} }

type tickingState struct {
	core.StateBase
	value *animation.ImplicitValue
}

func (s *tickingState) InitState() {
	w := s.Element().Widget().(ticking)
	s.value = core.UseController(s, func() *animation.ImplicitValue {
		return animation.NewImplicitValue(0, w.duration, animation.LinearCurve)
	})
	core.UseListenable(s, s.value)
	s.value.SetTarget(1)
}

func (s *tickingState) Build(ctx core.BuildContext) core.Widget {
	return widgets.SizedBox{Width: 100 * s.value.Value(), Height: 10}
}

func TestPumpAndSettle_FinishesAnimation(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Align{Child: ticking{duration: 200 * time.Millisecond}})

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	box := tester.Find(ByType[widgets.SizedBox]()).RenderObject()
	if got := box.Size().Width; got != 100 {
		t.Errorf("width after settle = %v, want 100", got)
	}
	if tester.Clock().Elapsed() < 200*time.Millisecond {
		t.Errorf("elapsed = %v, want at least the animation duration", tester.Clock().Elapsed())
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Align{Child: ticking{duration: time.Hour}})

	err := tester.PumpAndSettle(100 * time.Millisecond)
	if !errors.Is(err, ErrSettleTimeout) {
		t.Errorf("err = %v, want ErrSettleTimeout", err)
	}
}
