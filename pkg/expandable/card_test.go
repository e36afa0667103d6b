package expandable_test

import (
	"math"
	"testing"
	"time"

	"github.com/tomortec/drift-expandable/pkg/animation"
	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/expandable"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	"github.com/tomortec/drift-expandable/pkg/layout"
	drifttest "github.com/tomortec/drift-expandable/pkg/testing"
	"github.com/tomortec/drift-expandable/pkg/widgets"
)

var (
	alignTop   = layout.AlignmentTopCenter
	headerSize = graphics.Size{Width: 300, Height: 50}
	cardSize   = graphics.Size{Width: 300, Height: 200}
)

func basicCard() expandable.Card {
	return expandable.NewCard(headerSize, cardSize,
		widgets.Text{Content: "Header"},
		widgets.Text{Content: "Body"},
	)
}

func pumpTop(t *testing.T, w core.Widget) *drifttest.WidgetTester {
	t.Helper()
	tester := drifttest.NewWidgetTesterWithT(t)
	if err := tester.PumpWidget(widgetsTop(w)); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	return tester
}

func cardAt(t *testing.T, tester *drifttest.WidgetTester, index int) expandable.CardState {
	t.Helper()
	result := tester.Find(drifttest.ByType[expandable.Card]())
	if result.Count() <= index {
		t.Fatalf("found %d cards, want index %d", result.Count(), index)
	}
	state := expandable.StateOf(result.At(index))
	if state == nil {
		t.Fatal("card element has no card state")
	}
	return state
}

func renderedHeight(tester *drifttest.WidgetTester, index int) float64 {
	return tester.Find(drifttest.ByType[expandable.Card]()).At(index).RenderObject().Size().Height
}

func settle(t *testing.T, tester *drifttest.WidgetTester) {
	t.Helper()
	if err := tester.PumpAndSettle(2 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCard_StartsCollapsed(t *testing.T) {
	tester := pumpTop(t, basicCard())
	state := cardAt(t, tester, 0)

	if state.IsExpanded() {
		t.Fatal("card should start collapsed")
	}
	size := tester.Find(drifttest.ByType[expandable.Card]()).RenderObject().Size()
	if size != headerSize {
		t.Errorf("collapsed size = %v, want %v", size, headerSize)
	}
	if state.CardRegionHeight() != 0 {
		t.Errorf("collapsed region = %v, want 0", state.CardRegionHeight())
	}
}

func TestCard_TapExpandsAndCollapses(t *testing.T) {
	tester := pumpTop(t, basicCard())
	state := cardAt(t, tester, 0)

	if err := tester.Tap(drifttest.ByText("Header")); err != nil {
		t.Fatal(err)
	}
	settle(t, tester)
	if !state.IsExpanded() || state.Height() != 250 || renderedHeight(tester, 0) != 250 {
		t.Fatalf("after tap: expanded=%v height=%v rendered=%v", state.IsExpanded(), state.Height(), renderedHeight(tester, 0))
	}
	if got := state.CardRegionHeight(); got != 200+expandable.DefaultStyle().Overlap() {
		t.Errorf("expanded region = %v", got)
	}

	tester.Tap(drifttest.ByText("Header"))
	settle(t, tester)
	if state.IsExpanded() || state.Height() != 50 {
		t.Fatalf("after second tap: expanded=%v height=%v", state.IsExpanded(), state.Height())
	}
}

func TestCard_TapOnBodyDoesNotToggle(t *testing.T) {
	tester := pumpTop(t, basicCard().InitiallyExpanded())
	state := cardAt(t, tester, 0)

	tester.Tap(drifttest.ByText("Body"))
	settle(t, tester)
	if !state.IsExpanded() {
		t.Error("tapping the card content collapsed the card")
	}
}

func TestCard_RetargetContinuesFromDisplayedHeight(t *testing.T) {
	tester := pumpTop(t, basicCard())
	state := cardAt(t, tester, 0)

	tester.Tap(drifttest.ByText("Header"))
	tester.Pump()
	if state.TargetHeight() != 250 {
		t.Fatalf("target = %v, want 250", state.TargetHeight())
	}

	tester.PumpFor(175 * time.Millisecond)
	mid := state.Height()
	if mid <= 50 || mid >= 250 {
		t.Fatalf("mid-flight height = %v, want strictly between 50 and 250", mid)
	}
	if got := renderedHeight(tester, 0); !near(got, mid) {
		t.Errorf("rendered height = %v, want %v", got, mid)
	}

	tester.Tap(drifttest.ByText("Header"))
	if state.IsExpanded() {
		t.Fatal("second tap should collapse")
	}
	if got := state.StartHeight(); !near(got, mid) {
		t.Errorf("reverse transition starts at %v, want %v", got, mid)
	}
	if state.TargetHeight() != 50 {
		t.Errorf("target = %v, want 50", state.TargetHeight())
	}

	tester.Pump()
	if got := state.Height(); !near(got, mid) {
		t.Errorf("height jumped to %v on retarget, want %v", got, mid)
	}

	settle(t, tester)
	if state.Height() != 50 || renderedHeight(tester, 0) != 50 {
		t.Errorf("settled at %v, want 50", state.Height())
	}
}

func TestCard_LinearTransitionMidpoint(t *testing.T) {
	tester := pumpTop(t, basicCard().Transition(100*time.Millisecond, animation.LinearCurve))
	state := cardAt(t, tester, 0)

	tester.Tap(drifttest.ByText("Header"))
	tester.Pump()
	tester.PumpFor(50 * time.Millisecond)
	if got := state.Height(); !near(got, 150) {
		t.Errorf("height at half time = %v, want 150", got)
	}
}

func TestCard_DynamicHeightFollowsContent(t *testing.T) {
	build := func(h float64) core.Widget {
		return widgets.Align{
			Alignment: layout.AlignmentTopCenter,
			Child: expandable.NewCard(headerSize, cardSize,
				widgets.Text{Content: "Header"},
				widgets.SizedBox{Width: 300, Height: h},
			).DynamicHeight(),
		}
	}
	tester := drifttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(build(137))
	state := cardAt(t, tester, 0)

	if got := state.MeasuredHeight(); got != 137 {
		t.Fatalf("measured = %v, want 137 while collapsed", got)
	}
	state.Toggle()
	settle(t, tester)
	if got := state.Height(); got != 187 {
		t.Errorf("expanded height = %v, want 187", got)
	}

	tester.UpdateWidget(build(60))
	settle(t, tester)
	if got := state.Height(); got != 110 {
		t.Errorf("height after content shrank = %v, want 110", got)
	}
}

func TestCard_DynamicHeightMeasuresText(t *testing.T) {
	tester := pumpTop(t, expandable.NewCard(headerSize, cardSize,
		widgets.Text{Content: "Header"},
		widgets.Text{Content: "A short body"},
	).DynamicHeight().InitiallyExpanded())
	state := cardAt(t, tester, 0)
	settle(t, tester)

	text := tester.Find(drifttest.ByText("A short body")).RenderObject().Size().Height
	if text <= 0 {
		t.Fatalf("text height = %v", text)
	}
	if got := state.MeasuredHeight(); got != text {
		t.Errorf("measured = %v, want text height %v", got, text)
	}
	if got := state.Height(); got != 50+text {
		t.Errorf("height = %v, want %v", got, 50+text)
	}
}

func TestCard_DynamicPlaceholderBeforeMeasurement(t *testing.T) {
	tester := pumpTop(t, expandable.NewCard(headerSize, cardSize,
		widgets.Text{Content: "Header"}, nil,
	).DynamicHeight().InitiallyExpanded())
	state := cardAt(t, tester, 0)
	settle(t, tester)

	// An empty probe measures zero, which is ignored.
	if got := state.Height(); got != 50+expandable.PlaceholderContentHeight {
		t.Errorf("height = %v, want placeholder %v", got, 50+expandable.PlaceholderContentHeight)
	}
}

func TestCard_OnToggle(t *testing.T) {
	var calls []bool
	tester := pumpTop(t, basicCard().OnToggle(func(expanded bool) {
		calls = append(calls, expanded)
	}))

	tester.Tap(drifttest.ByText("Header"))
	tester.Tap(drifttest.ByText("Header"))
	if len(calls) != 2 || !calls[0] || calls[1] {
		t.Errorf("calls = %v, want [true false]", calls)
	}
}

func TestCard_InitiallyExpanded(t *testing.T) {
	tester := pumpTop(t, basicCard().InitiallyExpanded())
	state := cardAt(t, tester, 0)

	if !state.IsExpanded() || state.Height() != 250 {
		t.Errorf("expanded=%v height=%v, want open at 250 without animating", state.IsExpanded(), state.Height())
	}
	if tester.Engine().NeedsFrame() {
		t.Error("mounting open should not start an animation")
	}
}

func TestCard_DoubleToggleInOneFrameRests(t *testing.T) {
	tester := pumpTop(t, basicCard())
	state := cardAt(t, tester, 0)

	state.Toggle()
	state.Toggle()
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	if state.IsExpanded() || state.Height() != 50 || state.TargetHeight() != 50 {
		t.Fatalf("expanded=%v height=%v target=%v", state.IsExpanded(), state.Height(), state.TargetHeight())
	}
	if tester.Engine().NeedsFrame() {
		t.Error("no frames should be pending after toggling back before any frame")
	}
}

func TestCard_PaintsStyle(t *testing.T) {
	tester := pumpTop(t, basicCard().
		HeaderBackgroundColor(graphics.ColorCyan).
		CardBackgroundColor(graphics.ColorYellow).
		Shadow(0, graphics.ColorGray, 0, 0).
		InitiallyExpanded())

	var cyan, yellow, shadows int
	for _, op := range tester.LastFrame().Ops() {
		switch {
		case op.Kind == graphics.OpDrawRRectShadow:
			shadows++
		case op.Kind == graphics.OpDrawRRect && op.Paint.Color == graphics.ColorCyan:
			cyan++
		case op.Kind == graphics.OpDrawRRect && op.Paint.Color == graphics.ColorYellow:
			yellow++
		}
	}
	if cyan != 1 || yellow == 0 {
		t.Errorf("cyan=%d yellow=%d, want a cyan header over a yellow card", cyan, yellow)
	}
	if shadows != 0 {
		t.Errorf("shadow ops = %d, want none", shadows)
	}
}

func TestCard_ShadowPaintsUnderHeaderAndCard(t *testing.T) {
	tester := pumpTop(t, basicCard().InitiallyExpanded())

	shadows := 0
	for _, op := range tester.LastFrame().Ops() {
		if op.Kind == graphics.OpDrawRRectShadow {
			shadows++
		}
	}
	if shadows != 2 {
		t.Errorf("shadow ops = %d, want 2", shadows)
	}
}

func TestCard_NegativeRadiiClamp(t *testing.T) {
	c := basicCard().HeaderCornerRadius(-4).CardCornerRadius(-1)
	if c.Style().HeaderCornerRadius != 0 || c.Style().CardCornerRadius != 0 {
		t.Errorf("style = %+v", c.Style())
	}
	if c.Style().Overlap() != 0 {
		t.Errorf("overlap = %v", c.Style().Overlap())
	}
}

func TestCard_DisposedStateIgnoresToggle(t *testing.T) {
	tester := pumpTop(t, basicCard())
	state := cardAt(t, tester, 0)

	tester.PumpWidget(widgets.SizedBox{})
	state.Toggle()
	if state.IsExpanded() {
		t.Error("toggle after unmount changed state")
	}
}
