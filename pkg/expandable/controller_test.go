package expandable_test

import (
	"testing"

	"github.com/tomortec/drift-expandable/pkg/expandable"
	drifttest "github.com/tomortec/drift-expandable/pkg/testing"
	"github.com/tomortec/drift-expandable/pkg/widgets"
)

func TestController_ExpandAnimates(t *testing.T) {
	ctrl := expandable.NewController()
	notified := 0
	ctrl.AddListener(func() { notified++ })
	tester := pumpTop(t, basicCard().WithController(ctrl))
	state := cardAt(t, tester, 0)

	ctrl.Expand()
	if !ctrl.IsExpanded() || !state.IsExpanded() {
		t.Fatal("Expand did not open the card")
	}
	if notified != 1 {
		t.Errorf("notified = %d, want 1", notified)
	}
	ctrl.Expand()
	if notified != 1 {
		t.Errorf("Expand on an open card notified again")
	}

	tester.Pump()
	if state.Height() != 50 {
		t.Errorf("height jumped to %v, want an animation from 50", state.Height())
	}
	settle(t, tester)
	if state.Height() != 250 {
		t.Errorf("settled height = %v, want 250", state.Height())
	}

	ctrl.Collapse()
	settle(t, tester)
	if ctrl.IsExpanded() || state.Height() != 50 {
		t.Errorf("after Collapse: expanded=%v height=%v", ctrl.IsExpanded(), state.Height())
	}
}

func TestController_SeesHeaderTaps(t *testing.T) {
	ctrl := expandable.NewController()
	var seen []bool
	unsubscribe := ctrl.AddListener(func() { seen = append(seen, ctrl.IsExpanded()) })
	tester := pumpTop(t, basicCard().WithController(ctrl))

	tester.Tap(drifttest.ByText("Header"))
	unsubscribe()
	tester.Tap(drifttest.ByText("Header"))

	if len(seen) != 1 || !seen[0] {
		t.Errorf("seen = %v, want [true]", seen)
	}
	if ctrl.IsExpanded() {
		t.Error("controller missed the second tap")
	}
}

func TestController_RequestBeforeMount(t *testing.T) {
	ctrl := expandable.NewController()
	ctrl.Expand()
	if !ctrl.IsExpanded() {
		t.Fatal("detached controller should remember the request")
	}

	tester := pumpTop(t, basicCard().WithController(ctrl))
	state := cardAt(t, tester, 0)
	if !state.IsExpanded() || state.Height() != 250 {
		t.Errorf("expanded=%v height=%v, want open at 250 on mount", state.IsExpanded(), state.Height())
	}
}

func TestController_AdoptsInitialState(t *testing.T) {
	ctrl := expandable.NewController()
	pumpTop(t, basicCard().InitiallyExpanded().WithController(ctrl))

	if !ctrl.IsExpanded() {
		t.Error("controller should adopt the card's initial state")
	}
}

func TestController_DetachKeepsLastState(t *testing.T) {
	ctrl := expandable.NewController()
	tester := pumpTop(t, basicCard().WithController(ctrl))
	ctrl.Toggle()
	settle(t, tester)

	tester.UpdateWidget(widgetsTop(basicCard()))
	if !ctrl.IsExpanded() {
		t.Error("detached controller lost the card state")
	}
	state := cardAt(t, tester, 0)
	ctrl.Collapse()
	if !state.IsExpanded() {
		t.Error("detached controller still drives the card")
	}
}

func TestController_MovesBetweenCards(t *testing.T) {
	ctrl := expandable.NewController()
	tester := pumpTop(t, widgets.ColumnOf(
		basicCard().WithKey("a").WithController(ctrl),
		basicCard().WithKey("b"),
	))
	ctrl.Expand()
	settle(t, tester)

	tester.UpdateWidget(widgetsTop(widgets.ColumnOf(
		basicCard().WithKey("a"),
		basicCard().WithKey("b").WithController(ctrl),
	)))
	if ctrl.IsExpanded() {
		t.Error("controller should report the newly attached card's state")
	}
	ctrl.Expand()
	settle(t, tester)
	if !cardAt(t, tester, 0).IsExpanded() || !cardAt(t, tester, 1).IsExpanded() {
		t.Error("expected both cards open")
	}
}

func TestController_Dispose(t *testing.T) {
	ctrl := expandable.NewController()
	calls := 0
	ctrl.AddListener(func() { calls++ })
	ctrl.Dispose()
	ctrl.Toggle()
	if calls != 0 {
		t.Errorf("listener called after Dispose")
	}
}
