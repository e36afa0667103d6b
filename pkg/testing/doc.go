// Package testing drives widget trees frame by frame for tests.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := drifttest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(expandable.NewCard(header, card,
//	        widgets.Text{Content: "Title"}, body))
//
//	    // Tap the header and let the animation finish
//	    tester.Tap(drifttest.ByText("Title"))
//	    tester.PumpAndSettle(time.Second)
//
//	    state := expandable.StateOf(tester.Find(drifttest.ByType[expandable.Card]()).First())
//	    if !state.IsExpanded() {
//	        t.Error("expected card to be expanded")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare render tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_widget.snapshot.yaml")
//
// Update snapshots with:
//
//	DRIFT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// Control time for deterministic animation tests:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/tomortec/drift-expandable/pkg/testing"
package testing
