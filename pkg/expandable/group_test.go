package expandable_test

import (
	"fmt"
	"testing"

	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/expandable"
	"github.com/tomortec/drift-expandable/pkg/graphics"
	drifttest "github.com/tomortec/drift-expandable/pkg/testing"
	"github.com/tomortec/drift-expandable/pkg/widgets"
)

func labelled(prefix string, n int) []core.Widget {
	out := make([]core.Widget, n)
	for i := range out {
		out[i] = widgets.Text{Content: fmt.Sprintf("%s%d", prefix, i)}
	}
	return out
}

func newGroup(t *testing.T, headers, bodies []core.Widget) expandable.Group {
	t.Helper()
	g, err := expandable.NewGroup(headerSize, cardSize, headers, bodies)
	if err != nil {
		t.Fatalf("NewGroup: %v", err)
	}
	return g
}

func expandedFlags(t *testing.T, tester *drifttest.WidgetTester, n int) []bool {
	t.Helper()
	flags := make([]bool, n)
	for i := range flags {
		flags[i] = cardAt(t, tester, i).IsExpanded()
	}
	return flags
}

func TestGroup_MembersToggleIndependently(t *testing.T) {
	tester := pumpTop(t, newGroup(t, labelled("H", 3), labelled("B", 3)))

	tester.Tap(drifttest.ByText("H1"))
	settle(t, tester)
	if got := expandedFlags(t, tester, 3); got[0] || !got[1] || got[2] {
		t.Fatalf("after tapping H1: %v", got)
	}

	tester.Tap(drifttest.ByText("H0"))
	settle(t, tester)
	if got := expandedFlags(t, tester, 3); !got[0] || !got[1] || got[2] {
		t.Fatalf("after tapping H0: %v, opening one card must not close another", got)
	}
	if h := cardAt(t, tester, 2).Height(); h != 50 {
		t.Errorf("untouched card height = %v, want 50", h)
	}
}

func TestGroup_SharedHeader(t *testing.T) {
	g, err := expandable.NewSharedHeaderGroup(headerSize, cardSize,
		widgets.Text{Content: "Shared"},
		labelled("B", 5)...,
	)
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 5 {
		t.Fatalf("Len = %d, want 5", g.Len())
	}
	for i, c := range g.Cards() {
		if c.Header().(widgets.Text).Content != "Shared" {
			t.Errorf("card %d header = %v", i, c.Header())
		}
		if c.Key() != i {
			t.Errorf("card %d key = %v", i, c.Key())
		}
	}

	tester := pumpTop(t, g)
	if got := tester.Find(drifttest.ByText("Shared")).Count(); got != 5 {
		t.Errorf("rendered headers = %d, want 5", got)
	}
}

func TestGroup_StyleAppliesToEveryCard(t *testing.T) {
	g := newGroup(t, labelled("H", 1), labelled("B", 3)).
		HeadersBackgroundColor(graphics.ColorMint).
		CardBackgroundColor(graphics.ColorPurple).
		HeaderCornerRadius(8).
		CardCornerRadius(4).
		Shadow(0, graphics.ColorGray, 0, 0).
		DynamicCardHeight()

	for i, c := range g.Cards() {
		s := c.Style()
		if s.HeaderBackground != graphics.ColorMint || s.CardBackground != graphics.ColorPurple {
			t.Errorf("card %d colors = %v/%v", i, s.HeaderBackground, s.CardBackground)
		}
		if s.Overlap() != 12 || s.Shadow.BoxShadow() != nil {
			t.Errorf("card %d style = %+v", i, s)
		}
		if !c.IsDynamic() {
			t.Errorf("card %d should be dynamic", i)
		}
	}
}

func TestGroup_Spacing(t *testing.T) {
	g := newGroup(t, labelled("H", 2), labelled("B", 2)).VerticalSpacing(20)
	tester := pumpTop(t, g)

	first := drifttest.RenderRect(tester.Find(drifttest.ByType[expandable.Card]()).At(0).RenderObject())
	second := drifttest.RenderRect(tester.Find(drifttest.ByType[expandable.Card]()).At(1).RenderObject())
	if gap := second.Top - first.Bottom; gap != 20 {
		t.Errorf("gap = %v, want 20", gap)
	}
	if first.Top != 10 {
		t.Errorf("first card top = %v, want half the spacing", first.Top)
	}

	if got := g.VerticalSpacing(-5).Spacing(); got != 0 {
		t.Errorf("negative spacing = %v, want 0", got)
	}
}

func TestGroup_ExpandingPushesLaterCardsDown(t *testing.T) {
	tester := pumpTop(t, newGroup(t, labelled("H", 2), labelled("B", 2)))
	cards := drifttest.ByType[expandable.Card]()
	before := drifttest.RenderRect(tester.Find(cards).At(1).RenderObject()).Top

	tester.Tap(drifttest.ByText("H0"))
	settle(t, tester)
	after := drifttest.RenderRect(tester.Find(cards).At(1).RenderObject()).Top
	if after-before != 200 {
		t.Errorf("second card moved by %v, want 200", after-before)
	}
}

func TestGroup_OnToggleReportsIndex(t *testing.T) {
	type event struct {
		index    int
		expanded bool
	}
	var events []event
	g := newGroup(t, labelled("H", 3), labelled("B", 3)).OnToggle(func(i int, expanded bool) {
		events = append(events, event{i, expanded})
	})
	tester := pumpTop(t, g)

	tester.Tap(drifttest.ByText("H2"))
	tester.Tap(drifttest.ByText("H0"))
	want := []event{{2, true}, {0, true}}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %v, want %v", i, events[i], want[i])
		}
	}
}

func TestGroup_RebuildKeepsCardState(t *testing.T) {
	tester := pumpTop(t, newGroup(t, labelled("H", 2), labelled("B", 2)))
	tester.Tap(drifttest.ByText("H1"))
	settle(t, tester)

	tester.UpdateWidget(widgetsTop(newGroup(t, labelled("H", 2), labelled("B", 2)).
		CardBackgroundColor(graphics.ColorOrange)))
	if !cardAt(t, tester, 1).IsExpanded() {
		t.Error("restyling the group reset card state")
	}
}

func TestGroup_Empty(t *testing.T) {
	g, err := expandable.NewGroup(headerSize, cardSize, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	tester := pumpTop(t, g)
	if tester.Find(drifttest.ByType[expandable.Card]()).Exists() {
		t.Error("empty group rendered cards")
	}
}

func widgetsTop(w core.Widget) core.Widget {
	return widgets.Align{Alignment: alignTop, Child: w}
}
