package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/tomortec/drift-expandable/pkg/core"
	"github.com/tomortec/drift-expandable/pkg/layout"
	"github.com/tomortec/drift-expandable/pkg/widgets"
)

// Finder locates elements in the element tree.
type Finder interface {
	// Evaluate returns the matches under root in depth-first pre-order,
	// root included.
	Evaluate(root core.Element) []core.Element
	// Description names the finder in failure messages.
	Description() string
}

// FinderResult holds the elements a finder matched.
type FinderResult struct {
	elements []core.Element
	finder   Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown finder"
	}
	return r.finder.Description()
}

// First returns the first match and panics when there is none.
func (r FinderResult) First() core.Element {
	return r.At(0)
}

// FirstOrNil returns the first match, or nil.
func (r FinderResult) FirstOrNil() core.Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// At returns the i-th match and panics when i is out of range.
func (r FinderResult) At(i int) core.Element {
	if len(r.elements) == 0 {
		panic(fmt.Sprintf("%s matched nothing", r.describe()))
	}
	if i < 0 || i >= len(r.elements) {
		panic(fmt.Sprintf("%s: index %d out of range, %d matches", r.describe(), i, len(r.elements)))
	}
	return r.elements[i]
}

// All returns every match.
func (r FinderResult) All() []core.Element { return r.elements }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.elements) }

// Exists reports whether anything matched.
func (r FinderResult) Exists() bool { return len(r.elements) > 0 }

// Widget returns the first match's widget.
func (r FinderResult) Widget() core.Widget { return r.First().Widget() }

// RenderObject returns the render object at or below the first match.
func (r FinderResult) RenderObject() layout.RenderObject {
	return extractRenderObject(r.First())
}

// matcher is a Finder built from a per-element predicate.
type matcher struct {
	desc  string
	match func(core.Element) bool
}

func (m matcher) Evaluate(root core.Element) []core.Element {
	var found []core.Element
	visit(root, func(e core.Element) {
		if m.match(e) {
			found = append(found, e)
		}
	})
	return found
}

func (m matcher) Description() string { return m.desc }

// ByType matches elements whose widget has type T.
func ByType[T core.Widget]() Finder {
	want := reflect.TypeOf((*T)(nil)).Elem()
	return matcher{
		desc: "ByType(" + want.String() + ")",
		match: func(e core.Element) bool {
			return reflect.TypeOf(e.Widget()) == want
		},
	}
}

// ByKey matches elements whose widget key equals key. Keys that are not
// comparable are compared with reflect.DeepEqual.
func ByKey(key any) Finder {
	return matcher{
		desc: fmt.Sprintf("ByKey(%v)", key),
		match: func(e core.Element) bool {
			return keysEqual(e.Widget().Key(), key)
		},
	}
}

func keysEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// ByText matches [widgets.Text] whose content is exactly text.
func ByText(text string) Finder {
	return textMatcher(fmt.Sprintf("ByText(%q)", text), func(s string) bool { return s == text })
}

// ByTextContaining matches [widgets.Text] whose content contains substring.
func ByTextContaining(substring string) Finder {
	return textMatcher(fmt.Sprintf("ByTextContaining(%q)", substring), func(s string) bool {
		return strings.Contains(s, substring)
	})
}

func textMatcher(desc string, accept func(string) bool) Finder {
	return matcher{
		desc: desc,
		match: func(e core.Element) bool {
			t, ok := e.Widget().(widgets.Text)
			return ok && accept(t.Content)
		},
	}
}

// ByPredicate matches elements for which fn returns true.
func ByPredicate(fn func(core.Element) bool) Finder {
	return matcher{desc: "ByPredicate", match: fn}
}

// ByState matches stateful elements whose state implements or is S.
func ByState[S any]() Finder {
	return matcher{
		desc: fmt.Sprintf("ByState(%s)", reflect.TypeOf((*S)(nil)).Elem()),
		match: func(e core.Element) bool {
			se, ok := e.(*core.StatefulElement)
			if !ok {
				return false
			}
			_, ok = se.State().(S)
			return ok
		},
	}
}

type descendant struct {
	of, matching Finder
}

// Descendant matches elements found by matching strictly below an element
// found by of. Each element is reported once.
func Descendant(of, matching Finder) Finder {
	return descendant{of: of, matching: matching}
}

func (d descendant) Evaluate(root core.Element) []core.Element {
	var found []core.Element
	seen := make(map[core.Element]struct{})
	for _, ancestor := range d.of.Evaluate(root) {
		ancestor.VisitChildren(func(child core.Element) bool {
			for _, e := range d.matching.Evaluate(child) {
				if _, dup := seen[e]; !dup {
					seen[e] = struct{}{}
					found = append(found, e)
				}
			}
			return true
		})
	}
	return found
}

func (d descendant) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", d.of.Description(), d.matching.Description())
}

// visit calls fn for root and every element below it, parents first.
func visit(root core.Element, fn func(core.Element)) {
	if root == nil {
		return
	}
	fn(root)
	root.VisitChildren(func(child core.Element) bool {
		visit(child, fn)
		return true
	})
}
