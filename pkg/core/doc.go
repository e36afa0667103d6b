// Package core provides the widget and element framework interfaces and lifecycle.
//
// Widgets are immutable descriptions of part of the UI. Elements are the
// instantiation of a widget at a particular location in the tree; they keep
// identity across rebuilds and own any mutable State. Render object widgets
// create the [layout.RenderObject] that does layout and painting.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type cardState struct {
//	    core.StateBase
//	    expanded bool
//	}
//
//	func (s *cardState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.GestureDetector{
//	        OnTap: func() { s.SetState(func() { s.expanded = !s.expanded }) },
//	        Child: header,
//	    }
//	}
//
// # Hooks
//
// UseController and UseListenable manage resources and subscriptions with
// automatic cleanup on disposal.
//
// # Threading
//
// Elements are not safe for concurrent use. Build, layout, and state changes
// run on the frame goroutine; other goroutines hand work over through the
// engine's Dispatch.
package core
