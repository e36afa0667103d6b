// Package widgets provides the layout, decoration, gesture, and text
// widgets that compose the expandable card.
//
// Widgets are value types: build a new one on every rebuild and let the
// element tree reconcile it with the previous render object.
//
//	widgets.Padding{
//	    Padding: layout.EdgeInsetsSymmetric(0, 5),
//	    Child: widgets.Center{Child: widgets.Text{Content: "Hello"}},
//	}
//
// Layout follows the box protocol: constraints go down, sizes come up, and
// parents position children by writing [layout.BoxParentData].
package widgets
