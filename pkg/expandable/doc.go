// Package expandable provides a header that expands to reveal a card, and
// a group that stacks such cards with shared styling.
//
// # Cards
//
// A [Card] has a fixed header footprint and a card footprint. Tapping the
// header toggles the card; the unit's height animates between the header
// height and the header height plus the card height:
//
//	card := expandable.NewCard(
//	    graphics.Size{Width: 300, Height: 50},
//	    graphics.Size{Width: 300, Height: 200},
//	    widgets.Text{Content: "Details"},
//	    body,
//	).HeaderBackgroundColor(graphics.ColorCyan)
//
// A negative card height, or [Card.DynamicHeight], sizes the card to its
// content. The content is measured with a [SizeProbe] after each layout
// pass; until the first measurement arrives the card assumes
// [PlaceholderContentHeight].
//
// # Groups
//
// A [Group] pairs headers with bodies. One header is shared by all bodies;
// otherwise there must be one header per body, and any other combination is
// a [*ConfigError]:
//
//	group, err := expandable.NewSharedHeaderGroup(headerSize, cardSize, header, a, b, c)
//	if err != nil {
//	    return err
//	}
//	group = group.VerticalSpacing(10).Shadow(0, graphics.ColorGray, 0, 0)
//
// # Control
//
// A [Controller] toggles a card from code. [StateOf] exposes the live
// heights of a mounted card for tests and tools.
package expandable
