package graphics

// Paint describes how a shape is filled.
type Paint struct {
	Color Color
}

// DefaultPaint returns an opaque black fill.
func DefaultPaint() Paint {
	return Paint{Color: ColorBlack}
}

// Canvas records or executes drawing commands.
//
// Implementations keep a save stack of transform and clip state; every Save
// must be balanced by a Restore.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()
	// Restore pops the most recent transform and clip state.
	Restore()
	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)
	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)
	// ClipRRect restricts future drawing to the given rounded rectangle.
	ClipRRect(rrect RRect)
	// DrawRect fills a rectangle.
	DrawRect(rect Rect, paint Paint)
	// DrawRRect fills a rounded rectangle.
	DrawRRect(rrect RRect, paint Paint)
	// DrawRRectShadow draws a shadow cast by a rounded rectangle.
	DrawRRectShadow(rrect RRect, shadow BoxShadow)
	// DrawText draws laid-out text with its top-left corner at position.
	DrawText(layout *TextLayout, position Offset)
}
