package graphics

import "fmt"

// OpKind identifies a recorded drawing command.
type OpKind int

const (
	OpSave OpKind = iota
	OpRestore
	OpTranslate
	OpClipRect
	OpClipRRect
	OpDrawRect
	OpDrawRRect
	OpDrawRRectShadow
	OpDrawText
)

// String returns a human-readable representation of the op kind.
func (k OpKind) String() string {
	switch k {
	case OpSave:
		return "save"
	case OpRestore:
		return "restore"
	case OpTranslate:
		return "translate"
	case OpClipRect:
		return "clipRect"
	case OpClipRRect:
		return "clipRRect"
	case OpDrawRect:
		return "drawRect"
	case OpDrawRRect:
		return "drawRRect"
	case OpDrawRRectShadow:
		return "drawRRectShadow"
	case OpDrawText:
		return "drawText"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// DisplayOp is one recorded drawing command. Only the fields relevant to
// Kind are populated.
type DisplayOp struct {
	Kind   OpKind
	Offset Offset
	Rect   Rect
	RRect  RRect
	Paint  Paint
	Shadow BoxShadow
	Text   *TextLayout
}

// DisplayList is an immutable list of drawing operations that can be
// replayed onto any Canvas.
type DisplayList struct {
	ops  []DisplayOp
	size Size
}

// Ops returns the recorded operations in order.
func (d *DisplayList) Ops() []DisplayOp {
	return d.ops
}

// Size returns the size passed to BeginRecording.
func (d *DisplayList) Size() Size {
	return d.size
}

// Paint replays the recorded operations onto canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpSave:
			canvas.Save()
		case OpRestore:
			canvas.Restore()
		case OpTranslate:
			canvas.Translate(op.Offset.X, op.Offset.Y)
		case OpClipRect:
			canvas.ClipRect(op.Rect)
		case OpClipRRect:
			canvas.ClipRRect(op.RRect)
		case OpDrawRect:
			canvas.DrawRect(op.Rect, op.Paint)
		case OpDrawRRect:
			canvas.DrawRRect(op.RRect, op.Paint)
		case OpDrawRRectShadow:
			canvas.DrawRRectShadow(op.RRect, op.Shadow)
		case OpDrawText:
			canvas.DrawText(op.Text, op.Offset)
		}
	}
}

// PictureRecorder records drawing commands into a DisplayList.
type PictureRecorder struct {
	ops       []DisplayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording and returns the recording canvas.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]DisplayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, size: r.size}
}

func (r *PictureRecorder) append(op DisplayOp) {
	if r.recording {
		r.ops = append(r.ops, op)
	}
}

type recordingCanvas struct {
	recorder *PictureRecorder
}

func (c *recordingCanvas) Save()    { c.recorder.append(DisplayOp{Kind: OpSave}) }
func (c *recordingCanvas) Restore() { c.recorder.append(DisplayOp{Kind: OpRestore}) }

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(DisplayOp{Kind: OpTranslate, Offset: Offset{X: dx, Y: dy}})
}

func (c *recordingCanvas) ClipRect(rect Rect) {
	c.recorder.append(DisplayOp{Kind: OpClipRect, Rect: rect})
}

func (c *recordingCanvas) ClipRRect(rrect RRect) {
	c.recorder.append(DisplayOp{Kind: OpClipRRect, RRect: rrect})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(DisplayOp{Kind: OpDrawRect, Rect: rect, Paint: paint})
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.recorder.append(DisplayOp{Kind: OpDrawRRect, RRect: rrect, Paint: paint})
}

func (c *recordingCanvas) DrawRRectShadow(rrect RRect, shadow BoxShadow) {
	c.recorder.append(DisplayOp{Kind: OpDrawRRectShadow, RRect: rrect, Shadow: shadow})
}

func (c *recordingCanvas) DrawText(layout *TextLayout, position Offset) {
	c.recorder.append(DisplayOp{Kind: OpDrawText, Text: layout, Offset: position})
}
