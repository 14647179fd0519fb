package render

import (
	"image"
	"image/color"
)

// OpKind tags a recorded drawing operation.
type OpKind int

const (
	OpFill OpKind = iota
	OpFillRect
	OpEmblem
	OpPoint
	OpLine
	OpPushRotation
	OpPopRotation
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpFillRect:
		return "fill-rect"
	case OpEmblem:
		return "emblem"
	case OpPoint:
		return "point"
	case OpLine:
		return "line"
	case OpPushRotation:
		return "push-rotation"
	case OpPopRotation:
		return "pop-rotation"
	}
	return "unknown"
}

// Op is one recorded drawing command with whichever fields its kind uses.
type Op struct {
	Kind   OpKind
	Color  color.RGBA
	Rect   Rect
	Image  image.Image
	Stroke Stroke
	Deg    float64
	X1, Y1 float64
	X2, Y2 float64
}

// Recorder is a Canvas that logs operations instead of drawing pixels, so
// tests can assert on the exact command sequence a frame produces.
type Recorder struct {
	Ops []Op
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Fill(c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Color: c})
}

func (r *Recorder) FillRect(rc Rect, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rc, Color: c})
}

func (r *Recorder) Emblem(img image.Image, rc Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpEmblem, Image: img, Rect: rc})
}

func (r *Recorder) Point(x, y float64, s Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpPoint, X1: x, Y1: y, Stroke: s})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, s Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Stroke: s})
}

func (r *Recorder) PushRotation(deg, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpPushRotation, Deg: deg, X1: x, Y1: y})
}

func (r *Recorder) PopRotation() {
	r.Ops = append(r.Ops, Op{Kind: OpPopRotation})
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops with the given kind, in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
