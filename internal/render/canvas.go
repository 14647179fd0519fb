package render

import (
	"image"
	"image/color"
)

// Canvas is the drawing surface the painter renders a frame onto. The
// production implementation rasterizes through gogpu/gg; tests use a
// Recorder that logs operations instead of pixels.
type Canvas interface {
	// Fill floods the entire surface with a color.
	Fill(c color.RGBA)

	// FillRect fills r with a color.
	FillRect(r Rect, c color.RGBA)

	// Emblem draws img scaled to cover r.
	Emblem(img image.Image, r Rect)

	// Point draws a single stroked point at (x, y).
	Point(x, y float64, s Stroke)

	// Line draws a stroked segment from (x1, y1) to (x2, y2).
	Line(x1, y1, x2, y2 float64, s Stroke)

	// PushRotation rotates subsequent drawing by deg degrees clockwise about
	// (x, y). Rotations nest; each push is undone by one PopRotation.
	PushRotation(deg, x, y float64)

	// PopRotation undoes the most recent PushRotation.
	PopRotation()
}
