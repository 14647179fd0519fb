package render

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// GGCanvas rasterizes frames through a gogpu/gg software context.
//
// gg's rasterizer always anti-aliases, so Stroke.Antialias cannot be honored
// per operation here; the flag still round-trips through the style set and is
// asserted against the Recorder in tests.
type GGCanvas struct {
	dc *gg.Context
}

func NewGGCanvas(width, height int) *GGCanvas {
	return &GGCanvas{dc: gg.NewContext(width, height)}
}

func (g *GGCanvas) Fill(c color.RGBA) {
	g.dc.ClearWithColor(gg.FromColor(c))
}

func (g *GGCanvas) FillRect(r Rect, c color.RGBA) {
	g.dc.SetColor(c)
	g.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	g.dc.Fill()
}

func (g *GGCanvas) Emblem(img image.Image, r Rect) {
	buf := gg.ImageBufFromImage(img)
	g.dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:         r.X,
		Y:         r.Y,
		DstWidth:  r.W,
		DstHeight: r.H,
	})
}

func (g *GGCanvas) Point(x, y float64, s Stroke) {
	g.dc.SetColor(s.Color)
	g.dc.DrawPoint(x, y, s.Width/2)
	g.dc.Fill()
}

func (g *GGCanvas) Line(x1, y1, x2, y2 float64, s Stroke) {
	g.dc.SetColor(s.Color)
	g.dc.SetLineWidth(s.Width)
	g.dc.SetLineCap(lineCap(s.Cap))
	g.dc.DrawLine(x1, y1, x2, y2)
	g.dc.Stroke()
}

func (g *GGCanvas) PushRotation(deg, x, y float64) {
	g.dc.Push()
	g.dc.RotateAbout(deg*math.Pi/180, x, y)
}

func (g *GGCanvas) PopRotation() {
	g.dc.Pop()
}

// Image returns the rendered frame.
func (g *GGCanvas) Image() image.Image {
	return g.dc.Image()
}

// EncodePNG writes the rendered frame as PNG.
func (g *GGCanvas) EncodePNG(w io.Writer) error {
	return g.dc.EncodePNG(w)
}

func lineCap(c LineCap) gg.LineCap {
	switch c {
	case CapRound:
		return gg.LineCapRound
	case CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}
