package face

import (
	"image"
	"image/color"

	"gwatchface/internal/render"
)

// Compiled-in theme constants. The emblem images are not baked in here;
// they are supplied pre-loaded (from a theme pack or the procedural
// fallback) when the style set is built.
var (
	colorBackground  = color.RGBA{R: 0x26, G: 0x32, B: 0x38, A: 0xff}
	colorAmbientBG   = color.RGBA{A: 0xff}
	colorHourHand    = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	colorMinuteHand  = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	colorSecondHand  = color.RGBA{R: 0xef, G: 0x53, B: 0x50, A: 0xff}
	colorDot         = color.RGBA{R: 0x90, G: 0xa4, B: 0xae, A: 0xff}
	colorAmbientHand = color.RGBA{R: 0xbd, G: 0xbd, B: 0xbd, A: 0xff}
)

const (
	handStrokeWidth = 5.0
	dotStrokeWidth  = 4.0
)

// Emblems are the pre-loaded background images for the three render
// variants. Any of them may be nil.
type Emblems struct {
	Normal image.Image
	Dark   image.Image
	// Outline is the burn-in-safe variant used when the display reports
	// burn-in protection or low-bit ambient rendering.
	Outline image.Image
}

// DefaultStyles builds the fixed role-to-stroke mapping from the theme
// constants above.
func DefaultStyles(emblems Emblems) *render.StyleSet {
	hand := func(c color.RGBA, width float64) render.Stroke {
		return render.Stroke{Color: c, Width: width, Cap: render.CapRound, Antialias: true}
	}
	return &render.StyleSet{
		Background:        colorBackground,
		AmbientBackground: colorAmbientBG,
		Hour:              hand(colorHourHand, handStrokeWidth),
		Minute:            hand(colorMinuteHand, handStrokeWidth),
		Second:            hand(colorSecondHand, handStrokeWidth),
		Dot:               hand(colorDot, dotStrokeWidth),
		Ambient:           hand(colorAmbientHand, handStrokeWidth),
		Emblem:            emblems.Normal,
		AmbientEmblem:     emblems.Dark,
		BurnInEmblem:      emblems.Outline,
	}
}
