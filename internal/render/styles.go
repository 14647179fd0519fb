package render

import (
	"image"
	"image/color"
)

// Mode selects between the interactive face and the dimmed ambient face.
type Mode int

const (
	ModeInteractive Mode = iota
	ModeAmbient
)

func (m Mode) String() string {
	if m == ModeAmbient {
		return "ambient"
	}
	return "interactive"
}

// Capabilities carries the display properties reported by the host shortly
// after creation. Read-only afterwards.
type Capabilities struct {
	// LowBitAmbient means the display renders fewer color bits in ambient
	// mode, so anti-aliasing is disabled there.
	LowBitAmbient bool

	// BurnInProtection means the display is prone to image persistence and
	// the ambient face must keep lit pixels to a minimum.
	BurnInProtection bool
}

// LineCap is the shape of stroke endpoints.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// Stroke is the style for one drawing role: hands, dots, backgrounds.
type Stroke struct {
	Color     color.RGBA
	Width     float64
	Cap       LineCap
	Antialias bool
}

// StyleSet maps semantic roles to strokes, fills and emblem images. It is
// built once at startup and treated as immutable afterwards, with one
// exception: the ambient stroke's Antialias flag, which the ambient policy
// toggles on low-bit displays.
type StyleSet struct {
	Background        color.RGBA
	AmbientBackground color.RGBA

	Hour    Stroke
	Minute  Stroke
	Second  Stroke
	Dot     Stroke
	Ambient Stroke

	// Emblem variants drawn inside the inset background rect. Any of these
	// may be nil, in which case only the background fill is drawn.
	Emblem        image.Image
	AmbientEmblem image.Image
	BurnInEmblem  image.Image
}
