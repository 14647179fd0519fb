package face

import "gwatchface/internal/render"

// AmbientPolicy tracks the display capabilities and the current render mode,
// and keeps the ambient stroke's anti-alias flag consistent with both: on a
// low-bit display, anti-aliasing is off while ambient and restored when
// interactive again.
type AmbientPolicy struct {
	caps   render.Capabilities
	mode   render.Mode
	styles *render.StyleSet
}

func NewAmbientPolicy(styles *render.StyleSet) *AmbientPolicy {
	return &AmbientPolicy{styles: styles, mode: render.ModeInteractive}
}

// SetCapabilities records the properties the host reports once after
// creation.
func (p *AmbientPolicy) SetCapabilities(caps render.Capabilities) {
	p.caps = caps
}

func (p *AmbientPolicy) Capabilities() render.Capabilities { return p.caps }

func (p *AmbientPolicy) Mode() render.Mode { return p.mode }

// SetAmbient switches the render mode and reports whether it changed.
// Requesting the current mode is a no-op.
func (p *AmbientPolicy) SetAmbient(ambient bool) bool {
	mode := render.ModeInteractive
	if ambient {
		mode = render.ModeAmbient
	}
	if mode == p.mode {
		return false
	}
	p.mode = mode
	if p.caps.LowBitAmbient {
		p.styles.Ambient.Antialias = !ambient
	}
	return true
}
