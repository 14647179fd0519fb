package face

import (
	"testing"

	"gwatchface/internal/render"
)

func TestAmbientPolicyNoOpWhenUnchanged(t *testing.T) {
	p := NewAmbientPolicy(DefaultStyles(Emblems{}))

	if p.SetAmbient(false) {
		t.Fatal("SetAmbient(false) reported a change from the initial state")
	}
	if !p.SetAmbient(true) {
		t.Fatal("SetAmbient(true) reported no change")
	}
	if p.SetAmbient(true) {
		t.Fatal("repeated SetAmbient(true) reported a change")
	}
	if p.Mode() != render.ModeAmbient {
		t.Fatalf("mode = %v, want ambient", p.Mode())
	}
}

func TestAmbientPolicyRoundTripWithoutLowBit(t *testing.T) {
	styles := DefaultStyles(Emblems{})
	before := *styles
	p := NewAmbientPolicy(styles)
	p.SetCapabilities(render.Capabilities{})

	p.SetAmbient(true)
	p.SetAmbient(false)

	if *styles != before {
		t.Fatalf("style set changed across an ambient round trip: %+v != %+v", *styles, before)
	}
}

func TestAmbientPolicyLowBitTogglesAntialias(t *testing.T) {
	styles := DefaultStyles(Emblems{})
	p := NewAmbientPolicy(styles)
	p.SetCapabilities(render.Capabilities{LowBitAmbient: true})

	if !styles.Ambient.Antialias {
		t.Fatal("ambient stroke must start anti-aliased")
	}

	p.SetAmbient(true)
	if styles.Ambient.Antialias {
		t.Fatal("anti-aliasing still on while ambient on a low-bit display")
	}

	p.SetAmbient(false)
	if !styles.Ambient.Antialias {
		t.Fatal("anti-aliasing not restored after leaving ambient mode")
	}
}
