package face

// Presentation is the static configuration handshake the face declares to
// its host once at construction. Nothing here is renegotiated at runtime.

type PeekCardMode int

const (
	// PeekModeShort shows notification cards as a small strip.
	PeekModeShort PeekCardMode = iota
	PeekModeVariable
)

type BackgroundVisibility int

const (
	// BackgroundInterruptive shows the card background briefly for
	// interruptive notifications only.
	BackgroundInterruptive BackgroundVisibility = iota
	BackgroundPersistent
)

// Gravity positions host-drawn indicators over the face.
type Gravity int

const (
	GravityCenterHorizontal Gravity = 1 << iota
	GravityCenterVertical
	GravityTop
	GravityBottom
)

type Presentation struct {
	PeekCardMode         PeekCardMode
	BackgroundVisibility BackgroundVisibility

	// ShowSystemTime is false: the face draws its own time, the host must
	// not overlay its clock.
	ShowSystemTime bool

	ShowUnreadIndicator bool

	StatusGravity  Gravity
	HotwordGravity Gravity
}

// DefaultPresentation mirrors the face's compiled-in preferences: short peek
// cards, interruptive-only card backgrounds, no system time overlay, and
// centered indicators.
func DefaultPresentation() Presentation {
	return Presentation{
		PeekCardMode:         PeekModeShort,
		BackgroundVisibility: BackgroundInterruptive,
		ShowSystemTime:       false,
		ShowUnreadIndicator:  true,
		StatusGravity:        GravityCenterHorizontal | GravityCenterVertical,
		HotwordGravity:       GravityCenterHorizontal | GravityCenterVertical,
	}
}
