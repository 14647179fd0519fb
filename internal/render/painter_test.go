package render

import (
	"image"
	"image/color"
	"testing"
)

var (
	testBG        = color.RGBA{R: 0x20, G: 0x40, B: 0x60, A: 0xff}
	testAmbientBG = color.RGBA{A: 0xff}
)

func testStyles() *StyleSet {
	stroke := func(c color.RGBA) Stroke {
		return Stroke{Color: c, Width: 4, Cap: CapRound, Antialias: true}
	}
	return &StyleSet{
		Background:        testBG,
		AmbientBackground: testAmbientBG,
		Hour:              stroke(color.RGBA{R: 0xff, A: 0xff}),
		Minute:            stroke(color.RGBA{G: 0xff, A: 0xff}),
		Second:            stroke(color.RGBA{B: 0xff, A: 0xff}),
		Dot:               stroke(color.RGBA{R: 0xff, G: 0xff, A: 0xff}),
		Ambient:           stroke(color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}),
		Emblem:            image.NewRGBA(image.Rect(0, 0, 1, 1)),
		AmbientEmblem:     image.NewRGBA(image.Rect(0, 0, 1, 1)),
		BurnInEmblem:      image.NewRGBA(image.Rect(0, 0, 1, 1)),
	}
}

var testBounds = NewRect(0, 0, 200, 200)

func TestFrameInteractive(t *testing.T) {
	rec := NewRecorder()
	styles := testStyles()

	Frame(rec, testBounds, ClockTime{10, 10, 30}, ModeInteractive, Capabilities{}, styles, Rect{})

	if got := rec.Count(OpPoint); got != 12 {
		t.Fatalf("dot count = %d, want 12", got)
	}
	lines := rec.Filter(OpLine)
	if len(lines) != 3 {
		t.Fatalf("hand count = %d, want 3", len(lines))
	}

	// Hands come in hour, minute, second order with their own styles and
	// proportional lengths (3x, 2x, 1x the quarter half-width).
	wantLengths := []float64{75, 50, 25}
	wantColors := []color.RGBA{styles.Hour.Color, styles.Minute.Color, styles.Second.Color}
	for i, line := range lines {
		if got := line.Y2 - line.Y1; got != wantLengths[i] {
			t.Errorf("hand %d length = %v, want %v", i, got, wantLengths[i])
		}
		if line.Stroke.Color != wantColors[i] {
			t.Errorf("hand %d color = %v, want %v", i, line.Stroke.Color, wantColors[i])
		}
	}

	fills := rec.Filter(OpFill)
	if len(fills) != 1 || fills[0].Color != testBG {
		t.Fatalf("background fill = %+v, want one fill of %v", fills, testBG)
	}
	emblems := rec.Filter(OpEmblem)
	if len(emblems) != 1 || emblems[0].Image != styles.Emblem {
		t.Fatal("interactive frame must draw the normal emblem")
	}
	// The emblem sits in a 10% inset rect.
	if got := emblems[0].Rect; got != NewRect(20, 20, 160, 160) {
		t.Fatalf("emblem rect = %+v, want 10%% inset", got)
	}
	if got := rec.Count(OpFillRect); got != 0 {
		t.Fatalf("interactive frame drew %d card covers, want 0", got)
	}
}

func TestFrameAmbientOmitsSecondHand(t *testing.T) {
	rec := NewRecorder()
	styles := testStyles()

	Frame(rec, testBounds, ClockTime{10, 10, 30}, ModeAmbient, Capabilities{}, styles, Rect{})

	lines := rec.Filter(OpLine)
	if len(lines) != 2 {
		t.Fatalf("ambient hand count = %d, want 2", len(lines))
	}
	for i, line := range lines {
		if line.Stroke.Color != styles.Ambient.Color {
			t.Errorf("ambient hand %d uses %v, want the ambient stroke", i, line.Stroke.Color)
		}
	}

	// Dots are still drawn without burn-in protection, in the ambient style.
	points := rec.Filter(OpPoint)
	if len(points) != 12 {
		t.Fatalf("ambient dot count = %d, want 12", len(points))
	}
	if points[0].Stroke.Color != styles.Ambient.Color {
		t.Fatal("ambient dots must use the ambient stroke")
	}

	emblems := rec.Filter(OpEmblem)
	if len(emblems) != 1 || emblems[0].Image != styles.AmbientEmblem {
		t.Fatal("plain ambient frame must draw the ambient emblem")
	}
}

func TestFrameBurnInProtectionDropsDots(t *testing.T) {
	for _, lowBit := range []bool{false, true} {
		rec := NewRecorder()
		styles := testStyles()
		caps := Capabilities{BurnInProtection: true, LowBitAmbient: lowBit}

		Frame(rec, testBounds, ClockTime{3, 0, 0}, ModeAmbient, caps, styles, Rect{})

		if got := rec.Count(OpPoint); got != 0 {
			t.Fatalf("lowBit=%v: burn-in ambient drew %d dots, want 0", lowBit, got)
		}
		emblems := rec.Filter(OpEmblem)
		if len(emblems) != 1 || emblems[0].Image != styles.BurnInEmblem {
			t.Fatalf("lowBit=%v: burn-in ambient must draw the outline emblem", lowBit)
		}
	}
}

func TestFrameLowBitAmbientUsesBurnInEmblem(t *testing.T) {
	rec := NewRecorder()
	styles := testStyles()

	Frame(rec, testBounds, ClockTime{3, 0, 0}, ModeAmbient, Capabilities{LowBitAmbient: true}, styles, Rect{})

	emblems := rec.Filter(OpEmblem)
	if len(emblems) != 1 || emblems[0].Image != styles.BurnInEmblem {
		t.Fatal("low-bit ambient must draw the outline emblem")
	}
	// Low-bit alone does not drop the dot ring.
	if got := rec.Count(OpPoint); got != 12 {
		t.Fatalf("low-bit ambient dot count = %d, want 12", got)
	}
}

func TestFrameAmbientCoversCard(t *testing.T) {
	card := NewRect(40, 120, 120, 60)

	rec := NewRecorder()
	Frame(rec, testBounds, ClockTime{1, 2, 3}, ModeAmbient, Capabilities{}, testStyles(), card)

	covers := rec.Filter(OpFillRect)
	if len(covers) != 1 {
		t.Fatalf("card cover count = %d, want 1", len(covers))
	}
	if covers[0].Rect != card || covers[0].Color != testAmbientBG {
		t.Fatalf("card cover = %+v, want %+v in the ambient background color", covers[0], card)
	}
	// The cover is the final operation so nothing shows through beneath it.
	if last := rec.Ops[len(rec.Ops)-1]; last.Kind != OpFillRect {
		t.Fatalf("last op = %v, want fill-rect", last.Kind)
	}

	// Interactive mode never covers the card.
	rec = NewRecorder()
	Frame(rec, testBounds, ClockTime{1, 2, 3}, ModeInteractive, Capabilities{}, testStyles(), card)
	if got := rec.Count(OpFillRect); got != 0 {
		t.Fatalf("interactive card covers = %d, want 0", got)
	}
}

func TestFrameRotationsBalanced(t *testing.T) {
	for _, mode := range []Mode{ModeInteractive, ModeAmbient} {
		rec := NewRecorder()
		Frame(rec, testBounds, ClockTime{9, 41, 7}, mode, Capabilities{}, testStyles(), Rect{})
		if push, pop := rec.Count(OpPushRotation), rec.Count(OpPopRotation); push != pop {
			t.Fatalf("%v: %d pushes vs %d pops", mode, push, pop)
		}
	}
}

func TestFrameRendersThroughGG(t *testing.T) {
	cv := NewGGCanvas(128, 128)
	styles := testStyles()

	Frame(cv, NewRect(0, 0, 128, 128), ClockTime{10, 10, 30}, ModeInteractive, Capabilities{}, styles, Rect{})

	img := cv.Image()
	if img == nil {
		t.Fatal("no image produced")
	}
	b := img.Bounds()
	if b.Dx() != 128 || b.Dy() != 128 {
		t.Fatalf("image size = %dx%d, want 128x128", b.Dx(), b.Dy())
	}
	// The background fill must have reached the corners.
	r, g, bl, _ := img.At(0, 0).RGBA()
	if r == 0 && g == 0 && bl == 0 {
		t.Fatal("corner pixel untouched by background fill")
	}
}
