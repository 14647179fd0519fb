package render

// Face layout ratios, relative to half the face width. Matches the classic
// proportions: the second hand reaches a quarter of the way out, the minute
// hand twice that, the hour hand three times, and the dots sit near the rim.
const (
	secondHandRatio = 0.25
	dotOffsetRatio  = 0.9
	emblemInset     = 0.1
	dotCount        = 12
)

// Frame draws one complete watch face: background and emblem, the ring of
// hour dots, the hands, and in ambient mode a cover over the peek card so
// stale face pixels never show beneath a system overlay.
//
// Each hand is rotated independently about the face center. The hands are
// drawn hanging down from the top edge of the bounds, which gives the face
// its off-center look.
func Frame(cv Canvas, bounds Rect, ct ClockTime, mode Mode, caps Capabilities, styles *StyleSet, card Rect) {
	ambient := mode == ModeAmbient
	inset := bounds.Inset(bounds.W*emblemInset, bounds.H*emblemInset)

	if ambient {
		cv.Fill(styles.AmbientBackground)
		if caps.LowBitAmbient || caps.BurnInProtection {
			if styles.BurnInEmblem != nil {
				cv.Emblem(styles.BurnInEmblem, inset)
			}
		} else if styles.AmbientEmblem != nil {
			cv.Emblem(styles.AmbientEmblem, inset)
		}
	} else {
		cv.Fill(styles.Background)
		if styles.Emblem != nil {
			cv.Emblem(styles.Emblem, inset)
		}
	}

	cx, cy := bounds.Center()
	half := bounds.W / 2

	secondLength := half * secondHandRatio
	minuteLength := secondLength * 2
	hourLength := secondLength * 3
	dotOffset := half * dotOffsetRatio

	hourRot, minuteRot, secondRot := HandAngles(ct)

	// The dot ring is dropped entirely when burn-in protection applies in
	// ambient mode, to minimize pixel-on time.
	if !ambient || !caps.BurnInProtection {
		dot := styles.Dot
		if ambient {
			dot = styles.Ambient
		}
		for i := 0; i < dotCount; i++ {
			cv.PushRotation(float64(i+1)*(360.0/dotCount), cx, cy)
			cv.Point(cx, cy-dotOffset, dot)
			cv.PopRotation()
		}
	}

	hand := func(rot, length float64, s Stroke) {
		cv.PushRotation(rot, cx, cy)
		cv.Line(cx, bounds.Y, cx, bounds.Y+length, s)
		cv.PopRotation()
	}

	if ambient {
		hand(hourRot, hourLength, styles.Ambient)
		hand(minuteRot, minuteLength, styles.Ambient)
		// No second hand in ambient mode: no per-second motion is visible.
	} else {
		hand(hourRot, hourLength, styles.Hour)
		hand(minuteRot, minuteLength, styles.Minute)
		hand(secondRot, secondLength, styles.Second)
	}

	if ambient && !card.Empty() {
		cv.FillRect(card, styles.AmbientBackground)
	}
}
