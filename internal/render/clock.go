package render

import "time"

// ClockTime is a wall-clock snapshot on a 12-hour dial. It is derived fresh
// from the authoritative time at every draw and never cached across frames.
type ClockTime struct {
	Hour   int // 0-11
	Minute int // 0-59
	Second int // 0-59
}

// TimeIn snapshots t in the given zone. A nil zone keeps t's own location.
func TimeIn(t time.Time, zone *time.Location) ClockTime {
	if zone != nil {
		t = t.In(zone)
	}
	hour, minute, second := t.Clock()
	return ClockTime{Hour: hour % 12, Minute: minute, Second: second}
}

// HandAngles converts a snapshot to the three hand rotations in degrees,
// each in [0, 360). The hour hand advances continuously with the minutes.
func HandAngles(ct ClockTime) (hour, minute, second float64) {
	second = float64(ct.Second) * (360.0 / 60.0)
	minute = float64(ct.Minute) * (360.0 / 60.0)
	hour = (float64(ct.Hour) + float64(ct.Minute)/60.0) * (360.0 / 12.0)
	return hour, minute, second
}
