// Package clock abstracts the time source behind the redraw scheduler so
// tests can fire ticks deterministically instead of sleeping.
package clock

import "time"

// Clock provides the current time and one-shot delayed callbacks.
type Clock interface {
	Now() time.Time

	// AfterFunc runs f once after d has elapsed. The returned Timer cancels
	// the call via Stop.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call was stopped
	// before it fired.
	Stop() bool
}
