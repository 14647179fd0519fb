package clock

import (
	"sync"
	"time"
)

// Virtual is a manually advanced Clock for tests. Time moves only through
// Advance, which fires due callbacks synchronously in deadline order.
// Callbacks that schedule new timers inside the advanced window fire within
// the same Advance call, so a self-rescheduling loop can be stepped tick by
// tick.
type Virtual struct {
	mu      sync.Mutex
	current time.Time
	pending []*virtualTimer
}

type virtualTimer struct {
	clk      *Virtual
	deadline time.Time
	f        func()
	stopped  bool
	fired    bool
}

func NewVirtual(start time.Time) *Virtual {
	return &Virtual{current: start}
}

func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

func (v *Virtual) AfterFunc(d time.Duration, f func()) Timer {
	v.mu.Lock()
	defer v.mu.Unlock()
	t := &virtualTimer{clk: v, deadline: v.current.Add(d), f: f}
	v.pending = append(v.pending, t)
	return t
}

func (t *virtualTimer) Stop() bool {
	t.clk.mu.Lock()
	defer t.clk.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward by d.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	target := v.current.Add(d)
	for {
		t := v.popDue(target)
		if t == nil {
			break
		}
		if t.deadline.After(v.current) {
			v.current = t.deadline
		}
		// Fire without the lock so the callback can call back into the clock.
		v.mu.Unlock()
		t.f()
		v.mu.Lock()
	}
	v.current = target
	v.mu.Unlock()
}

// popDue marks and returns the earliest timer due at or before target, or
// nil. Must be called with the mutex held.
func (v *Virtual) popDue(target time.Time) *virtualTimer {
	var due *virtualTimer
	for _, t := range v.pending {
		if t.stopped || t.fired || t.deadline.After(target) {
			continue
		}
		if due == nil || t.deadline.Before(due.deadline) {
			due = t
		}
	}
	if due != nil {
		due.fired = true
		v.compact()
	}
	return due
}

func (v *Virtual) compact() {
	live := v.pending[:0]
	for _, t := range v.pending {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	v.pending = live
}

// Pending reports how many callbacks are waiting to fire. Useful for
// asserting that schedulers cancel their timers.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.compact()
	return len(v.pending)
}
