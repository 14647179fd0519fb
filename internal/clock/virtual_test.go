package clock

import (
	"testing"
	"time"
)

var testStart = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func TestVirtualAfterFuncFiresOnAdvance(t *testing.T) {
	v := NewVirtual(testStart)

	fired := 0
	v.AfterFunc(time.Second, func() { fired++ })

	v.Advance(999 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("callback fired %d times before the deadline", fired)
	}

	v.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	if got := v.Now(); !got.Equal(testStart.Add(time.Second)) {
		t.Fatalf("Now() = %v, want %v", got, testStart.Add(time.Second))
	}
}

func TestVirtualStopPreventsFiring(t *testing.T) {
	v := NewVirtual(testStart)

	fired := false
	timer := v.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Fatal("Stop() = false for a pending timer")
	}
	if timer.Stop() {
		t.Fatal("second Stop() = true, want false")
	}

	v.Advance(5 * time.Second)
	if fired {
		t.Fatal("stopped timer fired")
	}
	if n := v.Pending(); n != 0 {
		t.Fatalf("Pending() = %d, want 0", n)
	}
}

func TestVirtualRescheduleFromCallback(t *testing.T) {
	v := NewVirtual(testStart)

	var at []time.Duration
	var tick func()
	tick = func() {
		at = append(at, v.Now().Sub(testStart))
		if len(at) < 3 {
			v.AfterFunc(time.Second, tick)
		}
	}
	v.AfterFunc(time.Second, tick)

	// One Advance spanning several deadlines fires the whole chain in order.
	v.Advance(10 * time.Second)

	want := []time.Duration{1 * time.Second, 2 * time.Second, 3 * time.Second}
	if len(at) != len(want) {
		t.Fatalf("fired %d times, want %d", len(at), len(want))
	}
	for i := range want {
		if at[i] != want[i] {
			t.Fatalf("tick %d at %v, want %v", i, at[i], want[i])
		}
	}
}

func TestVirtualFiresInDeadlineOrder(t *testing.T) {
	v := NewVirtual(testStart)

	var order []string
	v.AfterFunc(3*time.Second, func() { order = append(order, "c") })
	v.AfterFunc(1*time.Second, func() { order = append(order, "a") })
	v.AfterFunc(2*time.Second, func() { order = append(order, "b") })

	v.Advance(3 * time.Second)

	if got := len(order); got != 3 {
		t.Fatalf("fired %d times, want 3", got)
	}
	if order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("order = %v, want [a b c]", order)
	}
}
