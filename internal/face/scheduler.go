package face

import (
	"sync"
	"time"

	"gwatchface/internal/clock"
)

// RedrawInterval is the interactive update rate: once a second, to advance
// the second hand.
const RedrawInterval = time.Second

// Scheduler drives the periodic redraw with a self-rescheduling one-shot
// timer. A tick is pending exactly while the face is visible and
// interactive; ticks are phase-aligned to wall-clock interval boundaries
// instead of drifting relative to the last fire.
//
// The timer callback runs on the clock's goroutine, after the owning engine
// may already have been torn down, so every callback revalidates against the
// destroyed flag and a generation counter before doing anything.
type Scheduler struct {
	mu        sync.Mutex
	clk       clock.Clock
	interval  time.Duration
	redraw    func()
	runnable  bool
	destroyed bool
	pending   clock.Timer
	gen       uint64
}

func NewScheduler(clk clock.Clock, interval time.Duration, redraw func()) *Scheduler {
	return &Scheduler{clk: clk, interval: interval, redraw: redraw}
}

// Update records whether the face should be ticking (visible and
// interactive) and cancels or reschedules to match. While runnable it always
// replaces any pending tick with exactly one new one.
func (s *Scheduler) Update(runnable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	s.runnable = runnable && !s.destroyed
	if s.runnable {
		s.scheduleLocked()
	}
}

// Stop cancels any pending tick unconditionally and turns every outstanding
// callback into a no-op. Called when the face is destroyed.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed = true
	s.runnable = false
	s.cancelLocked()
}

// Scheduled reports whether a tick is pending.
func (s *Scheduler) Scheduled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

func (s *Scheduler) cancelLocked() {
	s.gen++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

func (s *Scheduler) scheduleLocked() {
	gen := s.gen
	s.pending = s.clk.AfterFunc(s.delayLocked(), func() { s.tick(gen) })
}

// delayLocked returns the time until the next interval boundary, so the
// second hand advances right as the wall-clock second flips.
func (s *Scheduler) delayLocked() time.Duration {
	intervalMs := s.interval.Milliseconds()
	nowMs := s.clk.Now().UnixMilli()
	return time.Duration(intervalMs-nowMs%intervalMs) * time.Millisecond
}

func (s *Scheduler) tick(gen uint64) {
	s.mu.Lock()
	if s.destroyed || gen != s.gen {
		// The owner went away or this tick was canceled after the timer
		// already fired.
		s.mu.Unlock()
		return
	}
	s.pending = nil
	if s.runnable {
		s.scheduleLocked()
	}
	redraw := s.redraw
	s.mu.Unlock()

	redraw()
}
