// Package face holds the watch face state machine: lifecycle handling,
// ambient mode policy, the redraw scheduler and the time zone watcher. The
// drawing itself lives in internal/render; hosts (the preview window, the X
// root mode, tests) drive an Engine through the callbacks below.
package face

import (
	"sync"
	"time"

	"gwatchface/internal/clock"
	"gwatchface/internal/render"
)

// Host is what the face needs from whoever embeds it: a way to request a
// redraw soon. Frames are pulled by the host through Draw.
type Host interface {
	Invalidate()
}

type Config struct {
	Styles *render.StyleSet // required
	Host   Host             // required
	Clock  clock.Clock      // defaults to the real clock
	Zones  ZoneBroadcast    // optional time-zone change source
}

// Engine is one watch face instance: a plain state-holding struct driven by
// host lifecycle callbacks. Callbacks arrive on the host's sequencing
// goroutine; the mutex exists because the scheduler's timer callback and the
// zone broadcast may observe state from other goroutines.
type Engine struct {
	mu sync.Mutex

	host   Host
	styles *render.StyleSet
	policy *AmbientPolicy
	sched  *Scheduler
	clk    clock.Clock

	zones          ZoneBroadcast
	zoneRegistered bool
	zone           *time.Location

	visible   bool
	destroyed bool
	card      render.Rect
}

func New(cfg Config) *Engine {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewReal()
	}
	e := &Engine{
		host:   cfg.Host,
		styles: cfg.Styles,
		policy: NewAmbientPolicy(cfg.Styles),
		clk:    clk,
		zones:  cfg.Zones,
		zone:   time.Local,
	}
	e.sched = NewScheduler(clk, RedrawInterval, cfg.Host.Invalidate)
	return e
}

// Presentation returns the one-time configuration handshake the host reads
// at construction.
func (e *Engine) Presentation() Presentation { return DefaultPresentation() }

// Destroy tears the face down. Pending ticks are canceled unconditionally
// and any timer callback still in flight becomes a no-op.
func (e *Engine) Destroy() {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.destroyed = true
	e.visible = false
	e.unregisterZonesLocked()
	e.mu.Unlock()
	e.sched.Stop()
}

// PropertiesChanged records the display capabilities the host reports once
// shortly after creation, before the first draw that depends on them.
func (e *Engine) PropertiesChanged(caps render.Capabilities) {
	e.mu.Lock()
	e.policy.SetCapabilities(caps)
	e.mu.Unlock()
}

// TimeTick handles the host's coarse ambient tick by requesting a redraw.
func (e *Engine) TimeTick() {
	e.host.Invalidate()
}

// SetAmbient switches between interactive and ambient rendering. Requesting
// the current mode is ignored; otherwise the style variant is adjusted, a
// redraw is requested and the scheduler re-evaluated.
func (e *Engine) SetAmbient(ambient bool) {
	e.mu.Lock()
	if e.destroyed || !e.policy.SetAmbient(ambient) {
		e.mu.Unlock()
		return
	}
	runnable := e.runnableLocked()
	e.mu.Unlock()

	e.host.Invalidate()
	e.sched.Update(runnable)
}

// SetVisible handles the host's visibility callback. Repeating the current
// state is ignored. Becoming visible registers the zone watcher and re-reads
// the system zone, in case it changed while hidden; becoming hidden
// unregisters.
func (e *Engine) SetVisible(visible bool) {
	e.mu.Lock()
	if e.destroyed || visible == e.visible {
		e.mu.Unlock()
		return
	}
	e.visible = visible
	if visible {
		e.registerZonesLocked()
		e.zone = time.Local
	} else {
		e.unregisterZonesLocked()
	}
	runnable := e.runnableLocked()
	e.mu.Unlock()

	e.sched.Update(runnable)
}

// UpdateCardBounds records where the system notification card sits and
// requests a redraw so the ambient cover tracks it immediately.
func (e *Engine) UpdateCardBounds(r render.Rect) {
	e.mu.Lock()
	if e.destroyed || e.card == r {
		e.mu.Unlock()
		return
	}
	e.card = r
	e.mu.Unlock()

	e.host.Invalidate()
}

// Draw renders the current frame onto cv. Exactly one authoritative "now"
// is read per draw and combined with the currently known zone.
func (e *Engine) Draw(cv render.Canvas, bounds render.Rect) {
	e.mu.Lock()
	ct := render.TimeIn(e.clk.Now(), e.zone)
	mode := e.policy.Mode()
	caps := e.policy.Capabilities()
	card := e.card
	styles := e.styles
	e.mu.Unlock()

	render.Frame(cv, bounds, ct, mode, caps, styles, card)
}

// Mode returns the current render mode.
func (e *Engine) Mode() render.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.policy.Mode()
}

// Visible reports the last visibility state the host delivered.
func (e *Engine) Visible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}

// Scheduled reports whether a redraw tick is pending.
func (e *Engine) Scheduled() bool {
	return e.sched.Scheduled()
}

// Zone returns the zone used to derive the next frame's time.
func (e *Engine) Zone() *time.Location {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.zone
}

func (e *Engine) runnableLocked() bool {
	return e.visible && !e.destroyed && e.policy.Mode() == render.ModeInteractive
}

func (e *Engine) registerZonesLocked() {
	if e.zones == nil || e.zoneRegistered {
		return
	}
	e.zoneRegistered = true
	e.zones.Register(e.onZoneChanged)
}

func (e *Engine) unregisterZonesLocked() {
	if e.zones == nil || !e.zoneRegistered {
		return
	}
	e.zoneRegistered = false
	e.zones.Unregister()
}

// onZoneChanged is the broadcast listener. A nil zone means the platform did
// not say which zone applies now, so the previous one is kept; the new zone
// takes effect on the next draw, no forced redraw.
func (e *Engine) onZoneChanged(zone *time.Location) {
	if zone == nil {
		return
	}
	e.mu.Lock()
	e.zone = zone
	e.mu.Unlock()
}
