package face

import (
	"sync"
	"time"
)

// ZoneBroadcast is the host's time-zone-change subscription. The engine
// registers a listener only while visible and unregisters when hidden; both
// calls are idempotent on the engine side. The listener receives the new
// zone, or nil when the platform did not carry one, which means "keep the
// previous zone".
type ZoneBroadcast interface {
	Register(listener func(*time.Location))
	Unregister()
}

// Broadcast is a minimal ZoneBroadcast hub for hosts: the platform side
// pushes zone changes with Notify and the registered face observes them.
type Broadcast struct {
	mu       sync.Mutex
	listener func(*time.Location)
}

func NewBroadcast() *Broadcast { return &Broadcast{} }

func (b *Broadcast) Register(listener func(*time.Location)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listener = listener
}

func (b *Broadcast) Unregister() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listener = nil
}

// Notify delivers a zone change to the registered listener, if any.
func (b *Broadcast) Notify(zone *time.Location) {
	b.mu.Lock()
	listener := b.listener
	b.mu.Unlock()
	if listener != nil {
		listener(zone)
	}
}
