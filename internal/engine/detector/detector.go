// Package detector decides which text changes are worth a new translation.
package detector

import (
	"sync"
	"time"

	"go.trai.ch/glance/internal/core/domain"
)

// state is the last accepted trigger for one node.
type state struct {
	at   time.Time
	text string
}

// Detector debounces and deduplicates translation triggers per node.
// A trigger is accepted for a node seen for the first time, or when the debounce
// interval has elapsed since the last accepted trigger and the text differs from the
// text accepted then.
type Detector struct {
	mu       sync.Mutex
	states   map[domain.NodeID]state
	debounce time.Duration
	now      func() time.Time
}

// New creates a Detector with the given debounce interval.
// A non-positive interval falls back to domain.DefaultDebounceInterval.
func New(debounce time.Duration) *Detector {
	if debounce <= 0 {
		debounce = domain.DefaultDebounceInterval
	}
	return &Detector{
		states:   make(map[domain.NodeID]state),
		debounce: debounce,
		now:      time.Now,
	}
}

// ShouldTranslate reports whether text needs a translation for node id and, if so,
// records it as the latest accepted trigger.
func (d *Detector) ShouldTranslate(id domain.NodeID, text string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	prev, seen := d.states[id]
	if seen && (now.Sub(prev.at) <= d.debounce || prev.text == text) {
		return false
	}

	d.states[id] = state{at: now, text: text}
	return true
}

// Reset forgets node id, so its next sighting is treated as new.
func (d *Detector) Reset(id domain.NodeID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.states, id)
}

// Tracked reports whether the detector holds state for node id.
func (d *Detector) Tracked(id domain.NodeID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.states[id]
	return ok
}

// Len returns the number of tracked nodes.
func (d *Detector) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.states)
}
