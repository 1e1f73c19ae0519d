package overlay

import (
	"cmp"
	"slices"
	"sync"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
)

// State is the lifecycle state of one identity in the registry.
type State uint8

const (
	// StateAbsent means no annotation is live for the identity.
	StateAbsent State = iota
	// StatePreviewing means the untranslated text is shown in pending style.
	StatePreviewing
	// StateTranslated means the translated text is shown.
	StateTranslated
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StatePreviewing:
		return "previewing"
	case StateTranslated:
		return "translated"
	default:
		return "unknown"
	}
}

// Resetter forgets the change detection state of an identity.
type Resetter interface {
	Reset(id domain.NodeID)
}

// Overlay describes one live annotation.
type Overlay struct {
	ID         domain.NodeID
	Source     string
	State      State
	Annotation domain.Annotation
}

type entry struct {
	annotation *domain.Annotation
	state      State
	// source is the latest text observed for the identity.
	source string
}

// Registry binds identities to annotations and drives them through
// absent, previewing and translated.
// All state changes go through one mutex, which also serializes calls into the surface.
type Registry struct {
	mu       sync.Mutex
	entries  map[domain.NodeID]*entry
	pool     *Pool
	surface  ports.Surface
	resetter Resetter
	display  ports.Display
	closed   bool
}

// NewRegistry creates a Registry rendering onto surface.
// The chrome offset of display is read whenever an annotation is positioned and
// subtracted from the region top. A nil display positions annotations unshifted.
func NewRegistry(surface ports.Surface, pool *Pool, resetter Resetter, display ports.Display) *Registry {
	return &Registry{
		entries:  make(map[domain.NodeID]*entry),
		pool:     pool,
		surface:  surface,
		resetter: resetter,
		display:  display,
	}
}

// ShowPreview shows region in pending style, or keeps an existing annotation in step
// with it. A previewing annotation follows the new text and bounds. A translated
// annotation is only repositioned; its text is replaced once a translation of the new
// text arrives. Repositioning never changes the style.
func (r *Registry) ShowPreview(region domain.Region) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	bounds := r.position(region.Bounds)
	e, ok := r.entries[region.ID]
	if !ok {
		a := r.pool.Obtain()
		a.Text = region.Text
		a.Style = domain.StylePending
		a.Bounds = bounds
		a.Visible = true
		r.entries[region.ID] = &entry{annotation: a, state: StatePreviewing, source: region.Text}
		r.surface.Add(*a)
		return
	}

	changed := false
	if e.state == StatePreviewing && e.annotation.Text != region.Text {
		e.annotation.Text = region.Text
		changed = true
	}
	if e.annotation.Bounds != bounds {
		e.annotation.Bounds = bounds
		changed = true
	}
	e.source = region.Text
	if changed {
		r.surface.Update(*e.annotation)
	}
}

// ShowTranslation replaces the text of the annotation for id with translated and
// switches it to translated style. The result is discarded only when the identity is
// no longer registered. When the text changed since source was read, the result is
// still shown and the change detection state of id is reset, so the current text is
// requested on the next scan. It reports whether the translation was applied.
func (r *Registry) ShowTranslation(id domain.NodeID, source, translated string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || r.closed {
		return false
	}
	if e.source != source && r.resetter != nil {
		r.resetter.Reset(id)
	}

	e.annotation.Text = translated
	e.annotation.Style = domain.StyleTranslated
	e.state = StateTranslated
	r.surface.Update(*e.annotation)
	return true
}

// Reconcile retires every identity not in visible and returns the retired identities
// in ascending order.
func (r *Registry) Reconcile(visible map[domain.NodeID]struct{}) []domain.NodeID {
	r.mu.Lock()
	defer r.mu.Unlock()

	var retired []domain.NodeID
	for id, e := range r.entries {
		if _, ok := visible[id]; ok {
			continue
		}
		r.retire(id, e)
		retired = append(retired, id)
	}
	slices.Sort(retired)
	return retired
}

// Retire removes the annotation for id. It reports whether id was registered.
func (r *Registry) Retire(id domain.NodeID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return false
	}
	r.retire(id, e)
	return true
}

func (r *Registry) retire(id domain.NodeID, e *entry) {
	delete(r.entries, id)
	r.surface.Remove(*e.annotation)
	r.pool.Recycle(e.annotation)
	if r.resetter != nil {
		r.resetter.Reset(id)
	}
}

func (r *Registry) position(bounds domain.Rect) domain.Rect {
	if r.display == nil {
		return bounds
	}
	return bounds.Offset(0, -r.display.ChromeOffset())
}

// State returns the lifecycle state of id.
func (r *Registry) State(id domain.NodeID) State {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[id]; ok {
		return e.state
	}
	return StateAbsent
}

// Len returns the number of live annotations.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Overlays returns the live annotations ordered by identity.
func (r *Registry) Overlays() []Overlay {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Overlay, 0, len(r.entries))
	for id, e := range r.entries {
		out = append(out, Overlay{
			ID:         id,
			Source:     e.source,
			State:      e.state,
			Annotation: *e.annotation,
		})
	}
	slices.SortFunc(out, func(a, b Overlay) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Close retires every annotation. Later calls to ShowPreview and ShowTranslation have
// no effect.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	for id, e := range r.entries {
		r.retire(id, e)
	}
	r.closed = true
}
