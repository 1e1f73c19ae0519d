package overlay_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports/mocks"
	"go.trai.ch/glance/internal/engine/detector"
	"go.trai.ch/glance/internal/engine/overlay"
	"go.uber.org/mock/gomock"
)

type op struct {
	kind       string
	annotation domain.Annotation
}

// recordingSurface captures surface calls in order.
type recordingSurface struct {
	mu  sync.Mutex
	ops []op
}

func (s *recordingSurface) Create(context.Context) error    { return nil }
func (s *recordingSurface) Destroy() error                  { return nil }
func (s *recordingSurface) SetAppearance(domain.Appearance) {}
func (s *recordingSurface) Add(a domain.Annotation)         { s.record("add", a) }
func (s *recordingSurface) Update(a domain.Annotation)      { s.record("update", a) }
func (s *recordingSurface) Remove(a domain.Annotation)      { s.record("remove", a) }

func (s *recordingSurface) record(kind string, a domain.Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, op{kind: kind, annotation: a})
}

func (s *recordingSurface) last() op {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops[len(s.ops)-1]
}

func (s *recordingSurface) count(kind string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, o := range s.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

type chrome int

func (chrome) ScreenBounds() domain.Rect { return domain.NewRect(0, 0, 1000, 2000) }
func (c chrome) ChromeOffset() int       { return int(c) }

type shiftingChrome struct{ offset int }

func (*shiftingChrome) ScreenBounds() domain.Rect { return domain.NewRect(0, 0, 1000, 2000) }
func (s *shiftingChrome) ChromeOffset() int       { return s.offset }

type fixture struct {
	registry *overlay.Registry
	surface  *recordingSurface
	pool     *overlay.Pool
	detector *detector.Detector
}

func setupRegistry(t *testing.T, offset int) fixture {
	t.Helper()
	f := fixture{
		surface:  &recordingSurface{},
		pool:     overlay.NewPool(10),
		detector: detector.New(0),
	}
	f.registry = overlay.NewRegistry(f.surface, f.pool, f.detector, chrome(offset))
	return f
}

func region(id domain.NodeID, text string, top int) domain.Region {
	return domain.Region{ID: id, Text: text, Bounds: domain.NewRect(10, top, 100, 20)}
}

func visible(ids ...domain.NodeID) map[domain.NodeID]struct{} {
	set := make(map[domain.NodeID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestShowPreview_NewIdentity(t *testing.T) {
	f := setupRegistry(t, 24)

	f.registry.ShowPreview(region(1, "Hello", 100))

	assert.Equal(t, overlay.StatePreviewing, f.registry.State(1))
	got := f.surface.last()
	assert.Equal(t, "add", got.kind)
	assert.Equal(t, "Hello", got.annotation.Text)
	assert.Equal(t, domain.StylePending, got.annotation.Style)
	assert.True(t, got.annotation.Visible)
	assert.Equal(t, domain.NewRect(10, 76, 100, 20), got.annotation.Bounds, "chrome offset is subtracted")
}

func TestShowPreview_PreviewFollowsText(t *testing.T) {
	f := setupRegistry(t, 0)

	f.registry.ShowPreview(region(1, "Hello", 100))
	f.registry.ShowPreview(region(1, "Hello!", 100))

	got := f.surface.last()
	assert.Equal(t, "update", got.kind)
	assert.Equal(t, "Hello!", got.annotation.Text)
	assert.Equal(t, 1, f.surface.count("add"))
}

func TestShowPreview_UnchangedIsNoop(t *testing.T) {
	f := setupRegistry(t, 0)

	f.registry.ShowPreview(region(1, "Hello", 100))
	f.registry.ShowPreview(region(1, "Hello", 100))

	assert.Equal(t, 0, f.surface.count("update"))
}

func TestShowPreview_RepositionKeepsStyle(t *testing.T) {
	f := setupRegistry(t, 0)

	f.registry.ShowPreview(region(1, "Hello", 100))
	require.True(t, f.registry.ShowTranslation(1, "Hello", "Bonjour"))

	f.registry.ShowPreview(region(1, "Hello", 300))

	got := f.surface.last()
	assert.Equal(t, "update", got.kind)
	assert.Equal(t, domain.StyleTranslated, got.annotation.Style)
	assert.Equal(t, "Bonjour", got.annotation.Text)
	assert.Equal(t, 300, got.annotation.Bounds.Top)
	assert.Equal(t, overlay.StateTranslated, f.registry.State(1))

	f.registry.ShowPreview(region(1, "Hello", 50))
	assert.Equal(t, domain.StyleTranslated, f.surface.last().annotation.Style)
}

func TestShowPreview_TranslatedKeepsTextUntilNewTranslation(t *testing.T) {
	f := setupRegistry(t, 0)

	f.registry.ShowPreview(region(1, "Hello", 100))
	require.True(t, f.registry.ShowTranslation(1, "Hello", "Bonjour"))

	f.registry.ShowPreview(region(1, "Hello!", 100))
	assert.Equal(t, 1, f.surface.count("update"), "text change alone does not touch a translated annotation")

	// A late result for the old text is still shown.
	assert.True(t, f.registry.ShowTranslation(1, "Hello", "Bonjour"))
	assert.True(t, f.registry.ShowTranslation(1, "Hello!", "Bonjour!"))
	assert.Equal(t, "Bonjour!", f.surface.last().annotation.Text)
}

func TestShowTranslation_OutdatedSourceResetsDetection(t *testing.T) {
	f := setupRegistry(t, 0)

	require.True(t, f.detector.ShouldTranslate(1, "Hello"))
	f.registry.ShowPreview(region(1, "Hello", 100))
	f.registry.ShowPreview(region(1, "Hello!", 100))
	require.True(t, f.detector.Tracked(1))

	assert.True(t, f.registry.ShowTranslation(1, "Hello", "Bonjour"))
	assert.Equal(t, overlay.StateTranslated, f.registry.State(1))
	assert.Equal(t, "Bonjour", f.surface.last().annotation.Text)
	assert.False(t, f.detector.Tracked(1), "current text must be accepted again")

	// Reverting to the translated text is accepted as a change now.
	assert.True(t, f.detector.ShouldTranslate(1, "Hello"))
}

func TestShowTranslation_MatchingSourceKeepsDetection(t *testing.T) {
	f := setupRegistry(t, 0)

	require.True(t, f.detector.ShouldTranslate(1, "Hello"))
	f.registry.ShowPreview(region(1, "Hello", 100))

	assert.True(t, f.registry.ShowTranslation(1, "Hello", "Bonjour"))
	assert.True(t, f.detector.Tracked(1))
	assert.False(t, f.detector.ShouldTranslate(1, "Hello"))
}

func TestShowPreview_ChromeOffsetReadOnEveryPosition(t *testing.T) {
	display := &shiftingChrome{}
	surface := &recordingSurface{}
	registry := overlay.NewRegistry(surface, overlay.NewPool(2), nil, display)

	registry.ShowPreview(region(1, "Hello", 100))
	assert.Equal(t, domain.NewRect(10, 100, 100, 20), surface.last().annotation.Bounds)

	display.offset = 63
	registry.ShowPreview(region(1, "Hello", 100))
	assert.Equal(t, "update", surface.last().kind)
	assert.Equal(t, domain.NewRect(10, 37, 100, 20), surface.last().annotation.Bounds)

	registry.ShowPreview(region(2, "World", 200))
	assert.Equal(t, domain.NewRect(10, 137, 100, 20), surface.last().annotation.Bounds)
}

func TestShowTranslation_ReusesAnnotation(t *testing.T) {
	f := setupRegistry(t, 0)

	f.registry.ShowPreview(region(1, "Hello", 100))
	added := f.surface.last().annotation

	require.True(t, f.registry.ShowTranslation(1, "Hello", "Bonjour"))

	got := f.surface.last()
	assert.Equal(t, "update", got.kind)
	assert.Equal(t, added.Serial, got.annotation.Serial)
	assert.Equal(t, domain.StyleTranslated, got.annotation.Style)
	assert.Equal(t, 1, f.pool.Created())
}

func TestShowTranslation_RetiredIdentityDiscarded(t *testing.T) {
	f := setupRegistry(t, 0)

	f.registry.ShowPreview(region(1, "Hello", 100))
	f.registry.Reconcile(visible())

	assert.False(t, f.registry.ShowTranslation(1, "Hello", "Bonjour"))
	assert.Equal(t, overlay.StateAbsent, f.registry.State(1))
	assert.Equal(t, 0, f.surface.count("update"))
}

func TestReconcile_RetiresInvisible(t *testing.T) {
	f := setupRegistry(t, 0)

	for id := domain.NodeID(1); id <= 5; id++ {
		f.registry.ShowPreview(region(id, "text", int(id)*30))
		require.True(t, f.detector.ShouldTranslate(id, "text"))
	}

	retired := f.registry.Reconcile(visible(2, 4, 99))

	assert.Equal(t, []domain.NodeID{1, 3, 5}, retired)
	assert.Equal(t, 2, f.registry.Len())
	assert.Equal(t, overlay.StatePreviewing, f.registry.State(2))
	assert.Equal(t, overlay.StatePreviewing, f.registry.State(4))
	assert.Equal(t, 3, f.surface.count("remove"))
	assert.Equal(t, 3, f.pool.Idle(), "each retired annotation returns to the pool once")

	for _, id := range retired {
		assert.False(t, f.detector.Tracked(id))
	}
	assert.True(t, f.detector.Tracked(2))
}

func TestReconcile_Idempotent(t *testing.T) {
	f := setupRegistry(t, 0)

	f.registry.ShowPreview(region(1, "a", 0))
	f.registry.ShowPreview(region(2, "b", 40))

	assert.Equal(t, []domain.NodeID{1}, f.registry.Reconcile(visible(2)))
	assert.Empty(t, f.registry.Reconcile(visible(2)))
	assert.Equal(t, 1, f.pool.Idle())
}

func TestReconcile_ReappearingIdentityIsNew(t *testing.T) {
	f := setupRegistry(t, 0)

	f.registry.ShowPreview(region(1, "Hello", 0))
	require.True(t, f.registry.ShowTranslation(1, "Hello", "Bonjour"))
	f.registry.Reconcile(visible())

	f.registry.ShowPreview(region(1, "Hello", 0))

	got := f.surface.last()
	assert.Equal(t, "add", got.kind)
	assert.Equal(t, domain.StylePending, got.annotation.Style)
	assert.Equal(t, "Hello", got.annotation.Text)
	assert.Equal(t, 1, f.pool.Created(), "the recycled annotation is reused")
}

func TestRetire(t *testing.T) {
	f := setupRegistry(t, 0)

	f.registry.ShowPreview(region(1, "a", 0))

	assert.True(t, f.registry.Retire(1))
	assert.False(t, f.registry.Retire(1))
	assert.Equal(t, 1, f.pool.Idle())
}

func TestOverlays(t *testing.T) {
	f := setupRegistry(t, 0)

	f.registry.ShowPreview(region(3, "c", 0))
	f.registry.ShowPreview(region(1, "a", 40))
	require.True(t, f.registry.ShowTranslation(3, "c", "C"))

	got := f.registry.Overlays()
	require.Len(t, got, 2)
	assert.Equal(t, domain.NodeID(1), got[0].ID)
	assert.Equal(t, overlay.StatePreviewing, got[0].State)
	assert.Equal(t, domain.NodeID(3), got[1].ID)
	assert.Equal(t, overlay.StateTranslated, got[1].State)
	assert.Equal(t, "c", got[1].Source)
	assert.Equal(t, "C", got[1].Annotation.Text)
}

func TestClose_RecyclesEverything(t *testing.T) {
	f := setupRegistry(t, 0)

	f.registry.ShowPreview(region(1, "a", 0))
	f.registry.ShowPreview(region(2, "b", 40))

	f.registry.Close()
	f.registry.Close()

	assert.Equal(t, 0, f.registry.Len())
	assert.Equal(t, 2, f.pool.Idle())
	assert.Equal(t, 2, f.surface.count("remove"))

	f.registry.ShowPreview(region(3, "c", 0))
	assert.Equal(t, 0, f.registry.Len())
}

func TestRegistry_SurfaceCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)
	registry := overlay.NewRegistry(surface, overlay.NewPool(1), nil, chrome(10))

	gomock.InOrder(
		surface.EXPECT().Add(gomock.Any()).Do(func(a domain.Annotation) {
			assert.Equal(t, domain.NewRect(10, 90, 100, 20), a.Bounds)
		}),
		surface.EXPECT().Update(gomock.Any()).Do(func(a domain.Annotation) {
			assert.Equal(t, "Bonjour", a.Text)
		}),
		surface.EXPECT().Remove(gomock.Any()),
	)

	registry.ShowPreview(region(1, "Hello", 100))
	registry.ShowTranslation(1, "Hello", "Bonjour")
	registry.Reconcile(visible())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	f := setupRegistry(t, 0)

	var wg sync.WaitGroup
	for g := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				id := domain.NodeID(i % 20)
				f.registry.ShowPreview(region(id, "text", g))
				f.registry.ShowTranslation(id, "text", "translated")
				if i%10 == 0 {
					f.registry.Reconcile(visible(0, 1, 2))
				}
			}
		}()
	}
	wg.Wait()

	f.registry.Close()
	assert.Equal(t, 0, f.registry.Len())
	assert.Equal(t, f.surface.count("add"), f.surface.count("remove"))
}
