package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/internal/adapters/tui"
	"go.trai.ch/glance/internal/core/domain"
)

func newTestSurface(opts ...tea.ProgramOption) *tui.Surface {
	opts = append([]tea.ProgramOption{
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	}, opts...)
	return tui.NewSurface(tui.NewModel(io.Discard), opts...)
}

func TestSurface_Lifecycle(t *testing.T) {
	surface := newTestSurface()

	require.NoError(t, surface.Create(t.Context()))
	require.NoError(t, surface.Create(t.Context()), "Create is idempotent while running")
	require.NoError(t, surface.Destroy())
	require.NoError(t, surface.Destroy())

	select {
	case <-surface.Done():
	default:
		t.Fatal("Done should be closed after Destroy")
	}

	assert.ErrorIs(t, surface.Create(t.Context()), domain.ErrSurfaceDestroyed)
}

func TestSurface_AppliesChanges(t *testing.T) {
	surface := newTestSurface()
	require.NoError(t, surface.Create(t.Context()))

	first := annotation(1, "שלום", 10, 20)
	second := annotation(2, "עולם", 10, 80)
	surface.Add(first)
	surface.Add(second)

	second.Text = "World"
	second.Style = domain.StyleTranslated
	surface.Update(second)
	surface.Remove(first)
	surface.SetAppearance(domain.Appearance{TextSize: 20, Opacity: 1})

	require.NoError(t, surface.Destroy())

	m := surface.Model()
	require.Len(t, m.Annotations, 1)
	assert.Equal(t, second, m.Annotations[2])
	assert.Equal(t, domain.Appearance{TextSize: 20, Opacity: 1}, m.Appearance)
}

func TestSurface_ChangesBeforeCreateAreDropped(t *testing.T) {
	surface := newTestSurface()

	surface.Add(annotation(1, "שלום", 10, 20))

	require.NoError(t, surface.Create(t.Context()))
	require.NoError(t, surface.Destroy())
	assert.Empty(t, surface.Model().Annotations)
}

func TestSurface_DestroyWithoutCreate(t *testing.T) {
	surface := newTestSurface()
	require.NoError(t, surface.Destroy())
}

func TestSurface_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	surface := newTestSurface(tea.WithContext(ctx))
	require.NoError(t, surface.Create(ctx))

	cancel()
	<-surface.Done()

	surface.Add(annotation(1, "late", 0, 0))
	assert.NoError(t, surface.Destroy(), "a killed program is not an error")
}
