package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/internal/adapters/snapshot"
	"go.trai.ch/glance/internal/adapters/watcher"
	"go.trai.ch/glance/internal/app"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const testSnapshot = "testdata/screen.yaml"

// syncBuffer is a bytes.Buffer safe for one writer and concurrent readers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type fixture struct {
	loader     *mocks.MockConfigLoader
	providers  *mocks.MockProviderFactory
	provider   *mocks.MockTranslationProvider
	translator *mocks.MockTranslator
	logger     *mocks.MockLogger
	app        *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:     mocks.NewMockConfigLoader(ctrl),
		providers:  mocks.NewMockProviderFactory(ctrl),
		provider:   mocks.NewMockTranslationProvider(ctrl),
		translator: mocks.NewMockTranslator(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	watchers := watcher.NewFactory(watcher.DefaultDebounceWindow, f.logger)
	f.app = app.New(
		f.loader,
		f.providers,
		snapshot.NewOpener(watchers, f.logger),
		watchers,
		nil,
		f.logger,
	)
	return f
}

func settingsWithSnapshot(path string) *domain.Settings {
	settings := domain.DefaultSettings()
	settings.Snapshot = path
	return settings
}

// expectTranslations binds a he to en translator that knows both texts of the test screen.
func (f *fixture) expectTranslations(settings *domain.Settings) {
	f.providers.EXPECT().Provider(settings.Provider).Return(f.provider, nil)
	f.provider.EXPECT().Open(gomock.Any(), "he", "en").Return(f.translator, nil)
	f.translator.EXPECT().Translate(gomock.Any(), "שלום").Return("Hello", nil)
	f.translator.EXPECT().Translate(gomock.Any(), "הגדרות").Return("Settings", nil)
	f.translator.EXPECT().Close().Return(nil)
}

func TestApp_Scan(t *testing.T) {
	f := newFixture(t)
	settings := settingsWithSnapshot(testSnapshot)
	f.loader.EXPECT().LoadFile("glance.yaml").Return(settings, nil)
	f.expectTranslations(settings)

	var out bytes.Buffer
	err := f.app.WithOutput(&out).Scan(t.Context(), app.ScanOptions{ConfigPath: "glance.yaml"})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "STATE")
	assert.Contains(t, output, "translated")
	assert.Contains(t, output, "Hello")
	assert.Contains(t, output, "Settings")
	assert.Contains(t, output, "שלום")
	assert.Contains(t, output, "40,57 600x80")
	assert.NotContains(t, output, "+ #")
}

func TestApp_Scan_Events(t *testing.T) {
	f := newFixture(t)
	settings := settingsWithSnapshot(testSnapshot)
	f.loader.EXPECT().LoadFile("glance.yaml").Return(settings, nil)
	f.expectTranslations(settings)

	var out bytes.Buffer
	err := f.app.WithOutput(&out).Scan(t.Context(), app.ScanOptions{ConfigPath: "glance.yaml", Events: true})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "= size 16 opacity 0.80")
	assert.Contains(t, output, "+ #")
	assert.Contains(t, output, "~ #")
}

func TestApp_Scan_SnapshotFlagWins(t *testing.T) {
	f := newFixture(t)
	settings := settingsWithSnapshot(filepath.Join(t.TempDir(), "missing.yaml"))
	f.loader.EXPECT().LoadFile("glance.yaml").Return(settings, nil)
	f.expectTranslations(settings)

	var out bytes.Buffer
	err := f.app.WithOutput(&out).Scan(t.Context(), app.ScanOptions{
		ConfigPath: "glance.yaml",
		Snapshot:   testSnapshot,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Hello")
}

func TestApp_Scan_WithoutConfigFile(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().DiscoverConfigPath(gomock.Any()).
		Return("", zerr.Wrap(domain.ErrConfigNotFound, "config discovery failed"))
	f.providers.EXPECT().Provider(domain.DefaultProviderSettings()).Return(nil, errors.New("offline"))

	err := f.app.WithOutput(io.Discard).Scan(t.Context(), app.ScanOptions{Snapshot: testSnapshot})

	require.Error(t, err)
	assert.ErrorContains(t, err, "offline")
}

func TestApp_Scan_NoSnapshot(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().LoadFile("glance.yaml").Return(domain.DefaultSettings(), nil)

	err := f.app.WithOutput(io.Discard).Scan(t.Context(), app.ScanOptions{ConfigPath: "glance.yaml"})

	assert.ErrorIs(t, err, domain.ErrNoSnapshot)
}

func TestApp_Scan_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().LoadFile("glance.yaml").Return(nil, domain.ErrUnsupportedVersion)

	err := f.app.Scan(t.Context(), app.ScanOptions{ConfigPath: "glance.yaml"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load configuration")
	assert.ErrorIs(t, err, domain.ErrUnsupportedVersion)
}

func TestApp_Run_Linear(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Info("translating he to en")

	path := filepath.Join(t.TempDir(), "screen.yaml")
	data, err := os.ReadFile(testSnapshot)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, domain.FilePerm))

	settings := settingsWithSnapshot(path)
	f.loader.EXPECT().LoadFile("glance.yaml").Return(settings, nil)
	f.expectTranslations(settings)

	out := &syncBuffer{}
	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)
	go func() {
		errCh <- f.app.WithOutput(out).Run(ctx, app.RunOptions{ConfigPath: "glance.yaml", OutputMode: "linear"})
	}()

	assert.Eventually(t, func() bool {
		return strings.Count(out.String(), "~ #") == 2
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	assert.Contains(t, out.String(), "- #")
}

func TestApp_Run_SnapshotAppearsAfterStart(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Info("translating he to en")
	f.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	path := filepath.Join(dir, "screen.yaml")

	settings := settingsWithSnapshot(path)
	f.loader.EXPECT().LoadFile("glance.yaml").Return(settings, nil)
	f.expectTranslations(settings)

	out := &syncBuffer{}
	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)
	go func() {
		errCh <- f.app.WithOutput(out).Run(ctx, app.RunOptions{ConfigPath: "glance.yaml", OutputMode: "linear"})
	}()

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "= size")
	}, 5*time.Second, 10*time.Millisecond)
	assert.NotContains(t, out.String(), "+ #")

	data, err := os.ReadFile(testSnapshot)
	require.NoError(t, err)
	staged := filepath.Join(dir, "screen.yaml.tmp")
	require.NoError(t, os.WriteFile(staged, data, domain.FilePerm))
	require.NoError(t, os.Rename(staged, path))

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "40,57 600x80")
	}, 5*time.Second, 10*time.Millisecond)
	assert.NotContains(t, out.String(), "40,120 600x80")

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestApp_Run_TUIQuit(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	settings := settingsWithSnapshot(testSnapshot)
	f.loader.EXPECT().LoadFile("glance.yaml").Return(settings, nil)
	f.providers.EXPECT().Provider(settings.Provider).Return(f.provider, nil)
	f.provider.EXPECT().Open(gomock.Any(), "he", "en").Return(f.translator, nil).AnyTimes()
	f.translator.EXPECT().Translate(gomock.Any(), gomock.Any()).Return("x", nil).AnyTimes()
	f.translator.EXPECT().Close().Return(nil).AnyTimes()

	f.app.WithTeaOptions(
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- f.app.Run(t.Context(), app.RunOptions{ConfigPath: "glance.yaml", OutputMode: "tui"})
	}()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the TUI quit")
	}
}

func TestApp_Run_UnknownOutputMode(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().LoadFile("glance.yaml").Return(settingsWithSnapshot(testSnapshot), nil)

	err := f.app.Run(t.Context(), app.RunOptions{ConfigPath: "glance.yaml", OutputMode: "gui"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown output mode")
}
