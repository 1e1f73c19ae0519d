package snapshot_test

import (
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/internal/adapters/snapshot"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/glance/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeSnapshot(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func seqOf(ch <-chan ports.WatchEvent) iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range ch {
			if !yield(event) {
				return
			}
		}
	}
}

func rootText(t *testing.T, src *snapshot.Source) string {
	t.Helper()
	root, err := src.Root(t.Context())
	require.NoError(t, err)
	return root.Text()
}

func TestSource_Root(t *testing.T) {
	ctrl := gomock.NewController(t)
	src, err := snapshot.NewOpener(mocks.NewMockWatcherFactory(ctrl), mocks.NewMockLogger(ctrl)).
		Open("testdata/home.yaml")
	require.NoError(t, err)

	root, err := src.Root(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "window", root.(*snapshot.Node).Name())
	assert.Equal(t, domain.NewRect(0, 0, 1080, 2400), src.ScreenBounds())
	assert.Equal(t, 63, src.ChromeOffset())
}

func TestOpener_Open(t *testing.T) {
	ctrl := gomock.NewController(t)
	opener := snapshot.NewOpener(mocks.NewMockWatcherFactory(ctrl), mocks.NewMockLogger(ctrl))

	t.Run("loads the tree", func(t *testing.T) {
		src, err := opener.Open("testdata/home.yaml")
		require.NoError(t, err)
		assert.Equal(t, 63, src.ChromeOffset())
	})

	t.Run("missing file", func(t *testing.T) {
		src, err := opener.Open(filepath.Join(t.TempDir(), "screen.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 0, src.ChromeOffset())
	})

	t.Run("broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "screen.yaml")
		writeSnapshot(t, path, "root: [")

		_, err := opener.Open(path)
		assert.ErrorContains(t, err, domain.ErrSnapshotParseFailed.Error())
	})
}

func TestSource_RootUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing file"},
		{name: "no root", content: "screen: {width: 10, height: 10}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			path := filepath.Join(t.TempDir(), "screen.yaml")
			if tt.content != "" {
				writeSnapshot(t, path, tt.content)
			}
			src := snapshot.NewSource(path, mocks.NewMockWatcherFactory(ctrl), mocks.NewMockLogger(ctrl))

			_, err := src.Root(t.Context())

			require.ErrorIs(t, err, domain.ErrTreeUnavailable)
		})
	}
}

func TestSource_RootAppearsOnceWritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := filepath.Join(t.TempDir(), "screen.yaml")
	src := snapshot.NewSource(path, mocks.NewMockWatcherFactory(ctrl), mocks.NewMockLogger(ctrl))

	_, err := src.Root(t.Context())
	require.ErrorIs(t, err, domain.ErrTreeUnavailable)
	assert.Equal(t, domain.Rect{}, src.ScreenBounds())

	writeSnapshot(t, path, "root: {id: a, text: hello, bounds: [0, 0, 10, 10]}\n")

	assert.Equal(t, "hello", rootText(t, src))
}

func TestSource_ReloadsOnRewrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockWatcherFactory(ctrl)
	w := mocks.NewMockWatcher(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	path := filepath.Join(t.TempDir(), "screen.yaml")
	writeSnapshot(t, path, "root: {id: a, text: one, bounds: [0, 0, 10, 10]}\n")

	changes := make(chan ports.WatchEvent)
	factory.EXPECT().NewWatcher().Return(w, nil)
	w.EXPECT().Start(gomock.Any(), path).Return(nil)
	w.EXPECT().Events().Return(seqOf(changes))
	w.EXPECT().Stop().Return(nil)

	src := snapshot.NewSource(path, factory, mockLogger)
	require.NoError(t, src.Start(t.Context()))
	assert.Equal(t, "one", rootText(t, src))

	next, stop := iter.Pull(src.Events())
	defer stop()

	writeSnapshot(t, path, "root: {id: a, text: two, bounds: [0, 0, 10, 10]}\n")
	changes <- ports.WatchEvent{Path: path, Operation: ports.OpWrite}

	event, ok := next()
	require.True(t, ok)
	assert.Equal(t, ports.TreeContentChanged, event.Kind)
	assert.Equal(t, "two", rootText(t, src))

	// A broken rewrite keeps the previous tree and emits nothing.
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrSnapshotParseFailed.Error())
	})
	writeSnapshot(t, path, "root: [\n")
	changes <- ports.WatchEvent{Path: path, Operation: ports.OpWrite}
	close(changes)

	_, ok = next()
	assert.False(t, ok)
	assert.Equal(t, "two", rootText(t, src))

	require.NoError(t, src.Stop())
	require.NoError(t, src.Stop())
}
