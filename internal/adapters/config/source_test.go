package config_test

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/internal/adapters/config"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/glance/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func eventsOf(events ...ports.WatchEvent) iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for _, event := range events {
			if !yield(event) {
				return
			}
		}
	}
}

func settingsWith(cfg domain.Configuration) *domain.Settings {
	s := domain.DefaultSettings()
	s.Configuration = cfg
	return s
}

func TestFileSource_PublishesChangedConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	factory := mocks.NewMockWatcherFactory(ctrl)
	w := mocks.NewMockWatcher(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	const path = "/work/glance.yaml"
	initial := domain.DefaultConfiguration()
	french := initial
	french.TargetLanguage = "fr"

	factory.EXPECT().NewWatcher().Return(w, nil)
	w.EXPECT().Start(gomock.Any(), path).Return(nil)
	w.EXPECT().Events().Return(eventsOf(
		ports.WatchEvent{Path: path, Operation: ports.OpWrite},
		ports.WatchEvent{Path: path, Operation: ports.OpRemove},
		ports.WatchEvent{Path: path, Operation: ports.OpWrite},
		ports.WatchEvent{Path: path, Operation: ports.OpCreate},
	))
	w.EXPECT().Stop().Return(nil)

	gomock.InOrder(
		loader.EXPECT().LoadFile(path).Return(settingsWith(french), nil),
		// Unchanged content is not republished.
		loader.EXPECT().LoadFile(path).Return(settingsWith(french), nil),
		loader.EXPECT().LoadFile(path).Return(nil, domain.ErrInvalidOpacity),
	)
	mockLogger.EXPECT().Info("configuration reloaded from /work/glance.yaml")
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, "keeping previous configuration")
		assert.ErrorIs(t, err, domain.ErrInvalidOpacity)
	})

	src := config.NewFileSource(path, initial, loader, factory, mockLogger)
	assert.Equal(t, initial, src.Current())

	require.NoError(t, src.Start(t.Context()))

	var published []domain.Configuration
	for cfg := range src.Snapshots() {
		published = append(published, cfg)
	}

	assert.Equal(t, []domain.Configuration{french}, published)
	assert.Equal(t, french, src.Current())
}

func TestFileSource_StartFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockWatcherFactory(ctrl)
	w := mocks.NewMockWatcher(ctrl)

	watchErr := errors.New("no such directory")
	factory.EXPECT().NewWatcher().Return(w, nil)
	w.EXPECT().Start(gomock.Any(), "/missing/glance.yaml").Return(watchErr)
	w.EXPECT().Stop().Return(nil)

	src := config.NewFileSource("/missing/glance.yaml", domain.DefaultConfiguration(),
		mocks.NewMockConfigLoader(ctrl), factory, mocks.NewMockLogger(ctrl))

	err := src.Start(t.Context())

	require.ErrorIs(t, err, watchErr)
}

func TestFileSource_WatcherFactoryFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockWatcherFactory(ctrl)
	factory.EXPECT().NewWatcher().Return(nil, domain.ErrWatchFailed)

	src := config.NewFileSource("/work/glance.yaml", domain.DefaultConfiguration(),
		mocks.NewMockConfigLoader(ctrl), factory, mocks.NewMockLogger(ctrl))

	require.ErrorIs(t, src.Start(t.Context()), domain.ErrWatchFailed)
}

func TestStaticSource(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	cfg.Opacity = 0.5
	src := config.NewStaticSource(cfg)

	ctx, cancel := context.WithCancel(t.Context())
	require.NoError(t, src.Start(ctx))
	cancel()

	var published []domain.Configuration
	for snapshot := range src.Snapshots() {
		published = append(published, snapshot)
	}

	assert.Empty(t, published)
	assert.Equal(t, cfg, src.Current())
}
