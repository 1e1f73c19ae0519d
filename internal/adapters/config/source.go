package config

import (
	"context"
	"iter"
	"sync"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ConfigSource = (*FileSource)(nil)
	_ ports.ConfigSource = (*StaticSource)(nil)
)

// FileSource republishes the configuration whenever its config file changes.
// A file that fails to load or validate is reported and the previous snapshot stays current.
type FileSource struct {
	path     string
	loader   ports.ConfigLoader
	watchers ports.WatcherFactory
	logger   ports.Logger

	mu        sync.RWMutex
	current   domain.Configuration
	snapshots chan domain.Configuration
}

// NewFileSource creates a source for the config file at path, starting from initial.
func NewFileSource(
	path string,
	initial domain.Configuration,
	loader ports.ConfigLoader,
	watchers ports.WatcherFactory,
	logger ports.Logger,
) *FileSource {
	return &FileSource{
		path:      path,
		loader:    loader,
		watchers:  watchers,
		logger:    logger,
		current:   initial,
		snapshots: make(chan domain.Configuration),
	}
}

// Current returns the latest published snapshot.
func (s *FileSource) Current() domain.Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Start watches the config file until ctx is done.
func (s *FileSource) Start(ctx context.Context) error {
	w, err := s.watchers.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Start(ctx, s.path); err != nil {
		_ = w.Stop()
		return err
	}

	go s.run(ctx, w)
	return nil
}

// Snapshots returns an iterator of the snapshots published after Start.
func (s *FileSource) Snapshots() iter.Seq[domain.Configuration] {
	return func(yield func(domain.Configuration) bool) {
		for cfg := range s.snapshots {
			if !yield(cfg) {
				return
			}
		}
	}
}

func (s *FileSource) run(ctx context.Context, w ports.Watcher) {
	defer close(s.snapshots)
	defer func() { _ = w.Stop() }()

	for event := range w.Events() {
		if event.Operation == ports.OpRemove || event.Operation == ports.OpRename {
			continue
		}
		cfg, ok := s.reload()
		if !ok {
			continue
		}
		select {
		case s.snapshots <- cfg:
		case <-ctx.Done():
			return
		}
	}
}

// reload reads the file and reports whether it produced a new snapshot.
func (s *FileSource) reload() (domain.Configuration, bool) {
	settings, err := s.loader.LoadFile(s.path)
	if err != nil {
		s.logger.Error(zerr.Wrap(err, "keeping previous configuration"))
		return domain.Configuration{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if settings.Configuration == s.current {
		return domain.Configuration{}, false
	}
	s.current = settings.Configuration
	s.logger.Info("configuration reloaded from " + s.path)
	return s.current, true
}

// StaticSource publishes a single snapshot and never changes.
type StaticSource struct {
	cfg       domain.Configuration
	snapshots chan domain.Configuration
}

// NewStaticSource creates a source that always reports cfg.
func NewStaticSource(cfg domain.Configuration) *StaticSource {
	return &StaticSource{cfg: cfg, snapshots: make(chan domain.Configuration)}
}

// Current returns the configured snapshot.
func (s *StaticSource) Current() domain.Configuration {
	return s.cfg
}

// Start ends the snapshot stream once ctx is done.
func (s *StaticSource) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		close(s.snapshots)
	}()
	return nil
}

// Snapshots returns an iterator that yields nothing and ends when the source stops.
func (s *StaticSource) Snapshots() iter.Seq[domain.Configuration] {
	return func(yield func(domain.Configuration) bool) {
		for cfg := range s.snapshots {
			if !yield(cfg) {
				return
			}
		}
	}
}
