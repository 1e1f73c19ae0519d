// Package snapshot provides a UI tree read from a YAML dump of the screen.
// The dump is rewritten by a capture tool; each rewrite is reported as a tree mutation.
package snapshot

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"os"
	"sync"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.TreeSource = (*Source)(nil)
	_ ports.Display    = (*Source)(nil)
)

const eventBuffer = 16

// Source serves the tree held in a snapshot file and reports rewrites of the file.
type Source struct {
	path     string
	watchers ports.WatcherFactory
	logger   ports.Logger

	mu      sync.RWMutex
	tree    *Tree
	watcher ports.Watcher
	events  chan ports.TreeEvent
}

// NewSource creates a source for the snapshot file at path.
func NewSource(path string, watchers ports.WatcherFactory, logger ports.Logger) *Source {
	return &Source{
		path:     path,
		watchers: watchers,
		logger:   logger,
		events:   make(chan ports.TreeEvent, eventBuffer),
	}
}

// Path returns the snapshot file.
func (s *Source) Path() string {
	return s.path
}

// Load reads the snapshot file and replaces the current tree.
// A missing file clears the tree.
func (s *Source) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.mu.Lock()
		s.tree = nil
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "path", s.path)
	}

	tree, err := Parse(data)
	if err != nil {
		return zerr.With(err, "path", s.path)
	}

	s.mu.Lock()
	s.tree = tree
	s.mu.Unlock()
	return nil
}

// Start watches the snapshot file until ctx is done.
func (s *Source) Start(ctx context.Context) error {
	w, err := s.watchers.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Start(ctx, s.path); err != nil {
		_ = w.Stop()
		return err
	}

	s.mu.Lock()
	s.watcher = w
	s.mu.Unlock()

	go s.run(w)
	return nil
}

// Stop stops watching the file.
func (s *Source) Stop() error {
	s.mu.Lock()
	w := s.watcher
	s.watcher = nil
	s.mu.Unlock()

	if w == nil {
		return nil
	}
	return w.Stop()
}

// Root returns the root of the current tree, reading the file if nothing was loaded yet.
func (s *Source) Root(_ context.Context) (ports.TreeNode, error) {
	if tree := s.current(); tree != nil && tree.Root != nil {
		return tree.Root, nil
	}

	if err := s.Load(); err != nil {
		return nil, err
	}
	if tree := s.current(); tree != nil && tree.Root != nil {
		return tree.Root, nil
	}
	return nil, domain.ErrTreeUnavailable
}

// Events returns an iterator of mutation notifications. It ends when watching stops.
func (s *Source) Events() iter.Seq[ports.TreeEvent] {
	return func(yield func(ports.TreeEvent) bool) {
		for event := range s.events {
			if !yield(event) {
				return
			}
		}
	}
}

// ScreenBounds returns the screen of the current snapshot.
func (s *Source) ScreenBounds() domain.Rect {
	if tree := s.current(); tree != nil {
		return tree.Screen
	}
	return domain.Rect{}
}

// ChromeOffset returns the status bar height of the current snapshot.
func (s *Source) ChromeOffset() int {
	if tree := s.current(); tree != nil {
		return tree.Chrome
	}
	return 0
}

func (s *Source) current() *Tree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree
}

func (s *Source) run(w ports.Watcher) {
	defer close(s.events)

	for range w.Events() {
		if err := s.Load(); err != nil {
			s.logger.Error(zerr.Wrap(err, "keeping previous tree"))
			continue
		}
		select {
		case s.events <- ports.TreeEvent{Kind: ports.TreeContentChanged}:
		default:
			// A scan is already pending and will see the new tree.
		}
	}
}
