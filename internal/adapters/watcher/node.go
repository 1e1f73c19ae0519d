package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/glance/internal/adapters/logger"
	"go.trai.ch/glance/internal/core/ports"
)

// FactoryNodeID is the unique identifier for the watcher factory Graft node.
const FactoryNodeID graft.ID = "adapter.watcher_factory"

// DefaultDebounceWindow is the default time window for coalescing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

var _ ports.WatcherFactory = (*Factory)(nil)

// Factory creates watchers sharing one debounce window and logger.
type Factory struct {
	window time.Duration
	logger ports.Logger
}

// NewFactory returns a factory for watchers coalescing events within window.
func NewFactory(window time.Duration, logger ports.Logger) *Factory {
	return &Factory{window: window, logger: logger}
}

// NewWatcher returns a new, unstarted watcher.
func (f *Factory) NewWatcher() (ports.Watcher, error) {
	return NewWatcher(f.window, f.logger)
}

func init() {
	graft.Register(graft.Node[ports.WatcherFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WatcherFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(DefaultDebounceWindow, log), nil
		},
	})
}
