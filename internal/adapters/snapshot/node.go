package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glance/internal/adapters/logger"
	"go.trai.ch/glance/internal/adapters/watcher"
	"go.trai.ch/glance/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot source factory Graft node.
const NodeID graft.ID = "adapter.snapshot"

var _ ports.ScreenOpener = (*Opener)(nil)

// Opener creates sources for snapshot files.
type Opener struct {
	watchers ports.WatcherFactory
	logger   ports.Logger
}

// NewOpener returns an opener whose sources watch files with watchers.
func NewOpener(watchers ports.WatcherFactory, logger ports.Logger) *Opener {
	return &Opener{watchers: watchers, logger: logger}
}

// Open returns a source for the snapshot file at path with the file loaded.
// A missing file is not an error; the tree appears once the file is written.
func (o *Opener) Open(path string) (ports.Screen, error) {
	src := NewSource(path, o.watchers, o.logger)
	if err := src.Load(); err != nil {
		return nil, err
	}
	return src, nil
}

func init() {
	graft.Register(graft.Node[*Opener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{watcher.FactoryNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Opener, error) {
			watchers, err := graft.Dep[ports.WatcherFactory](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(watchers, log), nil
		},
	})
}
