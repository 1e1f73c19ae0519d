package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glance/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/langdetect" //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/provider"   //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/snapshot"   //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/watcher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.LoaderNodeID,
			provider.NodeID,
			snapshot.NodeID,
			watcher.FactoryNodeID,
			langdetect.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	providers, err := graft.Dep[*provider.Factory](ctx)
	if err != nil {
		return nil, err
	}

	screens, err := graft.Dep[*snapshot.Opener](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	languages, err := graft.Dep[ports.LanguageDetector](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, providers, screens, watchers, languages, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
