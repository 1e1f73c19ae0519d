package ports

import (
	"context"
	"iter"

	"go.trai.ch/glance/internal/core/domain"
)

// ConfigSource publishes configuration snapshots.
//
//go:generate mockgen -source=config_source.go -destination=mocks/mock_config_source.go -package=mocks
type ConfigSource interface {
	// Current returns the latest snapshot.
	Current() domain.Configuration
	// Start begins publishing snapshots. Publishing stops when ctx is done.
	Start(ctx context.Context) error
	// Snapshots returns an iterator of the snapshots published after Start.
	// The iterator ends when publishing stops.
	Snapshots() iter.Seq[domain.Configuration]
}
