// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/glance/internal/adapters/config"
	_ "go.trai.ch/glance/internal/adapters/langdetect"
	_ "go.trai.ch/glance/internal/adapters/logger"
	_ "go.trai.ch/glance/internal/adapters/provider"
	_ "go.trai.ch/glance/internal/adapters/snapshot"
	_ "go.trai.ch/glance/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/glance/internal/app"
)
