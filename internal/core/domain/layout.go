package domain

import (
	"path/filepath"
	"time"
)

const (
	// GlanceDirName is the name of the internal workspace directory.
	GlanceDirName = ".glance"

	// ModelsDirName is the name of the language model directory.
	ModelsDirName = "models"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "glance.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

const (
	// DefaultDebounceInterval is the minimum time between accepted translations of one node.
	DefaultDebounceInterval = 500 * time.Millisecond

	// DefaultRefreshInterval is the period of the full refresh cycle.
	DefaultRefreshInterval = 2000 * time.Millisecond

	// DefaultLargeRegionThreshold is the fraction of the screen above which a region is
	// treated as a container rather than text.
	DefaultLargeRegionThreshold = 0.5

	// DefaultCacheCapacity is the number of translations kept in memory.
	DefaultCacheCapacity = 100

	// DefaultPoolCapacity is the number of idle annotations kept for reuse.
	DefaultPoolCapacity = 50

	// DefaultTranslateTimeout bounds a single provider call.
	DefaultTranslateTimeout = 10 * time.Second
)

// DefaultModelsPath returns the default directory for downloaded language models.
// It joins .glance and models.
func DefaultModelsPath() string {
	return filepath.Join(GlanceDirName, ModelsDirName)
}
