package langdetect

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glance/internal/core/ports"
)

// NodeID is the unique identifier for the language detector Graft node.
const NodeID graft.ID = "adapter.langdetect"

func init() {
	graft.Register(graft.Node[ports.LanguageDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LanguageDetector, error) {
			return New(), nil
		},
	})
}
