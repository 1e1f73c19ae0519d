package provider

import (
	"context"
	"net/http"
	"time"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.trai.ch/glance/internal/adapters/logger"
	"go.trai.ch/glance/internal/core/ports"
)

// NodeID is the unique identifier for the provider factory Graft node.
const NodeID graft.ID = "adapter.provider"

// httpTimeout bounds model downloads and API calls that carry no deadline of their own.
const httpTimeout = time.Minute

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			client := &http.Client{
				Transport: otelhttp.NewTransport(http.DefaultTransport),
				Timeout:   httpTimeout,
			}
			return NewFactory(client, log), nil
		},
	})
}
