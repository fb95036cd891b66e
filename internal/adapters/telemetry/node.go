package telemetry

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bpmlabs/igniter/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			// The OTel tracer resolves its provider per span start, so
			// installing an exporter later (serve mode) picks it up without
			// rebuilding the graph. Without a provider it is a no-op.
			return NewOTelTracer("igniter"), nil
		},
	})
}
