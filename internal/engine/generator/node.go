package generator

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bpmlabs/igniter/internal/adapters/archive"   //nolint:depguard // Wired in engine wiring
	"github.com/bpmlabs/igniter/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/bpmlabs/igniter/internal/adapters/templates" //nolint:depguard // Wired in engine wiring
	"github.com/bpmlabs/igniter/internal/adapters/versions"  //nolint:depguard // Wired in engine wiring
	"github.com/bpmlabs/igniter/internal/core/ports"
)

// NodeID is the unique identifier for the generator Graft node.
const NodeID graft.ID = "engine.generator"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			versions.SourceNodeID,
			templates.NodeID,
			archive.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Generator, error) {
			source, err := graft.Dep[ports.VersionSource](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(source, renderer, archiver, tracer), nil
		},
	})
}
