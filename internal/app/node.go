package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bpmlabs/igniter/internal/adapters/archive"   //nolint:depguard // Wired in app layer
	"github.com/bpmlabs/igniter/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/bpmlabs/igniter/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/bpmlabs/igniter/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/bpmlabs/igniter/internal/adapters/templates" //nolint:depguard // Wired in app layer
	"github.com/bpmlabs/igniter/internal/adapters/versions"  //nolint:depguard // Wired in app layer
	"github.com/bpmlabs/igniter/internal/core/ports"
	"github.com/bpmlabs/igniter/internal/engine/generator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			generator.NodeID,
			versions.SourceNodeID,
			versions.UpdaterNodeID,
			templates.NodeID,
			archive.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	gen, err := graft.Dep[*generator.Generator](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.VersionSource](ctx)
	if err != nil {
		return nil, err
	}

	updater, err := graft.Dep[ports.VersionUpdater](ctx)
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

	return New(log, loader, gen, source, updater, renderer, archiver, tracer), nil
}
