package versions

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bpmlabs/igniter/internal/adapters/logger"
	"github.com/bpmlabs/igniter/internal/core/domain"
	"github.com/bpmlabs/igniter/internal/core/ports"
)

const (
	// UpdaterNodeID is the unique identifier for the version updater Graft node.
	UpdaterNodeID graft.ID = "adapter.version_updater"
	// SourceNodeID is the unique identifier for the version source Graft node.
	SourceNodeID graft.ID = "adapter.version_source"
)

func init() {
	// Updater Node
	graft.Register(graft.Node[ports.VersionUpdater]{
		ID:        UpdaterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.VersionUpdater, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewUpdater(domain.DefaultCatalogURL, domain.VersionsFileName, log), nil
		},
	})

	// Source Node
	graft.Register(graft.Node[ports.VersionSource]{
		ID:        SourceNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{UpdaterNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.VersionSource, error) {
			updater, err := graft.Dep[ports.VersionUpdater](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(domain.VersionsFileName, updater, log), nil
		},
	})
}
