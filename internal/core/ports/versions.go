package ports

import (
	"context"

	"github.com/bpmlabs/igniter/internal/core/domain"
)

//go:generate mockgen -source=versions.go -destination=mocks/mock_versions.go -package=mocks

// VersionSource provides the starter version catalog.
type VersionSource interface {
	// Load reads the current catalog. Implementations may trigger a refresh
	// when the backing data is missing, but must fail rather than return a
	// partial catalog.
	Load(ctx context.Context) (*domain.VersionCatalog, error)
}

// VersionUpdater replaces the backing catalog data with a freshly published
// copy.
type VersionUpdater interface {
	// Refresh fetches the published catalog and atomically replaces the
	// local copy. Refresh is safe to call concurrently and repeatedly.
	Refresh(ctx context.Context) error
}
