// Package versions loads, caches and refreshes the starter version catalog.
package versions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.trai.ch/zerr"

	"github.com/bpmlabs/igniter/internal/core/domain"
	"github.com/bpmlabs/igniter/internal/core/ports"
)

// catalogFile mirrors the on-disk versions.json document.
type catalogFile struct {
	StarterVersions []domain.StarterVersion `json:"starterVersions"`
}

// Source reads the version catalog from a JSON file. A missing file
// triggers a single refresh through the updater followed by exactly one
// more read attempt.
type Source struct {
	path    string
	updater ports.VersionUpdater
	logger  ports.Logger
}

// NewSource creates a file-backed catalog source.
func NewSource(path string, updater ports.VersionUpdater, logger ports.Logger) *Source {
	return &Source{
		path:    path,
		updater: updater,
		logger:  logger,
	}
}

// Load reads and decodes the catalog. Read errors other than a missing
// file fail immediately; after the one refresh retry every failure is
// final.
func (s *Source) Load(ctx context.Context) (*domain.VersionCatalog, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn(fmt.Sprintf("%s missing, fetching the published catalog", s.path))
		if refreshErr := s.updater.Refresh(ctx); refreshErr != nil {
			return nil, errors.Join(domain.ErrVersionsUnavailable, refreshErr)
		}
		data, err = os.ReadFile(s.path)
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrVersionsUnavailable, err), "path", s.path)
	}

	return decodeCatalog(data)
}

// decodeCatalog parses the document and builds the ordered catalog.
// Duplicate starter versions collapse to one entry: first position wins,
// later values win.
func decodeCatalog(data []byte) (*domain.VersionCatalog, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(domain.ErrVersionsParse, err)
	}
	return domain.NewVersionCatalog(file.StarterVersions...), nil
}
