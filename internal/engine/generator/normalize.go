package generator

import (
	"github.com/bpmlabs/igniter/internal/core/domain"
)

// Normalize returns a copy of req with every empty field replaced by its
// default. Fields that already carry a value pass through untouched, so
// normalizing an already-normalized request changes nothing. The input is
// never mutated.
//
// The starter version defaults to the catalog's first entry, which is the
// only default that depends on runtime data. No validation happens here
// beyond emptiness; unknown selections surface later, during resolution.
func Normalize(req domain.ProjectRequest, catalog *domain.VersionCatalog) (domain.ProjectRequest, error) {
	if len(req.Modules) == 0 {
		req.Modules = []string{domain.DefaultModule}
	}
	if req.Group == "" {
		req.Group = domain.DefaultGroup
	}
	if req.Artifact == "" {
		req.Artifact = domain.DefaultArtifact
	}
	if req.ProjectVersion == "" {
		req.ProjectVersion = domain.DefaultProjectVersion
	}
	if req.Database == "" {
		req.Database = domain.DefaultDatabase
	}
	if req.StarterVersion == "" {
		def, ok := catalog.DefaultVersion()
		if !ok {
			return domain.ProjectRequest{}, domain.ErrEmptyCatalog
		}
		req.StarterVersion = def
	}
	if req.JavaVersion == "" {
		req.JavaVersion = domain.DefaultJavaVersion
	}
	if req.Username == "" {
		req.Username = domain.DefaultUsername
	}
	if req.Password == "" {
		req.Password = domain.DefaultPassword
	}
	return req, nil
}
