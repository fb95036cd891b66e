package ports

import "github.com/bpmlabs/igniter/internal/core/domain"

// ConfigLoader reads the server configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns it with every
	// omitted field defaulted. A missing file is not an error: the full
	// default configuration is returned instead.
	Load(path string) (domain.ServerConfig, error)
}
