// Package config loads the igniter server configuration.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/bpmlabs/igniter/internal/core/domain"
)

// DefaultFileName is the configuration file looked up when no explicit
// path is given.
const DefaultFileName = "igniter.yaml"

// Loader implements ports.ConfigLoader for YAML files.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		validate: validator.New(),
	}
}

// Load reads the configuration file at path. A missing file yields the
// default configuration; any other read, parse or validation problem is
// an error.
func (l *Loader) Load(path string) (domain.ServerConfig, error) {
	if path == "" {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultServerConfig(), nil
	}
	if err != nil {
		return domain.ServerConfig{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file serverFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.ServerConfig{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	applyDefaults(&file)

	if err := l.validate.Struct(file); err != nil {
		return domain.ServerConfig{}, zerr.With(zerr.Wrap(err, "invalid configuration"), "path", path)
	}

	return domain.ServerConfig{
		ListenAddr:     file.Listen,
		VersionsPath:   file.Versions.Path,
		VersionsURL:    file.Versions.URL,
		RefreshOnStart: file.Versions.RefreshOnStart,
		CORSOrigins:    file.CORS.Origins,
		TraceMode:      file.Trace,
	}, nil
}

// applyDefaults fills every omitted field so a partial file only has to
// state what differs from the stock setup.
func applyDefaults(file *serverFile) {
	defaults := domain.DefaultServerConfig()

	if file.Listen == "" {
		file.Listen = defaults.ListenAddr
	}
	if file.Versions.Path == "" {
		file.Versions.Path = defaults.VersionsPath
	}
	if file.Versions.URL == "" {
		file.Versions.URL = defaults.VersionsURL
	}
	if len(file.CORS.Origins) == 0 {
		file.CORS.Origins = defaults.CORSOrigins
	}
	if file.Trace == "" {
		file.Trace = defaults.TraceMode
	}
}
