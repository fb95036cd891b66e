// Package app implements the application layer for igniter.
package app

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/bpmlabs/igniter/internal/adapters/httpapi"   //nolint:depguard // Wired in app layer
	"github.com/bpmlabs/igniter/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/bpmlabs/igniter/internal/adapters/versions"  //nolint:depguard // Wired in app layer
	"github.com/bpmlabs/igniter/internal/core/domain"
	"github.com/bpmlabs/igniter/internal/core/ports"
	"github.com/bpmlabs/igniter/internal/engine/generator"
)

// jsonSwitcher is implemented by loggers that can flip to JSON output for
// server mode.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	logger       ports.Logger
	configLoader ports.ConfigLoader
	generator    *generator.Generator
	versions     ports.VersionSource
	updater      ports.VersionUpdater
	renderer     ports.Renderer
	archiver     ports.Archiver
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	logger ports.Logger,
	configLoader ports.ConfigLoader,
	gen *generator.Generator,
	source ports.VersionSource,
	updater ports.VersionUpdater,
	renderer ports.Renderer,
	archiver ports.Archiver,
	tracer ports.Tracer,
) *App {
	return &App{
		logger:       logger,
		configLoader: configLoader,
		generator:    gen,
		versions:     source,
		updater:      updater,
		renderer:     renderer,
		archiver:     archiver,
		tracer:       tracer,
	}
}

// Generate runs the full pipeline and returns the project archive.
func (a *App) Generate(ctx context.Context, req domain.ProjectRequest) ([]byte, error) {
	archive, err := a.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("generated project archive (%d bytes, xxh64 %016x)",
		len(archive), xxhash.Sum64(archive)))
	return archive, nil
}

// GenerateFile renders a single artifact without packaging.
func (a *App) GenerateFile(ctx context.Context, req domain.ProjectRequest, name string) (string, error) {
	return a.generator.GenerateFile(ctx, req, name)
}

// Versions returns the catalog records in declaration order together with
// the default starter version identifier. With refresh set, the published
// catalog is fetched first.
func (a *App) Versions(ctx context.Context, refresh bool) ([]domain.StarterVersion, string, error) {
	if refresh {
		if err := a.updater.Refresh(ctx); err != nil {
			return nil, "", err
		}
	}

	catalog, err := a.versions.Load(ctx)
	if err != nil {
		return nil, "", err
	}

	def, ok := catalog.DefaultVersion()
	if !ok {
		return nil, "", domain.ErrEmptyCatalog
	}
	return catalog.Versions(), def, nil
}

// Serve runs the HTTP API until ctx is cancelled. The server gets its own
// cached catalog source so concurrent requests share one load, invalidated
// when the backing file changes.
func (a *App) Serve(ctx context.Context, configPath string) error {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load server configuration")
	}

	if switcher, ok := a.logger.(jsonSwitcher); ok {
		switcher.SetJSON(true)
	}

	if cfg.TraceMode == domain.TraceModeStdout {
		shutdown, err := telemetry.SetupStdoutProvider()
		if err != nil {
			return err
		}
		defer func() {
			_ = shutdown(context.Background())
		}()
	}

	updater := versions.NewUpdater(cfg.VersionsURL, cfg.VersionsPath, a.logger)
	source := versions.NewCachedSource(
		versions.NewSource(cfg.VersionsPath, updater, a.logger),
		cfg.VersionsPath,
		a.logger,
	)

	if cfg.RefreshOnStart {
		if err := updater.Refresh(ctx); err != nil {
			return err
		}
	}

	gen := generator.New(source, a.renderer, a.archiver, a.tracer)

	metrics := httpapi.NewMetrics()
	handler := httpapi.NewHandler(gen, source, updater, a.logger, metrics)
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Handler:     handler,
		Metrics:     metrics,
		CORSOrigins: cfg.CORSOrigins,
	})
	server := httpapi.NewServer(cfg.ListenAddr, router, a.logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(ctx)
	})
	g.Go(func() error {
		return source.Watch(ctx)
	})
	return g.Wait()
}
