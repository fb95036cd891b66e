// Package generator implements the project assembly pipeline.
package generator

import (
	"context"
	"slices"

	"go.trai.ch/zerr"

	"github.com/bpmlabs/igniter/internal/core/domain"
	"github.com/bpmlabs/igniter/internal/core/ports"
)

// Generator assembles starter projects. Each call runs the same pipeline:
// load the version catalog, normalize the request, resolve dependencies,
// build the template context, then render and pack. Generators hold no
// per-request state and are safe for concurrent use.
type Generator struct {
	versions ports.VersionSource
	renderer ports.Renderer
	archiver ports.Archiver
	tracer   ports.Tracer
}

// New creates a new Generator with the given dependencies.
func New(
	versions ports.VersionSource,
	renderer ports.Renderer,
	archiver ports.Archiver,
	tracer ports.Tracer,
) *Generator {
	return &Generator{
		versions: versions,
		renderer: renderer,
		archiver: archiver,
		tracer:   tracer,
	}
}

// Generate produces the packaged project archive for the request. The
// archive is assembled all-or-nothing: any stage failure discards the
// partial result and returns the error.
func (g *Generator) Generate(ctx context.Context, req domain.ProjectRequest) ([]byte, error) {
	ctx, span := g.tracer.Start(ctx, "generate")
	defer span.End()

	req, tmplCtx, err := g.prepare(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("artifact", req.Artifact)
	span.SetAttribute("starterVersion", req.StarterVersion)

	files := domain.GeneratedFiles()
	entries := make([]domain.ArchiveEntry, 0, len(files))
	for _, name := range files {
		body, err := g.renderer.Render(ctx, name, tmplCtx)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		path, ok := domain.ArchivePath(name, req.Artifact, req.Group)
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrUnknownFile, ""), "file", name)
			span.RecordError(err)
			return nil, err
		}
		entries = append(entries, domain.ArchiveEntry{Path: path, Body: []byte(body)})
	}

	archive, err := g.archiver.Pack(entries)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return archive, nil
}

// GenerateFile renders a single artifact for the request and returns its
// text. name must be one of the generated artifact file names.
func (g *Generator) GenerateFile(ctx context.Context, req domain.ProjectRequest, name string) (string, error) {
	ctx, span := g.tracer.Start(ctx, "generate_file")
	defer span.End()
	span.SetAttribute("file", name)

	if !slices.Contains(domain.GeneratedFiles(), name) {
		err := zerr.With(zerr.Wrap(domain.ErrUnknownFile, ""), "file", name)
		span.RecordError(err)
		return "", err
	}

	_, tmplCtx, err := g.prepare(ctx, req)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	body, err := g.renderer.Render(ctx, name, tmplCtx)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return body, nil
}

// prepare runs the shared front half of the pipeline. It returns the
// normalized request alongside the finished template context.
func (g *Generator) prepare(ctx context.Context, req domain.ProjectRequest) (domain.ProjectRequest, domain.TemplateContext, error) {
	ctx, span := g.tracer.Start(ctx, "prepare")
	defer span.End()

	// 1. Load the version catalog.
	catalog, err := g.versions.Load(ctx)
	if err != nil {
		span.RecordError(err)
		return domain.ProjectRequest{}, nil, err
	}

	// 2. Fill defaults.
	req, err = Normalize(req, catalog)
	if err != nil {
		span.RecordError(err)
		return domain.ProjectRequest{}, nil, err
	}

	// 3. Resolve module and database selections.
	deps, err := ResolveDependencies(req.Modules, req.Database, req.StarterVersion)
	if err != nil {
		span.RecordError(err)
		return domain.ProjectRequest{}, nil, err
	}

	// 4. Assemble the template context.
	tmplCtx, err := BuildContext(req, deps, catalog)
	if err != nil {
		span.RecordError(err)
		return domain.ProjectRequest{}, nil, err
	}
	return req, tmplCtx, nil
}
