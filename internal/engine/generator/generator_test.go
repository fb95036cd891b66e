package generator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bpmlabs/igniter/internal/core/domain"
	"github.com/bpmlabs/igniter/internal/core/ports"
	"github.com/bpmlabs/igniter/internal/core/ports/mocks"
	"github.com/bpmlabs/igniter/internal/engine/generator"
)

type generatorTestMocks struct {
	versions *mocks.MockVersionSource
	renderer *mocks.MockRenderer
	archiver *mocks.MockArchiver
	tracer   *mocks.MockTracer
}

// setupGeneratorTest creates a generator and common mocks.
func setupGeneratorTest(t *testing.T) (*generator.Generator, generatorTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := generatorTestMocks{
		versions: mocks.NewMockVersionSource(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		archiver: mocks.NewMockArchiver(ctrl),
		tracer:   mocks.NewMockTracer(ctrl),
	}

	// Default optimistic span mocks to reduce noise in specific tests.
	mockSpan := mocks.NewMockSpan(ctrl)
	mockSpan.EXPECT().End().AnyTimes()
	mockSpan.EXPECT().RecordError(gomock.Any()).AnyTimes()
	mockSpan.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, mockSpan
		},
	).AnyTimes()

	g := generator.New(m.versions, m.renderer, m.archiver, m.tracer)
	return g, m
}

func TestGenerate(t *testing.T) {
	g, m := setupGeneratorTest(t)

	m.versions.EXPECT().Load(gomock.Any()).Return(testCatalog(), nil)

	var contexts []domain.TemplateContext
	render := func(_ context.Context, name string, data domain.TemplateContext) (string, error) {
		contexts = append(contexts, data)
		return "content of " + name, nil
	}
	m.renderer.EXPECT().Render(gomock.Any(), domain.ApplicationFileName, gomock.Any()).DoAndReturn(render)
	m.renderer.EXPECT().Render(gomock.Any(), domain.ConfigFileName, gomock.Any()).DoAndReturn(render)
	m.renderer.EXPECT().Render(gomock.Any(), domain.BuildFileName, gomock.Any()).DoAndReturn(render)

	var packed []domain.ArchiveEntry
	m.archiver.EXPECT().Pack(gomock.Any()).DoAndReturn(
		func(entries []domain.ArchiveEntry) ([]byte, error) {
			packed = entries
			return []byte("archive"), nil
		},
	)

	got, err := g.Generate(context.Background(), domain.ProjectRequest{})
	require.NoError(t, err)
	assert.Equal(t, []byte("archive"), got)

	// Defaults flow into every rendered artifact.
	require.Len(t, contexts, 3)
	for _, tmplCtx := range contexts {
		assert.Equal(t, "com.example.workflow", tmplCtx["packageName"])
		assert.Equal(t, "7.15.0", tmplCtx["camundaVersion"])
	}

	// Entries arrive in artifact order under the defaulted project name.
	require.Len(t, packed, 3)
	assert.Equal(t, "my-project/src/main/java/com/example/workflow/Application.java", packed[0].Path)
	assert.Equal(t, "my-project/src/main/resources/application.yaml", packed[1].Path)
	assert.Equal(t, "my-project/pom.xml", packed[2].Path)
	assert.Equal(t, []byte("content of Application.java"), packed[0].Body)
}

func TestGenerateCatalogFailure(t *testing.T) {
	g, m := setupGeneratorTest(t)

	m.versions.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrVersionsUnavailable)

	_, err := g.Generate(context.Background(), domain.ProjectRequest{})
	require.ErrorIs(t, err, domain.ErrVersionsUnavailable)
}

func TestGenerateUnknownModule(t *testing.T) {
	g, m := setupGeneratorTest(t)

	m.versions.EXPECT().Load(gomock.Any()).Return(testCatalog(), nil)

	_, err := g.Generate(context.Background(), domain.ProjectRequest{
		Modules: []string{"not-a-module"},
	})
	require.ErrorIs(t, err, domain.ErrUnknownModule)
}

func TestGenerateRenderFailure(t *testing.T) {
	g, m := setupGeneratorTest(t)

	m.versions.EXPECT().Load(gomock.Any()).Return(testCatalog(), nil)
	m.renderer.EXPECT().Render(gomock.Any(), domain.ApplicationFileName, gomock.Any()).
		Return("", domain.ErrRender)

	// Rendering stops at the first failure and nothing is packed.
	_, err := g.Generate(context.Background(), domain.ProjectRequest{})
	require.ErrorIs(t, err, domain.ErrRender)
}

func TestGenerateFile(t *testing.T) {
	g, m := setupGeneratorTest(t)

	m.versions.EXPECT().Load(gomock.Any()).Return(testCatalog(), nil)
	m.renderer.EXPECT().Render(gomock.Any(), domain.BuildFileName, gomock.Any()).
		Return("<project/>", nil)

	got, err := g.GenerateFile(context.Background(), domain.ProjectRequest{}, domain.BuildFileName)
	require.NoError(t, err)
	assert.Equal(t, "<project/>", got)
}

func TestGenerateFileUnknownName(t *testing.T) {
	g, _ := setupGeneratorTest(t)

	// The name check happens before any catalog access.
	_, err := g.GenerateFile(context.Background(), domain.ProjectRequest{}, "Dockerfile")
	require.ErrorIs(t, err, domain.ErrUnknownFile)
}
