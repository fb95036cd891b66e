package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpmlabs/igniter/internal/core/domain"
	"github.com/bpmlabs/igniter/internal/engine/generator"
)

func testCatalog() *domain.VersionCatalog {
	return domain.NewVersionCatalog(
		domain.StarterVersion{StarterVersion: "7.15.0", CamundaVersion: "7.15.0", SpringBootVersion: "2.4.3"},
		domain.StarterVersion{StarterVersion: "7.14.0", CamundaVersion: "7.14.0", SpringBootVersion: "2.3.4.RELEASE"},
	)
}

func TestNormalizeFillsDefaults(t *testing.T) {
	got, err := generator.Normalize(domain.ProjectRequest{}, testCatalog())
	require.NoError(t, err)

	assert.Equal(t, domain.ProjectRequest{
		Group:          "com.example.workflow",
		Artifact:       "my-project",
		ProjectVersion: "1.0.0-SNAPSHOT",
		Modules:        []string{"camunda-rest"},
		Database:       "h2",
		StarterVersion: "7.15.0",
		JavaVersion:    "12",
		Username:       "demo",
		Password:       "demo",
	}, got)
}

func TestNormalizeFieldIndependence(t *testing.T) {
	tests := []struct {
		name string
		req  domain.ProjectRequest
		want func(t *testing.T, got domain.ProjectRequest)
	}{
		{
			name: "explicit fields pass through",
			req: domain.ProjectRequest{
				Group:    "org.acme",
				Database: "postgresql",
			},
			want: func(t *testing.T, got domain.ProjectRequest) {
				assert.Equal(t, "org.acme", got.Group)
				assert.Equal(t, "postgresql", got.Database)
				assert.Equal(t, "my-project", got.Artifact)
				assert.Equal(t, "demo", got.Username)
			},
		},
		{
			name: "explicit starter version skips catalog default",
			req: domain.ProjectRequest{
				StarterVersion: "7.14.0",
			},
			want: func(t *testing.T, got domain.ProjectRequest) {
				assert.Equal(t, "7.14.0", got.StarterVersion)
			},
		},
		{
			name: "explicit modules keep their order",
			req: domain.ProjectRequest{
				Modules: []string{"spring-boot-web", "camunda-webapps"},
			},
			want: func(t *testing.T, got domain.ProjectRequest) {
				assert.Equal(t, []string{"spring-boot-web", "camunda-webapps"}, got.Modules)
			},
		},
		{
			name: "unknown values pass through untouched",
			req: domain.ProjectRequest{
				Modules:  []string{"not-a-module"},
				Database: "oracle",
			},
			want: func(t *testing.T, got domain.ProjectRequest) {
				assert.Equal(t, []string{"not-a-module"}, got.Modules)
				assert.Equal(t, "oracle", got.Database)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := generator.Normalize(tt.req, testCatalog())
			require.NoError(t, err)
			tt.want(t, got)
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	catalog := testCatalog()

	once, err := generator.Normalize(domain.ProjectRequest{}, catalog)
	require.NoError(t, err)
	twice, err := generator.Normalize(once, catalog)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	req := domain.ProjectRequest{Group: "org.acme"}

	_, err := generator.Normalize(req, testCatalog())
	require.NoError(t, err)

	assert.Equal(t, domain.ProjectRequest{Group: "org.acme"}, req)
}

func TestNormalizeEmptyCatalog(t *testing.T) {
	_, err := generator.Normalize(domain.ProjectRequest{}, domain.NewVersionCatalog())
	require.ErrorIs(t, err, domain.ErrEmptyCatalog)

	// A request that carries its own starter version never needs the default.
	got, err := generator.Normalize(
		domain.ProjectRequest{StarterVersion: "7.15.0"},
		domain.NewVersionCatalog(),
	)
	require.NoError(t, err)
	assert.Equal(t, "7.15.0", got.StarterVersion)
}
