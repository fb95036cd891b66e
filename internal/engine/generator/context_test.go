package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpmlabs/igniter/internal/core/domain"
	"github.com/bpmlabs/igniter/internal/engine/generator"
)

func normalizedRequest() domain.ProjectRequest {
	return domain.ProjectRequest{
		Group:          "com.example.workflow",
		Artifact:       "my-project",
		ProjectVersion: "1.0.0-SNAPSHOT",
		Modules:        []string{"camunda-rest"},
		Database:       "h2",
		StarterVersion: "7.15.0",
		JavaVersion:    "12",
		Username:       "demo",
		Password:       "demo",
	}
}

func TestBuildContext(t *testing.T) {
	deps := []domain.Dependency{
		domain.NewPinnedDependency("org.camunda.bpm.springboot", "camunda-bpm-spring-boot-starter-rest", "7.15.0"),
		domain.NewDependency("com.h2database", "h2"),
	}

	got, err := generator.BuildContext(normalizedRequest(), deps, testCatalog())
	require.NoError(t, err)

	assert.Equal(t, domain.TemplateContext{
		"packageName":       "com.example.workflow",
		"dbType":            "h2",
		"dbClassRef":        "",
		"adminUsername":     "demo",
		"adminPassword":     "demo",
		"camundaVersion":    "7.15.0",
		"springBootVersion": "2.4.3",
		"javaVersion":       "12",
		"group":             "com.example.workflow",
		"artifact":          "my-project",
		"projectVersion":    "1.0.0-SNAPSHOT",
		"dependencies":      deps,
	}, got)
}

func TestBuildContextDatasourceClass(t *testing.T) {
	tests := []struct {
		name     string
		database string
		want     string
	}{
		{name: "postgresql", database: "postgresql", want: "org.postgresql.jdbc2.optional.SimpleDataSource"},
		{name: "mysql", database: "mysql", want: "com.mysql.cj.jdbc.MysqlDataSource"},
		{name: "h2 has no datasource class", database: "h2", want: ""},
		{name: "lookup ignores case", database: "PostgreSQL", want: "org.postgresql.jdbc2.optional.SimpleDataSource"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := normalizedRequest()
			req.Database = tt.database

			got, err := generator.BuildContext(req, nil, testCatalog())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got["dbClassRef"])
			assert.Equal(t, tt.database, got["dbType"])
		})
	}
}

func TestBuildContextUnknownStarterVersion(t *testing.T) {
	req := normalizedRequest()
	req.StarterVersion = "0.0.1"

	_, err := generator.BuildContext(req, nil, testCatalog())
	require.ErrorIs(t, err, domain.ErrUnknownStarterVersion)
}
