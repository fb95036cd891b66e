package generator

import (
	"strings"

	"go.trai.ch/zerr"

	"github.com/bpmlabs/igniter/internal/core/domain"
)

// datasourceClasses maps database identifiers to the datasource class
// emitted into the runtime configuration. Databases without an entry fall
// back to an empty value, which the configuration template omits.
var datasourceClasses = map[string]string{
	"postgresql": "org.postgresql.jdbc2.optional.SimpleDataSource",
	"mysql":      "com.mysql.cj.jdbc.MysqlDataSource",
}

// BuildContext assembles the flat template context for a normalized
// request. The request's starter version must exist in the catalog;
// a stale or mistyped selection is a hard error, never a silent fallback.
func BuildContext(req domain.ProjectRequest, deps []domain.Dependency, catalog *domain.VersionCatalog) (domain.TemplateContext, error) {
	record, ok := catalog.Get(req.StarterVersion)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownStarterVersion, ""), "starterVersion", req.StarterVersion)
	}

	return domain.TemplateContext{
		"packageName":       req.Group,
		"dbType":            req.Database,
		"dbClassRef":        datasourceClasses[strings.ToLower(req.Database)],
		"adminUsername":     req.Username,
		"adminPassword":     req.Password,
		"camundaVersion":    record.CamundaVersion,
		"springBootVersion": record.SpringBootVersion,
		"javaVersion":       req.JavaVersion,
		"group":             req.Group,
		"artifact":          req.Artifact,
		"projectVersion":    req.ProjectVersion,
		"dependencies":      deps,
	}, nil
}
