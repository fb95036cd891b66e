package generator

import (
	"go.trai.ch/zerr"

	"github.com/bpmlabs/igniter/internal/core/domain"
)

// moduleCoordinate describes how a selectable module maps onto a build
// dependency. Starter modules are pinned to the starter version chosen by
// the request; plain framework modules leave the version managed.
type moduleCoordinate struct {
	group    string
	artifact string
	starter  bool
}

var moduleCoordinates = map[string]moduleCoordinate{
	"camunda-webapps": {
		group:    "org.camunda.bpm.springboot",
		artifact: "camunda-bpm-spring-boot-starter-webapp",
		starter:  true,
	},
	"camunda-rest": {
		group:    "org.camunda.bpm.springboot",
		artifact: "camunda-bpm-spring-boot-starter-rest",
		starter:  true,
	},
	"spring-boot-security": {
		group:    "org.springframework.boot",
		artifact: "spring-boot-starter-security",
	},
	"spring-boot-web": {
		group:    "org.springframework.boot",
		artifact: "spring-boot-starter-web",
	},
}

var databaseCoordinates = map[string]moduleCoordinate{
	"postgresql": {group: "org.postgresql", artifact: "postgresql"},
	"mysql":      {group: "mysql", artifact: "mysql-connector-java"},
	"h2":         {group: "com.h2database", artifact: "h2"},
}

// ResolveDependencies maps the selected modules and database onto the
// dependency list for the generated build descriptor. Modules keep request
// order and the database driver is appended last. An unknown module or
// database aborts resolution with no partial result.
func ResolveDependencies(modules []string, database, starterVersion string) ([]domain.Dependency, error) {
	deps := make([]domain.Dependency, 0, len(modules)+1)
	for _, module := range modules {
		coord, ok := moduleCoordinates[module]
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownModule, ""), "module", module)
		}
		if coord.starter {
			deps = append(deps, domain.NewPinnedDependency(coord.group, coord.artifact, starterVersion))
		} else {
			deps = append(deps, domain.NewDependency(coord.group, coord.artifact))
		}
	}

	coord, ok := databaseCoordinates[database]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownDatabase, ""), "database", database)
	}
	return append(deps, domain.NewDependency(coord.group, coord.artifact)), nil
}
