package commands

import (
	"github.com/spf13/cobra"

	"github.com/bpmlabs/igniter/internal/core/domain"
)

// addRequestFlags registers the project request flags shared by generate
// and preview. Defaults stay empty: the pipeline's normalization owns the
// baseline values, the CLI only forwards what the user typed.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("group", "g", "", "Package group identifier (e.g. com.example.workflow)")
	cmd.Flags().StringP("artifact", "a", "", "Project artifact name")
	cmd.Flags().String("project-version", "", "Version of the generated project")
	cmd.Flags().StringSliceP("module", "m", nil, "Feature module to include (repeatable)")
	cmd.Flags().StringP("database", "d", "", "Database the generated project connects to")
	cmd.Flags().String("starter-version", "", "Camunda starter version (defaults to the latest)")
	cmd.Flags().String("java-version", "", "Java version of the generated project")
	cmd.Flags().String("username", "", "Admin username of the generated project")
	cmd.Flags().String("password", "", "Admin password of the generated project")
}

// requestFromFlags assembles the project request from the shared flags.
func requestFromFlags(cmd *cobra.Command) domain.ProjectRequest {
	group, _ := cmd.Flags().GetString("group")
	artifact, _ := cmd.Flags().GetString("artifact")
	projectVersion, _ := cmd.Flags().GetString("project-version")
	modules, _ := cmd.Flags().GetStringSlice("module")
	database, _ := cmd.Flags().GetString("database")
	starterVersion, _ := cmd.Flags().GetString("starter-version")
	javaVersion, _ := cmd.Flags().GetString("java-version")
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	return domain.ProjectRequest{
		Group:          group,
		Artifact:       artifact,
		ProjectVersion: projectVersion,
		Modules:        modules,
		Database:       database,
		StarterVersion: starterVersion,
		JavaVersion:    javaVersion,
		Username:       username,
		Password:       password,
	}
}
