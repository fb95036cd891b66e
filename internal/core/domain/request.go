package domain

// Default values applied during request normalization. Each default fills
// its field independently: a request may mix explicit and defaulted fields.
const (
	DefaultModule         = "camunda-rest"
	DefaultGroup          = "com.example.workflow"
	DefaultDatabase       = "h2"
	DefaultArtifact       = "my-project"
	DefaultJavaVersion    = "12"
	DefaultUsername       = "demo"
	DefaultPassword       = "demo"
	DefaultProjectVersion = "1.0.0-SNAPSHOT"
)

// ProjectRequest describes a requested starter project. Every field may be
// empty on input; normalization fills the blanks before the request reaches
// any downstream stage, so later stages can rely on fully populated values.
type ProjectRequest struct {
	Group          string   `json:"group"`
	Artifact       string   `json:"artifact"`
	ProjectVersion string   `json:"projectVersion"`
	Modules        []string `json:"modules"`
	Database       string   `json:"database"`
	StarterVersion string   `json:"starterVersion"`
	JavaVersion    string   `json:"javaVersion"`
	Username       string   `json:"username"`
	Password       string   `json:"password"`
}
