package domain

// Trace modes selectable in the server configuration.
const (
	TraceModeOff    = "off"
	TraceModeStdout = "stdout"
)

// Defaults for the server configuration.
const (
	DefaultListenAddr = ":8080"

	// DefaultCatalogURL is the published location of the starter version
	// catalog.
	DefaultCatalogURL = "https://start.camunda.com/versions.json"
)

// ServerConfig holds the settings for running the generator as an HTTP
// service. A zero value is not usable; obtain one through the config
// loader, which fills defaults for everything the file leaves out.
type ServerConfig struct {
	ListenAddr     string
	VersionsPath   string
	VersionsURL    string
	RefreshOnStart bool
	CORSOrigins    []string
	TraceMode      string
}

// DefaultServerConfig returns the configuration used when no config file
// is present.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		ListenAddr:   DefaultListenAddr,
		VersionsPath: VersionsFileName,
		VersionsURL:  DefaultCatalogURL,
		CORSOrigins:  []string{"*"},
		TraceMode:    TraceModeOff,
	}
}
