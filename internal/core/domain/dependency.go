package domain

// Dependency is a single coordinate emitted into the generated build
// descriptor. An unpinned dependency inherits the version managed by the
// generated project's parent, which is distinct from carrying an empty
// version of its own.
type Dependency struct {
	Group    string `json:"group"`
	Artifact string `json:"artifact"`
	Version  string `json:"version,omitempty"`
	Pinned   bool   `json:"-"`
}

// NewDependency returns a dependency with a managed (unpinned) version.
func NewDependency(group, artifact string) Dependency {
	return Dependency{Group: group, Artifact: artifact}
}

// NewPinnedDependency returns a dependency pinned to an explicit version.
func NewPinnedDependency(group, artifact, version string) Dependency {
	return Dependency{Group: group, Artifact: artifact, Version: version, Pinned: true}
}
