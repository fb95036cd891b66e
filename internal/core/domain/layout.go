package domain

import (
	"path"
	"strings"
)

// File names of the artifacts rendered into every generated project.
const (
	ApplicationFileName = "Application.java"
	ConfigFileName      = "application.yaml"
	BuildFileName       = "pom.xml"
)

// VersionsFileName is the catalog file read by the version source and
// written by the version updater.
const VersionsFileName = "versions.json"

// Directory layout inside a generated project.
const (
	sourceDir    = "src/main/java"
	resourcesDir = "src/main/resources"
)

// FilePerm is the permission for files the generator writes on the host
// side, and the mode recorded on archive entries.
const FilePerm = 0o644

// ArchiveEntry is one file inside a generated archive. Entries are packed
// in the order they are produced.
type ArchiveEntry struct {
	Path string
	Body []byte
}

// GeneratedFiles lists the renderable artifact names in archive order.
func GeneratedFiles() []string {
	return []string{ApplicationFileName, ConfigFileName, BuildFileName}
}

// GroupPath converts a dotted group identifier into its directory form.
func GroupPath(group string) string {
	return strings.ReplaceAll(group, ".", "/")
}

// ApplicationSourcePath returns the archive path of the application entry
// point, rooted at the artifact directory and nested under the group's
// package directories.
func ApplicationSourcePath(artifact, group string) string {
	return path.Join(artifact, sourceDir, GroupPath(group), ApplicationFileName)
}

// ConfigFilePath returns the archive path of the runtime configuration.
func ConfigFilePath(artifact string) string {
	return path.Join(artifact, resourcesDir, ConfigFileName)
}

// BuildFilePath returns the archive path of the build descriptor.
func BuildFilePath(artifact string) string {
	return path.Join(artifact, BuildFileName)
}

// ArchivePath returns the archive path for the named artifact file.
func ArchivePath(name, artifact, group string) (string, bool) {
	switch name {
	case ApplicationFileName:
		return ApplicationSourcePath(artifact, group), true
	case ConfigFileName:
		return ConfigFilePath(artifact), true
	case BuildFileName:
		return BuildFilePath(artifact), true
	default:
		return "", false
	}
}
