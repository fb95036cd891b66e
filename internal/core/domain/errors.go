package domain

import "go.trai.ch/zerr"

var (
	// ErrVersionsUnavailable is returned when the version catalog cannot be
	// read, including after the single refresh retry.
	ErrVersionsUnavailable = zerr.New("version catalog unavailable")

	// ErrVersionsParse is returned when the version catalog file exists but
	// does not contain a valid catalog document.
	ErrVersionsParse = zerr.New("malformed version catalog")

	// ErrVersionsRefresh is returned when fetching a fresh catalog from the
	// published source fails.
	ErrVersionsRefresh = zerr.New("version catalog refresh failed")

	// ErrEmptyCatalog is returned when the catalog holds no versions and a
	// default selection is needed.
	ErrEmptyCatalog = zerr.New("version catalog is empty")

	// ErrUnknownModule is returned when a requested module has no dependency
	// mapping.
	ErrUnknownModule = zerr.New("unknown module")

	// ErrUnknownDatabase is returned when a requested database has no driver
	// mapping.
	ErrUnknownDatabase = zerr.New("unknown database")

	// ErrUnknownStarterVersion is returned when the requested starter version
	// is not present in the catalog.
	ErrUnknownStarterVersion = zerr.New("unknown starter version")

	// ErrUnknownFile is returned when a single-file render names an artifact
	// the generator does not produce.
	ErrUnknownFile = zerr.New("unknown project file")

	// ErrRender is returned when template execution fails.
	ErrRender = zerr.New("artifact rendering failed")

	// ErrArchive is returned when packing rendered artifacts into the
	// download archive fails.
	ErrArchive = zerr.New("archive assembly failed")
)
