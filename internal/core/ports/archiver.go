package ports

import "github.com/bpmlabs/igniter/internal/core/domain"

// Archiver packs rendered artifacts into a downloadable archive.
//
//go:generate mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	// Pack writes the entries into a single archive in caller order and
	// returns the archive bytes. Output is byte-for-byte reproducible for
	// identical input.
	Pack(entries []domain.ArchiveEntry) ([]byte, error)
}
