// Package archive packs rendered artifacts into the downloadable zip.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"

	"go.trai.ch/zerr"

	"github.com/bpmlabs/igniter/internal/core/domain"
)

// Archiver implements ports.Archiver with reproducible zip output.
type Archiver struct{}

// New creates a new Archiver.
func New() *Archiver {
	return &Archiver{}
}

// Pack writes the entries into a single zip archive in caller order.
// Entry headers carry no timestamps, so packing the same entries twice
// yields byte-identical archives.
func (a *Archiver) Pack(entries []domain.ArchiveEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, entry := range entries {
		header := &zip.FileHeader{
			Name:   entry.Path,
			Method: zip.Deflate,
		}
		header.SetMode(domain.FilePerm)

		w, err := zw.CreateHeader(header)
		if err != nil {
			return nil, zerr.With(errors.Join(domain.ErrArchive, err), "path", entry.Path)
		}
		if _, err := w.Write(entry.Body); err != nil {
			return nil, zerr.With(errors.Join(domain.ErrArchive, err), "path", entry.Path)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, errors.Join(domain.ErrArchive, err)
	}
	return buf.Bytes(), nil
}
