package versions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"

	"github.com/bpmlabs/igniter/internal/core/domain"
	"github.com/bpmlabs/igniter/internal/core/ports"
)

// fetchTimeout bounds a single catalog download.
const fetchTimeout = 30 * time.Second

// Updater implements ports.VersionUpdater by downloading the published
// catalog and atomically replacing the local file. Concurrent refreshes
// are safe: each one writes to its own temp file and the rename is atomic,
// so readers always observe a complete document.
type Updater struct {
	url    string
	path   string
	client *http.Client
	logger ports.Logger
}

// NewUpdater creates an Updater that downloads from url and writes to path.
func NewUpdater(url, path string, logger ports.Logger) *Updater {
	return &Updater{
		url:    url,
		path:   path,
		client: &http.Client{Timeout: fetchTimeout},
		logger: logger,
	}
}

// Refresh downloads the catalog and replaces the local copy. The payload
// is validated before the swap so a bad download never clobbers a working
// catalog.
func (u *Updater) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.url, nil)
	if err != nil {
		return errors.Join(domain.ErrVersionsRefresh, err)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrVersionsRefresh, err), "url", u.url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return zerr.With(zerr.Wrap(domain.ErrVersionsRefresh, ""), "status", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Join(domain.ErrVersionsRefresh, err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return errors.Join(domain.ErrVersionsRefresh, domain.ErrVersionsParse, err)
	}

	if err := u.writeAtomic(data); err != nil {
		return errors.Join(domain.ErrVersionsRefresh, err)
	}

	u.logger.Info(fmt.Sprintf("refreshed version catalog (%d versions)", len(file.StarterVersions)))
	return nil
}

// writeAtomic stages the payload in a temp file next to the target and
// renames it into place.
func (u *Updater) writeAtomic(data []byte) error {
	dir := filepath.Dir(u.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(u.path)+".*")
	if err != nil {
		return zerr.Wrap(err, "failed to stage catalog file")
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write staged catalog")
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to set catalog permissions")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close staged catalog")
	}

	if err := os.Rename(tmp.Name(), u.path); err != nil {
		return zerr.Wrap(err, "failed to swap catalog file")
	}
	return nil
}
