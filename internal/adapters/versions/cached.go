package versions

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"

	"github.com/bpmlabs/igniter/internal/core/domain"
	"github.com/bpmlabs/igniter/internal/core/ports"
)

// CachedSource keeps the last loaded catalog in memory for serving.
// Concurrent loads share the cached value; a cache miss collapses
// concurrent reloads into a single read of the underlying source.
// Watch invalidates the cache when the backing file changes on disk.
type CachedSource struct {
	source ports.VersionSource
	path   string
	logger ports.Logger

	mu      sync.RWMutex
	catalog *domain.VersionCatalog

	group singleflight.Group
}

// NewCachedSource wraps source with an in-memory cache over the catalog
// file at path.
func NewCachedSource(source ports.VersionSource, path string, logger ports.Logger) *CachedSource {
	return &CachedSource{
		source: source,
		path:   path,
		logger: logger,
	}
}

// Load returns the cached catalog, reading through to the underlying
// source on a miss. Concurrent misses share a single underlying read.
func (c *CachedSource) Load(ctx context.Context) (*domain.VersionCatalog, error) {
	c.mu.RLock()
	catalog := c.catalog
	c.mu.RUnlock()
	if catalog != nil {
		return catalog, nil
	}

	v, err, _ := c.group.Do("catalog", func() (any, error) {
		catalog, err := c.source.Load(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.catalog = catalog
		c.mu.Unlock()
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.VersionCatalog), nil
}

// Invalidate drops the cached catalog. The next Load rereads the source.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.catalog = nil
	c.mu.Unlock()
}

// Watch blocks until ctx is done, invalidating the cache whenever the
// backing catalog file is written, replaced or removed. The parent
// directory is watched because atomic updates swap the file inode.
func (c *CachedSource) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create catalog watcher")
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(filepath.Dir(c.path)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch catalog directory"), "path", c.path)
	}

	target := filepath.Base(c.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			c.Invalidate()
			c.logger.Info("version catalog changed on disk, cache invalidated")
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.logger.Warn(fmt.Sprintf("catalog watcher: %v", watchErr))
		}
	}
}
