package versions_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bpmlabs/igniter/internal/adapters/versions"
	"github.com/bpmlabs/igniter/internal/core/domain"
	"github.com/bpmlabs/igniter/internal/core/ports/mocks"
)

func cachedCatalog() *domain.VersionCatalog {
	return domain.NewVersionCatalog(
		domain.StarterVersion{StarterVersion: "7.15.0", CamundaVersion: "7.15.0", SpringBootVersion: "2.4.3"},
	)
}

func TestCachedSourceLoadOnce(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockVersionSource(ctrl)
	source.EXPECT().Load(gomock.Any()).Return(cachedCatalog(), nil).Times(1)

	cached := versions.NewCachedSource(source, domain.VersionsFileName, quietLogger(ctrl))

	first, err := cached.Load(context.Background())
	require.NoError(t, err)
	second, err := cached.Load(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestCachedSourceInvalidate(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockVersionSource(ctrl)
	source.EXPECT().Load(gomock.Any()).Return(cachedCatalog(), nil).Times(2)

	cached := versions.NewCachedSource(source, domain.VersionsFileName, quietLogger(ctrl))

	_, err := cached.Load(context.Background())
	require.NoError(t, err)

	cached.Invalidate()

	_, err = cached.Load(context.Background())
	require.NoError(t, err)
}

func TestCachedSourceErrorNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockVersionSource(ctrl)
	gomock.InOrder(
		source.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrVersionsUnavailable),
		source.EXPECT().Load(gomock.Any()).Return(cachedCatalog(), nil),
	)

	cached := versions.NewCachedSource(source, domain.VersionsFileName, quietLogger(ctrl))

	_, err := cached.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrVersionsUnavailable)

	catalog, err := cached.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())
}

func TestCachedSourceWatchInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := filepath.Join(t.TempDir(), domain.VersionsFileName)
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0o644))

	var loads atomic.Int32
	source := mocks.NewMockVersionSource(ctrl)
	source.EXPECT().Load(gomock.Any()).DoAndReturn(
		func(context.Context) (*domain.VersionCatalog, error) {
			loads.Add(1)
			return cachedCatalog(), nil
		},
	).AnyTimes()

	cached := versions.NewCachedSource(source, path, quietLogger(ctrl))

	_, err := cached.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, int32(1), loads.Load())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- cached.Watch(ctx)
	}()

	// Give the watcher a beat to register, then rewrite the catalog file
	// and wait for the invalidation to land.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0o644))

	assert.Eventually(t, func() bool {
		_, loadErr := cached.Load(context.Background())
		return loadErr == nil && loads.Load() > 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestCachedSourceConcurrentLoadsShareOneRead(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)

		var calls atomic.Int32
		source := mocks.NewMockVersionSource(ctrl)
		source.EXPECT().Load(gomock.Any()).DoAndReturn(
			func(context.Context) (*domain.VersionCatalog, error) {
				calls.Add(1)
				time.Sleep(10 * time.Millisecond)
				return cachedCatalog(), nil
			},
		).AnyTimes()

		cached := versions.NewCachedSource(source, domain.VersionsFileName, quietLogger(ctrl))

		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				catalog, err := cached.Load(context.Background())
				assert.NoError(t, err)
				assert.Equal(t, 1, catalog.Len())
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})
}
