package versions_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bpmlabs/igniter/internal/adapters/versions"
	"github.com/bpmlabs/igniter/internal/core/domain"
)

func TestUpdaterRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), domain.VersionsFileName)
	updater := versions.NewUpdater(server.URL, path, quietLogger(ctrl))

	require.NoError(t, updater.Refresh(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, catalogJSON, string(data))
}

func TestUpdaterRefreshReplacesExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), domain.VersionsFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"starterVersions": []}`), 0o644))

	updater := versions.NewUpdater(server.URL, path, quietLogger(ctrl))
	require.NoError(t, updater.Refresh(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, catalogJSON, string(data))
}

func TestUpdaterRefreshFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "upstream error status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "payload is not a catalog",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("<html>maintenance</html>"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			stale := []byte(`{"starterVersions": []}`)
			path := filepath.Join(t.TempDir(), domain.VersionsFileName)
			require.NoError(t, os.WriteFile(path, stale, 0o644))

			updater := versions.NewUpdater(server.URL, path, quietLogger(ctrl))
			err := updater.Refresh(context.Background())
			require.ErrorIs(t, err, domain.ErrVersionsRefresh)

			// A failed refresh leaves the previous catalog untouched.
			data, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, stale, data)
		})
	}
}

func TestUpdaterRefreshUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	path := filepath.Join(t.TempDir(), domain.VersionsFileName)
	updater := versions.NewUpdater(server.URL, path, quietLogger(ctrl))

	err := updater.Refresh(context.Background())
	require.ErrorIs(t, err, domain.ErrVersionsRefresh)
	assert.NoFileExists(t, path)
}
