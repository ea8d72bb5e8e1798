package actions_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cacheprobe/internal/adapters/actions"
	"go.trai.ch/cacheprobe/internal/core/domain"
)

const nodeModulesVersion = "273877e14fd65d270b87a198edbfa2db5a43de567c9a548d2a2505b408befe24"

func newTestClient(t *testing.T, handler http.HandlerFunc) *actions.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := domain.ActionsConfig{
		URL:         server.URL + "/",
		Token:       "runtime-token",
		Compression: "zstd",
	}
	return actions.NewClient(cfg,
		actions.WithHTTPClient(server.Client()),
		actions.WithGOOSForTest("linux"),
	)
}

func TestClient_Lookup_Hit(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/_apis/artifactcache/cache", r.URL.Path)
		assert.Equal(t, "npm-linux-abc", r.URL.Query().Get("keys"))
		assert.Equal(t, nodeModulesVersion, r.URL.Query().Get("version"))
		assert.Equal(t, "application/json;api-version=6.0-preview.1", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer runtime-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cacheKey": "npm-linux-abc",
			"scope": "refs/heads/main",
			"creationTime": "2026-01-02T03:04:05Z",
			"archiveLocation": "https://blob.example/archive.tzst"
		}`))
	})

	entry, err := client.Lookup(context.Background(), []string{"node_modules"}, "npm-linux-abc")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "npm-linux-abc", entry.Key)
	assert.Equal(t, "refs/heads/main", entry.Scope)
	assert.Equal(t, "https://blob.example/archive.tzst", entry.Location)
	assert.Equal(t, nodeModulesVersion, entry.Version)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), entry.CreatedAt.UTC())
}

func TestClient_Lookup_EscapesKey(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key with spaces&more", r.URL.Query().Get("keys"))
		w.WriteHeader(http.StatusNoContent)
	})

	entry, err := client.Lookup(context.Background(), []string{"node_modules"}, "key with spaces&more")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestClient_Lookup_NoContentIsMiss(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	entry, err := client.Lookup(context.Background(), []string{"node_modules"}, "npm-linux-abc")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestClient_Lookup_ErrorStatus(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	entry, err := client.Lookup(context.Background(), []string{"node_modules"}, "npm-linux-abc")
	require.Error(t, err)
	assert.Nil(t, entry)
	assert.EqualError(t, err, "Cache service responded with 503")
	assert.ErrorIs(t, err, domain.ErrCacheServiceStatus)
}

func TestClient_Lookup_MissingArchiveLocation(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"cacheKey": "npm-linux-abc"}`))
	})

	entry, err := client.Lookup(context.Background(), []string{"node_modules"}, "npm-linux-abc")
	require.Error(t, err)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, domain.ErrCacheNotFound)
}

func TestClient_Lookup_InvalidJSON(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.Lookup(context.Background(), []string{"node_modules"}, "npm-linux-abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheServiceInvalidResponse)
}

func TestClient_Lookup_MissingURL(t *testing.T) {
	t.Parallel()

	client := actions.NewClient(domain.ActionsConfig{})
	_, err := client.Lookup(context.Background(), []string{"node_modules"}, "npm-linux-abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheServiceURLMissing)
}

func TestClient_Lookup_ContextCanceled(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Lookup(ctx, []string{"node_modules"}, "npm-linux-abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCacheServiceRequestFailed.Error())
}

func TestVersion(t *testing.T) {
	tests := []struct {
		name        string
		paths       []string
		compression string
		crossOS     bool
		goos        string
		want        string
	}{
		{
			name:        "linux with zstd",
			paths:       []string{"node_modules"},
			compression: "zstd",
			goos:        "linux",
			want:        nodeModulesVersion,
		},
		{
			name:        "windows adds marker",
			paths:       []string{"node_modules"},
			compression: "zstd",
			goos:        "windows",
			want:        "d347d72c42c1fedbbfe4b43ea8e0de418be9553ac4cc9bf3393e4856a99d7d3b",
		},
		{
			name:        "windows cross-os omits marker",
			paths:       []string{"node_modules"},
			compression: "zstd",
			crossOS:     true,
			goos:        "windows",
			want:        nodeModulesVersion,
		},
		{
			name:  "no compression",
			paths: []string{"node_modules"},
			goos:  "darwin",
			want:  "b3e0c6cb5ecf32614eeb2997d905b9c297046d7cbf69062698f25b14b4cb0985",
		},
		{
			name:        "multiple paths keep order",
			paths:       []string{"a/", "b/"},
			compression: "gzip",
			goos:        "linux",
			want:        "56b5d0e9313d41ba481747caf1b3d09dcfa1549bcfc2abc4793de18ecd6f72d0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, actions.Version(tt.paths, tt.compression, tt.crossOS, tt.goos))
		})
	}
}
