package actions

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.trai.ch/cacheprobe/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// CacheURLEnv is the runner variable holding the cache service base URL.
	CacheURLEnv = "ACTIONS_CACHE_URL"
	// RuntimeTokenEnv is the runner variable holding the cache service token.
	RuntimeTokenEnv = "ACTIONS_RUNTIME_TOKEN"

	acceptHeader = "application/json;api-version=6.0-preview.1"
	userAgent    = "actions/cache"
	versionSalt  = "1.0"
)

// StatusError is returned when the cache service answers with a status that
// is neither 204 nor 2xx.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Cache service responded with %d", e.StatusCode)
}

// Is reports whether target is domain.ErrCacheServiceStatus.
func (e *StatusError) Is(target error) bool {
	return target == domain.ErrCacheServiceStatus
}

// Client implements ports.CacheLookup against the GitHub Actions cache service.
type Client struct {
	baseURL     string
	token       string
	compression string
	crossOS     bool
	goos        string
	http        *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.http = c
	}
}

// NewClient creates a cache service client from cfg.
func NewClient(cfg domain.ActionsConfig, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     cfg.URL,
		token:       cfg.Token,
		compression: cfg.Compression,
		crossOS:     cfg.CrossOS,
		goos:        runtime.GOOS,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup queries the cache service for an entry matching key and paths.
func (c *Client) Lookup(ctx context.Context, paths []string, key string) (*domain.CacheEntry, error) {
	if c.baseURL == "" {
		return nil, domain.ErrCacheServiceURLMissing
	}

	version := Version(paths, c.compression, c.crossOS, c.goos)
	endpoint := c.resourceURL("cache?keys=" + url.QueryEscape(key) + "&version=" + version)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheServiceRequestFailed.Error()), "url", endpoint)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheServiceRequestFailed.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheServiceRequestFailed.Error())
	}

	return parseEntry(body, version)
}

func (c *Client) resourceURL(resource string) string {
	return c.baseURL + "_apis/artifactcache/" + resource
}

func parseEntry(body []byte, version string) (*domain.CacheEntry, error) {
	if len(body) == 0 {
		return nil, domain.ErrCacheNotFound
	}
	if !gjson.ValidBytes(body) {
		return nil, domain.ErrCacheServiceInvalidResponse
	}

	result := gjson.ParseBytes(body)
	location := result.Get("archiveLocation").String()
	if location == "" {
		return nil, domain.ErrCacheNotFound
	}

	entry := &domain.CacheEntry{
		Key:      result.Get("cacheKey").String(),
		Version:  version,
		Scope:    result.Get("scope").String(),
		Location: location,
	}
	if v := result.Get("cacheVersion"); v.Exists() {
		entry.Version = v.String()
	}
	if created := result.Get("creationTime"); created.Exists() {
		if ts, err := time.Parse(time.RFC3339, created.String()); err == nil {
			entry.CreatedAt = ts
		}
	}
	return entry, nil
}

// Version computes the cache version the service matches entries against:
// the sha256 of the paths, the compression method, a windows-only marker and
// a fixed salt joined by "|".
func Version(paths []string, compression string, crossOS bool, goos string) string {
	components := make([]string, 0, len(paths)+3)
	components = append(components, paths...)
	if compression != "" {
		components = append(components, compression)
	}
	if goos == "windows" && !crossOS {
		components = append(components, "windows-only")
	}
	components = append(components, versionSalt)

	sum := sha256.Sum256([]byte(strings.Join(components, "|")))
	return hex.EncodeToString(sum[:])
}
