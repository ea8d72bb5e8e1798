package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingInput is returned when a required input is blank or not supplied.
	ErrMissingInput = zerr.New("input required and not supplied")

	// ErrProbeFailed is returned when the cache probe reported a terminal failure.
	ErrProbeFailed = zerr.New("cache probe failed")

	// ErrUnknownBackend is returned when the configured cache backend is not supported.
	ErrUnknownBackend = zerr.New("unknown cache backend")

	// ErrInvalidConfig is returned when the configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCacheServiceURLMissing is returned when the Actions cache service URL is not configured.
	ErrCacheServiceURLMissing = zerr.New("Cache Service Url not found, unable to restore cache.")

	// ErrCacheServiceRequestFailed is returned when the request to the cache service cannot be made.
	ErrCacheServiceRequestFailed = zerr.New("cache service request failed")

	// ErrCacheServiceStatus is returned when the cache service answers with a non-success status.
	ErrCacheServiceStatus = zerr.New("Cache service responded with an unexpected status")

	// ErrCacheServiceInvalidResponse is returned when the cache service answers with a body that is not JSON.
	ErrCacheServiceInvalidResponse = zerr.New("cache service returned an invalid response")

	// ErrCacheNotFound is returned when the cache service reports an entry without an archive location.
	ErrCacheNotFound = zerr.New("Cache not found.")

	// ErrStoreReadFailed is returned when a stored cache entry cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache entry")

	// ErrStoreUnmarshalFailed is returned when a stored cache entry cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cache entry")

	// ErrStoreMarshalFailed is returned when a cache entry cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal cache entry")

	// ErrStoreCreateFailed is returned when the store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache store directory")

	// ErrStoreWriteFailed is returned when a cache entry cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache entry")

	// ErrBackendConnectFailed is returned when a remote backend cannot be reached.
	ErrBackendConnectFailed = zerr.New("failed to connect to cache backend")

	// ErrBackendLookupFailed is returned when a remote backend fails to answer a lookup.
	ErrBackendLookupFailed = zerr.New("cache backend lookup failed")

	// ErrOutputWriteFailed is returned when a step output cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write step output")

	// ErrInvalidOutput is returned when an output name or value cannot be encoded.
	ErrInvalidOutput = zerr.New("invalid step output")
)
