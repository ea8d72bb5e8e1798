package domain

import "path/filepath"

const (
	// ProbeDirName is the name of the internal working directory.
	ProbeDirName = ".cacheprobe"

	// StoreDirName is the name of the local cache entry store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "cacheprobe.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Step input names.
const (
	InputKey     = "key"
	InputPaths   = "paths"
	InputBackend = "backend"
)

// Step output names.
const (
	OutputKey      = "key"
	OutputCacheHit = "cache-hit"
)

// DefaultStorePath returns the default path for the local cache entry store.
// It joins .cacheprobe and store.
func DefaultStorePath() string {
	return filepath.Join(ProbeDirName, StoreDirName)
}

// Log line prefixes for the probe result, followed by the key.
const (
	AvailablePrefix = "Cache AVAILABLE for input key: "
	MissingPrefix   = "Cache MISSING for input key: "
)
