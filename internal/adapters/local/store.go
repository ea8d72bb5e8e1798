// Package local implements a file-per-entry cache store on disk.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cacheprobe/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.CacheLookup using a file-per-entry strategy.
// Each entry lives at <dir>/<EntryID>.json.
type Store struct {
	dir string
}

// NewStore creates a Store backed by the directory at dir.
// The directory is created lazily on the first Put.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Lookup implements ports.CacheLookup.
func (s *Store) Lookup(_ context.Context, paths []string, key string) (*domain.CacheEntry, error) {
	return s.Get(key, paths)
}

// Get retrieves the entry recorded for key and paths.
// Returns nil, nil if no entry exists.
func (s *Store) Get(key string, paths []string) (*domain.CacheEntry, error) {
	filename := s.filename(key, paths)
	//nolint:gosec // Path is constructed from the configured directory and a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "file", filename)
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "file", filename)
	}

	return &entry, nil
}

// Put records entry for entry.Key and paths.
func (s *Store) Put(paths []string, entry domain.CacheEntry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	filename := s.filename(entry.Key, paths)
	//nolint:gosec // Path is constructed from the configured directory and a hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) filename(key string, paths []string) string {
	return filepath.Join(s.dir, domain.EntryID(key, paths)+".json")
}
