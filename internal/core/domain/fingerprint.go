package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a stable identifier for an ordered path set.
func Fingerprint(paths []string) string {
	hasher := xxhash.New()
	for _, p := range paths {
		_, _ = hasher.WriteString(p)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}

// EntryID returns an identifier for a key and path set that is safe to use
// as a file name or key-value store key.
func EntryID(key string, paths []string) string {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(key)
	_, _ = hasher.Write([]byte{0}) // Separator
	for _, p := range paths {
		_, _ = hasher.WriteString(p)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator
	return fmt.Sprintf("%016x", hasher.Sum64())
}
