// Package domain contains the core types of the cache probe.
package domain

import "time"

// CacheEntry is a record of previously stored artifacts for a key and path set.
// The probe only consumes its existence; backends fill whatever fields they know.
type CacheEntry struct {
	Key       string    `json:"key,omitzero"`
	Version   string    `json:"version,omitzero"`
	Scope     string    `json:"scope,omitzero"`
	Location  string    `json:"location,omitzero"`
	Size      int64     `json:"size,omitzero"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Outcome is the result of a successful probe.
type Outcome struct {
	Key string
	Hit bool
}
