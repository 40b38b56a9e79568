// Package models defines the domain types shared across the til packages.
package models

import "time"

// EntryMetadata is a lightweight representation of a journal file,
// returned by storage list operations.
type EntryMetadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}
