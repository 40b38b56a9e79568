// Package storage defines the journal file-system abstraction.
package storage

import "github.com/tilkit/til/internal/models"

// Provider is the interface for journal file operations. All paths are
// relative to the journal root.
type Provider interface {
	// List returns metadata for every .md file under dir.
	List(dir string) ([]models.EntryMetadata, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically writes content to path, creating parent directories.
	Write(path string, content []byte) error
	// Delete removes the file at path.
	Delete(path string) error
	// Exists reports whether a regular file exists at path.
	Exists(path string) (bool, error)
}
