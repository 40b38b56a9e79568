package index

import "time"

// EntryIndex defines the interface for entry indexing operations.
// Consumers should depend on this interface rather than the concrete *DB
// type to facilitate testing with mocks.
type EntryIndex interface {
	UpsertEntry(e EntryRow, body string) error
	DeleteEntry(path string) error
	GetChecksum(path string) (string, error)
	GetEntry(path string) (*EntryRow, error)
	ListEntries(limit, offset int, category, tag string) ([]EntryRow, int, error)
	Search(query string, limit int) ([]SearchResult, error)
	Dates() ([]time.Time, error)
	AllPaths() (map[string]struct{}, error)
	AllChecksums() (map[string]string, error)
	Close() error
}

// Verify *DB satisfies EntryIndex at compile time.
var _ EntryIndex = (*DB)(nil)
