//go:build sqlite_fts5

package index

import (
	"strings"
	"testing"
	"time"
)

func TestFTSSearchSnippets(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertEntry(EntryRow{
		Path:      "go/2025-07-20.md",
		Category:  "go",
		Date:      mustDate(t, "2025-07-20"),
		Title:     "Worker pools",
		Checksum:  "1",
		Tags:      []string{"concurrency"},
		UpdatedAt: time.Now(),
	}, "A bounded worker pool drains a channel of jobs until it is closed.")

	hits, err := db.Search("worker", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(hits))
	}
	if !strings.Contains(hits[0].Snippet, "<b>worker</b>") {
		t.Errorf("snippet = %q, want highlighted match", hits[0].Snippet)
	}
}

func TestFTSSearchByTag(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertEntry(EntryRow{
		Path:      "go/2025-07-20.md",
		Category:  "go",
		Date:      mustDate(t, "2025-07-20"),
		Title:     "Generics",
		Checksum:  "1",
		Tags:      []string{"typeparams"},
		UpdatedAt: time.Now(),
	}, "Constraints and type sets.")

	hits, err := db.Search("typeparams", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 {
		t.Errorf("hits = %d, want 1", len(hits))
	}
}
