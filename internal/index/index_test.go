package index

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/tilkit/til/internal/storage"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "til-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM entries`).Scan(&count); err != nil {
		t.Fatalf("entries table missing: %v", err)
	}
}

func TestUpsertAndGetChecksum(t *testing.T) {
	db := testDB(t)
	row := EntryRow{
		Path:      "go/2025-07-20.md",
		Category:  "go",
		Date:      mustDate(t, "2025-07-20"),
		Title:     "TIL - 2025-07-20",
		Checksum:  "abc123",
		Tags:      []string{"go", "context"},
		UpdatedAt: time.Now(),
	}
	if err := db.UpsertEntry(row, "Learned about context cancellation."); err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}
	cs, err := db.GetChecksum("go/2025-07-20.md")
	if err != nil {
		t.Fatalf("GetChecksum: %v", err)
	}
	if cs != "abc123" {
		t.Errorf("checksum = %q, want %q", cs, "abc123")
	}
}

func TestGetEntry(t *testing.T) {
	db := testDB(t)
	want := EntryRow{
		Path:      "go/2025-07-20.md",
		Category:  "go",
		Date:      mustDate(t, "2025-07-20"),
		Title:     "Contexts",
		Checksum:  "1",
		Tags:      []string{"go"},
		UpdatedAt: time.Now(),
	}
	_ = db.UpsertEntry(want, "body")

	got, err := db.GetEntry("go/2025-07-20.md")
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if got == nil {
		t.Fatal("GetEntry = nil")
	}
	if got.Category != "go" || !got.Date.Equal(want.Date) || got.Title != "Contexts" {
		t.Errorf("GetEntry = %+v", got)
	}

	missing, err := db.GetEntry("nope.md")
	if err != nil {
		t.Fatalf("GetEntry missing: %v", err)
	}
	if missing != nil {
		t.Errorf("GetEntry missing = %+v, want nil", missing)
	}
}

func TestDeleteEntry(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertEntry(EntryRow{Path: "go/2025-07-20.md", Checksum: "x", Tags: []string{}, UpdatedAt: time.Now()}, "body")

	if err := db.DeleteEntry("go/2025-07-20.md"); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	cs, _ := db.GetChecksum("go/2025-07-20.md")
	if cs != "" {
		t.Errorf("deleted entry still has checksum %q", cs)
	}
}

func TestUpsertUpdatesExisting(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertEntry(EntryRow{Path: "go/2025-07-20.md", Title: "Old", Checksum: "1", Tags: []string{}, UpdatedAt: now}, "old body")
	_ = db.UpsertEntry(EntryRow{Path: "go/2025-07-20.md", Title: "New", Checksum: "2", Tags: []string{"new"}, UpdatedAt: now}, "new body")

	cs, _ := db.GetChecksum("go/2025-07-20.md")
	if cs != "2" {
		t.Errorf("checksum = %q, want %q", cs, "2")
	}
	row, _ := db.GetEntry("go/2025-07-20.md")
	if row.Title != "New" {
		t.Errorf("title = %q", row.Title)
	}
}

func TestDates(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertEntry(EntryRow{Path: "go/2025-07-20.md", Category: "go", Date: mustDate(t, "2025-07-20"), Tags: []string{}, UpdatedAt: now}, "a")
	_ = db.UpsertEntry(EntryRow{Path: "kotlin/2025-07-20.md", Category: "kotlin", Date: mustDate(t, "2025-07-20"), Tags: []string{}, UpdatedAt: now}, "b")
	_ = db.UpsertEntry(EntryRow{Path: "go/2025-07-18.md", Category: "go", Date: mustDate(t, "2025-07-18"), Tags: []string{}, UpdatedAt: now}, "c")
	_ = db.UpsertEntry(EntryRow{Path: "2025-07-Links.md", Tags: []string{}, UpdatedAt: now}, "links file, no date")

	dates, err := db.Dates()
	if err != nil {
		t.Fatalf("Dates: %v", err)
	}
	if len(dates) != 2 {
		t.Fatalf("len = %d, want 2 (deduped, dated only)", len(dates))
	}
	if !dates[0].Equal(mustDate(t, "2025-07-18")) || !dates[1].Equal(mustDate(t, "2025-07-20")) {
		t.Errorf("dates = %v", dates)
	}
}

func TestListEntries(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertEntry(EntryRow{Path: "go/2025-07-20.md", Category: "go", Date: mustDate(t, "2025-07-20"), Tags: []string{"ctx"}, UpdatedAt: now}, "a")
	_ = db.UpsertEntry(EntryRow{Path: "go/2025-07-21.md", Category: "go", Date: mustDate(t, "2025-07-21"), Tags: []string{}, UpdatedAt: now}, "b")
	_ = db.UpsertEntry(EntryRow{Path: "kotlin/2025-07-19.md", Category: "kotlin", Date: mustDate(t, "2025-07-19"), Tags: []string{}, UpdatedAt: now}, "c")

	rows, total, err := db.ListEntries(10, 0, "", "")
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if total != 3 || len(rows) != 3 {
		t.Fatalf("total = %d, len = %d", total, len(rows))
	}
	// Newest date first.
	if rows[0].Path != "go/2025-07-21.md" {
		t.Errorf("rows[0] = %q", rows[0].Path)
	}

	rows, total, err = db.ListEntries(10, 0, "go", "")
	if err != nil {
		t.Fatalf("ListEntries category: %v", err)
	}
	if total != 2 {
		t.Errorf("category total = %d", total)
	}

	rows, total, err = db.ListEntries(10, 0, "", "ctx")
	if err != nil {
		t.Fatalf("ListEntries tag: %v", err)
	}
	if total != 1 || rows[0].Path != "go/2025-07-20.md" {
		t.Errorf("tag filter: total = %d, rows = %v", total, rows)
	}
}

func TestGetChecksum_NotFound(t *testing.T) {
	db := testDB(t)
	cs, err := db.GetChecksum("nonexistent.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs != "" {
		t.Errorf("expected empty checksum, got %q", cs)
	}
}

func TestSearch_Basic(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertEntry(EntryRow{Path: "go/2025-07-20.md", Category: "go", Date: mustDate(t, "2025-07-20"), Title: "Goroutine leaks", Checksum: "1", Tags: []string{}, UpdatedAt: now},
		"Found a goroutine leak caused by an unbuffered channel.")
	_ = db.UpsertEntry(EntryRow{Path: "kotlin/2025-07-21.md", Category: "kotlin", Date: mustDate(t, "2025-07-21"), Title: "Coroutines", Checksum: "2", Tags: []string{}, UpdatedAt: now},
		"Structured concurrency with coroutine scopes.")

	hits, err := db.Search("goroutine", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(hits))
	}
	if hits[0].Path != "go/2025-07-20.md" {
		t.Errorf("hit = %q", hits[0].Path)
	}
}

func TestSyncIndexesAndPrunes(t *testing.T) {
	db := testDB(t)
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	_ = store.Write("go/2025-07-20.md", []byte("# TIL - 2025-07-20\n\n- channels #go\n"))
	_ = store.Write("2025-07-Links.md", []byte("#### 2025-07-20\n- [ ] https://go.dev\n"))

	if err := Sync(db, store, logger); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	row, _ := db.GetEntry("go/2025-07-20.md")
	if row == nil {
		t.Fatal("entry not indexed")
	}
	if row.Category != "go" {
		t.Errorf("category = %q", row.Category)
	}
	if !row.Date.Equal(mustDate(t, "2025-07-20")) {
		t.Errorf("date = %v", row.Date)
	}
	links, _ := db.GetEntry("2025-07-Links.md")
	if links == nil {
		t.Fatal("links file not indexed")
	}
	if !links.Date.IsZero() {
		t.Errorf("links file has date %v, want zero", links.Date)
	}

	// Delete on disk; sync should prune the index.
	_ = store.Delete("go/2025-07-20.md")
	if err := Sync(db, store, logger); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	row, _ = db.GetEntry("go/2025-07-20.md")
	if row != nil {
		t.Error("stale entry not pruned")
	}
}

func TestSyncStampsUpdatedAt(t *testing.T) {
	db := testDB(t)
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	_ = store.Write("go/2025-07-21.md", []byte("# TIL - 2025-07-21\n\n- defer order\n"))

	if err := Sync(db, store, logger); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	row, _ := db.GetEntry("go/2025-07-21.md")
	if row == nil {
		t.Fatal("entry not indexed")
	}
	// Entries indexed from disk carry the file mtime, not the zero time.
	if row.UpdatedAt.IsZero() {
		t.Error("updated_at is zero")
	}
	metas, err := store.List("")
	if err != nil {
		t.Fatal(err)
	}
	if len(metas) != 1 {
		t.Fatalf("metas = %d", len(metas))
	}
	if !row.UpdatedAt.Equal(metas[0].UpdatedAt) {
		t.Errorf("updated_at = %v, want file mtime %v", row.UpdatedAt, metas[0].UpdatedAt)
	}
}

func TestCategoryOf(t *testing.T) {
	cases := map[string]string{
		"go/2025-07-20.md":        "go",
		"go/sub/2025-07-20.md":    "go",
		"2025-07-Links.md":        "",
		"README.md":               "",
		"kotlin/2025-07-01.md":    "kotlin",
	}
	for path, want := range cases {
		if got := categoryOf(path); got != want {
			t.Errorf("categoryOf(%q) = %q, want %q", path, got, want)
		}
	}
}
