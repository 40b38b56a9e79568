package index

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/tilkit/til/internal/storage"
)

// watcherTestEnv sets up a journal dir, storage, and DB for watcher tests.
func watcherTestEnv(t *testing.T) (string, storage.Provider, *DB) {
	t.Helper()
	journalDir := t.TempDir()
	store, err := storage.NewFS(journalDir)
	if err != nil {
		t.Fatal(err)
	}
	dbFile, err := os.CreateTemp("", "til-watcher-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })
	db, err := Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return journalDir, store, db
}

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func TestWatcher_NewEntryIndexed(t *testing.T) {
	journalDir, store, db := watcherTestEnv(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var events []string

	go Watch(ctx, db, store, journalDir, logger, func(kind, path string) {
		mu.Lock()
		events = append(events, kind+":"+path)
		mu.Unlock()
	})

	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(journalDir, "2025-07-20.md"), []byte("# TIL - 2025-07-20"), 0o644)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		cs, _ := db.GetChecksum("2025-07-20.md")
		return cs != ""
	}, "new entry not indexed by watcher")

	eventually(t, 2*time.Second, 50*time.Millisecond, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, e := range events {
			if e == "created:2025-07-20.md" {
				return true
			}
		}
		return false
	}, "created event not delivered")
}

func TestWatcher_NewCategoryDirIndexed(t *testing.T) {
	journalDir, store, db := watcherTestEnv(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, db, store, journalDir, logger, nil)
	time.Sleep(100 * time.Millisecond)

	// Write through the provider: creates the category dir, then the file.
	if err := store.Write(filepath.Join("go", "2025-07-21.md"), []byte("# TIL - 2025-07-21")); err != nil {
		t.Fatal(err)
	}

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		cs, _ := db.GetChecksum(filepath.Join("go", "2025-07-21.md"))
		return cs != ""
	}, "entry in new category dir not indexed")
}

func TestWatcher_RemovePrunesIndex(t *testing.T) {
	journalDir, store, db := watcherTestEnv(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	_ = store.Write("2025-07-20.md", []byte("# TIL"))
	if err := Sync(db, store, logger); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, db, store, journalDir, logger, nil)
	time.Sleep(100 * time.Millisecond)

	_ = os.Remove(filepath.Join(journalDir, "2025-07-20.md"))

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		cs, _ := db.GetChecksum("2025-07-20.md")
		return cs == ""
	}, "removed entry not pruned from index")
}
