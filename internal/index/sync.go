package index

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/tilkit/til/internal/checksum"
	"github.com/tilkit/til/internal/parser"
	"github.com/tilkit/til/internal/storage"
)

// Sync walks the journal and brings the index up to date:
//   - new/changed files are parsed and upserted
//   - files removed from disk are deleted from the index
func Sync(db *DB, store storage.Provider, logger *slog.Logger) error {
	metas, err := store.List("")
	if err != nil {
		return err
	}

	checksums, err := db.AllChecksums()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(metas))
	for _, m := range metas {
		disk[m.Path] = struct{}{}

		if checksums[m.Path] == m.Checksum {
			continue
		}

		data, err := store.Read(m.Path)
		if err != nil {
			logger.Warn("sync: read failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			continue
		}
		if err := indexFile(db, m.Path, data, m.UpdatedAt); err != nil {
			logger.Warn("sync: index failed", slog.String("path", m.Path), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: indexed", slog.String("path", m.Path))
		}
	}

	// Remove stale entries.
	for p := range checksums {
		if _, ok := disk[p]; !ok {
			if err := db.DeleteEntry(p); err != nil {
				logger.Warn("sync: delete failed", slog.String("path", p), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("path", p))
			}
		}
	}

	return nil
}

// indexFile parses data and upserts it into the DB. The category is the
// top-level directory; the date comes from a YYYY-MM-DD.md basename and
// stays zero for link files, digests, and the README. updatedAt is the
// file mtime for synced files and the observation time for watcher events.
func indexFile(db *DB, path string, data []byte, updatedAt time.Time) error {
	res, err := parser.Parse(data)
	if err != nil {
		return err
	}

	row := EntryRow{
		Path:      path,
		Category:  categoryOf(path),
		Title:     res.Title,
		Checksum:  checksum.Sum(data),
		Tags:      res.Tags,
		UpdatedAt: updatedAt,
	}
	if d, ok := parser.EntryDate(path); ok {
		row.Date = d
	}
	return db.UpsertEntry(row, res.Body)
}

func categoryOf(path string) string {
	dir := filepath.Dir(path)
	if dir == "." {
		return ""
	}
	// Only the top-level directory counts as the category.
	for {
		parent := filepath.Dir(dir)
		if parent == "." {
			return dir
		}
		dir = parent
	}
}
