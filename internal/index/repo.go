package index

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tilkit/til/internal/parser"
)

// EntryRow represents a row in the entries table. Date is zero for
// non-dated files such as monthly link files.
type EntryRow struct {
	Path      string
	Category  string
	Date      time.Time
	Title     string
	Checksum  string
	Tags      []string
	UpdatedAt time.Time
}

// SearchResult represents one search hit.
type SearchResult struct {
	Path    string
	Title   string
	Snippet string
}

func dateString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(parser.DateLayout)
}

func parseDateString(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(parser.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// UpsertEntry inserts or replaces an entry and its FTS row within a
// transaction.
func (db *DB) UpsertEntry(e EntryRow, body string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	tagsJSON, _ := json.Marshal(e.Tags)

	// Upsert entries table (includes body for fallback search).
	_, err = tx.Exec(`
		INSERT INTO entries (path, category, date, title, checksum, tags, body, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			category   = excluded.category,
			date       = excluded.date,
			title      = excluded.title,
			checksum   = excluded.checksum,
			tags       = excluded.tags,
			body       = excluded.body,
			updated_at = excluded.updated_at
	`, e.Path, e.Category, dateString(e.Date), e.Title, e.Checksum, string(tagsJSON), body, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("index: upsert entry: %w", err)
	}

	// FTS upsert (no-op when the sqlite_fts5 tag is absent).
	if err := ftsUpsert(tx, e.Path, e.Title, body, e.Tags); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteEntry removes an entry and its FTS row.
func (db *DB) DeleteEntry(path string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDelete(tx, path)
	_, _ = tx.Exec(`DELETE FROM entries WHERE path = ?`, path)

	return tx.Commit()
}

// GetChecksum returns the stored checksum for an entry, or empty string
// if not found.
func (db *DB) GetChecksum(path string) (string, error) {
	var cs string
	err := db.conn.QueryRow(`SELECT checksum FROM entries WHERE path = ?`, path).Scan(&cs)
	if err != nil {
		return "", nil // not found is fine
	}
	return cs, nil
}

// GetEntry returns a single row by path, or nil when absent.
func (db *DB) GetEntry(path string) (*EntryRow, error) {
	row := db.conn.QueryRow(`
		SELECT path, category, date, title, checksum, tags, updated_at
		FROM entries WHERE path = ?
	`, path)
	e, err := scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("index: get entry: %w", err)
	}
	return e, nil
}

// ListEntries returns a page of entries, newest date first, optionally
// filtered by category and tag, plus the total matching count.
func (db *DB) ListEntries(limit, offset int, category, tag string) ([]EntryRow, int, error) {
	if limit <= 0 {
		limit = 50
	}
	where := "1=1"
	args := []any{}
	if category != "" {
		where += " AND category = ?"
		args = append(args, category)
	}
	if tag != "" {
		// Tags are stored as a JSON array of strings.
		where += " AND tags LIKE ?"
		args = append(args, `%"`+tag+`"%`)
	}

	var total int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM entries WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("index: count entries: %w", err)
	}

	query := `
		SELECT path, category, date, title, checksum, tags, updated_at
		FROM entries WHERE ` + where + `
		ORDER BY date DESC, path ASC
		LIMIT ? OFFSET ?`
	rows, err := db.conn.Query(query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("index: list entries: %w", err)
	}
	defer rows.Close()

	var out []EntryRow
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *e)
	}
	return out, total, rows.Err()
}

// Dates returns the distinct civil dates that have at least one dated
// entry, ascending.
func (db *DB) Dates() ([]time.Time, error) {
	rows, err := db.conn.Query(`SELECT DISTINCT date FROM entries WHERE date != '' ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("index: dates: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		if d := parseDateString(s); !d.IsZero() {
			out = append(out, d)
		}
	}
	return out, rows.Err()
}

// AllPaths returns every indexed entry path.
func (db *DB) AllPaths() (map[string]struct{}, error) {
	rows, err := db.conn.Query(`SELECT path FROM entries`)
	if err != nil {
		return nil, fmt.Errorf("index: all paths: %w", err)
	}
	defer rows.Close()
	out := make(map[string]struct{})
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out[p] = struct{}{}
	}
	return out, rows.Err()
}

// AllChecksums returns path → checksum for every indexed entry.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM entries`)
	if err != nil {
		return nil, fmt.Errorf("index: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*EntryRow, error) {
	var e EntryRow
	var date, tagsJSON string
	if err := s.Scan(&e.Path, &e.Category, &date, &e.Title, &e.Checksum, &tagsJSON, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Date = parseDateString(date)
	if tagsJSON != "" {
		_ = json.Unmarshal([]byte(tagsJSON), &e.Tags)
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return &e, nil
}
