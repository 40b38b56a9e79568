package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/tilkit/til/internal/apperr"
	"github.com/tilkit/til/internal/checksum"
	"github.com/tilkit/til/internal/index"
	"github.com/tilkit/til/internal/parser"
	"github.com/tilkit/til/internal/storage"
	"github.com/tilkit/til/internal/streak"
	"github.com/tilkit/til/internal/template"
)

// Service is the entry point for journal operations. The index is
// optional; when nil, created entries are simply not indexed and Dates
// falls back to a directory scan.
type Service struct {
	store     storage.Provider
	templates *template.Store
	idx       index.EntryIndex
	now       func() time.Time
}

// NewService wires the journal service. now may be nil for time.Now.
func NewService(store storage.Provider, templates *template.Store, idx index.EntryIndex, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, templates: templates, idx: idx, now: now}
}

// Today returns the current civil date.
func (s *Service) Today() time.Time {
	return streak.Day(s.now())
}

// CreateEntry renders templateID into a new entry file for (category,
// date) and returns its relative path. A zero date means today. Exists
// at the resolved path → apperr.ErrAlreadyExists wrapping the path, so
// the caller can still open the file.
func (s *Service) CreateEntry(category string, date time.Time, templateID string) (string, error) {
	if date.IsZero() {
		date = s.Today()
	} else {
		date = streak.Day(date)
	}

	path, err := EntryPath(category, date)
	if err != nil {
		return "", err
	}

	exists, err := s.store.Exists(path)
	if err != nil {
		return "", err
	}
	if exists {
		return path, fmt.Errorf("entry %s: %w", path, apperr.ErrAlreadyExists)
	}

	tpl, err := s.templates.Get(templateID)
	if err != nil {
		return "", err
	}
	content := template.Render(tpl, template.Vars{
		Date:     date.Format(parser.DateLayout),
		Category: category,
	})

	if err := s.store.Write(path, []byte(content)); err != nil {
		return "", err
	}
	if s.idx != nil {
		if err := s.indexEntry(path, []byte(content)); err != nil {
			return "", err
		}
	}
	return path, nil
}

// ReadEntry returns the raw content of the entry at path. A missing
// file is reported as apperr.ErrNotFound.
func (s *Service) ReadEntry(path string) ([]byte, error) {
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("entry %s: %w", path, apperr.ErrNotFound)
		}
		return nil, err
	}
	return data, nil
}

// Dates returns the deduplicated set of civil dates that have at least
// one entry. A date counts once no matter how many categories have an
// entry that day. With an index attached this is a single query;
// without one the journal directory is scanned.
func (s *Service) Dates() ([]time.Time, error) {
	if s.idx != nil {
		return s.idx.Dates()
	}
	metas, err := s.store.List("")
	if err != nil {
		return nil, err
	}
	seen := make(map[time.Time]struct{})
	var out []time.Time
	for _, m := range metas {
		d, ok := parser.EntryDate(m.Path)
		if !ok {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out, nil
}

// Stats scans the journal and computes streak statistics anchored on
// today.
func (s *Service) Stats() (streak.Stats, error) {
	dates, err := s.Dates()
	if err != nil {
		return streak.Stats{}, err
	}
	return streak.Compute(dates, s.now()), nil
}

// Grass scans the journal and buckets the last weeks weeks into the
// grass grid.
func (s *Service) Grass(weeks int) ([]streak.Week, error) {
	dates, err := s.Dates()
	if err != nil {
		return nil, err
	}
	return streak.Grid(dates, s.now(), weeks), nil
}

// Templates exposes the template store for the CLI layer.
func (s *Service) Templates() *template.Store {
	return s.templates
}

func (s *Service) indexEntry(path string, data []byte) error {
	res, err := parser.Parse(data)
	if err != nil {
		return err
	}
	row := index.EntryRow{
		Path:      path,
		Title:     res.Title,
		Checksum:  checksum.Sum(data),
		Tags:      res.Tags,
		UpdatedAt: s.now(),
	}
	if i := strings.IndexByte(path, '/'); i > 0 {
		row.Category = path[:i]
	}
	if d, ok := parser.EntryDate(path); ok {
		row.Date = d
	}
	return s.idx.UpsertEntry(row, res.Body)
}
