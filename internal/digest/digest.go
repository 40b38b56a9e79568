// Package digest concatenates dated entries into a single markdown
// summary file, either for an arbitrary date range or for one month.
package digest

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tilkit/til/internal/parser"
	"github.com/tilkit/til/internal/storage"
)

// ErrEmptyRange reports that no entries fall inside the requested range.
var ErrEmptyRange = errors.New("no entries in range")

// Generator builds digest files inside the journal.
type Generator struct {
	store storage.Provider
}

// NewGenerator returns a digest generator over the given provider.
func NewGenerator(store storage.Provider) *Generator {
	return &Generator{store: store}
}

type collected struct {
	date     time.Time
	category string
	path     string
	content  string
}

// Range writes zip-<from>_to_<to>.md covering entries with from <= date
// <= to and returns its path. from must not be after to.
func (g *Generator) Range(from, to time.Time) (string, error) {
	if from.After(to) {
		return "", fmt.Errorf("digest: range %s after %s", from.Format(parser.DateLayout), to.Format(parser.DateLayout))
	}
	items, err := g.collect(func(d time.Time) bool {
		return !d.Before(from) && !d.After(to)
	})
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", ErrEmptyRange
	}

	file := fmt.Sprintf("zip-%s_to_%s.md", from.Format(parser.DateLayout), to.Format(parser.DateLayout))
	title := fmt.Sprintf("# 📦 TIL ZIP: %s → %s", from.Format(parser.DateLayout), to.Format(parser.DateLayout))
	return file, g.write(file, title, items)
}

// Month writes zip-YYYY-MM.md covering one calendar month and returns
// its path.
func (g *Generator) Month(year int, month time.Month) (string, error) {
	items, err := g.collect(func(d time.Time) bool {
		return d.Year() == year && d.Month() == month
	})
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", ErrEmptyRange
	}

	stamp := fmt.Sprintf("%04d-%02d", year, month)
	file := "zip-" + stamp + ".md"
	title := "# 📦 TIL ZIP: " + stamp
	return file, g.write(file, title, items)
}

// collect gathers dated entries whose date passes keep, skipping link
// files, previous digests, and the README by virtue of their undated
// filenames.
func (g *Generator) collect(keep func(time.Time) bool) ([]collected, error) {
	metas, err := g.store.List("")
	if err != nil {
		return nil, err
	}
	var out []collected
	for _, m := range metas {
		d, ok := parser.EntryDate(m.Path)
		if !ok || !keep(d) {
			continue
		}
		data, err := g.store.Read(m.Path)
		if err != nil {
			return nil, err
		}
		out = append(out, collected{
			date:     d,
			category: filepath.Dir(m.Path),
			path:     m.Path,
			content:  strings.TrimSpace(string(data)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].date.Equal(out[j].date) {
			return out[i].date.Before(out[j].date)
		}
		return out[i].path < out[j].path
	})
	return out, nil
}

func (g *Generator) write(file, title string, items []collected) error {
	var b strings.Builder
	b.WriteString(title + "\n\n")
	for _, it := range items {
		category := it.category
		if category == "." {
			category = "uncategorized"
		}
		fmt.Fprintf(&b, "## 📁 %s / %s\n", category, it.date.Format(parser.DateLayout))
		fmt.Fprintf(&b, "*File: `%s`*\n\n", it.path)
		b.WriteString(it.content + "\n\n---\n\n")
	}
	return g.store.Write(file, []byte(b.String()))
}
