// Package links maintains the monthly link files: one YYYY-MM-Links.md
// per month, with a "#### YYYY-MM-DD" section per day and one checkbox
// line per link.
package links

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/tilkit/til/internal/parser"
	"github.com/tilkit/til/internal/storage"
)

// snippet descriptions longer than this are cut with an ellipsis.
const maxSnippetLen = 160

// ErrDuplicate reports that the URL is already recorded under the date
// section it was being added to.
var ErrDuplicate = errors.New("link already recorded")

// Manager appends links to monthly files through the journal storage.
type Manager struct {
	store storage.Provider
}

// NewManager returns a link manager over the given provider.
func NewManager(store storage.Provider) *Manager {
	return &Manager{store: store}
}

// Options alter how a link line is rendered.
type Options struct {
	Title   string // markdown link text; bare URL when empty
	Tag     string // rendered as `#tag`
	Snippet string // one-line description, truncated to 160 runes
}

// FileFor returns the monthly link file path for a date.
func FileFor(date time.Time) string {
	return date.Format("2006-01") + "-Links.md"
}

// Add records url under the section for date in that month's link file,
// creating the file or the section as needed. Adding a URL that already
// appears in the date's section returns ErrDuplicate and leaves the file
// untouched.
func (m *Manager) Add(url string, date time.Time, opts Options) (string, error) {
	file := FileFor(date)
	header := "#### " + date.Format(parser.DateLayout)
	entry := renderLine(url, opts)

	data, err := m.store.Read(file)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		// New month: file with a single section.
		content := header + "\n" + entry + "\n"
		if err := m.store.Write(file, []byte(content)); err != nil {
			return "", err
		}
		return file, nil
	}

	updated, err := insert(string(data), header, entry, url)
	if err != nil {
		return file, fmt.Errorf("%s: %w", file, err)
	}
	if err := m.store.Write(file, []byte(updated)); err != nil {
		return "", err
	}
	return file, nil
}

// renderLine builds the checkbox line for a link.
func renderLine(url string, opts Options) string {
	text := url
	if opts.Title != "" {
		text = fmt.Sprintf("[%s](%s)", opts.Title, url)
	}
	if opts.Tag != "" {
		text += fmt.Sprintf(" `#%s`", opts.Tag)
	}
	if opts.Snippet != "" {
		snippet := strings.Join(strings.Fields(opts.Snippet), " ")
		if len([]rune(snippet)) > maxSnippetLen {
			snippet = string([]rune(snippet)[:maxSnippetLen-3]) + "..."
		}
		text += " — " + snippet
	}
	return "- [ ] " + text
}

// insert places entry at the end of the header's section, creating the
// section at the end of the file when absent. The URL is the dedupe key
// within the section.
func insert(content, header, entry, url string) (string, error) {
	lines := strings.Split(content, "\n")
	// Trailing newline produces an empty final element; drop it so the
	// rebuild below controls the terminator.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == header {
			start = i
			break
		}
	}

	if start < 0 {
		// No section for this date yet.
		out := append(lines, header, entry)
		return strings.Join(out, "\n") + "\n", nil
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "#### ") {
			end = i
			break
		}
	}

	for i := start + 1; i < end; i++ {
		if strings.Contains(lines[i], url) {
			return "", ErrDuplicate
		}
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:end]...)
	out = append(out, entry)
	out = append(out, lines[end:]...)
	return strings.Join(out, "\n") + "\n", nil
}
