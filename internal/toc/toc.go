// Package toc regenerates the README.md index of the journal: dated
// entries grouped by category, followed by the monthly link files.
package toc

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tilkit/til/internal/parser"
	"github.com/tilkit/til/internal/storage"
)

// collapseThreshold is the entry count above which a category is
// rendered inside a <details> block.
const collapseThreshold = 10

const header = `# 📝 TIL Index

This is an automatically generated index of all TIL entries.

- ` + "`til note [category]`" + ` creates today's entry from a template
- ` + "`til link <url>`" + ` records a link in the monthly links file
- ` + "`til search <keyword>`" + ` searches all entries
- ` + "`til streak`" + ` shows streaks, the grass grid, and weekly pattern
- ` + "`til zip`" + ` bundles a month or date range into one digest
- ` + "`til index`" + ` regenerates this file

---`

type entry struct {
	date string // YYYY-MM-DD, from the filename
	path string
}

// Update rewrites README.md at the journal root and returns the number
// of indexed entries.
func Update(store storage.Provider) (int, error) {
	metas, err := store.List("")
	if err != nil {
		return 0, err
	}

	categorized := make(map[string][]entry)
	var linkFiles []string
	total := 0

	for _, m := range metas {
		base := filepath.Base(m.Path)
		if strings.HasSuffix(base, "-Links.md") {
			linkFiles = append(linkFiles, m.Path)
			continue
		}
		d, ok := parser.EntryDate(m.Path)
		if !ok {
			continue
		}
		category := filepath.Dir(m.Path)
		if category == "." {
			category = "uncategorized"
		}
		categorized[category] = append(categorized[category], entry{
			date: d.Format(parser.DateLayout),
			path: filepath.ToSlash(m.Path),
		})
		total++
	}

	lines := []string{header}

	categories := make([]string, 0, len(categorized))
	for c := range categorized {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		lines = append(lines, renderCategory(c, categorized[c])...)
	}

	if len(linkFiles) > 0 {
		sort.Strings(linkFiles)
		lines = append(lines, "", "## 🔗 Links")
		for _, f := range linkFiles {
			label := strings.TrimSuffix(filepath.Base(f), "-Links.md")
			lines = append(lines, fmt.Sprintf("- [%s](%s)", label, filepath.ToSlash(f)))
		}
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := store.Write("README.md", []byte(content)); err != nil {
		return 0, err
	}
	return total, nil
}

// renderCategory emits one category section, collapsed when large.
func renderCategory(category string, entries []entry) []string {
	sort.Slice(entries, func(i, j int) bool { return entries[i].date < entries[j].date })

	var lines []string
	if len(entries) > collapseThreshold {
		lines = append(lines,
			"",
			fmt.Sprintf("<details>\n<summary>📁 %s (%d entries)</summary>", category, len(entries)),
			"")
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("- [%s](%s)", e.date, e.path))
		}
		lines = append(lines, "", "</details>")
		return lines
	}

	lines = append(lines, "", "## 📁 "+category)
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("- [%s](%s)", e.date, e.path))
	}
	return lines
}
