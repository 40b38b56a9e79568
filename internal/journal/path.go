// Package journal coordinates entry creation and date listing over the
// storage, template, and index layers.
package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/tilkit/til/internal/apperr"
	"github.com/tilkit/til/internal/parser"
)

// EntryPath resolves the canonical relative path for a (category, date)
// pair: <category>/<YYYY-MM-DD>.md. It is pure and performs no I/O.
// Categories that are empty after trimming, contain path separators, or
// are dot directories are rejected so a crafted category can never
// escape the journal root.
func EntryPath(category string, date time.Time) (string, error) {
	c := strings.TrimSpace(category)
	switch {
	case c == "", c == ".", c == "..":
		return "", fmt.Errorf("category %q: %w", category, apperr.ErrInvalidCategory)
	case strings.ContainsAny(c, `/\`):
		return "", fmt.Errorf("category %q: %w", category, apperr.ErrInvalidCategory)
	}
	return c + "/" + date.Format(parser.DateLayout) + ".md", nil
}
