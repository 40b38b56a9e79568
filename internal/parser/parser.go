// Package parser extracts frontmatter, titles, tags, and outbound URLs
// from journal entries, and recognises dated entry filenames.
package parser

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the civil date format used for entry filenames.
const DateLayout = "2006-01-02"

var (
	mdLinkRe    = regexp.MustCompile(`\[[^\]]*\]\((https?://[^\s)]+)\)`)
	tagRe       = regexp.MustCompile(`(?:^|\s)#([A-Za-z][A-Za-z0-9_/-]*)`)
	entryFileRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\.md$`)
)

// Result holds the output of parsing an entry file.
type Result struct {
	Frontmatter map[string]interface{}
	Body        string
	URLs        []string
	Tags        []string
	Title       string
}

// Parse extracts frontmatter, body, outbound URLs, and tags from raw
// Markdown bytes.
func Parse(data []byte) (*Result, error) {
	fm, body, err := splitFrontmatter(data)
	if err != nil {
		return nil, err
	}

	return &Result{
		Frontmatter: fm,
		Body:        body,
		URLs:        extractURLs(body),
		Tags:        extractTags(body, fm),
		Title:       deriveTitle(fm, body),
	}, nil
}

// EntryDate reports the civil date encoded in an entry path such as
// go/2025-07-29.md. ok is false for README, link files, digest files,
// and anything else whose basename is not YYYY-MM-DD.md.
func EntryDate(path string) (time.Time, bool) {
	m := entryFileRe.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, m[1])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// splitFrontmatter separates YAML frontmatter (between leading --- delimiters)
// from the Markdown body. If no frontmatter is found the entire content is body.
func splitFrontmatter(data []byte) (map[string]interface{}, string, error) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, string(data), nil
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		// No closing delimiter — treat everything as body.
		return nil, string(data), nil
	}

	yamlBlock := rest[:idx]
	afterDelim := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	var fm map[string]interface{}
	if err := yaml.Unmarshal(yamlBlock, &fm); err != nil {
		// Invalid YAML — fall back to treating everything as body.
		return nil, string(data), nil
	}

	return fm, body, nil
}

// extractURLs returns deduplicated http(s) targets of inline Markdown links.
func extractURLs(body string) []string {
	matches := mdLinkRe.FindAllStringSubmatch(body, -1)
	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		u := m[1]
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// extractTags collects #tags from the body and from the frontmatter
// "tags" field.
func extractTags(body string, fm map[string]interface{}) []string {
	seen := make(map[string]struct{})
	var out []string

	if fm != nil {
		if raw, ok := fm["tags"]; ok {
			if list, ok := raw.([]interface{}); ok {
				for _, item := range list {
					s, ok := item.(string)
					if !ok {
						continue
					}
					s = strings.TrimSpace(s)
					if s == "" {
						continue
					}
					if _, dup := seen[s]; !dup {
						seen[s] = struct{}{}
						out = append(out, s)
					}
				}
			}
		}
	}

	matches := tagRe.FindAllStringSubmatch(body, -1)
	for _, m := range matches {
		t := m[1]
		if _, dup := seen[t]; !dup {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}

	return out
}

// deriveTitle returns the frontmatter "title" if present, otherwise the first
// H1 heading, otherwise empty string.
func deriveTitle(fm map[string]interface{}, body string) string {
	if fm != nil {
		if t, ok := fm["title"]; ok {
			if s, ok := t.(string); ok && s != "" {
				return s
			}
		}
	}
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}
