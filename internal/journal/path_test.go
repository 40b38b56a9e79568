package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/tilkit/til/internal/apperr"
)

func TestEntryPath(t *testing.T) {
	date := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)
	got, err := EntryPath("kotlin", date)
	if err != nil {
		t.Fatalf("EntryPath: %v", err)
	}
	if got != "kotlin/2025-07-20.md" {
		t.Errorf("path = %q", got)
	}
}

func TestEntryPathTrimsWhitespace(t *testing.T) {
	date := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)
	got, err := EntryPath("  go  ", date)
	if err != nil {
		t.Fatalf("EntryPath: %v", err)
	}
	if got != "go/2025-07-20.md" {
		t.Errorf("path = %q", got)
	}
}

func TestEntryPathInvalidCategories(t *testing.T) {
	date := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)
	cases := []string{"", "   ", ".", "..", "a/b", `a\b`, "../escape"}
	for _, c := range cases {
		if _, err := EntryPath(c, date); !errors.Is(err, apperr.ErrInvalidCategory) {
			t.Errorf("EntryPath(%q) = %v, want ErrInvalidCategory", c, err)
		}
	}
}

func TestEntryPathInjective(t *testing.T) {
	date1 := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)
	date2 := time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC)
	seen := map[string]string{}
	inputs := []struct {
		cat  string
		date time.Time
	}{
		{"go", date1}, {"go", date2}, {"kotlin", date1}, {"kotlin", date2},
	}
	for _, in := range inputs {
		p, err := EntryPath(in.cat, in.date)
		if err != nil {
			t.Fatalf("EntryPath(%q): %v", in.cat, err)
		}
		key := in.cat + "|" + in.date.Format("2006-01-02")
		if prev, ok := seen[p]; ok && prev != key {
			t.Errorf("collision: %q from %q and %q", p, prev, key)
		}
		seen[p] = key
	}
}
