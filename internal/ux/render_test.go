package ux

import (
	"strings"
	"testing"
	"time"

	"github.com/tilkit/til/internal/index"
	"github.com/tilkit/til/internal/streak"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestStreakReportEmpty(t *testing.T) {
	out := StreakReport(streak.Stats{})
	if !strings.Contains(out, "No entries yet") {
		t.Fatalf("expected empty-journal message, got %q", out)
	}
}

func TestStreakReportActive(t *testing.T) {
	st := streak.Stats{
		Current:      3,
		Longest:      5,
		LongestStart: day("2025-06-10"),
		LongestEnd:   day("2025-06-14"),
		TotalDays:    12,
		First:        day("2025-06-01"),
		Last:         day("2025-07-05"),
		Rate:         34.3,
	}
	out := StreakReport(st)
	for _, want := range []string{
		"Current streak: 3",
		"Longest streak: 5",
		"2025-06-10 ~ 2025-06-14",
		"Total days: 12",
		"34.3%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestStreakReportBrokenStreak(t *testing.T) {
	out := StreakReport(streak.Stats{Longest: 2, TotalDays: 2, First: day("2025-07-01"), Last: day("2025-07-02"), Rate: 100})
	if !strings.Contains(out, "Current streak: 0") {
		t.Fatalf("expected zero current streak line, got %q", out)
	}
}

func TestGrassRows(t *testing.T) {
	today := day("2025-07-09")
	grid := streak.Grid([]time.Time{day("2025-07-07"), day("2025-07-09")}, today, 4)
	out := Grass(grid)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	var rows int
	for _, l := range lines {
		if strings.Contains(l, grassActive) || strings.Contains(l, grassEmpty) {
			rows++
		}
	}
	// 7 weekday rows plus the legend line.
	if rows != 8 {
		t.Fatalf("expected 8 lines with cells, got %d:\n%s", rows, out)
	}
	if !strings.Contains(out, "Mon") || !strings.Contains(out, "Sun") {
		t.Fatalf("expected weekday labels:\n%s", out)
	}
}

func TestGrassEmptyGrid(t *testing.T) {
	if out := Grass(nil); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestWeeklyPattern(t *testing.T) {
	out := WeeklyPattern([7]int{4, 0, 2, 0, 0, 1, 0})
	if !strings.Contains(out, "Mon") {
		t.Fatalf("expected Mon row:\n%s", out)
	}
	if !strings.Contains(out, "(4)") || !strings.Contains(out, "(0)") {
		t.Fatalf("expected counts in rows:\n%s", out)
	}
}

func TestWeeklyPatternEmpty(t *testing.T) {
	out := WeeklyPattern([7]int{})
	if !strings.Contains(out, "No weekly pattern") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSearchResults(t *testing.T) {
	hits := []index.SearchResult{
		{Path: "go/2025-07-01.md", Title: "Generics", Snippet: "about <b>generics</b> in go"},
		{Path: "db/2025-07-02.md"},
	}
	out := SearchResults(hits)
	if !strings.Contains(out, "go/2025-07-01.md") || !strings.Contains(out, "Generics") {
		t.Fatalf("missing first hit:\n%s", out)
	}
	// Falls back to the path when there is no title.
	if strings.Count(out, "db/2025-07-02.md") != 2 {
		t.Fatalf("expected path used as title:\n%s", out)
	}
}

func TestSearchResultsEmpty(t *testing.T) {
	if out := SearchResults(nil); !strings.Contains(out, "No matches") {
		t.Fatalf("unexpected output %q", out)
	}
}
