// Package ux renders streak statistics, the grass grid, and search
// results for the terminal.
package ux

import (
	"fmt"
	"strings"
	"time"

	"github.com/tilkit/til/internal/index"
	"github.com/tilkit/til/internal/streak"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

const (
	grassActive = "🟩"
	grassEmpty  = "⬜"
	dateLayout  = "2006-01-02"
)

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// StreakReport renders the headline statistics block.
func StreakReport(st streak.Stats) string {
	if st.TotalDays == 0 {
		return "📚 No entries yet. Write your first one with `til note`!"
	}

	var b strings.Builder
	if st.Current > 0 {
		fmt.Fprintf(&b, "%s🔥 Current streak: %d day(s)%s\n", Bold, st.Current, Reset)
	} else {
		b.WriteString("💤 Current streak: 0 days (no entry today)\n")
	}
	fmt.Fprintf(&b, "%s🏆 Longest streak: %d day(s)%s\n", Bold, st.Longest, Reset)
	if !st.LongestStart.IsZero() {
		fmt.Fprintf(&b, "   📅 %s ~ %s\n", st.LongestStart.Format(dateLayout), st.LongestEnd.Format(dateLayout))
	}
	fmt.Fprintf(&b, "📊 Total days: %d\n", st.TotalDays)
	fmt.Fprintf(&b, "📈 Rate: %.1f%%\n", st.Rate)
	fmt.Fprintf(&b, "🎯 First entry: %s\n", st.First.Format(dateLayout))
	fmt.Fprintf(&b, "📝 Last entry: %s\n", st.Last.Format(dateLayout))
	return b.String()
}

// Grass renders the grid with Monday at the top and the current week as
// the rightmost column. Month labels mark the columns where a new month
// starts.
func Grass(grid []streak.Week) string {
	if len(grid) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("🌱 Grass:\n")
	b.WriteString("     " + monthLabels(grid) + "\n")
	for row := 0; row < 7; row++ {
		fmt.Fprintf(&b, "%4s ", weekdayLabels[row])
		for _, week := range grid {
			cell := week[row]
			switch {
			case cell.Future:
				b.WriteString("  ")
			case cell.Active:
				b.WriteString(grassActive)
			default:
				b.WriteString(grassEmpty)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + grassActive + " entry  " + grassEmpty + " none\n")
	return b.String()
}

// monthLabels emits a two-character column per week, showing the month
// number when it changes from the previous column.
func monthLabels(grid []streak.Week) string {
	var b strings.Builder
	prev := time.Month(0)
	for _, week := range grid {
		m := week[0].Date.Month()
		if m != prev {
			fmt.Fprintf(&b, "%2d", int(m))
			prev = m
		} else {
			b.WriteString("  ")
		}
	}
	return b.String()
}

// WeeklyPattern renders the per-weekday bar chart.
func WeeklyPattern(weekly [7]int) string {
	const maxBar = 20

	max := 0
	for _, c := range weekly {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return "📊 No weekly pattern yet.\n"
	}

	var b strings.Builder
	b.WriteString("📊 Weekly pattern:\n")
	for i, label := range weekdayLabels {
		count := weekly[i]
		bar := strings.Repeat("█", count*maxBar/max)
		switch {
		case count == max:
			bar = Green + bar + Reset
		case count > 0:
			bar = Yellow + bar + Reset
		}
		fmt.Fprintf(&b, "  %s: %s (%d)\n", label, bar, count)
	}
	return b.String()
}

// SearchResults renders one line per hit with a dimmed snippet.
func SearchResults(hits []index.SearchResult) string {
	if len(hits) == 0 {
		return "📭 No matches.\n"
	}
	var b strings.Builder
	for _, h := range hits {
		title := h.Title
		if title == "" {
			title = h.Path
		}
		fmt.Fprintf(&b, "%s📄 %s%s — %s\n", Bold, h.Path, Reset, title)
		if h.Snippet != "" {
			snippet := strings.ReplaceAll(h.Snippet, "<b>", Yellow)
			snippet = strings.ReplaceAll(snippet, "</b>", Reset)
			snippet = strings.Join(strings.Fields(snippet), " ")
			fmt.Fprintf(&b, "   %s%s%s\n", Dim, snippet, Reset)
		}
	}
	return b.String()
}
