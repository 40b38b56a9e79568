// Package streak derives engagement statistics from the set of calendar
// dates that have at least one journal entry. It is pure: the date set
// and "today" are both injected, so callers can back it with a real
// directory scan, the search index, or a fixture.
package streak

import (
	"sort"
	"time"
)

// Stats is the result of analysing a date set. Dates are midnight-UTC
// civil dates.
type Stats struct {
	Current      int       `json:"current_streak"`
	Longest      int       `json:"longest_streak"`
	LongestStart time.Time `json:"longest_streak_start,omitzero"`
	LongestEnd   time.Time `json:"longest_streak_end,omitzero"`
	TotalDays    int       `json:"total_days"`
	First        time.Time `json:"first_entry,omitzero"`
	Last         time.Time `json:"last_entry,omitzero"`
	SpanDays     int       `json:"span_days"`
	Rate         float64   `json:"rate"` // TotalDays / SpanDays, percent
	// Weekly counts entries per day of week, Monday first.
	Weekly [7]int `json:"weekly"`
}

// Day truncates t to its civil date in UTC. All package functions apply
// it to their inputs, so callers may pass wall-clock times.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekdayIndex maps a date to its Monday-first row index (Monday=0 …
// Sunday=6).
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Compute analyses the given dates anchored at today. Duplicate dates
// count once. An empty input yields the zero Stats.
func Compute(dates []time.Time, today time.Time) Stats {
	set := dateSet(dates)
	if len(set) == 0 {
		return Stats{}
	}

	sorted := make([]time.Time, 0, len(set))
	for d := range set {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	st := Stats{
		TotalDays: len(sorted),
		First:     sorted[0],
		Last:      sorted[len(sorted)-1],
	}

	// Current streak: anchored strictly on today. A missing today means
	// the active streak is broken, even if yesterday has an entry.
	cursor := Day(today)
	for {
		if _, ok := set[cursor]; !ok {
			break
		}
		st.Current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	// Longest streak: one pass over the sorted set. A gap of exactly one
	// day extends the run; anything larger restarts it.
	run := 1
	runStart := sorted[0]
	st.Longest = 1
	st.LongestStart = sorted[0]
	st.LongestEnd = sorted[0]
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
			runStart = sorted[i]
		}
		if run > st.Longest {
			st.Longest = run
			st.LongestStart = runStart
			st.LongestEnd = sorted[i]
		}
	}

	st.SpanDays = int(st.Last.Sub(st.First).Hours()/24) + 1
	st.Rate = float64(st.TotalDays) / float64(st.SpanDays) * 100

	for d := range set {
		st.Weekly[WeekdayIndex(d)]++
	}

	return st
}

func dateSet(dates []time.Time) map[time.Time]struct{} {
	set := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		set[Day(d)] = struct{}{}
	}
	return set
}
