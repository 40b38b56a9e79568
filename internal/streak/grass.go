package streak

import "time"

// DefaultWeeks is the grass grid width used by the CLI, roughly a year.
const DefaultWeeks = 52

// MaxWeeks caps the grid width. The weeks count reaches Grid straight
// from query strings and flags, so it bounds the allocation.
const MaxWeeks = 104

// Cell is one day in the grass grid.
type Cell struct {
	Date   time.Time `json:"date"`
	Active bool      `json:"active"`
	Future bool      `json:"future"` // after today in the current week
}

// Week is a single Monday-first column of the grid.
type Week [7]Cell

// Grid buckets the last weeks weeks into Monday-first columns. The last
// column is the week containing today; column 0 is the oldest. Days
// after today in the current week are marked Future and never Active.
func Grid(dates []time.Time, today time.Time, weeks int) []Week {
	if weeks <= 0 {
		weeks = DefaultWeeks
	}
	if weeks > MaxWeeks {
		weeks = MaxWeeks
	}
	set := dateSet(dates)
	anchor := Day(today)
	// Monday of the current week, then back (weeks-1) whole weeks.
	start := anchor.AddDate(0, 0, -WeekdayIndex(anchor)-(weeks-1)*7)

	grid := make([]Week, weeks)
	for w := 0; w < weeks; w++ {
		for d := 0; d < 7; d++ {
			date := start.AddDate(0, 0, w*7+d)
			cell := Cell{Date: date}
			if date.After(anchor) {
				cell.Future = true
			} else {
				_, cell.Active = set[date]
			}
			grid[w][d] = cell
		}
	}
	return grid
}
