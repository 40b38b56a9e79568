package streak

import (
	"testing"
	"time"
)

func TestGridShape(t *testing.T) {
	grid := Grid(nil, d("2025-07-09"), 4)
	if len(grid) != 4 {
		t.Fatalf("weeks = %d, want 4", len(grid))
	}
	for w, week := range grid {
		for dd, cell := range week {
			if cell.Active {
				t.Errorf("empty grid has active cell at [%d][%d]", w, dd)
			}
		}
	}
}

func TestGridAnchoredOnCurrentWeek(t *testing.T) {
	// 2025-07-09 is a Wednesday; its week starts Monday 2025-07-07.
	grid := Grid(days("2025-07-09"), d("2025-07-09"), 4)
	last := grid[len(grid)-1]

	if !last[0].Date.Equal(d("2025-07-07")) {
		t.Errorf("last week starts %v, want Monday 2025-07-07", last[0].Date)
	}
	if !last[2].Active {
		t.Error("Wednesday cell should be active")
	}
	// Thursday through Sunday are after today.
	for i := 3; i < 7; i++ {
		if !last[i].Future {
			t.Errorf("cell %d should be future", i)
		}
		if last[i].Active {
			t.Errorf("future cell %d marked active", i)
		}
	}
}

func TestGridOldestColumnFirst(t *testing.T) {
	today := d("2025-07-09")
	grid := Grid(nil, today, 3)
	// Column 0 starts two whole weeks before the current week's Monday.
	want := d("2025-06-23")
	if !grid[0][0].Date.Equal(want) {
		t.Errorf("grid[0][0] = %v, want %v", grid[0][0].Date, want)
	}
	// Columns advance by exactly one week.
	if got := grid[1][0].Date; !got.Equal(want.AddDate(0, 0, 7)) {
		t.Errorf("grid[1][0] = %v", got)
	}
}

func TestGridDefaultWeeks(t *testing.T) {
	grid := Grid(nil, d("2025-07-09"), 0)
	if len(grid) != DefaultWeeks {
		t.Errorf("weeks = %d, want %d", len(grid), DefaultWeeks)
	}
}

func TestGridClampsOversizedWeeks(t *testing.T) {
	// weeks arrives straight from query strings, so a huge value must
	// not translate into a huge allocation.
	grid := Grid(nil, d("2025-07-09"), 999999999)
	if len(grid) != MaxWeeks {
		t.Errorf("weeks = %d, want clamp to %d", len(grid), MaxWeeks)
	}
	last := grid[len(grid)-1]
	if !last[0].Date.Equal(d("2025-07-07")) {
		t.Errorf("clamped grid lost its anchor: last week starts %v", last[0].Date)
	}
}

func TestGridMarksEntriesAcrossWeeks(t *testing.T) {
	today := d("2025-07-09")
	grid := Grid(days("2025-06-24", "2025-07-07"), today, 3)
	// 2025-06-24 is the Tuesday of the oldest column.
	if !grid[0][1].Active {
		t.Error("2025-06-24 not active in oldest column")
	}
	if !grid[2][0].Active {
		t.Error("2025-07-07 not active in current column")
	}
}

func TestGridTimeOfDayIrrelevant(t *testing.T) {
	noon := time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC)
	grid := Grid([]time.Time{noon}, noon, 1)
	if !grid[0][2].Active {
		t.Error("noon entry should mark its civil date")
	}
}
