package attendance

import (
	"testing"
	"time"
)

func TestWindowDates(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC) // monday
	end := start.AddDate(0, 0, DefaultWindowDays-1)

	dates := windowDates(start, end)
	if len(dates) != DefaultWindowDays {
		t.Fatalf("got %d dates, want %d", len(dates), DefaultWindowDays)
	}
	if !dates[0].Equal(start) || !dates[len(dates)-1].Equal(end) {
		t.Errorf("window %v..%v, want %v..%v", dates[0], dates[len(dates)-1], start, end)
	}
	// 1週間分なら全曜日がちょうど1回ずつ
	seen := map[time.Weekday]int{}
	for _, d := range dates {
		seen[d.Weekday()]++
	}
	for wd, n := range seen {
		if n != 1 {
			t.Errorf("%v appears %d times", wd, n)
		}
	}
}

func TestWindowDatesSingleDay(t *testing.T) {
	d := time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)
	dates := windowDates(d, d)
	if len(dates) != 1 || !dates[0].Equal(d) {
		t.Fatalf("got %v", dates)
	}
}
