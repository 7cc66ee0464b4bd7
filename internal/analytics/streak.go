package analytics

import (
	"sort"
	"time"
)

// Streaks computes the current and longest consecutive-day streak over a
// set of activity dates. Dates may arrive in any order with duplicates;
// unparseable dates are ignored.
//
// The current streak is anchored at today, or at yesterday when today has
// no activity yet. Any older anchor means the streak is already broken
// and the current streak is 0 regardless of history.
func Streaks(dates []string, now time.Time) (current, longest int) {
	seen := make(map[string]bool, len(dates))
	var days []time.Time
	for _, d := range dates {
		if seen[d] {
			continue
		}
		t, err := ParseDate(d)
		if err != nil {
			continue
		}
		seen[d] = true
		days = append(days, t)
	}
	if len(days) == 0 {
		return 0, 0
	}

	today := DateOf(now)
	yesterday := DateOf(now.AddDate(0, 0, -1))

	anchor := now
	switch {
	case seen[today]:
	case seen[yesterday]:
		anchor = now.AddDate(0, 0, -1)
	default:
		anchor = time.Time{}
	}
	if !anchor.IsZero() {
		for seen[DateOf(anchor)] {
			current++
			anchor = anchor.AddDate(0, 0, -1)
		}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	longest = 1
	run := 1
	for i := 1; i < len(days); i++ {
		if DateOf(days[i-1].AddDate(0, 0, 1)) == DateOf(days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return current, longest
}
