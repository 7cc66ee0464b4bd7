package analytics

import (
	"fmt"
	"time"
)

// DateLayout is the ISO day format used as both storage key and sort key.
// Lexicographic order equals chronological order for this layout.
const DateLayout = "2006-01-02"

// Today returns the current local calendar date
func Today() string {
	return time.Now().Format(DateLayout)
}

// DateOf formats a time as an ISO day
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an ISO day string
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// TrailingWeeks returns the inclusive window of n*7 days ending at now,
// used for "average over last N weeks" queries
func TrailingWeeks(n int, now time.Time) (start, end string) {
	return DateOf(now.AddDate(0, 0, -n*7)), DateOf(now)
}

// WeekdayIndex returns the Sunday=0..Saturday=6 index of a date, or
// false when the date does not parse
func WeekdayIndex(date string) (int, bool) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, false
	}
	return int(t.Weekday()), true
}

// WeekKey buckets a date into its calendar week, or false when the date
// does not parse
func WeekKey(date string) (string, bool) {
	t, err := ParseDate(date)
	if err != nil {
		return "", false
	}
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week), true
}

// WeekdayNames are ordered to match WeekdayIndex
var WeekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
