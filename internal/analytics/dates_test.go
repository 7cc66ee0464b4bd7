package analytics

import "testing"

func TestWeekdayIndex(t *testing.T) {
	// 2026-08-23 is a Sunday
	days := []string{"2026-08-23", "2026-08-24", "2026-08-25", "2026-08-26", "2026-08-27", "2026-08-28", "2026-08-29"}
	for want, d := range days {
		got, ok := WeekdayIndex(d)
		if !ok {
			t.Fatalf("WeekdayIndex(%s) did not parse", d)
		}
		if got != want {
			t.Errorf("WeekdayIndex(%s) = %d, want %d (%s)", d, got, want, WeekdayNames[want])
		}
	}

	if _, ok := WeekdayIndex("08/23/2026"); ok {
		t.Error("non-ISO date should not parse")
	}
}

func TestWeekKey(t *testing.T) {
	// Monday through Sunday share one ISO week
	a, _ := WeekKey("2026-08-17")
	b, _ := WeekKey("2026-08-23")
	if a != b {
		t.Errorf("Mon and Sun of the same ISO week got different keys: %s vs %s", a, b)
	}

	c, _ := WeekKey("2026-08-24")
	if c == b {
		t.Errorf("next Monday should start a new week, both got %s", c)
	}

	if _, ok := WeekKey("garbage"); ok {
		t.Error("unparseable date should report false")
	}
}

func TestTrailingWeeks(t *testing.T) {
	start, end := TrailingWeeks(4, date("2026-08-28"))
	if start != "2026-07-31" {
		t.Errorf("start = %s, want 2026-07-31", start)
	}
	if end != "2026-08-28" {
		t.Errorf("end = %s, want 2026-08-28", end)
	}
}

func TestDateOrderingIsLexicographic(t *testing.T) {
	if !("2026-08-09" < "2026-08-10" && "2026-08-31" < "2026-09-01" && "2026-12-31" < "2027-01-01") {
		t.Error("ISO dates must sort chronologically as strings")
	}
}
