package analytics

import (
	"testing"
	"time"

	"github.com/chronodesk/chronodesk/internal/models"
)

// fakeFacts is a canned FactSource for condition tests
type fakeFacts struct {
	totalSessions int64
	sessionDays   int64
	sessionWeeks  int64
	totalHours    float64
	paidSession   bool
	eventDays     map[string]int64
	eventData     map[string]int64
	sameDay       bool
	sessions      []models.Session
}

func (f *fakeFacts) CountTotalSessions() (int64, error)       { return f.totalSessions, nil }
func (f *fakeFacts) CountDistinctSessionDays() (int64, error) { return f.sessionDays, nil }
func (f *fakeFacts) CountDistinctSessionWeeks() (int64, error) {
	return f.sessionWeeks, nil
}
func (f *fakeFacts) TotalHours() (float64, error)    { return f.totalHours, nil }
func (f *fakeFacts) HasPaidSession() (bool, error)   { return f.paidSession, nil }
func (f *fakeFacts) EventsSameDay(a, b string) (bool, error) { return f.sameDay, nil }
func (f *fakeFacts) CountEventDays(eventType string) (int64, error) {
	return f.eventDays[eventType], nil
}
func (f *fakeFacts) CountDistinctEventData(eventType string) (int64, error) {
	return f.eventData[eventType], nil
}
func (f *fakeFacts) ListAllSessions() ([]models.Session, error) { return f.sessions, nil }

// fakeUnlocks is an in-memory UnlockStore
type fakeUnlocks struct {
	unlocked map[string]time.Time
}

func newFakeUnlocks() *fakeUnlocks {
	return &fakeUnlocks{unlocked: make(map[string]time.Time)}
}

func (f *fakeUnlocks) UnlockedAchievementIDs() (map[string]time.Time, error) {
	out := make(map[string]time.Time, len(f.unlocked))
	for k, v := range f.unlocked {
		out[k] = v
	}
	return out, nil
}

func (f *fakeUnlocks) UnlockAchievement(id string, at time.Time) (bool, error) {
	if _, ok := f.unlocked[id]; ok {
		return false, nil
	}
	f.unlocked[id] = at
	return true, nil
}

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func TestCheckAchievements_FirstSession(t *testing.T) {
	facts := &fakeFacts{totalSessions: 1, sessionDays: 1, sessionWeeks: 1}
	unlocks := newFakeUnlocks()

	ids, err := CheckAchievements(facts, unlocks, date("2026-08-28"))
	if err != nil {
		t.Fatalf("CheckAchievements failed: %v", err)
	}
	if !contains(ids, "first_step") {
		t.Errorf("expected first_step in %v", ids)
	}
	if contains(ids, "back_again") {
		t.Errorf("back_again needs 3 distinct days, got it with 1: %v", ids)
	}
}

func TestCheckAchievements_ReportsEachIDOnce(t *testing.T) {
	facts := &fakeFacts{totalSessions: 1, sessionDays: 1, sessionWeeks: 1}
	unlocks := newFakeUnlocks()
	now := date("2026-08-28")

	first, err := CheckAchievements(facts, unlocks, now)
	if err != nil {
		t.Fatalf("first check failed: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("first check should unlock something")
	}

	second, err := CheckAchievements(facts, unlocks, now)
	if err != nil {
		t.Fatalf("second check failed: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second identical check reported %v, want nothing new", second)
	}
}

func TestCheckAchievements_Thresholds(t *testing.T) {
	now := date("2026-08-28")
	cases := []struct {
		name   string
		facts  fakeFacts
		id     string
		expect bool
	}{
		{"10 sessions", fakeFacts{totalSessions: 10}, "getting_comfortable", true},
		{"9 sessions", fakeFacts{totalSessions: 9}, "getting_comfortable", false},
		{"7 distinct days", fakeFacts{sessionDays: 7}, "part_of_routine", true},
		{"100 hours", fakeFacts{totalHours: 100}, "hundred_hours", true},
		{"99.9 hours", fakeFacts{totalHours: 99.9}, "hundred_hours", false},
		{"paid session", fakeFacts{paidSession: true}, "first_dollar", true},
		{"4 weeks", fakeFacts{sessionWeeks: 4}, "one_full_month", true},
		{"3 weeks", fakeFacts{sessionWeeks: 3}, "long_run", true},
		{
			"analytics opened",
			fakeFacts{eventDays: map[string]int64{EventViewAnalytics: 1}},
			"curious_mind", true,
		},
		{
			"5 analytics days",
			fakeFacts{eventDays: map[string]int64{EventViewAnalytics: 5}},
			"pattern_noticed", true,
		},
		{
			"3 distinct ranges",
			fakeFacts{eventData: map[string]int64{EventAnalyticsRange: 3}},
			"zoomed_out", true,
		},
		{"analytics and advisor same day", fakeFacts{sameDay: true}, "connecting_dots", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			unlocks := newFakeUnlocks()
			ids, err := CheckAchievements(&tc.facts, unlocks, now)
			if err != nil {
				t.Fatalf("CheckAchievements failed: %v", err)
			}
			if got := contains(ids, tc.id); got != tc.expect {
				t.Errorf("%s unlocked = %v, want %v (ids: %v)", tc.id, got, tc.expect, ids)
			}
		})
	}
}

func TestHasPacedWeek(t *testing.T) {
	week := func(hours float64) []models.Session {
		var s []models.Session
		end := date("2026-08-28")
		for i := 0; i < 7; i++ {
			s = append(s, unpaid(DateOf(end.AddDate(0, 0, -i)), hours, "Work"))
		}
		return s
	}

	if !HasPacedWeek(week(5)) {
		t.Error("7 days of 5h sessions should count as a paced week")
	}
	if HasPacedWeek(week(7)) {
		t.Error("7h sessions exceed the 6h cap")
	}
	if HasPacedWeek(week(5)[:6]) {
		t.Error("needs at least 7 distinct days of history")
	}

	// Older long sessions do not spoil the most recent 7 days
	s := week(5)
	s = append(s, unpaid("2026-07-01", 12, "Work"))
	// 8 distinct days now, oldest falls outside the recent 7
	if !HasPacedWeek(s) {
		t.Error("a long session outside the 7 most recent days should not disqualify")
	}
}

func TestHasSustainableWeek(t *testing.T) {
	build := func(hoursPerDay float64, days int) []models.Session {
		var s []models.Session
		end := date("2026-08-28")
		for i := 0; i < days; i++ {
			s = append(s, unpaid(DateOf(end.AddDate(0, 0, -i)), hoursPerDay, "Work"))
		}
		return s
	}

	if !HasSustainableWeek(build(7, 7)) {
		t.Error("7h/day over 7 days averages under 8")
	}
	if HasSustainableWeek(build(9, 7)) {
		t.Error("9h/day over 7 days is not sustainable")
	}
	if HasSustainableWeek(build(7, 6)) {
		t.Error("needs at least 7 distinct days")
	}
}

func TestHasHumanWeekend(t *testing.T) {
	// 2026-08-22/23 are Saturday and Sunday
	light := []models.Session{
		unpaid("2026-08-22", 1, "Work"),
		unpaid("2026-08-23", 1, "Work"),
	}
	if !HasHumanWeekend(light) {
		t.Error("2h across a weekend is under the 3h cap")
	}

	heavy := []models.Session{
		unpaid("2026-08-22", 2, "Work"),
		unpaid("2026-08-23", 2, "Work"),
	}
	if HasHumanWeekend(heavy) {
		t.Error("4h across a weekend is over the cap")
	}

	// Weekday-only history has no weekend weeks to judge
	weekdays := []models.Session{unpaid("2026-08-24", 0, "Work")}
	if HasHumanWeekend(weekdays) {
		t.Error("a week without weekend sessions does not count as a human weekend")
	}
}
