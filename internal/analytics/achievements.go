package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/chronodesk/chronodesk/internal/models"
)

// FactSource supplies the aggregate facts achievement conditions read.
// The evaluator only reads; the one mutation it performs goes through
// UnlockStore.
type FactSource interface {
	CountTotalSessions() (int64, error)
	CountDistinctSessionDays() (int64, error)
	CountDistinctSessionWeeks() (int64, error)
	TotalHours() (float64, error)
	HasPaidSession() (bool, error)
	CountEventDays(eventType string) (int64, error)
	CountDistinctEventData(eventType string) (int64, error)
	EventsSameDay(a, b string) (bool, error)
	ListAllSessions() ([]models.Session, error)
}

// UnlockStore is the monotonic one-way unlock set. UnlockAchievement
// reports true only when the id was newly inserted.
type UnlockStore interface {
	UnlockedAchievementIDs() (map[string]time.Time, error)
	UnlockAchievement(id string, at time.Time) (bool, error)
}

// Event types recorded for the Awareness achievements
const (
	EventViewAnalytics  = "view_analytics"
	EventViewAdvisor    = "view_advisor"
	EventAnalyticsRange = "analytics_range"
)

// CheckAchievements evaluates every locked achievement against current
// facts and unlocks the ones whose condition holds. Already-unlocked ids
// are skipped, so repeated invocations only ever report an id once.
func CheckAchievements(facts FactSource, unlocks UnlockStore, now time.Time) ([]string, error) {
	unlocked, err := unlocks.UnlockedAchievementIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocked achievements: %w", err)
	}

	var newlyUnlocked []string
	for _, def := range models.Achievements {
		if _, ok := unlocked[def.ID]; ok {
			continue
		}
		hold, err := checkCondition(facts, def.ID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to check achievement %s: %w", def.ID, err)
		}
		if !hold {
			continue
		}
		isNew, err := unlocks.UnlockAchievement(def.ID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to unlock achievement %s: %w", def.ID, err)
		}
		if isNew {
			newlyUnlocked = append(newlyUnlocked, def.ID)
		}
	}
	return newlyUnlocked, nil
}

func checkCondition(facts FactSource, id string, now time.Time) (bool, error) {
	switch id {
	// Presence
	case "first_step":
		n, err := facts.CountTotalSessions()
		return n >= 1, err
	case "back_again":
		n, err := facts.CountDistinctSessionDays()
		return n >= 3, err
	case "getting_comfortable":
		n, err := facts.CountTotalSessions()
		return n >= 10, err
	case "part_of_routine":
		n, err := facts.CountDistinctSessionDays()
		return n >= 7, err

	// Awareness
	case "curious_mind":
		n, err := facts.CountEventDays(EventViewAnalytics)
		return n >= 1, err
	case "pattern_noticed":
		n, err := facts.CountEventDays(EventViewAnalytics)
		return n >= 5, err
	case "zoomed_out":
		n, err := facts.CountDistinctEventData(EventAnalyticsRange)
		return n >= 3, err
	case "connecting_dots":
		return facts.EventsSameDay(EventViewAnalytics, EventViewAdvisor)

	// Balance
	case "paced_yourself":
		sessions, err := facts.ListAllSessions()
		if err != nil {
			return false, err
		}
		return HasPacedWeek(sessions), nil
	case "sustainable_week":
		sessions, err := facts.ListAllSessions()
		if err != nil {
			return false, err
		}
		return HasSustainableWeek(sessions), nil
	case "human_weekend":
		sessions, err := facts.ListAllSessions()
		if err != nil {
			return false, err
		}
		return HasHumanWeekend(sessions), nil

	// Commitment
	case "long_run":
		n, err := facts.CountDistinctSessionWeeks()
		return n >= 3, err
	case "one_full_month":
		n, err := facts.CountDistinctSessionWeeks()
		return n >= 4, err
	case "hundred_hours":
		h, err := facts.TotalHours()
		return h >= 100, err

	// Financial
	case "first_dollar":
		return facts.HasPaidSession()
	}
	return false, nil
}

// HasPacedWeek reports whether the 7 most recent distinct session days
// contain no single session longer than 6 hours. Requires at least 7
// distinct session days of history.
func HasPacedWeek(sessions []models.Session) bool {
	distinct := make(map[string]bool)
	for i := range sessions {
		distinct[sessions[i].Date] = true
	}
	if len(distinct) < 7 {
		return false
	}
	dates := make([]string, 0, len(distinct))
	for d := range distinct {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	recent := make(map[string]bool, 7)
	for _, d := range dates[:7] {
		recent[d] = true
	}
	for i := range sessions {
		if recent[sessions[i].Date] && sessions[i].Hours > 6 {
			return false
		}
	}
	return true
}

// HasSustainableWeek reports whether any 7 consecutive distinct session
// days averaged under 8 hours per day
func HasSustainableWeek(sessions []models.Session) bool {
	totals := make(map[string]float64)
	for i := range sessions {
		totals[sessions[i].Date] += sessions[i].Hours
	}
	if len(totals) < 7 {
		return false
	}
	dates := make([]string, 0, len(totals))
	for d := range totals {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for i := 0; i+7 <= len(dates); i++ {
		var sum float64
		for _, d := range dates[i : i+7] {
			sum += totals[d]
		}
		if sum/7 < 8 {
			return true
		}
	}
	return false
}

// HasHumanWeekend reports whether any calendar week with weekend activity
// stayed under 3 hours total across Saturday and Sunday. Weeks without
// any weekend session do not count.
func HasHumanWeekend(sessions []models.Session) bool {
	weekendHours := make(map[string]float64)
	for i := range sessions {
		idx, ok := WeekdayIndex(sessions[i].Date)
		if !ok || (idx != 0 && idx != 6) {
			continue
		}
		if week, ok := WeekKey(sessions[i].Date); ok {
			weekendHours[week] += sessions[i].Hours
		}
	}
	for _, h := range weekendHours {
		if h < 3 {
			return true
		}
	}
	return false
}
