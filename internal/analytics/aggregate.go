package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/chronodesk/chronodesk/internal/models"
)

// PaySummary sums session pay over four fixed windows anchored at now
type PaySummary struct {
	Today     float64 `json:"today"`
	ThisMonth float64 `json:"this_month"`
	ThisYear  float64 `json:"this_year"`
	AllTime   float64 `json:"all_time"`
}

// ComputePaySummary scans all sessions once per window. Each window is an
// independent filter, no incremental state.
func ComputePaySummary(sessions []models.Session, now time.Time) PaySummary {
	today := DateOf(now)
	monthStart := now.Format("2006-01") + "-01"
	yearStart := now.Format("2006") + "-01-01"

	var sum PaySummary
	for i := range sessions {
		s := &sessions[i]
		pay := s.Pay()
		sum.AllTime += pay
		if s.Date == today {
			sum.Today += pay
		}
		if s.Date >= monthStart && s.Date <= today {
			sum.ThisMonth += pay
		}
		if s.Date >= yearStart && s.Date <= today {
			sum.ThisYear += pay
		}
	}
	return sum
}

// Summary holds the roll-up stats for an analytics range
type Summary struct {
	TotalHours       float64 `json:"total_hours"`
	TotalSessions    int     `json:"total_sessions"`
	AvgSessionLength float64 `json:"avg_session_length"`
	LongestSession   float64 `json:"longest_session"`
	TotalPay         float64 `json:"total_pay"`
}

// DailyHours is one day's hour and pay total
type DailyHours struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
	Pay   float64 `json:"pay"`
}

// CategoryBreakdown rolls a range up by session category
type CategoryBreakdown struct {
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Hours    float64 `json:"hours"`
	Sessions int     `json:"sessions"`
	Pay      float64 `json:"pay"`
}

// WeekdayBreakdown rolls a range up by day of week
type WeekdayBreakdown struct {
	Weekday  string  `json:"weekday"`
	Hours    float64 `json:"hours"`
	Sessions int     `json:"sessions"`
}

// Data is the full analytics breakdown for a date range
type Data struct {
	Summary           Summary             `json:"summary"`
	DailyHours        []DailyHours        `json:"daily_hours"`
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
	WeekdayBreakdown  []WeekdayBreakdown  `json:"weekday_breakdown"`
}

// Compute rolls a set of sessions (already filtered to the requested
// range) into the analytics breakdown. All sub-reports degrade to empty
// or zero values on an empty input.
func Compute(sessions []models.Session) Data {
	var summary Summary
	summary.TotalSessions = len(sessions)
	for i := range sessions {
		s := &sessions[i]
		summary.TotalHours += s.Hours
		summary.TotalPay += s.Pay()
		summary.LongestSession = math.Max(summary.LongestSession, s.Hours)
	}
	if summary.TotalSessions > 0 {
		summary.AvgSessionLength = summary.TotalHours / float64(summary.TotalSessions)
	}

	daily := make(map[string]*DailyHours)
	for i := range sessions {
		s := &sessions[i]
		d, ok := daily[s.Date]
		if !ok {
			d = &DailyHours{Date: s.Date}
			daily[s.Date] = d
		}
		d.Hours += s.Hours
		d.Pay += s.Pay()
	}
	dailyHours := make([]DailyHours, 0, len(daily))
	for _, d := range daily {
		dailyHours = append(dailyHours, *d)
	}
	sort.Slice(dailyHours, func(i, j int) bool { return dailyHours[i].Date < dailyHours[j].Date })

	categories := make(map[string]*CategoryBreakdown)
	var categoryOrder []string
	for i := range sessions {
		s := &sessions[i]
		name := s.CategoryName()
		c, ok := categories[name]
		if !ok {
			color := s.SessionType.Color
			if color == "" {
				color = "#6366F1"
			}
			c = &CategoryBreakdown{Category: name, Color: color}
			categories[name] = c
			categoryOrder = append(categoryOrder, name)
		}
		c.Hours += s.Hours
		c.Sessions++
		c.Pay += s.Pay()
	}
	categoryBreakdown := make([]CategoryBreakdown, 0, len(categoryOrder))
	for _, name := range categoryOrder {
		categoryBreakdown = append(categoryBreakdown, *categories[name])
	}

	// All 7 weekdays are always present, Sun through Sat, even when empty.
	// Sessions with unparseable dates are skipped.
	weekdays := make([]WeekdayBreakdown, 7)
	for i := range weekdays {
		weekdays[i].Weekday = WeekdayNames[i]
	}
	for i := range sessions {
		s := &sessions[i]
		if idx, ok := WeekdayIndex(s.Date); ok {
			weekdays[idx].Hours += s.Hours
			weekdays[idx].Sessions++
		}
	}

	return Data{
		Summary:           summary,
		DailyHours:        dailyHours,
		CategoryBreakdown: categoryBreakdown,
		WeekdayBreakdown:  weekdays,
	}
}

// AvgWeeklyHours averages hours over the trailing 4-week window. Weeks
// without activity still count toward the divisor of 4.
func AvgWeeklyHours(sessions []models.Session, now time.Time) float64 {
	start, _ := TrailingWeeks(4, now)
	var total float64
	for i := range sessions {
		if sessions[i].Date >= start {
			total += sessions[i].Hours
		}
	}
	return total / 4
}

// AvgWeeklyIncome averages pay over the trailing 4-week window, divisor
// fixed at 4
func AvgWeeklyIncome(sessions []models.Session, now time.Time) float64 {
	start, _ := TrailingWeeks(4, now)
	var total float64
	for i := range sessions {
		if sessions[i].Date >= start {
			total += sessions[i].Pay()
		}
	}
	return total / 4
}

// TodaySummary is the dashboard roll-up for the current day
type TodaySummary struct {
	Date         string             `json:"date"`
	TotalHours   float64            `json:"total_hours"`
	TotalPay     float64            `json:"total_pay"`
	SessionHours map[string]float64 `json:"session_hours"`
}

// ComputeTodaySummary rolls today's sessions up per category. Every known
// category appears in the map, zero-valued when idle today.
func ComputeTodaySummary(todaySessions []models.Session, types []models.SessionType, now time.Time) TodaySummary {
	sum := TodaySummary{
		Date:         DateOf(now),
		SessionHours: make(map[string]float64, len(types)),
	}
	for _, st := range types {
		sum.SessionHours[st.Name] = 0
	}
	for i := range todaySessions {
		s := &todaySessions[i]
		sum.TotalHours += s.Hours
		sum.TotalPay += s.Pay()
		sum.SessionHours[s.CategoryName()] += s.Hours
	}
	return sum
}

// GoalETA estimates when a goal completes at the current average weekly
// income. Returns nil when income is zero or negative.
func GoalETA(goal *models.FinancialGoal, avgWeeklyIncome float64) *string {
	if avgWeeklyIncome <= 0 {
		return nil
	}
	remaining := goal.RemainingAmount()
	if remaining <= 0 {
		done := "Goal Complete!"
		return &done
	}
	weeks := int64(math.Ceil(remaining / avgWeeklyIncome))
	var eta string
	switch {
	case weeks < 4:
		eta = fmt.Sprintf("%d weeks", weeks)
	case weeks < 52:
		eta = fmt.Sprintf("%d months", int64(math.Ceil(float64(weeks)/4.33)))
	default:
		eta = fmt.Sprintf("%d years", int64(math.Ceil(float64(weeks)/52)))
	}
	return &eta
}
