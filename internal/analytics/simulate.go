package analytics

import (
	"fmt"
	"time"

	"github.com/chronodesk/chronodesk/internal/models"
)

// GoalProjection estimates when a goal completes at simulated savings
type GoalProjection struct {
	GoalID          uint     `json:"goal_id"`
	GoalName        string   `json:"goal_name"`
	Remaining       float64  `json:"remaining"`
	WeeksToComplete *float64 `json:"weeks_to_complete"`
	CompletionDate  *string  `json:"completion_date"`
}

// SimulationResult is the outcome of a what-if financial scenario
type SimulationResult struct {
	WeeklyIncome        float64          `json:"weekly_income"`
	WeeklySavings       float64          `json:"weekly_savings"`
	MonthlyIncome       float64          `json:"monthly_income"`
	MonthlySavings      float64          `json:"monthly_savings"`
	YearlyIncome        float64          `json:"yearly_income"`
	YearlySavings       float64          `json:"yearly_savings"`
	GoalProjections     []GoalProjection `json:"goal_projections"`
	SustainabilityScore float64          `json:"sustainability_score"` // 0-100
	Insights            []string         `json:"insights"`
}

// weeksPerMonth converts weekly figures to calendar months
const weeksPerMonth = 4.33

// Simulate projects a weekly work scenario against the current goals.
// Goals never complete when savings are zero or negative, which leaves
// WeeksToComplete and CompletionDate unset.
func Simulate(goals []models.FinancialGoal, hoursPerWeek, hourlyRate, weeklyExpenses float64, now time.Time) SimulationResult {
	weeklyIncome := hoursPerWeek * hourlyRate
	weeklySavings := weeklyIncome - weeklyExpenses

	projections := make([]GoalProjection, 0, len(goals))
	for i := range goals {
		g := &goals[i]
		p := GoalProjection{
			GoalID:    g.ID,
			GoalName:  g.Name,
			Remaining: g.RemainingAmount(),
		}
		if weeklySavings > 0 {
			weeks := p.Remaining / weeklySavings
			p.WeeksToComplete = &weeks
			date := DateOf(now.AddDate(0, 0, int(weeks*7)))
			p.CompletionDate = &date
		}
		projections = append(projections, p)
	}

	var sustainability float64
	switch {
	case weeklyIncome == 0:
		sustainability = 0
	case weeklySavings <= 0:
		sustainability = weeklyIncome / weeklyExpenses * 50
		if sustainability > 50 {
			sustainability = 50
		}
	default:
		sustainability = 50 + weeklySavings/weeklyIncome*50
		if sustainability > 100 {
			sustainability = 100
		}
	}

	var insights []string
	switch {
	case weeklySavings < 0:
		insights = append(insights, fmt.Sprintf(
			"⚠️ Deficit of $%.2f/week. You need $%.2f more income or reduce expenses.",
			-weeklySavings, -weeklySavings))
	case weeklySavings < weeklyIncome*0.1:
		insights = append(insights, "💡 Savings rate under 10%. Consider reducing expenses.")
	case weeklySavings > weeklyIncome*0.3:
		insights = append(insights, "✅ Great savings rate! Over 30% of income saved.")
	}
	switch {
	case hoursPerWeek > 50:
		insights = append(insights, "⚠️ Working over 50 hrs/week risks burnout.")
	case hoursPerWeek < 20 && weeklySavings < 0:
		insights = append(insights, "💡 Consider increasing hours to close the deficit.")
	}
	if hourlyRate < 25 && hoursPerWeek > 40 {
		insights = append(insights, "💡 Low rate + long hours. Consider raising your rate.")
	}

	return SimulationResult{
		WeeklyIncome:        weeklyIncome,
		WeeklySavings:       weeklySavings,
		MonthlyIncome:       weeklyIncome * weeksPerMonth,
		MonthlySavings:      weeklySavings * weeksPerMonth,
		YearlyIncome:        weeklyIncome * 52,
		YearlySavings:       weeklySavings * 52,
		GoalProjections:     projections,
		SustainabilityScore: sustainability,
		Insights:            insights,
	}
}

// Baseline derives the simulator's prefill values from recent history:
// average weekly hours and the effective hourly rate, defaulting to 30
// when there are no tracked hours yet.
func Baseline(sessions []models.Session, now time.Time) (avgWeeklyHours, avgHourlyRate float64) {
	avgWeeklyHours = AvgWeeklyHours(sessions, now)
	avgHourlyRate = 30
	if avgWeeklyHours > 0 {
		avgHourlyRate = AvgWeeklyIncome(sessions, now) / avgWeeklyHours
	}
	return avgWeeklyHours, avgHourlyRate
}
