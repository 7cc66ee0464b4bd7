package analytics

import (
	"fmt"
	"time"

	"github.com/chronodesk/chronodesk/internal/models"
)

// Income trend classifications
const (
	TrendIncreasing = "increasing"
	TrendStable     = "stable"
	TrendDecreasing = "decreasing"
)

// FinancialInsight is one rule-generated observation
type FinancialInsight struct {
	Category string  `json:"category"` // income, goals, sustainability
	Severity string  `json:"severity"` // info, warning, success
	Title    string  `json:"title"`
	Message  string  `json:"message"`
	Action   *string `json:"action"`
}

// FinancialAnalysis compares recent income against the prior period and
// derives insights and recommendations
type FinancialAnalysis struct {
	AvgWeeklyHours         float64            `json:"avg_weekly_hours"`
	AvgWeeklyIncome        float64            `json:"avg_weekly_income"`
	ProjectedMonthlyIncome float64            `json:"projected_monthly_income"`
	ProjectedYearlyIncome  float64            `json:"projected_yearly_income"`
	IncomeTrend            string             `json:"income_trend"`
	Insights               []FinancialInsight `json:"insights"`
	Recommendations        []string           `json:"recommendations"`
}

// Analyze classifies the income trend over the last 8 weeks and emits
// rule-based insights. The trend is increasing only when recent income
// strictly exceeds 110% of the prior 4 weeks, decreasing below 90%.
func Analyze(sessions []models.Session, goals []models.FinancialGoal, now time.Time) FinancialAnalysis {
	avgHours := AvgWeeklyHours(sessions, now)
	avgIncome := AvgWeeklyIncome(sessions, now)

	fourWeeksAgo := DateOf(now.AddDate(0, 0, -28))
	eightWeeksAgo := DateOf(now.AddDate(0, 0, -56))

	var recentIncome, olderIncome float64
	for i := range sessions {
		s := &sessions[i]
		switch {
		case s.Date > fourWeeksAgo:
			recentIncome += s.Pay()
		case s.Date > eightWeeksAgo:
			olderIncome += s.Pay()
		}
	}

	trend := TrendStable
	switch {
	case recentIncome > olderIncome*1.1:
		trend = TrendIncreasing
	case recentIncome < olderIncome*0.9:
		trend = TrendDecreasing
	}

	var insights []FinancialInsight
	if avgIncome > 0 {
		severity := "info"
		var action *string
		switch trend {
		case TrendIncreasing:
			severity = "success"
		case TrendDecreasing:
			severity = "warning"
			a := "Consider taking on more hours or increasing rates."
			action = &a
		}
		insights = append(insights, FinancialInsight{
			Category: "income",
			Severity: severity,
			Title:    fmt.Sprintf("Income %s over past 8 weeks", trend),
			Message:  fmt.Sprintf("Recent 4 weeks: $%.0f | Previous 4 weeks: $%.0f", recentIncome, olderIncome),
			Action:   action,
		})
	}

	for i := range goals {
		g := &goals[i]
		progress := g.ProgressPercent()
		if progress >= 90 && progress < 100 {
			insights = append(insights, FinancialInsight{
				Category: "goals",
				Severity: "success",
				Title:    fmt.Sprintf("%s almost complete!", g.Name),
				Message:  fmt.Sprintf("%.0f%% complete - only $%.2f to go!", progress, g.RemainingAmount()),
			})
		}
	}

	if avgHours > 50 {
		action := "Review if all tasks are necessary or if rates could increase."
		insights = append(insights, FinancialInsight{
			Category: "sustainability",
			Severity: "warning",
			Title:    "High weekly hours",
			Message:  fmt.Sprintf("Averaging %.1f hours/week. Consider sustainable pacing.", avgHours),
			Action:   &action,
		})
	}

	var recommendations []string
	if avgIncome > 0 && len(goals) > 0 {
		var totalRemaining float64
		for i := range goals {
			totalRemaining += goals[i].RemainingAmount()
		}
		if totalRemaining > 0 {
			recommendations = append(recommendations, fmt.Sprintf(
				"At current pace, all goals complete in ~%.0f weeks ($%.2f remaining)",
				totalRemaining/avgIncome, totalRemaining))
		}
	}
	if trend == TrendDecreasing {
		recommendations = append(recommendations, "Income trending down. Review project pipeline.")
	}

	return FinancialAnalysis{
		AvgWeeklyHours:         avgHours,
		AvgWeeklyIncome:        avgIncome,
		ProjectedMonthlyIncome: avgIncome * weeksPerMonth,
		ProjectedYearlyIncome:  avgIncome * 52,
		IncomeTrend:            trend,
		Insights:               insights,
		Recommendations:        recommendations,
	}
}
