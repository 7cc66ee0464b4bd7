package analytics

import (
	"strings"
	"testing"

	"github.com/chronodesk/chronodesk/internal/models"
)

func TestAnalyze_TrendRequiresTenPercentMove(t *testing.T) {
	now := date("2026-08-28")
	older := hourly("2026-07-10", 10, 100, "Work") // prior 4 weeks: $1000

	cases := []struct {
		name        string
		recentHours float64
		want        string
	}{
		{"exactly 110% is still stable", 11, TrendStable},
		{"above 110% is increasing", 11.01, TrendIncreasing},
		{"exactly 90% is still stable", 9, TrendStable},
		{"below 90% is decreasing", 8.99, TrendDecreasing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sessions := []models.Session{
				older,
				hourly("2026-08-20", tc.recentHours, 100, "Work"),
			}
			got := Analyze(sessions, nil, now).IncomeTrend
			if got != tc.want {
				t.Errorf("trend = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestAnalyze_EmptyHistoryIsStable(t *testing.T) {
	now := date("2026-08-28")

	analysis := Analyze(nil, nil, now)
	if analysis.IncomeTrend != TrendStable {
		t.Errorf("trend = %s, want stable", analysis.IncomeTrend)
	}
	if len(analysis.Insights) != 0 {
		t.Errorf("no income should mean no income insight, got %v", analysis.Insights)
	}
	if len(analysis.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %v", analysis.Recommendations)
	}
}

func TestAnalyze_DecreasingIncomeCarriesAction(t *testing.T) {
	now := date("2026-08-28")
	sessions := []models.Session{
		hourly("2026-07-10", 10, 100, "Work"), // $1000 older
		hourly("2026-08-20", 5, 100, "Work"),  // $500 recent
	}

	analysis := Analyze(sessions, nil, now)
	if analysis.IncomeTrend != TrendDecreasing {
		t.Fatalf("trend = %s, want decreasing", analysis.IncomeTrend)
	}

	var income *FinancialInsight
	for i := range analysis.Insights {
		if analysis.Insights[i].Category == "income" {
			income = &analysis.Insights[i]
		}
	}
	if income == nil {
		t.Fatal("expected an income insight")
	}
	if income.Severity != "warning" || income.Action == nil {
		t.Errorf("decreasing income insight = %+v, want warning with an action", income)
	}

	found := false
	for _, r := range analysis.Recommendations {
		if strings.Contains(r, "trending down") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a trending-down recommendation, got %v", analysis.Recommendations)
	}
}

func TestAnalyze_AlmostCompleteGoal(t *testing.T) {
	now := date("2026-08-28")
	goals := []models.FinancialGoal{
		{Name: "Laptop", TargetAmount: 1000, CurrentAmount: 950},
		{Name: "Done", TargetAmount: 1000, CurrentAmount: 1000},
		{Name: "Early", TargetAmount: 1000, CurrentAmount: 100},
	}

	analysis := Analyze(nil, goals, now)
	var goalInsights []FinancialInsight
	for _, in := range analysis.Insights {
		if in.Category == "goals" {
			goalInsights = append(goalInsights, in)
		}
	}
	if len(goalInsights) != 1 {
		t.Fatalf("goal insights = %d, want 1 (only the 90-100%% goal)", len(goalInsights))
	}
	if !strings.Contains(goalInsights[0].Title, "Laptop") {
		t.Errorf("insight title = %q, want it to name Laptop", goalInsights[0].Title)
	}
}

func TestAnalyze_WeeksToClearRecommendation(t *testing.T) {
	now := date("2026-08-28")
	sessions := []models.Session{hourly("2026-08-20", 8, 50, "Work")} // $100/week avg
	goals := []models.FinancialGoal{{Name: "Fund", TargetAmount: 500, CurrentAmount: 100}}

	analysis := Analyze(sessions, goals, now)
	found := false
	for _, r := range analysis.Recommendations {
		if strings.Contains(r, "~4 weeks") && strings.Contains(r, "$400.00 remaining") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a pace recommendation for $400 over $100/week, got %v", analysis.Recommendations)
	}

	// Fully funded goals produce no pace recommendation
	goals[0].CurrentAmount = 500
	analysis = Analyze(sessions, goals, now)
	for _, r := range analysis.Recommendations {
		if strings.Contains(r, "weeks") {
			t.Errorf("unexpected pace recommendation with nothing remaining: %q", r)
		}
	}
}

func TestAnalyze_HighHoursInsight(t *testing.T) {
	now := date("2026-08-28")
	// 208h in the window / 4 = 52h/week average
	var sessions []models.Session
	for i := 0; i < 26; i++ {
		sessions = append(sessions, unpaid(DateOf(now.AddDate(0, 0, -i)), 8, "Work"))
	}

	analysis := Analyze(sessions, nil, now)
	found := false
	for _, in := range analysis.Insights {
		if in.Category == "sustainability" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a sustainability insight above 50h/week, got %v", analysis.Insights)
	}
}
