package analytics

import (
	"strings"
	"testing"

	"github.com/chronodesk/chronodesk/internal/models"
)

func TestSimulate_IncomeAndSavings(t *testing.T) {
	now := date("2026-08-28")
	result := Simulate(nil, 40, 20, 500, now)

	if !approx(result.WeeklyIncome, 800) {
		t.Errorf("WeeklyIncome = %f, want 800", result.WeeklyIncome)
	}
	if !approx(result.WeeklySavings, 300) {
		t.Errorf("WeeklySavings = %f, want 300", result.WeeklySavings)
	}
	if !approx(result.MonthlyIncome, 800*4.33) {
		t.Errorf("MonthlyIncome = %f, want %f", result.MonthlyIncome, 800*4.33)
	}
	if !approx(result.YearlySavings, 300*52) {
		t.Errorf("YearlySavings = %f, want %f", result.YearlySavings, 300.0*52)
	}
	// 50 + 300/800*50 = 68.75
	if !approx(result.SustainabilityScore, 68.75) {
		t.Errorf("SustainabilityScore = %f, want 68.75", result.SustainabilityScore)
	}
}

func TestSimulate_SustainabilityEdges(t *testing.T) {
	now := date("2026-08-28")

	if got := Simulate(nil, 0, 0, 500, now).SustainabilityScore; got != 0 {
		t.Errorf("no income: score = %f, want 0", got)
	}
	// Deficit: income 400, expenses 800 -> 400/800*50 = 25
	if got := Simulate(nil, 20, 20, 800, now).SustainabilityScore; !approx(got, 25) {
		t.Errorf("deficit: score = %f, want 25", got)
	}
	// No expenses: savings rate 100% -> capped at 100
	if got := Simulate(nil, 40, 50, 0, now).SustainabilityScore; !approx(got, 100) {
		t.Errorf("all savings: score = %f, want 100", got)
	}
}

func TestSimulate_GoalProjections(t *testing.T) {
	now := date("2026-08-28")
	goals := []models.FinancialGoal{
		{ID: 1, Name: "Vacation", TargetAmount: 600, CurrentAmount: 0},
	}

	result := Simulate(goals, 40, 20, 500, now) // saves 300/week
	if len(result.GoalProjections) != 1 {
		t.Fatalf("projections = %d, want 1", len(result.GoalProjections))
	}
	p := result.GoalProjections[0]
	if p.WeeksToComplete == nil || !approx(*p.WeeksToComplete, 2) {
		t.Fatalf("WeeksToComplete = %v, want 2", p.WeeksToComplete)
	}
	if p.CompletionDate == nil || *p.CompletionDate != "2026-09-11" {
		t.Errorf("CompletionDate = %v, want 2026-09-11", p.CompletionDate)
	}
}

func TestSimulate_GoalsNeverCompleteInDeficit(t *testing.T) {
	now := date("2026-08-28")
	goals := []models.FinancialGoal{{ID: 1, Name: "Vacation", TargetAmount: 600}}

	result := Simulate(goals, 10, 20, 800, now)
	p := result.GoalProjections[0]
	if p.WeeksToComplete != nil || p.CompletionDate != nil {
		t.Errorf("deficit scenario should leave projection unset, got %+v", p)
	}

	found := false
	for _, insight := range result.Insights {
		if strings.Contains(insight, "Deficit of $600.00/week") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a deficit insight, got %v", result.Insights)
	}
}

func TestSimulate_BurnoutAndRateInsights(t *testing.T) {
	now := date("2026-08-28")

	result := Simulate(nil, 55, 20, 0, now)
	joined := strings.Join(result.Insights, "\n")
	if !strings.Contains(joined, "over 50 hrs/week") {
		t.Errorf("expected a burnout insight at 55h/week, got %v", result.Insights)
	}
	if !strings.Contains(joined, "raising your rate") {
		t.Errorf("expected a low-rate insight at $20/h over 40h, got %v", result.Insights)
	}
}

func TestBaseline(t *testing.T) {
	now := date("2026-08-28")

	hours, rate := Baseline(nil, now)
	if hours != 0 {
		t.Errorf("empty history: hours = %f, want 0", hours)
	}
	if rate != 30 {
		t.Errorf("empty history: rate = %f, want the default 30", rate)
	}

	sessions := []models.Session{
		hourly("2026-08-25", 10, 50, "Work"),
		hourly("2026-08-26", 10, 50, "Work"),
	}
	hours, rate = Baseline(sessions, now)
	if !approx(hours, 5) {
		t.Errorf("hours = %f, want 5", hours)
	}
	if !approx(rate, 50) {
		t.Errorf("rate = %f, want 50 (income / hours)", rate)
	}
}
