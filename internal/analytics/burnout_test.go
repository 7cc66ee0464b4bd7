package analytics

import (
	"testing"

	"github.com/chronodesk/chronodesk/internal/models"
)

// fortnight logs hoursPerDay on each of daysActive consecutive days
// ending 2026-08-28
func fortnight(daysActive int, hoursPerDay float64) []models.Session {
	end := date("2026-08-28")
	var sessions []models.Session
	for i := 0; i < daysActive; i++ {
		sessions = append(sessions, unpaid(DateOf(end.AddDate(0, 0, -i)), hoursPerDay, "Work"))
	}
	return sessions
}

func TestComputeBurnout_EmptyWindowIsLowRisk(t *testing.T) {
	risk := ComputeBurnout(nil, 14)
	if risk.RiskScore != 0 {
		t.Errorf("RiskScore = %f, want 0", risk.RiskScore)
	}
	if risk.RiskLevel != RiskLow {
		t.Errorf("RiskLevel = %s, want %s", risk.RiskLevel, RiskLow)
	}
	if len(risk.Factors) != 4 {
		t.Fatalf("Factors = %d, want 4", len(risk.Factors))
	}
	for _, f := range risk.Factors {
		if f.Severity != SeverityOK {
			t.Errorf("factor %s severity = %s, want ok", f.Name, f.Severity)
		}
	}
}

func TestComputeBurnout_HighWeeklyHours(t *testing.T) {
	// 8h on every one of 14 days: 56h/week, zero rest days, no variation
	risk := ComputeBurnout(fortnight(14, 8), 14)

	// weekly hours warning (20) + rest days danger (30)
	if risk.RiskScore != 50 {
		t.Errorf("RiskScore = %f, want 50", risk.RiskScore)
	}
	if risk.RiskLevel != RiskHigh {
		t.Errorf("RiskLevel = %s, want %s", risk.RiskLevel, RiskHigh)
	}
}

func TestComputeBurnout_ModerateLoad(t *testing.T) {
	// 8h on 10 of 14 days: 40h/week, 4 rest days, longest 8h, no variation
	risk := ComputeBurnout(fortnight(10, 8), 14)

	if risk.RiskScore != 0 {
		t.Errorf("RiskScore = %f, want 0", risk.RiskScore)
	}
	if risk.RiskLevel != RiskLow {
		t.Errorf("RiskLevel = %s, want %s", risk.RiskLevel, RiskLow)
	}
}

func TestComputeBurnout_LongSessionsAreDanger(t *testing.T) {
	sessions := fortnight(10, 6)
	sessions = append(sessions, unpaid("2026-08-10", 11, "Work"))

	risk := ComputeBurnout(sessions, 14)
	var factor BurnoutFactor
	for _, f := range risk.Factors {
		if f.Name == "Longest Session" {
			factor = f
		}
	}
	if factor.Severity != SeverityDanger {
		t.Errorf("Longest Session severity = %s, want danger for an 11h session", factor.Severity)
	}
}

func TestComputeBurnout_RecommendationPerFlaggedFactor(t *testing.T) {
	// 12h daily for 14 days: 84h/week danger, 12h longest danger,
	// 0 rest days danger, no variation
	risk := ComputeBurnout(fortnight(14, 12), 14)

	if risk.RiskScore != 90 {
		t.Errorf("RiskScore = %f, want 90 (35+25+30)", risk.RiskScore)
	}
	if risk.RiskLevel != RiskCritical {
		t.Errorf("RiskLevel = %s, want %s", risk.RiskLevel, RiskCritical)
	}
	if len(risk.Recommendations) != 3 {
		t.Errorf("Recommendations = %d, want 3 (one per flagged factor)", len(risk.Recommendations))
	}
}
