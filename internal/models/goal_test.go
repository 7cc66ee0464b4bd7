package models

import "testing"

func TestFinancialGoal_ProgressPercent(t *testing.T) {
	cases := []struct {
		name    string
		target  float64
		current float64
		want    float64
	}{
		{"halfway", 1000, 500, 50},
		{"overfunded caps at 100", 1000, 1500, 100},
		{"zero target", 0, 500, 0},
		{"untouched", 1000, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := FinancialGoal{TargetAmount: tc.target, CurrentAmount: tc.current}
			if got := g.ProgressPercent(); got != tc.want {
				t.Errorf("ProgressPercent() = %f, want %f", got, tc.want)
			}
		})
	}
}

func TestFinancialGoal_RemainingAmount(t *testing.T) {
	g := FinancialGoal{TargetAmount: 1000, CurrentAmount: 400}
	if got := g.RemainingAmount(); got != 600 {
		t.Errorf("RemainingAmount() = %f, want 600", got)
	}

	g.CurrentAmount = 1200
	if got := g.RemainingAmount(); got != 0 {
		t.Errorf("overfunded RemainingAmount() = %f, want 0", got)
	}
}

func TestParseGoalType(t *testing.T) {
	for _, valid := range []string{"Debt", "Purchase", "Savings"} {
		if _, err := ParseGoalType(valid); err != nil {
			t.Errorf("ParseGoalType(%s) failed: %v", valid, err)
		}
	}
	if _, err := ParseGoalType("Retirement"); err == nil {
		t.Error("unknown goal type should fail")
	}
}

func TestInvoiceStatusOrDraft(t *testing.T) {
	if got := InvoiceStatusOrDraft("Paid"); got != InvoicePaid {
		t.Errorf("InvoiceStatusOrDraft(Paid) = %s, want Paid", got)
	}
	if got := InvoiceStatusOrDraft("Archived"); got != InvoiceDraft {
		t.Errorf("unknown status should degrade to Draft, got %s", got)
	}
}

func TestParseTier_UnknownFallsBackToFree(t *testing.T) {
	if got := ParseTier("Enterprise"); got != TierFree {
		t.Errorf("ParseTier(Enterprise) = %s, want Free", got)
	}
	if got := ParseTier("Lifetime"); got != TierLifetime {
		t.Errorf("ParseTier(Lifetime) = %s, want Lifetime", got)
	}
}

func TestLimitsForTier(t *testing.T) {
	free := LimitsForTier(TierFree)
	if free.MaxSessionTypes == nil || *free.MaxSessionTypes != 2 {
		t.Errorf("Free MaxSessionTypes = %v, want 2", free.MaxSessionTypes)
	}
	if free.HasInvoices || free.HasSimulator {
		t.Error("Free tier should not include invoices or the simulator")
	}
	if !free.HasAdvisor {
		t.Error("Free tier keeps the limited advisor")
	}

	pro := LimitsForTier(TierPro)
	if pro.MaxSessionTypes != nil || pro.MaxGoals != nil || pro.AnalyticsDays != nil {
		t.Error("Pro tier should be unlimited")
	}
	if !pro.HasInvoices || !pro.HasSimulator || !pro.HasAdvisor {
		t.Error("Pro tier should include every feature")
	}
}
