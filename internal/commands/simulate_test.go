package commands

import "testing"

func TestValidateScenario(t *testing.T) {
	if err := validateScenario(40, 50, 200); err != nil {
		t.Errorf("valid scenario rejected: %v", err)
	}
	if err := validateScenario(0, 0, 0); err != nil {
		t.Errorf("zero scenario rejected: %v", err)
	}

	tests := []struct {
		name                  string
		hours, rate, expenses float64
	}{
		{"negative hours", -1, 50, 0},
		{"negative rate", 40, -5, 0},
		{"negative expenses", 40, 50, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateScenario(tt.hours, tt.rate, tt.expenses); err == nil {
				t.Error("negative input should be rejected")
			}
		})
	}
}
