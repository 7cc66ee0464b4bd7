package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronodesk/chronodesk/internal/analytics"
)

var burnoutDays int

var burnoutCmd = &cobra.Command{
	Use:   "burnout",
	Short: "Assess burnout risk over a trailing window",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		if burnoutDays < 7 {
			return fmt.Errorf("burnout needs at least a 7 day window")
		}

		start := analytics.DateOf(now.AddDate(0, 0, -burnoutDays))
		sessions, err := store.SessionsInRange(start, analytics.DateOf(now))
		if err != nil {
			return err
		}

		risk := analytics.ComputeBurnout(sessions, burnoutDays)

		icon := "🟢"
		switch risk.RiskLevel {
		case analytics.RiskModerate:
			icon = "🟡"
		case analytics.RiskHigh:
			icon = "🟠"
		case analytics.RiskCritical:
			icon = "🔴"
		}
		fmt.Printf("%s Burnout risk: %s (%.0f/100, last %d days)\n\n", icon, risk.RiskLevel, risk.RiskScore, burnoutDays)

		for _, f := range risk.Factors {
			mark := "✓"
			if f.Severity == analytics.SeverityWarning {
				mark = "⚠️"
			} else if f.Severity == analytics.SeverityDanger {
				mark = "❗"
			}
			fmt.Printf("  %s %-16s %s (threshold %s)\n", mark, f.Name, f.Value, f.Threshold)
		}

		if len(risk.Recommendations) > 0 {
			fmt.Println()
			for _, r := range risk.Recommendations {
				fmt.Printf("  💡 %s\n", r)
			}
		}
		return nil
	}),
}

func init() {
	burnoutCmd.Flags().IntVar(&burnoutDays, "days", 14, "Window length in days")
}
