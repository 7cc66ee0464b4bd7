package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronodesk/chronodesk/internal/analytics"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze income trend and goal progress",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		sessions, err := store.ListAllSessions()
		if err != nil {
			return err
		}
		goals, err := store.ListGoals()
		if err != nil {
			return err
		}

		analysis := analytics.Analyze(sessions, goals, now)

		trendIcon := "➡️"
		switch analysis.IncomeTrend {
		case analytics.TrendIncreasing:
			trendIcon = "📈"
		case analytics.TrendDecreasing:
			trendIcon = "📉"
		}

		fmt.Println("🔍 Financial analysis (last 4 weeks vs the 4 before)")
		fmt.Printf("\n  Avg weekly hours:  %.1fh\n", analysis.AvgWeeklyHours)
		fmt.Printf("  Avg weekly income: $%.2f\n", analysis.AvgWeeklyIncome)
		fmt.Printf("  Projected:         $%.2f/month  $%.2f/year\n", analysis.ProjectedMonthlyIncome, analysis.ProjectedYearlyIncome)
		fmt.Printf("  Income trend:      %s %s\n", trendIcon, analysis.IncomeTrend)

		for _, insight := range analysis.Insights {
			icon := "ℹ️"
			if insight.Severity == "warning" {
				icon = "⚠️"
			} else if insight.Severity == "success" {
				icon = "✅"
			}
			fmt.Printf("\n  %s %s\n     %s\n", icon, insight.Title, insight.Message)
			if insight.Action != nil {
				fmt.Printf("     → %s\n", *insight.Action)
			}
		}

		if len(analysis.Recommendations) > 0 {
			fmt.Println()
			for _, r := range analysis.Recommendations {
				fmt.Printf("  💡 %s\n", r)
			}
		}
		return nil
	}),
}
