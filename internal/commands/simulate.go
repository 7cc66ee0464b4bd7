package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronodesk/chronodesk/internal/analytics"
	"github.com/chronodesk/chronodesk/internal/db"
	"github.com/chronodesk/chronodesk/internal/models"
)

var (
	simHours    float64
	simRate     float64
	simExpenses float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project a weekly work scenario against your goals",
	Long: `simulate projects what a given weekly workload would earn and how fast
it would complete your financial goals. Hours and rate default to your
recent averages when not given.`,
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		license, err := store.GetLicense()
		if err != nil {
			return err
		}
		if err := db.RequireFeature(models.LimitsForTier(license.Tier).HasSimulator, "The simulator"); err != nil {
			return err
		}

		if err := validateScenario(simHours, simRate, simExpenses); err != nil {
			return err
		}

		now := time.Now()
		sessions, err := store.ListAllSessions()
		if err != nil {
			return err
		}
		baseHours, baseRate := analytics.Baseline(sessions, now)
		if !cmd.Flags().Changed("hours") {
			simHours = baseHours
		}
		if !cmd.Flags().Changed("rate") {
			simRate = baseRate
		}

		goals, err := store.ListGoals()
		if err != nil {
			return err
		}
		result := analytics.Simulate(goals, simHours, simRate, simExpenses, now)

		fmt.Printf("🧮 Scenario: %.1fh/week at $%.2f/h, $%.2f/week expenses\n\n", simHours, simRate, simExpenses)
		fmt.Printf("  Income:   $%.2f/week  $%.2f/month  $%.2f/year\n", result.WeeklyIncome, result.MonthlyIncome, result.YearlyIncome)
		fmt.Printf("  Savings:  $%.2f/week  $%.2f/month  $%.2f/year\n", result.WeeklySavings, result.MonthlySavings, result.YearlySavings)
		fmt.Printf("  Sustainability: %.0f/100\n", result.SustainabilityScore)

		if len(result.GoalProjections) > 0 {
			fmt.Println("\n  Goals:")
			for _, p := range result.GoalProjections {
				if p.WeeksToComplete == nil {
					fmt.Printf("    %s: $%.2f remaining, never completes at this savings rate\n", p.GoalName, p.Remaining)
					continue
				}
				fmt.Printf("    %s: $%.2f remaining, ~%.0f weeks (%s)\n", p.GoalName, p.Remaining, *p.WeeksToComplete, *p.CompletionDate)
			}
		}

		if len(result.Insights) > 0 {
			fmt.Println()
			for _, insight := range result.Insights {
				fmt.Printf("  %s\n", insight)
			}
		}
		return nil
	}),
}

// validateScenario rejects negative scenario inputs before they reach the
// projection math
func validateScenario(hours, rate, expenses float64) error {
	if hours < 0 {
		return fmt.Errorf("hours cannot be negative")
	}
	if rate < 0 {
		return fmt.Errorf("rate cannot be negative")
	}
	if expenses < 0 {
		return fmt.Errorf("expenses cannot be negative")
	}
	return nil
}

func init() {
	simulateCmd.Flags().Float64Var(&simHours, "hours", 0, "Hours worked per week")
	simulateCmd.Flags().Float64Var(&simRate, "rate", 0, "Hourly rate")
	simulateCmd.Flags().Float64Var(&simExpenses, "expenses", 0, "Weekly expenses")
}
