package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronodesk/chronodesk/internal/analytics"
	"github.com/chronodesk/chronodesk/internal/logger"
	"github.com/chronodesk/chronodesk/internal/models"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the analytics breakdown for a trailing window",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		days, err := clampAnalyticsDays(statsDays)
		if err != nil {
			return err
		}

		start := analytics.DateOf(now.AddDate(0, 0, -days))
		sessions, err := store.SessionsInRange(start, analytics.DateOf(now))
		if err != nil {
			return err
		}
		data := analytics.Compute(sessions)

		fmt.Printf("📊 Last %d days\n\n", days)
		fmt.Printf("  Sessions:     %d\n", data.Summary.TotalSessions)
		fmt.Printf("  Total hours:  %.1fh\n", data.Summary.TotalHours)
		fmt.Printf("  Avg session:  %.1fh\n", data.Summary.AvgSessionLength)
		fmt.Printf("  Longest:      %.1fh\n", data.Summary.LongestSession)
		fmt.Printf("  Earned:       $%.2f\n", data.Summary.TotalPay)

		if len(data.CategoryBreakdown) > 0 {
			fmt.Println("\n  By category:")
			for _, c := range data.CategoryBreakdown {
				fmt.Printf("    %-12s %.1fh in %d session(s)", c.Category, c.Hours, c.Sessions)
				if c.Pay > 0 {
					fmt.Printf("  $%.2f", c.Pay)
				}
				fmt.Println()
			}
		}

		fmt.Println("\n  By weekday:")
		for _, w := range data.WeekdayBreakdown {
			bar := strings.Repeat("█", int(w.Hours))
			fmt.Printf("    %s  %5.1fh  %s\n", w.Weekday, w.Hours, bar)
		}

		recordAnalyticsView(fmt.Sprintf("%dd", days))
		notifyNewAchievements()
		return nil
	}),
}

// clampAnalyticsDays enforces the tier's analytics window
func clampAnalyticsDays(days int) (int, error) {
	if days <= 0 {
		return 0, fmt.Errorf("days must be positive")
	}
	license, err := store.GetLicense()
	if err != nil {
		return 0, err
	}
	max := 0
	if l := models.LimitsForTier(license.Tier).AnalyticsDays; l != nil {
		max = *l
	}
	if max > 0 && days > max {
		fmt.Printf("🔒 The Free tier covers %d days of analytics, showing %d.\n\n", max, max)
		return max, nil
	}
	return days, nil
}

func recordAnalyticsView(rangeLabel string) {
	if err := store.LogEvent(analytics.EventViewAnalytics, nil); err != nil {
		logger.Warn("failed to record analytics view", "error", err)
		return
	}
	if err := store.LogEvent(analytics.EventAnalyticsRange, &rangeLabel); err != nil {
		logger.Warn("failed to record analytics range", "error", err)
	}
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 30, "Window length in days")
}
