package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronodesk/chronodesk/internal/analytics"
)

var focusDays int

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Show the focus score for a trailing window",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		days, err := clampAnalyticsDays(focusDays)
		if err != nil {
			return err
		}

		start := analytics.DateOf(now.AddDate(0, 0, -days))
		window, err := store.SessionsInRange(start, analytics.DateOf(now))
		if err != nil {
			return err
		}
		all, err := store.ListAllSessions()
		if err != nil {
			return err
		}
		dates := make([]string, len(all))
		for i := range all {
			dates[i] = all[i].Date
		}

		metrics := analytics.ComputeFocus(window, dates, now)

		fmt.Printf("🎯 Focus score: %.0f/100 (last %d days)\n\n", metrics.FocusScore, days)
		fmt.Printf("  Avg session:    %.1fh over %d session(s)\n", metrics.AvgSessionLength, metrics.SessionCount)
		fmt.Printf("  Fragmentation:  %.0f/100\n", metrics.FragmentationScore)
		fmt.Printf("  Current streak: %d day(s)\n", metrics.CurrentStreakDays)
		fmt.Printf("  Longest streak: %d day(s)\n", metrics.LongestStreakDays)
		return nil
	}),
}

func init() {
	focusCmd.Flags().IntVar(&focusDays, "days", 30, "Window length in days")
}
