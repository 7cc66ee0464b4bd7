package commands

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronodesk/chronodesk/internal/analytics"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show earnings and today's hours",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		now := time.Now()

		sessions, err := store.ListSessions()
		if err != nil {
			return err
		}
		pay := analytics.ComputePaySummary(sessions, now)

		fmt.Println("💰 Earnings")
		fmt.Printf("  Today:      $%.2f\n", pay.Today)
		fmt.Printf("  This month: $%.2f\n", pay.ThisMonth)
		fmt.Printf("  This year:  $%.2f\n", pay.ThisYear)
		fmt.Printf("  All time:   $%.2f\n", pay.AllTime)

		todaySessions, err := store.SessionsByDate(analytics.Today())
		if err != nil {
			return err
		}
		types, err := store.ListSessionTypes()
		if err != nil {
			return err
		}
		today := analytics.ComputeTodaySummary(todaySessions, types, now)

		fmt.Printf("\n📅 Today (%s): %.1fh", today.Date, today.TotalHours)
		if today.TotalPay > 0 {
			fmt.Printf(", $%.2f", today.TotalPay)
		}
		fmt.Println()

		names := make([]string, 0, len(today.SessionHours))
		for name := range today.SessionHours {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-12s %.1fh\n", name, today.SessionHours[name])
		}
		return nil
	}),
}
