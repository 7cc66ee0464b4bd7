package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/chronodesk/chronodesk/internal/analytics"
	"github.com/chronodesk/chronodesk/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive overview",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		now := time.Now()

		all, err := store.ListAllSessions()
		if err != nil {
			return err
		}
		todaySessions, err := store.SessionsByDate(analytics.DateOf(now))
		if err != nil {
			return err
		}
		types, err := store.ListSessionTypes()
		if err != nil {
			return err
		}

		focusStart := analytics.DateOf(now.AddDate(0, 0, -30))
		focusWindow, err := store.SessionsInRange(focusStart, analytics.DateOf(now))
		if err != nil {
			return err
		}
		dates := make([]string, len(all))
		for i := range all {
			dates[i] = all[i].Date
		}

		burnoutStart := analytics.DateOf(now.AddDate(0, 0, -14))
		burnoutWindow, err := store.SessionsInRange(burnoutStart, analytics.DateOf(now))
		if err != nil {
			return err
		}

		goals, err := store.ListGoals()
		if err != nil {
			return err
		}
		weeklyIncome := analytics.AvgWeeklyIncome(all, now)
		rows := make([]tui.GoalRow, len(goals))
		for i := range goals {
			rows[i] = tui.GoalRow{Goal: goals[i], ETA: analytics.GoalETA(&goals[i], weeklyIncome)}
		}

		data := tui.DashboardData{
			Pay:     analytics.ComputePaySummary(all, now),
			Today:   analytics.ComputeTodaySummary(todaySessions, types, now),
			Focus:   analytics.ComputeFocus(focusWindow, dates, now),
			Burnout: analytics.ComputeBurnout(burnoutWindow, 14),
			Goals:   rows,
		}
		return tui.RunDashboard(data)
	}),
}
