package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronodesk/chronodesk/internal/advisor"
	"github.com/chronodesk/chronodesk/internal/analytics"
	"github.com/chronodesk/chronodesk/internal/logger"
)

var adviseDays int

var adviseCmd = &cobra.Command{
	Use:   "advise <question>",
	Short: "Ask the AI advisor about your work patterns",
	Example: `  chronodesk advise "Am I working too much?"
  chronodesk advise "How do I hit my vacation fund faster?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")
		now := time.Now()

		aiCtx, err := buildAdvisorContext(adviseDays, now)
		if err != nil {
			return err
		}

		license, err := store.GetLicense()
		if err != nil {
			return err
		}
		key := ""
		if license.LicenseKey != nil {
			key = *license.LicenseKey
		}
		deviceID, err := ensureDeviceID()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		resp, err := remote.Ask(ctx, key, deviceID, question, aiCtx)
		if err != nil {
			return err
		}

		if err := store.LogEvent(analytics.EventViewAdvisor, nil); err != nil {
			logger.Warn("failed to record advisor use", "error", err)
		}

		fmt.Printf("🤖 %s\n", resp.Content)
		fmt.Printf("\n   %d of %d advisor queries left today\n", resp.RemainingQueries, resp.DailyLimit)
		notifyNewAchievements()
		return nil
	}),
}

// buildAdvisorContext snapshots today plus a trailing window of
// analytics for the advisor prompt
func buildAdvisorContext(days int, now time.Time) (advisor.AIContext, error) {
	var aiCtx advisor.AIContext

	todaySessions, err := store.SessionsByDate(analytics.DateOf(now))
	if err != nil {
		return aiCtx, err
	}
	for i := range todaySessions {
		aiCtx.TodayHours += todaySessions[i].Hours
		aiCtx.TodayPay += todaySessions[i].Pay()
	}
	aiCtx.TodaySessions = len(todaySessions)

	start := analytics.DateOf(now.AddDate(0, 0, -days))
	window, err := store.SessionsInRange(start, analytics.DateOf(now))
	if err != nil {
		return aiCtx, err
	}
	summary := analytics.Compute(window).Summary
	aiCtx.PeriodTotalHours = summary.TotalHours
	aiCtx.PeriodTotalSessions = summary.TotalSessions
	aiCtx.PeriodTotalPay = summary.TotalPay
	aiCtx.PeriodAvgSession = summary.AvgSessionLength
	aiCtx.PeriodLongestSession = summary.LongestSession

	all, err := store.ListAllSessions()
	if err != nil {
		return aiCtx, err
	}
	aiCtx.AvgWeeklyHours = analytics.AvgWeeklyHours(all, now)
	aiCtx.AvgWeeklyIncome = analytics.AvgWeeklyIncome(all, now)

	goals, err := store.ListGoals()
	if err != nil {
		return aiCtx, err
	}
	aiCtx.GoalsCount = len(goals)
	parts := make([]string, 0, len(goals))
	for i := range goals {
		g := &goals[i]
		parts = append(parts, fmt.Sprintf("%s: $%.0f of $%.0f", g.Name, g.CurrentAmount, g.TargetAmount))
	}
	aiCtx.GoalsSummary = strings.Join(parts, "; ")

	return aiCtx, nil
}

func init() {
	adviseCmd.Flags().IntVar(&adviseDays, "days", 30, "Analytics window sent as context")
}
