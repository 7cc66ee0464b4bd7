package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronodesk/chronodesk/internal/analytics"
	"github.com/chronodesk/chronodesk/internal/models"
)

var (
	logType    string
	logProject string
	logDate    string
	logHours   float64
	logPay     string
	logRate    float64
	logAmount  float64
	logNote    string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a work session",
	Example: `  chronodesk log --type Work --project "API rewrite" --hours 2.5
  chronodesk log --type Work --hours 3 --pay hourly --rate 45
  chronodesk log --type Study --hours 1 --date 2026-08-20`,
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		date := logDate
		if date == "" {
			date = analytics.Today()
		} else if _, err := analytics.ParseDate(date); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
		}

		payType, err := models.ParsePayFlag(logPay)
		if err != nil {
			return err
		}

		st, err := store.SessionTypeByName(logType)
		if err != nil {
			return err
		}

		input := models.NewSession{
			SessionTypeID: st.ID,
			ProjectName:   logProject,
			Date:          date,
			Hours:         logHours,
			PayType:       payType,
			Description:   logNote,
		}
		if cmd.Flags().Changed("rate") {
			input.HourlyRate = &logRate
		}
		if cmd.Flags().Changed("amount") {
			input.FixedAmount = &logAmount
		}

		session, err := store.CreateSession(input)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Logged %.1fh of %s on %s", session.Hours, session.CategoryName(), session.Date)
		if pay := session.Pay(); pay > 0 {
			fmt.Printf(" ($%.2f)", pay)
		}
		fmt.Println()

		notifyPendingHabits()
		notifyNewAchievements()
		return nil
	}),
}

// notifyPendingHabits prints habit reminders triggered by today's sessions
func notifyPendingHabits() {
	pending, err := store.PendingHabits(time.Now())
	if err != nil || len(pending) == 0 {
		return
	}
	for _, h := range pending {
		fmt.Printf("💡 Habit reminder: %s\n", h.Name)
	}
}

// notifyNewAchievements runs the unlock check and announces anything new
func notifyNewAchievements() {
	newIDs, err := analytics.CheckAchievements(store, store, time.Now())
	if err != nil || len(newIDs) == 0 {
		return
	}
	byID := make(map[string]models.AchievementDef, len(models.Achievements))
	for _, def := range models.Achievements {
		byID[def.ID] = def
	}
	for _, id := range newIDs {
		if def, ok := byID[id]; ok {
			fmt.Printf("🏆 Achievement unlocked: %s %s - %s\n", def.Icon, def.Name, def.Description)
		}
	}
}

func init() {
	logCmd.Flags().StringVarP(&logType, "type", "t", "Work", "Session category name")
	logCmd.Flags().StringVarP(&logProject, "project", "p", "", "Project name")
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "Session date (YYYY-MM-DD, default today)")
	logCmd.Flags().Float64Var(&logHours, "hours", 0, "Hours worked (0.1 - 24)")
	logCmd.Flags().StringVar(&logPay, "pay", "", "Pay type: none, hourly or fixed")
	logCmd.Flags().Float64Var(&logRate, "rate", 0, "Hourly rate (with --pay hourly)")
	logCmd.Flags().Float64Var(&logAmount, "amount", 0, "Fixed amount (with --pay fixed)")
	logCmd.Flags().StringVar(&logNote, "note", "", "Free-form note")
	logCmd.MarkFlagRequired("hours")
	logCmd.MarkFlagRequired("project")
}
