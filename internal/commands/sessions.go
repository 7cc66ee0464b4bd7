package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chronodesk/chronodesk/internal/analytics"
	"github.com/chronodesk/chronodesk/internal/models"
)

var (
	listType  string
	listDate  string
	listToday bool
)

var listCmd = &cobra.Command{
	Use:   "ls",
	Short: "List logged sessions",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		var sessions []models.Session
		var err error

		switch {
		case listToday:
			sessions, err = store.SessionsByDate(analytics.Today())
		case listDate != "":
			sessions, err = store.SessionsByDate(listDate)
		case listType != "":
			var st *models.SessionType
			st, err = store.SessionTypeByName(listType)
			if err != nil {
				return err
			}
			sessions, err = store.SessionsByType(st.ID)
		default:
			sessions, err = store.ListSessions()
		}
		if err != nil {
			return err
		}

		if len(sessions) == 0 {
			fmt.Println("📭 No sessions found")
			return nil
		}

		fmt.Printf("📋 %d session(s):\n\n", len(sessions))
		for _, s := range sessions {
			printSession(s)
		}
		return nil
	}),
}

func printSession(s models.Session) {
	fmt.Printf("  #%d  %s  %-10s %.1fh", s.ID, s.Date, s.CategoryName(), s.Hours)
	if s.ProjectName != "" {
		fmt.Printf("  %s", s.ProjectName)
	}
	if pay := s.Pay(); pay > 0 {
		fmt.Printf("  $%.2f", pay)
	}
	fmt.Println()
}

var (
	editHours   float64
	editDate    string
	editProject string
)

var editCmd = &cobra.Command{
	Use:   "edit <session-id>",
	Short: "Edit a logged session",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid session id %q", args[0])
		}
		session, err := store.GetSession(uint(id))
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("hours") {
			session.Hours = editHours
		}
		if cmd.Flags().Changed("date") {
			if _, err := analytics.ParseDate(editDate); err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", editDate)
			}
			session.Date = editDate
		}
		if cmd.Flags().Changed("project") {
			session.ProjectName = editProject
		}
		if err := store.UpdateSession(session); err != nil {
			return err
		}
		fmt.Printf("✅ Updated session #%d\n", session.ID)
		return nil
	}),
}

var rmCmd = &cobra.Command{
	Use:   "rm <session-id>",
	Short: "Delete a session",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid session id %q", args[0])
		}
		session, err := store.GetSession(uint(id))
		if err != nil {
			return err
		}
		if err := store.DeleteSession(session.ID); err != nil {
			return err
		}
		fmt.Printf("🗑️  Deleted session #%d (%.1fh of %s on %s)\n",
			session.ID, session.Hours, session.CategoryName(), session.Date)
		return nil
	}),
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "Filter by category name")
	listCmd.Flags().StringVarP(&listDate, "date", "d", "", "Filter by date (YYYY-MM-DD)")
	listCmd.Flags().BoolVar(&listToday, "today", false, "Only show today's sessions")

	editCmd.Flags().Float64Var(&editHours, "hours", 0, "Hours worked (0.1 - 24)")
	editCmd.Flags().StringVar(&editDate, "date", "", "Session date (YYYY-MM-DD)")
	editCmd.Flags().StringVar(&editProject, "project", "", "Project name")
}
