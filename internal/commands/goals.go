package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronodesk/chronodesk/internal/analytics"
	"github.com/chronodesk/chronodesk/internal/models"
)

var (
	goalType     string
	goalTarget   float64
	goalCurrent  float64
	goalDueDate  string
	goalNewGoal  float64
	goalNewByDay string
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Manage financial goals",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		return listGoals()
	}),
}

var goalsListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List financial goals",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		return listGoals()
	}),
}

func listGoals() error {
	goals, err := store.ListGoals()
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		fmt.Println("📭 No goals yet. Add one with 'chronodesk goals add <name>'")
		return nil
	}

	sessions, err := store.ListAllSessions()
	if err != nil {
		return err
	}
	weeklyIncome := analytics.AvgWeeklyIncome(sessions, time.Now())

	fmt.Printf("🎯 %d goal(s):\n\n", len(goals))
	for i := range goals {
		g := &goals[i]
		fmt.Printf("  #%d  %s (%s)\n", g.ID, g.Name, g.GoalType)
		fmt.Printf("      $%.2f of $%.2f (%.0f%%)", g.CurrentAmount, g.TargetAmount, g.ProgressPercent())
		if eta := analytics.GoalETA(g, weeklyIncome); eta != nil {
			fmt.Printf("  ⏱  %s", *eta)
		}
		fmt.Println()
	}
	return nil
}

var goalsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a financial goal",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		check, err := store.CanCreateGoal()
		if err != nil {
			return err
		}
		if !check.Allowed {
			return fmt.Errorf("the Free tier allows %d goals. Upgrade with 'chronodesk license activate'", *check.Limit)
		}

		gt, err := models.ParseGoalType(goalType)
		if err != nil {
			return err
		}
		req := models.NewGoal{
			GoalType:      gt,
			Name:          args[0],
			TargetAmount:  goalTarget,
			CurrentAmount: goalCurrent,
			CreatedDate:   analytics.Today(),
		}
		if goalDueDate != "" {
			if _, err := analytics.ParseDate(goalDueDate); err != nil {
				return fmt.Errorf("invalid target date %q, expected YYYY-MM-DD", goalDueDate)
			}
			req.TargetDate = &goalDueDate
		}

		goal, err := store.CreateGoal(req)
		if err != nil {
			return err
		}
		fmt.Printf("✅ Added goal #%d: %s ($%.2f)\n", goal.ID, goal.Name, goal.TargetAmount)
		return nil
	}),
}

var goalsContributeCmd = &cobra.Command{
	Use:   "contribute <goal-id> <amount>",
	Short: "Add money toward a goal",
	Args:  cobra.ExactArgs(2),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid goal id %q", args[0])
		}
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[1])
		}
		if err := store.AddContribution(uint(id), amount); err != nil {
			return err
		}
		goal, err := store.GetGoal(uint(id))
		if err != nil {
			return err
		}
		fmt.Printf("✅ %s is now at $%.2f of $%.2f (%.0f%%)\n",
			goal.Name, goal.CurrentAmount, goal.TargetAmount, goal.ProgressPercent())
		return nil
	}),
}

var goalsEditCmd = &cobra.Command{
	Use:   "edit <goal-id>",
	Short: "Change a goal's target or date",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid goal id %q", args[0])
		}
		goal, err := store.GetGoal(uint(id))
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("target") {
			if goalNewGoal <= 0 {
				return fmt.Errorf("target amount must be positive")
			}
			goal.TargetAmount = goalNewGoal
		}
		if cmd.Flags().Changed("by") {
			if _, err := analytics.ParseDate(goalNewByDay); err != nil {
				return fmt.Errorf("invalid target date %q, expected YYYY-MM-DD", goalNewByDay)
			}
			goal.TargetDate = &goalNewByDay
		}
		if err := store.UpdateGoal(goal); err != nil {
			return err
		}
		fmt.Printf("✅ Updated goal %s ($%.2f target)\n", goal.Name, goal.TargetAmount)
		return nil
	}),
}

var goalsRmCmd = &cobra.Command{
	Use:   "rm <goal-id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid goal id %q", args[0])
		}
		goal, err := store.GetGoal(uint(id))
		if err != nil {
			return err
		}
		if err := store.DeleteGoal(goal.ID); err != nil {
			return err
		}
		fmt.Printf("🗑️  Deleted goal %s\n", goal.Name)
		return nil
	}),
}

func init() {
	goalsAddCmd.Flags().StringVarP(&goalType, "type", "t", "Savings", "Goal type: Debt, Purchase or Savings")
	goalsAddCmd.Flags().Float64Var(&goalTarget, "target", 0, "Target amount")
	goalsAddCmd.Flags().Float64Var(&goalCurrent, "current", 0, "Amount already saved")
	goalsAddCmd.Flags().StringVar(&goalDueDate, "by", "", "Target date (YYYY-MM-DD)")
	goalsAddCmd.MarkFlagRequired("target")
	goalsEditCmd.Flags().Float64Var(&goalNewGoal, "target", 0, "New target amount")
	goalsEditCmd.Flags().StringVar(&goalNewByDay, "by", "", "New target date (YYYY-MM-DD)")

	goalsCmd.AddCommand(goalsListCmd)
	goalsCmd.AddCommand(goalsAddCmd)
	goalsCmd.AddCommand(goalsContributeCmd)
	goalsCmd.AddCommand(goalsEditCmd)
	goalsCmd.AddCommand(goalsRmCmd)
}
