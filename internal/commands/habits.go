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
	habitTrigger string
	habitValue   float64
	habitReward  string
	habitNotes   string
)

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "Manage work-triggered habits",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		return listHabits()
	}),
}

var habitsListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List habits with their streaks",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		return listHabits()
	}),
}

func listHabits() error {
	habits, err := store.ListHabits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("📭 No habits yet. Add one with 'chronodesk habits add <name>'")
		return nil
	}
	fmt.Printf("🔁 %d habit(s):\n\n", len(habits))
	for _, h := range habits {
		status := ""
		if !h.IsActive {
			status = " (paused)"
		}
		fmt.Printf("  #%d  %s%s\n", h.ID, h.Name, status)
		fmt.Printf("      🔥 %d day streak (best %d), %d completion(s)\n",
			h.CurrentStreak, h.BestStreak, h.TotalCompletions)
	}
	return nil
}

var habitsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a habit",
	Example: `  chronodesk habits add "Stretch" --trigger after_session
  chronodesk habits add "Take a walk" --trigger after_hours --value 4
  chronodesk habits add "Review notes" --trigger daily`,
	Args: cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		trigger, err := models.ParseTriggerType(habitTrigger)
		if err != nil {
			return err
		}
		habit := models.Habit{
			Name:              args[0],
			TriggerType:       trigger,
			TriggerValue:      habitValue,
			RewardDescription: habitReward,
			IsActive:          true,
		}
		if err := store.CreateHabit(&habit); err != nil {
			return err
		}
		fmt.Printf("✅ Added habit #%d: %s\n", habit.ID, habit.Name)
		return nil
	}),
}

var habitsDoneCmd = &cobra.Command{
	Use:   "done <habit-id>",
	Short: "Mark a habit completed for today",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid habit id %q", args[0])
		}
		habit, err := store.GetHabit(uint(id))
		if err != nil {
			return err
		}
		if _, err := store.LogHabitCompletion(habit.ID, habitNotes); err != nil {
			return err
		}
		dates, err := store.HabitCompletionDates(habit.ID)
		if err != nil {
			return err
		}
		current, _ := analytics.Streaks(dates, time.Now())
		fmt.Printf("✅ %s done. 🔥 %d day streak\n", habit.Name, current)
		if habit.RewardDescription != "" {
			fmt.Printf("🎁 Reward: %s\n", habit.RewardDescription)
		}
		return nil
	}),
}

var habitsPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Show habits due today",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		pending, err := store.PendingHabits(time.Now())
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			fmt.Println("✅ Nothing pending")
			return nil
		}
		fmt.Printf("⏳ %d habit(s) due:\n\n", len(pending))
		for _, h := range pending {
			fmt.Printf("  #%d  %s\n", h.ID, h.Name)
		}
		return nil
	}),
}

var habitsPauseCmd = &cobra.Command{
	Use:   "pause <habit-id>",
	Short: "Pause a habit without losing its history",
	Args:  cobra.ExactArgs(1),
	RunE:  withStore(setHabitActive(false)),
}

var habitsResumeCmd = &cobra.Command{
	Use:   "resume <habit-id>",
	Short: "Resume a paused habit",
	Args:  cobra.ExactArgs(1),
	RunE:  withStore(setHabitActive(true)),
}

func setHabitActive(active bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid habit id %q", args[0])
		}
		habit, err := store.GetHabit(uint(id))
		if err != nil {
			return err
		}
		habit.IsActive = active
		if err := store.UpdateHabit(habit); err != nil {
			return err
		}
		if active {
			fmt.Printf("▶️  Resumed habit %s\n", habit.Name)
		} else {
			fmt.Printf("⏸  Paused habit %s\n", habit.Name)
		}
		return nil
	}
}

var habitsRmCmd = &cobra.Command{
	Use:   "rm <habit-id>",
	Short: "Delete a habit",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid habit id %q", args[0])
		}
		habit, err := store.GetHabit(uint(id))
		if err != nil {
			return err
		}
		if err := store.DeleteHabit(habit.ID); err != nil {
			return err
		}
		fmt.Printf("🗑️  Deleted habit %s\n", habit.Name)
		return nil
	}),
}

func init() {
	habitsAddCmd.Flags().StringVar(&habitTrigger, "trigger", "daily", "Trigger: after_session, after_hours or daily")
	habitsAddCmd.Flags().Float64Var(&habitValue, "value", 0, "Hours threshold (with --trigger after_hours)")
	habitsAddCmd.Flags().StringVar(&habitReward, "reward", "", "Reward to show on completion")
	habitsDoneCmd.Flags().StringVar(&habitNotes, "notes", "", "Completion notes")

	habitsCmd.AddCommand(habitsListCmd)
	habitsCmd.AddCommand(habitsAddCmd)
	habitsCmd.AddCommand(habitsDoneCmd)
	habitsCmd.AddCommand(habitsPendingCmd)
	habitsCmd.AddCommand(habitsPauseCmd)
	habitsCmd.AddCommand(habitsResumeCmd)
	habitsCmd.AddCommand(habitsRmCmd)
}
