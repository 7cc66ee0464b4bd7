package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	typeColor string
	typeRate  float64
	editColor string
	editRate  float64
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Manage session categories",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		return listTypes()
	}),
}

var typesListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List session categories",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		return listTypes()
	}),
}

func listTypes() error {
	types, err := store.ListSessionTypes()
	if err != nil {
		return err
	}
	if len(types) == 0 {
		fmt.Println("📭 No categories yet. Add one with 'chronodesk types add <name>'")
		return nil
	}
	fmt.Printf("🏷️  %d categories:\n\n", len(types))
	for _, t := range types {
		fmt.Printf("  #%d  %-12s %s", t.ID, t.Name, t.Color)
		if t.HourlyRate != nil {
			fmt.Printf("  $%.2f/h", *t.HourlyRate)
		}
		fmt.Println()
	}
	return nil
}

var typesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a session category",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		check, err := store.CanCreateSessionType()
		if err != nil {
			return err
		}
		if !check.Allowed {
			return fmt.Errorf("the Free tier allows %d categories. Upgrade with 'chronodesk license activate'", *check.Limit)
		}

		var rate *float64
		if cmd.Flags().Changed("rate") {
			rate = &typeRate
		}
		st, err := store.CreateSessionType(args[0], typeColor, rate)
		if err != nil {
			return err
		}
		fmt.Printf("✅ Added category #%d: %s\n", st.ID, st.Name)
		return nil
	}),
}

var typesEditCmd = &cobra.Command{
	Use:   "edit <type-id>",
	Short: "Change a category's color or rate",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid type id %q", args[0])
		}
		st, err := store.GetSessionType(uint(id))
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("color") {
			st.Color = editColor
		}
		if cmd.Flags().Changed("rate") {
			st.HourlyRate = &editRate
		}
		if err := store.UpdateSessionType(st); err != nil {
			return err
		}
		fmt.Printf("✅ Updated category %s\n", st.Name)
		return nil
	}),
}

var typesProjectsCmd = &cobra.Command{
	Use:   "projects <name>",
	Short: "List recent project names for a category",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		st, err := store.SessionTypeByName(args[0])
		if err != nil {
			return err
		}
		names, err := store.ProjectsByType(st.ID)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Printf("📭 No projects logged under %s yet\n", st.Name)
			return nil
		}
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}),
}

var typesRmCmd = &cobra.Command{
	Use:   "rm <type-id>",
	Short: "Delete a session category",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid type id %q", args[0])
		}
		st, err := store.GetSessionType(uint(id))
		if err != nil {
			return err
		}
		sessions, err := store.SessionsByType(st.ID)
		if err != nil {
			return err
		}
		if len(sessions) > 0 {
			return fmt.Errorf("category %q still has %d session(s)", st.Name, len(sessions))
		}
		if err := store.DeleteSessionType(st.ID); err != nil {
			return err
		}
		fmt.Printf("🗑️  Deleted category %s\n", st.Name)
		return nil
	}),
}

func init() {
	typesAddCmd.Flags().StringVar(&typeColor, "color", "#6366F1", "Hex color for the category")
	typesAddCmd.Flags().Float64Var(&typeRate, "rate", 0, "Default hourly rate")
	typesEditCmd.Flags().StringVar(&editColor, "color", "", "Hex color for the category")
	typesEditCmd.Flags().Float64Var(&editRate, "rate", 0, "Default hourly rate")

	typesCmd.AddCommand(typesListCmd)
	typesCmd.AddCommand(typesAddCmd)
	typesCmd.AddCommand(typesEditCmd)
	typesCmd.AddCommand(typesProjectsCmd)
	typesCmd.AddCommand(typesRmCmd)
}
