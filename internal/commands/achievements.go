package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show unlocked and locked achievements",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		notifyNewAchievements()

		achievements, err := store.ListAchievements()
		if err != nil {
			return err
		}

		unlocked := 0
		for _, a := range achievements {
			if a.Unlocked {
				unlocked++
			}
		}
		fmt.Printf("🏆 %d of %d achievements unlocked\n", unlocked, len(achievements))

		category := ""
		for _, a := range achievements {
			if string(a.Category) != category {
				category = string(a.Category)
				fmt.Printf("\n  %s\n", category)
			}
			if a.Unlocked {
				fmt.Printf("    %s %s - %s (%s)\n",
					a.Icon, a.Name, a.Description, a.UnlockedAt.Format("2006-01-02"))
			} else {
				fmt.Printf("    🔒 %s - %s\n", a.Name, a.Description)
			}
		}
		return nil
	}),
}
