package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunk/stemly/internal/achievements"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and their progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalogFlag(cmd)
		if err != nil {
			return err
		}

		st, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tracker.RefreshBadges(contextOf(cmd), catalog)

		stats := tracker.Stats()
		unlocked := make(map[string]bool)
		for _, a := range achievements.Unlocked(stats, catalog) {
			unlocked[a.ID] = true
		}

		for _, a := range catalog {
			if unlocked[a.ID] {
				fmt.Printf("  %s %-24s %s (+%d XP)\n", a.Icon, a.Name, a.Rarity, a.XPReward)
			} else {
				fmt.Printf("  🔒 %-24s %d%%\n", a.Name, achievements.Progress(a, stats))
			}
		}
		fmt.Printf("\n  %d of %d unlocked\n", len(unlocked), len(catalog))
		return nil
	},
}

func init() {
	achievementsCmd.Flags().String("catalog", "", "Path to a custom achievement catalog (JSON)")
}
