package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state := tracker.State()
		stats := tracker.Stats()

		fmt.Printf("  Level %d  (%d/%d XP, %d total)\n",
			state.Level, state.CurrentXP, state.RequiredXP, state.TotalXP)
		fmt.Printf("  Streak: %d days (best %d, %d active)\n",
			state.Current, state.Longest, state.DaysActive)
		fmt.Printf("  Credits: %d   Badges: %d   Profile: %d%%\n",
			state.Credits, state.Badges, state.ProfileCompletion)
		fmt.Printf("  Lessons: %d   Labs: %d   Blogs: %d\n",
			stats.LessonsCompleted, stats.LabsCompleted, stats.BlogsRead)

		events, err := st.XPEventRepo().Recent(contextOf(cmd), 10)
		if err != nil {
			return fmt.Errorf("load XP history: %w", err)
		}
		if len(events) > 0 {
			fmt.Println("\n  Recent XP:")
			for _, ev := range events {
				reason := ev.Reason
				if reason == "" {
					reason = "(no reason)"
				}
				fmt.Printf("    %s  +%-5d %s\n",
					ev.Timestamp.Format("2006-01-02 15:04"), ev.Amount, reason)
			}
		}
		return nil
	},
}
