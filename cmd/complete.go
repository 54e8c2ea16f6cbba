package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <content-id> <xp>",
	Short: "Mark a lesson, lab or blog as completed and award its XP",
	Long: `Mark a piece of content as completed. The content id is free-form but
ids prefixed "lesson", "lab" or "blog" count toward the matching
achievement statistics. Completing the same id twice is a no-op.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		xp, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("xp must be a number: %w", err)
		}

		st, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		before := len(tracker.CompletedContent())
		state, err := tracker.CompleteContent(contextOf(cmd), args[0], xp)
		if err != nil {
			return err
		}
		if len(tracker.CompletedContent()) == before {
			fmt.Printf("%s was already completed.\n", args[0])
			return nil
		}

		fmt.Printf("Completed %s. Level %d, %d/%d XP, streak %d.\n",
			args[0], state.Level, state.CurrentXP, state.RequiredXP, state.Current)
		return nil
	},
}
