package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var xpCmd = &cobra.Command{
	Use:   "xp <amount>",
	Short: "Award XP to the student",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("amount must be a number: %w", err)
		}
		reason, _ := cmd.Flags().GetString("reason")

		st, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state, err := tracker.AddXP(contextOf(cmd), amount, reason)
		if err != nil {
			return err
		}
		fmt.Printf("Level %d, %d/%d XP (total %d).\n",
			state.Level, state.CurrentXP, state.RequiredXP, state.TotalXP)
		return nil
	},
}

func init() {
	xpCmd.Flags().String("reason", "", "Why the XP was awarded")
}
