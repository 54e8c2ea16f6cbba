package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var creditsCmd = &cobra.Command{
	Use:   "credits <amount>",
	Short: "Grant credits to the student",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("amount must be a number: %w", err)
		}

		st, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state, err := tracker.AddCredits(contextOf(cmd), amount)
		if err != nil {
			return err
		}
		fmt.Printf("Credits: %d.\n", state.Credits)
		return nil
	},
}
