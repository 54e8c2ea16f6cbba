package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunk/stemly/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all student data",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This erases all progress, profile data and XP history.")
			fmt.Println("Run again with --force to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Reset(contextOf(cmd)); err != nil {
			return fmt.Errorf("reset store: %w", err)
		}
		fmt.Println("All data erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
