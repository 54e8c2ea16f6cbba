package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunk/stemly/internal/progress"
	"github.com/arjunk/stemly/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "stemly",
	Short: "Gamified STEM learning tracker",
	Long:  "Stemly — terminal companion that tracks a student's XP, streaks, credits and achievements across STEM lessons, labs and blogs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STEMLY_DB env var)")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(xpCmd)
	rootCmd.AddCommand(creditsCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STEMLY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openTracker opens the store and loads a tracker from it. The caller
// must Close the returned store.
func openTracker(cmd *cobra.Command) (*store.Store, *progress.Tracker, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	tracker := progress.NewTracker(st.RecordRepo(), st.XPEventRepo())
	tracker.Load(contextOf(cmd))
	return st, tracker, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
