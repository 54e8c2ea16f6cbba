package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunk/stemly/internal/achievements"
	"github.com/arjunk/stemly/internal/app"
)

// runApp opens the store, builds the tracker, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, tracker, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	catalog, err := loadCatalogFlag(cmd)
	if err != nil {
		return err
	}

	tracker.RefreshBadges(contextOf(cmd), catalog)

	return app.Run(app.Options{
		Tracker: tracker,
		Catalog: catalog,
	})
}

// loadCatalogFlag returns the achievement catalog: the file named by
// --catalog when set, the built-in catalog otherwise.
func loadCatalogFlag(cmd *cobra.Command) ([]achievements.Achievement, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return achievements.Catalog(), nil
	}
	catalog, err := achievements.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return catalog, nil
}

func init() {
	rootCmd.Flags().String("catalog", "", "Path to a custom achievement catalog (JSON)")
}
