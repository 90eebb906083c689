package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tinkerlab/tinkeralpha/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tinker",
	Short: "Electronics learning portal for kids",
	Long:  "TinkerAlpha — terminal portal where children build circuits, motors, and robots, earning stars along the way.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TINKER_DB env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(signoutCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(mascotCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TINKER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
