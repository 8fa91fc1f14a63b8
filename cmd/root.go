package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhilash/crammer/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "crammer",
	Short: "Test yourself on your flashcards from the terminal",
	Long: "Crammer — terminal client for self-testing on the flashcard sets\n" +
		"you created in the course web app.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTest(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// .env is a convenience for development; the real config comes from
	// CRAMMER_* environment variables.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history file (overrides CRAMMER_DB env var)")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the history database path using the --db flag
// (highest priority), then CRAMMER_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
