package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhilash/crammer/internal/api"
	"github.com/abhilash/crammer/internal/app"
	"github.com/abhilash/crammer/internal/store"
)

var testCmd = &cobra.Command{
	Use:   "test [set-id]",
	Short: "Start a test over one of your flashcard sets",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setID := ""
		if len(args) == 1 {
			setID = args[0]
		}
		return runTest(cmd, setID)
	},
}

func runTest(cmd *cobra.Command, setID string) error {
	cfg := api.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := app.Options{
		Client: api.NewClient(cfg),
		SetID:  setID,
	}

	// History log is best effort: without it tests still run, they just
	// aren't recorded locally.
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		if st, err := store.Open(dbPath); err == nil {
			defer st.Close()
			opts.Store = st
		} else {
			fmt.Fprintln(os.Stderr, "History log unavailable:", err)
		}
	}

	return app.Run(opts)
}
