package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhilash/crammer/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your local test history",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve history path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer st.Close()

		repo := st.EventRepo()
		ctx := cmd.Context()

		stats, err := repo.StatsBySet(ctx)
		if err != nil {
			return fmt.Errorf("aggregate history: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No tests recorded yet. Run `crammer test` to take one.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SET\tTESTS\tBEST\tLAST\tLAST TESTED")
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
				s.SetTitle, s.Tests, formatScore(s.BestScore), formatScore(s.LastScore),
				s.LastTest.Local().Format("2006-01-02 15:04"))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		recent, err := repo.RecentTests(ctx, 10)
		if err != nil {
			return fmt.Errorf("query recent tests: %w", err)
		}

		fmt.Println("\nRecent tests:")
		for _, r := range recent {
			fmt.Printf("  %s  %-24s %s  (%d/%d correct, %d skipped)\n",
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				r.SetTitle, formatScore(r.Score), r.Correct, r.Total, r.Skipped)
		}
		return nil
	},
}

// formatScore renders a stored score; -1 means the test had none.
func formatScore(score int) string {
	if score < 0 {
		return "-"
	}
	return fmt.Sprintf("%d%%", score)
}
