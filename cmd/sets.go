package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhilash/crammer/internal/api"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List your flashcard sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := api.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return err
		}

		client := api.NewClient(cfg)
		sets, err := client.ListSets(cmd.Context())
		if err != nil {
			return fmt.Errorf("list sets: %w", err)
		}

		if len(sets) == 0 {
			fmt.Println("No flashcard sets found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCARDS\tLAST SCORE")
		for _, s := range sets {
			score := "-"
			if s.LastTestScore != nil {
				score = fmt.Sprintf("%d%%", *s.LastTestScore)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.ID, s.Title, s.CardCount, score)
		}
		return w.Flush()
	},
}
