package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhilash/crammer/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local test history",
	Long: "Deletes every locally recorded test and answer. Progress already\n" +
		"pushed to the backend is not touched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("Delete all local test history? [y/N] ")
			reply, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(reply)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve history path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer st.Close()

		if err := st.EventRepo().PurgeAll(cmd.Context()); err != nil {
			return fmt.Errorf("purge history: %w", err)
		}
		fmt.Println("Local test history deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
