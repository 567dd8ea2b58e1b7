package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes all progress. Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove database: %w", err)
		}
		fmt.Println("All learner data removed.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip confirmation")
}
