package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study <minutes>",
	Short: "Log a finished focus session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("minutes must be a number: %w", err)
		}

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := svc.LogStudy(cmd.Context(), minutes); err != nil {
			return err
		}
		fmt.Printf("Logged %d minute(s) of focus.\n", minutes)
		return nil
	},
}
