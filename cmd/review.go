package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review <item-id> <quality>",
	Short: "Record a review with a recall quality of 0-5",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quality, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quality must be a number 0-5: %w", err)
		}

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		it, err := svc.RecordReview(cmd.Context(), args[0], quality)
		if err != nil {
			return err
		}

		fmt.Printf("Reviewed %s: repetition %d, interval %d day(s), next review %s\n",
			it.Title, it.Review.Repetitions, it.Review.IntervalDays,
			it.Review.NextReviewAt.Format("2006-01-02"))
		return nil
	},
}
