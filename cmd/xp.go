package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var xpCmd = &cobra.Command{
	Use:   "xp <amount> <reason>",
	Short: "Grant XP for an activity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("amount must be a number: %w", err)
		}

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		led, err := svc.AddXP(cmd.Context(), amount, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Total %d XP, level %d, streak %d day(s)\n",
			led.TotalXP, led.Level, led.CurrentStreakDays)
		return nil
	},
}
