package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyquest/internal/quests"
)

var questCmd = &cobra.Command{
	Use:   "quest",
	Short: "Track quests and claim rewards",
}

var questListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quests with objective progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		for _, q := range svc.Quests() {
			claimed := ""
			if q.ClaimedAt != nil {
				claimed = " (claimed)"
			}
			fmt.Printf("%-22s %-7s %-12s %d/%d  %d XP%s\n",
				q.ID, q.Kind, q.Status, q.Objective.Current, q.Objective.Target,
				q.RewardXP, claimed)
		}
		return nil
	},
}

var questStartCmd = &cobra.Command{
	Use:   "start <quest-id>",
	Short: "Start an available quest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		q, err := svc.StartQuest(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Quest %s is %s.\n", q.ID, q.Status)
		return nil
	},
}

var questClaimCmd = &cobra.Command{
	Use:   "claim <quest-id>",
	Short: "Claim a completed quest's XP reward",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		xp, err := svc.ClaimQuestReward(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if xp == 0 {
			fmt.Println("Reward already claimed.")
			return nil
		}
		fmt.Printf("Claimed %d XP.\n", xp)
		return nil
	},
}

var questAdvanceCmd = &cobra.Command{
	Use:   "advance <event-type> <amount>",
	Short: "Advance matching quests by an objective event",
	Long: "Advance matching quests by an objective event. Event types: " +
		quests.EventExercise + ", " + quests.EventReview + ", " +
		quests.EventPomodoro + ", " + quests.EventDay + ".",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("amount must be a number: %w", err)
		}

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		changed, err := svc.AdvanceQuests(cmd.Context(), args[0], amount)
		if err != nil {
			return err
		}
		if len(changed) == 0 {
			fmt.Println("No active quest matches that event.")
			return nil
		}
		for _, q := range changed {
			fmt.Printf("%s: %d/%d (%s)\n", q.ID, q.Objective.Current, q.Objective.Target, q.Status)
		}
		return nil
	},
}

func init() {
	questCmd.AddCommand(questListCmd)
	questCmd.AddCommand(questStartCmd)
	questCmd.AddCommand(questClaimCmd)
	questCmd.AddCommand(questAdvanceCmd)
}
