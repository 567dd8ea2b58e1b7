package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyquest/internal/curriculum"
	"github.com/abhisek/studyquest/internal/progress"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Work through the curriculum days",
}

var dayListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show each day with completion and accessibility",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		for _, u := range svc.Units() {
			day := curriculum.DayBySequence(u.Sequence)
			marker := "locked"
			if svc.IsDayAccessible(u.Sequence) {
				marker = "open"
			}
			if u.Completed {
				marker = "done"
			}
			fmt.Printf("%2d. %-28s %-14s %5.1f%%  [%s]\n",
				u.Sequence, day.Title, day.Subject, u.Ratio, marker)
		}
		return nil
	},
}

var dayTaskCmd = &cobra.Command{
	Use:   "task <day>",
	Short: "Mark one task done on a day",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return completeWork(cmd, args[0], false) },
}

var dayExerciseCmd = &cobra.Command{
	Use:   "exercise <day>",
	Short: "Mark one exercise done on a day",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return completeWork(cmd, args[0], true) },
}

func init() {
	dayCmd.AddCommand(dayListCmd)
	dayCmd.AddCommand(dayTaskCmd)
	dayCmd.AddCommand(dayExerciseCmd)
}

func completeWork(cmd *cobra.Command, arg string, exercise bool) error {
	seq, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("day must be a number: %w", err)
	}

	svc, closeStore, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	if !svc.IsDayAccessible(seq) {
		fmt.Printf("Day %d is still locked. Finish the previous day first.\n", seq)
		return nil
	}

	var u *progress.UnitProgress
	if exercise {
		u, err = svc.CompleteExercise(cmd.Context(), seq)
	} else {
		u, err = svc.CompleteTask(cmd.Context(), seq)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Day %d now %.1f%% complete.\n", seq, u.Ratio)
	if u.Completed {
		fmt.Println("Day complete!")
	}
	return nil
}
