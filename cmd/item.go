package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage reviewable items",
}

var itemAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a reviewable item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		subject, _ := cmd.Flags().GetString("subject")
		it, err := svc.AddItem(cmd.Context(), args[0], subject)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (%s)\n", it.Title, it.ID)
		return nil
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items with their review schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		items := svc.Items()
		if len(items) == 0 {
			fmt.Println("No items yet. Add one with: studyquest item add <title>")
			return nil
		}
		for _, it := range items {
			next := "due now"
			if it.Review.NextReviewAt != nil {
				next = "next " + it.Review.NextReviewAt.Format("2006-01-02")
			}
			fmt.Printf("%s  %-30s  rep %d  ease %.2f  %s\n",
				it.ID, it.Title, it.Review.Repetitions, it.Review.EaseFactor, next)
		}
		return nil
	},
}

var itemDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List items due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		due := svc.DueItems()
		if len(due) == 0 {
			fmt.Println("Nothing due. Come back tomorrow.")
			return nil
		}
		for _, it := range due {
			fmt.Printf("%s  %s\n", it.ID, it.Title)
		}
		return nil
	},
}

var itemResetCmd = &cobra.Command{
	Use:   "reset <item-id>",
	Short: "Return an item's review schedule to defaults",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		it, err := svc.ResetItem(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Reset %s; it is due for review now.\n", it.Title)
		return nil
	},
}

func init() {
	itemAddCmd.Flags().String("subject", "", "Subject the item belongs to")
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemDueCmd)
	itemCmd.AddCommand(itemResetCmd)
}
