package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyquest/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(30 * time.Second))

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Cannot check updates for a development build.")
			return nil
		}
		if err != nil {
			return err
		}

		if !result.UpdateAvailable {
			fmt.Println("Already running the latest version.")
			return nil
		}
		fmt.Printf("Version %s is available (running %s).\nDownload: %s\n",
			result.LatestVersion, result.CurrentVersion, result.ReleaseURL)
		return nil
	},
}
