package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyquest/internal/gate"
	"github.com/abhisek/studyquest/internal/progress"
	"github.com/abhisek/studyquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studyquest",
	Short: "Study companion with spaced repetition and quests",
	Long: "Studyquest is a terminal study companion that schedules reviews, " +
		"tracks XP and streaks, and gates a day-by-day curriculum.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYQUEST_DB env var)")
	rootCmd.PersistentFlags().Float64("gate-threshold", gate.DefaultThreshold, "Completion percentage that opens the next day (0 disables gating)")

	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(xpCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(questCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openService opens the store and builds a loaded progress service. The
// returned closer shuts the store down.
func openService(cmd *cobra.Command) (*progress.Service, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	threshold, _ := cmd.Flags().GetFloat64("gate-threshold")
	svc := progress.New(progress.Options{
		Snapshots: st.SnapshotRepo(),
		Events:    st.EventRepo(),
		Gate:      &gate.Config{Threshold: threshold},
	})
	if err := svc.Load(cmd.Context()); err != nil {
		st.Close()
		return nil, nil, err
	}

	return svc, func() { st.Close() }, nil
}
