package cmd

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

var (
	statTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	statLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	statValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8FAFC"))

	statBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316"))
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress, streaks, badges, and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		st, err := svc.Stats(cmd.Context())
		if err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString(statTitle.Render("Progress") + "\n")
		row(&b, "Level", fmt.Sprintf("%d (%d XP)", st.Level, st.TotalXP))
		row(&b, "Streak", fmt.Sprintf("%d day(s), best %d", st.StreakDays, st.BestStreakDays))
		row(&b, "Reviews", fmt.Sprintf("%d, average score %.0f", st.ReviewsCompleted, st.AverageScore))
		row(&b, "Exercises", fmt.Sprintf("%d", st.ExercisesCompleted))
		row(&b, "Focus", fmt.Sprintf("%.1f h across %d session(s)", st.TotalHours, st.PomodoroSessions))

		if len(st.SubjectCompletion) > 0 {
			b.WriteString("\n" + statTitle.Render("Subjects") + "\n")
			subjects := make([]string, 0, len(st.SubjectCompletion))
			for s := range st.SubjectCompletion {
				subjects = append(subjects, s)
			}
			sort.Strings(subjects)
			for _, s := range subjects {
				row(&b, s, fmt.Sprintf("%.1f%%", st.SubjectCompletion[s]))
			}
		}

		b.WriteString("\n" + statTitle.Render("Badges") + "\n")
		for _, badge := range svc.Badges() {
			marker := statLabel.Render("locked")
			if badge.Unlocked {
				marker = statBadge.Render("unlocked " + badge.UnlockedAt.Format("2006-01-02"))
			}
			b.WriteString(fmt.Sprintf("  %-20s %s\n", badge.Name, marker))
		}

		log, err := svc.ActivityLog(cmd.Context(), 5)
		if err != nil {
			return err
		}
		if len(log) > 0 {
			b.WriteString("\n" + statTitle.Render("Recent activity") + "\n")
			for _, e := range log {
				b.WriteString(fmt.Sprintf("  %s  +%d XP  %s\n",
					e.Timestamp.Format("01-02 15:04"), e.Amount, e.Reason))
			}
		}

		fmt.Print(b.String())
		return nil
	},
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("  %s %s\n",
		statLabel.Render(fmt.Sprintf("%-10s", label)), statValue.Render(value)))
}
