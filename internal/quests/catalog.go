package quests

import (
	"fmt"
	"time"
)

// Event types quests count. Shared with the progress facade, which maps
// learner actions onto them.
const (
	EventExercise = "exercise"
	EventReview   = "review"
	EventPomodoro = "pomodoro"
	EventDay      = "day_completed"
)

// MainQuests returns the static long-running quest definitions. Ids are
// stable; progress persisted in snapshots is keyed by them.
func MainQuests() []*Quest {
	return []*Quest{
		{
			ID:        "main-first-week",
			Name:      "Survive the First Week",
			Kind:      KindMain,
			Objective: Objective{Type: EventDay, Target: 7},
			Status:    StatusAvailable,
			RewardXP:  200,
		},
		{
			ID:        "main-reviewer",
			Name:      "Memory Keeper",
			Kind:      KindMain,
			Objective: Objective{Type: EventReview, Target: 100},
			Status:    StatusAvailable,
			RewardXP:  300,
		},
		{
			ID:           "side-exercise-50",
			Name:         "Practice Makes Perfect",
			Kind:         KindSide,
			Objective:    Objective{Type: EventExercise, Target: 50},
			Status:       StatusLocked,
			RewardXP:     150,
			Prerequisite: "main-first-week",
		},
	}
}

// IssueDaily creates the daily quest instance for the day containing now.
// The id encodes the period, so re-issuing within the same day is a no-op for
// callers that key quests by id.
func IssueDaily(now time.Time) *Quest {
	deadline := endOfDay(now)
	return &Quest{
		ID:        fmt.Sprintf("daily-%s", now.Format("2006-01-02")),
		Name:      "Daily Drill",
		Kind:      KindDaily,
		Objective: Objective{Type: EventExercise, Target: 5},
		Status:    StatusAvailable,
		RewardXP:  30,
		Deadline:  &deadline,
	}
}

// IssueWeekly creates the weekly quest instance for the ISO week containing
// now.
func IssueWeekly(now time.Time) *Quest {
	year, week := now.ISOWeek()
	deadline := endOfDay(now.AddDate(0, 0, daysUntilSunday(now)))
	return &Quest{
		ID:        fmt.Sprintf("weekly-%d-W%02d", year, week),
		Name:      "Weekly Focus",
		Kind:      KindWeekly,
		Objective: Objective{Type: EventPomodoro, Target: 10},
		Status:    StatusAvailable,
		RewardXP:  100,
		Deadline:  &deadline,
	}
}

func daysUntilSunday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 0
	}
	return 7 - wd
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}
