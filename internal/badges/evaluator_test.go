package badges

import (
	"testing"
	"time"

	"github.com/abhisek/studyquest/internal/stats"
)

var evalTime = time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

func TestCondition_Satisfied(t *testing.T) {
	st := stats.Aggregate{
		ExercisesCompleted: 25,
		StreakDays:         7,
		Level:              5,
		AverageScore:       82.5,
		TotalHours:         12.0,
		PomodoroSessions:   20,
		SubjectCompletion:  map[string]float64{"calculus": 100},
	}

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{"exercises met", Condition{Kind: KindExercisesCompleted, Target: 25}, true},
		{"exercises not met", Condition{Kind: KindExercisesCompleted, Target: 26}, false},
		{"streak met", Condition{Kind: KindStreak, Target: 7}, true},
		{"streak not met", Condition{Kind: KindStreak, Target: 8}, false},
		{"level met", Condition{Kind: KindLevel, Target: 5}, true},
		{"average score met", Condition{Kind: KindAverageScore, Target: 80}, true},
		{"average score not met", Condition{Kind: KindAverageScore, Target: 90}, false},
		{"subject complete", Condition{Kind: KindSubjectCompletion, Subject: "calculus", Target: 100}, true},
		{"unknown subject", Condition{Kind: KindSubjectCompletion, Subject: "chemistry", Target: 1}, false},
		{"hours met", Condition{Kind: KindTotalHours, Target: 10}, true},
		{"pomodoros met", Condition{Kind: KindPomodoroSessions, Target: 20}, true},
		{"unknown kind", Condition{Kind: ConditionKind("bogus"), Target: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.Satisfied(st, nil); got != tt.want {
				t.Errorf("Satisfied() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_UnlocksAndIsIdempotent(t *testing.T) {
	badges := []*Badge{
		{ID: "ex-10", Condition: Condition{Kind: KindExercisesCompleted, Target: 10}, XPReward: 20},
		{ID: "streak-30", Condition: Condition{Kind: KindStreak, Target: 30}, XPReward: 100},
	}
	st := stats.Aggregate{ExercisesCompleted: 12, StreakDays: 4}

	e := NewEvaluator()
	unlocked := e.Evaluate(badges, st, evalTime)

	if len(unlocked) != 1 || unlocked[0].ID != "ex-10" {
		t.Fatalf("unlocked = %v, want just ex-10", ids(unlocked))
	}
	if !badges[0].Unlocked || badges[0].UnlockedAt == nil || !badges[0].UnlockedAt.Equal(evalTime) {
		t.Errorf("ex-10 not marked unlocked at %v: %+v", evalTime, badges[0])
	}
	if badges[1].Unlocked {
		t.Error("streak-30 unlocked without meeting its condition")
	}

	// Same statistics again unlock nothing new.
	if again := e.Evaluate(badges, st, evalTime.Add(time.Hour)); len(again) != 0 {
		t.Errorf("second evaluation unlocked %v", ids(again))
	}
	if !badges[0].UnlockedAt.Equal(evalTime) {
		t.Error("re-evaluation moved the original unlock timestamp")
	}
}

func TestEvaluate_CustomPredicates(t *testing.T) {
	badges := []*Badge{
		{ID: "night-owl", Condition: Condition{Kind: KindCustom, CustomID: "night-owl"}},
		{ID: "mystery", Condition: Condition{Kind: KindCustom, CustomID: "unregistered"}},
	}

	e := NewEvaluator()
	e.RegisterCustom("night-owl", func(st stats.Aggregate) bool {
		return st.PomodoroSessions > 0
	})

	unlocked := e.Evaluate(badges, stats.Aggregate{PomodoroSessions: 1}, evalTime)
	if len(unlocked) != 1 || unlocked[0].ID != "night-owl" {
		t.Errorf("unlocked = %v, want just night-owl", ids(unlocked))
	}
	if badges[1].Unlocked {
		t.Error("badge with unregistered custom id unlocked")
	}
}

func TestMerge_OverlaysPersistedState(t *testing.T) {
	at := evalTime
	unlocked := map[string]*Badge{
		"first-steps": {ID: "first-steps", Unlocked: true, UnlockedAt: &at},
		"retired":     {ID: "retired", Unlocked: true, UnlockedAt: &at},
	}

	merged := Merge(Catalog(), unlocked)

	byID := make(map[string]*Badge, len(merged))
	for _, b := range merged {
		byID[b.ID] = b
	}
	if b := byID["first-steps"]; b == nil || !b.Unlocked || !b.UnlockedAt.Equal(at) {
		t.Errorf("first-steps unlock state lost: %+v", b)
	}
	if b := byID["exercise-25"]; b == nil || b.Unlocked {
		t.Errorf("exercise-25 should stay locked: %+v", b)
	}
	if _, ok := byID["retired"]; ok {
		t.Error("badge absent from the catalog survived the merge")
	}
}

func TestCatalog_IDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, b := range Catalog() {
		if seen[b.ID] {
			t.Errorf("duplicate badge id %q", b.ID)
		}
		seen[b.ID] = true
	}
}

func ids(badges []*Badge) []string {
	out := make([]string, len(badges))
	for i, b := range badges {
		out[i] = b.ID
	}
	return out
}
