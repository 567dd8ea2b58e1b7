package stats

import "testing"

func TestBuild(t *testing.T) {
	got := Build(Inputs{
		TotalXP:            500,
		Level:              3,
		StreakDays:         4,
		BestStreakDays:     9,
		ExercisesCompleted: 42,
		ReviewCount:        10,
		MeanQuality:        4.125,
		SubjectCompletion:  map[string]float64{"calculus": 75},
		TotalMinutes:       90,
		PomodoroSessions:   3,
	})

	if got.AverageScore != 82.5 {
		t.Errorf("AverageScore = %v, want 82.5", got.AverageScore)
	}
	if got.TotalHours != 1.5 {
		t.Errorf("TotalHours = %v, want 1.5", got.TotalHours)
	}
	if got.ReviewsCompleted != 10 || got.ExercisesCompleted != 42 {
		t.Errorf("counts = %d reviews, %d exercises", got.ReviewsCompleted, got.ExercisesCompleted)
	}
	if got.TotalXP != 500 || got.Level != 3 {
		t.Errorf("ledger figures = %d XP, level %d", got.TotalXP, got.Level)
	}
}

func TestBuild_AverageScoreRounding(t *testing.T) {
	got := Build(Inputs{MeanQuality: 3.333333})
	if got.AverageScore != 66.67 {
		t.Errorf("AverageScore = %v, want 66.67", got.AverageScore)
	}
}

func TestSubject(t *testing.T) {
	a := Aggregate{SubjectCompletion: map[string]float64{"statistics": 40}}
	if a.Subject("statistics") != 40 {
		t.Errorf("Subject(statistics) = %v, want 40", a.Subject("statistics"))
	}
	if a.Subject("unknown") != 0 {
		t.Errorf("Subject(unknown) = %v, want 0", a.Subject("unknown"))
	}
	if (Aggregate{}).Subject("anything") != 0 {
		t.Error("nil map should report 0")
	}
}
