package stats

import "math"

// Inputs are the raw figures the aggregation step reads. The facade fills
// them from the current snapshot and event counts.
type Inputs struct {
	TotalXP            int
	Level              int
	StreakDays         int
	BestStreakDays     int
	ExercisesCompleted int
	ReviewCount        int
	MeanQuality        float64 // 0-5
	SubjectCompletion  map[string]float64
	TotalMinutes       int
	PomodoroSessions   int
}

// Build assembles the Aggregate. Mean review quality (0-5) is scaled to a
// 0-100 average score.
func Build(in Inputs) Aggregate {
	return Aggregate{
		ExercisesCompleted: in.ExercisesCompleted,
		ReviewsCompleted:   in.ReviewCount,
		StreakDays:         in.StreakDays,
		BestStreakDays:     in.BestStreakDays,
		TotalXP:            in.TotalXP,
		Level:              in.Level,
		AverageScore:       math.Round(in.MeanQuality*20*100) / 100,
		SubjectCompletion:  in.SubjectCompletion,
		TotalHours:         float64(in.TotalMinutes) / 60,
		PomodoroSessions:   in.PomodoroSessions,
	}
}
