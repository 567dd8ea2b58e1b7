// Package stats assembles aggregate learner statistics as a first-class
// value. Badge evaluation and quest display read from an Aggregate built
// once per pass instead of recomputing figures at each call site.
package stats

// Aggregate is a read-only summary of the learner's progress, assembled from
// the current snapshot and event counts.
type Aggregate struct {
	ExercisesCompleted int
	ReviewsCompleted   int
	StreakDays         int
	BestStreakDays     int
	TotalXP            int
	Level              int
	AverageScore       float64 // mean review quality scaled to 0-100
	SubjectCompletion  map[string]float64
	TotalHours         float64
	PomodoroSessions   int
}

// Subject returns the completion percentage for a subject, 0 if untracked.
func (a Aggregate) Subject(name string) float64 {
	if a.SubjectCompletion == nil {
		return 0
	}
	return a.SubjectCompletion[name]
}
