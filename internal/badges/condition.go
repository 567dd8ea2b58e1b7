package badges

import "github.com/abhisek/studyquest/internal/stats"

// ConditionKind discriminates the closed set of badge unlock conditions.
type ConditionKind string

const (
	KindExercisesCompleted ConditionKind = "exercises_completed"
	KindStreak             ConditionKind = "streak"
	KindLevel              ConditionKind = "level"
	KindAverageScore       ConditionKind = "average_score"
	KindSubjectCompletion  ConditionKind = "subject_completion"
	KindTotalHours         ConditionKind = "total_hours"
	KindPomodoroSessions   ConditionKind = "pomodoro_sessions"
	KindCustom             ConditionKind = "custom"
)

// Condition is a tagged unlock predicate over aggregate statistics. Target
// carries the threshold for every numeric kind; Subject is set only for
// subject_completion, CustomID only for custom.
type Condition struct {
	Kind     ConditionKind `json:"kind"`
	Target   float64       `json:"target,omitempty"`
	Subject  string        `json:"subject,omitempty"`
	CustomID string        `json:"custom_id,omitempty"`
}

// Predicate is an injected check for custom conditions.
type Predicate func(stats.Aggregate) bool

// Satisfied reports whether the condition holds for the given statistics.
// Custom conditions are resolved through the supplied predicate table; an
// unknown custom id never unlocks.
func (c Condition) Satisfied(st stats.Aggregate, custom map[string]Predicate) bool {
	switch c.Kind {
	case KindExercisesCompleted:
		return float64(st.ExercisesCompleted) >= c.Target
	case KindStreak:
		return float64(st.StreakDays) >= c.Target
	case KindLevel:
		return float64(st.Level) >= c.Target
	case KindAverageScore:
		return st.AverageScore >= c.Target
	case KindSubjectCompletion:
		return st.Subject(c.Subject) >= c.Target
	case KindTotalHours:
		return st.TotalHours >= c.Target
	case KindPomodoroSessions:
		return float64(st.PomodoroSessions) >= c.Target
	case KindCustom:
		p, ok := custom[c.CustomID]
		return ok && p(st)
	default:
		return false
	}
}
