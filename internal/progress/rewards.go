package progress

// XP amounts for rewarded actions.
const (
	ExerciseXP    = 15
	TaskXP        = 10
	PomodoroXP    = 20
	DayCompleteXP = 50
)

// ReviewXP returns the XP for a completed review. Failed recalls still earn
// a little: the review itself is the work being rewarded.
func ReviewXP(quality int) int {
	switch {
	case quality >= 5:
		return 15
	case quality == 4:
		return 12
	case quality == 3:
		return 10
	default:
		return 5
	}
}
