// Package curriculum defines the static day-by-day study plan and helpers
// for computing a day's completion ratio.
package curriculum

import "math"

// Day is one curriculum unit: a fixed set of tasks and exercises under a
// subject.
type Day struct {
	Sequence  int
	Title     string
	Subject   string
	Tasks     int
	Exercises int
}

// days is the package-level plan, set by init() in seed.go.
var days []Day

// Days returns the full ordered plan.
func Days() []Day {
	return days
}

// DayBySequence returns the day with the given sequence number, or nil.
func DayBySequence(seq int) *Day {
	for i := range days {
		if days[i].Sequence == seq {
			return &days[i]
		}
	}
	return nil
}

// Len returns the number of days in the plan.
func Len() int {
	return len(days)
}

// Subjects returns the distinct subjects in plan order.
func Subjects() []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range days {
		if !seen[d.Subject] {
			seen[d.Subject] = true
			out = append(out, d.Subject)
		}
	}
	return out
}

// Completion computes a day's completion percentage from done counts. Both
// tasks and exercises count, weighted by their share of the day's total work.
func Completion(day Day, tasksDone, exercisesDone int) float64 {
	total := day.Tasks + day.Exercises
	if total == 0 {
		return 0
	}
	done := clampInt(tasksDone, 0, day.Tasks) + clampInt(exercisesDone, 0, day.Exercises)
	return math.Round(float64(done)/float64(total)*10000) / 100
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
