// Package ledger tracks total experience, the level derived from it, and the
// daily activity streak. All operations are pure functions over a Ledger
// value; the caller supplies the clock and persists the result.
package ledger

import (
	"fmt"
	"math"
	"time"
)

// InvalidAmountError reports a negative XP amount.
type InvalidAmountError struct {
	Amount int
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("xp amount %d is negative", e.Amount)
}

// Ledger is the per-learner progression record. Level is always derived from
// TotalXP; BestStreakDays never drops below CurrentStreakDays.
type Ledger struct {
	TotalXP           int        `json:"total_xp"`
	Level             int        `json:"level"`
	CurrentStreakDays int        `json:"current_streak_days"`
	BestStreakDays    int        `json:"best_streak_days"`
	LastActivityDate  *time.Time `json:"last_activity_date,omitempty"`
}

// New returns a fresh ledger for a learner's first use.
func New() Ledger {
	return Ledger{Level: 1}
}

// LevelForXP derives the level from total XP: floor(sqrt(xp/100)) + 1.
// Level 1 starts at 0 XP, level 2 at 100, level 3 at 400, level 4 at 900.
func LevelForXP(totalXP int) int {
	return int(math.Sqrt(float64(totalXP)/100)) + 1
}

// XPForLevel returns the total XP at which the given level begins.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * 100
}

// AddXP grants experience and recomputes the level. Zero is legal (a day can
// complete with no XP attached); negative amounts are rejected before any
// change.
func (l Ledger) AddXP(amount int) (Ledger, error) {
	if amount < 0 {
		return l, &InvalidAmountError{Amount: amount}
	}
	l.TotalXP += amount
	l.Level = LevelForXP(l.TotalXP)
	return l, nil
}

// TouchActivity marks today as an active day, idempotently per calendar day.
// Consecutive days extend the streak; any gap restarts it at 1 (the activity
// itself always counts).
func (l Ledger) TouchActivity(now time.Time) Ledger {
	today := startOfDay(now)

	switch {
	case l.LastActivityDate != nil && sameDay(*l.LastActivityDate, today):
		return l
	case l.LastActivityDate != nil && sameDay(*l.LastActivityDate, today.AddDate(0, 0, -1)):
		l.CurrentStreakDays++
	default:
		l.CurrentStreakDays = 1
	}

	if l.CurrentStreakDays > l.BestStreakDays {
		l.BestStreakDays = l.CurrentStreakDays
	}
	l.LastActivityDate = &today
	return l
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
