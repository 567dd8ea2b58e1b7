package srs

import "time"

// Default values for a freshly tracked item.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
	DefaultInterval   = 1
)

// ReviewState holds the spaced repetition state for a single learning item.
// Mutated only through Record; Reset returns it to defaults.
type ReviewState struct {
	Repetitions    int        `json:"repetitions"`
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	NextReviewAt   *time.Time `json:"next_review_at,omitempty"`
	LastQuality    *int       `json:"last_quality,omitempty"`
}

// NewState returns the default state for an item that has never been reviewed.
func NewState() ReviewState {
	return ReviewState{
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: DefaultInterval,
	}
}

// Reset returns the state to defaults. Used for explicit item resets; review
// failures do not call this (they keep the ease factor).
func (rs ReviewState) Reset() ReviewState {
	return NewState()
}

// Due returns true if the item should be reviewed: never scheduled, or the
// scheduled date is today or earlier. Time of day is ignored.
func (rs ReviewState) Due(now time.Time) bool {
	if rs.NextReviewAt == nil {
		return true
	}
	return !startOfDay(*rs.NextReviewAt).After(startOfDay(now))
}

// DaysUntilReview returns whole days until the next review, 0 if already due.
func (rs ReviewState) DaysUntilReview(now time.Time) int {
	if rs.Due(now) {
		return 0
	}
	return int(startOfDay(*rs.NextReviewAt).Sub(startOfDay(now)).Hours() / 24)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
