// Package srs implements the SM-2 spaced repetition algorithm for review
// scheduling. Record is a pure function over a ReviewState; callers own
// persistence and clock injection.
package srs

import (
	"fmt"
	"math"
	"time"
)

// PassThreshold is the lowest quality rating counted as a successful recall.
const PassThreshold = 3

// InvalidQualityError reports a quality rating outside [0,5].
type InvalidQualityError struct {
	Quality int
}

func (e *InvalidQualityError) Error() string {
	return fmt.Sprintf("quality %d out of range [0,5]", e.Quality)
}

// Record applies one review with the given recall quality and returns the
// updated state. The input state is not modified.
//
// A failed recall (quality < 3) resets the repetition count and interval but
// keeps the ease factor, so the item stays as hard as it was. A successful
// recall adjusts the ease factor and expands the interval: 1 day after the
// first success, 3 after the second, interval x ease after that.
func Record(state ReviewState, quality int, now time.Time) (ReviewState, error) {
	if quality < 0 || quality > 5 {
		return state, &InvalidQualityError{Quality: quality}
	}

	if quality < PassThreshold {
		state.Repetitions = 0
		state.IntervalDays = DefaultInterval
	} else {
		state.Repetitions++

		q := float64(quality)
		ease := state.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
		if ease < MinEaseFactor {
			ease = MinEaseFactor
		}
		state.EaseFactor = ease

		switch state.Repetitions {
		case 1:
			state.IntervalDays = 1
		case 2:
			state.IntervalDays = 3
		default:
			state.IntervalDays = int(math.Round(float64(state.IntervalDays) * ease))
		}
	}

	last := now
	next := now.AddDate(0, 0, state.IntervalDays)
	state.LastReviewedAt = &last
	state.NextReviewAt = &next
	state.LastQuality = &quality

	return state, nil
}
