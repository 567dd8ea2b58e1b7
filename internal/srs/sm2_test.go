package srs

import (
	"errors"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func TestRecord_RejectsOutOfRangeQuality(t *testing.T) {
	for _, quality := range []int{-1, 6, 100} {
		state := NewState()
		got, err := Record(state, quality, day(0))

		var iq *InvalidQualityError
		if !errors.As(err, &iq) {
			t.Fatalf("quality %d: expected InvalidQualityError, got %v", quality, err)
		}
		if got != state {
			t.Errorf("quality %d: state mutated on validation failure", quality)
		}
	}
}

func TestRecord_FailureResetsProgress(t *testing.T) {
	state := ReviewState{Repetitions: 4, EaseFactor: 2.1, IntervalDays: 21}

	for quality := 0; quality < 3; quality++ {
		got, err := Record(state, quality, day(0))
		if err != nil {
			t.Fatalf("quality %d: %v", quality, err)
		}
		if got.Repetitions != 0 {
			t.Errorf("quality %d: Repetitions = %d, want 0", quality, got.Repetitions)
		}
		if got.IntervalDays != 1 {
			t.Errorf("quality %d: IntervalDays = %d, want 1", quality, got.IntervalDays)
		}
		if got.EaseFactor != 2.1 {
			t.Errorf("quality %d: EaseFactor = %v, want unchanged 2.1", quality, got.EaseFactor)
		}
	}
}

func TestRecord_SuccessSchedule(t *testing.T) {
	tests := []struct {
		name         string
		state        ReviewState
		quality      int
		wantReps     int
		wantInterval int
		wantEase     float64
	}{
		{
			name:         "first success uses one day",
			state:        NewState(),
			quality:      4,
			wantReps:     1,
			wantInterval: 1,
			wantEase:     2.5,
		},
		{
			name:         "second success uses three days",
			state:        ReviewState{Repetitions: 1, EaseFactor: 2.5, IntervalDays: 1},
			quality:      5,
			wantReps:     2,
			wantInterval: 3,
			wantEase:     2.6,
		},
		{
			name:         "third success multiplies by ease",
			state:        ReviewState{Repetitions: 2, EaseFactor: 2.5, IntervalDays: 3},
			quality:      5,
			wantReps:     3,
			wantInterval: 8, // round(3 x 2.6)
			wantEase:     2.6,
		},
		{
			name:         "hard success shrinks ease",
			state:        ReviewState{Repetitions: 2, EaseFactor: 2.5, IntervalDays: 3},
			quality:      3,
			wantReps:     3,
			wantInterval: 7, // round(3 x 2.36)
			wantEase:     2.36,
		},
		{
			name:         "ease never drops below floor",
			state:        ReviewState{Repetitions: 5, EaseFactor: 1.3, IntervalDays: 10},
			quality:      3,
			wantReps:     6,
			wantInterval: 13,
			wantEase:     1.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Record(tt.state, tt.quality, day(10))
			if err != nil {
				t.Fatal(err)
			}
			if got.Repetitions != tt.wantReps {
				t.Errorf("Repetitions = %d, want %d", got.Repetitions, tt.wantReps)
			}
			if got.IntervalDays != tt.wantInterval {
				t.Errorf("IntervalDays = %d, want %d", got.IntervalDays, tt.wantInterval)
			}
			if !closeTo(got.EaseFactor, tt.wantEase) {
				t.Errorf("EaseFactor = %v, want %v", got.EaseFactor, tt.wantEase)
			}
			if got.LastQuality == nil || *got.LastQuality != tt.quality {
				t.Errorf("LastQuality = %v, want %d", got.LastQuality, tt.quality)
			}
			wantNext := day(10).AddDate(0, 0, tt.wantInterval)
			if got.NextReviewAt == nil || !got.NextReviewAt.Equal(wantNext) {
				t.Errorf("NextReviewAt = %v, want %v", got.NextReviewAt, wantNext)
			}
		})
	}
}

func TestRecord_IntervalMonotonicOnSuccess(t *testing.T) {
	state := ReviewState{Repetitions: 2, EaseFactor: 2.5, IntervalDays: 3}

	prev := state.IntervalDays
	now := day(0)
	for i := 0; i < 8; i++ {
		next, err := Record(state, 4, now)
		if err != nil {
			t.Fatal(err)
		}
		if next.IntervalDays < prev {
			t.Fatalf("interval shrank on success: %d -> %d", prev, next.IntervalDays)
		}
		prev = next.IntervalDays
		now = *next.NextReviewAt
		state = next
	}
}

func TestDue_DayGranularity(t *testing.T) {
	morning := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 5, 22, 0, 0, 0, time.UTC)

	state := NewState()
	if !state.Due(morning) {
		t.Error("never-reviewed item should be due")
	}

	state.NextReviewAt = &evening
	if !state.Due(morning) {
		t.Error("item scheduled for later today should already be due")
	}

	tomorrow := evening.AddDate(0, 0, 1)
	state.NextReviewAt = &tomorrow
	if state.Due(evening) {
		t.Error("item scheduled tomorrow should not be due")
	}
	if state.DaysUntilReview(evening) != 1 {
		t.Errorf("DaysUntilReview = %d, want 1", state.DaysUntilReview(evening))
	}
}

func TestReset_ReturnsDefaults(t *testing.T) {
	at := day(3)
	q := 4
	state := ReviewState{
		Repetitions:    7,
		EaseFactor:     1.9,
		IntervalDays:   30,
		LastReviewedAt: &at,
		NextReviewAt:   &at,
		LastQuality:    &q,
	}

	got := state.Reset()
	if got != NewState() {
		t.Errorf("Reset() = %+v, want defaults", got)
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
