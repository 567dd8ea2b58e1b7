package gate

import (
	"reflect"
	"testing"
)

func units(ratios ...float64) []ContentUnit {
	out := make([]ContentUnit, len(ratios))
	for i, r := range ratios {
		out[i] = ContentUnit{
			SequenceNumber:  i + 1,
			CompletionRatio: r,
			Completed:       r >= 100,
		}
	}
	return out
}

func TestIsAccessible(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		units []ContentUnit
		seq   int
		want  bool
	}{
		{"first unit always open", units(0, 0), 1, true},
		{"first unit open with no records", nil, 1, true},
		{"predecessor below threshold", units(49, 0), 2, false},
		{"predecessor at threshold", units(50, 0), 2, true},
		{"predecessor above threshold", units(80, 0), 2, true},
		{"predecessor completed", units(100, 0), 2, true},
		{"sequence past the plan", units(100, 100), 3, false},
		{"sequence zero", units(100), 0, false},
		{"sequence negative", units(100), -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.IsAccessible(tt.units, tt.seq); got != tt.want {
				t.Errorf("IsAccessible(seq=%d) = %v, want %v", tt.seq, got, tt.want)
			}
		})
	}
}

func TestIsAccessible_MissingPredecessorFailsOpen(t *testing.T) {
	// Unit 1 has no record but units 2 and 3 do. A data gap must not lock
	// the learner out.
	got := DefaultConfig().IsAccessible([]ContentUnit{
		{SequenceNumber: 2},
		{SequenceNumber: 3},
	}, 2)
	if !got {
		t.Error("missing predecessor record locked the unit")
	}
}

func TestIsAccessible_ZeroThresholdDisablesGating(t *testing.T) {
	cfg := Config{Threshold: 0}
	us := units(0, 0, 0)

	for seq := 1; seq <= 3; seq++ {
		if !cfg.IsAccessible(us, seq) {
			t.Errorf("threshold 0: unit %d locked", seq)
		}
	}
}

func TestIsAccessible_CompletedOverridesThreshold(t *testing.T) {
	// Completed flag opens the next unit even when the stored ratio sits
	// under the threshold.
	cfg := Config{Threshold: 90}
	us := []ContentUnit{
		{SequenceNumber: 1, CompletionRatio: 60, Completed: true},
		{SequenceNumber: 2},
	}
	if !cfg.IsAccessible(us, 2) {
		t.Error("completed predecessor did not open the unit")
	}
}

func TestAccessibleUnits(t *testing.T) {
	got := DefaultConfig().AccessibleUnits(units(100, 50, 10, 0))
	want := []int{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AccessibleUnits = %v, want %v", got, want)
	}
}
