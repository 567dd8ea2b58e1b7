package ledger

import (
	"errors"
	"testing"
	"time"
)

func at(d int) time.Time {
	return time.Date(2025, 4, 1, 14, 30, 0, 0, time.UTC).AddDate(0, 0, d)
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{500, 3},
		{899, 3},
		{900, 4},
	}

	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestXPForLevel_RoundTrips(t *testing.T) {
	for level := 1; level <= 20; level++ {
		threshold := XPForLevel(level)
		if got := LevelForXP(threshold); got != level {
			t.Errorf("LevelForXP(XPForLevel(%d)) = %d", level, got)
		}
		if level > 1 {
			if got := LevelForXP(threshold - 1); got != level-1 {
				t.Errorf("LevelForXP(%d) = %d, want %d", threshold-1, got, level-1)
			}
		}
	}
}

func TestAddXP(t *testing.T) {
	l := New()

	l, err := l.AddXP(350)
	if err != nil {
		t.Fatal(err)
	}
	if l.TotalXP != 350 || l.Level != 2 {
		t.Errorf("after 350 XP: total %d level %d, want 350 / 2", l.TotalXP, l.Level)
	}

	l, err = l.AddXP(150)
	if err != nil {
		t.Fatal(err)
	}
	if l.TotalXP != 500 || l.Level != 3 {
		t.Errorf("after 500 XP: total %d level %d, want 500 / 3", l.TotalXP, l.Level)
	}
}

func TestAddXP_ZeroIsLegal(t *testing.T) {
	l, err := New().AddXP(0)
	if err != nil {
		t.Fatal(err)
	}
	if l.TotalXP != 0 || l.Level != 1 {
		t.Errorf("zero grant changed ledger: %+v", l)
	}
}

func TestAddXP_RejectsNegative(t *testing.T) {
	l := Ledger{TotalXP: 200, Level: 2}
	got, err := l.AddXP(-10)

	var ia *InvalidAmountError
	if !errors.As(err, &ia) {
		t.Fatalf("expected InvalidAmountError, got %v", err)
	}
	if ia.Amount != -10 {
		t.Errorf("error amount = %d, want -10", ia.Amount)
	}
	if got.TotalXP != 200 {
		t.Errorf("ledger mutated on rejected grant: %+v", got)
	}
}

func TestTouchActivity_Streaks(t *testing.T) {
	l := New()

	l = l.TouchActivity(at(0))
	if l.CurrentStreakDays != 1 || l.BestStreakDays != 1 {
		t.Fatalf("first activity: current %d best %d, want 1 / 1", l.CurrentStreakDays, l.BestStreakDays)
	}

	// Same day again is a no-op, regardless of clock time.
	l = l.TouchActivity(at(0).Add(6 * time.Hour))
	if l.CurrentStreakDays != 1 {
		t.Errorf("same-day touch bumped streak to %d", l.CurrentStreakDays)
	}

	l = l.TouchActivity(at(1))
	l = l.TouchActivity(at(2))
	if l.CurrentStreakDays != 3 || l.BestStreakDays != 3 {
		t.Errorf("after three consecutive days: current %d best %d", l.CurrentStreakDays, l.BestStreakDays)
	}

	// A gap restarts at 1 but the record survives.
	l = l.TouchActivity(at(5))
	if l.CurrentStreakDays != 1 {
		t.Errorf("after gap: current = %d, want 1", l.CurrentStreakDays)
	}
	if l.BestStreakDays != 3 {
		t.Errorf("after gap: best = %d, want 3", l.BestStreakDays)
	}
}

func TestTouchActivity_StoresStartOfDay(t *testing.T) {
	l := New().TouchActivity(at(0))
	if l.LastActivityDate == nil {
		t.Fatal("LastActivityDate not set")
	}
	got := *l.LastActivityDate
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("LastActivityDate = %v, want midnight", got)
	}
}
