package quests

import (
	"errors"
	"testing"
	"time"
)

var questTime = time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)

func exerciseQuest(status Status) *Quest {
	return &Quest{
		ID:        "q",
		Kind:      KindDaily,
		Objective: Objective{Type: EventExercise, Target: 5},
		Status:    status,
		RewardXP:  30,
	}
}

func TestUnlock(t *testing.T) {
	q := exerciseQuest(StatusLocked)
	if !Unlock(q) || q.Status != StatusAvailable {
		t.Errorf("Unlock left quest %s", q.Status)
	}
	if Unlock(q) {
		t.Error("Unlock on an available quest should be a no-op")
	}

	done := exerciseQuest(StatusCompleted)
	if Unlock(done) || done.Status != StatusCompleted {
		t.Error("Unlock reopened a completed quest")
	}
}

func TestStart(t *testing.T) {
	q := exerciseQuest(StatusAvailable)
	if !Start(q) || q.Status != StatusInProgress {
		t.Errorf("Start left quest %s", q.Status)
	}
	if Start(q) {
		t.Error("Start on an in-progress quest should be a no-op")
	}
	if Start(exerciseQuest(StatusLocked)) {
		t.Error("Start unlocked a locked quest")
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name        string
		status      Status
		eventType   string
		amount      int
		wantApplied bool
		wantCurrent int
		wantStatus  Status
	}{
		{"counts matching event", StatusInProgress, EventExercise, 1, true, 1, StatusInProgress},
		{"implicitly starts available quest", StatusAvailable, EventExercise, 2, true, 2, StatusInProgress},
		{"ignores mismatched event type", StatusInProgress, EventReview, 1, false, 0, StatusInProgress},
		{"ignores locked quest", StatusLocked, EventExercise, 1, false, 0, StatusLocked},
		{"ignores completed quest", StatusCompleted, EventExercise, 1, false, 0, StatusCompleted},
		{"ignores non-positive amount", StatusInProgress, EventExercise, 0, false, 0, StatusInProgress},
		{"completes at target", StatusInProgress, EventExercise, 5, true, 5, StatusCompleted},
		{"clamps overshoot at target", StatusInProgress, EventExercise, 9, true, 5, StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := exerciseQuest(tt.status)
			applied := Advance(q, tt.eventType, tt.amount)

			if applied != tt.wantApplied {
				t.Errorf("Advance() = %v, want %v", applied, tt.wantApplied)
			}
			if q.Objective.Current != tt.wantCurrent {
				t.Errorf("Current = %d, want %d", q.Objective.Current, tt.wantCurrent)
			}
			if q.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", q.Status, tt.wantStatus)
			}
		})
	}
}

func TestClaimReward(t *testing.T) {
	q := exerciseQuest(StatusCompleted)
	q.Objective.Current = q.Objective.Target

	xp, err := ClaimReward(q, questTime)
	if err != nil {
		t.Fatal(err)
	}
	if xp != 30 {
		t.Errorf("first claim = %d XP, want 30", xp)
	}
	if q.ClaimedAt == nil || !q.ClaimedAt.Equal(questTime) {
		t.Errorf("ClaimedAt = %v, want %v", q.ClaimedAt, questTime)
	}

	xp, err = ClaimReward(q, questTime.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if xp != 0 {
		t.Errorf("second claim = %d XP, want 0", xp)
	}
	if !q.ClaimedAt.Equal(questTime) {
		t.Error("second claim moved ClaimedAt")
	}
}

func TestClaimReward_NotCompleted(t *testing.T) {
	for _, status := range []Status{StatusLocked, StatusAvailable, StatusInProgress} {
		q := exerciseQuest(status)
		xp, err := ClaimReward(q, questTime)

		if !errors.Is(err, ErrNotCompleted) {
			t.Fatalf("status %s: err = %v, want ErrNotCompleted", status, err)
		}
		var nc *NotCompletedError
		if !errors.As(err, &nc) || nc.QuestID != "q" || nc.Status != status {
			t.Errorf("status %s: error detail = %+v", status, nc)
		}
		if xp != 0 || q.ClaimedAt != nil {
			t.Errorf("status %s: failed claim had side effects", status)
		}
	}
}

func TestExpired(t *testing.T) {
	q := exerciseQuest(StatusInProgress)
	if q.Expired(questTime) {
		t.Error("quest with no deadline reported expired")
	}

	deadline := questTime.Add(time.Hour)
	q.Deadline = &deadline
	if q.Expired(questTime) {
		t.Error("quest expired before its deadline")
	}
	if !q.Expired(deadline.Add(time.Second)) {
		t.Error("quest not expired after its deadline")
	}
}

func TestMainQuests_PrerequisitesResolve(t *testing.T) {
	ids := make(map[string]bool)
	for _, q := range MainQuests() {
		ids[q.ID] = true
	}

	for _, q := range MainQuests() {
		if q.Status == StatusLocked && q.Prerequisite == "" {
			t.Errorf("quest %s is locked with no prerequisite to open it", q.ID)
		}
		if q.Prerequisite == "" {
			continue
		}
		if !ids[q.Prerequisite] {
			t.Errorf("quest %s names unknown prerequisite %q", q.ID, q.Prerequisite)
		}
		if q.Status != StatusLocked {
			t.Errorf("quest %s has a prerequisite but starts %s", q.ID, q.Status)
		}
	}
}

func TestIssueDaily_PeriodKeyedID(t *testing.T) {
	q := IssueDaily(questTime)
	if q.ID != "daily-2025-04-15" {
		t.Errorf("ID = %q", q.ID)
	}
	if q.Deadline == nil || q.Deadline.Day() != 15 || q.Deadline.Hour() != 23 {
		t.Errorf("Deadline = %v, want end of the same day", q.Deadline)
	}

	same := IssueDaily(questTime.Add(5 * time.Hour))
	if same.ID != q.ID {
		t.Errorf("same-day issue produced a new id %q", same.ID)
	}
	next := IssueDaily(questTime.AddDate(0, 0, 1))
	if next.ID == q.ID {
		t.Error("next-day issue reused the id")
	}
}

func TestIssueWeekly_DeadlineOnSunday(t *testing.T) {
	// 2025-04-15 is a Tuesday in ISO week 16.
	q := IssueWeekly(questTime)
	if q.ID != "weekly-2025-W16" {
		t.Errorf("ID = %q", q.ID)
	}
	if q.Deadline == nil || q.Deadline.Weekday() != time.Sunday {
		t.Errorf("Deadline = %v, want a Sunday", q.Deadline)
	}

	sunday := time.Date(2025, 4, 20, 9, 0, 0, 0, time.UTC)
	sq := IssueWeekly(sunday)
	if sq.Deadline.Day() != 20 {
		t.Errorf("issued on Sunday: Deadline = %v, want same day", sq.Deadline)
	}
}
