package quests

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotCompleted is returned when claiming the reward of an unfinished quest.
var ErrNotCompleted = errors.New("quest is not completed")

// NotCompletedError wraps ErrNotCompleted with the quest id and status.
type NotCompletedError struct {
	QuestID string
	Status  Status
}

func (e *NotCompletedError) Error() string {
	return fmt.Sprintf("quest %s is %s, not completed", e.QuestID, e.Status)
}

func (e *NotCompletedError) Unwrap() error { return ErrNotCompleted }

// Unlock transitions a locked quest to available. The trigger (prerequisite
// completion, period reset) is decided by the caller; no-op for any other
// status.
func Unlock(q *Quest) bool {
	if q.Status != StatusLocked {
		return false
	}
	q.Status = StatusAvailable
	return true
}

// Start explicitly moves an available quest to in-progress. Advancing an
// objective does this implicitly.
func Start(q *Quest) bool {
	if q.Status != StatusAvailable {
		return false
	}
	q.Status = StatusInProgress
	return true
}

// Advance applies an objective-advancing event to the quest. It no-ops when
// the event type does not match or the quest is not active. Progress is
// clamped at the target; reaching it completes the quest.
func Advance(q *Quest, eventType string, amount int) bool {
	if amount <= 0 {
		return false
	}
	if eventType != q.Objective.Type || !q.Active() {
		return false
	}

	if q.Status == StatusAvailable {
		q.Status = StatusInProgress
	}

	q.Objective.Current += amount
	if q.Objective.Current > q.Objective.Target {
		q.Objective.Current = q.Objective.Target
	}
	if q.Objective.Met() {
		q.Status = StatusCompleted
	}
	return true
}

// ClaimReward returns the XP to grant for a completed quest. The first claim
// stamps ClaimedAt and returns RewardXP; later claims return 0 without error,
// so the reward is granted at most once. Claiming an unfinished quest fails
// with NotCompletedError.
func ClaimReward(q *Quest, now time.Time) (int, error) {
	if q.Status != StatusCompleted {
		return 0, &NotCompletedError{QuestID: q.ID, Status: q.Status}
	}
	if q.ClaimedAt != nil {
		return 0, nil
	}
	at := now
	q.ClaimedAt = &at
	return q.RewardXP, nil
}
