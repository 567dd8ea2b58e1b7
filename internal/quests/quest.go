// Package quests tracks quest objectives and the status machine
// locked -> available -> in-progress -> completed. Completion is terminal;
// daily and weekly quests get fresh instances per period instead of being
// reopened.
package quests

import "time"

// Kind classifies a quest by lifetime.
type Kind string

const (
	KindDaily  Kind = "daily"
	KindWeekly Kind = "weekly"
	KindMain   Kind = "main"
	KindSide   Kind = "side"
)

// Status is the quest's position in the lifecycle.
type Status string

const (
	StatusLocked     Status = "locked"
	StatusAvailable  Status = "available"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Objective is the target/current counter pair for a quest.
type Objective struct {
	Type    string `json:"type"`
	Target  int    `json:"target"`
	Current int    `json:"current"`
}

// Met reports whether the objective has reached its target.
func (o Objective) Met() bool {
	return o.Current >= o.Target
}

// Quest is a single quest instance. Current never exceeds Target; ClaimedAt
// guards the reward against double grants. A locked quest names the quest
// whose completion unlocks it in Prerequisite.
type Quest struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Kind         Kind       `json:"kind"`
	Objective    Objective  `json:"objective"`
	Status       Status     `json:"status"`
	RewardXP     int        `json:"reward_xp"`
	Prerequisite string     `json:"prerequisite,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	ClaimedAt    *time.Time `json:"claimed_at,omitempty"`
}

// Active reports whether the quest can accept objective progress.
func (q *Quest) Active() bool {
	return q.Status == StatusAvailable || q.Status == StatusInProgress
}

// Expired reports whether the quest's deadline has passed.
func (q *Quest) Expired(now time.Time) bool {
	return q.Deadline != nil && now.After(*q.Deadline)
}
