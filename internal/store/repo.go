// Package store persists the progress record: JSON snapshots for fast
// restore plus append-only event tables for the activity history. Backed by
// SQLite through ent; the engine packages never touch it directly, the
// progress facade owns the read-modify-write cycle.
package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full progress record at a point in time.
// All timestamps are RFC3339 strings so the JSON round-trips losslessly.
type SnapshotData struct {
	Version int                   `json:"version"`
	Items   map[string]*ItemData  `json:"items,omitempty"`
	Ledger  *LedgerData           `json:"ledger,omitempty"`
	Badges  map[string]*BadgeData `json:"badges,omitempty"`
	Quests  map[string]*QuestData `json:"quests,omitempty"`
	Units   []*UnitData           `json:"units,omitempty"`
	Study   *StudyData            `json:"study,omitempty"`
}

// ItemData is the persisted form of a learning item and its review state.
type ItemData struct {
	ItemID         string  `json:"item_id"`
	Title          string  `json:"title"`
	Subject        string  `json:"subject"`
	Repetitions    int     `json:"repetitions"`
	EaseFactor     float64 `json:"ease_factor"`
	IntervalDays   int     `json:"interval_days"`
	LastReviewedAt *string `json:"last_reviewed_at,omitempty"`
	NextReviewAt   *string `json:"next_review_at,omitempty"`
	LastQuality    *int    `json:"last_quality,omitempty"`
}

// LedgerData is the persisted form of the progression ledger.
type LedgerData struct {
	TotalXP           int     `json:"total_xp"`
	Level             int     `json:"level"`
	CurrentStreakDays int     `json:"current_streak_days"`
	BestStreakDays    int     `json:"best_streak_days"`
	LastActivityDate  *string `json:"last_activity_date,omitempty"`
}

// BadgeData is the persisted unlock state for a badge. Definitions live in
// the static catalog; only unlock state is stored.
type BadgeData struct {
	BadgeID    string  `json:"badge_id"`
	Unlocked   bool    `json:"unlocked"`
	UnlockedAt *string `json:"unlocked_at,omitempty"`
}

// QuestData is the persisted form of a quest instance.
type QuestData struct {
	QuestID       string  `json:"quest_id"`
	Name          string  `json:"name"`
	Kind          string  `json:"kind"`
	ObjectiveType string  `json:"objective_type"`
	Target        int     `json:"target"`
	Current       int     `json:"current"`
	Status        string  `json:"status"`
	RewardXP      int     `json:"reward_xp"`
	Prerequisite  string  `json:"prerequisite,omitempty"`
	Deadline      *string `json:"deadline,omitempty"`
	ClaimedAt     *string `json:"claimed_at,omitempty"`
}

// UnitData is the persisted completion state for a curriculum day.
type UnitData struct {
	SequenceNumber int     `json:"sequence_number"`
	TasksDone      int     `json:"tasks_done"`
	ExercisesDone  int     `json:"exercises_done"`
	Ratio          float64 `json:"ratio"`
	Completed      bool    `json:"completed"`
}

// StudyData accumulates study-time counters.
type StudyData struct {
	TotalMinutes     int `json:"total_minutes"`
	PomodoroSessions int `json:"pomodoro_sessions"`
}

// Snapshot represents a point-in-time capture of the progress record.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ReviewEventData captures a single item review.
type ReviewEventData struct {
	ItemID       string
	Quality      int
	IntervalDays int
	EaseFactor   float64
	Repetition   int
	SessionID    string
}

// XPEventData captures an experience grant.
type XPEventData struct {
	Amount     int
	Reason     string
	TotalAfter int
	LevelAfter int
	SessionID  string
}

// XPEventRecord is a queried XP event, newest first.
type XPEventRecord struct {
	Amount     int
	Reason     string
	TotalAfter int
	LevelAfter int
	Sequence   int64
	Timestamp  time.Time
}

// BadgeEventData captures a badge unlock.
type BadgeEventData struct {
	BadgeID       string
	ConditionKind string
	XPReward      int
	SessionID     string
}

// QuestEventData captures quest lifecycle activity.
type QuestEventData struct {
	QuestID   string
	Action    string // advance, complete, unlock, or claim
	EventType string
	Amount    int
	Status    string
	SessionID string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error
	AppendXPEvent(ctx context.Context, data XPEventData) error
	AppendBadgeEvent(ctx context.Context, data BadgeEventData) error
	AppendQuestEvent(ctx context.Context, data QuestEventData) error

	// ReviewStats returns the count of reviews and the mean quality rating.
	ReviewStats(ctx context.Context) (count int, meanQuality float64, err error)

	// QueryXPEvents returns XP events newest first (the activity log).
	QueryXPEvents(ctx context.Context, opts QueryOpts) ([]XPEventRecord, error)

	// CurrentSequence returns the sequence of the most recent event, 0 if
	// none have been appended. Used to stamp snapshots.
	CurrentSequence(ctx context.Context) (int64, error)
}
