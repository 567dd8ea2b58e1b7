package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Ledger:  &LedgerData{TotalXP: 120, Level: 2, CurrentStreakDays: 3},
			Items: map[string]*ItemData{
				"item-1": {ItemID: "item-1", Title: "limits", Subject: "calculus", EaseFactor: 2.5, IntervalDays: 1},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Ledger == nil || snap.Data.Ledger.TotalXP != 120 {
		t.Errorf("ledger = %+v, want total 120", snap.Data.Ledger)
	}
	it := snap.Data.Items["item-1"]
	if it == nil || it.Subject != "calculus" || it.EaseFactor != 2.5 {
		t.Errorf("item = %+v", it)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	if cur, err := sc.Current(ctx); err != nil || cur != 0 {
		t.Fatalf("initial Current = %d, %v, want 0", cur, err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != int64(i+1) {
			t.Errorf("seq[%d] = %d, want %d", i, seq, i+1)
		}
	}

	if cur, err := sc.Current(ctx); err != nil || cur != 5 {
		t.Errorf("Current after 5 = %d, %v, want 5", cur, err)
	}
}

func TestEventSequenceSharedAcrossTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []func() error{
		func() error {
			return repo.AppendReviewEvent(ctx, ReviewEventData{ItemID: "item-1", Quality: 4, IntervalDays: 1, EaseFactor: 2.5, Repetition: 1, SessionID: "s"})
		},
		func() error {
			return repo.AppendXPEvent(ctx, XPEventData{Amount: 12, Reason: "review", TotalAfter: 12, LevelAfter: 1, SessionID: "s"})
		},
		func() error {
			return repo.AppendBadgeEvent(ctx, BadgeEventData{BadgeID: "first-steps", ConditionKind: "exercises_completed", XPReward: 10, SessionID: "s"})
		},
		func() error {
			return repo.AppendQuestEvent(ctx, QuestEventData{QuestID: "daily", Action: "advance", EventType: "exercise", Amount: 1, Status: "in_progress", SessionID: "s"})
		},
	}
	for i, fn := range appends {
		if err := fn(); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	cur, err := repo.CurrentSequence(ctx)
	if err != nil {
		t.Fatalf("current sequence: %v", err)
	}
	if cur != int64(len(appends)) {
		t.Errorf("CurrentSequence = %d, want %d", cur, len(appends))
	}
}

func TestReviewStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	count, mean, err := repo.ReviewStats(ctx)
	if err != nil {
		t.Fatalf("stats (empty): %v", err)
	}
	if count != 0 || mean != 0 {
		t.Errorf("empty stats = %d, %v", count, mean)
	}

	for _, q := range []int{3, 4, 5} {
		err := repo.AppendReviewEvent(ctx, ReviewEventData{
			ItemID: "item-1", Quality: q, IntervalDays: 1, EaseFactor: 2.5, Repetition: 1, SessionID: "s",
		})
		if err != nil {
			t.Fatalf("append quality %d: %v", q, err)
		}
	}

	count, mean, err = repo.ReviewStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if mean != 4 {
		t.Errorf("mean = %v, want 4", mean)
	}
}

func TestQueryXPEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		err := repo.AppendXPEvent(ctx, XPEventData{
			Amount: i * 10, Reason: "practice", TotalAfter: i * 10, LevelAfter: 1, SessionID: "s",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Newest first, limited.
	records, err := repo.QueryXPEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Amount != 50 || records[1].Amount != 40 {
		t.Errorf("records = %d, %d, want 50, 40", records[0].Amount, records[1].Amount)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Error("not ordered newest first")
	}

	// Sequence window.
	records, err = repo.QueryXPEvents(ctx, QueryOpts{After: 2, Before: 5})
	if err != nil {
		t.Fatalf("query window: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("window records = %d, want 2", len(records))
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "review_events", "xp_events", "badge_events", "quest_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
