package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/studyquest/internal/gate"
	"github.com/abhisek/studyquest/internal/ledger"
	"github.com/abhisek/studyquest/internal/quests"
	"github.com/abhisek/studyquest/internal/srs"
	"github.com/abhisek/studyquest/internal/stats"
	"github.com/abhisek/studyquest/internal/store"
)

// memSnapshots is an in-memory SnapshotRepo.
type memSnapshots struct {
	snaps []*store.Snapshot
}

func (m *memSnapshots) Save(ctx context.Context, snap *store.Snapshot) error {
	cp := *snap
	cp.ID = len(m.snaps) + 1
	m.snaps = append(m.snaps, &cp)
	return nil
}

func (m *memSnapshots) Latest(ctx context.Context) (*store.Snapshot, error) {
	if len(m.snaps) == 0 {
		return nil, nil
	}
	return m.snaps[len(m.snaps)-1], nil
}

func (m *memSnapshots) Prune(ctx context.Context, keep int) error {
	if len(m.snaps) > keep {
		m.snaps = m.snaps[len(m.snaps)-keep:]
	}
	return nil
}

// memEvents is an in-memory EventRepo.
type memEvents struct {
	seq     int64
	reviews []store.ReviewEventData
	xp      []store.XPEventRecord
	badges  []store.BadgeEventData
	quests  []store.QuestEventData
}

func (m *memEvents) AppendReviewEvent(ctx context.Context, data store.ReviewEventData) error {
	m.seq++
	m.reviews = append(m.reviews, data)
	return nil
}

func (m *memEvents) AppendXPEvent(ctx context.Context, data store.XPEventData) error {
	m.seq++
	m.xp = append(m.xp, store.XPEventRecord{
		Amount:     data.Amount,
		Reason:     data.Reason,
		TotalAfter: data.TotalAfter,
		LevelAfter: data.LevelAfter,
		Sequence:   m.seq,
	})
	return nil
}

func (m *memEvents) AppendBadgeEvent(ctx context.Context, data store.BadgeEventData) error {
	m.seq++
	m.badges = append(m.badges, data)
	return nil
}

func (m *memEvents) AppendQuestEvent(ctx context.Context, data store.QuestEventData) error {
	m.seq++
	m.quests = append(m.quests, data)
	return nil
}

func (m *memEvents) ReviewStats(ctx context.Context) (int, float64, error) {
	if len(m.reviews) == 0 {
		return 0, 0, nil
	}
	var sum int
	for _, r := range m.reviews {
		sum += r.Quality
	}
	return len(m.reviews), float64(sum) / float64(len(m.reviews)), nil
}

func (m *memEvents) QueryXPEvents(ctx context.Context, opts store.QueryOpts) ([]store.XPEventRecord, error) {
	var out []store.XPEventRecord
	for i := len(m.xp) - 1; i >= 0; i-- {
		out = append(out, m.xp[i])
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *memEvents) CurrentSequence(ctx context.Context) (int64, error) {
	return m.seq, nil
}

// stepClock lets a test move time forward between calls.
type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time { return c.t }

var serviceTime = time.Date(2025, 5, 5, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *memSnapshots, *memEvents, *stepClock) {
	t.Helper()
	snaps := &memSnapshots{}
	events := &memEvents{}
	clock := &stepClock{t: serviceTime}

	svc := New(Options{Clock: clock, Snapshots: snaps, Events: events})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	return svc, snaps, events, clock
}

func TestRecordReview(t *testing.T) {
	ctx := context.Background()
	svc, snaps, events, _ := newTestService(t)

	it, err := svc.AddItem(ctx, "chain rule", "calculus")
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.RecordReview(ctx, it.ID, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got.Review.Repetitions != 1 || got.Review.IntervalDays != 1 {
		t.Errorf("review state = %+v, want rep 1, interval 1", got.Review)
	}

	led := svc.Ledger()
	if led.TotalXP != ReviewXP(3) {
		t.Errorf("TotalXP = %d, want %d", led.TotalXP, ReviewXP(3))
	}
	if led.CurrentStreakDays != 1 {
		t.Errorf("streak = %d, want 1", led.CurrentStreakDays)
	}

	if len(events.reviews) != 1 || events.reviews[0].ItemID != it.ID || events.reviews[0].Quality != 3 {
		t.Errorf("review events = %+v", events.reviews)
	}
	if len(events.xp) != 1 {
		t.Errorf("xp events = %+v", events.xp)
	}

	q := questByID(t, svc, "main-reviewer")
	if q.Objective.Current != 1 || q.Status != quests.StatusInProgress {
		t.Errorf("main-reviewer = current %d, status %s", q.Objective.Current, q.Status)
	}

	// One snapshot from AddItem, one from the review.
	if len(snaps.snaps) != 2 {
		t.Errorf("snapshots = %d, want 2", len(snaps.snaps))
	}
	last := snaps.snaps[len(snaps.snaps)-1]
	if last.Sequence != events.seq {
		t.Errorf("snapshot sequence = %d, want %d", last.Sequence, events.seq)
	}
}

func TestRecordReview_InvalidQuality(t *testing.T) {
	ctx := context.Background()
	svc, _, events, _ := newTestService(t)

	it, err := svc.AddItem(ctx, "limits", "calculus")
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.RecordReview(ctx, it.ID, 9)
	var iq *srs.InvalidQualityError
	if !errors.As(err, &iq) {
		t.Fatalf("err = %v, want InvalidQualityError", err)
	}
	if svc.Ledger().TotalXP != 0 {
		t.Error("rejected review granted XP")
	}
	if len(events.reviews) != 0 {
		t.Error("rejected review appended an event")
	}
}

func TestRecordReview_UnknownItem(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.RecordReview(context.Background(), "missing", 4)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Kind != "item" {
		t.Errorf("err = %v, want item NotFoundError", err)
	}
}

func TestAddXP_RoutesBadgeRewards(t *testing.T) {
	ctx := context.Background()
	svc, _, events, _ := newTestService(t)

	// 1700 XP is level 5, which unlocks the level-5 badge worth 100 more.
	led, err := svc.AddXP(ctx, 1700, "imported history")
	if err != nil {
		t.Fatal(err)
	}
	if led.TotalXP != 1800 {
		t.Errorf("TotalXP = %d, want 1800", led.TotalXP)
	}
	if led.Level != 5 {
		t.Errorf("Level = %d, want 5", led.Level)
	}

	if len(events.badges) != 1 || events.badges[0].BadgeID != "level-5" {
		t.Errorf("badge events = %+v", events.badges)
	}

	// Re-evaluation with unchanged statistics unlocks nothing.
	again, err := svc.EvaluateBadges(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 0 {
		t.Errorf("second evaluation unlocked %d badges", len(again))
	}
}

func TestAddXP_RejectsNegative(t *testing.T) {
	svc, snaps, _, _ := newTestService(t)

	_, err := svc.AddXP(context.Background(), -5, "nope")
	var ia *ledger.InvalidAmountError
	if !errors.As(err, &ia) {
		t.Fatalf("err = %v, want InvalidAmountError", err)
	}
	if len(snaps.snaps) != 0 {
		t.Error("rejected grant persisted a snapshot")
	}
}

func TestCompleteExercise(t *testing.T) {
	ctx := context.Background()
	svc, _, events, _ := newTestService(t)

	u, err := svc.CompleteExercise(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if u.ExercisesDone != 1 {
		t.Errorf("ExercisesDone = %d, want 1", u.ExercisesDone)
	}
	if u.Ratio != 10 { // day 1 has 4 tasks + 6 exercises
		t.Errorf("Ratio = %v, want 10", u.Ratio)
	}

	// Exercise XP plus the first-steps badge reward.
	if got := svc.Ledger().TotalXP; got != ExerciseXP+10 {
		t.Errorf("TotalXP = %d, want %d", got, ExerciseXP+10)
	}
	if len(events.badges) != 1 || events.badges[0].BadgeID != "first-steps" {
		t.Errorf("badge events = %+v", events.badges)
	}

	daily := questByID(t, svc, "daily-2025-05-05")
	if daily.Objective.Current != 1 {
		t.Errorf("daily quest current = %d, want 1", daily.Objective.Current)
	}
	locked := questByID(t, svc, "side-exercise-50")
	if locked.Objective.Current != 0 {
		t.Error("locked quest advanced")
	}
}

func TestCompleteWork_UnknownDay(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.CompleteTask(context.Background(), 999)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Kind != "day" {
		t.Errorf("err = %v, want day NotFoundError", err)
	}
}

func TestDayCompletion_GatesAndRewards(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)

	if svc.IsDayAccessible(2) {
		t.Fatal("day 2 open before any progress on day 1")
	}

	// Day 1 is 4 tasks + 6 exercises; four exercises is 40%.
	for i := 0; i < 4; i++ {
		if _, err := svc.CompleteExercise(ctx, 1); err != nil {
			t.Fatal(err)
		}
	}
	if svc.IsDayAccessible(2) {
		t.Error("day 2 open at 40%")
	}

	if _, err := svc.CompleteExercise(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if !svc.IsDayAccessible(2) {
		t.Error("day 2 still locked at 50%")
	}
	if svc.IsDayAccessible(3) {
		t.Error("day 3 open while day 2 is untouched")
	}

	// Finish day 1 and check the completion bonus fires once.
	if _, err := svc.CompleteExercise(ctx, 1); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if _, err := svc.CompleteTask(ctx, 1); err != nil {
			t.Fatal(err)
		}
	}
	u := svc.Units()[0]
	if !u.Completed || u.Ratio != 100 {
		t.Fatalf("day 1 = ratio %v, completed %v", u.Ratio, u.Completed)
	}

	firstWeek := questByID(t, svc, "main-first-week")
	if firstWeek.Objective.Current != 1 {
		t.Errorf("main-first-week current = %d, want 1", firstWeek.Objective.Current)
	}

	xpAfter := svc.Ledger().TotalXP
	// Extra work on a finished day never re-triggers the bonus.
	if _, err := svc.CompleteTask(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if got := svc.Ledger().TotalXP; got != xpAfter+TaskXP {
		t.Errorf("TotalXP = %d, want %d", got, xpAfter+TaskXP)
	}
	if questByID(t, svc, "main-first-week").Objective.Current != 1 {
		t.Error("day completion counted twice")
	}
}

func TestGateOverride_ZeroThresholdDisablesGating(t *testing.T) {
	svc := New(Options{
		Clock: FixedClock{T: serviceTime},
		Gate:  &gate.Config{Threshold: 0},
	})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !svc.IsDayAccessible(30) {
		t.Error("gating active despite zero threshold")
	}
}

func TestLogStudy(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)

	var im *InvalidMinutesError
	if err := svc.LogStudy(ctx, 0); !errors.As(err, &im) || im.Minutes != 0 {
		t.Fatalf("err = %v, want InvalidMinutesError for 0 minutes", err)
	}
	if err := svc.LogStudy(ctx, -10); !errors.As(err, &im) {
		t.Fatalf("err = %v, want InvalidMinutesError for negative minutes", err)
	}

	if err := svc.LogStudy(ctx, 25); err != nil {
		t.Fatal(err)
	}
	st, err := svc.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.PomodoroSessions != 1 {
		t.Errorf("PomodoroSessions = %d, want 1", st.PomodoroSessions)
	}
	if st.TotalHours == 0 {
		t.Error("TotalHours not accumulated")
	}
	if svc.Ledger().TotalXP != PomodoroXP {
		t.Errorf("TotalXP = %d, want %d", svc.Ledger().TotalXP, PomodoroXP)
	}

	weekly := questByID(t, svc, "weekly-2025-W19")
	if weekly.Objective.Current != 1 {
		t.Errorf("weekly quest current = %d, want 1", weekly.Objective.Current)
	}
}

func TestClaimQuestReward(t *testing.T) {
	ctx := context.Background()
	svc, _, events, _ := newTestService(t)

	daily := questByID(t, svc, "daily-2025-05-05")

	// Claiming before completion fails and grants nothing.
	if _, err := svc.ClaimQuestReward(ctx, daily.ID); !errors.Is(err, quests.ErrNotCompleted) {
		t.Fatalf("err = %v, want ErrNotCompleted", err)
	}

	if _, err := svc.AdvanceQuests(ctx, quests.EventExercise, 5); err != nil {
		t.Fatal(err)
	}
	if daily.Status != quests.StatusCompleted {
		t.Fatalf("daily quest = %s after reaching target", daily.Status)
	}

	xp, err := svc.ClaimQuestReward(ctx, daily.ID)
	if err != nil {
		t.Fatal(err)
	}
	if xp != daily.RewardXP {
		t.Errorf("claim = %d XP, want %d", xp, daily.RewardXP)
	}
	if svc.Ledger().TotalXP != daily.RewardXP {
		t.Errorf("TotalXP = %d, want %d", svc.Ledger().TotalXP, daily.RewardXP)
	}

	xp, err = svc.ClaimQuestReward(ctx, daily.ID)
	if err != nil {
		t.Fatal(err)
	}
	if xp != 0 {
		t.Errorf("second claim = %d XP, want 0", xp)
	}
	if svc.Ledger().TotalXP != daily.RewardXP {
		t.Error("second claim granted XP again")
	}

	var claims int
	for _, e := range events.quests {
		if e.Action == "claim" {
			claims++
		}
	}
	if claims != 2 {
		t.Errorf("claim events = %d, want 2", claims)
	}
}

func TestPrerequisiteUnlocksSideQuest(t *testing.T) {
	ctx := context.Background()
	svc, _, events, _ := newTestService(t)

	side := questByID(t, svc, "side-exercise-50")
	if side.Status != quests.StatusLocked {
		t.Fatalf("side quest starts %s, want locked", side.Status)
	}

	// Locked quests ignore matching events.
	if _, err := svc.AdvanceQuests(ctx, quests.EventExercise, 1); err != nil {
		t.Fatal(err)
	}
	if side.Objective.Current != 0 {
		t.Fatal("locked quest advanced")
	}

	// Completing the prerequisite opens it.
	changed, err := svc.AdvanceQuests(ctx, quests.EventDay, 7)
	if err != nil {
		t.Fatal(err)
	}
	if questByID(t, svc, "main-first-week").Status != quests.StatusCompleted {
		t.Fatal("prerequisite quest not completed")
	}
	if side.Status != quests.StatusAvailable {
		t.Errorf("side quest = %s, want available", side.Status)
	}

	var sawUnlock bool
	for _, q := range changed {
		if q.ID == side.ID {
			sawUnlock = true
		}
	}
	if !sawUnlock {
		t.Error("unlocked quest missing from the changed set")
	}
	var unlockEvents int
	for _, e := range events.quests {
		if e.Action == "unlock" && e.QuestID == side.ID {
			unlockEvents++
		}
	}
	if unlockEvents != 1 {
		t.Errorf("unlock events = %d, want 1", unlockEvents)
	}

	// The freshly opened quest now accepts progress.
	if _, err := svc.AdvanceQuests(ctx, quests.EventExercise, 2); err != nil {
		t.Fatal(err)
	}
	if side.Objective.Current != 2 || side.Status != quests.StatusInProgress {
		t.Errorf("side quest = current %d, status %s", side.Objective.Current, side.Status)
	}
}

func TestResetItem(t *testing.T) {
	ctx := context.Background()
	svc, snaps, events, _ := newTestService(t)

	it, err := svc.AddItem(ctx, "determinants", "linear-algebra")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordReview(ctx, it.ID, 3); err != nil {
		t.Fatal(err)
	}
	if it.Review.Repetitions != 1 {
		t.Fatalf("review state = %+v before reset", it.Review)
	}

	got, err := svc.ResetItem(ctx, it.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Review != srs.NewState() {
		t.Errorf("review state after reset = %+v, want defaults", got.Review)
	}
	if !got.Review.Due(serviceTime) {
		t.Error("reset item not due")
	}

	// The reset persists across a restore.
	restored := New(Options{
		Clock:     &stepClock{t: serviceTime},
		Snapshots: snaps,
		Events:    events,
	})
	if err := restored.Load(ctx); err != nil {
		t.Fatal(err)
	}
	ri, err := restored.Item(it.ID)
	if err != nil {
		t.Fatal(err)
	}
	if ri.Review != srs.NewState() {
		t.Errorf("restored review state = %+v, want defaults", ri.Review)
	}

	var nf *NotFoundError
	if _, err := svc.ResetItem(ctx, "missing"); !errors.As(err, &nf) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}

func TestStartQuest(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)

	q, err := svc.StartQuest(ctx, "main-reviewer")
	if err != nil {
		t.Fatal(err)
	}
	if q.Status != quests.StatusInProgress {
		t.Errorf("status = %s, want in_progress", q.Status)
	}

	if _, err := svc.StartQuest(ctx, "missing"); err == nil {
		t.Error("starting an unknown quest succeeded")
	}
}

func TestExpiredQuestsIgnoreProgress(t *testing.T) {
	ctx := context.Background()
	svc, _, _, clock := newTestService(t)

	daily := questByID(t, svc, "daily-2025-05-05")
	clock.t = serviceTime.AddDate(0, 0, 2)

	if _, err := svc.AdvanceQuests(ctx, quests.EventExercise, 1); err != nil {
		t.Fatal(err)
	}
	if daily.Objective.Current != 0 {
		t.Error("expired daily quest advanced")
	}
}

func TestBadges_HidesLockedHidden(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	for _, b := range svc.Badges() {
		if b.ID == "night-owl" {
			t.Fatal("locked hidden badge visible")
		}
	}

	svc.RegisterCustomBadge("night-owl", func(stats.Aggregate) bool { return true })
	if _, err := svc.EvaluateBadges(context.Background()); err != nil {
		t.Fatal(err)
	}

	var visible bool
	for _, b := range svc.Badges() {
		if b.ID == "night-owl" {
			visible = b.Unlocked
		}
	}
	if !visible {
		t.Error("unlocked hidden badge not visible")
	}
}

func TestUnregisteredCustomBadgeNeverUnlocks(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	if _, err := svc.AddXP(context.Background(), 50, "warmup"); err != nil {
		t.Fatal(err)
	}
	for _, b := range svc.Badges() {
		if b.ID == "night-owl" && b.Unlocked {
			t.Error("custom badge unlocked without a registered predicate")
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, snaps, events, _ := newTestService(t)

	it, err := svc.AddItem(ctx, "eigenvalues", "linear-algebra")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordReview(ctx, it.ID, 3); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CompleteTask(ctx, 1); err != nil {
		t.Fatal(err)
	}
	want := svc.Ledger()

	restored := New(Options{
		Clock:     &stepClock{t: serviceTime},
		Snapshots: snaps,
		Events:    events,
	})
	if err := restored.Load(ctx); err != nil {
		t.Fatal(err)
	}

	got := restored.Ledger()
	if got.TotalXP != want.TotalXP || got.Level != want.Level ||
		got.CurrentStreakDays != want.CurrentStreakDays || got.BestStreakDays != want.BestStreakDays {
		t.Errorf("ledger = %+v, want %+v", got, want)
	}
	if got.LastActivityDate == nil || !got.LastActivityDate.Equal(*want.LastActivityDate) {
		t.Errorf("LastActivityDate = %v, want %v", got.LastActivityDate, want.LastActivityDate)
	}

	ri, err := restored.Item(it.ID)
	if err != nil {
		t.Fatal(err)
	}
	if ri.Title != "eigenvalues" || ri.Review.Repetitions != 1 {
		t.Errorf("restored item = %+v", ri)
	}
	if ri.Review.NextReviewAt == nil || !ri.Review.NextReviewAt.Equal(*it.Review.NextReviewAt) {
		t.Errorf("NextReviewAt = %v, want %v", ri.Review.NextReviewAt, it.Review.NextReviewAt)
	}

	if u := restored.Units()[0]; u.TasksDone != 1 {
		t.Errorf("restored unit = %+v", u)
	}
	if q := questByID(t, restored, "main-reviewer"); q.Objective.Current != 1 {
		t.Errorf("restored quest current = %d, want 1", q.Objective.Current)
	}
}

func TestLoad_RestoresBadgeUnlocks(t *testing.T) {
	ctx := context.Background()
	svc, snaps, events, _ := newTestService(t)

	// First exercise unlocks first-steps.
	if _, err := svc.CompleteExercise(ctx, 1); err != nil {
		t.Fatal(err)
	}

	restored := New(Options{
		Clock:     &stepClock{t: serviceTime},
		Snapshots: snaps,
		Events:    events,
	})
	if err := restored.Load(ctx); err != nil {
		t.Fatal(err)
	}

	var found bool
	for _, b := range restored.Badges() {
		if b.ID == "first-steps" {
			found = true
			if !b.Unlocked || b.UnlockedAt == nil || !b.UnlockedAt.Equal(serviceTime) {
				t.Errorf("restored badge = %+v", b)
			}
		}
	}
	if !found {
		t.Fatal("first-steps badge missing after restore")
	}
}

func TestLoad_DropsMalformedTimestamps(t *testing.T) {
	ctx := context.Background()
	bad := "not-a-timestamp"
	snaps := &memSnapshots{}
	if err := snaps.Save(ctx, &store.Snapshot{
		Timestamp: serviceTime,
		Data: store.SnapshotData{
			Version: 1,
			Ledger: &store.LedgerData{
				TotalXP:           40,
				Level:             1,
				CurrentStreakDays: 2,
				LastActivityDate:  &bad,
			},
		},
	}); err != nil {
		t.Fatal(err)
	}

	svc := New(Options{Clock: FixedClock{T: serviceTime}, Snapshots: snaps})
	if err := svc.Load(ctx); err != nil {
		t.Fatal(err)
	}

	led := svc.Ledger()
	if led.TotalXP != 40 || led.CurrentStreakDays != 2 {
		t.Errorf("ledger = %+v, want counters restored", led)
	}
	if led.LastActivityDate != nil {
		t.Errorf("LastActivityDate = %v, want dropped", led.LastActivityDate)
	}
}

func TestLoad_IssuesCurrentPeriodQuests(t *testing.T) {
	ctx := context.Background()
	svc, snaps, events, _ := newTestService(t)

	if _, err := svc.AddXP(ctx, 10, "seed"); err != nil {
		t.Fatal(err)
	}

	// A session the next day keeps yesterday's daily and issues today's.
	next := New(Options{
		Clock:     &stepClock{t: serviceTime.AddDate(0, 0, 1)},
		Snapshots: snaps,
		Events:    events,
	})
	if err := next.Load(ctx); err != nil {
		t.Fatal(err)
	}

	questByID(t, next, "daily-2025-05-05")
	questByID(t, next, "daily-2025-05-06")
}

func TestActivityLog(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.AddXP(ctx, 10, "practice"); err != nil {
			t.Fatal(err)
		}
	}

	log, err := svc.ActivityLog(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(log) != 2 {
		t.Fatalf("log entries = %d, want 2", len(log))
	}
	if log[0].Sequence < log[1].Sequence {
		t.Error("activity log not newest first")
	}
}

func TestSubscribe_NotifiedOnSave(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)

	var calls int
	svc.Subscribe(func() { calls++ })

	if _, err := svc.AddXP(ctx, 5, "tick"); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("listener calls = %d, want 1", calls)
	}
}

func questByID(t *testing.T, svc *Service, id string) *quests.Quest {
	t.Helper()
	for _, q := range svc.Quests() {
		if q.ID == id {
			return q
		}
	}
	t.Fatalf("quest %s not found", id)
	return nil
}
