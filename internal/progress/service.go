// Package progress is the facade over the progression engines. It owns the
// single-writer read-modify-write cycle: load the latest snapshot, apply the
// pure engine operations, persist the result, and publish the change to
// registered listeners. The engines themselves never perform I/O.
package progress

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/abhisek/studyquest/internal/badges"
	"github.com/abhisek/studyquest/internal/curriculum"
	"github.com/abhisek/studyquest/internal/gate"
	"github.com/abhisek/studyquest/internal/ledger"
	"github.com/abhisek/studyquest/internal/quests"
	"github.com/abhisek/studyquest/internal/srs"
	"github.com/abhisek/studyquest/internal/stats"
	"github.com/abhisek/studyquest/internal/store"
)

// Item is a reviewable learning item (flashcard, summary prompt) with its
// spaced repetition state.
type Item struct {
	ID      string
	Title   string
	Subject string
	Review  srs.ReviewState
}

// UnitProgress tracks completion of one curriculum day.
type UnitProgress struct {
	Sequence      int
	TasksDone     int
	ExercisesDone int
	Ratio         float64
	Completed     bool
}

type studyTotals struct {
	Minutes   int
	Pomodoros int
}

// Options configures a Service. Zero-value fields get defaults.
type Options struct {
	Clock     Clock
	Snapshots store.SnapshotRepo
	Events    store.EventRepo

	// Gate overrides the gating policy. Nil means the default threshold;
	// an explicit zero threshold disables gating.
	Gate *gate.Config
}

// Service coordinates the progression engines over one learner's record.
// Not safe for concurrent use: the design assumes a single active session.
type Service struct {
	clock     Clock
	snapshots store.SnapshotRepo
	events    store.EventRepo
	gateCfg   gate.Config
	evaluator *badges.Evaluator
	sessionID string

	items  map[string]*Item
	ledger ledger.Ledger
	badges []*badges.Badge
	quests map[string]*quests.Quest
	units  []*UnitProgress
	study  studyTotals

	listeners []func()
}

// New creates a Service. Call Load before using it.
func New(opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	gateCfg := gate.DefaultConfig()
	if opts.Gate != nil {
		gateCfg = *opts.Gate
	}
	return &Service{
		clock:     opts.Clock,
		snapshots: opts.Snapshots,
		events:    opts.Events,
		gateCfg:   gateCfg,
		evaluator: badges.NewEvaluator(),
		sessionID: uuid.NewString(),
		items:     make(map[string]*Item),
		ledger:    ledger.New(),
		badges:    badges.Catalog(),
		quests:    make(map[string]*quests.Quest),
		units:     seedUnits(),
	}
}

// RegisterCustomBadge installs a predicate for a custom badge condition id.
func (s *Service) RegisterCustomBadge(id string, p badges.Predicate) {
	s.evaluator.RegisterCustom(id, p)
}

// Subscribe registers a callback invoked after every persisted state change.
// How changes are published (polling, channel, UI refresh) is the caller's
// choice; the engines only return new state.
func (s *Service) Subscribe(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *Service) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}

// Load restores state from the latest snapshot, then ensures the current
// daily and weekly quest instances exist. Expired period quests are left
// terminal; new instances replace them under fresh period ids.
func (s *Service) Load(ctx context.Context) error {
	if s.snapshots != nil {
		snap, err := s.snapshots.Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil {
			s.loadSnapshot(&snap.Data)
		}
	}

	now := s.clock.Now()
	for id, q := range seedQuests(now) {
		if _, ok := s.quests[id]; !ok {
			s.quests[id] = q
		}
	}
	return nil
}

// save persists the current state as a new snapshot and notifies listeners.
func (s *Service) save(ctx context.Context) error {
	if s.snapshots == nil {
		s.notify()
		return nil
	}

	var seq int64
	if s.events != nil {
		var err error
		seq, err = s.events.CurrentSequence(ctx)
		if err != nil {
			return fmt.Errorf("current sequence: %w", err)
		}
	}

	err := s.snapshots.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: s.clock.Now(),
		Data:      s.snapshotData(),
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	s.notify()
	return nil
}

// AddItem registers a new reviewable item with default review state.
func (s *Service) AddItem(ctx context.Context, title, subject string) (*Item, error) {
	it := &Item{
		ID:      uuid.NewString(),
		Title:   title,
		Subject: subject,
		Review:  srs.NewState(),
	}
	s.items[it.ID] = it
	return it, s.save(ctx)
}

// Item returns the item with the given id, or a NotFoundError.
func (s *Service) Item(id string) (*Item, error) {
	it, ok := s.items[id]
	if !ok {
		return nil, &NotFoundError{Kind: "item", ID: id}
	}
	return it, nil
}

// Items returns all items sorted by id.
func (s *Service) Items() []*Item {
	out := make([]*Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DueItems returns items due for review, never-reviewed first.
func (s *Service) DueItems() []*Item {
	now := s.clock.Now()
	var due []*Item
	for _, it := range s.items {
		if it.Review.Due(now) {
			due = append(due, it)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		a, b := due[i].Review, due[j].Review
		if (a.NextReviewAt == nil) != (b.NextReviewAt == nil) {
			return a.NextReviewAt == nil
		}
		if a.NextReviewAt != nil && !a.NextReviewAt.Equal(*b.NextReviewAt) {
			return a.NextReviewAt.Before(*b.NextReviewAt)
		}
		return due[i].ID < due[j].ID
	})
	return due
}

// RecordReview applies one review to an item: reschedules it, rewards the
// ledger, advances review quests, and re-evaluates badges. Validation errors
// leave all state untouched.
func (s *Service) RecordReview(ctx context.Context, itemID string, quality int) (*Item, error) {
	it, ok := s.items[itemID]
	if !ok {
		return nil, &NotFoundError{Kind: "item", ID: itemID}
	}

	now := s.clock.Now()
	next, err := srs.Record(it.Review, quality, now)
	if err != nil {
		return nil, err
	}
	it.Review = next

	s.appendEvent(func() error {
		return s.events.AppendReviewEvent(ctx, store.ReviewEventData{
			ItemID:       it.ID,
			Quality:      quality,
			IntervalDays: next.IntervalDays,
			EaseFactor:   next.EaseFactor,
			Repetition:   next.Repetitions,
			SessionID:    s.sessionID,
		})
	})

	if err := s.reward(ctx, ReviewXP(quality), fmt.Sprintf("reviewed %s", it.Title)); err != nil {
		return nil, err
	}
	s.advanceQuests(ctx, quests.EventReview, 1)
	if _, err := s.evaluateBadges(ctx); err != nil {
		return nil, err
	}

	return it, s.save(ctx)
}

// ResetItem returns an item's review state to defaults.
func (s *Service) ResetItem(ctx context.Context, itemID string) (*Item, error) {
	it, ok := s.items[itemID]
	if !ok {
		return nil, &NotFoundError{Kind: "item", ID: itemID}
	}
	it.Review = it.Review.Reset()
	return it, s.save(ctx)
}

// AddXP grants experience with an opaque reason, touches the activity
// streak, and re-evaluates badges.
func (s *Service) AddXP(ctx context.Context, amount int, reason string) (ledger.Ledger, error) {
	if err := s.reward(ctx, amount, reason); err != nil {
		return s.ledger, err
	}
	if _, err := s.evaluateBadges(ctx); err != nil {
		return s.ledger, err
	}
	return s.ledger, s.save(ctx)
}

// reward applies an XP grant plus the streak touch and logs the event.
// Validation happens before any mutation.
func (s *Service) reward(ctx context.Context, amount int, reason string) error {
	led, err := s.ledger.AddXP(amount)
	if err != nil {
		return err
	}
	now := s.clock.Now()
	s.ledger = led.TouchActivity(now)

	s.appendEvent(func() error {
		return s.events.AppendXPEvent(ctx, store.XPEventData{
			Amount:     amount,
			Reason:     reason,
			TotalAfter: s.ledger.TotalXP,
			LevelAfter: s.ledger.Level,
			SessionID:  s.sessionID,
		})
	})
	return nil
}

// Ledger returns a copy of the current progression ledger.
func (s *Service) Ledger() ledger.Ledger {
	return s.ledger
}

// EvaluateBadges re-runs the badge evaluator against current aggregate
// statistics and returns the newly unlocked badges.
func (s *Service) EvaluateBadges(ctx context.Context) ([]*badges.Badge, error) {
	unlocked, err := s.evaluateBadges(ctx)
	if err != nil {
		return nil, err
	}
	if len(unlocked) == 0 {
		return nil, nil
	}
	return unlocked, s.save(ctx)
}

// evaluateBadges runs one evaluation pass and routes badge rewards into the
// ledger. Rewards do not trigger a second pass within the same call: badge
// unlock feeding XP back is a one-directional edge, not a cycle.
func (s *Service) evaluateBadges(ctx context.Context) ([]*badges.Badge, error) {
	st, err := s.buildStats(ctx)
	if err != nil {
		return nil, err
	}

	unlocked := s.evaluator.Evaluate(s.badges, st, s.clock.Now())
	for _, b := range unlocked {
		s.appendEvent(func() error {
			return s.events.AppendBadgeEvent(ctx, store.BadgeEventData{
				BadgeID:       b.ID,
				ConditionKind: string(b.Condition.Kind),
				XPReward:      b.XPReward,
				SessionID:     s.sessionID,
			})
		})
		if b.XPReward > 0 {
			if err := s.reward(ctx, b.XPReward, fmt.Sprintf("badge: %s", b.Name)); err != nil {
				return nil, err
			}
		}
	}
	return unlocked, nil
}

// Badges returns the badge list, locked hidden badges excluded.
func (s *Service) Badges() []*badges.Badge {
	out := make([]*badges.Badge, 0, len(s.badges))
	for _, b := range s.badges {
		if b.Hidden && !b.Unlocked {
			continue
		}
		out = append(out, b)
	}
	return out
}

// AdvanceQuests routes an objective-advancing event to every matching active
// quest and returns the quests it changed.
func (s *Service) AdvanceQuests(ctx context.Context, eventType string, amount int) ([]*quests.Quest, error) {
	changed := s.advanceQuests(ctx, eventType, amount)
	if len(changed) == 0 {
		return nil, nil
	}
	return changed, s.save(ctx)
}

func (s *Service) advanceQuests(ctx context.Context, eventType string, amount int) []*quests.Quest {
	now := s.clock.Now()
	var changed []*quests.Quest
	for _, q := range s.quests {
		if q.Expired(now) {
			continue
		}
		if !quests.Advance(q, eventType, amount) {
			continue
		}
		changed = append(changed, q)

		action := "advance"
		if q.Status == quests.StatusCompleted {
			action = "complete"
			changed = append(changed, s.unlockDependents(ctx, q.ID)...)
		}
		s.appendEvent(func() error {
			return s.events.AppendQuestEvent(ctx, store.QuestEventData{
				QuestID:   q.ID,
				Action:    action,
				EventType: eventType,
				Amount:    amount,
				Status:    string(q.Status),
				SessionID: s.sessionID,
			})
		})
	}
	sort.Slice(changed, func(i, j int) bool { return changed[i].ID < changed[j].ID })
	return changed
}

// unlockDependents opens every locked quest whose prerequisite just completed.
func (s *Service) unlockDependents(ctx context.Context, completedID string) []*quests.Quest {
	var unlocked []*quests.Quest
	for _, q := range s.quests {
		if q.Prerequisite != completedID || !quests.Unlock(q) {
			continue
		}
		unlocked = append(unlocked, q)
		s.appendEvent(func() error {
			return s.events.AppendQuestEvent(ctx, store.QuestEventData{
				QuestID:   q.ID,
				Action:    "unlock",
				Status:    string(q.Status),
				SessionID: s.sessionID,
			})
		})
	}
	return unlocked
}

// StartQuest explicitly moves an available quest to in-progress.
func (s *Service) StartQuest(ctx context.Context, questID string) (*quests.Quest, error) {
	q, ok := s.quests[questID]
	if !ok {
		return nil, &NotFoundError{Kind: "quest", ID: questID}
	}
	if !quests.Start(q) {
		return q, nil
	}
	return q, s.save(ctx)
}

// ClaimQuestReward grants a completed quest's XP exactly once.
func (s *Service) ClaimQuestReward(ctx context.Context, questID string) (int, error) {
	q, ok := s.quests[questID]
	if !ok {
		return 0, &NotFoundError{Kind: "quest", ID: questID}
	}

	xp, err := quests.ClaimReward(q, s.clock.Now())
	if err != nil {
		return 0, err
	}

	s.appendEvent(func() error {
		return s.events.AppendQuestEvent(ctx, store.QuestEventData{
			QuestID:   q.ID,
			Action:    "claim",
			Status:    string(q.Status),
			SessionID: s.sessionID,
		})
	})

	if xp > 0 {
		if err := s.reward(ctx, xp, fmt.Sprintf("quest: %s", q.Name)); err != nil {
			return 0, err
		}
		if _, err := s.evaluateBadges(ctx); err != nil {
			return 0, err
		}
	}
	return xp, s.save(ctx)
}

// Quests returns all quests sorted by id.
func (s *Service) Quests() []*quests.Quest {
	out := make([]*quests.Quest, 0, len(s.quests))
	for _, q := range s.quests {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CompleteTask marks one task done on a curriculum day.
func (s *Service) CompleteTask(ctx context.Context, sequence int) (*UnitProgress, error) {
	return s.completeWork(ctx, sequence, 1, 0)
}

// CompleteExercise marks one exercise done on a curriculum day and advances
// exercise quests.
func (s *Service) CompleteExercise(ctx context.Context, sequence int) (*UnitProgress, error) {
	return s.completeWork(ctx, sequence, 0, 1)
}

func (s *Service) completeWork(ctx context.Context, sequence, tasks, exercises int) (*UnitProgress, error) {
	day := curriculum.DayBySequence(sequence)
	u := s.unit(sequence)
	if day == nil || u == nil {
		return nil, &NotFoundError{Kind: "day", ID: fmt.Sprintf("%d", sequence)}
	}

	u.TasksDone = min(u.TasksDone+tasks, day.Tasks)
	u.ExercisesDone = min(u.ExercisesDone+exercises, day.Exercises)
	u.Ratio = curriculum.Completion(*day, u.TasksDone, u.ExercisesDone)

	var err error
	switch {
	case exercises > 0:
		err = s.reward(ctx, ExerciseXP, fmt.Sprintf("exercise on day %d", sequence))
		s.advanceQuests(ctx, quests.EventExercise, exercises)
	case tasks > 0:
		err = s.reward(ctx, TaskXP, fmt.Sprintf("task on day %d", sequence))
	}
	if err != nil {
		return nil, err
	}

	if !u.Completed && u.Ratio >= 100 {
		u.Completed = true
		if err := s.reward(ctx, DayCompleteXP, fmt.Sprintf("completed day %d", sequence)); err != nil {
			return nil, err
		}
		s.advanceQuests(ctx, quests.EventDay, 1)
	}

	if _, err := s.evaluateBadges(ctx); err != nil {
		return nil, err
	}
	return u, s.save(ctx)
}

// LogStudy records a finished pomodoro of the given length, rewards it, and
// advances pomodoro quests. Minutes must be positive.
func (s *Service) LogStudy(ctx context.Context, minutes int) error {
	if minutes <= 0 {
		return &InvalidMinutesError{Minutes: minutes}
	}
	s.study.Minutes += minutes
	s.study.Pomodoros++

	if err := s.reward(ctx, PomodoroXP, fmt.Sprintf("focus session (%d min)", minutes)); err != nil {
		return err
	}
	s.advanceQuests(ctx, quests.EventPomodoro, 1)
	if _, err := s.evaluateBadges(ctx); err != nil {
		return err
	}
	return s.save(ctx)
}

// IsDayAccessible reports whether the day with the given sequence number is
// open, per the gating policy.
func (s *Service) IsDayAccessible(sequence int) bool {
	return s.gateCfg.IsAccessible(s.contentUnits(), sequence)
}

// Units returns the per-day progress records in sequence order.
func (s *Service) Units() []*UnitProgress {
	return s.units
}

func (s *Service) contentUnits() []gate.ContentUnit {
	units := make([]gate.ContentUnit, len(s.units))
	for i, u := range s.units {
		units[i] = gate.ContentUnit{
			SequenceNumber:  u.Sequence,
			CompletionRatio: u.Ratio,
			Completed:       u.Completed,
		}
	}
	return units
}

func (s *Service) unit(sequence int) *UnitProgress {
	for _, u := range s.units {
		if u.Sequence == sequence {
			return u
		}
	}
	return nil
}

// Stats assembles the aggregate statistics value used by badge evaluation
// and the stats display.
func (s *Service) Stats(ctx context.Context) (stats.Aggregate, error) {
	return s.buildStats(ctx)
}

func (s *Service) buildStats(ctx context.Context) (stats.Aggregate, error) {
	in := stats.Inputs{
		TotalXP:           s.ledger.TotalXP,
		Level:             s.ledger.Level,
		StreakDays:        s.ledger.CurrentStreakDays,
		BestStreakDays:    s.ledger.BestStreakDays,
		TotalMinutes:      s.study.Minutes,
		PomodoroSessions:  s.study.Pomodoros,
		SubjectCompletion: s.subjectCompletion(),
	}

	for _, u := range s.units {
		in.ExercisesCompleted += u.ExercisesDone
	}

	if s.events != nil {
		count, mean, err := s.events.ReviewStats(ctx)
		if err != nil {
			return stats.Aggregate{}, fmt.Errorf("review stats: %w", err)
		}
		in.ReviewCount = count
		in.MeanQuality = mean
	}

	return stats.Build(in), nil
}

func (s *Service) subjectCompletion() map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, u := range s.units {
		day := curriculum.DayBySequence(u.Sequence)
		if day == nil {
			continue
		}
		sums[day.Subject] += u.Ratio
		counts[day.Subject]++
	}

	out := make(map[string]float64, len(sums))
	for subject, sum := range sums {
		out[subject] = sum / float64(counts[subject])
	}
	return out
}

// ActivityLog returns the most recent XP grants, newest first.
func (s *Service) ActivityLog(ctx context.Context, limit int) ([]store.XPEventRecord, error) {
	if s.events == nil {
		return nil, nil
	}
	return s.events.QueryXPEvents(ctx, store.QueryOpts{Limit: limit})
}

// appendEvent logs an event best-effort: a failed append degrades the
// activity history but never fails the learner's action.
func (s *Service) appendEvent(fn func() error) {
	if s.events == nil {
		return
	}
	if err := fn(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to append event: %v\n", err)
	}
}
