package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/abhisek/studyquest/internal/badges"
	"github.com/abhisek/studyquest/internal/curriculum"
	"github.com/abhisek/studyquest/internal/ledger"
	"github.com/abhisek/studyquest/internal/quests"
	"github.com/abhisek/studyquest/internal/srs"
	"github.com/abhisek/studyquest/internal/store"
)

const snapshotVersion = 1

// snapshotData exports the working state for persistence.
func (s *Service) snapshotData() store.SnapshotData {
	data := store.SnapshotData{
		Version: snapshotVersion,
		Items:   make(map[string]*store.ItemData, len(s.items)),
		Badges:  make(map[string]*store.BadgeData, len(s.badges)),
		Quests:  make(map[string]*store.QuestData, len(s.quests)),
		Ledger: &store.LedgerData{
			TotalXP:           s.ledger.TotalXP,
			Level:             s.ledger.Level,
			CurrentStreakDays: s.ledger.CurrentStreakDays,
			BestStreakDays:    s.ledger.BestStreakDays,
			LastActivityDate:  fmtTime(s.ledger.LastActivityDate),
		},
		Study: &store.StudyData{
			TotalMinutes:     s.study.Minutes,
			PomodoroSessions: s.study.Pomodoros,
		},
	}

	for id, it := range s.items {
		data.Items[id] = &store.ItemData{
			ItemID:         it.ID,
			Title:          it.Title,
			Subject:        it.Subject,
			Repetitions:    it.Review.Repetitions,
			EaseFactor:     it.Review.EaseFactor,
			IntervalDays:   it.Review.IntervalDays,
			LastReviewedAt: fmtTime(it.Review.LastReviewedAt),
			NextReviewAt:   fmtTime(it.Review.NextReviewAt),
			LastQuality:    it.Review.LastQuality,
		}
	}

	for _, b := range s.badges {
		data.Badges[b.ID] = &store.BadgeData{
			BadgeID:    b.ID,
			Unlocked:   b.Unlocked,
			UnlockedAt: fmtTime(b.UnlockedAt),
		}
	}

	for id, q := range s.quests {
		data.Quests[id] = &store.QuestData{
			QuestID:       q.ID,
			Name:          q.Name,
			Kind:          string(q.Kind),
			ObjectiveType: q.Objective.Type,
			Target:        q.Objective.Target,
			Current:       q.Objective.Current,
			Status:        string(q.Status),
			RewardXP:      q.RewardXP,
			Prerequisite:  q.Prerequisite,
			Deadline:      fmtTime(q.Deadline),
			ClaimedAt:     fmtTime(q.ClaimedAt),
		}
	}

	for _, u := range s.units {
		data.Units = append(data.Units, &store.UnitData{
			SequenceNumber: u.Sequence,
			TasksDone:      u.TasksDone,
			ExercisesDone:  u.ExercisesDone,
			Ratio:          u.Ratio,
			Completed:      u.Completed,
		})
	}

	return data
}

// loadSnapshot restores working state from persisted data. Badge and quest
// definitions come from the static catalogs; the snapshot contributes only
// their progress and unlock state, so catalog changes take effect on load.
func (s *Service) loadSnapshot(data *store.SnapshotData) {
	for id, it := range data.Items {
		s.items[id] = &Item{
			ID:      it.ItemID,
			Title:   it.Title,
			Subject: it.Subject,
			Review: srs.ReviewState{
				Repetitions:    it.Repetitions,
				EaseFactor:     it.EaseFactor,
				IntervalDays:   it.IntervalDays,
				LastReviewedAt: parseTime(it.LastReviewedAt),
				NextReviewAt:   parseTime(it.NextReviewAt),
				LastQuality:    it.LastQuality,
			},
		}
	}

	if data.Ledger != nil {
		s.ledger = ledger.Ledger{
			TotalXP:           data.Ledger.TotalXP,
			Level:             data.Ledger.Level,
			CurrentStreakDays: data.Ledger.CurrentStreakDays,
			BestStreakDays:    data.Ledger.BestStreakDays,
			LastActivityDate:  parseTime(data.Ledger.LastActivityDate),
		}
	}

	unlocked := make(map[string]*badges.Badge, len(data.Badges))
	for id, bd := range data.Badges {
		unlocked[id] = &badges.Badge{
			ID:         bd.BadgeID,
			Unlocked:   bd.Unlocked,
			UnlockedAt: parseTime(bd.UnlockedAt),
		}
	}
	s.badges = badges.Merge(s.badges, unlocked)

	for id, qd := range data.Quests {
		s.quests[id] = &quests.Quest{
			ID:   qd.QuestID,
			Name: qd.Name,
			Kind: quests.Kind(qd.Kind),
			Objective: quests.Objective{
				Type:    qd.ObjectiveType,
				Target:  qd.Target,
				Current: qd.Current,
			},
			Status:       quests.Status(qd.Status),
			RewardXP:     qd.RewardXP,
			Prerequisite: qd.Prerequisite,
			Deadline:     parseTime(qd.Deadline),
			ClaimedAt:    parseTime(qd.ClaimedAt),
		}
	}

	for _, ud := range data.Units {
		if u := s.unit(ud.SequenceNumber); u != nil {
			u.TasksDone = ud.TasksDone
			u.ExercisesDone = ud.ExercisesDone
			u.Ratio = ud.Ratio
			u.Completed = ud.Completed
		}
	}

	if data.Study != nil {
		s.study.Minutes = data.Study.TotalMinutes
		s.study.Pomodoros = data.Study.PomodoroSessions
	}
}

// seedUnits builds zeroed unit progress for the full curriculum.
func seedUnits() []*UnitProgress {
	units := make([]*UnitProgress, 0, curriculum.Len())
	for _, d := range curriculum.Days() {
		units = append(units, &UnitProgress{Sequence: d.Sequence})
	}
	return units
}

// seedQuests builds the initial quest set: static main/side quests plus the
// current daily and weekly instances.
func seedQuests(now time.Time) map[string]*quests.Quest {
	set := make(map[string]*quests.Quest)
	for _, q := range quests.MainQuests() {
		set[q.ID] = q
	}
	d := quests.IssueDaily(now)
	set[d.ID] = d
	w := quests.IssueWeekly(now)
	set[w.ID] = w
	return set
}

func fmtTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

// parseTime decodes a persisted RFC3339 timestamp. A malformed value is
// dropped with a warning rather than failing the whole restore.
func parseTime(v *string) *time.Time {
	if v == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: discarding malformed timestamp %q: %v\n", *v, err)
		return nil
	}
	return &t
}
