package badges

import (
	"time"

	"github.com/abhisek/studyquest/internal/stats"
)

// Evaluator decides which badges newly qualify for unlock. Custom condition
// predicates are registered by the caller; everything else dispatches on the
// condition kind.
type Evaluator struct {
	custom map[string]Predicate
}

// NewEvaluator creates an evaluator with no custom predicates registered.
func NewEvaluator() *Evaluator {
	return &Evaluator{custom: make(map[string]Predicate)}
}

// RegisterCustom installs the predicate for a custom condition id.
func (e *Evaluator) RegisterCustom(id string, p Predicate) {
	e.custom[id] = p
}

// Evaluate marks every locked badge whose condition now holds as unlocked and
// returns the newly unlocked badges. Already-unlocked badges are skipped, so
// a second run with the same statistics returns nothing.
func (e *Evaluator) Evaluate(badges []*Badge, st stats.Aggregate, now time.Time) []*Badge {
	var unlocked []*Badge
	for _, b := range badges {
		if b.Unlocked {
			continue
		}
		if !b.Condition.Satisfied(st, e.custom) {
			continue
		}
		at := now
		b.Unlocked = true
		b.UnlockedAt = &at
		unlocked = append(unlocked, b)
	}
	return unlocked
}
