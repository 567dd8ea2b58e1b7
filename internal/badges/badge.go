// Package badges evaluates badge unlock conditions against aggregate learner
// statistics. Unlocks are permanent; the evaluator never touches XP, it only
// reports which badges newly qualify so the caller can route their rewards.
package badges

import "time"

// Badge is an unlockable achievement. Once Unlocked is set it is never
// reverted.
type Badge struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Condition  Condition  `json:"condition"`
	XPReward   int        `json:"xp_reward"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
	Hidden     bool       `json:"hidden"`
}
