// Package gate decides which curriculum units the learner can enter. It is a
// pure read over completion state, queried by navigation on demand.
package gate

// DefaultThreshold is the completion percentage a unit needs before the next
// one opens.
const DefaultThreshold = 50.0

// ContentUnit is the progress record for one curriculum day.
type ContentUnit struct {
	SequenceNumber  int     `json:"sequence_number"`
	CompletionRatio float64 `json:"completion_ratio"`
	Completed       bool    `json:"completed"`
}

// Config holds gating policy. Threshold 0 disables gating entirely.
type Config struct {
	Threshold float64
}

// DefaultConfig returns the standard gating policy.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold}
}

// IsAccessible reports whether the unit with the given sequence number can be
// entered. The first unit is always open. A later unit opens once its
// predecessor is completed or has reached the threshold. A missing
// predecessor record fails open: a data gap must never lock the learner out.
func (c Config) IsAccessible(units []ContentUnit, sequenceNumber int) bool {
	if sequenceNumber == 1 {
		return true
	}
	if sequenceNumber < 1 || sequenceNumber > len(units) {
		return false
	}

	prev := findUnit(units, sequenceNumber-1)
	if prev == nil {
		return true
	}
	return prev.Completed || prev.CompletionRatio >= c.Threshold
}

// AccessibleUnits returns the sequence numbers currently open, in order.
func (c Config) AccessibleUnits(units []ContentUnit) []int {
	var open []int
	for _, u := range units {
		if c.IsAccessible(units, u.SequenceNumber) {
			open = append(open, u.SequenceNumber)
		}
	}
	return open
}

func findUnit(units []ContentUnit, seq int) *ContentUnit {
	for i := range units {
		if units[i].SequenceNumber == seq {
			return &units[i]
		}
	}
	return nil
}
