package progress

import "time"

// Clock supplies "now" to the facade. Injected so tests and replays control
// time; the engine packages take timestamps as arguments and never read a
// clock themselves.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }

// FixedClock returns a Clock that always reports t. Test helper.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }
