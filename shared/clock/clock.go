package clock

import (
	"roomescape/shared/timezone"
	"time"
)

// Clock abstracts the current time so services that compare against
// "now" (past-reservation checks) stay deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return timezone.Now()
}

func New() Clock {
	return systemClock{}
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}

// Fixed returns a Clock frozen at the given instant.
func Fixed(at time.Time) Clock {
	return fixedClock{at: at}
}
