package appointment

import "time"

// Clock is the single source of "current time" for future-instant
// validation. Use cases take it as a dependency so tests can pin it.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
