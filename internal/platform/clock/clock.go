package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Zoned reports the wrapped clock's instants in Loc, so calendar days follow
// the user's wall clock instead of UTC.
type Zoned struct {
	Clock Clock
	Loc   *time.Location
}

func (z Zoned) Now() time.Time {
	now := z.Clock.Now()
	if z.Loc == nil {
		return now
	}
	return now.In(z.Loc)
}

// Day formats t as a calendar day key (YYYY-MM-DD).
func Day(t time.Time) string {
	return t.Format("2006-01-02")
}
