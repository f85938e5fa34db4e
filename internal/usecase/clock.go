package usecase

import "time"

// Clock supplies "today" for ongoing positions. Tests pin it.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
