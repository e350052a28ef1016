package daily

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar-day key in YYYY-MM-DD form. All engine arithmetic works on
// these normalized keys; locale display formatting belongs to the client.
type Day string

// ParseDay validates a raw date string and returns it as a Day.
func ParseDay(s string) (Day, error) {
	if _, err := time.Parse(dayLayout, s); err != nil {
		return "", fmt.Errorf("invalid date key %q: %w", s, err)
	}
	return Day(s), nil
}

// DayOf truncates a point in time to its calendar day.
func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

// Time returns local midnight of the day. Invalid keys return the zero time.
func (d Day) Time() time.Time {
	t, err := time.Parse(dayLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays returns the day shifted by n calendar days (n may be negative).
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b Day) int {
	return int(b.Time().Sub(a.Time()).Hours() / 24)
}
