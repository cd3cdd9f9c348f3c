// Package biztime provides business-timezone boundary calculations for
// the ticket rollup windows. Storage and transport are always UTC; the
// business timezone is only used to decide where "today", "this week"
// and "this month" begin before converting back to UTC for queries.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "America/Lima"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to America/Lima.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, auto-initializing
// with the default when Init was not called explicitly.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns the start of day (00:00:00) in business timezone,
// converted to UTC.
func StartOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	startOfDay := time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, Location())
	return startOfDay.UTC()
}

// StartOfWeekUTC returns the start of the ISO week (Monday 00:00:00) in
// business timezone, converted to UTC. Sunday counts as day 7 of the
// prior week, so on a Sunday the boundary is six days back.
func StartOfWeekUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	daysBack := int(bizTime.Weekday()) - 1
	if bizTime.Weekday() == time.Sunday {
		daysBack = 6
	}
	monday := bizTime.AddDate(0, 0, -daysBack)
	startOfWeek := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, Location())
	return startOfWeek.UTC()
}

// StartOfMonthUTC returns the first day of the month (00:00:00) in
// business timezone, converted to UTC.
func StartOfMonthUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	startOfMonth := time.Date(bizTime.Year(), bizTime.Month(), 1, 0, 0, 0, 0, Location())
	return startOfMonth.UTC()
}

// StartOfDateUTC parses an ISO calendar date (YYYY-MM-DD) as the
// inclusive lower bound 00:00:00.000 UTC of that date. Date-range
// filters are plain UTC days, independent of the business timezone.
func StartOfDateUTC(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t, nil
}

// EndOfDateUTC parses an ISO calendar date (YYYY-MM-DD) as the inclusive
// upper bound 23:59:59.999 UTC of that date.
func EndOfDateUTC(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.Add(24*time.Hour - time.Millisecond), nil
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}
