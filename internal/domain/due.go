package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultDueTime is the time of day applied to due dates given without one.
const DefaultDueTime = "17:00"

// dueLayouts are the accepted absolute due date formats that carry a time of day.
var dueLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseDueTime parses an HH:MM 24-hour time of day.
func ParseDueTime(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidDueTime
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, ErrInvalidDueTime
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 || len(parts[1]) != 2 {
		return 0, 0, ErrInvalidDueTime
	}
	return hour, minute, nil
}

// DefaultDueDate returns today (in now's location) at the given time of day.
func DefaultDueDate(now time.Time, dueTime string) (time.Time, error) {
	return atTime(CalendarDate(now), dueTime)
}

// ParseDueDate parses a due date relative to now.
//
// Accepted forms:
//   - RFC 3339, "2006-01-02T15:04", "2006-01-02 15:04"
//   - "2006-01-02" (uses dueTime)
//   - "today", "tomorrow", "+Nd" (uses dueTime)
//
// Dates without an explicit zone are interpreted in now's location.
func ParseDueDate(s string, now time.Time, dueTime string) (time.Time, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return time.Time{}, ErrMissingDueDate
	}

	today := CalendarDate(now)
	switch strings.ToLower(v) {
	case "today":
		return atTime(today, dueTime)
	case "tomorrow":
		return atTime(today.AddDate(0, 0, 1), dueTime)
	}

	if strings.HasPrefix(v, "+") && strings.HasSuffix(v, "d") {
		n, err := strconv.Atoi(v[1 : len(v)-1])
		if err != nil || n < 0 {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, s)
		}
		return atTime(today.AddDate(0, 0, n), dueTime)
	}

	for _, layout := range dueLayouts {
		if t, err := time.ParseInLocation(layout, v, now.Location()); err == nil {
			return t, nil
		}
	}

	if d, err := time.ParseInLocation("2006-01-02", v, now.Location()); err == nil {
		return atTime(d, dueTime)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, s)
}

func atTime(day time.Time, dueTime string) (time.Time, error) {
	hour, minute, err := ParseDueTime(dueTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}

// maxAgeDays is the longest age in days a time.Duration can hold.
const maxAgeDays = math.MaxInt64 / int64(24*time.Hour)

// ParseAge parses an age such as "30d", "2w" or any time.ParseDuration value.
func ParseAge(s string) (time.Duration, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, ErrInvalidDuration
	}
	unit := s[len(s)-1]
	if unit == 'd' || unit == 'w' {
		n, err := strconv.Atoi(s[:len(s)-1])
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		days := int64(n)
		if unit == 'w' {
			if days > maxAgeDays/7 {
				return 0, fmt.Errorf("%w: %q is too long", ErrInvalidDuration, s)
			}
			days *= 7
		}
		if days > maxAgeDays {
			return 0, fmt.Errorf("%w: %q is too long", ErrInvalidDuration, s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	return d, nil
}
