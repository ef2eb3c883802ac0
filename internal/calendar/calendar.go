// Package calendar turns the date and time-of-day strings used by the booking
// API into instants, and computes the local day window used by "today" queries.
package calendar

import (
	"strconv"
	"strings"
	"time"

	apperrors "clinicdesk/internal/errors"
)

const dateLayout = "2006-01-02"

// Combine returns the instant at clock (HH:MM, 24-hour) on the calendar day
// named by date, in loc. Seconds and sub-second fields are always zero.
//
// date may be a bare YYYY-MM-DD or a full RFC 3339 timestamp, in which case
// only its calendar date is kept.
func Combine(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	y, m, d, err := parseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(y, m, d, hour, minute, 0, 0, loc), nil
}

// ParseClock parses "H:MM" or "HH:MM" into hour and minute.
func ParseClock(clock string) (hour, minute int, err error) {
	h, mm, ok := strings.Cut(strings.TrimSpace(clock), ":")
	if !ok || len(h) == 0 || len(h) > 2 || len(mm) != 2 {
		return 0, 0, apperrors.ErrInvalidTime
	}
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, apperrors.ErrInvalidTime
	}
	minute, err = strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, apperrors.ErrInvalidTime
	}
	return hour, minute, nil
}

func parseDate(date string) (int, time.Month, int, error) {
	date = strings.TrimSpace(date)
	if t, err := time.Parse(dateLayout, date); err == nil {
		y, m, d := t.Date()
		return y, m, d, nil
	}
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		y, m, d := t.Date()
		return y, m, d, nil
	}
	return 0, 0, 0, apperrors.ErrInvalidDate
}

// DayBounds returns the first and last instant of now's calendar day in now's
// location. Both ends are meant to be matched inclusively.
func DayBounds(now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}
