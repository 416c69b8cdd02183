package domain

import "time"

// DayStart returns the start of the current day in tz, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	userNow := now.In(tz)
	dayStart := time.Date(userNow.Year(), userNow.Month(), userNow.Day(), 0, 0, 0, 0, tz)
	return dayStart.UTC()
}

// CalendarDate returns the local calendar date of now in tz as midnight UTC.
// Dates produced this way compare and subtract without DST effects.
func CalendarDate(now time.Time, tz *time.Location) time.Time {
	userNow := now.In(tz)
	return time.Date(userNow.Year(), userNow.Month(), userNow.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ValidateTimezone reports whether tz is a loadable IANA zone name.
// The empty string and "Local" are rejected.
func ValidateTimezone(tz string) bool {
	if tz == "" || tz == "Local" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}
