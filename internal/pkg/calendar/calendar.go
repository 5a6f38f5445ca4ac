// Package calendar provides pure date arithmetic for vacation accounting.
//
// Care staff work rotating 24/7 shifts, so weekends and public holidays are
// regular working days covered by the shift plan. A vacation day can only be
// spent on a date that is neither, which is why business-day counts exclude
// both.
package calendar

import "time"

// HolidayFunc reports whether a date is a public holiday. Callers supply it
// from the holiday registry, scoped to the relevant location.
type HolidayFunc func(time.Time) bool

// NoHolidays is a HolidayFunc for ranges without any registered holidays.
func NoHolidays(time.Time) bool { return false }

// Weekend is the set of non-working weekdays for business-day counting.
type Weekend map[time.Weekday]bool

// DefaultWeekend is the Saturday/Sunday convention.
func DefaultWeekend() Weekend {
	return Weekend{time.Saturday: true, time.Sunday: true}
}

// IsWeekend reports whether d falls on one of the configured weekend days.
func IsWeekend(d time.Time, weekend Weekend) bool {
	return weekend[d.Weekday()]
}

// CountsAsBusinessDay reports whether a vacation day would be consumed on d.
func CountsAsBusinessDay(d time.Time, weekend Weekend, isHoliday HolidayFunc) bool {
	if IsWeekend(d, weekend) {
		return false
	}
	if isHoliday != nil && isHoliday(d) {
		return false
	}
	return true
}

// BusinessDayCount counts the dates in [start, end] that are neither weekend
// nor holiday. Iterates actual calendar dates so ranges spanning year
// boundaries and leap days are exact. Returns 0 if start is after end.
func BusinessDayCount(start, end time.Time, weekend Weekend, isHoliday HolidayFunc) int {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if start.After(end) {
		return 0
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if CountsAsBusinessDay(d, weekend, isHoliday) {
			count++
		}
	}
	return count
}

// CalendarDayCount returns the inclusive day count of [start, end],
// or 0 if start is after end.
func CalendarDayCount(start, end time.Time) int {
	// Normalize to UTC midnights so DST transitions cannot skew the division.
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if s.After(e) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// truncateToDate drops the time-of-day component.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
