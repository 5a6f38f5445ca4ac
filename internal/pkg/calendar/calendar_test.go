package calendar_test

import (
	"testing"
	"time"

	"github.com/careplan/careplan-backend-go/internal/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDayCount_WeekdaysOnly(t *testing.T) {
	weekend := calendar.DefaultWeekend()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"monday to friday", date(2026, time.March, 2), date(2026, time.March, 6), 5},
		{"monday to sunday spans weekend", date(2026, time.March, 2), date(2026, time.March, 8), 5},
		{"saturday and sunday only", date(2026, time.March, 7), date(2026, time.March, 8), 0},
		{"single weekday", date(2026, time.March, 4), date(2026, time.March, 4), 1},
		{"single saturday", date(2026, time.March, 7), date(2026, time.March, 7), 0},
		{"inverted range", date(2026, time.March, 6), date(2026, time.March, 2), 0},
		{"two full weeks", date(2026, time.March, 2), date(2026, time.March, 15), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.BusinessDayCount(tt.start, tt.end, weekend, calendar.NoHolidays)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBusinessDayCount_ExcludesHolidays(t *testing.T) {
	weekend := calendar.DefaultWeekend()
	holiday := date(2026, time.March, 4) // Wednesday
	isHoliday := func(d time.Time) bool {
		return d.Year() == holiday.Year() && d.Month() == holiday.Month() && d.Day() == holiday.Day()
	}

	got := calendar.BusinessDayCount(date(2026, time.March, 2), date(2026, time.March, 6), weekend, isHoliday)
	assert.Equal(t, 4, got, "midweek holiday should be excluded")

	// A holiday on a weekend must not double-count the exclusion.
	saturdayHoliday := func(d time.Time) bool { return d.Weekday() == time.Saturday }
	got = calendar.BusinessDayCount(date(2026, time.March, 2), date(2026, time.March, 8), weekend, saturdayHoliday)
	assert.Equal(t, 5, got)
}

func TestBusinessDayCount_YearBoundary(t *testing.T) {
	weekend := calendar.DefaultWeekend()

	// Dec 28 2026 (Mon) .. Jan 8 2027 (Fri): two full working weeks,
	// Jan 2/3 2027 are Sat/Sun.
	got := calendar.BusinessDayCount(date(2026, time.December, 28), date(2027, time.January, 8), weekend, calendar.NoHolidays)
	assert.Equal(t, 10, got)
}

func TestBusinessDayCount_LeapYear(t *testing.T) {
	weekend := calendar.DefaultWeekend()

	// Feb 2028 is a leap February; Feb 28 2028 is a Monday, Feb 29 a Tuesday.
	got := calendar.BusinessDayCount(date(2028, time.February, 28), date(2028, time.March, 3), weekend, calendar.NoHolidays)
	assert.Equal(t, 5, got)
}

// Oracle: for holiday-free ranges the count must equal a brute-force weekday
// tally over the same dates.
func TestBusinessDayCount_MatchesWeekdayOracle(t *testing.T) {
	weekend := calendar.DefaultWeekend()
	start := date(2025, time.November, 1)

	for offset := 0; offset < 60; offset++ {
		for length := 0; length < 40; length++ {
			s := start.AddDate(0, 0, offset)
			e := s.AddDate(0, 0, length)

			expected := 0
			for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
				if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
					expected++
				}
			}

			got := calendar.BusinessDayCount(s, e, weekend, calendar.NoHolidays)
			require.Equal(t, expected, got, "range %s..%s", s.Format("2006-01-02"), e.Format("2006-01-02"))
		}
	}
}

func TestBusinessDayCount_CustomWeekend(t *testing.T) {
	weekend := calendar.Weekend{time.Friday: true, time.Saturday: true}

	// Sun 2026-03-01 .. Sat 2026-03-07 with Fri/Sat weekend: 5 business days.
	got := calendar.BusinessDayCount(date(2026, time.March, 1), date(2026, time.March, 7), weekend, calendar.NoHolidays)
	assert.Equal(t, 5, got)
}

func TestCalendarDayCount(t *testing.T) {
	assert.Equal(t, 5, calendar.CalendarDayCount(date(2026, time.March, 2), date(2026, time.March, 6)))
	assert.Equal(t, 7, calendar.CalendarDayCount(date(2026, time.March, 2), date(2026, time.March, 8)))
	assert.Equal(t, 1, calendar.CalendarDayCount(date(2026, time.March, 2), date(2026, time.March, 2)))
	assert.Equal(t, 0, calendar.CalendarDayCount(date(2026, time.March, 6), date(2026, time.March, 2)))

	// Year boundary and leap day.
	assert.Equal(t, 12, calendar.CalendarDayCount(date(2026, time.December, 28), date(2027, time.January, 8)))
	assert.Equal(t, 30, calendar.CalendarDayCount(date(2028, time.February, 1), date(2028, time.March, 1)))
}

func TestIsWeekend(t *testing.T) {
	weekend := calendar.DefaultWeekend()
	assert.True(t, calendar.IsWeekend(date(2026, time.March, 7), weekend))  // Saturday
	assert.True(t, calendar.IsWeekend(date(2026, time.March, 8), weekend))  // Sunday
	assert.False(t, calendar.IsWeekend(date(2026, time.March, 9), weekend)) // Monday
}

func TestCountsAsBusinessDay_NilHolidayFunc(t *testing.T) {
	weekend := calendar.DefaultWeekend()
	assert.True(t, calendar.CountsAsBusinessDay(date(2026, time.March, 9), weekend, nil))
}
