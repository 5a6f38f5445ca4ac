package holiday

import "time"

// PublicHoliday is reference data excluded from vacation-day accounting.
// A holiday is either nationwide (LocationID nil) or scoped to one location.
// Recurring holidays store a (month, day) pair and are expanded to whichever
// year is queried; Date then holds the occurrence in the year it was created.
type PublicHoliday struct {
	ID          string
	Date        time.Time
	Name        string
	Description *string

	LocationID   *string
	IsNationwide bool

	IsRecurring    bool
	RecurringMonth *int
	RecurringDay   *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccurrenceIn returns the holiday's date in the given year and whether it
// occurs that year at all. A recurring Feb 29 holiday is skipped in non-leap
// years. Non-recurring holidays only occur in their own year.
func (h PublicHoliday) OccurrenceIn(year int) (time.Time, bool) {
	if !h.IsRecurring {
		if h.Date.Year() != year {
			return time.Time{}, false
		}
		return h.Date, true
	}

	if h.RecurringMonth == nil || h.RecurringDay == nil {
		return time.Time{}, false
	}

	month := time.Month(*h.RecurringMonth)
	day := *h.RecurringDay
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	// time.Date normalizes out-of-range days (Feb 29 -> Mar 1), which is a
	// non-occurrence for our purposes.
	if d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// AppliesTo reports whether the holiday is in scope for a location.
// A nil locationID matches only nationwide holidays.
func (h PublicHoliday) AppliesTo(locationID *string) bool {
	if h.IsNationwide {
		return true
	}
	if locationID == nil || h.LocationID == nil {
		return false
	}
	return *h.LocationID == *locationID
}
