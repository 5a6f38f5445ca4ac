package holiday

import (
	"context"
	"time"
)

// HolidayRepository - interface for the public_holidays table.
// The (date, location) uniqueness invariant is enforced on write.
type HolidayRepository interface {
	Create(ctx context.Context, h PublicHoliday) (PublicHoliday, error)
	GetByID(ctx context.Context, id string) (PublicHoliday, error)

	// GetByYear returns fixed-date holidays dated inside the year plus all
	// recurring holidays, filtered to nationwide or the given location.
	GetByYear(ctx context.Context, year int, locationID *string) ([]PublicHoliday, error)

	// GetByDateRange returns holidays whose occurrence can fall inside
	// [start, end] (fixed dates in range plus every recurring holiday).
	GetByDateRange(ctx context.Context, start, end time.Time, locationID *string) ([]PublicHoliday, error)

	Update(ctx context.Context, req UpdateHolidayRequest) error
	Delete(ctx context.Context, id string) error
}
