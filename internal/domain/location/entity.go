package location

import "time"

// Location is a care facility site. Every location runs 24/7 and must keep
// MinStaffCount staff on shift, which is why vacation never consumes
// weekend or holiday dates.
type Location struct {
	ID            string
	Name          string
	Address       *string
	City          *string
	PostalCode    *string
	ManagerID     *string
	MinStaffCount int
	IsActive      bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
