package holiday

import "errors"

var (
	ErrHolidayNotFound   = errors.New("holiday not found")
	ErrDuplicateHoliday  = errors.New("holiday already exists for this date and location")
	ErrInvalidRecurrence = errors.New("recurring holiday requires a valid month and day")
)
