package holiday

import (
	"time"

	"github.com/careplan/careplan-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date           string  `json:"date"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	LocationID     *string `json:"location_id,omitempty"`
	IsRecurring    bool    `json:"is_recurring"`
	RecurringMonth *int    `json:"recurring_month,omitempty"`
	RecurringDay   *int    `json:"recurring_day,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}
	if r.IsRecurring {
		if r.RecurringMonth == nil || *r.RecurringMonth < 1 || *r.RecurringMonth > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "recurring_month",
				Message: "recurring_month must be between 1 and 12",
			})
		}
		if r.RecurringDay == nil || *r.RecurringDay < 1 || *r.RecurringDay > 31 {
			errs = append(errs, validator.ValidationError{
				Field:   "recurring_day",
				Message: "recurring_day must be between 1 and 31",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	ID          string  `json:"-"`
	Date        *string `json:"date,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "holiday id is required",
		})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a valid date (YYYY-MM-DD)",
			})
		}
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	LocationID     *string   `json:"location_id,omitempty"`
	IsNationwide   bool      `json:"is_nationwide"`
	IsRecurring    bool      `json:"is_recurring"`
	RecurringMonth *int      `json:"recurring_month,omitempty"`
	RecurringDay   *int      `json:"recurring_day,omitempty"`
}

func ToResponse(h PublicHoliday) HolidayResponse {
	return HolidayResponse{
		ID:             h.ID,
		Date:           h.Date,
		Name:           h.Name,
		Description:    h.Description,
		LocationID:     h.LocationID,
		IsNationwide:   h.IsNationwide,
		IsRecurring:    h.IsRecurring,
		RecurringMonth: h.RecurringMonth,
		RecurringDay:   h.RecurringDay,
	}
}
