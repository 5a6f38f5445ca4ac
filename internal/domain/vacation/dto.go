package vacation

import (
	"time"

	"github.com/careplan/careplan-backend-go/internal/pkg/validator"
)

type SubmitRequestRequest struct {
	EmployeeID  string `json:"-"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	RequestType string `json:"request_type"`
	Reason      string `json:"reason,omitempty"`
}

func (r *SubmitRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	var types []string
	for _, t := range AllRequestTypes() {
		types = append(types, string(t))
	}
	if !validator.IsInSlice(r.RequestType, types) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_type",
			Message: "request_type must be a valid leave type",
		})
	}
	if len(r.Reason) > 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 2000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DenyRequestRequest struct {
	Reason string `json:"reason"`
}

func (r *DenyRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required when denying a request",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CancelRequestRequest struct {
	Reason string `json:"reason,omitempty"`
}

type RequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	RequestType  string `json:"request_type"`
	BusinessDays int    `json:"business_days"`
	CalendarDays int    `json:"calendar_days"`

	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`

	ApprovedBy *string    `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`

	DeniedBy     *string    `json:"denied_by,omitempty"`
	DeniedAt     *time.Time `json:"denied_at,omitempty"`
	DenialReason *string    `json:"denial_reason,omitempty"`

	CancelledBy        *string    `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`

	SubmittedAt time.Time `json:"submitted_at"`
}

func ToResponse(r Request) RequestResponse {
	return RequestResponse{
		ID:                 r.ID,
		EmployeeID:         r.EmployeeID,
		EmployeeName:       r.EmployeeName,
		StartDate:          r.StartDate.Format("2006-01-02"),
		EndDate:            r.EndDate.Format("2006-01-02"),
		RequestType:        string(r.RequestType),
		BusinessDays:       r.BusinessDays,
		CalendarDays:       r.CalendarDays,
		Status:             string(r.Status),
		Reason:             r.Reason,
		ApprovedBy:         r.ApprovedBy,
		ApprovedAt:         r.ApprovedAt,
		DeniedBy:           r.DeniedBy,
		DeniedAt:           r.DeniedAt,
		DenialReason:       r.DenialReason,
		CancelledBy:        r.CancelledBy,
		CancelledAt:        r.CancelledAt,
		CancellationReason: r.CancellationReason,
		SubmittedAt:        r.SubmittedAt,
	}
}

type ListRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int64             `json:"total"`
}

type BalanceResponse struct {
	EmployeeID            string `json:"employee_id"`
	AnnualVacationDays    int    `json:"annual_vacation_days"`
	RemainingVacationDays int    `json:"remaining_vacation_days"`
	UsedVacationDays      int    `json:"used_vacation_days"`
	PendingVacationDays   int    `json:"pending_vacation_days"`
}

type CalendarEntry struct {
	RequestID    string  `json:"request_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	RequestType  string  `json:"request_type"`
}
