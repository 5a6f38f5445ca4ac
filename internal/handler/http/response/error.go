package response

import (
	"errors"
	"net/http"

	"github.com/careplan/careplan-backend-go/internal/domain/auth"
	"github.com/careplan/careplan-backend-go/internal/domain/employee"
	"github.com/careplan/careplan-backend-go/internal/domain/holiday"
	"github.com/careplan/careplan-backend-go/internal/domain/location"
	"github.com/careplan/careplan-backend-go/internal/domain/notification"
	"github.com/careplan/careplan-backend-go/internal/domain/vacation"
	"github.com/careplan/careplan-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrSupervisorNotFound):
		BadRequest(w, "Supervisor not found", nil)
	case errors.Is(err, employee.ErrEmployeeDeactivated):
		Forbidden(w, "Employee account is deactivated")

	// Location domain errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, location.ErrLocationNameExists):
		Conflict(w, "Location name already exists")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDuplicateHoliday):
		Conflict(w, "A holiday already exists on that date for this location")
	case errors.Is(err, holiday.ErrInvalidRecurrence):
		BadRequest(w, "Recurring holidays need a valid month and day", nil)

	// Vacation workflow errors
	case errors.Is(err, vacation.ErrRequestNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, vacation.ErrPastStartDate):
		BadRequest(w, "Start date must not be in the past", nil)
	case errors.Is(err, vacation.ErrInsufficientNotice):
		BadRequest(w, "Requests must be submitted at least 14 days in advance", nil)
	case errors.Is(err, vacation.ErrOverlappingRequest):
		Conflict(w, "An overlapping request already exists")
	case errors.Is(err, vacation.ErrInsufficientBalance), errors.Is(err, employee.ErrInsufficientBalance):
		BadRequest(w, "Insufficient vacation balance", nil)
	case errors.Is(err, vacation.ErrInvalidStateTransition):
		Conflict(w, "Request is not in a state that allows this action")
	case errors.Is(err, vacation.ErrSelfApproval):
		Forbidden(w, "You cannot decide your own vacation request")
	case errors.Is(err, vacation.ErrUnauthorizedAction):
		Forbidden(w, "You are not allowed to act on this request")
	case errors.Is(err, vacation.ErrInvalidRequestType):
		BadRequest(w, "Invalid request type", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrUnauthorized):
		Forbidden(w, "You are not allowed to access this notification")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
