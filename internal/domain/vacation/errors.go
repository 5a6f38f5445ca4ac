package vacation

import "errors"

// Every validation outcome of the workflow is a distinct sentinel so the
// handler layer can map each to its own HTTP response. None of these are
// retried: they mean invalid business input, not transient failure.
var (
	ErrRequestNotFound = errors.New("vacation request not found")

	// Submission validation
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
	ErrPastStartDate       = errors.New("start date must not be in the past")
	ErrInsufficientNotice  = errors.New("start date is within the advance notice window")
	ErrOverlappingRequest  = errors.New("overlaps with an existing active request")
	ErrInsufficientBalance = errors.New("requested days exceed remaining vacation balance")

	// Transition validation
	ErrInvalidStateTransition = errors.New("request status does not allow this transition")
	ErrSelfApproval           = errors.New("employees cannot approve or deny their own requests")
	ErrUnauthorizedAction     = errors.New("actor is not authorized for this employee or location")

	ErrInvalidRequestType = errors.New("invalid request type")
)
