package vacation

import (
	"context"
	"time"
)

// RequestRepository - interface for the vacation_requests table
type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	GetByEmployeeID(ctx context.Context, employeeID string, filter RequestFilter) ([]Request, int64, error)
	List(ctx context.Context, filter RequestFilter) ([]Request, int64, error)

	// HasOverlapping reports whether the employee has a PENDING or APPROVED
	// request sharing at least one date with [start, end].
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)

	// UpdateStatus applies a state transition with its actor metadata.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error

	// ListApprovedInRange returns approved requests intersecting [start, end],
	// optionally limited to one location's employees. Feeds the calendar view.
	ListApprovedInRange(ctx context.Context, start, end time.Time, locationID *string) ([]Request, error)

	// SumBusinessDays totals the business days of the employee's
	// annual-leave requests in the given status starting in the given
	// year. Feeds the balance endpoint and the yearly recalculation.
	SumBusinessDays(ctx context.Context, employeeID string, status RequestStatus, year int) (int, error)
}

type RequestFilter struct {
	EmployeeID  *string
	LocationID  *string
	Status      *string
	RequestType *string
	StartDate   *string
	EndDate     *string
	SortBy      string
	SortOrder   string
	Page        int
	Limit       int
}

type UpdateStatusRequest struct {
	ID     string
	Status RequestStatus

	ApprovedBy *string
	ApprovedAt *time.Time

	DeniedBy     *string
	DeniedAt     *time.Time
	DenialReason *string

	CancelledBy        *string
	CancelledAt        *time.Time
	CancellationReason *string
}
