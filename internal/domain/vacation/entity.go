package vacation

import "time"

type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusApproved  RequestStatus = "APPROVED"
	StatusDenied    RequestStatus = "DENIED"
	StatusCancelled RequestStatus = "CANCELLED"
)

type RequestType string

const (
	TypeAnnualLeave      RequestType = "ANNUAL_LEAVE"
	TypeSickLeave        RequestType = "SICK_LEAVE"
	TypeUnpaidLeave      RequestType = "UNPAID_LEAVE"
	TypeParentalLeave    RequestType = "PARENTAL_LEAVE"
	TypeBereavementLeave RequestType = "BEREAVEMENT_LEAVE"
	TypeOther            RequestType = "OTHER"
)

// AllRequestTypes returns every valid request type.
func AllRequestTypes() []RequestType {
	return []RequestType{
		TypeAnnualLeave,
		TypeSickLeave,
		TypeUnpaidLeave,
		TypeParentalLeave,
		TypeBereavementLeave,
		TypeOther,
	}
}

// ConsumesBalance reports whether requests of this type debit the annual
// vacation balance on approval. Only annual leave does; sick, unpaid and
// the other types are tracked but not balance-accounted.
func (t RequestType) ConsumesBalance() bool {
	return t == TypeAnnualLeave
}

// Request is a vacation request. BusinessDays and CalendarDays are derived
// from the date range at submission and never edited directly.
type Request struct {
	ID         string
	EmployeeID string

	StartDate time.Time
	EndDate   time.Time

	RequestType RequestType

	// BusinessDays counts dates in the range that are neither weekend nor
	// holiday for the employee's location. This is the amount debited from
	// the balance for annual leave.
	BusinessDays int
	// CalendarDays is the total inclusive day count, informational only.
	CalendarDays int

	Status RequestStatus
	Reason string

	ApprovedBy *string
	ApprovedAt *time.Time

	DeniedBy     *string
	DeniedAt     *time.Time
	DenialReason *string

	CancelledBy        *string
	CancelledAt        *time.Time
	CancellationReason *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for responses
	EmployeeName *string
}

// State machine: PENDING -> APPROVED | DENIED | CANCELLED,
// APPROVED -> CANCELLED. DENIED and CANCELLED are terminal.

func (r Request) CanApprove() bool {
	return r.Status == StatusPending
}

func (r Request) CanDeny() bool {
	return r.Status == StatusPending
}

func (r Request) CanCancel() bool {
	return r.Status == StatusPending || r.Status == StatusApproved
}

func (r Request) IsTerminal() bool {
	return r.Status == StatusDenied || r.Status == StatusCancelled
}
