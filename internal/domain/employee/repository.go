package employee

import (
	"context"
)

// EmployeeRepository - interface for the employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error

	// GetByIDForUpdate locks the employee row for the duration of the
	// surrounding transaction. The vacation workflow uses it so the
	// overlap and balance checks are atomic per employee.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)

	// AdjustVacationBalance applies delta (negative = debit) to
	// remaining_vacation_days. A debit that would drive the balance
	// negative fails with ErrInsufficientBalance.
	AdjustVacationBalance(ctx context.Context, id string, delta int) error

	// SetVacationBalance overwrites the remaining balance, used by the
	// yearly recalculation.
	SetVacationBalance(ctx context.Context, id string, remaining int) error
}

type ListFilter struct {
	LocationID *string
	Role       *string
	Search     *string
	Page       int
	Limit      int
}
