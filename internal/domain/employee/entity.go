package employee

import (
	"time"
)

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

// Employee is a staff account. Care staff work rotating shifts at a primary
// location; the vacation balance fields are mutated only by the vacation
// workflow inside its transaction.
type Employee struct {
	ID           string
	EmployeeCode string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role

	PrimaryLocationID *string
	SupervisorID      *string

	// Vacation balance, in business days for the current allotment year.
	AnnualVacationDays    int
	RemainingVacationDays int

	HireDate time.Time
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func (e Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// IsManagerOf reports whether the employee manages the given location.
func (e Employee) IsManagerOf(locationID string) bool {
	return e.Role == RoleManager && e.PrimaryLocationID != nil && *e.PrimaryLocationID == locationID
}

func (e Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}
