package employee

import (
	"time"

	"github.com/careplan/careplan-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode       string  `json:"employee_code"`
	Email              string  `json:"email"`
	Password           string  `json:"password"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Role               string  `json:"role"`
	PrimaryLocationID  *string `json:"primary_location_id,omitempty"`
	SupervisorID       *string `json:"supervisor_id,omitempty"`
	AnnualVacationDays int     `json:"annual_vacation_days"`
	HireDate           string  `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match the format CP-0000",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if !validator.IsInSlice(r.Role, []string{string(RoleEmployee), string(RoleManager), string(RoleAdmin)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of EMPLOYEE, MANAGER, ADMIN",
		})
	}
	if r.AnnualVacationDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_vacation_days",
			Message: "annual_vacation_days must not be negative",
		})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                 string  `json:"-"`
	Email              *string `json:"email,omitempty"`
	FirstName          *string `json:"first_name,omitempty"`
	LastName           *string `json:"last_name,omitempty"`
	Role               *string `json:"role,omitempty"`
	PrimaryLocationID  *string `json:"primary_location_id,omitempty"`
	SupervisorID       *string `json:"supervisor_id,omitempty"`
	AnnualVacationDays *int    `json:"annual_vacation_days,omitempty"`
	IsActive           *bool   `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "employee id is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleEmployee), string(RoleManager), string(RoleAdmin)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of EMPLOYEE, MANAGER, ADMIN",
		})
	}
	if r.AnnualVacationDays != nil && *r.AnnualVacationDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_vacation_days",
			Message: "annual_vacation_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                    string     `json:"id"`
	EmployeeCode          string     `json:"employee_code"`
	Email                 string     `json:"email"`
	FullName              string     `json:"full_name"`
	Role                  string     `json:"role"`
	PrimaryLocationID     *string    `json:"primary_location_id,omitempty"`
	SupervisorID          *string    `json:"supervisor_id,omitempty"`
	AnnualVacationDays    int        `json:"annual_vacation_days"`
	RemainingVacationDays int        `json:"remaining_vacation_days"`
	HireDate              time.Time  `json:"hire_date"`
	IsActive              bool       `json:"is_active"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	DeletedAt             *time.Time `json:"deleted_at,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                    e.ID,
		EmployeeCode:          e.EmployeeCode,
		Email:                 e.Email,
		FullName:              e.FullName(),
		Role:                  string(e.Role),
		PrimaryLocationID:     e.PrimaryLocationID,
		SupervisorID:          e.SupervisorID,
		AnnualVacationDays:    e.AnnualVacationDays,
		RemainingVacationDays: e.RemainingVacationDays,
		HireDate:              e.HireDate,
		IsActive:              e.IsActive,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
		DeletedAt:             e.DeletedAt,
	}
}
