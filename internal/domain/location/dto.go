package location

import (
	"time"

	"github.com/careplan/careplan-backend-go/internal/pkg/validator"
)

type CreateLocationRequest struct {
	Name          string  `json:"name"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	ManagerID     *string `json:"manager_id,omitempty"`
	MinStaffCount int     `json:"min_staff_count"`
}

func (r *CreateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if r.MinStaffCount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_staff_count",
			Message: "min_staff_count must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLocationRequest struct {
	ID            string  `json:"-"`
	Name          *string `json:"name,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	ManagerID     *string `json:"manager_id,omitempty"`
	MinStaffCount *int    `json:"min_staff_count,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

func (r *UpdateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "location id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.MinStaffCount != nil && *r.MinStaffCount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_staff_count",
			Message: "min_staff_count must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LocationResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       *string   `json:"address,omitempty"`
	City          *string   `json:"city,omitempty"`
	PostalCode    *string   `json:"postal_code,omitempty"`
	ManagerID     *string   `json:"manager_id,omitempty"`
	MinStaffCount int       `json:"min_staff_count"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToResponse(l Location) LocationResponse {
	return LocationResponse{
		ID:            l.ID,
		Name:          l.Name,
		Address:       l.Address,
		City:          l.City,
		PostalCode:    l.PostalCode,
		ManagerID:     l.ManagerID,
		MinStaffCount: l.MinStaffCount,
		IsActive:      l.IsActive,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}
