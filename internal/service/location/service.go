package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/careplan/careplan-backend-go/internal/domain/employee"
	"github.com/careplan/careplan-backend-go/internal/domain/location"
	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	locations location.LocationRepository
	employees employee.EmployeeRepository
}

func NewService(locations location.LocationRepository, employees employee.EmployeeRepository) *Service {
	return &Service{locations: locations, employees: employees}
}

func (s *Service) Create(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error) {
	if req.ManagerID != nil {
		if _, err := s.employees.GetByID(ctx, *req.ManagerID); err != nil {
			return location.LocationResponse{}, fmt.Errorf("failed to check manager: %w", err)
		}
	}

	created, err := s.locations.Create(ctx, location.Location{
		Name:          req.Name,
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
		ManagerID:     req.ManagerID,
		MinStaffCount: req.MinStaffCount,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return location.LocationResponse{}, location.ErrLocationNameExists
			}
		}
		return location.LocationResponse{}, fmt.Errorf("failed to create location: %w", err)
	}

	return location.ToResponse(created), nil
}

func (s *Service) Get(ctx context.Context, id string) (location.LocationResponse, error) {
	l, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return location.LocationResponse{}, err
	}
	return location.ToResponse(l), nil
}

func (s *Service) List(ctx context.Context) ([]location.LocationResponse, error) {
	locations, err := s.locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	responses := make([]location.LocationResponse, 0, len(locations))
	for _, l := range locations {
		responses = append(responses, location.ToResponse(l))
	}
	return responses, nil
}

func (s *Service) Update(ctx context.Context, req location.UpdateLocationRequest) (location.LocationResponse, error) {
	if req.ManagerID != nil {
		if _, err := s.employees.GetByID(ctx, *req.ManagerID); err != nil {
			return location.LocationResponse{}, fmt.Errorf("failed to check manager: %w", err)
		}
	}

	if err := s.locations.Update(ctx, req); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return location.LocationResponse{}, location.ErrLocationNameExists
		}
		return location.LocationResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.locations.Delete(ctx, id)
}
