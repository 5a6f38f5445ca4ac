package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/careplan/careplan-backend-go/internal/domain/employee"
	"github.com/careplan/careplan-backend-go/internal/domain/vacation"
	"github.com/careplan/careplan-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	txm       database.TxManager
	employees employee.EmployeeRepository
	requests  vacation.RequestRepository
	logger    *slog.Logger
}

func NewService(txm database.TxManager, employees employee.EmployeeRepository, requests vacation.RequestRepository, logger *slog.Logger) *Service {
	return &Service{txm: txm, employees: employees, requests: requests, logger: logger}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("invalid hire date: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	if req.SupervisorID != nil {
		if _, err := s.employees.GetByID(ctx, *req.SupervisorID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, employee.ErrSupervisorNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check supervisor: %w", err)
		}
	}

	created, err := s.employees.Create(ctx, employee.Employee{
		EmployeeCode:          req.EmployeeCode,
		Email:                 strings.ToLower(req.Email),
		PasswordHash:          string(hash),
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Role:                  employee.Role(req.Role),
		PrimaryLocationID:     req.PrimaryLocationID,
		SupervisorID:          req.SupervisorID,
		AnnualVacationDays:    req.AnnualVacationDays,
		RemainingVacationDays: req.AnnualVacationDays,
		HireDate:              hireDate,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				if strings.Contains(pgErr.ConstraintName, "employee_code") {
					return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
				}
				return employee.EmployeeResponse{}, employee.ErrEmailExists
			}
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

func (s *Service) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

func (s *Service) List(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, int64, error) {
	employees, total, err := s.employees.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, total, nil
}

func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if req.SupervisorID != nil {
		if *req.SupervisorID == req.ID {
			return employee.EmployeeResponse{}, employee.ErrSupervisorNotFound
		}
		if _, err := s.employees.GetByID(ctx, *req.SupervisorID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, employee.ErrSupervisorNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check supervisor: %w", err)
		}
	}

	if err := s.employees.Update(ctx, req); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	return s.employees.Delete(ctx, id)
}

// ResetYearlyBalances restores every active employee's remaining balance to
// their annual allowance, minus days already approved in the target year.
// Run at year rollover.
func (s *Service) ResetYearlyBalances(ctx context.Context, year int) error {
	return s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		var page = 1
		for {
			filter := employee.ListFilter{Page: page, Limit: 100}
			employees, total, err := s.employees.List(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to list employees: %w", err)
			}
			if len(employees) == 0 {
				break
			}

			for _, e := range employees {
				if !e.IsActive {
					continue
				}
				approved, err := s.requests.SumBusinessDays(ctx, e.ID, vacation.StatusApproved, year)
				if err != nil {
					return fmt.Errorf("failed to sum approved days for %s: %w", e.ID, err)
				}
				remaining := e.AnnualVacationDays - approved
				if remaining < 0 {
					remaining = 0
				}
				if err := s.employees.SetVacationBalance(ctx, e.ID, remaining); err != nil {
					return fmt.Errorf("failed to reset balance for %s: %w", e.ID, err)
				}
			}

			if int64(page*100) >= total {
				break
			}
			page++
		}

		s.logger.Info("yearly vacation balances reset", slog.Int("year", year))
		return nil
	})
}
