package employee

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/careplan/careplan-backend-go/internal/domain/employee"
	"github.com/careplan/careplan-backend-go/internal/domain/vacation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTxManager struct{}

func (f *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
	balances  map[string]int
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	total := int64(len(f.employees))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(f.employees) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(f.employees) {
		end = len(f.employees)
	}
	return f.employees[start:end], total, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeEmployeeRepo) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeEmployeeRepo) AdjustVacationBalance(ctx context.Context, id string, delta int) error {
	return nil
}

func (f *fakeEmployeeRepo) SetVacationBalance(ctx context.Context, id string, remaining int) error {
	f.balances[id] = remaining
	return nil
}

type fakeRequestRepo struct {
	// approvedDays holds annual-leave business days approved per employee.
	approvedDays map[string]int
}

func (f *fakeRequestRepo) Create(ctx context.Context, req vacation.Request) (vacation.Request, error) {
	return req, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (vacation.Request, error) {
	return vacation.Request{}, vacation.ErrRequestNotFound
}

func (f *fakeRequestRepo) GetByEmployeeID(ctx context.Context, employeeID string, filter vacation.RequestFilter) ([]vacation.Request, int64, error) {
	return nil, 0, nil
}

func (f *fakeRequestRepo) List(ctx context.Context, filter vacation.RequestFilter) ([]vacation.Request, int64, error) {
	return nil, 0, nil
}

func (f *fakeRequestRepo) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	return false, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, req vacation.UpdateStatusRequest) error {
	return nil
}

func (f *fakeRequestRepo) ListApprovedInRange(ctx context.Context, start, end time.Time, locationID *string) ([]vacation.Request, error) {
	return nil, nil
}

func (f *fakeRequestRepo) SumBusinessDays(ctx context.Context, employeeID string, status vacation.RequestStatus, year int) (int, error) {
	if status != vacation.StatusApproved {
		return 0, nil
	}
	return f.approvedDays[employeeID], nil
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func testEmployee(id string, annual int, active bool) employee.Employee {
	return employee.Employee{
		ID:                    id,
		EmployeeCode:          "CP-0001",
		Email:                 id + "@careplan.example",
		FirstName:             "Test",
		LastName:              "Employee",
		Role:                  employee.RoleEmployee,
		AnnualVacationDays:    annual,
		RemainingVacationDays: 0,
		IsActive:              active,
	}
}

func TestResetYearlyBalances_SubtractsApprovedDays(t *testing.T) {
	employees := &fakeEmployeeRepo{
		employees: []employee.Employee{
			testEmployee("emp-1", 25, true),
			testEmployee("emp-2", 25, true),
		},
		balances: make(map[string]int),
	}
	requests := &fakeRequestRepo{approvedDays: map[string]int{
		"emp-1": 5,
	}}
	svc := NewService(&fakeTxManager{}, employees, requests, slog.New(slog.NewTextHandler(testWriter{t}, nil)))

	err := svc.ResetYearlyBalances(context.Background(), 2027)

	require.NoError(t, err)
	assert.Equal(t, 20, employees.balances["emp-1"])
	assert.Equal(t, 25, employees.balances["emp-2"])
}

func TestResetYearlyBalances_FlooredAtZero(t *testing.T) {
	employees := &fakeEmployeeRepo{
		employees: []employee.Employee{testEmployee("emp-1", 5, true)},
		balances:  make(map[string]int),
	}
	requests := &fakeRequestRepo{approvedDays: map[string]int{
		"emp-1": 8,
	}}
	svc := NewService(&fakeTxManager{}, employees, requests, slog.New(slog.NewTextHandler(testWriter{t}, nil)))

	err := svc.ResetYearlyBalances(context.Background(), 2027)

	require.NoError(t, err)
	assert.Equal(t, 0, employees.balances["emp-1"])
}

func TestResetYearlyBalances_SkipsInactiveEmployees(t *testing.T) {
	employees := &fakeEmployeeRepo{
		employees: []employee.Employee{
			testEmployee("emp-1", 25, true),
			testEmployee("emp-2", 25, false),
		},
		balances: make(map[string]int),
	}
	requests := &fakeRequestRepo{approvedDays: map[string]int{}}
	svc := NewService(&fakeTxManager{}, employees, requests, slog.New(slog.NewTextHandler(testWriter{t}, nil)))

	err := svc.ResetYearlyBalances(context.Background(), 2027)

	require.NoError(t, err)
	assert.Equal(t, 25, employees.balances["emp-1"])
	_, touched := employees.balances["emp-2"]
	assert.False(t, touched)
}
