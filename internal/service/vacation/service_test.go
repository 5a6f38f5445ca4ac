package vacation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/careplan/careplan-backend-go/internal/domain/employee"
	"github.com/careplan/careplan-backend-go/internal/domain/location"
	"github.com/careplan/careplan-backend-go/internal/domain/vacation"
	"github.com/careplan/careplan-backend-go/internal/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixed "today" for every test: Sunday 2026-02-15. With the default
// 14-day notice, the earliest valid start date is Monday 2026-03-02.
var testNow = time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRequestRepo struct {
	requests map[string]vacation.Request
	nextID   int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]vacation.Request)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, req vacation.Request) (vacation.Request, error) {
	f.nextID++
	req.ID = fmt.Sprintf("req-%d", f.nextID)
	req.CreatedAt = testNow
	req.UpdatedAt = testNow
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (vacation.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return vacation.Request{}, vacation.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeRequestRepo) GetByEmployeeID(ctx context.Context, employeeID string, filter vacation.RequestFilter) ([]vacation.Request, int64, error) {
	var out []vacation.Request
	for _, r := range f.requests {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRequestRepo) List(ctx context.Context, filter vacation.RequestFilter) ([]vacation.Request, int64, error) {
	var out []vacation.Request
	for _, r := range f.requests {
		if filter.Status != nil && string(r.Status) != *filter.Status {
			continue
		}
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRequestRepo) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	for _, r := range f.requests {
		if r.EmployeeID != employeeID {
			continue
		}
		if r.Status != vacation.StatusPending && r.Status != vacation.StatusApproved {
			continue
		}
		if !start.After(r.EndDate) && !end.Before(r.StartDate) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, req vacation.UpdateStatusRequest) error {
	r, ok := f.requests[req.ID]
	if !ok {
		return vacation.ErrRequestNotFound
	}
	r.Status = req.Status
	r.ApprovedBy = req.ApprovedBy
	r.ApprovedAt = req.ApprovedAt
	r.DeniedBy = req.DeniedBy
	r.DeniedAt = req.DeniedAt
	r.DenialReason = req.DenialReason
	r.CancelledBy = req.CancelledBy
	r.CancelledAt = req.CancelledAt
	r.CancellationReason = req.CancellationReason
	f.requests[req.ID] = r
	return nil
}

func (f *fakeRequestRepo) ListApprovedInRange(ctx context.Context, start, end time.Time, locationID *string) ([]vacation.Request, error) {
	var out []vacation.Request
	for _, r := range f.requests {
		if r.Status != vacation.StatusApproved {
			continue
		}
		if !start.After(r.EndDate) && !end.Before(r.StartDate) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) SumBusinessDays(ctx context.Context, employeeID string, status vacation.RequestStatus, year int) (int, error) {
	total := 0
	for _, r := range f.requests {
		if r.EmployeeID == employeeID && r.Status == status &&
			r.RequestType == vacation.TypeAnnualLeave && r.StartDate.Year() == year {
			total += r.BusinessDays
		}
	}
	return total, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		f.employees[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
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
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeEmployeeRepo) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeEmployeeRepo) AdjustVacationBalance(ctx context.Context, id string, delta int) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if e.RemainingVacationDays+delta < 0 {
		return employee.ErrInsufficientBalance
	}
	e.RemainingVacationDays += delta
	f.employees[id] = e
	return nil
}

func (f *fakeEmployeeRepo) SetVacationBalance(ctx context.Context, id string, remaining int) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.RemainingVacationDays = remaining
	f.employees[id] = e
	return nil
}

type fakeLocationRepo struct {
	locations map[string]location.Location
}

func newFakeLocationRepo(locs ...location.Location) *fakeLocationRepo {
	f := &fakeLocationRepo{locations: make(map[string]location.Location)}
	for _, l := range locs {
		f.locations[l.ID] = l
	}
	return f
}

func (f *fakeLocationRepo) Create(ctx context.Context, loc location.Location) (location.Location, error) {
	f.locations[loc.ID] = loc
	return loc, nil
}

func (f *fakeLocationRepo) GetByID(ctx context.Context, id string) (location.Location, error) {
	l, ok := f.locations[id]
	if !ok {
		return location.Location{}, location.ErrLocationNotFound
	}
	return l, nil
}

func (f *fakeLocationRepo) List(ctx context.Context) ([]location.Location, error) { return nil, nil }

func (f *fakeLocationRepo) Update(ctx context.Context, req location.UpdateLocationRequest) error {
	return nil
}

func (f *fakeLocationRepo) Delete(ctx context.Context, id string) error { return nil }

// fakeHolidayCalendar serves a fixed set of holiday dates.
type fakeHolidayCalendar struct {
	dates map[string]bool
}

func (f fakeHolidayCalendar) HolidayFunc(ctx context.Context, start, end time.Time, locationID *string) (calendar.HolidayFunc, error) {
	return func(t time.Time) bool {
		return f.dates[t.Format("2006-01-02")]
	}, nil
}

type notified struct {
	recipientID string
	kind        vacation.EventKind
	requestID   string
}

type fakeNotifier struct {
	events []notified
	err    error
}

func (f *fakeNotifier) Notify(ctx context.Context, recipientID string, kind vacation.EventKind, req vacation.Request) error {
	f.events = append(f.events, notified{recipientID, kind, req.ID})
	return f.err
}

type testEnv struct {
	svc       *Service
	requests  *fakeRequestRepo
	employees *fakeEmployeeRepo
	locations *fakeLocationRepo
	notifier  *fakeNotifier
}

func strptr(s string) *string { return &s }

func newTestEnv(t *testing.T, holidayDates ...string) *testEnv {
	t.Helper()

	managerID := "mgr-1"
	emps := []employee.Employee{
		{
			ID:                    "emp-1",
			EmployeeCode:          "CP-0001",
			Email:                 "anna@careplan.test",
			FirstName:             "Anna",
			LastName:              "Berg",
			Role:                  employee.RoleEmployee,
			PrimaryLocationID:     strptr("loc-1"),
			SupervisorID:          strptr("mgr-1"),
			AnnualVacationDays:    25,
			RemainingVacationDays: 10,
			IsActive:              true,
		},
		{
			ID:                    "mgr-1",
			EmployeeCode:          "CP-0002",
			Email:                 "marta@careplan.test",
			FirstName:             "Marta",
			LastName:              "Lind",
			Role:                  employee.RoleManager,
			PrimaryLocationID:     strptr("loc-1"),
			AnnualVacationDays:    25,
			RemainingVacationDays: 25,
			IsActive:              true,
		},
		{
			ID:                    "mgr-2",
			EmployeeCode:          "CP-0003",
			Email:                 "olof@careplan.test",
			FirstName:             "Olof",
			LastName:              "Strand",
			Role:                  employee.RoleManager,
			PrimaryLocationID:     strptr("loc-2"),
			AnnualVacationDays:    25,
			RemainingVacationDays: 25,
			IsActive:              true,
		},
		{
			ID:                 "admin-1",
			EmployeeCode:       "CP-0004",
			Email:              "iris@careplan.test",
			FirstName:          "Iris",
			LastName:           "Falk",
			Role:               employee.RoleAdmin,
			AnnualVacationDays: 25,
			IsActive:           true,
		},
	}

	dates := make(map[string]bool, len(holidayDates))
	for _, d := range holidayDates {
		dates[d] = true
	}

	env := &testEnv{
		requests:  newFakeRequestRepo(),
		employees: newFakeEmployeeRepo(emps...),
		locations: newFakeLocationRepo(
			location.Location{ID: "loc-1", Name: "North Home", ManagerID: &managerID, IsActive: true},
			location.Location{ID: "loc-2", Name: "South Home", IsActive: true},
		),
		notifier: &fakeNotifier{},
	}
	env.svc = NewService(
		fakeTxManager{},
		env.requests,
		env.employees,
		env.locations,
		fakeHolidayCalendar{dates: dates},
		env.notifier,
		DefaultPolicy(),
		slog.New(slog.NewTextHandler(testWriter{t}, nil)),
		WithClock(func() time.Time { return testNow }),
	)
	return env
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func submitReq(start, end string) vacation.SubmitRequestRequest {
	return vacation.SubmitRequestRequest{
		EmployeeID:  "emp-1",
		StartDate:   start,
		EndDate:     end,
		RequestType: string(vacation.TypeAnnualLeave),
		Reason:      "family time",
	}
}

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy()

	assert.Equal(t, 14, policy.MinAdvanceNoticeDays)
	assert.True(t, policy.Weekend[time.Saturday])
	assert.True(t, policy.Weekend[time.Sunday])
	assert.False(t, policy.Weekend[time.Monday])
}

func TestSubmit_Success(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Mon 2026-03-02 through Sun 2026-03-08: five weekdays, one weekend.
	req, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-08"))

	require.NoError(t, err)
	assert.Equal(t, vacation.StatusPending, req.Status)
	assert.Equal(t, 5, req.BusinessDays)
	assert.Equal(t, 7, req.CalendarDays)
	assert.NotEmpty(t, req.ID)

	// Submission alone must not touch the balance.
	emp, _ := env.employees.GetByID(ctx, "emp-1")
	assert.Equal(t, 10, emp.RemainingVacationDays)

	// The supervisor hears about it.
	require.Len(t, env.notifier.events, 1)
	assert.Equal(t, "mgr-1", env.notifier.events[0].recipientID)
	assert.Equal(t, vacation.EventSubmitted, env.notifier.events[0].kind)
}

func TestSubmit_WeekdayOnlyRange(t *testing.T) {
	env := newTestEnv(t)

	// Mon 2026-03-02 through Fri 2026-03-06: no weekend inside the range.
	req, err := env.svc.Submit(context.Background(), submitReq("2026-03-02", "2026-03-06"))

	require.NoError(t, err)
	assert.Equal(t, vacation.StatusPending, req.Status)
	assert.Equal(t, 5, req.BusinessDays)
	assert.Equal(t, 5, req.CalendarDays)
}

func TestSubmit_HolidayExcludedFromBusinessDays(t *testing.T) {
	env := newTestEnv(t, "2026-03-04")
	ctx := context.Background()

	req, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))

	require.NoError(t, err)
	assert.Equal(t, 4, req.BusinessDays)
	assert.Equal(t, 5, req.CalendarDays)
}

func TestSubmit_InvalidDateRange(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Submit(context.Background(), submitReq("2026-03-06", "2026-03-02"))
	assert.ErrorIs(t, err, vacation.ErrInvalidDateRange)
}

func TestSubmit_PastStartDate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Submit(context.Background(), submitReq("2026-02-10", "2026-03-06"))
	assert.ErrorIs(t, err, vacation.ErrPastStartDate)
}

func TestSubmit_InsufficientNotice(t *testing.T) {
	env := newTestEnv(t)

	// 2026-02-20 is only five days out; the minimum is fourteen.
	_, err := env.svc.Submit(context.Background(), submitReq("2026-02-20", "2026-02-27"))
	assert.ErrorIs(t, err, vacation.ErrInsufficientNotice)

	// Exactly fourteen days out is allowed.
	_, err = env.svc.Submit(context.Background(), submitReq("2026-03-01", "2026-03-02"))
	assert.NoError(t, err)
}

func TestSubmit_OverlapRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)

	// Shares 2026-03-06 with the pending request above.
	_, err = env.svc.Submit(ctx, submitReq("2026-03-06", "2026-03-10"))
	assert.ErrorIs(t, err, vacation.ErrOverlappingRequest)

	// An adjacent, non-overlapping range is fine.
	_, err = env.svc.Submit(ctx, submitReq("2026-03-09", "2026-03-10"))
	assert.NoError(t, err)
}

func TestSubmit_DeniedRequestDoesNotBlockResubmission(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)
	_, err = env.svc.Deny(ctx, first.ID, "mgr-1", vacation.DenyRequestRequest{Reason: "short staffed"})
	require.NoError(t, err)

	_, err = env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	assert.NoError(t, err)
}

func TestSubmit_InsufficientBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.employees.SetVacationBalance(ctx, "emp-1", 3))

	// Five business days requested against a balance of three.
	_, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	assert.ErrorIs(t, err, vacation.ErrInsufficientBalance)
}

func TestSubmit_SickLeaveIgnoresBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.employees.SetVacationBalance(ctx, "emp-1", 0))

	req := submitReq("2026-03-02", "2026-03-06")
	req.RequestType = string(vacation.TypeSickLeave)
	created, err := env.svc.Submit(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, 5, created.BusinessDays)
}

func TestApprove_DebitsBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)

	approved, err := env.svc.Approve(ctx, req.ID, "mgr-1")
	require.NoError(t, err)
	assert.Equal(t, vacation.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "mgr-1", *approved.ApprovedBy)

	emp, _ := env.employees.GetByID(ctx, "emp-1")
	assert.Equal(t, 5, emp.RemainingVacationDays)

	// The employee is told about the decision.
	last := env.notifier.events[len(env.notifier.events)-1]
	assert.Equal(t, "emp-1", last.recipientID)
	assert.Equal(t, vacation.EventApproved, last.kind)
}

func TestApprove_SickLeaveLeavesBalanceAlone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := submitReq("2026-03-02", "2026-03-06")
	req.RequestType = string(vacation.TypeSickLeave)
	created, err := env.svc.Submit(ctx, req)
	require.NoError(t, err)

	_, err = env.svc.Approve(ctx, created.ID, "mgr-1")
	require.NoError(t, err)

	emp, _ := env.employees.GetByID(ctx, "emp-1")
	assert.Equal(t, 10, emp.RemainingVacationDays)
}

func TestApprove_SelfApprovalForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := submitReq("2026-03-02", "2026-03-06")
	req.EmployeeID = "mgr-1"
	created, err := env.svc.Submit(ctx, req)
	require.NoError(t, err)

	_, err = env.svc.Approve(ctx, created.ID, "mgr-1")
	assert.ErrorIs(t, err, vacation.ErrSelfApproval)
}

func TestApprove_ManagerFromOtherLocationForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)

	_, err = env.svc.Approve(ctx, req.ID, "mgr-2")
	assert.ErrorIs(t, err, vacation.ErrUnauthorizedAction)

	// Admins are not location scoped.
	_, err = env.svc.Approve(ctx, req.ID, "admin-1")
	assert.NoError(t, err)
}

func TestApprove_OnlyFromPending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)
	_, err = env.svc.Deny(ctx, req.ID, "mgr-1", vacation.DenyRequestRequest{Reason: "coverage"})
	require.NoError(t, err)

	_, err = env.svc.Approve(ctx, req.ID, "mgr-1")
	assert.ErrorIs(t, err, vacation.ErrInvalidStateTransition)
}

func TestApprove_BalanceRaceFailsClosed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)

	// Balance shrank between submission and the approval decision.
	require.NoError(t, env.employees.SetVacationBalance(ctx, "emp-1", 2))

	_, err = env.svc.Approve(ctx, req.ID, "mgr-1")
	assert.ErrorIs(t, err, vacation.ErrInsufficientBalance)
}

func TestDeny_LeavesBalanceUntouched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)

	denied, err := env.svc.Deny(ctx, req.ID, "mgr-1", vacation.DenyRequestRequest{Reason: "minimum staffing"})
	require.NoError(t, err)
	assert.Equal(t, vacation.StatusDenied, denied.Status)
	require.NotNil(t, denied.DenialReason)
	assert.Equal(t, "minimum staffing", *denied.DenialReason)

	emp, _ := env.employees.GetByID(ctx, "emp-1")
	assert.Equal(t, 10, emp.RemainingVacationDays)
}

func TestCancel_PendingByOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)

	cancelled, err := env.svc.Cancel(ctx, req.ID, "emp-1", vacation.CancelRequestRequest{})
	require.NoError(t, err)
	assert.Equal(t, vacation.StatusCancelled, cancelled.Status)

	emp, _ := env.employees.GetByID(ctx, "emp-1")
	assert.Equal(t, 10, emp.RemainingVacationDays)
}

func TestCancel_ApprovedRestoresBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)
	_, err = env.svc.Approve(ctx, req.ID, "mgr-1")
	require.NoError(t, err)

	emp, _ := env.employees.GetByID(ctx, "emp-1")
	require.Equal(t, 5, emp.RemainingVacationDays)

	_, err = env.svc.Cancel(ctx, req.ID, "emp-1", vacation.CancelRequestRequest{Reason: "plans changed"})
	require.NoError(t, err)

	emp, _ = env.employees.GetByID(ctx, "emp-1")
	assert.Equal(t, 10, emp.RemainingVacationDays)
}

func TestCancel_TerminalStatesRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)
	_, err = env.svc.Cancel(ctx, req.ID, "emp-1", vacation.CancelRequestRequest{})
	require.NoError(t, err)

	_, err = env.svc.Cancel(ctx, req.ID, "emp-1", vacation.CancelRequestRequest{})
	assert.ErrorIs(t, err, vacation.ErrInvalidStateTransition)
	_, err = env.svc.Approve(ctx, req.ID, "mgr-1")
	assert.ErrorIs(t, err, vacation.ErrInvalidStateTransition)
	_, err = env.svc.Deny(ctx, req.ID, "mgr-1", vacation.DenyRequestRequest{Reason: "x"})
	assert.ErrorIs(t, err, vacation.ErrInvalidStateTransition)
}

func TestCancel_StrangerForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)

	_, err = env.svc.Cancel(ctx, req.ID, "mgr-2", vacation.CancelRequestRequest{})
	assert.ErrorIs(t, err, vacation.ErrUnauthorizedAction)
}

func TestNotifierFailureDoesNotFailTransition(t *testing.T) {
	env := newTestEnv(t)
	env.notifier.err = errors.New("smtp down")
	ctx := context.Background()

	req, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)

	approved, err := env.svc.Approve(ctx, req.ID, "mgr-1")
	require.NoError(t, err)
	assert.Equal(t, vacation.StatusApproved, approved.Status)
}

func TestSubmit_FallsBackToLocationManager(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Drop the direct supervisor so the location manager is used.
	emp, _ := env.employees.GetByID(ctx, "emp-1")
	emp.SupervisorID = nil
	env.employees.employees["emp-1"] = emp

	_, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)

	require.Len(t, env.notifier.events, 1)
	assert.Equal(t, "mgr-1", env.notifier.events[0].recipientID)
}

func TestBalance_ReportsPendingAndUsed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)
	_, err = env.svc.Approve(ctx, first.ID, "mgr-1")
	require.NoError(t, err)

	_, err = env.svc.Submit(ctx, submitReq("2026-04-06", "2026-04-07"))
	require.NoError(t, err)

	balance, err := env.svc.Balance(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 25, balance.AnnualVacationDays)
	assert.Equal(t, 5, balance.RemainingVacationDays)
	assert.Equal(t, 20, balance.UsedVacationDays)
	assert.Equal(t, 2, balance.PendingVacationDays)
}

func TestPendingApprovals_ScopedAndExcludesOwn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)

	own := submitReq("2026-03-09", "2026-03-10")
	own.EmployeeID = "mgr-1"
	_, err = env.svc.Submit(ctx, own)
	require.NoError(t, err)

	pending, err := env.svc.PendingApprovals(ctx, "mgr-1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "emp-1", pending[0].EmployeeID)

	_, err = env.svc.PendingApprovals(ctx, "emp-1")
	assert.ErrorIs(t, err, vacation.ErrUnauthorizedAction)
}

func TestGetRequest_Visibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.svc.Submit(ctx, submitReq("2026-03-02", "2026-03-06"))
	require.NoError(t, err)

	_, err = env.svc.GetRequest(ctx, req.ID, "emp-1")
	assert.NoError(t, err)
	_, err = env.svc.GetRequest(ctx, req.ID, "mgr-1")
	assert.NoError(t, err)
	_, err = env.svc.GetRequest(ctx, req.ID, "mgr-2")
	assert.ErrorIs(t, err, vacation.ErrUnauthorizedAction)
}
