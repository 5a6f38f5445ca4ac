package vacation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/careplan/careplan-backend-go/internal/domain/employee"
	"github.com/careplan/careplan-backend-go/internal/domain/location"
	"github.com/careplan/careplan-backend-go/internal/domain/vacation"
	"github.com/careplan/careplan-backend-go/internal/pkg/calendar"
	"github.com/careplan/careplan-backend-go/internal/pkg/database"
)

// Policy holds the tunable request rules. Loaded from config at startup.
type Policy struct {
	MinAdvanceNoticeDays int
	Weekend              calendar.Weekend
}

func DefaultPolicy() Policy {
	return Policy{
		MinAdvanceNoticeDays: 14,
		Weekend:              calendar.DefaultWeekend(),
	}
}

// HolidayCalendar supplies holiday lookups scoped to a location so the
// workflow can count business days without knowing how holidays are stored.
type HolidayCalendar interface {
	HolidayFunc(ctx context.Context, start, end time.Time, locationID *string) (calendar.HolidayFunc, error)
}

type Service struct {
	txm       database.TxManager
	requests  vacation.RequestRepository
	employees employee.EmployeeRepository
	locations location.LocationRepository
	holidays  HolidayCalendar
	notifier  vacation.Notifier
	policy    Policy
	logger    *slog.Logger
	now       func() time.Time
}

type Option func(*Service)

// WithClock overrides the service's notion of "today". Tests pin it so
// advance-notice checks stay deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(
	txm database.TxManager,
	requests vacation.RequestRepository,
	employees employee.EmployeeRepository,
	locations location.LocationRepository,
	holidays HolidayCalendar,
	notifier vacation.Notifier,
	policy Policy,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		txm:       txm,
		requests:  requests,
		employees: employees,
		locations: locations,
		holidays:  holidays,
		notifier:  notifier,
		policy:    policy,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates and records a new vacation request in PENDING state.
// Validation order is fixed: date range, past start, advance notice,
// overlap, then balance. The first failure wins.
func (s *Service) Submit(ctx context.Context, req vacation.SubmitRequestRequest) (vacation.Request, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return vacation.Request{}, err
	}

	reqType := vacation.RequestType(req.RequestType)

	var created vacation.Request
	var emp employee.Employee
	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		// Row lock serializes concurrent submissions for the same
		// employee, so the overlap and balance checks stay consistent.
		emp, err = s.employees.GetByIDForUpdate(ctx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}
		if !emp.IsActive {
			return employee.ErrEmployeeDeactivated
		}

		today := dateOnly(s.now())
		if start.Before(today) {
			return vacation.ErrPastStartDate
		}
		if start.Before(today.AddDate(0, 0, s.policy.MinAdvanceNoticeDays)) {
			return vacation.ErrInsufficientNotice
		}

		overlapping, err := s.requests.HasOverlapping(ctx, emp.ID, start, end)
		if err != nil {
			return fmt.Errorf("failed to check overlapping requests: %w", err)
		}
		if overlapping {
			return vacation.ErrOverlappingRequest
		}

		isHoliday, err := s.holidays.HolidayFunc(ctx, start, end, emp.PrimaryLocationID)
		if err != nil {
			return fmt.Errorf("failed to load holidays: %w", err)
		}

		businessDays := calendar.BusinessDayCount(start, end, s.policy.Weekend, isHoliday)
		if reqType.ConsumesBalance() && businessDays > emp.RemainingVacationDays {
			return vacation.ErrInsufficientBalance
		}

		created, err = s.requests.Create(ctx, vacation.Request{
			EmployeeID:   emp.ID,
			StartDate:    start,
			EndDate:      end,
			RequestType:  reqType,
			Status:       vacation.StatusPending,
			Reason:       req.Reason,
			BusinessDays: businessDays,
			CalendarDays: calendar.CalendarDayCount(start, end),
			SubmittedAt:  s.now(),
		})
		if err != nil {
			return fmt.Errorf("failed to create vacation request: %w", err)
		}
		return nil
	})
	if err != nil {
		return vacation.Request{}, err
	}

	// Notifications ride outside the transaction so a delivery failure
	// never rolls back a committed request.
	if recipient := s.managerFor(ctx, emp); recipient != "" {
		s.notify(ctx, recipient, vacation.EventSubmitted, created)
	}
	return created, nil
}

// Approve moves a PENDING request to APPROVED and debits the employee's
// balance when the request type consumes it.
func (s *Service) Approve(ctx context.Context, requestID, approverID string) (vacation.Request, error) {
	var updated vacation.Request
	err := s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		req, err := s.requests.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("failed to get vacation request: %w", err)
		}
		if !req.CanApprove() {
			return vacation.ErrInvalidStateTransition
		}
		if approverID == req.EmployeeID {
			return vacation.ErrSelfApproval
		}

		approver, err := s.employees.GetByID(ctx, approverID)
		if err != nil {
			return fmt.Errorf("failed to get approver: %w", err)
		}
		emp, err := s.employees.GetByIDForUpdate(ctx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}
		if !s.canDecide(approver, emp) {
			return vacation.ErrUnauthorizedAction
		}

		if req.RequestType.ConsumesBalance() {
			if err := s.employees.AdjustVacationBalance(ctx, emp.ID, -req.BusinessDays); err != nil {
				if errors.Is(err, employee.ErrInsufficientBalance) {
					return vacation.ErrInsufficientBalance
				}
				return fmt.Errorf("failed to debit vacation balance: %w", err)
			}
		}

		now := s.now()
		if err := s.requests.UpdateStatus(ctx, vacation.UpdateStatusRequest{
			ID:         req.ID,
			Status:     vacation.StatusApproved,
			ApprovedBy: &approver.ID,
			ApprovedAt: &now,
		}); err != nil {
			return fmt.Errorf("failed to update request status: %w", err)
		}

		req.Status = vacation.StatusApproved
		req.ApprovedBy = &approver.ID
		req.ApprovedAt = &now
		updated = req
		return nil
	})
	if err != nil {
		return vacation.Request{}, err
	}

	s.notify(ctx, updated.EmployeeID, vacation.EventApproved, updated)
	return updated, nil
}

// Deny moves a PENDING request to DENIED. The balance is untouched since
// nothing was debited at submission.
func (s *Service) Deny(ctx context.Context, requestID, denierID string, req vacation.DenyRequestRequest) (vacation.Request, error) {
	var updated vacation.Request
	err := s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		r, err := s.requests.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("failed to get vacation request: %w", err)
		}
		if !r.CanDeny() {
			return vacation.ErrInvalidStateTransition
		}
		if denierID == r.EmployeeID {
			return vacation.ErrSelfApproval
		}

		denier, err := s.employees.GetByID(ctx, denierID)
		if err != nil {
			return fmt.Errorf("failed to get denier: %w", err)
		}
		emp, err := s.employees.GetByID(ctx, r.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}
		if !s.canDecide(denier, emp) {
			return vacation.ErrUnauthorizedAction
		}

		now := s.now()
		if err := s.requests.UpdateStatus(ctx, vacation.UpdateStatusRequest{
			ID:           r.ID,
			Status:       vacation.StatusDenied,
			DeniedBy:     &denier.ID,
			DeniedAt:     &now,
			DenialReason: &req.Reason,
		}); err != nil {
			return fmt.Errorf("failed to update request status: %w", err)
		}

		r.Status = vacation.StatusDenied
		r.DeniedBy = &denier.ID
		r.DeniedAt = &now
		r.DenialReason = &req.Reason
		updated = r
		return nil
	})
	if err != nil {
		return vacation.Request{}, err
	}

	s.notify(ctx, updated.EmployeeID, vacation.EventDenied, updated)
	return updated, nil
}

// Cancel moves a PENDING or APPROVED request to CANCELLED. Cancelling an
// approved request credits the debited days back.
func (s *Service) Cancel(ctx context.Context, requestID, actorID string, req vacation.CancelRequestRequest) (vacation.Request, error) {
	var updated vacation.Request
	var emp employee.Employee
	err := s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		r, err := s.requests.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("failed to get vacation request: %w", err)
		}
		if !r.CanCancel() {
			return vacation.ErrInvalidStateTransition
		}

		actor, err := s.employees.GetByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("failed to get actor: %w", err)
		}
		emp, err = s.employees.GetByIDForUpdate(ctx, r.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}
		if actor.ID != r.EmployeeID && !s.canDecide(actor, emp) {
			return vacation.ErrUnauthorizedAction
		}

		if r.Status == vacation.StatusApproved && r.RequestType.ConsumesBalance() {
			if err := s.employees.AdjustVacationBalance(ctx, emp.ID, r.BusinessDays); err != nil {
				return fmt.Errorf("failed to credit vacation balance: %w", err)
			}
		}

		now := s.now()
		update := vacation.UpdateStatusRequest{
			ID:          r.ID,
			Status:      vacation.StatusCancelled,
			CancelledBy: &actor.ID,
			CancelledAt: &now,
		}
		if req.Reason != "" {
			update.CancellationReason = &req.Reason
		}
		if err := s.requests.UpdateStatus(ctx, update); err != nil {
			return fmt.Errorf("failed to update request status: %w", err)
		}

		r.Status = vacation.StatusCancelled
		r.CancelledBy = &actor.ID
		r.CancelledAt = &now
		r.CancellationReason = update.CancellationReason
		updated = r
		return nil
	})
	if err != nil {
		return vacation.Request{}, err
	}

	s.notify(ctx, updated.EmployeeID, vacation.EventCancelled, updated)
	if recipient := s.managerFor(ctx, emp); recipient != "" && recipient != updated.EmployeeID {
		s.notify(ctx, recipient, vacation.EventCancelled, updated)
	}
	return updated, nil
}

// GetRequest returns a single request. Employees may only read their own.
func (s *Service) GetRequest(ctx context.Context, requestID, viewerID string) (vacation.Request, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return vacation.Request{}, fmt.Errorf("failed to get vacation request: %w", err)
	}
	if req.EmployeeID == viewerID {
		return req, nil
	}

	viewer, err := s.employees.GetByID(ctx, viewerID)
	if err != nil {
		return vacation.Request{}, fmt.Errorf("failed to get viewer: %w", err)
	}
	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return vacation.Request{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !s.canDecide(viewer, emp) {
		return vacation.Request{}, vacation.ErrUnauthorizedAction
	}
	return req, nil
}

// ListRequests returns requests visible to the viewer. Managers see their
// location, admins see everything.
func (s *Service) ListRequests(ctx context.Context, viewerID string, filter vacation.RequestFilter) ([]vacation.Request, int64, error) {
	viewer, err := s.employees.GetByID(ctx, viewerID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get viewer: %w", err)
	}
	switch viewer.Role {
	case employee.RoleAdmin:
		// no scoping
	case employee.RoleManager:
		filter.LocationID = viewer.PrimaryLocationID
	default:
		filter.EmployeeID = &viewer.ID
	}
	return s.requests.List(ctx, filter)
}

// MyRequests returns the caller's own request history, newest first.
func (s *Service) MyRequests(ctx context.Context, employeeID string, filter vacation.RequestFilter) ([]vacation.Request, int64, error) {
	return s.requests.GetByEmployeeID(ctx, employeeID, filter)
}

// PendingApprovals returns PENDING requests awaiting the viewer's decision.
func (s *Service) PendingApprovals(ctx context.Context, viewerID string) ([]vacation.Request, error) {
	viewer, err := s.employees.GetByID(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get viewer: %w", err)
	}
	if viewer.Role != employee.RoleManager && viewer.Role != employee.RoleAdmin {
		return nil, vacation.ErrUnauthorizedAction
	}

	status := string(vacation.StatusPending)
	filter := vacation.RequestFilter{Status: &status, Limit: 100}
	if viewer.Role == employee.RoleManager {
		filter.LocationID = viewer.PrimaryLocationID
	}
	requests, _, err := s.requests.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	// A manager never decides their own requests.
	filtered := requests[:0]
	for _, r := range requests {
		if r.EmployeeID != viewer.ID {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// Balance reports the employee's yearly allowance, what remains, what has
// been spent, and what is still held up in pending requests.
func (s *Service) Balance(ctx context.Context, employeeID string) (vacation.BalanceResponse, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return vacation.BalanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	pending, err := s.requests.SumBusinessDays(ctx, employeeID, vacation.StatusPending, s.now().Year())
	if err != nil {
		return vacation.BalanceResponse{}, fmt.Errorf("failed to sum pending days: %w", err)
	}
	return vacation.BalanceResponse{
		EmployeeID:            emp.ID,
		AnnualVacationDays:    emp.AnnualVacationDays,
		RemainingVacationDays: emp.RemainingVacationDays,
		UsedVacationDays:      emp.AnnualVacationDays - emp.RemainingVacationDays,
		PendingVacationDays:   pending,
	}, nil
}

// TeamCalendar returns approved requests overlapping the given range,
// optionally narrowed to one location.
func (s *Service) TeamCalendar(ctx context.Context, start, end time.Time, locationID *string) ([]vacation.CalendarEntry, error) {
	requests, err := s.requests.ListApprovedInRange(ctx, start, end, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved requests: %w", err)
	}
	entries := make([]vacation.CalendarEntry, 0, len(requests))
	for _, r := range requests {
		entries = append(entries, vacation.CalendarEntry{
			RequestID:    r.ID,
			EmployeeID:   r.EmployeeID,
			EmployeeName: r.EmployeeName,
			StartDate:    r.StartDate.Format("2006-01-02"),
			EndDate:      r.EndDate.Format("2006-01-02"),
			RequestType:  string(r.RequestType),
		})
	}
	return entries, nil
}

// canDecide reports whether the actor may approve, deny, or cancel on
// behalf of the given employee. Admins always may; managers only for
// employees assigned to their location.
func (s *Service) canDecide(actor, emp employee.Employee) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.Role != employee.RoleManager {
		return false
	}
	return emp.PrimaryLocationID != nil && actor.IsManagerOf(*emp.PrimaryLocationID)
}

// managerFor resolves who should hear about an employee's request: the
// direct supervisor when one is set, otherwise the location's manager.
func (s *Service) managerFor(ctx context.Context, emp employee.Employee) string {
	if emp.SupervisorID != nil {
		return *emp.SupervisorID
	}
	if emp.PrimaryLocationID == nil {
		return ""
	}
	loc, err := s.locations.GetByID(ctx, *emp.PrimaryLocationID)
	if err != nil {
		s.logger.Warn("failed to resolve location manager",
			slog.String("location_id", *emp.PrimaryLocationID),
			slog.Any("error", err))
		return ""
	}
	if loc.ManagerID == nil {
		return ""
	}
	return *loc.ManagerID
}

// notify is best effort. Failures are logged and swallowed so delivery
// problems never surface to the caller.
func (s *Service) notify(ctx context.Context, recipientID string, kind vacation.EventKind, req vacation.Request) {
	if s.notifier == nil || recipientID == "" {
		return
	}
	if err := s.notifier.Notify(ctx, recipientID, kind, req); err != nil {
		s.logger.Warn("vacation notification failed",
			slog.String("recipient_id", recipientID),
			slog.String("event", string(kind)),
			slog.String("request_id", req.ID),
			slog.Any("error", err))
	}
}

func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, vacation.ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return time.Time{}, time.Time{}, vacation.ErrInvalidDateRange
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, vacation.ErrInvalidDateRange
	}
	return start, end, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
