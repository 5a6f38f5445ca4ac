package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careplan/careplan-backend-go/internal/domain/vacation"
	"github.com/careplan/careplan-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type vacationRequestRepositoryImpl struct {
	db *database.DB
}

func NewVacationRequestRepository(db *database.DB) vacation.RequestRepository {
	return &vacationRequestRepositoryImpl{db: db}
}

const vacationRequestColumns = `
	vr.id, vr.employee_id,
	vr.start_date, vr.end_date, vr.request_type,
	vr.business_days, vr.calendar_days,
	vr.status, vr.reason,
	vr.approved_by, vr.approved_at,
	vr.denied_by, vr.denied_at, vr.denial_reason,
	vr.cancelled_by, vr.cancelled_at, vr.cancellation_reason,
	vr.submitted_at, vr.created_at, vr.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name`

func scanVacationRequest(row pgx.Row) (vacation.Request, error) {
	var req vacation.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID,
		&req.StartDate, &req.EndDate, &req.RequestType,
		&req.BusinessDays, &req.CalendarDays,
		&req.Status, &req.Reason,
		&req.ApprovedBy, &req.ApprovedAt,
		&req.DeniedBy, &req.DeniedAt, &req.DenialReason,
		&req.CancelledBy, &req.CancelledAt, &req.CancellationReason,
		&req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	return req, err
}

func (r *vacationRequestRepositoryImpl) Create(ctx context.Context, request vacation.Request) (vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacation_requests (
			id, employee_id,
			start_date, end_date, request_type,
			business_days, calendar_days,
			status, reason,
			submitted_at, created_at, updated_at
		) VALUES (
			uuidv7(), $1,
			$2, $3, $4,
			$5, $6,
			$7, $8,
			NOW(), NOW(), NOW()
		) RETURNING id, submitted_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID,
		request.StartDate, request.EndDate, request.RequestType,
		request.BusinessDays, request.CalendarDays,
		request.Status, request.Reason,
	).Scan(&request.ID, &request.SubmittedAt, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return vacation.Request{}, err
	}

	return request, nil
}

func (r *vacationRequestRepositoryImpl) GetByID(ctx context.Context, id string) (vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM vacation_requests vr
		JOIN employees e ON vr.employee_id = e.id
		WHERE vr.id = $1
	`, vacationRequestColumns)

	req, err := scanVacationRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.Request{}, vacation.ErrRequestNotFound
		}
		return vacation.Request{}, err
	}
	return req, nil
}

func (r *vacationRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string, filter vacation.RequestFilter) ([]vacation.Request, int64, error) {
	filter.EmployeeID = &employeeID
	return r.List(ctx, filter)
}

func (r *vacationRequestRepositoryImpl) List(ctx context.Context, filter vacation.RequestFilter) ([]vacation.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.EmployeeID != nil {
		whereClause += fmt.Sprintf(" AND vr.employee_id = $%d", argIndex)
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.LocationID != nil {
		whereClause += fmt.Sprintf(" AND e.primary_location_id = $%d", argIndex)
		args = append(args, *filter.LocationID)
		argIndex++
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND vr.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.RequestType != nil {
		whereClause += fmt.Sprintf(" AND vr.request_type = $%d", argIndex)
		args = append(args, *filter.RequestType)
		argIndex++
	}
	if filter.StartDate != nil {
		whereClause += fmt.Sprintf(" AND vr.start_date >= $%d", argIndex)
		args = append(args, *filter.StartDate)
		argIndex++
	}
	if filter.EndDate != nil {
		whereClause += fmt.Sprintf(" AND vr.end_date <= $%d", argIndex)
		args = append(args, *filter.EndDate)
		argIndex++
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM vacation_requests vr
		JOIN employees e ON vr.employee_id = e.id
		%s
	`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 10
	}
	offset := (filter.Page - 1) * filter.Limit

	sortBy := "vr.submitted_at"
	switch filter.SortBy {
	case "start_date":
		sortBy = "vr.start_date"
	case "status":
		sortBy = "vr.status"
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM vacation_requests vr
		JOIN employees e ON vr.employee_id = e.id
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, vacationRequestColumns, whereClause, sortBy, sortOrder, argIndex, argIndex+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []vacation.Request
	for rows.Next() {
		req, err := scanVacationRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *vacationRequestRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM vacation_requests
			WHERE employee_id = $1
			  AND status IN ('PENDING', 'APPROVED')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *vacationRequestRepositoryImpl) UpdateStatus(ctx context.Context, req vacation.UpdateStatusRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{"status = $1", "updated_at = NOW()"}
	args := []interface{}{req.Status}
	argIdx := 2

	appendField := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.ApprovedBy != nil {
		appendField("approved_by", *req.ApprovedBy)
	}
	if req.ApprovedAt != nil {
		appendField("approved_at", *req.ApprovedAt)
	}
	if req.DeniedBy != nil {
		appendField("denied_by", *req.DeniedBy)
	}
	if req.DeniedAt != nil {
		appendField("denied_at", *req.DeniedAt)
	}
	if req.DenialReason != nil {
		appendField("denial_reason", *req.DenialReason)
	}
	if req.CancelledBy != nil {
		appendField("cancelled_by", *req.CancelledBy)
	}
	if req.CancelledAt != nil {
		appendField("cancelled_at", *req.CancelledAt)
	}
	if req.CancellationReason != nil {
		appendField("cancellation_reason", *req.CancellationReason)
	}

	query := fmt.Sprintf(`
		UPDATE vacation_requests
		SET %s
		WHERE id = $%d
	`, strings.Join(updates, ", "), argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return vacation.ErrRequestNotFound
	}
	return nil
}

func (r *vacationRequestRepositoryImpl) ListApprovedInRange(ctx context.Context, start, end time.Time, locationID *string) ([]vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := `
		WHERE vr.status = 'APPROVED'
		  AND vr.start_date <= $2
		  AND vr.end_date >= $1`
	args := []interface{}{start, end}

	if locationID != nil {
		whereClause += " AND e.primary_location_id = $3"
		args = append(args, *locationID)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM vacation_requests vr
		JOIN employees e ON vr.employee_id = e.id
		%s
		ORDER BY vr.start_date ASC
	`, vacationRequestColumns, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []vacation.Request
	for rows.Next() {
		req, err := scanVacationRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *vacationRequestRepositoryImpl) SumBusinessDays(ctx context.Context, employeeID string, status vacation.RequestStatus, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(business_days), 0)
		FROM vacation_requests
		WHERE employee_id = $1
		  AND status = $2
		  AND request_type = 'ANNUAL_LEAVE'
		  AND EXTRACT(YEAR FROM start_date) = $3
	`

	var total int
	if err := q.QueryRow(ctx, query, employeeID, status, year).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
