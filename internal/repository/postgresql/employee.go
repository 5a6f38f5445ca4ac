package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/careplan/careplan-backend-go/internal/domain/employee"
	"github.com/careplan/careplan-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, employee_code, email, password_hash, first_name, last_name, role,
	primary_location_id, supervisor_id,
	annual_vacation_days, remaining_vacation_days,
	hire_date, is_active, created_at, updated_at, deleted_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeCode, &e.Email, &e.PasswordHash, &e.FirstName, &e.LastName, &e.Role,
		&e.PrimaryLocationID, &e.SupervisorID,
		&e.AnnualVacationDays, &e.RemainingVacationDays,
		&e.HireDate, &e.IsActive, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	return e, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, employee_code, email, password_hash, first_name, last_name, role,
			primary_location_id, supervisor_id,
			annual_vacation_days, remaining_vacation_days,
			hire_date, is_active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			$7, $8,
			$9, $10,
			$11, true, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeCode, emp.Email, emp.PasswordHash, emp.FirstName, emp.LastName, emp.Role,
		emp.PrimaryLocationID, emp.SupervisorID,
		emp.AnnualVacationDays, emp.RemainingVacationDays,
		emp.HireDate,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	emp.IsActive = true
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`, employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE email = $1 AND deleted_at IS NULL
	`, employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIndex := 1

	if filter.LocationID != nil {
		whereClause += fmt.Sprintf(" AND primary_location_id = $%d", argIndex)
		args = append(args, *filter.LocationID)
		argIndex++
	}
	if filter.Role != nil {
		whereClause += fmt.Sprintf(" AND role = $%d", argIndex)
		args = append(args, *filter.Role)
		argIndex++
	}
	if filter.Search != nil {
		whereClause += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR employee_code ILIKE $%d)", argIndex, argIndex, argIndex)
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees %s", whereClause)

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

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		%s
		ORDER BY last_name ASC, first_name ASC
		LIMIT $%d OFFSET $%d
	`, employeeColumns, whereClause, argIndex, argIndex+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	appendField := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Email != nil {
		appendField("email", *req.Email)
	}
	if req.FirstName != nil {
		appendField("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		appendField("last_name", *req.LastName)
	}
	if req.Role != nil {
		appendField("role", *req.Role)
	}
	if req.PrimaryLocationID != nil {
		appendField("primary_location_id", *req.PrimaryLocationID)
	}
	if req.SupervisorID != nil {
		appendField("supervisor_id", *req.SupervisorID)
	}
	if req.AnnualVacationDays != nil {
		appendField("annual_vacation_days", *req.AnnualVacationDays)
	}
	if req.IsActive != nil {
		appendField("is_active", *req.IsActive)
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $%d AND deleted_at IS NULL
	`, strings.Join(updates, ", "), argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), is_active = false, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE
	`, employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) AdjustVacationBalance(ctx context.Context, id string, delta int) error {
	q := GetQuerier(ctx, r.db)

	// The WHERE guard keeps a debit from driving the balance negative.
	query := `
		UPDATE employees
		SET remaining_vacation_days = remaining_vacation_days + $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
		  AND remaining_vacation_days + $1 >= 0
	`

	commandTag, err := q.Exec(ctx, query, delta, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		if delta < 0 {
			return employee.ErrInsufficientBalance
		}
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) SetVacationBalance(ctx context.Context, id string, remaining int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET remaining_vacation_days = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, remaining, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
