package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careplan/careplan-backend-go/internal/domain/holiday"
	"github.com/careplan/careplan-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

const holidayColumns = `
	id, date, name, description,
	location_id, is_nationwide,
	is_recurring, recurring_month, recurring_day,
	created_at, updated_at`

func scanHoliday(row pgx.Row) (holiday.PublicHoliday, error) {
	var h holiday.PublicHoliday
	err := row.Scan(
		&h.ID, &h.Date, &h.Name, &h.Description,
		&h.LocationID, &h.IsNationwide,
		&h.IsRecurring, &h.RecurringMonth, &h.RecurringDay,
		&h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.PublicHoliday) (holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	// The partial unique indexes on (date, location_id) and on (date) where
	// location_id is null back the duplicate check.
	query := `
		INSERT INTO public_holidays (
			id, date, name, description,
			location_id, is_nationwide,
			is_recurring, recurring_month, recurring_day,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5,
			$6, $7, $8,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		h.Date, h.Name, h.Description,
		h.LocationID, h.IsNationwide,
		h.IsRecurring, h.RecurringMonth, h.RecurringDay,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return holiday.PublicHoliday{}, err
	}

	return h, nil
}

func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM public_holidays
		WHERE id = $1
	`, holidayColumns)

	h, err := scanHoliday(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.PublicHoliday{}, holiday.ErrHolidayNotFound
		}
		return holiday.PublicHoliday{}, err
	}
	return h, nil
}

func (r *holidayRepositoryImpl) GetByYear(ctx context.Context, year int, locationID *string) ([]holiday.PublicHoliday, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	return r.GetByDateRange(ctx, start, end, locationID)
}

func (r *holidayRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time, locationID *string) ([]holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	// Recurring holidays always come back; their occurrence dates are
	// resolved per year by the caller.
	whereClause := "WHERE (is_recurring OR (date >= $1 AND date <= $2))"
	args := []interface{}{start, end}

	if locationID != nil {
		whereClause += " AND (is_nationwide OR location_id = $3)"
		args = append(args, *locationID)
	} else {
		whereClause += " AND is_nationwide"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM public_holidays
		%s
		ORDER BY date ASC
	`, holidayColumns, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.PublicHoliday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (r *holidayRepositoryImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	appendField := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Date != nil {
		appendField("date", *req.Date)
	}
	if req.Name != nil {
		appendField("name", *req.Name)
	}
	if req.Description != nil {
		appendField("description", *req.Description)
	}

	query := fmt.Sprintf(`
		UPDATE public_holidays
		SET %s
		WHERE id = $%d
	`, strings.Join(updates, ", "), argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM public_holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
