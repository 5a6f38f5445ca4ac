package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/careplan/careplan-backend-go/internal/domain/location"
	"github.com/careplan/careplan-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type locationRepositoryImpl struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepositoryImpl{db: db}
}

const locationColumns = `
	id, name, address, city, postal_code, manager_id, min_staff_count,
	is_active, created_at, updated_at, deleted_at`

func scanLocation(row pgx.Row) (location.Location, error) {
	var l location.Location
	err := row.Scan(
		&l.ID, &l.Name, &l.Address, &l.City, &l.PostalCode, &l.ManagerID, &l.MinStaffCount,
		&l.IsActive, &l.CreatedAt, &l.UpdatedAt, &l.DeletedAt,
	)
	return l, err
}

func (r *locationRepositoryImpl) Create(ctx context.Context, loc location.Location) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO locations (
			id, name, address, city, postal_code, manager_id, min_staff_count,
			is_active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			true, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		loc.Name, loc.Address, loc.City, loc.PostalCode, loc.ManagerID, loc.MinStaffCount,
	).Scan(&loc.ID, &loc.CreatedAt, &loc.UpdatedAt)
	if err != nil {
		return location.Location{}, err
	}

	loc.IsActive = true
	return loc, nil
}

func (r *locationRepositoryImpl) GetByID(ctx context.Context, id string) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM locations
		WHERE id = $1 AND deleted_at IS NULL
	`, locationColumns)

	l, err := scanLocation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, err
	}
	return l, nil
}

func (r *locationRepositoryImpl) List(ctx context.Context) ([]location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM locations
		WHERE deleted_at IS NULL
		ORDER BY name ASC
	`, locationColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []location.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *locationRepositoryImpl) Update(ctx context.Context, req location.UpdateLocationRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	appendField := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		appendField("name", *req.Name)
	}
	if req.Address != nil {
		appendField("address", *req.Address)
	}
	if req.City != nil {
		appendField("city", *req.City)
	}
	if req.PostalCode != nil {
		appendField("postal_code", *req.PostalCode)
	}
	if req.ManagerID != nil {
		appendField("manager_id", *req.ManagerID)
	}
	if req.MinStaffCount != nil {
		appendField("min_staff_count", *req.MinStaffCount)
	}
	if req.IsActive != nil {
		appendField("is_active", *req.IsActive)
	}

	query := fmt.Sprintf(`
		UPDATE locations
		SET %s
		WHERE id = $%d AND deleted_at IS NULL
	`, strings.Join(updates, ", "), argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return location.ErrLocationNotFound
	}
	return nil
}

func (r *locationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE locations
		SET deleted_at = NOW(), is_active = false, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return location.ErrLocationNotFound
	}
	return nil
}
