package postgresql

import (
	"context"
	"time"

	"github.com/careplan/careplan-backend-go/internal/domain/dashboard"
	"github.com/careplan/careplan-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) GetStaffSummary(ctx context.Context, asOf time.Time) (dashboard.StaffSummaryStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE hire_date >= $1::date - INTERVAL '30 days') AS new,
			COUNT(*) FILTER (WHERE is_active) AS active
		FROM employees
		WHERE deleted_at IS NULL
	`

	var stats dashboard.StaffSummaryStats
	err := q.QueryRow(ctx, query, asOf).Scan(&stats.Total, &stats.New, &stats.Active)
	if err != nil {
		return dashboard.StaffSummaryStats{}, err
	}
	return stats, nil
}

func (r *dashboardRepositoryImpl) GetVacationSummary(ctx context.Context, asOf time.Time) (dashboard.VacationSummaryStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'PENDING') AS pending,
			COUNT(*) FILTER (WHERE status = 'APPROVED' AND start_date <= $1::date AND end_date >= $1::date) AS on_vacation,
			COUNT(*) FILTER (WHERE status = 'APPROVED' AND start_date > $1::date) AS approved_upcoming
		FROM vacation_requests
	`

	var stats dashboard.VacationSummaryStats
	err := q.QueryRow(ctx, query, asOf).Scan(&stats.Pending, &stats.OnVacationToday, &stats.ApprovedUpcoming)
	if err != nil {
		return dashboard.VacationSummaryStats{}, err
	}
	return stats, nil
}

func (r *dashboardRepositoryImpl) GetLocationCoverage(ctx context.Context, asOf time.Time) ([]dashboard.LocationCoverage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			l.id,
			l.name,
			COUNT(e.id) FILTER (WHERE e.is_active) AS total_staff,
			COUNT(vr.id) AS on_vacation,
			l.min_staff_count
		FROM locations l
		LEFT JOIN employees e
			ON e.primary_location_id = l.id AND e.deleted_at IS NULL
		LEFT JOIN vacation_requests vr
			ON vr.employee_id = e.id
			AND vr.status = 'APPROVED'
			AND vr.start_date <= $1::date
			AND vr.end_date >= $1::date
		WHERE l.deleted_at IS NULL AND l.is_active
		GROUP BY l.id, l.name, l.min_staff_count
		ORDER BY l.name ASC
	`

	rows, err := q.Query(ctx, query, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coverage []dashboard.LocationCoverage
	for rows.Next() {
		var c dashboard.LocationCoverage
		if err := rows.Scan(&c.LocationID, &c.LocationName, &c.TotalStaff, &c.OnVacation, &c.MinStaffCount); err != nil {
			return nil, err
		}
		coverage = append(coverage, c)
	}
	return coverage, rows.Err()
}

func (r *dashboardRepositoryImpl) GetUpcomingVacations(ctx context.Context, asOf time.Time, limit int) ([]dashboard.UpcomingVacation, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT vr.id, e.first_name || ' ' || e.last_name, vr.start_date, vr.end_date, vr.business_days
		FROM vacation_requests vr
		JOIN employees e ON vr.employee_id = e.id
		WHERE vr.status = 'APPROVED' AND vr.start_date > $1::date
		ORDER BY vr.start_date ASC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, asOf, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var upcoming []dashboard.UpcomingVacation
	for rows.Next() {
		var u dashboard.UpcomingVacation
		if err := rows.Scan(&u.RequestID, &u.EmployeeName, &u.StartDate, &u.EndDate, &u.BusinessDays); err != nil {
			return nil, err
		}
		upcoming = append(upcoming, u)
	}
	return upcoming, rows.Err()
}
