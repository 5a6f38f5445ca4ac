package dashboard

import (
	"context"
	"time"
)

// StaffSummaryStats combines the employee headcounts in a single query
type StaffSummaryStats struct {
	Total  int64
	New    int64 // hired within 30 days
	Active int64
}

// VacationSummaryStats combines vacation workflow counters
type VacationSummaryStats struct {
	Pending          int64
	OnVacationToday  int64
	ApprovedUpcoming int64
}

// LocationCoverage reports staffing for one location on a given day
type LocationCoverage struct {
	LocationID    string
	LocationName  string
	TotalStaff    int64
	OnVacation    int64
	MinStaffCount int
}

// UpcomingVacation is one approved request starting soon
type UpcomingVacation struct {
	RequestID    string
	EmployeeName string
	StartDate    time.Time
	EndDate      time.Time
	BusinessDays int
}

// Repository - aggregate queries feeding the dashboard
type Repository interface {
	GetStaffSummary(ctx context.Context, asOf time.Time) (StaffSummaryStats, error)
	GetVacationSummary(ctx context.Context, asOf time.Time) (VacationSummaryStats, error)
	GetLocationCoverage(ctx context.Context, asOf time.Time) ([]LocationCoverage, error)
	GetUpcomingVacations(ctx context.Context, asOf time.Time, limit int) ([]UpcomingVacation, error)
}
