package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/careplan/careplan-backend-go/internal/domain/dashboard"
)

type Service struct {
	repo dashboard.Repository
	now  func() time.Time
}

func NewService(repo dashboard.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// GetDashboard assembles the manager dashboard: staffing counts, vacation
// workflow counters, per-location coverage for today, and upcoming leave.
func (s *Service) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	asOf := s.now()

	staff, err := s.repo.GetStaffSummary(ctx, asOf)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to get staff summary: %w", err)
	}

	vacations, err := s.repo.GetVacationSummary(ctx, asOf)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to get vacation summary: %w", err)
	}

	coverage, err := s.repo.GetLocationCoverage(ctx, asOf)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to get location coverage: %w", err)
	}

	upcoming, err := s.repo.GetUpcomingVacations(ctx, asOf, 10)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to get upcoming vacations: %w", err)
	}

	resp := dashboard.DashboardResponse{
		StaffSummary: dashboard.StaffSummaryResponse{
			TotalEmployees:  staff.Total,
			NewEmployees:    staff.New,
			ActiveEmployees: staff.Active,
			UpdatedAt:       asOf.Format(time.RFC3339),
		},
		VacationSummary: dashboard.VacationSummaryResponse{
			PendingRequests:  vacations.Pending,
			OnVacationToday:  vacations.OnVacationToday,
			ApprovedUpcoming: vacations.ApprovedUpcoming,
		},
		LocationCoverage:  make([]dashboard.LocationCoverageItem, 0, len(coverage)),
		UpcomingVacations: make([]dashboard.UpcomingVacationItem, 0, len(upcoming)),
	}

	for _, c := range coverage {
		available := c.TotalStaff - c.OnVacation
		resp.LocationCoverage = append(resp.LocationCoverage, dashboard.LocationCoverageItem{
			LocationID:    c.LocationID,
			LocationName:  c.LocationName,
			TotalStaff:    c.TotalStaff,
			OnVacation:    c.OnVacation,
			Available:     available,
			MinStaffCount: c.MinStaffCount,
			BelowMinimum:  available < int64(c.MinStaffCount),
		})
	}

	for _, u := range upcoming {
		resp.UpcomingVacations = append(resp.UpcomingVacations, dashboard.UpcomingVacationItem{
			RequestID:    u.RequestID,
			EmployeeName: u.EmployeeName,
			StartDate:    u.StartDate.Format("2006-01-02"),
			EndDate:      u.EndDate.Format("2006-01-02"),
			BusinessDays: u.BusinessDays,
		})
	}

	return resp, nil
}
