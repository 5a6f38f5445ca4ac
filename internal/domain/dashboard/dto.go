package dashboard

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	StaffSummary      StaffSummaryResponse    `json:"staff_summary"`
	VacationSummary   VacationSummaryResponse `json:"vacation_summary"`
	LocationCoverage  []LocationCoverageItem  `json:"location_coverage"`
	UpcomingVacations []UpcomingVacationItem  `json:"upcoming_vacations"`
}

// StaffSummaryResponse contains employee headcounts
type StaffSummaryResponse struct {
	TotalEmployees  int64  `json:"total_employees"`
	NewEmployees    int64  `json:"new_employees"` // hired within 30 days
	ActiveEmployees int64  `json:"active_employees"`
	UpdatedAt       string `json:"updated_at"`
}

// VacationSummaryResponse contains vacation workflow counters
type VacationSummaryResponse struct {
	PendingRequests  int64 `json:"pending_requests"`
	OnVacationToday  int64 `json:"on_vacation_today"`
	ApprovedUpcoming int64 `json:"approved_upcoming"` // starting within 30 days
}

// LocationCoverageItem reports staffing at one location for today
type LocationCoverageItem struct {
	LocationID    string `json:"location_id"`
	LocationName  string `json:"location_name"`
	TotalStaff    int64  `json:"total_staff"`
	OnVacation    int64  `json:"on_vacation"`
	Available     int64  `json:"available"`
	MinStaffCount int    `json:"min_staff_count"`
	BelowMinimum  bool   `json:"below_minimum"`
}

// UpcomingVacationItem is one approved vacation starting soon
type UpcomingVacationItem struct {
	RequestID    string `json:"request_id"`
	EmployeeName string `json:"employee_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	BusinessDays int    `json:"business_days"`
}
