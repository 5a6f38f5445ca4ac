package cron

import (
	"context"
	"sync"
	"time"
)

// BalanceResetter re-seeds vacation balances for a calendar year.
type BalanceResetter interface {
	ResetYearlyBalances(ctx context.Context, year int) error
}

// BalanceJobs contains vacation-balance maintenance jobs
type BalanceJobs struct {
	employeeService BalanceResetter

	mu            sync.Mutex
	lastResetYear int
}

// NewBalanceJobs creates vacation-balance cron jobs
func NewBalanceJobs(svc BalanceResetter) *BalanceJobs {
	return &BalanceJobs{
		employeeService: svc,
		// Balances for the current year are assumed correct at startup.
		lastResetYear: time.Now().UTC().Year(),
	}
}

// RegisterJobs registers all balance-related cron jobs
func (j *BalanceJobs) RegisterJobs(scheduler *Scheduler) {
	// Yearly reset happens on January 1st; check hourly so a restart
	// around midnight does not skip it.
	scheduler.AddJob(
		"reset_yearly_vacation_balances",
		1*time.Hour,
		j.ResetYearlyBalances,
	)
}

// ResetYearlyBalances re-seeds every employee's remaining vacation days
// once per calendar year.
func (j *BalanceJobs) ResetYearlyBalances(ctx context.Context) error {
	year := time.Now().UTC().Year()

	j.mu.Lock()
	if year == j.lastResetYear {
		j.mu.Unlock()
		return nil
	}
	j.mu.Unlock()

	if err := j.employeeService.ResetYearlyBalances(ctx, year); err != nil {
		return err
	}

	j.mu.Lock()
	j.lastResetYear = year
	j.mu.Unlock()
	return nil
}
