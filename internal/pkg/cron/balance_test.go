package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResetter struct {
	calls []int
	err   error
}

func (f *fakeResetter) ResetYearlyBalances(ctx context.Context, year int) error {
	f.calls = append(f.calls, year)
	return f.err
}

func TestResetYearlyBalances_SkipsCurrentYear(t *testing.T) {
	resetter := &fakeResetter{}
	jobs := NewBalanceJobs(resetter)

	// Startup assumes this year's balances are already correct.
	err := jobs.ResetYearlyBalances(context.Background())

	require.NoError(t, err)
	assert.Empty(t, resetter.calls)
}

func TestResetYearlyBalances_RunsOncePerYear(t *testing.T) {
	resetter := &fakeResetter{}
	jobs := NewBalanceJobs(resetter)
	jobs.lastResetYear = time.Now().UTC().Year() - 1

	require.NoError(t, jobs.ResetYearlyBalances(context.Background()))
	require.NoError(t, jobs.ResetYearlyBalances(context.Background()))

	// The hourly schedule must not re-run the reset within the same year.
	require.Len(t, resetter.calls, 1)
	assert.Equal(t, time.Now().UTC().Year(), resetter.calls[0])
}

func TestResetYearlyBalances_RetriesAfterFailure(t *testing.T) {
	resetter := &fakeResetter{err: errors.New("db down")}
	jobs := NewBalanceJobs(resetter)
	jobs.lastResetYear = time.Now().UTC().Year() - 1

	require.Error(t, jobs.ResetYearlyBalances(context.Background()))

	// A failed reset leaves the guard open so the next tick tries again.
	resetter.err = nil
	require.NoError(t, jobs.ResetYearlyBalances(context.Background()))
	assert.Len(t, resetter.calls, 2)
}
