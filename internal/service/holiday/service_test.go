package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/careplan/careplan-backend-go/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepo struct {
	holidays map[string]holiday.PublicHoliday
	nextID   int
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{holidays: make(map[string]holiday.PublicHoliday)}
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.PublicHoliday) (holiday.PublicHoliday, error) {
	f.nextID++
	h.ID = time.Now().Format("20060102150405") + string(rune('a'+f.nextID))
	f.holidays[h.ID] = h
	return h, nil
}

func (f *fakeHolidayRepo) GetByID(ctx context.Context, id string) (holiday.PublicHoliday, error) {
	h, ok := f.holidays[id]
	if !ok {
		return holiday.PublicHoliday{}, holiday.ErrHolidayNotFound
	}
	return h, nil
}

func (f *fakeHolidayRepo) GetByYear(ctx context.Context, year int, locationID *string) ([]holiday.PublicHoliday, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	return f.GetByDateRange(ctx, start, end, locationID)
}

func (f *fakeHolidayRepo) GetByDateRange(ctx context.Context, start, end time.Time, locationID *string) ([]holiday.PublicHoliday, error) {
	var out []holiday.PublicHoliday
	for _, h := range f.holidays {
		if !h.AppliesTo(locationID) {
			continue
		}
		inRange := !h.Date.Before(start) && !h.Date.After(end)
		if h.IsRecurring || inRange {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) Update(ctx context.Context, req holiday.UpdateHolidayRequest) error {
	return nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id string) error {
	delete(f.holidays, id)
	return nil
}

func intptr(i int) *int       { return &i }
func strptr(s string) *string { return &s }

func TestHolidayFunc_FixedAndRecurring(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewService(repo)
	ctx := context.Background()

	// Fixed date in 2026 only.
	_, err := repo.Create(ctx, holiday.PublicHoliday{
		Date:         time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		Name:         "Founders Day",
		IsNationwide: true,
	})
	require.NoError(t, err)

	// Recurring every June 6th.
	_, err = repo.Create(ctx, holiday.PublicHoliday{
		Date:           time.Date(2020, 6, 6, 0, 0, 0, 0, time.UTC),
		Name:           "National Day",
		IsNationwide:   true,
		IsRecurring:    true,
		RecurringMonth: intptr(6),
		RecurringDay:   intptr(6),
	})
	require.NoError(t, err)

	isHoliday, err := svc.HolidayFunc(ctx,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		nil,
	)
	require.NoError(t, err)

	assert.True(t, isHoliday(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)))
	assert.True(t, isHoliday(time.Date(2026, 6, 6, 0, 0, 0, 0, time.UTC)))
	assert.False(t, isHoliday(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)))
}

func TestHolidayFunc_RecurringAcrossYearBoundary(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := repo.Create(ctx, holiday.PublicHoliday{
		Date:           time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Name:           "New Year's Day",
		IsNationwide:   true,
		IsRecurring:    true,
		RecurringMonth: intptr(1),
		RecurringDay:   intptr(1),
	})
	require.NoError(t, err)

	isHoliday, err := svc.HolidayFunc(ctx,
		time.Date(2026, 12, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2027, 1, 8, 0, 0, 0, 0, time.UTC),
		nil,
	)
	require.NoError(t, err)

	assert.True(t, isHoliday(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, isHoliday(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestHolidayFunc_LeapDayRecurrence(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := repo.Create(ctx, holiday.PublicHoliday{
		Date:           time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		Name:           "Leap Day",
		IsNationwide:   true,
		IsRecurring:    true,
		RecurringMonth: intptr(2),
		RecurringDay:   intptr(29),
	})
	require.NoError(t, err)

	// 2028 is a leap year, 2026 is not.
	isHoliday, err := svc.HolidayFunc(ctx,
		time.Date(2028, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2028, 3, 31, 0, 0, 0, 0, time.UTC),
		nil,
	)
	require.NoError(t, err)
	assert.True(t, isHoliday(time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC)))

	isHoliday, err = svc.HolidayFunc(ctx,
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		nil,
	)
	require.NoError(t, err)
	// Normalization would land on March 1st; that must not count.
	assert.False(t, isHoliday(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestHolidayFunc_LocationScoping(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := repo.Create(ctx, holiday.PublicHoliday{
		Date:         time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Name:         "Regional Day",
		LocationID:   strptr("loc-1"),
		IsNationwide: false,
	})
	require.NoError(t, err)

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)

	isHoliday, err := svc.HolidayFunc(ctx, start, end, strptr("loc-1"))
	require.NoError(t, err)
	assert.True(t, isHoliday(start))

	isHoliday, err = svc.HolidayFunc(ctx, start, end, strptr("loc-2"))
	require.NoError(t, err)
	assert.False(t, isHoliday(start))

	isHoliday, err = svc.HolidayFunc(ctx, start, end, nil)
	require.NoError(t, err)
	assert.False(t, isHoliday(start))
}

func TestListForYear_ResolvesRecurringDates(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := repo.Create(ctx, holiday.PublicHoliday{
		Date:           time.Date(2020, 12, 25, 0, 0, 0, 0, time.UTC),
		Name:           "Christmas Day",
		IsNationwide:   true,
		IsRecurring:    true,
		RecurringMonth: intptr(12),
		RecurringDay:   intptr(25),
	})
	require.NoError(t, err)

	holidays, err := svc.ListForYear(ctx, 2027, nil)
	require.NoError(t, err)
	require.Len(t, holidays, 1)
	assert.Equal(t, time.Date(2027, 12, 25, 0, 0, 0, 0, time.UTC), holidays[0].Date)
}

func TestCreate_RecurringNeedsMonthAndDay(t *testing.T) {
	svc := NewService(newFakeHolidayRepo())

	_, err := svc.Create(context.Background(), holiday.CreateHolidayRequest{
		Date:        "2026-06-06",
		Name:        "Broken",
		IsRecurring: true,
	})
	assert.ErrorIs(t, err, holiday.ErrInvalidRecurrence)
}
