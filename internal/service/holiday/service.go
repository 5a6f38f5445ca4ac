package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careplan/careplan-backend-go/internal/domain/holiday"
	"github.com/careplan/careplan-backend-go/internal/pkg/calendar"
	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	holidays holiday.HolidayRepository
}

func NewService(holidays holiday.HolidayRepository) *Service {
	return &Service{holidays: holidays}
}

func (s *Service) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("invalid holiday date: %w", err)
	}

	h := holiday.PublicHoliday{
		Date:         date,
		Name:         req.Name,
		Description:  req.Description,
		LocationID:   req.LocationID,
		IsNationwide: req.LocationID == nil,
		IsRecurring:  req.IsRecurring,
	}
	if req.IsRecurring {
		if req.RecurringMonth == nil || req.RecurringDay == nil {
			return holiday.HolidayResponse{}, holiday.ErrInvalidRecurrence
		}
		h.RecurringMonth = req.RecurringMonth
		h.RecurringDay = req.RecurringDay
	}

	created, err := s.holidays.Create(ctx, h)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return holiday.HolidayResponse{}, holiday.ErrDuplicateHoliday
			}
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday.ToResponse(created), nil
}

func (s *Service) Get(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	h, err := s.holidays.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.ToResponse(h), nil
}

// ListForYear returns the holidays applying to a location in a year,
// recurring entries resolved to their occurrence date.
func (s *Service) ListForYear(ctx context.Context, year int, locationID *string) ([]holiday.HolidayResponse, error) {
	hs, err := s.holidays.GetByYear(ctx, year, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(hs))
	for _, h := range hs {
		occurrence, ok := h.OccurrenceIn(year)
		if !ok {
			continue
		}
		resp := holiday.ToResponse(h)
		resp.Date = occurrence
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *Service) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := s.holidays.Update(ctx, req); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.HolidayResponse{}, holiday.ErrDuplicateHoliday
		}
		return holiday.HolidayResponse{}, err
	}
	return s.Get(ctx, req.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.holidays.Delete(ctx, id)
}

// HolidayFunc builds a lookup over every holiday occurrence falling in
// [start, end] for the given location. The vacation workflow feeds it to
// the business-day counter.
func (s *Service) HolidayFunc(ctx context.Context, start, end time.Time, locationID *string) (calendar.HolidayFunc, error) {
	hs, err := s.holidays.GetByDateRange(ctx, start, end, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}

	dates := make(map[string]struct{})
	for _, h := range hs {
		for year := start.Year(); year <= end.Year(); year++ {
			occurrence, ok := h.OccurrenceIn(year)
			if !ok {
				continue
			}
			if occurrence.Before(start) || occurrence.After(end) {
				continue
			}
			dates[occurrence.Format("2006-01-02")] = struct{}{}
		}
	}

	return func(t time.Time) bool {
		_, ok := dates[t.Format("2006-01-02")]
		return ok
	}, nil
}
