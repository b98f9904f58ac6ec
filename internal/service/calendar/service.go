package calendar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/garagedesk/garage-backend-go/internal/domain/calendar"
	"github.com/garagedesk/garage-backend-go/internal/pkg/database"
	"github.com/garagedesk/garage-backend-go/internal/pkg/ical"
)

type SettingsServiceImpl struct {
	db           *database.DB
	settingsRepo calendar.SettingsRepository
}

func NewSettingsService(db *database.DB, settingsRepo calendar.SettingsRepository) calendar.SettingsService {
	return &SettingsServiceImpl{
		db:           db,
		settingsRepo: settingsRepo,
	}
}

func (s *SettingsServiceImpl) load(ctx context.Context) (calendar.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, calendar.ErrSettingsNotFound) {
			return calendar.DefaultSettings(), nil
		}
		return calendar.Settings{}, fmt.Errorf("failed to get calendar settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (calendar.SettingsResponse, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return calendar.SettingsResponse{}, err
	}
	return calendar.ToSettingsResponse(settings), nil
}

func (s *SettingsServiceImpl) UpdateWeekdays(ctx context.Context, req calendar.UpdateWeekdaysRequest) (calendar.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.SettingsResponse{}, err
	}

	weekdays := calendar.WeekdaysFromInts(req.WorkingWeekdays)
	if err := calendar.ValidateWeekdays(weekdays); err != nil {
		return calendar.SettingsResponse{}, err
	}

	settings, err := s.settingsRepo.UpsertWeekdays(ctx, weekdays)
	if err != nil {
		return calendar.SettingsResponse{}, err
	}
	return calendar.ToSettingsResponse(settings), nil
}

func (s *SettingsServiceImpl) AddHoliday(ctx context.Context, req calendar.AddHolidayRequest) (calendar.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.SettingsResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	holiday := calendar.Holiday{
		Date: calendar.DateKey(date),
		Name: req.Name,
	}

	if err := s.settingsRepo.AddHoliday(ctx, holiday); err != nil {
		return calendar.SettingsResponse{}, err
	}
	return s.GetSettings(ctx)
}

func (s *SettingsServiceImpl) RemoveHoliday(ctx context.Context, date string) (calendar.SettingsResponse, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return calendar.SettingsResponse{}, calendar.ErrHolidayNotFound
	}

	if err := s.settingsRepo.RemoveHoliday(ctx, calendar.DateKey(parsed)); err != nil {
		return calendar.SettingsResponse{}, err
	}
	return s.GetSettings(ctx)
}

func (s *SettingsServiceImpl) ImportHolidays(ctx context.Context, ics io.Reader) (calendar.ImportHolidaysResponse, error) {
	parsed, err := ical.ParseHolidays(ics)
	if err != nil {
		return calendar.ImportHolidaysResponse{}, calendar.ErrInvalidICSCalendar
	}

	resp := calendar.ImportHolidaysResponse{Holidays: []calendar.HolidayResponse{}}
	for _, h := range parsed {
		holiday := calendar.Holiday{Date: calendar.DateKey(h.Date), Name: h.Name}
		if err := s.settingsRepo.AddHoliday(ctx, holiday); err != nil {
			if errors.Is(err, calendar.ErrDuplicateHoliday) {
				resp.Skipped++
				continue
			}
			return calendar.ImportHolidaysResponse{}, err
		}
		resp.Imported++
		resp.Holidays = append(resp.Holidays, calendar.HolidayResponse{
			Date: holiday.Date.Format("2006-01-02"),
			Name: holiday.Name,
		})
	}

	return resp, nil
}
