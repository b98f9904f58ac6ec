package calendar

import (
	"time"

	"github.com/garagedesk/garage-backend-go/internal/pkg/validator"
)

type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type SettingsResponse struct {
	ID              string            `json:"id"`
	WorkingWeekdays []int             `json:"working_weekdays"`
	Holidays        []HolidayResponse `json:"holidays"`
}

type UpdateWeekdaysRequest struct {
	WorkingWeekdays []int `json:"working_weekdays"`
}

func (r *UpdateWeekdaysRequest) Validate() error {
	var errs validator.ValidationErrors

	// Emptiness and range are the domain's call; see ValidateWeekdays.
	seen := make(map[int]bool)
	for _, w := range r.WorkingWeekdays {
		if seen[w] {
			errs = append(errs, validator.ValidationError{Field: "working_weekdays", Message: "duplicate weekday"})
			break
		}
		seen[w] = true
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *AddHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ImportHolidaysResponse struct {
	Imported int               `json:"imported"`
	Skipped  int               `json:"skipped"`
	Holidays []HolidayResponse `json:"holidays"`
}

func ToSettingsResponse(s Settings) SettingsResponse {
	weekdays := make([]int, 0, len(s.WorkingWeekdays))
	for _, w := range s.WorkingWeekdays {
		weekdays = append(weekdays, int(w))
	}

	holidays := make([]HolidayResponse, 0, len(s.Holidays))
	for _, h := range s.Holidays {
		holidays = append(holidays, HolidayResponse{
			Date: DateKey(h.Date).Format("2006-01-02"),
			Name: h.Name,
		})
	}

	return SettingsResponse{
		ID:              s.ID,
		WorkingWeekdays: weekdays,
		Holidays:        holidays,
	}
}

// WeekdaysFromInts converts wire-format weekday numbers (0 = Sunday) into
// time.Weekday values.
func WeekdaysFromInts(values []int) []time.Weekday {
	weekdays := make([]time.Weekday, 0, len(values))
	for _, v := range values {
		weekdays = append(weekdays, time.Weekday(v))
	}
	return weekdays
}
