package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/garagedesk/garage-backend-go/internal/domain/calendar"
	"github.com/garagedesk/garage-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateWeekdays(w http.ResponseWriter, r *http.Request)
	AddHoliday(w http.ResponseWriter, r *http.Request)
	RemoveHoliday(w http.ResponseWriter, r *http.Request)
	ImportHolidays(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	settingsService calendar.SettingsService
}

func NewCalendarHandler(settingsService calendar.SettingsService) CalendarHandler {
	return &CalendarHandlerImpl{settingsService: settingsService}
}

// GetSettings implements CalendarHandler.
func (h *CalendarHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, settings)
}

// UpdateWeekdays implements CalendarHandler.
func (h *CalendarHandlerImpl) UpdateWeekdays(w http.ResponseWriter, r *http.Request) {
	var req calendar.UpdateWeekdaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateWeekdays decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	settings, err := h.settingsService.UpdateWeekdays(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Working weekdays updated successfully", settings)
}

// AddHoliday implements CalendarHandler.
func (h *CalendarHandlerImpl) AddHoliday(w http.ResponseWriter, r *http.Request) {
	var req calendar.AddHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	settings, err := h.settingsService.AddHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Holiday added successfully", settings)
}

// RemoveHoliday implements CalendarHandler.
func (h *CalendarHandlerImpl) RemoveHoliday(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if date == "" {
		response.BadRequest(w, "Holiday date is required", nil)
		return
	}

	settings, err := h.settingsService.RemoveHoliday(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday removed successfully", settings)
}

// ImportHolidays implements CalendarHandler.
func (h *CalendarHandlerImpl) ImportHolidays(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	result, err := h.settingsService.ImportHolidays(r.Context(), r.Body)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holidays imported successfully", result)
}
