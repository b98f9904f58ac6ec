package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/garagedesk/garage-backend-go/internal/domain/attendance"
	"github.com/garagedesk/garage-backend-go/internal/domain/payroll"
	"github.com/garagedesk/garage-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	ListDay(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("MarkAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance marked successfully", rec)
}

// GetByID implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance record ID is required", nil)
		return
	}

	rec, err := h.attendanceService.GetAttendance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rec)
}

func monthFilterFromQuery(r *http.Request) attendance.MonthFilter {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	return attendance.MonthFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Year:       year,
		Month:      month,
	}
}

// ListMonth implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListMonth(r.Context(), monthFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// ListDay implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListDay(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter date is required", nil)
		return
	}

	records, err := h.attendanceService.ListDay(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance record ID is required", nil)
		return
	}

	if err := h.attendanceService.DeleteAttendance(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}

// MonthlySummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.attendanceService.MonthlySummary(r.Context(), monthFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll.ToSummaryResponse(summary))
}
