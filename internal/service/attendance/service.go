package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/garagedesk/garage-backend-go/internal/domain/attendance"
	"github.com/garagedesk/garage-backend-go/internal/domain/calendar"
	"github.com/garagedesk/garage-backend-go/internal/domain/employee"
	domainPayroll "github.com/garagedesk/garage-backend-go/internal/domain/payroll"
	"github.com/garagedesk/garage-backend-go/internal/pkg/database"
	"github.com/garagedesk/garage-backend-go/internal/pkg/validator"
	payrollService "github.com/garagedesk/garage-backend-go/internal/service/payroll"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	calendarRepo   calendar.SettingsRepository
	calculator     *payrollService.Calculator
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	calendarRepo calendar.SettingsRepository,
	calculator *payrollService.Calculator,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		calendarRepo:   calendarRepo,
		calculator:     calculator,
	}
}

func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	rec := attendance.DailyRecord{
		EmployeeID:    req.EmployeeID,
		Date:          calendar.DateKey(date),
		Status:        attendance.Status(req.Status),
		AbsenceReason: req.AbsenceReason,
		LeaveReason:   req.LeaveReason,
	}

	// Variant fields only apply to their status; everything else is dropped
	// even if the client sent it.
	switch rec.Status {
	case attendance.StatusPresent:
		dayType := attendance.PresentFull
		if req.PresentDayType != nil {
			dayType = attendance.PresentDayType(*req.PresentDayType)
		}
		rec.PresentDayType = &dayType
	case attendance.StatusAbsent:
		rec.AbsencePaid = req.AbsencePaid
	case attendance.StatusLeave:
		leaveType := attendance.LeavePaid
		if req.LeaveType != nil {
			leaveType = attendance.LeaveType(*req.LeaveType)
		}
		rec.LeaveType = &leaveType
	}

	saved, err := s.attendanceRepo.Upsert(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToAttendanceResponse(saved), nil
}

func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	rec, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToAttendanceResponse(rec), nil
}

func (s *AttendanceServiceImpl) ListMonth(ctx context.Context, filter attendance.MonthFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployeeMonth(ctx, filter.EmployeeID, filter.Year, time.Month(filter.Month))
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, attendance.ToAttendanceResponse(rec))
	}
	return result, nil
}

func (s *AttendanceServiceImpl) ListDay(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	parsed, ok := parseDate(date)
	if !ok {
		return nil, validator.ValidationErrors{
			{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"},
		}
	}

	records, err := s.attendanceRepo.ListByDate(ctx, parsed)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, attendance.ToAttendanceResponse(rec))
	}
	return result, nil
}

func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if _, err := s.attendanceRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.attendanceRepo.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) MonthlySummary(ctx context.Context, filter attendance.MonthFilter) (domainPayroll.MonthlyAttendanceSummary, error) {
	if err := filter.Validate(); err != nil {
		return domainPayroll.MonthlyAttendanceSummary{}, err
	}

	settings, err := s.calendarRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, calendar.ErrSettingsNotFound) {
			return domainPayroll.MonthlyAttendanceSummary{}, fmt.Errorf("failed to load calendar settings: %w", err)
		}
		settings = calendar.DefaultSettings()
	}

	month := time.Month(filter.Month)
	records, err := s.attendanceRepo.ListByEmployeeMonth(ctx, filter.EmployeeID, filter.Year, month)
	if err != nil {
		return domainPayroll.MonthlyAttendanceSummary{}, err
	}

	return s.calculator.Aggregate(filter.EmployeeID, filter.Year, month, records, settings), nil
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
