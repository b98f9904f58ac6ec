package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/garagedesk/garage-backend-go/internal/domain/attendance"
	"github.com/garagedesk/garage-backend-go/internal/domain/calendar"
	"github.com/garagedesk/garage-backend-go/internal/domain/employee"
	"github.com/garagedesk/garage-backend-go/internal/domain/payroll"
	"github.com/garagedesk/garage-backend-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	db             *database.DB
	salaryRepo     payroll.SalaryRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	calendarRepo   calendar.SettingsRepository
	calculator     *Calculator
}

func NewPayrollService(
	db *database.DB,
	salaryRepo payroll.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	calendarRepo calendar.SettingsRepository,
	calculator *Calculator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		salaryRepo:     salaryRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		calendarRepo:   calendarRepo,
		calculator:     calculator,
	}
}

// loadCalendar returns the stored calendar or the default when none is
// saved yet.
func (s *PayrollServiceImpl) loadCalendar(ctx context.Context) (calendar.Settings, error) {
	settings, err := s.calendarRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, calendar.ErrSettingsNotFound) {
			return calendar.DefaultSettings(), nil
		}
		return calendar.Settings{}, err
	}
	return settings, nil
}

// buildRecord runs the full pipeline for one (employee, month): fetch
// inputs, aggregate, compute. The returned record has no ID or status yet.
func (s *PayrollServiceImpl) buildRecord(ctx context.Context, req payroll.GenerateSalaryRequest) (payroll.SalaryRecord, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.SalaryRecord{}, payroll.ErrEmployeeNotFound
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.BaseSalary.IsNegative() {
		return payroll.SalaryRecord{}, payroll.ErrNegativeBaseSalary
	}

	settings, err := s.loadCalendar(ctx)
	if err != nil {
		return payroll.SalaryRecord{}, fmt.Errorf("failed to load calendar settings: %w", err)
	}

	month := time.Month(req.Month)
	records, err := s.attendanceRepo.ListByEmployeeMonth(ctx, req.EmployeeID, req.Year, month)
	if err != nil {
		return payroll.SalaryRecord{}, fmt.Errorf("failed to load attendance records: %w", err)
	}

	summary := s.calculator.Aggregate(req.EmployeeID, req.Year, month, records, settings)

	allowances := payroll.Allowances{
		DA:    req.Allowances.DA,
		HRA:   req.Allowances.HRA,
		Other: req.Allowances.Other,
	}
	deductions := payroll.Deductions{
		IncomeTax:     req.Deductions.IncomeTax,
		ProvidentFund: req.Deductions.ProvidentFund,
		Other:         req.Deductions.Other,
	}

	breakdown, err := s.calculator.ComputeBreakdown(BreakdownInput{
		EmployeeID:      req.EmployeeID,
		Year:            req.Year,
		Month:           month,
		BaseSalary:      emp.BaseSalary,
		Summary:         summary,
		Calendar:        settings,
		HolidaysInMonth: settings.HolidaysInMonth(req.Year, month),
		Allowances:      allowances,
		Deductions:      deductions,
		IncludeHolidays: req.IncludeHolidays,
		OtherAllowance:  req.OtherAllowance,
		OtherDeductions: req.OtherDeductions,
	})
	if err != nil {
		return payroll.SalaryRecord{}, err
	}

	return payroll.SalaryRecord{
		EmployeeID:      req.EmployeeID,
		Year:            req.Year,
		Month:           month,
		BaseSalary:      emp.BaseSalary,
		Summary:         summary,
		Allowances:      allowances,
		Deductions:      deductions,
		IncludeHolidays: req.IncludeHolidays,
		Breakdown:       breakdown,
		Status:          payroll.SalaryStatusPending,
		Notes:           req.Notes,
		EmployeeName:    &emp.FullName,
	}, nil
}

func (s *PayrollServiceImpl) PreviewBreakdown(ctx context.Context, req payroll.GenerateSalaryRequest) (payroll.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	rec, err := s.buildRecord(ctx, req)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	return payroll.ToSalaryRecordResponse(rec), nil
}

func (s *PayrollServiceImpl) GenerateSalaryRecord(ctx context.Context, req payroll.GenerateSalaryRequest) (payroll.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	// Duplicate check up front for a clean error; the unique constraint
	// still backs this under concurrency.
	_, err := s.salaryRepo.GetByEmployeePeriod(ctx, req.EmployeeID, req.Year, time.Month(req.Month))
	if err == nil {
		return payroll.SalaryRecordResponse{}, payroll.ErrSalaryRecordExists
	}
	if !errors.Is(err, payroll.ErrSalaryRecordNotFound) {
		return payroll.SalaryRecordResponse{}, fmt.Errorf("failed to check existing salary record: %w", err)
	}

	rec, err := s.buildRecord(ctx, req)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	created, err := s.salaryRepo.Create(ctx, rec)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	return payroll.ToSalaryRecordResponse(created), nil
}

func (s *PayrollServiceImpl) GetSalaryRecord(ctx context.Context, id string) (payroll.SalaryRecordResponse, error) {
	rec, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	return payroll.ToSalaryRecordResponse(rec), nil
}

func (s *PayrollServiceImpl) ListSalaryRecords(ctx context.Context, filter payroll.SalaryFilter) (payroll.ListSalaryRecordResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, totalCount, err := s.salaryRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListSalaryRecordResponse{}, err
	}

	data := make([]payroll.SalaryRecordResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, payroll.ToSalaryRecordResponse(rec))
	}

	return payroll.ListSalaryRecordResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) RecalculateSalaryRecord(ctx context.Context, id string) (payroll.SalaryRecordResponse, error) {
	existing, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	if existing.Status != payroll.SalaryStatusPending {
		return payroll.SalaryRecordResponse{}, payroll.ErrSalaryRecordNotPending
	}

	// Re-run the one canonical formula over current attendance and calendar
	// data, keeping the record's stored adjustment inputs.
	req := payroll.GenerateSalaryRequest{
		EmployeeID: existing.EmployeeID,
		Year:       existing.Year,
		Month:      int(existing.Month),
		Allowances: payroll.AllowancesRequest{
			DA:    existing.Allowances.DA,
			HRA:   existing.Allowances.HRA,
			Other: existing.Allowances.Other,
		},
		Deductions: payroll.DeductionsRequest{
			IncomeTax:     existing.Deductions.IncomeTax,
			ProvidentFund: existing.Deductions.ProvidentFund,
			Other:         existing.Deductions.Other,
		},
		IncludeHolidays: existing.IncludeHolidays,
		OtherAllowance:  existing.Breakdown.OtherAllowance,
		OtherDeductions: existing.Breakdown.OtherDeductions,
		Notes:           existing.Notes,
	}

	fresh, err := s.buildRecord(ctx, req)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	fresh.ID = existing.ID

	updated, err := s.salaryRepo.UpdateBreakdown(ctx, fresh)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	return payroll.ToSalaryRecordResponse(updated), nil
}

func (s *PayrollServiceImpl) ApproveSalaryRecord(ctx context.Context, id string) (payroll.SalaryRecordResponse, error) {
	rec, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	if rec.Status != payroll.SalaryStatusPending {
		return payroll.SalaryRecordResponse{}, payroll.ErrSalaryRecordNotPending
	}

	if err := s.salaryRepo.UpdateStatus(ctx, id, payroll.SalaryStatusApproved, nil); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	return s.GetSalaryRecord(ctx, id)
}

func (s *PayrollServiceImpl) MarkSalaryRecordPaid(ctx context.Context, id string) (payroll.SalaryRecordResponse, error) {
	rec, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	if rec.Status != payroll.SalaryStatusApproved {
		return payroll.SalaryRecordResponse{}, payroll.ErrSalaryRecordNotApproved
	}

	now := time.Now().UTC()
	if err := s.salaryRepo.UpdateStatus(ctx, id, payroll.SalaryStatusPaid, &now); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	return s.GetSalaryRecord(ctx, id)
}

func (s *PayrollServiceImpl) DeleteSalaryRecord(ctx context.Context, id string) error {
	rec, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.Status != payroll.SalaryStatusPending {
		return payroll.ErrSalaryRecordNotPending
	}

	return s.salaryRepo.Delete(ctx, id)
}
