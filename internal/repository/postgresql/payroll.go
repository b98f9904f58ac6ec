package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/garagedesk/garage-backend-go/internal/domain/payroll"
	"github.com/garagedesk/garage-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) payroll.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salaryColumns = `id, employee_id, year, month, base_salary, summary, allowances,
	deductions, include_holidays, breakdown, status, paid_at, notes, created_at, updated_at`

func scanSalaryRecord(row pgx.Row) (payroll.SalaryRecord, error) {
	var rec payroll.SalaryRecord
	var summaryBytes, allowancesBytes, deductionsBytes, breakdownBytes []byte

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Year, &rec.Month, &rec.BaseSalary,
		&summaryBytes, &allowancesBytes, &deductionsBytes, &rec.IncludeHolidays,
		&breakdownBytes, &rec.Status, &rec.PaidAt, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return payroll.SalaryRecord{}, err
	}

	_ = json.Unmarshal(summaryBytes, &rec.Summary)
	_ = json.Unmarshal(allowancesBytes, &rec.Allowances)
	_ = json.Unmarshal(deductionsBytes, &rec.Deductions)
	_ = json.Unmarshal(breakdownBytes, &rec.Breakdown)

	return rec, nil
}

func marshalSalaryDetails(rec payroll.SalaryRecord) (summary, allowances, deductions, breakdown []byte) {
	summary, _ = json.Marshal(rec.Summary)
	allowances, _ = json.Marshal(rec.Allowances)
	deductions, _ = json.Marshal(rec.Deductions)
	breakdown, _ = json.Marshal(rec.Breakdown)
	return
}

// Create implements payroll.SalaryRepository.
func (r *salaryRepositoryImpl) Create(ctx context.Context, rec payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM salary_records WHERE employee_id = $1 AND year = $2 AND month = $3)`,
		rec.EmployeeID, rec.Year, rec.Month,
	).Scan(&exists)
	if err != nil {
		return payroll.SalaryRecord{}, fmt.Errorf("failed to check salary record: %w", err)
	}
	if exists {
		return payroll.SalaryRecord{}, payroll.ErrSalaryRecordExists
	}

	summaryJSON, allowancesJSON, deductionsJSON, breakdownJSON := marshalSalaryDetails(rec)

	query := `
		INSERT INTO salary_records (
			employee_id, year, month, base_salary, summary, allowances,
			deductions, include_holidays, breakdown, status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + salaryColumns

	created, err := scanSalaryRecord(q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Year, rec.Month, rec.BaseSalary, summaryJSON, allowancesJSON,
		deductionsJSON, rec.IncludeHolidays, breakdownJSON, rec.Status, rec.Notes,
	))
	if err != nil {
		return payroll.SalaryRecord{}, err
	}
	return created, nil
}

// GetByID implements payroll.SalaryRepository.
func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salary_records WHERE id = $1`

	rec, err := scanSalaryRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
		}
		return payroll.SalaryRecord{}, err
	}
	return rec, nil
}

// GetByEmployeePeriod implements payroll.SalaryRepository.
func (r *salaryRepositoryImpl) GetByEmployeePeriod(ctx context.Context, employeeID string, year int, month time.Month) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salary_records WHERE employee_id = $1 AND year = $2 AND month = $3`

	rec, err := scanSalaryRecord(q.QueryRow(ctx, query, employeeID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
		}
		return payroll.SalaryRecord{}, err
	}
	return rec, nil
}

// List implements payroll.SalaryRepository.
func (r *salaryRepositoryImpl) List(ctx context.Context, filter payroll.SalaryFilter) ([]payroll.SalaryRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Year != nil {
		where += fmt.Sprintf(` AND s.year = $%d`, argPos)
		args = append(args, *filter.Year)
		argPos++
	}
	if filter.Month != nil {
		where += fmt.Sprintf(` AND s.month = $%d`, argPos)
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(` AND s.status = $%d`, argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.EmployeeID != nil {
		where += fmt.Sprintf(` AND s.employee_id = $%d`, argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM salary_records s` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary records: %w", err)
	}

	query := `
		SELECT s.id, s.employee_id, s.year, s.month, s.base_salary, s.summary, s.allowances,
			s.deductions, s.include_holidays, s.breakdown, s.status, s.paid_at, s.notes,
			s.created_at, s.updated_at, e.full_name
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id` + where + `
		ORDER BY s.year DESC, s.month DESC, e.full_name ASC`

	query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []payroll.SalaryRecord
	for rows.Next() {
		var rec payroll.SalaryRecord
		var summaryBytes, allowancesBytes, deductionsBytes, breakdownBytes []byte
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Year, &rec.Month, &rec.BaseSalary,
			&summaryBytes, &allowancesBytes, &deductionsBytes, &rec.IncludeHolidays,
			&breakdownBytes, &rec.Status, &rec.PaidAt, &rec.Notes,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
		)
		if err != nil {
			return nil, 0, err
		}

		_ = json.Unmarshal(summaryBytes, &rec.Summary)
		_ = json.Unmarshal(allowancesBytes, &rec.Allowances)
		_ = json.Unmarshal(deductionsBytes, &rec.Deductions)
		_ = json.Unmarshal(breakdownBytes, &rec.Breakdown)

		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// UpdateBreakdown implements payroll.SalaryRepository.
func (r *salaryRepositoryImpl) UpdateBreakdown(ctx context.Context, rec payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	summaryJSON, allowancesJSON, deductionsJSON, breakdownJSON := marshalSalaryDetails(rec)

	query := `
		UPDATE salary_records
		SET base_salary = $1, summary = $2, allowances = $3, deductions = $4,
			include_holidays = $5, breakdown = $6, notes = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + salaryColumns

	updated, err := scanSalaryRecord(q.QueryRow(ctx, query,
		rec.BaseSalary, summaryJSON, allowancesJSON, deductionsJSON,
		rec.IncludeHolidays, breakdownJSON, rec.Notes, rec.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
		}
		return payroll.SalaryRecord{}, err
	}
	return updated, nil
}

// UpdateStatus implements payroll.SalaryRepository.
func (r *salaryRepositoryImpl) UpdateStatus(ctx context.Context, id string, status payroll.SalaryStatus, paidAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_records
		SET status = $1, paid_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, paidAt, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrSalaryRecordNotFound
		}
		return fmt.Errorf("failed to update salary record status: %w", err)
	}
	return nil
}

// Delete implements payroll.SalaryRepository.
func (r *salaryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salary_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrSalaryRecordNotFound
	}
	return nil
}
