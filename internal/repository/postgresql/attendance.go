package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/garagedesk/garage-backend-go/internal/domain/attendance"
	"github.com/garagedesk/garage-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_id, date, status, present_day_type, leave_type,
	absence_paid, absence_reason, leave_reason, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.DailyRecord, error) {
	var rec attendance.DailyRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.PresentDayType,
		&rec.LeaveType, &rec.AbsencePaid, &rec.AbsenceReason, &rec.LeaveReason,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.DailyRecord) (attendance.DailyRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, date, status, present_day_type, leave_type,
			absence_paid, absence_reason, leave_reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			present_day_type = EXCLUDED.present_day_type,
			leave_type = EXCLUDED.leave_type,
			absence_paid = EXCLUDED.absence_paid,
			absence_reason = EXCLUDED.absence_reason,
			leave_reason = EXCLUDED.leave_reason,
			updated_at = NOW()
		RETURNING ` + attendanceColumns

	saved, err := scanAttendance(q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Date, rec.Status, rec.PresentDayType, rec.LeaveType,
		rec.AbsencePaid, rec.AbsenceReason, rec.LeaveReason,
	))
	if err != nil {
		return attendance.DailyRecord{}, err
	}
	return saved, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.DailyRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DailyRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.DailyRecord{}, err
	}
	return rec, nil
}

// ListByEmployeeMonth implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.DailyRecord, error) {
	q := GetQuerier(ctx, a.db)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.DailyRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.DailyRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT r.id, r.employee_id, r.date, r.status, r.present_day_type, r.leave_type,
			r.absence_paid, r.absence_reason, r.leave_reason, r.created_at, r.updated_at,
			e.full_name
		FROM attendance_records r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.date = $1
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.DailyRecord
	for rows.Next() {
		var rec attendance.DailyRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.PresentDayType,
			&rec.LeaveType, &rec.AbsencePaid, &rec.AbsenceReason, &rec.LeaveReason,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}
