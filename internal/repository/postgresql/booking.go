package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/garagedesk/garage-backend-go/internal/domain/booking"
	"github.com/garagedesk/garage-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type bookingRepositoryImpl struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) booking.BookingRepository {
	return &bookingRepositoryImpl{db: db}
}

const bookingColumns = `id, customer_name, customer_phone, vehicle_reg, service_type,
	scheduled_at, duration_minutes, mechanic_id, status, notes, created_at, updated_at`

func scanBooking(row pgx.Row) (booking.Booking, error) {
	var b booking.Booking
	err := row.Scan(
		&b.ID, &b.CustomerName, &b.CustomerPhone, &b.VehicleReg, &b.ServiceType,
		&b.ScheduledAt, &b.DurationMinutes, &b.MechanicID, &b.Status, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// Create implements booking.BookingRepository.
func (r *bookingRepositoryImpl) Create(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bookings (
			customer_name, customer_phone, vehicle_reg, service_type,
			scheduled_at, duration_minutes, mechanic_id, status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + bookingColumns

	created, err := scanBooking(q.QueryRow(ctx, query,
		b.CustomerName, b.CustomerPhone, b.VehicleReg, b.ServiceType,
		b.ScheduledAt, b.DurationMinutes, b.MechanicID, b.Status, b.Notes,
	))
	if err != nil {
		return booking.Booking{}, err
	}
	return created, nil
}

// GetByID implements booking.BookingRepository.
func (r *bookingRepositoryImpl) GetByID(ctx context.Context, id string) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.customer_name, b.customer_phone, b.vehicle_reg, b.service_type,
			b.scheduled_at, b.duration_minutes, b.mechanic_id, b.status, b.notes,
			b.created_at, b.updated_at, e.full_name
		FROM bookings b
		LEFT JOIN employees e ON e.id = b.mechanic_id
		WHERE b.id = $1
	`

	var b booking.Booking
	err := q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.CustomerName, &b.CustomerPhone, &b.VehicleReg, &b.ServiceType,
		&b.ScheduledAt, &b.DurationMinutes, &b.MechanicID, &b.Status, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt, &b.MechanicName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return booking.Booking{}, booking.ErrBookingNotFound
		}
		return booking.Booking{}, err
	}
	return b, nil
}

// List implements booking.BookingRepository.
func (r *bookingRepositoryImpl) List(ctx context.Context, filter booking.ListBookingFilter) ([]booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.customer_name, b.customer_phone, b.vehicle_reg, b.service_type,
			b.scheduled_at, b.duration_minutes, b.mechanic_id, b.status, b.notes,
			b.created_at, b.updated_at, e.full_name
		FROM bookings b
		LEFT JOIN employees e ON e.id = b.mechanic_id
		WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.From != nil {
		query += fmt.Sprintf(` AND b.scheduled_at >= $%d`, argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(` AND b.scheduled_at < $%d`, argPos)
		args = append(args, *filter.To)
		argPos++
	}
	if filter.MechanicID != nil {
		query += fmt.Sprintf(` AND b.mechanic_id = $%d`, argPos)
		args = append(args, *filter.MechanicID)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(` AND b.status = $%d`, argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	query += ` ORDER BY b.scheduled_at ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []booking.Booking
	for rows.Next() {
		var b booking.Booking
		err := rows.Scan(
			&b.ID, &b.CustomerName, &b.CustomerPhone, &b.VehicleReg, &b.ServiceType,
			&b.ScheduledAt, &b.DurationMinutes, &b.MechanicID, &b.Status, &b.Notes,
			&b.CreatedAt, &b.UpdatedAt, &b.MechanicName,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// ListActiveByMechanic implements booking.BookingRepository.
func (r *bookingRepositoryImpl) ListActiveByMechanic(ctx context.Context, mechanicID string, from, to time.Time) ([]booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	// The window check is widened in SQL so that bookings straddling the
	// boundaries are still returned; the exact overlap test runs in code.
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE mechanic_id = $1
			AND status IN ('scheduled', 'in_progress')
			AND scheduled_at < $3
			AND scheduled_at + make_interval(mins => duration_minutes) > $2
		ORDER BY scheduled_at ASC
	`

	rows, err := q.Query(ctx, query, mechanicID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// ListStartingBetween implements booking.BookingRepository.
func (r *bookingRepositoryImpl) ListStartingBetween(ctx context.Context, from, to time.Time) ([]booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = 'scheduled' AND scheduled_at >= $1 AND scheduled_at < $2
		ORDER BY scheduled_at ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// Update implements booking.BookingRepository.
func (r *bookingRepositoryImpl) Update(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bookings
		SET customer_name = $1, customer_phone = $2, vehicle_reg = $3, service_type = $4,
			scheduled_at = $5, duration_minutes = $6, mechanic_id = $7, notes = $8,
			updated_at = NOW()
		WHERE id = $9
		RETURNING ` + bookingColumns

	updated, err := scanBooking(q.QueryRow(ctx, query,
		b.CustomerName, b.CustomerPhone, b.VehicleReg, b.ServiceType,
		b.ScheduledAt, b.DurationMinutes, b.MechanicID, b.Notes, b.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return booking.Booking{}, booking.ErrBookingNotFound
		}
		return booking.Booking{}, err
	}
	return updated, nil
}

// UpdateStatus implements booking.BookingRepository.
func (r *bookingRepositoryImpl) UpdateStatus(ctx context.Context, id string, status booking.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return booking.ErrBookingNotFound
		}
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	return nil
}
