package booking

import (
	"context"
	"time"
)

// BookingRepository defines data access methods for service-bay bookings.
type BookingRepository interface {
	Create(ctx context.Context, b Booking) (Booking, error)
	GetByID(ctx context.Context, id string) (Booking, error)
	List(ctx context.Context, filter ListBookingFilter) ([]Booking, error)

	// ListActiveByMechanic returns the mechanic's scheduled and in-progress
	// bookings inside [from, to), used for double-booking checks.
	ListActiveByMechanic(ctx context.Context, mechanicID string, from, to time.Time) ([]Booking, error)

	// ListStartingBetween returns scheduled bookings whose start falls inside
	// [from, to), used by the reminder job.
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]Booking, error)

	Update(ctx context.Context, b Booking) (Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
