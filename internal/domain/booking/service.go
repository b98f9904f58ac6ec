package booking

import "context"

// BookingService defines business logic for the booking calendar.
type BookingService interface {
	// CreateBooking schedules an appointment; rejects mechanic double-booking.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (BookingResponse, error)

	GetBooking(ctx context.Context, id string) (BookingResponse, error)
	ListBookings(ctx context.Context, filter ListBookingFilter) ([]BookingResponse, error)

	// UpdateBooking edits an appointment that has not started yet.
	UpdateBooking(ctx context.Context, req UpdateBookingRequest) (BookingResponse, error)

	// TransitionBooking moves a booking through its status flow.
	TransitionBooking(ctx context.Context, req TransitionRequest) (BookingResponse, error)
}
