package booking

import "errors"

// Booking domain errors
var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingNotEditable   = errors.New("only scheduled bookings can be edited")
	ErrMechanicDoubleBooked = errors.New("mechanic already has a booking in this time slot")
	ErrInvalidTransition    = errors.New("booking status transition not allowed")
	ErrMechanicNotFound     = errors.New("mechanic not found")
)
