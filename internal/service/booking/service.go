package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/garagedesk/garage-backend-go/internal/domain/booking"
	"github.com/garagedesk/garage-backend-go/internal/domain/employee"
	"github.com/garagedesk/garage-backend-go/internal/pkg/database"
)

type BookingServiceImpl struct {
	db           *database.DB
	bookingRepo  booking.BookingRepository
	employeeRepo employee.EmployeeRepository
}

func NewBookingService(
	db *database.DB,
	bookingRepo booking.BookingRepository,
	employeeRepo employee.EmployeeRepository,
) booking.BookingService {
	return &BookingServiceImpl{
		db:           db,
		bookingRepo:  bookingRepo,
		employeeRepo: employeeRepo,
	}
}

// checkMechanic validates the mechanic exists, is active, and has no booking
// overlapping the candidate window. excludeID skips the booking being edited.
func (s *BookingServiceImpl) checkMechanic(ctx context.Context, candidate booking.Booking, excludeID string) error {
	if candidate.MechanicID == nil {
		return nil
	}

	mech, err := s.employeeRepo.GetByID(ctx, *candidate.MechanicID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return booking.ErrMechanicNotFound
		}
		return fmt.Errorf("failed to get mechanic: %w", err)
	}
	if !mech.IsActive {
		return booking.ErrMechanicNotFound
	}

	existing, err := s.bookingRepo.ListActiveByMechanic(ctx, *candidate.MechanicID, candidate.ScheduledAt, candidate.End())
	if err != nil {
		return fmt.Errorf("failed to list mechanic bookings: %w", err)
	}
	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}
		if candidate.Overlaps(other) {
			return booking.ErrMechanicDoubleBooked
		}
	}
	return nil
}

func (s *BookingServiceImpl) CreateBooking(ctx context.Context, req booking.CreateBookingRequest) (booking.BookingResponse, error) {
	if err := req.Validate(); err != nil {
		return booking.BookingResponse{}, err
	}

	scheduledAt, _ := time.Parse(time.RFC3339, req.ScheduledAt)

	b := booking.Booking{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		VehicleReg:      req.VehicleReg,
		ServiceType:     req.ServiceType,
		ScheduledAt:     scheduledAt,
		DurationMinutes: req.DurationMinutes,
		MechanicID:      req.MechanicID,
		Status:          booking.StatusScheduled,
		Notes:           req.Notes,
	}

	if err := s.checkMechanic(ctx, b, ""); err != nil {
		return booking.BookingResponse{}, err
	}

	created, err := s.bookingRepo.Create(ctx, b)
	if err != nil {
		return booking.BookingResponse{}, err
	}
	return booking.ToBookingResponse(created), nil
}

func (s *BookingServiceImpl) GetBooking(ctx context.Context, id string) (booking.BookingResponse, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return booking.BookingResponse{}, err
	}
	return booking.ToBookingResponse(b), nil
}

func (s *BookingServiceImpl) ListBookings(ctx context.Context, filter booking.ListBookingFilter) ([]booking.BookingResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]booking.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, booking.ToBookingResponse(b))
	}
	return result, nil
}

func (s *BookingServiceImpl) UpdateBooking(ctx context.Context, req booking.UpdateBookingRequest) (booking.BookingResponse, error) {
	if err := req.Validate(); err != nil {
		return booking.BookingResponse{}, err
	}

	b, err := s.bookingRepo.GetByID(ctx, req.ID)
	if err != nil {
		return booking.BookingResponse{}, err
	}
	if b.Status != booking.StatusScheduled {
		return booking.BookingResponse{}, booking.ErrBookingNotEditable
	}

	if req.CustomerName != nil {
		b.CustomerName = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		b.CustomerPhone = *req.CustomerPhone
	}
	if req.VehicleReg != nil {
		b.VehicleReg = *req.VehicleReg
	}
	if req.ServiceType != nil {
		b.ServiceType = *req.ServiceType
	}
	if req.ScheduledAt != nil {
		scheduledAt, _ := time.Parse(time.RFC3339, *req.ScheduledAt)
		b.ScheduledAt = scheduledAt
	}
	if req.DurationMinutes != nil {
		b.DurationMinutes = *req.DurationMinutes
	}
	if req.MechanicID != nil {
		// Empty string unassigns the mechanic.
		if *req.MechanicID == "" {
			b.MechanicID = nil
		} else {
			b.MechanicID = req.MechanicID
		}
	}
	if req.Notes != nil {
		b.Notes = req.Notes
	}

	if err := s.checkMechanic(ctx, b, b.ID); err != nil {
		return booking.BookingResponse{}, err
	}

	updated, err := s.bookingRepo.Update(ctx, b)
	if err != nil {
		return booking.BookingResponse{}, err
	}
	return booking.ToBookingResponse(updated), nil
}

func (s *BookingServiceImpl) TransitionBooking(ctx context.Context, req booking.TransitionRequest) (booking.BookingResponse, error) {
	if err := req.Validate(); err != nil {
		return booking.BookingResponse{}, err
	}

	b, err := s.bookingRepo.GetByID(ctx, req.ID)
	if err != nil {
		return booking.BookingResponse{}, err
	}

	target := booking.Status(req.Status)
	if !booking.CanTransition(b.Status, target) {
		return booking.BookingResponse{}, booking.ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, b.ID, target); err != nil {
		return booking.BookingResponse{}, err
	}

	b.Status = target
	return booking.ToBookingResponse(b), nil
}
