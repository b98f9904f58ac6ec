package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/garagedesk/garage-backend-go/internal/domain/booking"
	"github.com/garagedesk/garage-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BookingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Transition(w http.ResponseWriter, r *http.Request)
}

type BookingHandlerImpl struct {
	bookingService booking.BookingService
}

func NewBookingHandler(bookingService booking.BookingService) BookingHandler {
	return &BookingHandlerImpl{bookingService: bookingService}
}

// Create implements BookingHandler.
func (h *BookingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req booking.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateBooking decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	b, err := h.bookingService.CreateBooking(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Booking created successfully", b)
}

// GetByID implements BookingHandler.
func (h *BookingHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Booking ID is required", nil)
		return
	}

	b, err := h.bookingService.GetBooking(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, b)
}

// List implements BookingHandler.
func (h *BookingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := booking.ListBookingFilter{}
	if from, err := time.Parse(time.RFC3339, query.Get("from")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse(time.RFC3339, query.Get("to")); err == nil {
		filter.To = &to
	}
	if mechanicID := query.Get("mechanic_id"); mechanicID != "" {
		filter.MechanicID = &mechanicID
	}
	if status := query.Get("status"); status != "" {
		filter.Status = &status
	}

	bookings, err := h.bookingService.ListBookings(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, bookings)
}

// Update implements BookingHandler.
func (h *BookingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Booking ID is required", nil)
		return
	}

	var req booking.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateBooking decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	b, err := h.bookingService.UpdateBooking(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Booking updated successfully", b)
}

// Transition implements BookingHandler.
func (h *BookingHandlerImpl) Transition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Booking ID is required", nil)
		return
	}

	var req booking.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("TransitionBooking decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	b, err := h.bookingService.TransitionBooking(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Booking status updated successfully", b)
}
