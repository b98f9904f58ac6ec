package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/garagedesk/garage-backend-go/internal/config"
	"github.com/garagedesk/garage-backend-go/internal/domain/booking"
)

// BookingJobs holds background work for the booking calendar.
type BookingJobs struct {
	bookingRepo booking.BookingRepository
	cfg         config.CronConfig
}

func NewBookingJobs(bookingRepo booking.BookingRepository, cfg config.CronConfig) *BookingJobs {
	return &BookingJobs{
		bookingRepo: bookingRepo,
		cfg:         cfg,
	}
}

func (j *BookingJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(Job{
		Name:     "booking_reminders",
		Interval: j.cfg.BookingReminderInterval,
		// Remind right away on boot so a restart never swallows the
		// current lead window.
		RunOnStart: true,
		Fn:         j.RemindUpcomingBookings,
	})
}

// RemindUpcomingBookings logs every scheduled booking that starts inside the
// lead window. The front desk display tails these entries.
func (j *BookingJobs) RemindUpcomingBookings(ctx context.Context) error {
	now := time.Now().UTC()
	upcoming, err := j.bookingRepo.ListStartingBetween(ctx, now, now.Add(j.cfg.BookingReminderLead))
	if err != nil {
		return fmt.Errorf("failed to list upcoming bookings: %w", err)
	}

	for _, b := range upcoming {
		slog.Info("Cron: Upcoming booking",
			"booking_id", b.ID,
			"customer", b.CustomerName,
			"vehicle_reg", b.VehicleReg,
			"service_type", b.ServiceType,
			"starts_in", b.ScheduledAt.Sub(now).Round(time.Minute),
		)
	}

	if len(upcoming) > 0 {
		slog.Info("Cron: Booking reminders sent", "count", len(upcoming))
	}
	return nil
}
