package booking

import (
	"time"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

func ValidStatuses() []string {
	return []string{
		string(StatusScheduled),
		string(StatusInProgress),
		string(StatusCompleted),
		string(StatusCancelled),
		string(StatusNoShow),
	}
}

// allowedTransitions maps each status to the statuses it may move to.
var allowedTransitions = map[Status][]Status{
	StatusScheduled:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether a booking may move from one status to
// another. Completed, cancelled and no-show are terminal.
func CanTransition(from, to Status) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Booking is one service-bay appointment.
type Booking struct {
	ID              string
	CustomerName    string
	CustomerPhone   string
	VehicleReg      string
	ServiceType     string
	ScheduledAt     time.Time
	DurationMinutes int
	MechanicID      *string
	Status          Status
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	MechanicName *string
}

// End returns the scheduled end of the appointment.
func (b Booking) End() time.Time {
	return b.ScheduledAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// Overlaps reports whether two bookings occupy overlapping time windows.
func (b Booking) Overlaps(other Booking) bool {
	return b.ScheduledAt.Before(other.End()) && other.ScheduledAt.Before(b.End())
}
