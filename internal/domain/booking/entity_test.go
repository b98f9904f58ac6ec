package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func slot(start string, minutes int) Booking {
	t, _ := time.Parse(time.RFC3339, start)
	return Booking{ScheduledAt: t, DurationMinutes: minutes}
}

func TestBookingOverlaps(t *testing.T) {
	base := slot("2026-03-02T09:00:00Z", 60)

	tests := []struct {
		name  string
		other Booking
		want  bool
	}{
		{"identical window", slot("2026-03-02T09:00:00Z", 60), true},
		{"starts inside", slot("2026-03-02T09:30:00Z", 60), true},
		{"ends inside", slot("2026-03-02T08:30:00Z", 60), true},
		{"contains", slot("2026-03-02T08:00:00Z", 180), true},
		{"back to back after", slot("2026-03-02T10:00:00Z", 60), false},
		{"back to back before", slot("2026-03-02T08:00:00Z", 60), false},
		{"different day", slot("2026-03-03T09:00:00Z", 60), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap should be symmetric")
		})
	}
}

func TestBookingEnd(t *testing.T) {
	b := slot("2026-03-02T09:00:00Z", 90)
	want, _ := time.Parse(time.RFC3339, "2026-03-02T10:30:00Z")
	assert.Equal(t, want, b.End())
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusScheduled, StatusInProgress))
	assert.True(t, CanTransition(StatusScheduled, StatusCancelled))
	assert.True(t, CanTransition(StatusScheduled, StatusNoShow))
	assert.True(t, CanTransition(StatusInProgress, StatusCompleted))
	assert.True(t, CanTransition(StatusInProgress, StatusCancelled))

	assert.False(t, CanTransition(StatusScheduled, StatusCompleted))
	assert.False(t, CanTransition(StatusInProgress, StatusNoShow))
	assert.False(t, CanTransition(StatusScheduled, StatusScheduled))

	// terminal states allow nothing
	for _, from := range []Status{StatusCompleted, StatusCancelled, StatusNoShow} {
		for _, to := range []Status{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow} {
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}
