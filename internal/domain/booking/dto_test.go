package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCreateRequest() CreateBookingRequest {
	return CreateBookingRequest{
		CustomerName:    "R. Okello",
		CustomerPhone:   "0812345678",
		VehicleReg:      "UBG 123X",
		ServiceType:     "full_service",
		ScheduledAt:     "2026-04-06T09:00:00Z",
		DurationMinutes: 60,
	}
}

func TestCreateBookingRequestValidate(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())

	req = CreateBookingRequest{}
	assert.Error(t, req.Validate())

	req = validCreateRequest()
	req.ScheduledAt = "2026-04-06"
	assert.Error(t, req.Validate())

	req = validCreateRequest()
	req.DurationMinutes = 5
	assert.Error(t, req.Validate())
}

func TestCreateBookingRequestMechanicID(t *testing.T) {
	mechID := "5f8b8b8b-0000-0000-0000-000000000002"
	req := validCreateRequest()
	req.MechanicID = &mechID
	assert.NoError(t, req.Validate())

	bad := "mech-1"
	req.MechanicID = &bad
	assert.Error(t, req.Validate())
}

func TestUpdateBookingRequestMechanicID(t *testing.T) {
	bad := "mech-1"
	req := UpdateBookingRequest{ID: "b-1", MechanicID: &bad}
	assert.Error(t, req.Validate())

	mechID := "5f8b8b8b-0000-0000-0000-000000000002"
	req = UpdateBookingRequest{ID: "b-1", MechanicID: &mechID}
	assert.NoError(t, req.Validate())
}
