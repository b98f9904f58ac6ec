package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func validRequest() MarkAttendanceRequest {
	return MarkAttendanceRequest{
		EmployeeID: "5f8b8b8b-0000-0000-0000-000000000001",
		Date:       "2026-04-06",
		Status:     "present",
	}
}

func TestMarkAttendanceRequestValidate(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())
}

func TestMarkAttendanceRequestRequiredFields(t *testing.T) {
	req := MarkAttendanceRequest{}
	err := req.Validate()
	assert.Error(t, err)

	req = validRequest()
	req.EmployeeID = "not-a-uuid"
	assert.Error(t, req.Validate())

	req = validRequest()
	req.Date = "06-04-2026"
	assert.Error(t, req.Validate())

	req = validRequest()
	req.Status = "vacation"
	assert.Error(t, req.Validate())
}

func TestMarkAttendanceRequestVariantFields(t *testing.T) {
	// present accepts a day type
	req := validRequest()
	req.PresentDayType = strPtr("half")
	assert.NoError(t, req.Validate())

	req.PresentDayType = strPtr("threequarter")
	assert.Error(t, req.Validate())

	// leave accepts a leave type
	req = validRequest()
	req.Status = "leave"
	req.LeaveType = strPtr("unpaid")
	assert.NoError(t, req.Validate())

	req.LeaveType = strPtr("half_paid")
	assert.Error(t, req.Validate())

	// variant fields on the wrong status are rejected
	req = validRequest()
	req.Status = "absent"
	req.PresentDayType = strPtr("full")
	assert.Error(t, req.Validate())

	req = validRequest()
	req.Status = "present"
	req.LeaveType = strPtr("paid")
	assert.Error(t, req.Validate())
}

func TestMonthFilterValidate(t *testing.T) {
	const empID = "5f8b8b8b-0000-0000-0000-000000000001"

	f := MonthFilter{EmployeeID: empID, Year: 2026, Month: 4}
	assert.NoError(t, f.Validate())

	f = MonthFilter{EmployeeID: "", Year: 2026, Month: 4}
	assert.Error(t, f.Validate())

	f = MonthFilter{EmployeeID: "emp-1", Year: 2026, Month: 4}
	assert.Error(t, f.Validate())

	f = MonthFilter{EmployeeID: empID, Year: 2026, Month: 13}
	assert.Error(t, f.Validate())

	f = MonthFilter{EmployeeID: empID, Year: 1999, Month: 4}
	assert.Error(t, f.Validate())
}
