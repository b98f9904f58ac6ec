package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validGenerateRequest() GenerateSalaryRequest {
	return GenerateSalaryRequest{
		EmployeeID: "5f8b8b8b-0000-0000-0000-000000000001",
		Year:       2026,
		Month:      4,
	}
}

func TestGenerateSalaryRequestValidate(t *testing.T) {
	req := validGenerateRequest()
	assert.NoError(t, req.Validate())

	req = GenerateSalaryRequest{}
	assert.Error(t, req.Validate())

	req = validGenerateRequest()
	req.EmployeeID = "emp-1"
	assert.Error(t, req.Validate())

	req = validGenerateRequest()
	req.Month = 0
	assert.Error(t, req.Validate())

	req = validGenerateRequest()
	req.Year = 1980
	assert.Error(t, req.Validate())

	req = validGenerateRequest()
	req.Deductions.IncomeTax = decimal.NewFromInt(-1)
	assert.Error(t, req.Validate())
}
