package payslip

import (
	"testing"

	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() payroll.EmployeePayrollResponse {
	return payroll.EmployeePayrollResponse{
		EmployeeID: "E-001",
		Name:       "Sato Yuki",
		Paycheck: payroll.PaycheckResponse{
			BaseSalary:          decimal.NewFromInt(300000),
			OvertimePay:         decimal.NewFromInt(23438),
			GrossSalary:         decimal.NewFromInt(323438),
			HealthInsurance:     decimal.NewFromInt(8005),
			PensionInsurance:    decimal.NewFromInt(14797),
			EmploymentInsurance: decimal.NewFromInt(970),
			IncomeTax:           decimal.NewFromInt(19908),
			TotalDeductions:     decimal.NewFromInt(43680),
			NetSalary:           decimal.NewFromInt(279758),
			WorkHours:           decimal.NewFromInt(160),
			OvertimeHours:       decimal.NewFromInt(10),
		},
	}
}

func TestRender_ContainsBreakdown(t *testing.T) {
	t.Parallel()

	// Act
	out := Render(sampleResult(), 6, 2025, "JPY")

	// Assert
	assert.Contains(t, out, "PAYSLIP 2025-06")
	assert.Contains(t, out, "Sato Yuki (E-001)")
	assert.Contains(t, out, "300,000 JPY")
	assert.Contains(t, out, "323,438 JPY")
	assert.Contains(t, out, "43,680 JPY")
	assert.Contains(t, out, "279,758 JPY")
	assert.Contains(t, out, "work=160 overtime=10")
}

func TestRender_WithoutName(t *testing.T) {
	t.Parallel()
	result := sampleResult()
	result.Name = ""

	// Act
	out := Render(result, 6, 2025, "JPY")

	// Assert
	assert.Contains(t, out, "Employee: E-001\n")
	assert.NotContains(t, out, "()")
}

func TestBuildPDF_ProducesDocument(t *testing.T) {
	t.Parallel()

	// Act
	data, err := BuildPDF(sampleResult(), 6, 2025, "JPY")

	// Assert
	require.NoError(t, err)
	require.Greater(t, len(data), 500)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"23438", "23,438"},
		{"1234567", "1,234,567"},
		{"-5000", "-5,000"},
		{"23437.5", "23,437.5"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := formatAmount(decimal.RequireFromString(tt.in))
			assert.Equal(t, tt.want, got)
		})
	}
}
