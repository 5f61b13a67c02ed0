package report

import (
	"bytes"
	"testing"

	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRun() payroll.RunResponse {
	return payroll.RunResponse{
		RunID:       "run-123",
		PeriodMonth: 6,
		PeriodYear:  2025,
		Results: []payroll.EmployeePayrollResponse{
			{
				EmployeeID: "E-001",
				Name:       "Sato Yuki",
				Paycheck: payroll.PaycheckResponse{
					WorkHours:       decimal.NewFromInt(160),
					OvertimeHours:   decimal.NewFromInt(10),
					GrossSalary:     decimal.NewFromInt(323438),
					IncomeTax:       decimal.NewFromInt(19908),
					TotalDeductions: decimal.NewFromInt(43680),
					NetSalary:       decimal.NewFromInt(279758),
				},
			},
			{
				EmployeeID: "E-002",
				Paycheck: payroll.PaycheckResponse{
					WorkHours:       decimal.NewFromInt(152),
					GrossSalary:     decimal.NewFromInt(280000),
					IncomeTax:       decimal.NewFromInt(14530),
					TotalDeductions: decimal.NewFromInt(35100),
					NetSalary:       decimal.NewFromInt(244900),
				},
			},
		},
	}
}

func TestReportService_BuildRegister(t *testing.T) {
	t.Parallel()
	svc := NewReportService()

	// Act
	reg := svc.BuildRegister(sampleRun())

	// Assert
	assert.Equal(t, "run-123", reg.RunID)
	assert.Equal(t, 6, reg.PeriodMonth)
	assert.Equal(t, 2025, reg.PeriodYear)
	require.Len(t, reg.Rows, 2)
	assert.Equal(t, "E-001", reg.Rows[0].EmployeeID)
	assert.Equal(t, "Sato Yuki", reg.Rows[0].Name)
	assert.True(t, reg.Rows[0].NetSalary.Equal(decimal.NewFromInt(279758)))

	assert.Equal(t, 2, reg.Totals.TotalEmployees)
	assert.True(t, reg.Totals.GrossSalary.Equal(decimal.NewFromInt(603438)), "gross total = %s", reg.Totals.GrossSalary)
	assert.True(t, reg.Totals.IncomeTax.Equal(decimal.NewFromInt(34438)), "tax total = %s", reg.Totals.IncomeTax)
	assert.True(t, reg.Totals.TotalDeductions.Equal(decimal.NewFromInt(78780)), "deduction total = %s", reg.Totals.TotalDeductions)
	assert.True(t, reg.Totals.NetSalary.Equal(decimal.NewFromInt(524658)), "net total = %s", reg.Totals.NetSalary)
}

func TestReportService_BuildRegister_EmptyRun(t *testing.T) {
	t.Parallel()
	svc := NewReportService()

	// Act
	reg := svc.BuildRegister(payroll.RunResponse{RunID: "run-empty", PeriodMonth: 1, PeriodYear: 2025})

	// Assert
	assert.Empty(t, reg.Rows)
	assert.Equal(t, 0, reg.Totals.TotalEmployees)
	assert.True(t, reg.Totals.GrossSalary.IsZero())
	assert.True(t, reg.Totals.NetSalary.IsZero())
}

func TestReportService_ExportXLSX(t *testing.T) {
	t.Parallel()
	svc := NewReportService()
	reg := svc.BuildRegister(sampleRun())

	// Act
	data, err := svc.ExportXLSX(reg)

	// Assert: the workbook opens and carries the register content
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Payroll Register", title)

	runID, err := f.GetCellValue("summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "run-123", runID)

	period, err := f.GetCellValue("summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "2025-06", period)

	firstEmployee, err := f.GetCellValue("rows", "A2")
	require.NoError(t, err)
	assert.Equal(t, "E-001", firstEmployee)

	firstNet, err := f.GetCellValue("rows", "H2")
	require.NoError(t, err)
	assert.Equal(t, "279758", firstNet)
}
