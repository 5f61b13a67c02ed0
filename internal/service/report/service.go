package report

import (
	"bytes"
	"fmt"

	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/payroll"
	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type ReportServiceImpl struct{}

func NewReportService() report.ReportService {
	return &ReportServiceImpl{}
}

// ========== REGISTER ==========

// BuildRegister flattens a completed run into register rows and sums
// the money columns. Warned employees have no paycheck and do not
// appear.
func (s *ReportServiceImpl) BuildRegister(run payroll.RunResponse) report.Register {
	reg := report.Register{
		RunID:       run.RunID,
		PeriodMonth: run.PeriodMonth,
		PeriodYear:  run.PeriodYear,
		Rows:        make([]report.RegisterRow, 0, len(run.Results)),
	}

	totals := report.RegisterTotals{
		GrossSalary:     decimal.Zero,
		IncomeTax:       decimal.Zero,
		TotalDeductions: decimal.Zero,
		NetSalary:       decimal.Zero,
	}

	for _, result := range run.Results {
		check := result.Paycheck
		reg.Rows = append(reg.Rows, report.RegisterRow{
			EmployeeID:      result.EmployeeID,
			Name:            result.Name,
			WorkHours:       check.WorkHours,
			OvertimeHours:   check.OvertimeHours,
			GrossSalary:     check.GrossSalary,
			IncomeTax:       check.IncomeTax,
			TotalDeductions: check.TotalDeductions,
			NetSalary:       check.NetSalary,
		})

		totals.TotalEmployees++
		totals.GrossSalary = totals.GrossSalary.Add(check.GrossSalary)
		totals.IncomeTax = totals.IncomeTax.Add(check.IncomeTax)
		totals.TotalDeductions = totals.TotalDeductions.Add(check.TotalDeductions)
		totals.NetSalary = totals.NetSalary.Add(check.NetSalary)
	}

	reg.Totals = totals
	return reg
}

// ========== XLSX EXPORT ==========

// ExportXLSX renders the register as a workbook with a summary sheet
// and a rows sheet.
func (s *ReportServiceImpl) ExportXLSX(reg report.Register) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summary := "summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, fmt.Errorf("failed to prepare summary sheet: %w", err)
	}

	_ = f.SetCellValue(summary, "A1", "Payroll Register")
	_ = f.SetCellValue(summary, "A2", "Run ID")
	_ = f.SetCellValue(summary, "B2", reg.RunID)
	_ = f.SetCellValue(summary, "A3", "Period")
	_ = f.SetCellValue(summary, "B3", fmt.Sprintf("%04d-%02d", reg.PeriodYear, reg.PeriodMonth))
	_ = f.SetCellValue(summary, "A4", "Employees")
	_ = f.SetCellValue(summary, "B4", reg.Totals.TotalEmployees)
	_ = f.SetCellValue(summary, "A5", "Total Gross")
	_ = f.SetCellValue(summary, "B5", reg.Totals.GrossSalary.String())
	_ = f.SetCellValue(summary, "A6", "Total Income Tax")
	_ = f.SetCellValue(summary, "B6", reg.Totals.IncomeTax.String())
	_ = f.SetCellValue(summary, "A7", "Total Deductions")
	_ = f.SetCellValue(summary, "B7", reg.Totals.TotalDeductions.String())
	_ = f.SetCellValue(summary, "A8", "Total Net")
	_ = f.SetCellValue(summary, "B8", reg.Totals.NetSalary.String())

	rows := "rows"
	if _, err := f.NewSheet(rows); err != nil {
		return nil, fmt.Errorf("failed to create rows sheet: %w", err)
	}

	headers := []string{"Employee ID", "Name", "Work Hours", "Overtime Hours", "Gross Salary", "Income Tax", "Total Deductions", "Net Salary"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to place header %q: %w", h, err)
		}
		_ = f.SetCellValue(rows, cell, h)
	}

	for i, row := range reg.Rows {
		r := i + 2
		_ = f.SetCellValue(rows, fmt.Sprintf("A%d", r), row.EmployeeID)
		_ = f.SetCellValue(rows, fmt.Sprintf("B%d", r), row.Name)
		_ = f.SetCellValue(rows, fmt.Sprintf("C%d", r), row.WorkHours.String())
		_ = f.SetCellValue(rows, fmt.Sprintf("D%d", r), row.OvertimeHours.String())
		_ = f.SetCellValue(rows, fmt.Sprintf("E%d", r), row.GrossSalary.String())
		_ = f.SetCellValue(rows, fmt.Sprintf("F%d", r), row.IncomeTax.String())
		_ = f.SetCellValue(rows, fmt.Sprintf("G%d", r), row.TotalDeductions.String())
		_ = f.SetCellValue(rows, fmt.Sprintf("H%d", r), row.NetSalary.String())
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
