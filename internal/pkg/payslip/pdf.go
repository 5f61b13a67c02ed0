package payslip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// BuildPDF renders a single-page A4 payslip for one computed employee.
func BuildPDF(result payroll.EmployeePayrollResponse, periodMonth, periodYear int, currency string) ([]byte, error) {
	check := result.Paycheck

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %04d-%02d", periodYear, periodMonth))
	pdf.Ln(7)
	if result.Name != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Employee: %s (%s)", result.Name, result.EmployeeID))
	} else {
		pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", result.EmployeeID))
	}
	pdf.Ln(10)

	writeHeading(pdf, "Earnings")
	writeRow(pdf, "Base Salary", check.BaseSalary, currency)
	writeRow(pdf, "Overtime Pay", check.OvertimePay, currency)
	writeRow(pdf, "Night Pay", check.NightPay, currency)
	writeRow(pdf, "Holiday Pay", check.HolidayPay, currency)
	writeRow(pdf, "Transport Allowance", check.TransportAllowance, currency)
	writeRow(pdf, "Family Allowance", check.FamilyAllowance, currency)
	writeRow(pdf, "Housing Allowance", check.HousingAllowance, currency)
	writeRow(pdf, "Position Allowance", check.PositionAllowance, currency)
	writeRow(pdf, "Skill Allowance", check.SkillAllowance, currency)
	writeRow(pdf, "Other Allowance", check.OtherAllowance, currency)
	writeRow(pdf, "Gross Salary", check.GrossSalary, currency)
	pdf.Ln(4)

	writeHeading(pdf, "Deductions")
	writeRow(pdf, "Health Insurance", check.HealthInsurance, currency)
	writeRow(pdf, "Pension Insurance", check.PensionInsurance, currency)
	writeRow(pdf, "Employment Insurance", check.EmploymentInsurance, currency)
	writeRow(pdf, "Long-Term Care Insurance", check.LongCareInsurance, currency)
	writeRow(pdf, "Income Tax", check.IncomeTax, currency)
	writeRow(pdf, "Residence Tax", check.ResidenceTax, currency)
	writeRow(pdf, "Other Deductions", check.OtherDeductions, currency)
	writeRow(pdf, "Total Deductions", check.TotalDeductions, currency)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	writeRow(pdf, "Net Pay", check.NetSalary, currency)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Hours: work %s, overtime %s, night %s, holiday %s",
		check.WorkHours, check.OvertimeHours, check.NightHours, check.HolidayHours))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeading(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func writeRow(pdf *gofpdf.Fpdf, label string, v decimal.Decimal, currency string) {
	pdf.CellFormat(110, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, fmt.Sprintf("%s %s", formatAmount(v), currency), "", 0, "R", false, 0, "")
	pdf.Ln(-1)
}
