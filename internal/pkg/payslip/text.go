package payslip

import (
	"fmt"
	"strings"

	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Render produces the plain-text payslip for one computed employee.
func Render(result payroll.EmployeePayrollResponse, periodMonth, periodYear int, currency string) string {
	check := result.Paycheck
	var b strings.Builder

	b.WriteString("========================================\n")
	fmt.Fprintf(&b, "  PAYSLIP %04d-%02d\n", periodYear, periodMonth)
	b.WriteString("========================================\n")
	if result.Name != "" {
		fmt.Fprintf(&b, "Employee: %s (%s)\n", result.Name, result.EmployeeID)
	} else {
		fmt.Fprintf(&b, "Employee: %s\n", result.EmployeeID)
	}
	b.WriteString("\n")

	b.WriteString("EARNINGS\n")
	writeAmount(&b, "Base Salary", check.BaseSalary, currency)
	writeAmount(&b, "Overtime Pay", check.OvertimePay, currency)
	writeAmount(&b, "Night Pay", check.NightPay, currency)
	writeAmount(&b, "Holiday Pay", check.HolidayPay, currency)
	writeAmount(&b, "Transport Allowance", check.TransportAllowance, currency)
	writeAmount(&b, "Family Allowance", check.FamilyAllowance, currency)
	writeAmount(&b, "Housing Allowance", check.HousingAllowance, currency)
	writeAmount(&b, "Position Allowance", check.PositionAllowance, currency)
	writeAmount(&b, "Skill Allowance", check.SkillAllowance, currency)
	writeAmount(&b, "Other Allowance", check.OtherAllowance, currency)
	writeAmount(&b, "Gross Salary", check.GrossSalary, currency)
	b.WriteString("\n")

	b.WriteString("DEDUCTIONS\n")
	writeAmount(&b, "Health Insurance", check.HealthInsurance, currency)
	writeAmount(&b, "Pension Insurance", check.PensionInsurance, currency)
	writeAmount(&b, "Employment Insurance", check.EmploymentInsurance, currency)
	writeAmount(&b, "Long-Term Care Insurance", check.LongCareInsurance, currency)
	writeAmount(&b, "Income Tax", check.IncomeTax, currency)
	writeAmount(&b, "Residence Tax", check.ResidenceTax, currency)
	writeAmount(&b, "Other Deductions", check.OtherDeductions, currency)
	writeAmount(&b, "Total Deductions", check.TotalDeductions, currency)
	b.WriteString("\n")

	writeAmount(&b, "NET PAY", check.NetSalary, currency)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Hours  work=%s overtime=%s night=%s holiday=%s\n",
		check.WorkHours, check.OvertimeHours, check.NightHours, check.HolidayHours)

	return b.String()
}

func writeAmount(b *strings.Builder, label string, v decimal.Decimal, currency string) {
	fmt.Fprintf(b, "  %-26s %14s %s\n", label, formatAmount(v), currency)
}

// formatAmount groups the integer digits in threes, keeping any
// fraction and sign as-is.
func formatAmount(d decimal.Decimal) string {
	s := d.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String()
	if fracPart != "" {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
