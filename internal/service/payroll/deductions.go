package payroll

import (
	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// DeductionCalculator computes the statutory deductions: the four
// social insurance lines and withholding income tax.
type DeductionCalculator struct {
	rates              payroll.InsuranceRates
	brackets           []payroll.TaxBracket
	dependentDeduction decimal.Decimal
}

func NewDeductionCalculator(table payroll.RateTable) *DeductionCalculator {
	return &DeductionCalculator{
		rates:              table.Insurance,
		brackets:           table.Brackets,
		dependentDeduction: table.DependentDeduction,
	}
}

// HealthInsurance is the employee half of the health premium on gross
// salary.
func (d *DeductionCalculator) HealthInsurance(grossSalary decimal.Decimal) decimal.Decimal {
	return grossSalary.Mul(d.rates.Health).Div(two).Round(0)
}

// PensionInsurance is the employee half of the pension premium on
// gross salary.
func (d *DeductionCalculator) PensionInsurance(grossSalary decimal.Decimal) decimal.Decimal {
	return grossSalary.Mul(d.rates.Pension).Div(two).Round(0)
}

// EmploymentInsurance applies the listed rate directly; it is already
// the employee share.
func (d *DeductionCalculator) EmploymentInsurance(grossSalary decimal.Decimal) decimal.Decimal {
	return grossSalary.Mul(d.rates.Employment).Round(0)
}

// LongCareInsurance is the employee half of the long-term care
// premium, charged only from the qualifying age.
func (d *DeductionCalculator) LongCareInsurance(grossSalary decimal.Decimal, age int) decimal.Decimal {
	if age < payroll.LongTermCareMinAge {
		return decimal.Zero
	}
	return grossSalary.Mul(d.rates.LongTermCare).Div(two).Round(0)
}

// IncomeTax withholds on taxable income after the per-dependent
// allowance. The adjusted amount is matched against the bracket table
// in ascending order and taxed at that bracket's rate less its
// deduction figure.
func (d *DeductionCalculator) IncomeTax(taxableIncome decimal.Decimal, dependents int) decimal.Decimal {
	adjusted := taxableIncome.Sub(d.dependentDeduction.Mul(decimal.NewFromInt(int64(dependents))))
	if adjusted.IsNegative() {
		adjusted = decimal.Zero
	}

	for _, bracket := range d.brackets {
		if adjusted.GreaterThanOrEqual(bracket.Min) && (bracket.Max == nil || adjusted.LessThan(*bracket.Max)) {
			return adjusted.Mul(bracket.Rate).Sub(bracket.Deduction).Round(0)
		}
	}

	// A validated table has an unbounded top bracket, so this only
	// guards a misconfigured one.
	return decimal.Zero
}
