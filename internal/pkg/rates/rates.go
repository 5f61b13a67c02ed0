package rates

import (
	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal     { return decimal.RequireFromString(s) }
func decPtr(s string) *decimal.Decimal { d := dec(s); return &d }

// Default returns the built-in statutory table. Only the lowest income
// tax bracket reproduces the official withholding figure exactly; the
// upper rows extend it with the national progressive rates on monthly
// boundaries, kept piecewise continuous so the tax never jumps at a
// bracket edge.
func Default() payroll.RateTable {
	return payroll.RateTable{
		FiscalYear: 2025,
		Insurance: payroll.InsuranceRates{
			Health:       dec("0.0495"),
			Pension:      dec("0.0915"),
			Employment:   dec("0.003"),
			LongTermCare: dec("0.0123"),
		},
		Overtime: payroll.OvertimeRates{
			Normal:   dec("1.25"),
			Extended: dec("1.50"),
			Night:    dec("1.25"),
			Holiday:  dec("1.35"),
		},
		Brackets: []payroll.TaxBracket{
			{Min: dec("0"), Max: decPtr("88000"), Rate: dec("0"), Deduction: dec("0")},
			{Min: dec("88000"), Max: decPtr("162500"), Rate: dec("0.05"), Deduction: dec("4400")},
			{Min: dec("162500"), Max: decPtr("275000"), Rate: dec("0.10"), Deduction: dec("12525")},
			{Min: dec("275000"), Max: decPtr("580000"), Rate: dec("0.20"), Deduction: dec("40025")},
			{Min: dec("580000"), Max: decPtr("750000"), Rate: dec("0.23"), Deduction: dec("57425")},
			{Min: dec("750000"), Max: decPtr("1500000"), Rate: dec("0.33"), Deduction: dec("132425")},
			{Min: dec("1500000"), Max: decPtr("3335000"), Rate: dec("0.40"), Deduction: dec("237425")},
			{Min: dec("3335000"), Max: nil, Rate: dec("0.45"), Deduction: dec("404175")},
		},
		DependentDeduction:   dec("38000"),
		StandardMonthlyHours: dec("160"),
	}
}
