package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ExtendedOvertimeThresholdHours is where the extended multiplier takes
// over from the normal one. Fixed by statute, not per-call configuration.
const ExtendedOvertimeThresholdHours = 60

// LongTermCareMinAge is the age from which long-term care insurance is withheld.
const LongTermCareMinAge = 40

// InsuranceRates - Statutory premium rates applied to gross salary.
// The employee owes half of each listed rate except employment
// insurance, whose listed rate is already the employee share.
type InsuranceRates struct {
	Health       decimal.Decimal `yaml:"health" json:"health"`
	Pension      decimal.Decimal `yaml:"pension" json:"pension"`
	Employment   decimal.Decimal `yaml:"employment" json:"employment"`
	LongTermCare decimal.Decimal `yaml:"long_term_care" json:"long_term_care"`
}

// OvertimeRates - Statutory pay multipliers. Night is charged as the
// premium over base pay, so only (Night - 1) ever lands on a payslip.
type OvertimeRates struct {
	Normal   decimal.Decimal `yaml:"normal" json:"normal"`
	Extended decimal.Decimal `yaml:"extended" json:"extended"`
	Night    decimal.Decimal `yaml:"night" json:"night"`
	Holiday  decimal.Decimal `yaml:"holiday" json:"holiday"`
}

// TaxBracket - One row of the monthly withholding table. The range is
// [Min, Max); a nil Max marks the open-ended top bracket.
type TaxBracket struct {
	Min       decimal.Decimal  `yaml:"min" json:"min"`
	Max       *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Rate      decimal.Decimal  `yaml:"rate" json:"rate"`
	Deduction decimal.Decimal  `yaml:"deduction" json:"deduction"`
}

// RateTable bundles every statutory figure a payroll run depends on.
// A table is validated once when loaded and treated as an immutable
// snapshot afterwards; the engine never mutates it mid-calculation.
type RateTable struct {
	FiscalYear           int             `yaml:"fiscal_year" json:"fiscal_year"`
	Insurance            InsuranceRates  `yaml:"insurance" json:"insurance"`
	Overtime             OvertimeRates   `yaml:"overtime" json:"overtime"`
	Brackets             []TaxBracket    `yaml:"brackets" json:"brackets"`
	DependentDeduction   decimal.Decimal `yaml:"dependent_deduction" json:"dependent_deduction"`
	StandardMonthlyHours decimal.Decimal `yaml:"standard_monthly_hours" json:"standard_monthly_hours"`
}

// Validate checks the structural invariants the engine relies on:
// non-negative rates, a positive hourly divisor, and a bracket table
// that starts at zero, ascends without gaps or overlaps, and ends in
// an unbounded top bracket.
func (t RateTable) Validate() error {
	if t.Insurance.Health.IsNegative() || t.Insurance.Pension.IsNegative() ||
		t.Insurance.Employment.IsNegative() || t.Insurance.LongTermCare.IsNegative() {
		return fmt.Errorf("insurance: %w", ErrNegativeRate)
	}
	if t.Overtime.Normal.IsNegative() || t.Overtime.Extended.IsNegative() ||
		t.Overtime.Night.IsNegative() || t.Overtime.Holiday.IsNegative() {
		return fmt.Errorf("overtime: %w", ErrNegativeRate)
	}
	if t.DependentDeduction.IsNegative() {
		return fmt.Errorf("dependent deduction: %w", ErrNegativeRate)
	}
	if !t.StandardMonthlyHours.IsPositive() {
		return ErrInvalidStandardHours
	}

	if len(t.Brackets) == 0 {
		return ErrEmptyBracketTable
	}
	if !t.Brackets[0].Min.IsZero() {
		return fmt.Errorf("bracket 0: %w", ErrBracketGap)
	}

	for i, bracket := range t.Brackets {
		if bracket.Rate.IsNegative() {
			return fmt.Errorf("bracket %d: %w", i, ErrNegativeRate)
		}

		last := i == len(t.Brackets)-1
		if last {
			if bracket.Max != nil {
				return fmt.Errorf("bracket %d: %w", i, ErrBoundedTopBracket)
			}
			continue
		}

		if bracket.Max == nil {
			return fmt.Errorf("bracket %d: %w", i, ErrUnboundedBracket)
		}
		if !bracket.Max.GreaterThan(bracket.Min) {
			return fmt.Errorf("bracket %d: %w", i, ErrBracketOrder)
		}
		if !t.Brackets[i+1].Min.Equal(*bracket.Max) {
			return fmt.Errorf("bracket %d: %w", i+1, ErrBracketGap)
		}
	}

	return nil
}

// Paycheck - One employee's fully itemized result for a pay period.
// A pure computation output with no identity or lifecycle of its own;
// the caller persists or renders it.
type Paycheck struct {
	// Earnings
	BaseSalary         decimal.Decimal
	OvertimePay        decimal.Decimal
	NightPay           decimal.Decimal
	HolidayPay         decimal.Decimal
	TransportAllowance decimal.Decimal
	FamilyAllowance    decimal.Decimal
	HousingAllowance   decimal.Decimal
	PositionAllowance  decimal.Decimal
	SkillAllowance     decimal.Decimal
	OtherAllowance     decimal.Decimal
	GrossSalary        decimal.Decimal

	// Deductions
	HealthInsurance     decimal.Decimal
	PensionInsurance    decimal.Decimal
	EmploymentInsurance decimal.Decimal
	LongCareInsurance   decimal.Decimal
	IncomeTax           decimal.Decimal
	ResidenceTax        decimal.Decimal
	OtherDeductions     decimal.Decimal
	TotalDeductions     decimal.Decimal

	NetSalary decimal.Decimal

	// Echoed hour totals for traceability
	WorkHours     decimal.Decimal
	OvertimeHours decimal.Decimal
	NightHours    decimal.Decimal
	HolidayHours  decimal.Decimal
}
