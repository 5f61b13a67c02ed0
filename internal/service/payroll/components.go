package payroll

import (
	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/attendance"
	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// ComponentCalculator computes the earnings side of a paycheck: the
// hourly rate derived from base salary and the overtime, night and
// holiday premiums built on top of it.
type ComponentCalculator struct {
	rates                payroll.OvertimeRates
	standardMonthlyHours decimal.Decimal
}

func NewComponentCalculator(table payroll.RateTable) *ComponentCalculator {
	return &ComponentCalculator{
		rates:                table.Overtime,
		standardMonthlyHours: table.StandardMonthlyHours,
	}
}

// HourlyRate divides the monthly base salary by the standard monthly
// hours. A non-positive standardMonthlyHours falls back to the table
// default. The result is intentionally left unrounded; each pay
// component rounds once after its own multiplication.
func (c *ComponentCalculator) HourlyRate(baseSalary, standardMonthlyHours decimal.Decimal) decimal.Decimal {
	std := standardMonthlyHours
	if !std.IsPositive() {
		std = c.standardMonthlyHours
	}
	return baseSalary.Div(std)
}

// OvertimePay prices overtime hours at normalRate up to the extended
// threshold and at the extended rate beyond it. The two tranches are
// summed before the single rounding step so the split never changes
// the total by more than ordinary rounding would.
func (c *ComponentCalculator) OvertimePay(totals attendance.Totals, hourlyRate, normalRate decimal.Decimal) decimal.Decimal {
	threshold := decimal.NewFromInt(payroll.ExtendedOvertimeThresholdHours)

	normalHours := totals.OvertimeHours
	extendedHours := decimal.Zero
	if totals.OvertimeHours.GreaterThan(threshold) {
		normalHours = threshold
		extendedHours = totals.OvertimeHours.Sub(threshold)
	}

	pay := normalHours.Mul(hourlyRate).Mul(normalRate)
	pay = pay.Add(extendedHours.Mul(hourlyRate).Mul(c.rates.Extended))
	return pay.Round(0)
}

// NightPay pays only the night premium, rate minus one, because the
// base pay for those hours is already counted inside the work or
// overtime totals.
func (c *ComponentCalculator) NightPay(totals attendance.Totals, hourlyRate, nightRate decimal.Decimal) decimal.Decimal {
	premium := nightRate.Sub(decimal.NewFromInt(1))
	return totals.NightHours.Mul(hourlyRate).Mul(premium).Round(0)
}

// HolidayPay pays holiday hours at the full holiday rate; holiday
// hours are tracked separately from work hours and carry no base pay
// elsewhere.
func (c *ComponentCalculator) HolidayPay(totals attendance.Totals, hourlyRate, holidayRate decimal.Decimal) decimal.Decimal {
	return totals.HolidayHours.Mul(hourlyRate).Mul(holidayRate).Round(0)
}
