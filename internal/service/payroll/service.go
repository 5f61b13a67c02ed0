package payroll

import (
	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/attendance"
	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type EngineImpl struct {
	table      payroll.RateTable
	components *ComponentCalculator
	deductions *DeductionCalculator
}

// NewEngine builds a calculation engine bound to a rate table. The
// table must have passed Validate; the engine snapshots it and later
// changes to the caller's copy are not observed.
func NewEngine(table payroll.RateTable) payroll.Engine {
	return &EngineImpl{
		table:      table,
		components: NewComponentCalculator(table),
		deductions: NewDeductionCalculator(table),
	}
}

// Calculate produces a full paycheck from monthly hour totals, the
// employee's salary configuration and tax attributes.
func (e *EngineImpl) Calculate(totals attendance.Totals, salary payroll.SalaryConfig, tax payroll.TaxConfig) payroll.Paycheck {
	hourlyRate := e.resolveHourlyRate(salary)

	normalRate := e.table.Overtime.Normal
	if salary.OvertimeRate != nil {
		normalRate = *salary.OvertimeRate
	}
	nightRate := e.table.Overtime.Night
	if salary.NightRate != nil {
		nightRate = *salary.NightRate
	}
	holidayRate := e.table.Overtime.Holiday
	if salary.HolidayRate != nil {
		holidayRate = *salary.HolidayRate
	}

	// ========== EARNINGS ==========

	overtimePay := e.components.OvertimePay(totals, hourlyRate, normalRate)
	nightPay := e.components.NightPay(totals, hourlyRate, nightRate)
	holidayPay := e.components.HolidayPay(totals, hourlyRate, holidayRate)

	grossSalary := salary.BaseSalary.
		Add(overtimePay).
		Add(nightPay).
		Add(holidayPay).
		Add(salary.TransportAllowance).
		Add(salary.FamilyAllowance).
		Add(salary.HousingAllowance).
		Add(salary.PositionAllowance).
		Add(salary.SkillAllowance).
		Add(salary.OtherAllowance)

	// ========== DEDUCTIONS ==========

	healthInsurance := e.deductions.HealthInsurance(grossSalary)
	pensionInsurance := e.deductions.PensionInsurance(grossSalary)
	employmentInsurance := e.deductions.EmploymentInsurance(grossSalary)
	longCareInsurance := e.deductions.LongCareInsurance(grossSalary, tax.Age)

	insuranceTotal := healthInsurance.
		Add(pensionInsurance).
		Add(employmentInsurance).
		Add(longCareInsurance)

	taxableIncome := grossSalary.Sub(insuranceTotal)
	incomeTax := e.deductions.IncomeTax(taxableIncome, tax.Dependents)

	// Residence tax depends on prior-year income, which this system
	// does not model; payroll withholds nothing for it.
	residenceTax := decimal.Zero
	otherDeductions := decimal.Zero

	totalDeductions := insuranceTotal.
		Add(incomeTax).
		Add(residenceTax).
		Add(otherDeductions)

	netSalary := grossSalary.Sub(totalDeductions)

	return payroll.Paycheck{
		BaseSalary:         salary.BaseSalary,
		OvertimePay:        overtimePay,
		NightPay:           nightPay,
		HolidayPay:         holidayPay,
		TransportAllowance: salary.TransportAllowance,
		FamilyAllowance:    salary.FamilyAllowance,
		HousingAllowance:   salary.HousingAllowance,
		PositionAllowance:  salary.PositionAllowance,
		SkillAllowance:     salary.SkillAllowance,
		OtherAllowance:     salary.OtherAllowance,
		GrossSalary:        grossSalary,

		HealthInsurance:     healthInsurance,
		PensionInsurance:    pensionInsurance,
		EmploymentInsurance: employmentInsurance,
		LongCareInsurance:   longCareInsurance,
		IncomeTax:           incomeTax,
		ResidenceTax:        residenceTax,
		OtherDeductions:     otherDeductions,
		TotalDeductions:     totalDeductions,

		NetSalary: netSalary,

		WorkHours:     totals.WorkHours,
		OvertimeHours: totals.OvertimeHours,
		NightHours:    totals.NightHours,
		HolidayHours:  totals.HolidayHours,
	}
}

func (e *EngineImpl) resolveHourlyRate(salary payroll.SalaryConfig) decimal.Decimal {
	if salary.HourlyRate != nil {
		return *salary.HourlyRate
	}
	std := e.table.StandardMonthlyHours
	if salary.StandardMonthlyHours != nil {
		std = *salary.StandardMonthlyHours
	}
	return e.components.HourlyRate(salary.BaseSalary, std)
}
