package payroll

import (
	"fmt"

	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/attendance"
	"github.com/kyuyo-labs/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== CALCULATION INPUTS ==========

// SalaryConfig is the caller-resolved salary input for one employee and
// one period. Allowances default to zero. The pointer fields are
// optional overrides; when nil the engine derives them from the base
// salary and the rate table.
type SalaryConfig struct {
	BaseSalary decimal.Decimal `json:"base_salary"`

	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	FamilyAllowance    decimal.Decimal `json:"family_allowance"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	PositionAllowance  decimal.Decimal `json:"position_allowance"`
	SkillAllowance     decimal.Decimal `json:"skill_allowance"`
	OtherAllowance     decimal.Decimal `json:"other_allowance"`

	HourlyRate           *decimal.Decimal `json:"hourly_rate,omitempty"`
	OvertimeRate         *decimal.Decimal `json:"overtime_rate,omitempty"`
	NightRate            *decimal.Decimal `json:"night_rate,omitempty"`
	HolidayRate          *decimal.Decimal `json:"holiday_rate,omitempty"`
	StandardMonthlyHours *decimal.Decimal `json:"standard_monthly_hours,omitempty"`
}

// TaxConfig carries the employee demographics the deduction rules need.
type TaxConfig struct {
	Dependents int `json:"dependents"`
	Age        int `json:"age"`

	// SocialInsuranceExempt is accepted from callers but no deduction
	// rule consults it yet.
	SocialInsuranceExempt bool `json:"social_insurance_exempt"`
}

// ========== BATCH RUN DTOs ==========

type EmployeeInput struct {
	EmployeeID string                 `json:"employee_id"`
	Name       string                 `json:"name,omitempty"`
	Days       []attendance.DayRecord `json:"days"`
	Salary     SalaryConfig           `json:"salary"`
	Tax        TaxConfig              `json:"tax"`
}

func (e *EmployeeInput) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(e.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	} else if !validator.IsValidEmployeeID(e.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must contain only letters, digits, '.', '_' or '-'"})
	}

	if e.Salary.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary.base_salary", Message: "must be non-negative"})
	}

	allowances := []struct {
		field string
		value decimal.Decimal
	}{
		{"salary.transport_allowance", e.Salary.TransportAllowance},
		{"salary.family_allowance", e.Salary.FamilyAllowance},
		{"salary.housing_allowance", e.Salary.HousingAllowance},
		{"salary.position_allowance", e.Salary.PositionAllowance},
		{"salary.skill_allowance", e.Salary.SkillAllowance},
		{"salary.other_allowance", e.Salary.OtherAllowance},
	}
	for _, a := range allowances {
		if a.value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: a.field, Message: "must be non-negative"})
		}
	}

	if e.Salary.HourlyRate != nil && e.Salary.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary.hourly_rate", Message: "must be non-negative"})
	}
	if e.Salary.OvertimeRate != nil && e.Salary.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary.overtime_rate", Message: "must be non-negative"})
	}
	if e.Salary.NightRate != nil && e.Salary.NightRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary.night_rate", Message: "must be non-negative"})
	}
	if e.Salary.HolidayRate != nil && e.Salary.HolidayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary.holiday_rate", Message: "must be non-negative"})
	}
	if e.Salary.StandardMonthlyHours != nil && !e.Salary.StandardMonthlyHours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary.standard_monthly_hours", Message: "must be positive"})
	}

	if e.Tax.Dependents < 0 {
		errs = append(errs, validator.ValidationError{Field: "tax.dependents", Message: "must be non-negative"})
	}
	if e.Tax.Age < 0 {
		errs = append(errs, validator.ValidationError{Field: "tax.age", Message: "must be non-negative"})
	}

	for i, day := range e.Days {
		if day.Date == "" {
			continue
		}
		if _, ok := validator.IsValidDate(day.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("days[%d].date", i),
				Message: "must be a date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RunRequest struct {
	PeriodMonth int             `json:"period_month"`
	PeriodYear  int             `json:"period_year"`
	Employees   []EmployeeInput `json:"employees"`
}

func (r *RunRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2020 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2020 or later"})
	}
	if len(r.Employees) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employees", Message: "at least one employee is required"})
	}

	for i := range r.Employees {
		if err := r.Employees[i].Validate(); err != nil {
			if nested, ok := err.(validator.ValidationErrors); ok {
				for _, ne := range nested {
					errs = append(errs, validator.ValidationError{
						Field:   fmt.Sprintf("employees[%d].%s", i, ne.Field),
						Message: ne.Message,
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESULT DTOs ==========

type PaycheckResponse struct {
	BaseSalary         decimal.Decimal `json:"base_salary"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	NightPay           decimal.Decimal `json:"night_pay"`
	HolidayPay         decimal.Decimal `json:"holiday_pay"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	FamilyAllowance    decimal.Decimal `json:"family_allowance"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	PositionAllowance  decimal.Decimal `json:"position_allowance"`
	SkillAllowance     decimal.Decimal `json:"skill_allowance"`
	OtherAllowance     decimal.Decimal `json:"other_allowance"`
	GrossSalary        decimal.Decimal `json:"gross_salary"`

	HealthInsurance     decimal.Decimal `json:"health_insurance"`
	PensionInsurance    decimal.Decimal `json:"pension_insurance"`
	EmploymentInsurance decimal.Decimal `json:"employment_insurance"`
	LongCareInsurance   decimal.Decimal `json:"long_care_insurance"`
	IncomeTax           decimal.Decimal `json:"income_tax"`
	ResidenceTax        decimal.Decimal `json:"residence_tax"`
	OtherDeductions     decimal.Decimal `json:"other_deductions"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`

	NetSalary decimal.Decimal `json:"net_salary"`

	WorkHours     decimal.Decimal `json:"work_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	NightHours    decimal.Decimal `json:"night_hours"`
	HolidayHours  decimal.Decimal `json:"holiday_hours"`
}

type EmployeePayrollResponse struct {
	EmployeeID string           `json:"employee_id"`
	Name       string           `json:"name,omitempty"`
	Paycheck   PaycheckResponse `json:"paycheck"`
}

type RunWarning struct {
	EmployeeID string `json:"employee_id"`
	Message    string `json:"message"`
}

type RunResponse struct {
	RunID       string                    `json:"run_id"`
	PeriodMonth int                       `json:"period_month"`
	PeriodYear  int                       `json:"period_year"`
	Results     []EmployeePayrollResponse `json:"results"`
	Warnings    []RunWarning              `json:"warnings,omitempty"`
}
