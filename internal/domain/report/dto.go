package report

import (
	"github.com/shopspring/decimal"
)

// ========================================
// PAYROLL REGISTER
// ========================================

// RegisterRow is one employee line of the payroll register.
type RegisterRow struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name,omitempty"`

	WorkHours     decimal.Decimal `json:"work_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`

	GrossSalary     decimal.Decimal `json:"gross_salary"`
	IncomeTax       decimal.Decimal `json:"income_tax"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}

// RegisterTotals aggregates the register rows for the whole run.
type RegisterTotals struct {
	TotalEmployees  int             `json:"total_employees"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	IncomeTax       decimal.Decimal `json:"income_tax"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}

// Register is the per-run payroll register: one row per paycheck plus
// run-level totals.
type Register struct {
	RunID       string         `json:"run_id"`
	PeriodMonth int            `json:"period_month"`
	PeriodYear  int            `json:"period_year"`
	Rows        []RegisterRow  `json:"rows"`
	Totals      RegisterTotals `json:"totals"`
}
