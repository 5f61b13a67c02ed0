package payroll

import (
	"context"

	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/attendance"
)

// Engine defines the single calculation entry point
type Engine interface {
	// Calculate derives gross pay, statutory deductions and net pay from one
	// month's hour totals and the employee's salary/tax configuration. It is
	// a pure, total function: no I/O, no partial results, and concurrent
	// calls never interact.
	Calculate(totals attendance.Totals, salary SalaryConfig, tax TaxConfig) Paycheck
}

// BatchService runs the engine across every employee in a period
type BatchService interface {
	// Run validates the request and computes one paycheck per employee,
	// preserving input order. Employees without a base salary are skipped
	// and reported as warnings rather than failing the run.
	Run(ctx context.Context, req RunRequest) (RunResponse, error)
}
