package report

import (
	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/payroll"
)

// ReportService defines the interface for register generation
type ReportService interface {
	// BuildRegister flattens a completed run into one row per paycheck
	// plus run-level totals. The totals always equal the column sums of
	// the rows.
	BuildRegister(run payroll.RunResponse) Register

	// ExportXLSX renders a register as a two-sheet workbook (summary and rows).
	ExportXLSX(reg Register) ([]byte, error)
}
