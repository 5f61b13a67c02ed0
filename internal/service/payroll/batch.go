package payroll

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/attendance"
	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/payroll"
	"golang.org/x/sync/errgroup"
)

type BatchServiceImpl struct {
	engine     payroll.Engine
	aggregator attendance.AggregatorService
	workers    int
}

func NewBatchService(
	engine payroll.Engine,
	aggregator attendance.AggregatorService,
	workers int,
) payroll.BatchService {
	if workers < 1 {
		workers = 1
	}
	return &BatchServiceImpl{
		engine:     engine,
		aggregator: aggregator,
		workers:    workers,
	}
}

// runSlot holds the outcome for one employee, indexed by input
// position so the response preserves request order regardless of
// which worker finished first.
type runSlot struct {
	result  *payroll.EmployeePayrollResponse
	warning *payroll.RunWarning
}

// ========== BATCH RUN ==========

func (s *BatchServiceImpl) Run(ctx context.Context, req payroll.RunRequest) (payroll.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResponse{}, err
	}

	runID := uuid.NewString()
	slog.Info("Payroll run starting",
		"run_id", runID,
		"period_month", req.PeriodMonth,
		"period_year", req.PeriodYear,
		"employees", len(req.Employees),
	)

	slots := make([]runSlot, len(req.Employees))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range req.Employees {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			slots[i] = s.payEmployee(req.Employees[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Warn("Payroll run cancelled", "run_id", runID, "error", err)
		return payroll.RunResponse{}, err
	}

	resp := payroll.RunResponse{
		RunID:       runID,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		Results:     make([]payroll.EmployeePayrollResponse, 0, len(req.Employees)),
	}
	for _, slot := range slots {
		if slot.result != nil {
			resp.Results = append(resp.Results, *slot.result)
		}
		if slot.warning != nil {
			resp.Warnings = append(resp.Warnings, *slot.warning)
		}
	}

	slog.Info("Payroll run completed",
		"run_id", runID,
		"paychecks", len(resp.Results),
		"warnings", len(resp.Warnings),
	)

	return resp, nil
}

func (s *BatchServiceImpl) payEmployee(emp payroll.EmployeeInput) runSlot {
	if emp.Salary.BaseSalary.IsZero() {
		slog.Warn("Skipping employee without base salary", "employee_id", emp.EmployeeID)
		return runSlot{warning: &payroll.RunWarning{
			EmployeeID: emp.EmployeeID,
			Message:    payroll.ErrEmployeeHasNoBaseSalary.Error(),
		}}
	}

	totals := s.aggregator.Aggregate(emp.Days)
	check := s.engine.Calculate(totals, emp.Salary, emp.Tax)

	return runSlot{result: &payroll.EmployeePayrollResponse{
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Paycheck:   mapToPaycheckResponse(check),
	}}
}

// ========== HELPERS ==========

func mapToPaycheckResponse(p payroll.Paycheck) payroll.PaycheckResponse {
	return payroll.PaycheckResponse{
		BaseSalary:         p.BaseSalary,
		OvertimePay:        p.OvertimePay,
		NightPay:           p.NightPay,
		HolidayPay:         p.HolidayPay,
		TransportAllowance: p.TransportAllowance,
		FamilyAllowance:    p.FamilyAllowance,
		HousingAllowance:   p.HousingAllowance,
		PositionAllowance:  p.PositionAllowance,
		SkillAllowance:     p.SkillAllowance,
		OtherAllowance:     p.OtherAllowance,
		GrossSalary:        p.GrossSalary,

		HealthInsurance:     p.HealthInsurance,
		PensionInsurance:    p.PensionInsurance,
		EmploymentInsurance: p.EmploymentInsurance,
		LongCareInsurance:   p.LongCareInsurance,
		IncomeTax:           p.IncomeTax,
		ResidenceTax:        p.ResidenceTax,
		OtherDeductions:     p.OtherDeductions,
		TotalDeductions:     p.TotalDeductions,

		NetSalary: p.NetSalary,

		WorkHours:     p.WorkHours,
		OvertimeHours: p.OvertimeHours,
		NightHours:    p.NightHours,
		HolidayHours:  p.HolidayHours,
	}
}
