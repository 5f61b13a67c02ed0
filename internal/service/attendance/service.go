package attendance

import (
	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

type AggregatorServiceImpl struct {
}

func NewAggregatorService() attendance.AggregatorService {
	return &AggregatorServiceImpl{}
}

// Aggregate implements attendance.AggregatorService as a pure fold: the
// input slice is never mutated and every call produces a fresh Totals.
// Unset or unparseable hour fields count as zero.
func (a *AggregatorServiceImpl) Aggregate(days []attendance.DayRecord) attendance.Totals {
	totals := attendance.Totals{
		WorkHours:     decimal.Zero,
		OvertimeHours: decimal.Zero,
		NightHours:    decimal.Zero,
		HolidayHours:  decimal.Zero,
	}

	for _, day := range days {
		totals.WorkHours = totals.WorkHours.Add(day.WorkHours.OrZero())
		totals.OvertimeHours = totals.OvertimeHours.Add(day.OvertimeHours.OrZero())
		totals.NightHours = totals.NightHours.Add(day.NightHours.OrZero())
		totals.HolidayHours = totals.HolidayHours.Add(day.HolidayHours.OrZero())
	}

	return totals
}
