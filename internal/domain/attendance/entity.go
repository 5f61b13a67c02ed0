package attendance

import (
	"github.com/shopspring/decimal"
)

// Totals - Monthly hour aggregate consumed by the payroll engine.
// A fresh value is produced per aggregation and never mutated after;
// the fields are plain decimal hours regardless of how many days were
// summed to get them.
type Totals struct {
	WorkHours     decimal.Decimal
	OvertimeHours decimal.Decimal
	NightHours    decimal.Decimal
	HolidayHours  decimal.Decimal
}
