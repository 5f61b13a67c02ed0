package attendance

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Hours is an optional hour quantity as it arrives from the caller.
// Attendance feeds routinely carry null or malformed values on days
// without overtime or night work; those decode as unset and count as
// zero when aggregated. The coercion is an explicit step in OrZero,
// not something hidden inside the arithmetic.
type Hours struct {
	Decimal decimal.Decimal
	Valid   bool
}

// NewHours returns a set Hours value.
func NewHours(v float64) Hours {
	return Hours{Decimal: decimal.NewFromFloat(v), Valid: true}
}

// OrZero returns the hour value, or decimal zero when unset.
func (h Hours) OrZero() decimal.Decimal {
	if !h.Valid {
		return decimal.Zero
	}
	return h.Decimal
}

// UnmarshalJSON accepts numbers and numeric strings. Anything else
// (null, empty or garbage strings) leaves the value unset instead of
// failing the whole record.
func (h *Hours) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		*h = Hours{}
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		*h = Hours{}
		return nil
	}

	*h = Hours{Decimal: d, Valid: true}
	return nil
}

func (h Hours) MarshalJSON() ([]byte, error) {
	if !h.Valid {
		return []byte("null"), nil
	}
	return []byte(h.Decimal.String()), nil
}

// DayRecord - One day of attendance as supplied by the caller
type DayRecord struct {
	Date          string `json:"date,omitempty"`
	WorkHours     Hours  `json:"work_hours"`
	OvertimeHours Hours  `json:"overtime_hours"`
	NightHours    Hours  `json:"night_hours"`
	HolidayHours  Hours  `json:"holiday_hours"`
}
