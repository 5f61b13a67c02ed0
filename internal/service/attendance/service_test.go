package attendance

import (
	"encoding/json"
	"testing"

	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatorService_Aggregate_EmptyInput(t *testing.T) {
	t.Parallel()
	svc := NewAggregatorService()

	// Act
	totals := svc.Aggregate(nil)

	// Assert
	assert.True(t, totals.WorkHours.IsZero())
	assert.True(t, totals.OvertimeHours.IsZero())
	assert.True(t, totals.NightHours.IsZero())
	assert.True(t, totals.HolidayHours.IsZero())
}

func TestAggregatorService_Aggregate_SumsIdenticalDays(t *testing.T) {
	t.Parallel()
	svc := NewAggregatorService()

	// Setup: twenty identical eight-hour days
	days := make([]attendance.DayRecord, 20)
	for i := range days {
		days[i] = attendance.DayRecord{WorkHours: attendance.NewHours(8)}
	}

	// Act
	totals := svc.Aggregate(days)

	// Assert
	assert.True(t, totals.WorkHours.Equal(decimal.NewFromInt(160)), "work hours = %s", totals.WorkHours)
	assert.True(t, totals.OvertimeHours.IsZero())
}

func TestAggregatorService_Aggregate_MixedFields(t *testing.T) {
	t.Parallel()
	svc := NewAggregatorService()

	days := []attendance.DayRecord{
		{WorkHours: attendance.NewHours(8), OvertimeHours: attendance.NewHours(1.5)},
		{WorkHours: attendance.NewHours(8), NightHours: attendance.NewHours(2)},
		{HolidayHours: attendance.NewHours(4)},
	}

	// Act
	totals := svc.Aggregate(days)

	// Assert
	assert.True(t, totals.WorkHours.Equal(decimal.NewFromInt(16)))
	assert.True(t, totals.OvertimeHours.Equal(decimal.NewFromFloat(1.5)))
	assert.True(t, totals.NightHours.Equal(decimal.NewFromInt(2)))
	assert.True(t, totals.HolidayHours.Equal(decimal.NewFromInt(4)))
}

func TestAggregatorService_Aggregate_UnsetHoursCountAsZero(t *testing.T) {
	t.Parallel()
	svc := NewAggregatorService()

	// Setup: a feed with nulls, numeric strings and garbage values
	payload := []byte(`[
		{"date": "2025-06-02", "work_hours": 8, "overtime_hours": null},
		{"date": "2025-06-03", "work_hours": "7.5", "overtime_hours": "n/a"},
		{"date": "2025-06-04"}
	]`)
	var days []attendance.DayRecord
	require.NoError(t, json.Unmarshal(payload, &days))

	// Act
	totals := svc.Aggregate(days)

	// Assert
	assert.True(t, totals.WorkHours.Equal(decimal.NewFromFloat(15.5)), "work hours = %s", totals.WorkHours)
	assert.True(t, totals.OvertimeHours.IsZero())
	assert.True(t, totals.NightHours.IsZero())
}

func TestAggregatorService_Aggregate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	svc := NewAggregatorService()

	days := []attendance.DayRecord{{WorkHours: attendance.NewHours(8)}}

	_ = svc.Aggregate(days)
	_ = svc.Aggregate(days)
	totals := svc.Aggregate(days)

	assert.True(t, days[0].WorkHours.Decimal.Equal(decimal.NewFromInt(8)))
	assert.True(t, totals.WorkHours.Equal(decimal.NewFromInt(8)), "repeated aggregation stays stable")
}
