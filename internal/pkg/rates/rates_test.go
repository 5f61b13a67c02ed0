package rates

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	table := Default()

	require.NoError(t, table.Validate())
	assert.Equal(t, 2025, table.FiscalYear)
	assert.True(t, table.Insurance.Health.Equal(dec("0.0495")))
	assert.True(t, table.Overtime.Extended.Equal(dec("1.50")))
	assert.True(t, table.StandardMonthlyHours.Equal(dec("160")))
	assert.Len(t, table.Brackets, 8)
	assert.Nil(t, table.Brackets[len(table.Brackets)-1].Max)
}

func TestDefault_BracketsAreContinuous(t *testing.T) {
	// The tax at each bracket's lower edge must match what the previous
	// bracket would charge there, otherwise one more yen of income could
	// change the tax by more than a yen.
	table := Default()

	for i := 1; i < len(table.Brackets); i++ {
		prev := table.Brackets[i-1]
		cur := table.Brackets[i]

		atEdge := cur.Min.Mul(cur.Rate).Sub(cur.Deduction)
		fromPrev := cur.Min.Mul(prev.Rate).Sub(prev.Deduction)
		assert.True(t, atEdge.Equal(fromPrev),
			"bracket %d: tax at edge %s is %s from above, %s from below", i, cur.Min, atEdge, fromPrev)
	}
}

func TestRateTable_Validate_RejectsBrokenTables(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(t *payroll.RateTable)
		wantErr error
	}{
		{
			name:    "empty brackets",
			mutate:  func(t *payroll.RateTable) { t.Brackets = nil },
			wantErr: payroll.ErrEmptyBracketTable,
		},
		{
			name:    "first bracket not at zero",
			mutate:  func(t *payroll.RateTable) { t.Brackets[0].Min = dec("100") },
			wantErr: payroll.ErrBracketGap,
		},
		{
			name:    "gap between brackets",
			mutate:  func(t *payroll.RateTable) { t.Brackets[2].Min = dec("200000") },
			wantErr: payroll.ErrBracketGap,
		},
		{
			name:    "max not above min",
			mutate:  func(t *payroll.RateTable) { t.Brackets[1].Max = decPtr("88000") },
			wantErr: payroll.ErrBracketOrder,
		},
		{
			name:    "unbounded bracket before the end",
			mutate:  func(t *payroll.RateTable) { t.Brackets[3].Max = nil },
			wantErr: payroll.ErrUnboundedBracket,
		},
		{
			name:    "bounded top bracket",
			mutate:  func(t *payroll.RateTable) { t.Brackets[len(t.Brackets)-1].Max = decPtr("9999999") },
			wantErr: payroll.ErrBoundedTopBracket,
		},
		{
			name:    "negative bracket rate",
			mutate:  func(t *payroll.RateTable) { t.Brackets[1].Rate = dec("-0.05") },
			wantErr: payroll.ErrNegativeRate,
		},
		{
			name:    "negative insurance rate",
			mutate:  func(t *payroll.RateTable) { t.Insurance.Pension = dec("-0.01") },
			wantErr: payroll.ErrNegativeRate,
		},
		{
			name:    "zero standard monthly hours",
			mutate:  func(t *payroll.RateTable) { t.StandardMonthlyHours = dec("0") },
			wantErr: payroll.ErrInvalidStandardHours,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			table := Default()
			c.mutate(&table)

			err := table.Validate()

			require.Error(t, err)
			assert.True(t, errors.Is(err, c.wantErr), "got %v, want %v", err, c.wantErr)
		})
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "rates.yaml")
	content := []byte("fiscal_year: 2026\ninsurance:\n  health: 0.0499\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	// Act
	table, err := Load(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2026, table.FiscalYear)
	assert.True(t, table.Insurance.Health.Equal(dec("0.0499")))
	assert.True(t, table.Insurance.Pension.Equal(dec("0.0915")), "untouched fields keep defaults")
	assert.Len(t, table.Brackets, 8, "bracket table stays the default when the file omits it")
}

func TestLoad_ReplacesBracketTable(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "rates.yaml")
	content := []byte(`brackets:
  - min: 0
    max: 100000
    rate: 0
    deduction: 0
  - min: 100000
    rate: 0.1
    deduction: 10000
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	// Act
	table, err := Load(path)

	// Assert
	require.NoError(t, err)
	require.Len(t, table.Brackets, 2)
	assert.True(t, table.Brackets[1].Rate.Equal(dec("0.1")))
	assert.Nil(t, table.Brackets[1].Max)
}

func TestLoad_RejectsInvalidTable(t *testing.T) {
	// Setup: second bracket leaves a hole between 100000 and 200000.
	path := filepath.Join(t.TempDir(), "rates.yaml")
	content := []byte(`brackets:
  - min: 0
    max: 100000
    rate: 0
    deduction: 0
  - min: 200000
    rate: 0.1
    deduction: 10000
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	// Act
	_, err := Load(path)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, payroll.ErrBracketGap))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
