package payroll

import "errors"

var (
	ErrEmptyBracketTable       = errors.New("income tax bracket table is empty")
	ErrBracketGap              = errors.New("income tax brackets must cover income from zero without gaps")
	ErrBracketOrder            = errors.New("income tax bracket max must be greater than min")
	ErrUnboundedBracket        = errors.New("only the final income tax bracket may omit max")
	ErrBoundedTopBracket       = errors.New("final income tax bracket must be unbounded")
	ErrNegativeRate            = errors.New("rates must be non-negative")
	ErrInvalidStandardHours    = errors.New("standard monthly hours must be positive")
	ErrEmployeeHasNoBaseSalary = errors.New("employee has no base salary configured")
)
