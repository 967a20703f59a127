package warning

import "errors"

var (
	ErrWarningNotFound = errors.New("warning not found")
	ErrInvalidAmount   = errors.New("deduction amount must not be negative")
	ErrReasonRequired  = errors.New("reason is required")
)
