package order

import "errors"

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderLocked           = errors.New("order has already been approved and can no longer be changed")
	ErrInvalidDateKey        = errors.New("invalid date key, expected YYYY-MM-DD")
	ErrInvalidSubmittedCount = errors.New("submitted count must not be negative")
	ErrInvalidApprovedCount  = errors.New("approved count is required and must not be negative")
	ErrInvalidDecisionAction = errors.New("decision action must be APPROVE or REJECT")
)
