package salary

import (
	"context"
)

// SalaryService computes monthly salary figures from approved orders and
// deductions.
type SalaryService interface {
	// Calculate produces one user's breakdown for the month. Users with
	// no per-order rate always yield a zero breakdown.
	Calculate(ctx context.Context, userID, monthKey string) (Breakdown, error)

	// PendingPayroll fans Calculate out over all active users. Any single
	// failure fails the whole aggregation; a silently wrong liability
	// figure is worse than an error.
	PendingPayroll(ctx context.Context, monthKey string) (Liability, error)
}
