package warning

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ttl-ops/portal-backend-go/internal/domain/user"
)

// WarningService defines business logic for warnings and the deductions
// they spawn.
type WarningService interface {
	// IssueWarning creates a warning for the target user and, when a
	// positive deduction amount is present, the linked deduction in the
	// same transaction.
	IssueWarning(ctx context.Context, actor user.Actor, req IssueWarningRequest) (IssueWarningResponse, error)

	// CreateDeduction records a standalone deduction not tied to any
	// warning.
	CreateDeduction(ctx context.Context, actor user.Actor, req CreateDeductionRequest) (DeductionResponse, error)

	// MarkWarningRead marks the caller's warning as read. Idempotent.
	MarkWarningRead(ctx context.Context, userID, warningID string) (WarningResponse, error)

	// SweepStaleWarnings archives the user's unarchived warnings older
	// than StaleAfter. Runs inline ahead of active-list reads rather than
	// on a timer, so behavior stays deterministic under test.
	SweepStaleWarnings(ctx context.Context, userID string, now time.Time) (int64, error)

	// ListWarnings archives the caller's stale warnings, then returns the
	// active view or, with includeArchived, the full history.
	ListWarnings(ctx context.Context, userID string, includeArchived bool) ([]WarningResponse, error)

	// ListDeductions returns the user's deduction lines for the month.
	ListDeductions(ctx context.Context, userID, monthKey string) ([]DeductionResponse, error)

	// MonthlyTotal sums the user's deductions created inside the month's
	// absolute timestamp bounds.
	MonthlyTotal(ctx context.Context, userID, monthKey string) (decimal.Decimal, error)
}
