package warning

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// WarningRepository defines data access for disciplinary warnings.
type WarningRepository interface {
	Create(ctx context.Context, w Warning) (Warning, error)

	GetByID(ctx context.Context, id string) (Warning, error)

	// ListByUser returns the user's warnings ordered by created_at
	// descending. Archived warnings are excluded unless includeArchived
	// is set.
	ListByUser(ctx context.Context, userID string, includeArchived bool) ([]Warning, error)

	// MarkRead sets is_read/read_at on the first call; subsequent calls
	// leave read_at untouched.
	MarkRead(ctx context.Context, id string, readAt time.Time) (Warning, error)

	// ArchiveOlderThan stamps archived_at=archivedAt on the user's
	// unarchived warnings created before cutoff. Returns the number of
	// rows archived.
	ArchiveOlderThan(ctx context.Context, userID string, cutoff, archivedAt time.Time) (int64, error)
}

// DeductionRepository defines data access for salary deductions.
// Deductions are insert-only; nothing updates or deletes them.
type DeductionRepository interface {
	Create(ctx context.Context, d Deduction) (Deduction, error)

	// SumForPeriod sums amounts over deductions whose created_at falls
	// inside [start, end].
	SumForPeriod(ctx context.Context, userID string, start, end time.Time) (decimal.Decimal, error)

	// ListForPeriod returns the user's deductions with created_at inside
	// [start, end], ordered by created_at ascending.
	ListForPeriod(ctx context.Context, userID string, start, end time.Time) ([]Deduction, error)
}
