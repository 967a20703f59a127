package warning

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ttl-ops/portal-backend-go/internal/domain/user"
)

// StaleAfter is the age past which a warning is archived by the lazy sweep
// that runs ahead of active-list reads.
const StaleAfter = 30 * 24 * time.Hour

// Warning is a disciplinary notice. It optionally owns exactly one
// Deduction; DeductionAmount is a denormalized copy of that deduction's
// amount kept for display.
type Warning struct {
	ID              string
	UserID          string
	Reason          string
	Note            *string
	SourceRole      user.Role
	SourceUserID    string
	DeductionAmount *decimal.Decimal
	IsRead          bool
	ReadAt          *time.Time
	ArchivedAt      *time.Time
	CreatedAt       time.Time
}

// Deduction is an immutable salary charge. WarningID back-references the
// warning that spawned it, for traceability only; the warning side owns
// the link.
type Deduction struct {
	ID           string
	UserID       string
	Amount       decimal.Decimal
	Reason       string
	SourceRole   user.Role
	SourceUserID string
	WarningID    *string
	CreatedAt    time.Time
}
