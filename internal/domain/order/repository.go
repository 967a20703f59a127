package order

import (
	"context"
)

// OrderRepository defines data access for daily order submissions.
type OrderRepository interface {
	// Upsert inserts the submission or, when a row already exists for
	// (user_id, date_key) in a mutable state, overwrites its count and
	// resets it to PENDING. Returns ErrOrderLocked when the existing row
	// is APPROVED. The guard lives in the SQL so a race between two
	// submits still resolves to exactly one row.
	Upsert(ctx context.Context, o Order) (Order, error)

	GetByID(ctx context.Context, id string) (Order, error)

	// Decide applies a manager decision to the row.
	Decide(ctx context.Context, id string, status Status, approvedCount *int) (Order, error)

	// ListForMonth returns the user's submissions with date_key inside
	// [startDate, endDate], ordered by date_key ascending.
	ListForMonth(ctx context.Context, userID, startDate, endDate string) ([]Order, error)

	// ListPendingForMonth returns every PENDING submission in the window
	// across all users, the manager review queue.
	ListPendingForMonth(ctx context.Context, startDate, endDate string) ([]Order, error)

	// SumApprovedForMonth sums approved_count over APPROVED rows for the
	// user inside the day-key window.
	SumApprovedForMonth(ctx context.Context, userID, startDate, endDate string) (int64, error)
}
