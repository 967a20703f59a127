package order

import (
	"context"
)

// OrderService defines business logic for the order submission lifecycle.
type OrderService interface {
	// Submit creates or resubmits the caller's daily order count.
	Submit(ctx context.Context, userID string, req SubmitOrderRequest) (OrderResponse, error)

	// Decide approves or rejects a submission (manager/admin action).
	Decide(ctx context.Context, orderID string, req DecideOrderRequest) (OrderResponse, error)

	// ListForMonth returns one user's submissions for the month.
	ListForMonth(ctx context.Context, userID, monthKey string) ([]OrderResponse, error)

	// ListPendingForMonth returns the review queue for the month.
	ListPendingForMonth(ctx context.Context, monthKey string) ([]OrderResponse, error)
}
