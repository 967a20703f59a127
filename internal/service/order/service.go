package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/ttl-ops/portal-backend-go/internal/domain/order"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/monthwindow"
)

type OrderServiceImpl struct {
	orderRepo order.OrderRepository
}

func NewOrderService(orderRepo order.OrderRepository) order.OrderService {
	return &OrderServiceImpl{orderRepo: orderRepo}
}

// Submit implements order.OrderService.
func (s *OrderServiceImpl) Submit(ctx context.Context, userID string, req order.SubmitOrderRequest) (order.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return order.OrderResponse{}, err
	}

	saved, err := s.orderRepo.Upsert(ctx, order.Order{
		UserID:         userID,
		DateKey:        req.DateKey,
		SubmittedCount: req.SubmittedCount,
		Status:         order.StatusPending,
	})
	if err != nil {
		return order.OrderResponse{}, err
	}

	return order.ToResponse(saved), nil
}

// Decide implements order.OrderService.
func (s *OrderServiceImpl) Decide(ctx context.Context, orderID string, req order.DecideOrderRequest) (order.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return order.OrderResponse{}, err
	}

	existing, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return order.OrderResponse{}, err
	}
	if existing.Locked() {
		return order.OrderResponse{}, order.ErrOrderLocked
	}

	status := order.StatusApproved
	approvedCount := req.ApprovedCount
	if order.Action(req.Action) == order.ActionReject {
		status = order.StatusRejected
		approvedCount = nil
	}

	decided, err := s.orderRepo.Decide(ctx, orderID, status, approvedCount)
	if err != nil {
		// The row existed a moment ago, so a miss here means a concurrent
		// approval got there first.
		if errors.Is(err, order.ErrOrderNotFound) {
			return order.OrderResponse{}, order.ErrOrderLocked
		}
		return order.OrderResponse{}, fmt.Errorf("failed to apply decision: %w", err)
	}

	return order.ToResponse(decided), nil
}

// ListForMonth implements order.OrderService.
func (s *OrderServiceImpl) ListForMonth(ctx context.Context, userID, monthKey string) ([]order.OrderResponse, error) {
	window, err := monthwindow.Resolve(monthKey)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListForMonth(ctx, userID, window.StartDate, window.EndDate)
	if err != nil {
		return nil, err
	}

	return order.ToResponses(orders), nil
}

// ListPendingForMonth implements order.OrderService.
func (s *OrderServiceImpl) ListPendingForMonth(ctx context.Context, monthKey string) ([]order.OrderResponse, error) {
	window, err := monthwindow.Resolve(monthKey)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListPendingForMonth(ctx, window.StartDate, window.EndDate)
	if err != nil {
		return nil, err
	}

	return order.ToResponses(orders), nil
}
