package order_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttl-ops/portal-backend-go/internal/domain/order"
	orderservice "github.com/ttl-ops/portal-backend-go/internal/service/order"
)

// fakeOrderRepository keeps orders in memory keyed by (user_id, date_key),
// mirroring the upsert and decision guards the SQL layer enforces.
type fakeOrderRepository struct {
	orders map[string]order.Order
	nextID int
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: make(map[string]order.Order)}
}

func (r *fakeOrderRepository) key(userID, dateKey string) string {
	return userID + "|" + dateKey
}

func (r *fakeOrderRepository) Upsert(_ context.Context, o order.Order) (order.Order, error) {
	k := r.key(o.UserID, o.DateKey)
	now := time.Now().UTC()

	if existing, ok := r.orders[k]; ok {
		if existing.Status == order.StatusApproved {
			return order.Order{}, order.ErrOrderLocked
		}
		existing.SubmittedCount = o.SubmittedCount
		existing.ApprovedCount = nil
		existing.Status = order.StatusPending
		existing.UpdatedAt = now
		r.orders[k] = existing
		return existing, nil
	}

	r.nextID++
	o.ID = fmt.Sprintf("order-%d", r.nextID)
	o.CreatedAt = now
	o.UpdatedAt = now
	r.orders[k] = o
	return o, nil
}

func (r *fakeOrderRepository) GetByID(_ context.Context, id string) (order.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return order.Order{}, order.ErrOrderNotFound
}

func (r *fakeOrderRepository) Decide(_ context.Context, id string, status order.Status, approvedCount *int) (order.Order, error) {
	for k, o := range r.orders {
		if o.ID != id {
			continue
		}
		if o.Status == order.StatusApproved {
			return order.Order{}, order.ErrOrderNotFound
		}
		o.Status = status
		o.ApprovedCount = approvedCount
		o.UpdatedAt = time.Now().UTC()
		r.orders[k] = o
		return o, nil
	}
	return order.Order{}, order.ErrOrderNotFound
}

func (r *fakeOrderRepository) ListForMonth(_ context.Context, userID, startDate, endDate string) ([]order.Order, error) {
	var result []order.Order
	for _, o := range r.orders {
		if o.UserID == userID && o.DateKey >= startDate && o.DateKey <= endDate {
			result = append(result, o)
		}
	}
	return result, nil
}

func (r *fakeOrderRepository) ListPendingForMonth(_ context.Context, startDate, endDate string) ([]order.Order, error) {
	var result []order.Order
	for _, o := range r.orders {
		if o.Status == order.StatusPending && o.DateKey >= startDate && o.DateKey <= endDate {
			result = append(result, o)
		}
	}
	return result, nil
}

func (r *fakeOrderRepository) SumApprovedForMonth(_ context.Context, userID, startDate, endDate string) (int64, error) {
	var sum int64
	for _, o := range r.orders {
		if o.UserID == userID && o.Status == order.StatusApproved && o.ApprovedCount != nil &&
			o.DateKey >= startDate && o.DateKey <= endDate {
			sum += int64(*o.ApprovedCount)
		}
	}
	return sum, nil
}

func intPtr(v int) *int { return &v }

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending submission", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := orderservice.NewOrderService(repo)

		resp, err := svc.Submit(ctx, "user-1", order.SubmitOrderRequest{
			DateKey:        "2026-03-05",
			SubmittedCount: 12,
		})
		require.NoError(t, err)

		assert.Equal(t, "user-1", resp.UserID)
		assert.Equal(t, "2026-03-05", resp.DateKey)
		assert.Equal(t, 12, resp.SubmittedCount)
		assert.Equal(t, string(order.StatusPending), resp.Status)
		assert.Nil(t, resp.ApprovedCount)
	})

	t.Run("resubmit over a rejected order resets it to pending", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := orderservice.NewOrderService(repo)

		first, err := svc.Submit(ctx, "user-1", order.SubmitOrderRequest{DateKey: "2026-03-05", SubmittedCount: 12})
		require.NoError(t, err)

		_, err = svc.Decide(ctx, first.ID, order.DecideOrderRequest{Action: string(order.ActionReject)})
		require.NoError(t, err)

		resp, err := svc.Submit(ctx, "user-1", order.SubmitOrderRequest{DateKey: "2026-03-05", SubmittedCount: 15})
		require.NoError(t, err)

		assert.Equal(t, first.ID, resp.ID)
		assert.Equal(t, 15, resp.SubmittedCount)
		assert.Equal(t, string(order.StatusPending), resp.Status)
		assert.Nil(t, resp.ApprovedCount)
	})

	t.Run("resubmit over an approved order is rejected", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := orderservice.NewOrderService(repo)

		first, err := svc.Submit(ctx, "user-1", order.SubmitOrderRequest{DateKey: "2026-03-05", SubmittedCount: 12})
		require.NoError(t, err)

		_, err = svc.Decide(ctx, first.ID, order.DecideOrderRequest{
			Action:        string(order.ActionApprove),
			ApprovedCount: intPtr(10),
		})
		require.NoError(t, err)

		_, err = svc.Submit(ctx, "user-1", order.SubmitOrderRequest{DateKey: "2026-03-05", SubmittedCount: 20})
		assert.ErrorIs(t, err, order.ErrOrderLocked)
	})

	t.Run("rejects an invalid date key", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := orderservice.NewOrderService(repo)

		_, err := svc.Submit(ctx, "user-1", order.SubmitOrderRequest{DateKey: "03/05/2026", SubmittedCount: 12})
		assert.ErrorIs(t, err, order.ErrInvalidDateKey)
	})

	t.Run("rejects a negative count", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := orderservice.NewOrderService(repo)

		_, err := svc.Submit(ctx, "user-1", order.SubmitOrderRequest{DateKey: "2026-03-05", SubmittedCount: -1})
		assert.ErrorIs(t, err, order.ErrInvalidSubmittedCount)
	})
}

func TestDecide(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T, svc order.OrderService) order.OrderResponse {
		t.Helper()
		resp, err := svc.Submit(ctx, "user-1", order.SubmitOrderRequest{DateKey: "2026-03-05", SubmittedCount: 12})
		require.NoError(t, err)
		return resp
	}

	t.Run("approve records the approved count", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := orderservice.NewOrderService(repo)
		submitted := submit(t, svc)

		resp, err := svc.Decide(ctx, submitted.ID, order.DecideOrderRequest{
			Action:        string(order.ActionApprove),
			ApprovedCount: intPtr(10),
		})
		require.NoError(t, err)

		assert.Equal(t, string(order.StatusApproved), resp.Status)
		require.NotNil(t, resp.ApprovedCount)
		assert.Equal(t, 10, *resp.ApprovedCount)
	})

	t.Run("approve without a count is invalid", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := orderservice.NewOrderService(repo)
		submitted := submit(t, svc)

		_, err := svc.Decide(ctx, submitted.ID, order.DecideOrderRequest{Action: string(order.ActionApprove)})
		assert.ErrorIs(t, err, order.ErrInvalidApprovedCount)
	})

	t.Run("reject clears any approved count", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := orderservice.NewOrderService(repo)
		submitted := submit(t, svc)

		resp, err := svc.Decide(ctx, submitted.ID, order.DecideOrderRequest{
			Action:        string(order.ActionReject),
			ApprovedCount: intPtr(5),
		})
		require.NoError(t, err)

		assert.Equal(t, string(order.StatusRejected), resp.Status)
		assert.Nil(t, resp.ApprovedCount)
	})

	t.Run("deciding an approved order again is locked", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := orderservice.NewOrderService(repo)
		submitted := submit(t, svc)

		_, err := svc.Decide(ctx, submitted.ID, order.DecideOrderRequest{
			Action:        string(order.ActionApprove),
			ApprovedCount: intPtr(10),
		})
		require.NoError(t, err)

		_, err = svc.Decide(ctx, submitted.ID, order.DecideOrderRequest{Action: string(order.ActionReject)})
		assert.ErrorIs(t, err, order.ErrOrderLocked)
	})

	t.Run("deciding a rejected order is allowed", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := orderservice.NewOrderService(repo)
		submitted := submit(t, svc)

		_, err := svc.Decide(ctx, submitted.ID, order.DecideOrderRequest{Action: string(order.ActionReject)})
		require.NoError(t, err)

		resp, err := svc.Decide(ctx, submitted.ID, order.DecideOrderRequest{
			Action:        string(order.ActionApprove),
			ApprovedCount: intPtr(8),
		})
		require.NoError(t, err)
		assert.Equal(t, string(order.StatusApproved), resp.Status)
	})

	t.Run("unknown order id", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := orderservice.NewOrderService(repo)

		_, err := svc.Decide(ctx, "missing", order.DecideOrderRequest{Action: string(order.ActionReject)})
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("unknown action", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := orderservice.NewOrderService(repo)
		submitted := submit(t, svc)

		_, err := svc.Decide(ctx, submitted.ID, order.DecideOrderRequest{Action: "ESCALATE"})
		assert.ErrorIs(t, err, order.ErrInvalidDecisionAction)
	})
}

func TestListForMonth(t *testing.T) {
	ctx := context.Background()

	t.Run("only returns orders inside the month window", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := orderservice.NewOrderService(repo)

		for _, dateKey := range []string{"2026-02-28", "2026-03-01", "2026-03-31", "2026-04-01"} {
			_, err := svc.Submit(ctx, "user-1", order.SubmitOrderRequest{DateKey: dateKey, SubmittedCount: 1})
			require.NoError(t, err)
		}

		responses, err := svc.ListForMonth(ctx, "user-1", "2026-03")
		require.NoError(t, err)

		require.Len(t, responses, 2)
		keys := []string{responses[0].DateKey, responses[1].DateKey}
		assert.ElementsMatch(t, []string{"2026-03-01", "2026-03-31"}, keys)
	})

	t.Run("rejects a malformed month key", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := orderservice.NewOrderService(repo)

		_, err := svc.ListForMonth(ctx, "user-1", "March 2026")
		assert.Error(t, err)
	})
}

func TestListPendingForMonth(t *testing.T) {
	ctx := context.Background()

	repo := newFakeOrderRepository()
	svc := orderservice.NewOrderService(repo)

	a, err := svc.Submit(ctx, "user-1", order.SubmitOrderRequest{DateKey: "2026-03-05", SubmittedCount: 3})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "user-2", order.SubmitOrderRequest{DateKey: "2026-03-06", SubmittedCount: 4})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, a.ID, order.DecideOrderRequest{
		Action:        string(order.ActionApprove),
		ApprovedCount: intPtr(3),
	})
	require.NoError(t, err)

	pending, err := svc.ListPendingForMonth(ctx, "2026-03")
	require.NoError(t, err)

	require.Len(t, pending, 1)
	assert.Equal(t, "user-2", pending[0].UserID)
}
