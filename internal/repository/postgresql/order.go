package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ttl-ops/portal-backend-go/internal/domain/order"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/database"
)

type orderRepositoryImpl struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) order.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

const orderColumns = `id, user_id, date_key, submitted_count, approved_count, status, created_at, updated_at`

func scanOrder(row pgx.Row) (order.Order, error) {
	var o order.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.DateKey, &o.SubmittedCount, &o.ApprovedCount, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

// Upsert implements order.OrderRepository.
//
// The WHERE guard on the conflict clause makes an APPROVED row win any
// race: the statement then touches no row, RETURNING yields nothing and
// the caller gets ErrOrderLocked.
func (r *orderRepositoryImpl) Upsert(ctx context.Context, o order.Order) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO orders (id, user_id, date_key, submitted_count, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date_key) DO UPDATE
		SET submitted_count = EXCLUDED.submitted_count,
			approved_count = NULL,
			status = $5,
			updated_at = NOW()
		WHERE orders.status <> $6
		RETURNING ` + orderColumns

	saved, err := scanOrder(q.QueryRow(ctx, query,
		uuid.NewString(), o.UserID, o.DateKey, o.SubmittedCount, order.StatusPending, order.StatusApproved,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, order.ErrOrderLocked
		}
		return order.Order{}, fmt.Errorf("failed to upsert order: %w", err)
	}

	return saved, nil
}

// GetByID implements order.OrderRepository.
func (r *orderRepositoryImpl) GetByID(ctx context.Context, id string) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, order.ErrOrderNotFound
		}
		return order.Order{}, fmt.Errorf("failed to get order by id: %w", err)
	}

	return o, nil
}

// Decide implements order.OrderRepository.
func (r *orderRepositoryImpl) Decide(ctx context.Context, id string, status order.Status, approvedCount *int) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	// Approved rows are terminal; the guard keeps a racing second decision
	// from rewriting one.
	query := `
		UPDATE orders
		SET status = $2, approved_count = $3, updated_at = NOW()
		WHERE id = $1 AND status <> $4
		RETURNING ` + orderColumns

	o, err := scanOrder(q.QueryRow(ctx, query, id, status, approvedCount, order.StatusApproved))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, order.ErrOrderNotFound
		}
		return order.Order{}, fmt.Errorf("failed to decide order: %w", err)
	}

	return o, nil
}

// ListForMonth implements order.OrderRepository.
func (r *orderRepositoryImpl) ListForMonth(ctx context.Context, userID, startDate, endDate string) ([]order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1 AND date_key BETWEEN $2 AND $3
		ORDER BY date_key ASC
	`

	rows, err := q.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for month: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// ListPendingForMonth implements order.OrderRepository.
func (r *orderRepositoryImpl) ListPendingForMonth(ctx context.Context, startDate, endDate string) ([]order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1 AND date_key BETWEEN $2 AND $3
		ORDER BY date_key ASC, user_id ASC
	`

	rows, err := q.Query(ctx, query, order.StatusPending, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending orders: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// SumApprovedForMonth implements order.OrderRepository.
func (r *orderRepositoryImpl) SumApprovedForMonth(ctx context.Context, userID, startDate, endDate string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(approved_count), 0)
		FROM orders
		WHERE user_id = $1 AND status = $2 AND date_key BETWEEN $3 AND $4
	`

	var total int64
	err := q.QueryRow(ctx, query, userID, order.StatusApproved, startDate, endDate).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum approved orders: %w", err)
	}

	return total, nil
}

func collectOrders(rows pgx.Rows) ([]order.Order, error) {
	var orders []order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.DateKey, &o.SubmittedCount, &o.ApprovedCount, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}
