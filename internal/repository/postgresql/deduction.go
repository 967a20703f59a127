package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ttl-ops/portal-backend-go/internal/domain/warning"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/database"
)

type deductionRepositoryImpl struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) warning.DeductionRepository {
	return &deductionRepositoryImpl{db: db}
}

const deductionColumns = `id, user_id, amount, reason, source_role, source_user_id, warning_id, created_at`

// Create implements warning.DeductionRepository.
func (r *deductionRepositoryImpl) Create(ctx context.Context, d warning.Deduction) (warning.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deductions (id, user_id, amount, reason, source_role, source_user_id, warning_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + deductionColumns

	var saved warning.Deduction
	err := q.QueryRow(ctx, query,
		uuid.NewString(), d.UserID, d.Amount, d.Reason, d.SourceRole, d.SourceUserID, d.WarningID,
	).Scan(
		&saved.ID, &saved.UserID, &saved.Amount, &saved.Reason,
		&saved.SourceRole, &saved.SourceUserID, &saved.WarningID, &saved.CreatedAt,
	)
	if err != nil {
		return warning.Deduction{}, fmt.Errorf("failed to create deduction: %w", err)
	}

	return saved, nil
}

// SumForPeriod implements warning.DeductionRepository.
//
// Deductions are windowed by created_at, not by any effective-month field;
// a deduction entered on the last UTC instant of a month belongs to that
// month only.
func (r *deductionRepositoryImpl) SumForPeriod(ctx context.Context, userID string, start, end time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM deductions
		WHERE user_id = $1 AND created_at BETWEEN $2 AND $3
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, userID, start, end).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum deductions: %w", err)
	}

	return total, nil
}

// ListForPeriod implements warning.DeductionRepository.
func (r *deductionRepositoryImpl) ListForPeriod(ctx context.Context, userID string, start, end time.Time) ([]warning.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + deductionColumns + `
		FROM deductions
		WHERE user_id = $1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	var deductions []warning.Deduction
	for rows.Next() {
		var d warning.Deduction
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.Amount, &d.Reason,
			&d.SourceRole, &d.SourceUserID, &d.WarningID, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deductions: %w", err)
	}

	return deductions, nil
}
