package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ttl-ops/portal-backend-go/internal/domain/warning"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/database"
)

type warningRepositoryImpl struct {
	db *database.DB
}

func NewWarningRepository(db *database.DB) warning.WarningRepository {
	return &warningRepositoryImpl{db: db}
}

const warningColumns = `id, user_id, reason, note, source_role, source_user_id, deduction_amount, is_read, read_at, archived_at, created_at`

func scanWarning(row pgx.Row) (warning.Warning, error) {
	var w warning.Warning
	err := row.Scan(
		&w.ID, &w.UserID, &w.Reason, &w.Note, &w.SourceRole, &w.SourceUserID,
		&w.DeductionAmount, &w.IsRead, &w.ReadAt, &w.ArchivedAt, &w.CreatedAt,
	)
	return w, err
}

// Create implements warning.WarningRepository.
func (r *warningRepositoryImpl) Create(ctx context.Context, w warning.Warning) (warning.Warning, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO warnings (id, user_id, reason, note, source_role, source_user_id, deduction_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + warningColumns

	saved, err := scanWarning(q.QueryRow(ctx, query,
		uuid.NewString(), w.UserID, w.Reason, w.Note, w.SourceRole, w.SourceUserID, w.DeductionAmount,
	))
	if err != nil {
		return warning.Warning{}, fmt.Errorf("failed to create warning: %w", err)
	}

	return saved, nil
}

// GetByID implements warning.WarningRepository.
func (r *warningRepositoryImpl) GetByID(ctx context.Context, id string) (warning.Warning, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + warningColumns + ` FROM warnings WHERE id = $1`

	w, err := scanWarning(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return warning.Warning{}, warning.ErrWarningNotFound
		}
		return warning.Warning{}, fmt.Errorf("failed to get warning by id: %w", err)
	}

	return w, nil
}

// ListByUser implements warning.WarningRepository.
func (r *warningRepositoryImpl) ListByUser(ctx context.Context, userID string, includeArchived bool) ([]warning.Warning, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + warningColumns + `
		FROM warnings
		WHERE user_id = $1 AND ($2 OR archived_at IS NULL)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list warnings: %w", err)
	}
	defer rows.Close()

	var warnings []warning.Warning
	for rows.Next() {
		var w warning.Warning
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Reason, &w.Note, &w.SourceRole, &w.SourceUserID,
			&w.DeductionAmount, &w.IsRead, &w.ReadAt, &w.ArchivedAt, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan warning: %w", err)
		}
		warnings = append(warnings, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate warnings: %w", err)
	}

	return warnings, nil
}

// MarkRead implements warning.WarningRepository.
//
// The is_read guard keeps the first read_at; a second call is a no-op
// update returning the unchanged row.
func (r *warningRepositoryImpl) MarkRead(ctx context.Context, id string, readAt time.Time) (warning.Warning, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE warnings
		SET is_read = TRUE,
			read_at = CASE WHEN is_read THEN read_at ELSE $2 END
		WHERE id = $1
		RETURNING ` + warningColumns

	w, err := scanWarning(q.QueryRow(ctx, query, id, readAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return warning.Warning{}, warning.ErrWarningNotFound
		}
		return warning.Warning{}, fmt.Errorf("failed to mark warning read: %w", err)
	}

	return w, nil
}

// ArchiveOlderThan implements warning.WarningRepository.
func (r *warningRepositoryImpl) ArchiveOlderThan(ctx context.Context, userID string, cutoff, archivedAt time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE warnings
		SET archived_at = $3
		WHERE user_id = $1 AND archived_at IS NULL AND created_at < $2
	`

	tag, err := q.Exec(ctx, query, userID, cutoff, archivedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to archive stale warnings: %w", err)
	}

	return tag.RowsAffected(), nil
}
