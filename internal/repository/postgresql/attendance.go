package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ttl-ops/portal-backend-go/internal/domain/attendance"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, user_id, date_key, timestamp, created_at`

// InsertIfAbsent implements attendance.AttendanceRepository.
//
// ON CONFLICT DO NOTHING plus a read-back keeps the operation idempotent
// under races: whichever mark lands first owns the row, the other call
// observes it.
func (r *attendanceRepositoryImpl) InsertIfAbsent(ctx context.Context, a attendance.Attendance) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	insert := `
		INSERT INTO attendances (id, user_id, date_key, timestamp)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date_key) DO NOTHING
	`

	tag, err := q.Exec(ctx, insert, uuid.NewString(), a.UserID, a.DateKey, a.Timestamp)
	if err != nil {
		return attendance.Attendance{}, false, fmt.Errorf("failed to insert attendance: %w", err)
	}

	created := tag.RowsAffected() == 1

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1 AND date_key = $2
	`

	var saved attendance.Attendance
	err = q.QueryRow(ctx, query, a.UserID, a.DateKey).Scan(
		&saved.ID, &saved.UserID, &saved.DateKey, &saved.Timestamp, &saved.CreatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, false, fmt.Errorf("failed to read attendance back: %w", err)
	}

	return saved, created, nil
}

// ListForMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListForMonth(ctx context.Context, userID, startDate, endDate string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1 AND date_key BETWEEN $2 AND $3
		ORDER BY date_key ASC
	`

	rows, err := q.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for month: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.DateKey, &a.Timestamp, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}
