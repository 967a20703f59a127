package attendance

import (
	"context"
)

// AttendanceRepository defines data access for presence marks.
type AttendanceRepository interface {
	// InsertIfAbsent inserts the mark unless a row already exists for
	// (user_id, date_key), in which case the existing row is returned
	// unchanged. created reports which of the two happened. The
	// uniqueness constraint serializes racing marks: the loser reads the
	// winner's row back instead of erroring.
	InsertIfAbsent(ctx context.Context, a Attendance) (record Attendance, created bool, err error)

	// ListForMonth returns the user's marks with date_key inside
	// [startDate, endDate], ordered by date_key ascending.
	ListForMonth(ctx context.Context, userID, startDate, endDate string) ([]Attendance, error)
}
