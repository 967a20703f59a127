package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for daily presence marking.
type AttendanceService interface {
	// Mark records the caller's presence for the UTC calendar day of now.
	// Marking twice in one day returns the first mark unchanged.
	Mark(ctx context.Context, userID string, now time.Time) (AttendanceResponse, error)

	// ListForMonth returns the caller's marks for the month.
	ListForMonth(ctx context.Context, userID, monthKey string) ([]AttendanceResponse, error)
}
