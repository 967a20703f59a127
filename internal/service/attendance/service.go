package attendance

import (
	"context"
	"time"

	"github.com/ttl-ops/portal-backend-go/internal/domain/attendance"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/monthwindow"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo}
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, userID string, now time.Time) (attendance.AttendanceResponse, error) {
	record, _, err := s.attendanceRepo.InsertIfAbsent(ctx, attendance.Attendance{
		UserID:    userID,
		DateKey:   monthwindow.DayKey(now),
		Timestamp: now.UTC(),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// ListForMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListForMonth(ctx context.Context, userID, monthKey string) ([]attendance.AttendanceResponse, error) {
	window, err := monthwindow.Resolve(monthKey)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListForMonth(ctx, userID, window.StartDate, window.EndDate)
	if err != nil {
		return nil, err
	}

	return attendance.ToResponses(records), nil
}
