package attendance_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttl-ops/portal-backend-go/internal/domain/attendance"
	attendanceservice "github.com/ttl-ops/portal-backend-go/internal/service/attendance"
)

// fakeAttendanceRepository mirrors the insert-if-absent semantics of the
// unique (user_id, date_key) row.
type fakeAttendanceRepository struct {
	records map[string]attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepository() *fakeAttendanceRepository {
	return &fakeAttendanceRepository{records: make(map[string]attendance.Attendance)}
}

func (r *fakeAttendanceRepository) InsertIfAbsent(_ context.Context, a attendance.Attendance) (attendance.Attendance, bool, error) {
	k := a.UserID + "|" + a.DateKey
	if existing, ok := r.records[k]; ok {
		return existing, false, nil
	}
	r.nextID++
	a.ID = fmt.Sprintf("attendance-%d", r.nextID)
	a.CreatedAt = time.Now().UTC()
	r.records[k] = a
	return a, true, nil
}

func (r *fakeAttendanceRepository) ListForMonth(_ context.Context, userID, startDate, endDate string) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, a := range r.records {
		if a.UserID == userID && a.DateKey >= startDate && a.DateKey <= endDate {
			result = append(result, a)
		}
	}
	return result, nil
}

func TestMark(t *testing.T) {
	ctx := context.Background()

	t.Run("derives the date key from the mark time in UTC", func(t *testing.T) {
		repo := newFakeAttendanceRepository()
		svc := attendanceservice.NewAttendanceService(repo)

		// 23:30 in UTC-7 is already the next day in UTC.
		loc := time.FixedZone("UTC-7", -7*3600)
		now := time.Date(2026, 3, 4, 23, 30, 0, 0, loc)

		resp, err := svc.Mark(ctx, "emp-1", now)
		require.NoError(t, err)

		assert.Equal(t, "2026-03-05", resp.DateKey)
		assert.Equal(t, now.UTC(), resp.Timestamp)
	})

	t.Run("second mark on the same day keeps the first record", func(t *testing.T) {
		repo := newFakeAttendanceRepository()
		svc := attendanceservice.NewAttendanceService(repo)

		morning := time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC)
		evening := time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC)

		first, err := svc.Mark(ctx, "emp-1", morning)
		require.NoError(t, err)

		second, err := svc.Mark(ctx, "emp-1", evening)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, morning, second.Timestamp)
	})

	t.Run("marks on different days are independent", func(t *testing.T) {
		repo := newFakeAttendanceRepository()
		svc := attendanceservice.NewAttendanceService(repo)

		first, err := svc.Mark(ctx, "emp-1", time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		second, err := svc.Mark(ctx, "emp-1", time.Date(2026, 3, 6, 8, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestAttendanceListForMonth(t *testing.T) {
	ctx := context.Background()

	repo := newFakeAttendanceRepository()
	svc := attendanceservice.NewAttendanceService(repo)

	for _, ts := range []time.Time{
		time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
	} {
		_, err := svc.Mark(ctx, "emp-1", ts)
		require.NoError(t, err)
	}

	records, err := svc.ListForMonth(ctx, "emp-1", "2026-03")
	require.NoError(t, err)

	require.Len(t, records, 2)
	keys := []string{records[0].DateKey, records[1].DateKey}
	assert.ElementsMatch(t, []string{"2026-03-01", "2026-03-31"}, keys)

	_, err = svc.ListForMonth(ctx, "emp-1", "2026/03")
	assert.Error(t, err)
}
