package attendance

import (
	"time"
)

type AttendanceResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	DateKey   string    `json:"date_key"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		DateKey:   a.DateKey,
		Timestamp: a.Timestamp,
		CreatedAt: a.CreatedAt,
	}
}

func ToResponses(records []Attendance) []AttendanceResponse {
	result := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		result = append(result, ToResponse(a))
	}
	return result
}
