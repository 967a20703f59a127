package attendance

import (
	"time"
)

// Attendance is one presence mark per (user_id, date_key). Timestamp is the
// first-mark time and never moves; repeat marks on the same day observe the
// existing row.
type Attendance struct {
	ID        string
	UserID    string
	DateKey   string
	Timestamp time.Time
	CreatedAt time.Time
}
