package order

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type Action string

const (
	ActionApprove Action = "APPROVE"
	ActionReject  Action = "REJECT"
)

// Order is one employee's daily submission. At most one row exists per
// (user_id, date_key); that uniqueness constraint is what serializes
// concurrent submits for the same day.
type Order struct {
	ID             string
	UserID         string
	DateKey        string
	SubmittedCount int
	ApprovedCount  *int
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Locked reports whether the record is immutable to the employee.
// Approved orders have no outgoing transition.
func (o *Order) Locked() bool {
	return o.Status == StatusApproved
}
