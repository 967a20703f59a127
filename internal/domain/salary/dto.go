package salary

import (
	"github.com/shopspring/decimal"
)

// Breakdown is one user's monthly salary figure:
// max(0, approved orders × rate − deductions).
type Breakdown struct {
	UserID              string          `json:"user_id"`
	Month               string          `json:"month"`
	Salary              decimal.Decimal `json:"salary"`
	ApprovedOrdersCount int64           `json:"approved_orders_count"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`
}

// Liability is the organization-wide unpaid salary obligation for a month.
type Liability struct {
	TotalPendingSalary decimal.Decimal `json:"total_pending_salary"`
	Month              string          `json:"month"`
	UserCount          int             `json:"user_count"`
}
