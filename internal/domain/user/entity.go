package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Full access, sees organization-wide payroll
	RoleManager  Role = "MANAGER"  // Can approve orders and issue warnings
	RoleEmployee Role = "EMPLOYEE" // Regular employee
)

// Actor is the authenticated identity attached to a request. The trust
// boundary is upstream; by the time an Actor reaches a service its claims
// have already been verified.
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsManager checks if the actor is manager or admin
func (a Actor) IsManager() bool {
	return a.Role == RoleManager || a.Role == RoleAdmin
}

// User is owned by the account subsystem; this core only reads the fields
// that drive payroll: the per-order rate and the active flag.
type User struct {
	ID           string
	FullName     string
	Role         Role
	RatePerOrder *decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
