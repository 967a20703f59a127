package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)

	// ListActive returns every active user, the population the pending
	// payroll aggregate spans.
	ListActive(ctx context.Context) ([]User, error)
}
