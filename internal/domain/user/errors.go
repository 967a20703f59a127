package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserInactive           = errors.New("user is not active")
	ErrAdminAccessRequired    = errors.New("admin access required")
	ErrManagerAccessRequired  = errors.New("manager access required")
	ErrInvalidToken           = errors.New("invalid or missing token")
	ErrInsufficientPermission = errors.New("insufficient permissions")
)
