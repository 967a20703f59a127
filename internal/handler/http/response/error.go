package response

import (
	"errors"
	"net/http"

	"github.com/ttl-ops/portal-backend-go/internal/domain/attendance"
	"github.com/ttl-ops/portal-backend-go/internal/domain/order"
	"github.com/ttl-ops/portal-backend-go/internal/domain/user"
	"github.com/ttl-ops/portal-backend-go/internal/domain/warning"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/monthwindow"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Malformed input
	case errors.Is(err, monthwindow.ErrInvalidMonthKey),
		errors.Is(err, order.ErrInvalidDateKey),
		errors.Is(err, order.ErrInvalidSubmittedCount),
		errors.Is(err, order.ErrInvalidApprovedCount),
		errors.Is(err, order.ErrInvalidDecisionAction),
		errors.Is(err, warning.ErrInvalidAmount),
		errors.Is(err, warning.ErrReasonRequired):
		BadRequest(w, err.Error(), nil)

	// Missing entities
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, order.ErrOrderNotFound):
		NotFound(w, "Order not found")
	case errors.Is(err, warning.ErrWarningNotFound):
		NotFound(w, "Warning not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Wrong state
	case errors.Is(err, order.ErrOrderLocked):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrUserInactive):
		UnprocessableEntity(w, err.Error())

	// Access
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrInsufficientPermission):
		Forbidden(w, err.Error())

	// Default: infrastructure failures pass through unmasked as 500s.
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
