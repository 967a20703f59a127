package http

import (
	"net/http"

	"github.com/ttl-ops/portal-backend-go/internal/domain/salary"
	"github.com/ttl-ops/portal-backend-go/internal/domain/user"
	"github.com/ttl-ops/portal-backend-go/internal/handler/http/response"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/jwt"
)

type SalaryHandler interface {
	GetSalary(w http.ResponseWriter, r *http.Request)
	GetPendingPayroll(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	jwtService    jwt.Service
	salaryService salary.SalaryService
}

func NewSalaryHandler(jwtService jwt.Service, salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{jwtService: jwtService, salaryService: salaryService}
}

// GetSalary returns one user's monthly breakdown. Employees see their own;
// managers may pass user_id for anyone.
func (h *salaryHandlerImpl) GetSalary(w http.ResponseWriter, r *http.Request) {
	actor, err := h.jwtService.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	month := r.URL.Query().Get("month")
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		userID = actor.UserID
	}
	if userID != actor.UserID && !actor.IsManager() {
		response.HandleError(w, user.ErrInsufficientPermission)
		return
	}

	result, err := h.salaryService.Calculate(r.Context(), userID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) GetPendingPayroll(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.salaryService.PendingPayroll(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
