package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ttl-ops/portal-backend-go/internal/domain/user"
	"github.com/ttl-ops/portal-backend-go/internal/domain/warning"
	"github.com/ttl-ops/portal-backend-go/internal/handler/http/response"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/jwt"
)

type WarningHandler interface {
	Issue(w http.ResponseWriter, r *http.Request)
	CreateDeduction(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	ListDeductions(w http.ResponseWriter, r *http.Request)
}

type warningHandlerImpl struct {
	jwtService     jwt.Service
	warningService warning.WarningService
}

func NewWarningHandler(jwtService jwt.Service, warningService warning.WarningService) WarningHandler {
	return &warningHandlerImpl{jwtService: jwtService, warningService: warningService}
}

func (h *warningHandlerImpl) Issue(w http.ResponseWriter, r *http.Request) {
	actor, err := h.jwtService.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req warning.IssueWarningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.warningService.IssueWarning(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Warning issued", result)
}

func (h *warningHandlerImpl) CreateDeduction(w http.ResponseWriter, r *http.Request) {
	actor, err := h.jwtService.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req warning.CreateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.warningService.CreateDeduction(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction recorded", result)
}

func (h *warningHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, err := h.jwtService.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	includeArchived := r.URL.Query().Get("include_archived") == "true"

	result, err := h.warningService.ListWarnings(r.Context(), actor.UserID, includeArchived)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *warningHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor, err := h.jwtService.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Warning ID is required", nil)
		return
	}

	result, err := h.warningService.MarkWarningRead(r.Context(), actor.UserID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListDeductions returns deduction lines for a month. Employees see their
// own; managers may pass user_id to inspect someone else's.
func (h *warningHandlerImpl) ListDeductions(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.warningService.ListDeductions(r.Context(), userID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
