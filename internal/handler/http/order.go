package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ttl-ops/portal-backend-go/internal/domain/order"
	"github.com/ttl-ops/portal-backend-go/internal/handler/http/response"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/jwt"
)

type OrderHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type orderHandlerImpl struct {
	jwtService   jwt.Service
	orderService order.OrderService
}

func NewOrderHandler(jwtService jwt.Service, orderService order.OrderService) OrderHandler {
	return &orderHandlerImpl{jwtService: jwtService, orderService: orderService}
}

func (h *orderHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	actor, err := h.jwtService.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req order.SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.orderService.Submit(r.Context(), actor.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Order submitted", result)
}

func (h *orderHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, err := h.jwtService.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	month := r.URL.Query().Get("month")

	result, err := h.orderService.ListForMonth(r.Context(), actor.UserID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *orderHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.orderService.ListPendingForMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *orderHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Order ID is required", nil)
		return
	}

	var req order.DecideOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.orderService.Decide(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Decision applied", result)
}
