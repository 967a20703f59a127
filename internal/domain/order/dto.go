package order

import (
	"time"

	"github.com/ttl-ops/portal-backend-go/internal/pkg/monthwindow"
)

type SubmitOrderRequest struct {
	DateKey        string `json:"date_key"`
	SubmittedCount int    `json:"submitted_count"`
}

func (r *SubmitOrderRequest) Validate() error {
	if !monthwindow.IsValidDayKey(r.DateKey) {
		return ErrInvalidDateKey
	}
	if r.SubmittedCount < 0 {
		return ErrInvalidSubmittedCount
	}
	return nil
}

type DecideOrderRequest struct {
	Action        string `json:"action"`
	ApprovedCount *int   `json:"approved_count,omitempty"`
}

func (r *DecideOrderRequest) Validate() error {
	switch Action(r.Action) {
	case ActionApprove:
		if r.ApprovedCount == nil || *r.ApprovedCount < 0 {
			return ErrInvalidApprovedCount
		}
	case ActionReject:
		// approved_count is ignored on rejection
	default:
		return ErrInvalidDecisionAction
	}
	return nil
}

type OrderResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	DateKey        string    `json:"date_key"`
	SubmittedCount int       `json:"submitted_count"`
	ApprovedCount  *int      `json:"approved_count"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToResponse(o Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		UserID:         o.UserID,
		DateKey:        o.DateKey,
		SubmittedCount: o.SubmittedCount,
		ApprovedCount:  o.ApprovedCount,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func ToResponses(orders []Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, ToResponse(o))
	}
	return result
}
