package warning

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type IssueWarningRequest struct {
	TargetUserID    string           `json:"target_user_id"`
	Reason          string           `json:"reason"`
	Note            *string          `json:"note,omitempty"`
	DeductionAmount *decimal.Decimal `json:"deduction_amount,omitempty"`
}

func (r *IssueWarningRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return ErrReasonRequired
	}
	if r.DeductionAmount != nil && r.DeductionAmount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

type CreateDeductionRequest struct {
	TargetUserID string          `json:"target_user_id"`
	Reason       string          `json:"reason"`
	Amount       decimal.Decimal `json:"amount"`
}

func (r *CreateDeductionRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return ErrReasonRequired
	}
	if r.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

type WarningResponse struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	Reason          string           `json:"reason"`
	Note            *string          `json:"note"`
	SourceRole      string           `json:"source_role"`
	SourceUserID    string           `json:"source_user_id"`
	DeductionAmount *decimal.Decimal `json:"deduction_amount"`
	IsRead          bool             `json:"is_read"`
	ReadAt          *time.Time       `json:"read_at"`
	ArchivedAt      *time.Time       `json:"archived_at"`
	CreatedAt       time.Time        `json:"created_at"`
}

type DeductionResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason"`
	SourceRole   string          `json:"source_role"`
	SourceUserID string          `json:"source_user_id"`
	WarningID    *string         `json:"warning_id"`
	CreatedAt    time.Time       `json:"created_at"`
}

// IssueWarningResponse carries the warning and, when a deduction was
// requested alongside it, the linked deduction.
type IssueWarningResponse struct {
	Warning   WarningResponse    `json:"warning"`
	Deduction *DeductionResponse `json:"deduction"`
}

func ToWarningResponse(w Warning) WarningResponse {
	return WarningResponse{
		ID:              w.ID,
		UserID:          w.UserID,
		Reason:          w.Reason,
		Note:            w.Note,
		SourceRole:      string(w.SourceRole),
		SourceUserID:    w.SourceUserID,
		DeductionAmount: w.DeductionAmount,
		IsRead:          w.IsRead,
		ReadAt:          w.ReadAt,
		ArchivedAt:      w.ArchivedAt,
		CreatedAt:       w.CreatedAt,
	}
}

func ToWarningResponses(warnings []Warning) []WarningResponse {
	result := make([]WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		result = append(result, ToWarningResponse(w))
	}
	return result
}

func ToDeductionResponse(d Deduction) DeductionResponse {
	return DeductionResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		Amount:       d.Amount,
		Reason:       d.Reason,
		SourceRole:   string(d.SourceRole),
		SourceUserID: d.SourceUserID,
		WarningID:    d.WarningID,
		CreatedAt:    d.CreatedAt,
	}
}

func ToDeductionResponses(deductions []Deduction) []DeductionResponse {
	result := make([]DeductionResponse, 0, len(deductions))
	for _, d := range deductions {
		result = append(result, ToDeductionResponse(d))
	}
	return result
}
