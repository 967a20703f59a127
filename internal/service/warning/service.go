package warning

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ttl-ops/portal-backend-go/internal/domain/user"
	"github.com/ttl-ops/portal-backend-go/internal/domain/warning"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/database"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/monthwindow"
)

type WarningServiceImpl struct {
	db            database.TxRunner
	warningRepo   warning.WarningRepository
	deductionRepo warning.DeductionRepository
	userRepo      user.UserRepository
}

func NewWarningService(
	db database.TxRunner,
	warningRepo warning.WarningRepository,
	deductionRepo warning.DeductionRepository,
	userRepo user.UserRepository,
) warning.WarningService {
	return &WarningServiceImpl{
		db:            db,
		warningRepo:   warningRepo,
		deductionRepo: deductionRepo,
		userRepo:      userRepo,
	}
}

// IssueWarning implements warning.WarningService.
//
// Warning and deduction land in one transaction: no observer may see one
// without the other.
func (s *WarningServiceImpl) IssueWarning(ctx context.Context, actor user.Actor, req warning.IssueWarningRequest) (warning.IssueWarningResponse, error) {
	if err := req.Validate(); err != nil {
		return warning.IssueWarningResponse{}, err
	}

	target, err := s.userRepo.GetByID(ctx, req.TargetUserID)
	if err != nil {
		return warning.IssueWarningResponse{}, err
	}
	if !target.IsActive {
		return warning.IssueWarningResponse{}, user.ErrUserInactive
	}

	withDeduction := req.DeductionAmount != nil && req.DeductionAmount.IsPositive()

	newWarning := warning.Warning{
		UserID:       req.TargetUserID,
		Reason:       req.Reason,
		Note:         req.Note,
		SourceRole:   actor.Role,
		SourceUserID: actor.UserID,
	}
	if withDeduction {
		newWarning.DeductionAmount = req.DeductionAmount
	}

	var savedWarning warning.Warning
	var savedDeduction *warning.Deduction

	err = s.db.InTx(ctx, func(txCtx context.Context) error {
		savedWarning, err = s.warningRepo.Create(txCtx, newWarning)
		if err != nil {
			return err
		}

		if !withDeduction {
			return nil
		}

		d, err := s.deductionRepo.Create(txCtx, warning.Deduction{
			UserID:       req.TargetUserID,
			Amount:       *req.DeductionAmount,
			Reason:       fmt.Sprintf("warning %s: %s", savedWarning.ID, req.Reason),
			SourceRole:   actor.Role,
			SourceUserID: actor.UserID,
			WarningID:    &savedWarning.ID,
		})
		if err != nil {
			return err
		}

		savedDeduction = &d
		return nil
	})
	if err != nil {
		return warning.IssueWarningResponse{}, err
	}

	resp := warning.IssueWarningResponse{Warning: warning.ToWarningResponse(savedWarning)}
	if savedDeduction != nil {
		d := warning.ToDeductionResponse(*savedDeduction)
		resp.Deduction = &d
	}

	return resp, nil
}

// CreateDeduction implements warning.WarningService.
func (s *WarningServiceImpl) CreateDeduction(ctx context.Context, actor user.Actor, req warning.CreateDeductionRequest) (warning.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return warning.DeductionResponse{}, err
	}

	target, err := s.userRepo.GetByID(ctx, req.TargetUserID)
	if err != nil {
		return warning.DeductionResponse{}, err
	}
	if !target.IsActive {
		return warning.DeductionResponse{}, user.ErrUserInactive
	}

	saved, err := s.deductionRepo.Create(ctx, warning.Deduction{
		UserID:       req.TargetUserID,
		Amount:       req.Amount,
		Reason:       req.Reason,
		SourceRole:   actor.Role,
		SourceUserID: actor.UserID,
	})
	if err != nil {
		return warning.DeductionResponse{}, err
	}

	return warning.ToDeductionResponse(saved), nil
}

// MarkWarningRead implements warning.WarningService.
func (s *WarningServiceImpl) MarkWarningRead(ctx context.Context, userID, warningID string) (warning.WarningResponse, error) {
	existing, err := s.warningRepo.GetByID(ctx, warningID)
	if err != nil {
		return warning.WarningResponse{}, err
	}

	// A warning that belongs to someone else is indistinguishable from a
	// missing one to the caller.
	if existing.UserID != userID {
		return warning.WarningResponse{}, warning.ErrWarningNotFound
	}

	marked, err := s.warningRepo.MarkRead(ctx, warningID, time.Now().UTC())
	if err != nil {
		return warning.WarningResponse{}, err
	}

	return warning.ToWarningResponse(marked), nil
}

// SweepStaleWarnings implements warning.WarningService.
func (s *WarningServiceImpl) SweepStaleWarnings(ctx context.Context, userID string, now time.Time) (int64, error) {
	cutoff := now.Add(-warning.StaleAfter)
	return s.warningRepo.ArchiveOlderThan(ctx, userID, cutoff, now)
}

// ListWarnings implements warning.WarningService.
func (s *WarningServiceImpl) ListWarnings(ctx context.Context, userID string, includeArchived bool) ([]warning.WarningResponse, error) {
	if _, err := s.SweepStaleWarnings(ctx, userID, time.Now().UTC()); err != nil {
		return nil, err
	}

	warnings, err := s.warningRepo.ListByUser(ctx, userID, includeArchived)
	if err != nil {
		return nil, err
	}

	return warning.ToWarningResponses(warnings), nil
}

// ListDeductions implements warning.WarningService.
func (s *WarningServiceImpl) ListDeductions(ctx context.Context, userID, monthKey string) ([]warning.DeductionResponse, error) {
	bounds, err := monthwindow.Bounds(monthKey)
	if err != nil {
		return nil, err
	}

	deductions, err := s.deductionRepo.ListForPeriod(ctx, userID, bounds.Start, bounds.End)
	if err != nil {
		return nil, err
	}

	return warning.ToDeductionResponses(deductions), nil
}

// MonthlyTotal implements warning.WarningService.
func (s *WarningServiceImpl) MonthlyTotal(ctx context.Context, userID, monthKey string) (decimal.Decimal, error) {
	bounds, err := monthwindow.Bounds(monthKey)
	if err != nil {
		return decimal.Zero, err
	}

	return s.deductionRepo.SumForPeriod(ctx, userID, bounds.Start, bounds.End)
}
