package salary

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ttl-ops/portal-backend-go/internal/domain/order"
	"github.com/ttl-ops/portal-backend-go/internal/domain/salary"
	"github.com/ttl-ops/portal-backend-go/internal/domain/user"
	"github.com/ttl-ops/portal-backend-go/internal/domain/warning"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/database"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/monthwindow"
)

// maxConcurrentCalculations bounds the payroll fan-out so a large
// organization does not exhaust the connection pool.
const maxConcurrentCalculations = 8

type SalaryServiceImpl struct {
	db            database.TxRunner
	userRepo      user.UserRepository
	orderRepo     order.OrderRepository
	deductionRepo warning.DeductionRepository
}

func NewSalaryService(
	db database.TxRunner,
	userRepo user.UserRepository,
	orderRepo order.OrderRepository,
	deductionRepo warning.DeductionRepository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		db:            db,
		userRepo:      userRepo,
		orderRepo:     orderRepo,
		deductionRepo: deductionRepo,
	}
}

// Calculate implements salary.SalaryService.
func (s *SalaryServiceImpl) Calculate(ctx context.Context, userID, monthKey string) (salary.Breakdown, error) {
	window, err := monthwindow.Resolve(monthKey)
	if err != nil {
		return salary.Breakdown{}, err
	}
	bounds, err := monthwindow.Bounds(monthKey)
	if err != nil {
		return salary.Breakdown{}, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return salary.Breakdown{}, err
	}

	breakdown := salary.Breakdown{
		UserID:          userID,
		Month:           monthKey,
		Salary:          decimal.Zero,
		TotalDeductions: decimal.Zero,
	}

	// Users without a rate never accrue salary.
	if u.RatePerOrder == nil {
		return breakdown, nil
	}

	// Order and deduction sums must come from one snapshot so a
	// concurrent mutation cannot split them across versions.
	err = s.db.InTx(ctx, func(txCtx context.Context) error {
		approved, err := s.orderRepo.SumApprovedForMonth(txCtx, userID, window.StartDate, window.EndDate)
		if err != nil {
			return err
		}

		deductions, err := s.deductionRepo.SumForPeriod(txCtx, userID, bounds.Start, bounds.End)
		if err != nil {
			return err
		}

		breakdown.ApprovedOrdersCount = approved
		breakdown.TotalDeductions = deductions
		return nil
	})
	if err != nil {
		return salary.Breakdown{}, fmt.Errorf("failed to compute salary for user %s: %w", userID, err)
	}

	gross := decimal.NewFromInt(breakdown.ApprovedOrdersCount).Mul(*u.RatePerOrder)
	net := gross.Sub(breakdown.TotalDeductions)

	// Deductions alone never drive the figure below zero.
	if net.IsNegative() {
		net = decimal.Zero
	}
	breakdown.Salary = net

	return breakdown, nil
}

// PendingPayroll implements salary.SalaryService.
//
// Per-user computations are independent, so they run concurrently. Any
// single failure fails the whole aggregation; there is no best-effort
// total.
func (s *SalaryServiceImpl) PendingPayroll(ctx context.Context, monthKey string) (salary.Liability, error) {
	if _, err := monthwindow.Resolve(monthKey); err != nil {
		return salary.Liability{}, err
	}

	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return salary.Liability{}, err
	}

	breakdowns := make([]salary.Breakdown, len(users))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCalculations)
	for i, u := range users {
		g.Go(func() error {
			b, err := s.Calculate(gCtx, u.ID, monthKey)
			if err != nil {
				return err
			}
			breakdowns[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return salary.Liability{}, err
	}

	total := decimal.Zero
	for _, b := range breakdowns {
		total = total.Add(b.Salary)
	}

	return salary.Liability{
		TotalPendingSalary: total,
		Month:              monthKey,
		UserCount:          len(users),
	}, nil
}
