package settlementservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/payroll"
	"github.com/GlebRadaev/repairshop/internal/pg"
)

//go:generate mockgen -source=settlementservice.go -destination=mock_settlementservice.go -package=settlementservice

type OrderRepo interface {
	FindWeekOrders(ctx context.Context, technicianID int, week payroll.PayoutWeek) (payroll.OrderSources, error)
}

type AdjustmentRepo interface {
	FindByTechnician(ctx context.Context, technicianID int) ([]domain.SalaryAdjustment, error)
	FindApplications(ctx context.Context, technicianID int) ([]domain.AdjustmentApplication, error)
	CreateApplication(ctx context.Context, app *domain.AdjustmentApplication) error
	Defer(ctx context.Context, id int, availableFrom time.Time, note string) error
}

type SettlementRepo interface {
	LockTechnician(ctx context.Context, technicianID int) error
	Create(ctx context.Context, s *domain.SettlementTransaction) (*domain.SettlementTransaction, error)
	FindByWeek(ctx context.Context, technicianID int, weekStart time.Time) ([]domain.SettlementTransaction, error)
	Find(ctx context.Context, filter domain.SettlementFilter) ([]domain.SettlementTransaction, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

// LedgerWarning is reported when the application history table is missing.
const LedgerWarning = "adjustment application history is unavailable: balances ignore earlier settlements and recording is disabled"

type Service struct {
	orders      OrderRepo
	adjustments AdjustmentRepo
	settlements SettlementRepo
	users       UserRepo
	txManager   pg.TXManager
	calculator  payroll.Calculator
	now         func() time.Time
}

func New(orders OrderRepo, adjustments AdjustmentRepo, settlements SettlementRepo, users UserRepo, txManager pg.TXManager, calculator payroll.Calculator) *Service {
	return &Service{
		orders:      orders,
		adjustments: adjustments,
		settlements: settlements,
		users:       users,
		txManager:   txManager,
		calculator:  calculator,
		now:         time.Now,
	}
}

func (s *Service) CurrentWeek() payroll.PayoutWeek {
	return payroll.CurrentWeek(s.now)
}

func (s *Service) WeeklyTotals(ctx context.Context, technicianID int, week payroll.PayoutWeek) (*payroll.WeeklyTotals, error) {
	if err := week.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureTechnician(ctx, technicianID); err != nil {
		return nil, err
	}
	q, warning, err := s.quote(ctx, technicianID, week)
	if err != nil {
		return nil, err
	}
	return &payroll.WeeklyTotals{TechnicianID: technicianID, Quote: q, Warning: warning}, nil
}

func (s *Service) PendingAdjustments(ctx context.Context, technicianID int, week payroll.PayoutWeek) (*payroll.PendingAdjustments, error) {
	if err := week.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureTechnician(ctx, technicianID); err != nil {
		return nil, err
	}
	ledger, warning, err := s.loadLedger(ctx, technicianID, week)
	if err != nil {
		return nil, err
	}
	return &payroll.PendingAdjustments{TechnicianID: technicianID, Ledger: ledger, Warning: warning}, nil
}

func (s *Service) Loans(ctx context.Context, technicianID int) ([]payroll.LoanBalance, error) {
	if err := s.ensureTechnician(ctx, technicianID); err != nil {
		return nil, err
	}
	return s.loanBalances(ctx, technicianID)
}

func (s *Service) History(ctx context.Context, filter domain.SettlementFilter) ([]domain.SettlementTransaction, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domain.ErrInvalidDateRange
	}
	settlements, err := s.settlements.Find(ctx, filter)
	if err != nil {
		zap.L().Error("can't get settlement history", zap.Error(err))
		return nil, err
	}
	return settlements, nil
}

// RecordSettlement settles the current week. The quote and the distribution
// are recomputed under a per-technician lock, and the settlement row, the
// applications and the deferrals are written in one transaction.
func (s *Service) RecordSettlement(ctx context.Context, req payroll.SettlementRequest) (*domain.SettlementTransaction, error) {
	if _, err := domain.ParseSettlementMethod(string(req.PaymentMethod)); err != nil {
		return nil, err
	}
	if err := s.ensureTechnician(ctx, req.TechnicianID); err != nil {
		return nil, err
	}
	week := s.CurrentWeek()

	var settlement *domain.SettlementTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.settlements.LockTechnician(ctx, req.TechnicianID); err != nil {
			return err
		}

		q, warning, err := s.quote(ctx, req.TechnicianID, week)
		if err != nil {
			return err
		}
		if warning != "" {
			return domain.ErrLedgerUnavailable
		}
		if !q.Settleable() {
			return domain.ErrNothingToSettle
		}

		target, err := resolveTarget(q, req)
		if err != nil {
			return err
		}
		loanTotal, err := s.checkLoanPayments(ctx, req)
		if err != nil {
			return err
		}
		if !target.GreaterThan(loanTotal) {
			return domain.ErrInvalidLoanPayment
		}

		d := s.calculator.Distribute(q, target)
		settlement, err = s.settlements.Create(ctx, &domain.SettlementTransaction{
			TechnicianID:  req.TechnicianID,
			WeekStart:     week.Start(),
			Amount:        target.Sub(loanTotal),
			PaymentMethod: req.PaymentMethod,
			Breakdown: domain.Breakdown{
				BaseAmount:        q.Gross,
				DeferredHoldback:  q.DeferredHoldback,
				AdjustmentsTotal:  d.AppliedTotal(),
				Adjustments:       d.Lines(),
				LoanPayments:      req.LoanPayments,
				LoanPaymentsTotal: loanTotal,
			},
			Reference: uuid.New(),
			CreatedBy: req.CreatedBy,
		})
		if err != nil {
			return err
		}
		return s.applyDistribution(ctx, req.TechnicianID, week, d)
	})
	if err != nil {
		zap.L().Warn("settlement not recorded",
			zap.Int("technician_id", req.TechnicianID),
			zap.String("week", week.String()),
			zap.Error(err))
		return nil, err
	}

	zap.L().Info("settlement recorded",
		zap.Int("technician_id", req.TechnicianID),
		zap.String("week", week.String()),
		zap.String("amount", settlement.Amount.String()),
		zap.String("reference", settlement.Reference.String()))
	return settlement, nil
}

func (s *Service) applyDistribution(ctx context.Context, technicianID int, week payroll.PayoutWeek, d payroll.Distribution) error {
	next := week.Next()
	for _, a := range d.Allocation {
		if a.Applied.IsPositive() {
			err := s.adjustments.CreateApplication(ctx, &domain.AdjustmentApplication{
				AdjustmentID:  a.Adjustment.ID,
				TechnicianID:  technicianID,
				WeekStart:     week.Start(),
				AppliedAmount: a.Applied,
			})
			if err != nil {
				return err
			}
		}
		if a.Carry {
			note := fmt.Sprintf("%s carried from %s to %s", a.Leftover.String(), week, next)
			if err := s.adjustments.Defer(ctx, a.Adjustment.ID, next.Start(), note); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveTarget maps presets onto the range bounds. A custom amount is
// validated against the range instead of being clamped.
func resolveTarget(q payroll.Quote, req payroll.SettlementRequest) (decimal.Decimal, error) {
	var target decimal.Decimal
	switch req.Preset {
	case payroll.PresetNet, payroll.PresetFull:
		target = q.Target(req.Preset, decimal.Zero)
	default:
		if !req.Amount.IsPositive() {
			return decimal.Zero, domain.ErrInvalidAmount
		}
		if !q.InRange(req.Amount) {
			return decimal.Zero, domain.ErrTargetOutOfRange
		}
		target = req.Amount
	}
	if !target.IsPositive() {
		return decimal.Zero, domain.ErrNothingToSettle
	}
	return target, nil
}

func (s *Service) checkLoanPayments(ctx context.Context, req payroll.SettlementRequest) (decimal.Decimal, error) {
	total := decimal.Zero
	if len(req.LoanPayments) == 0 {
		return total, nil
	}
	balances, err := s.loanBalances(ctx, req.TechnicianID)
	if err != nil {
		return decimal.Zero, err
	}
	outstanding := make(map[int]decimal.Decimal, len(balances))
	for _, b := range balances {
		outstanding[b.Loan.ID] = b.Outstanding
	}
	for _, p := range req.LoanPayments {
		left, ok := outstanding[p.AdjustmentID]
		if !ok || !p.Amount.IsPositive() || p.Amount.GreaterThan(left) {
			return decimal.Zero, domain.ErrInvalidLoanPayment
		}
		outstanding[p.AdjustmentID] = left.Sub(p.Amount)
		total = total.Add(p.Amount)
	}
	return total, nil
}

func (s *Service) quote(ctx context.Context, technicianID int, week payroll.PayoutWeek) (payroll.Quote, string, error) {
	sources, err := s.orders.FindWeekOrders(ctx, technicianID, week)
	if err != nil {
		return payroll.Quote{}, "", err
	}
	ledger, warning, err := s.loadLedger(ctx, technicianID, week)
	if err != nil {
		return payroll.Quote{}, "", err
	}
	settled, err := s.settlements.FindByWeek(ctx, technicianID, week.Start())
	if err != nil {
		return payroll.Quote{}, "", err
	}
	return s.calculator.Quote(payroll.CanonicalOrders(sources), ledger, settled), warning, nil
}

// loadLedger degrades to a ledger without application history when the
// applications table does not exist.
func (s *Service) loadLedger(ctx context.Context, technicianID int, week payroll.PayoutWeek) (payroll.Ledger, string, error) {
	adjustments, err := s.adjustments.FindByTechnician(ctx, technicianID)
	if err != nil {
		return payroll.Ledger{}, "", err
	}
	var warning string
	applications, err := s.adjustments.FindApplications(ctx, technicianID)
	if err != nil {
		if !pg.IsUndefinedTable(err) {
			return payroll.Ledger{}, "", err
		}
		zap.L().Warn(LedgerWarning, zap.Int("technician_id", technicianID))
		applications, warning = nil, LedgerWarning
	}
	return payroll.BuildLedger(adjustments, applications, week), warning, nil
}

func (s *Service) loanBalances(ctx context.Context, technicianID int) ([]payroll.LoanBalance, error) {
	adjustments, err := s.adjustments.FindByTechnician(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	settlements, err := s.settlements.Find(ctx, domain.SettlementFilter{TechnicianID: &technicianID})
	if err != nil {
		return nil, err
	}
	return payroll.LoanBalances(adjustments, settlements), nil
}

func (s *Service) ensureTechnician(ctx context.Context, technicianID int) error {
	user, err := s.users.FindByID(ctx, technicianID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrTechnicianNotFound
	}
	return nil
}
