package adjustmentservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/payroll"
)

//go:generate mockgen -source=adjustmentservice.go -destination=mock_adjustmentservice.go -package=adjustmentservice

type Repo interface {
	Create(ctx context.Context, adj *domain.SalaryAdjustment) (*domain.SalaryAdjustment, error)
	FindByID(ctx context.Context, id int) (*domain.SalaryAdjustment, error)
	Delete(ctx context.Context, id int) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

// Totals recomputes the week after a ledger change.
type Totals interface {
	WeeklyTotals(ctx context.Context, technicianID int, week payroll.PayoutWeek) (*payroll.WeeklyTotals, error)
	CurrentWeek() payroll.PayoutWeek
}

type Service struct {
	repo   Repo
	users  UserRepo
	totals Totals
	now    func() time.Time
}

func New(repo Repo, users UserRepo, totals Totals) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		totals: totals,
		now:    time.Now,
	}
}

// Create records an advance, discount or loan. A zero AvailableFrom means the
// adjustment can be deducted right away.
func (s *Service) Create(ctx context.Context, adj *domain.SalaryAdjustment) (*domain.SalaryAdjustment, error) {
	if _, err := domain.ParseAdjustmentType(string(adj.Type)); err != nil {
		return nil, err
	}
	if !adj.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	user, err := s.users.FindByID(ctx, adj.TechnicianID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrTechnicianNotFound
	}

	adj.CreatedAt = s.now().UTC()
	if adj.AvailableFrom.IsZero() {
		adj.AvailableFrom = adj.CreatedAt
	}

	created, err := s.repo.Create(ctx, adj)
	if err != nil {
		zap.L().Error("can't create adjustment", zap.Error(err))
		return nil, err
	}
	zap.L().Info("adjustment created",
		zap.Int("adjustment_id", created.ID),
		zap.Int("technician_id", created.TechnicianID),
		zap.String("type", string(created.Type)),
		zap.String("amount", created.Amount.String()))
	return created, nil
}

// Delete removes the adjustment with its application history and returns the
// technician's recomputed totals for the current week.
func (s *Service) Delete(ctx context.Context, id int) (*payroll.WeeklyTotals, error) {
	adj, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if adj == nil {
		return nil, domain.ErrAdjustmentNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	zap.L().Info("adjustment deleted", zap.Int("adjustment_id", id), zap.Int("technician_id", adj.TechnicianID))
	return s.totals.WeeklyTotals(ctx, adj.TechnicianID, s.totals.CurrentWeek())
}
