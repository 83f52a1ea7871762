package orderservice

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/payroll"
)

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

type Repo interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByTechnician(ctx context.Context, technicianID int) ([]domain.Order, error)
	UpdatePaymentMethod(ctx context.Context, id int, method domain.PaymentMethod, commission decimal.Decimal) error
	MarkPaid(ctx context.Context, order *domain.Order) error
	UpdateStatus(ctx context.Context, id int, from, to domain.OrderStatus) error
	Delete(ctx context.Context, id int) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Totals interface {
	WeeklyTotals(ctx context.Context, technicianID int, week payroll.PayoutWeek) (*payroll.WeeklyTotals, error)
	CurrentWeek() payroll.PayoutWeek
}

type Service struct {
	repo   Repo
	users  UserRepo
	totals Totals
	policy payroll.CommissionPolicy
	now    func() time.Time
}

func New(repo Repo, users UserRepo, totals Totals, policy payroll.CommissionPolicy) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		totals: totals,
		policy: policy,
		now:    time.Now,
	}
}

// Create registers a pending order with a commission snapshot for its
// current payment method.
func (s *Service) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	method, err := domain.ParsePaymentMethod(string(order.PaymentMethod))
	if err != nil {
		return nil, err
	}
	if order.ReplacementCost.IsNegative() || !order.TotalPrice.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	user, err := s.users.FindByID(ctx, order.TechnicianID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrTechnicianNotFound
	}

	order.PaymentMethod = method
	order.Status = domain.OrderPending
	order.ReceiptStatus = domain.ReceiptNone
	order.Commission = s.policy.Calculate(method, order.ReplacementCost, order.TotalPrice)

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// SetPaymentMethod is only allowed while the order is pending. Switching to
// PaymentNone keeps the stored commission.
func (s *Service) SetPaymentMethod(ctx context.Context, id int, method domain.PaymentMethod) (*domain.Order, error) {
	method, err := domain.ParsePaymentMethod(string(method))
	if err != nil {
		return nil, err
	}
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderPending {
		return nil, domain.ErrInvalidTransition
	}

	if method != domain.PaymentNone {
		order.Commission = s.policy.Calculate(method, order.ReplacementCost, order.TotalPrice)
	}
	order.PaymentMethod = method
	if err := s.repo.UpdatePaymentMethod(ctx, id, method, order.Commission); err != nil {
		return nil, err
	}
	return order, nil
}

// Pay marks a pending order as paid. The commission is recomputed for the
// final method and the payout week is fixed from the payment time; a week
// already stored on the order is never overwritten.
func (s *Service) Pay(ctx context.Context, id int, method domain.PaymentMethod, receiptNumber string) (*domain.Order, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	switch order.Status {
	case domain.OrderPending:
	case domain.OrderPaid:
		return nil, domain.ErrOrderAlreadyPaid
	default:
		return nil, domain.ErrInvalidTransition
	}

	if method == "" {
		method = order.PaymentMethod
	}
	method, err = domain.ParsePaymentMethod(string(method))
	if err != nil {
		return nil, err
	}
	if method == domain.PaymentNone {
		return nil, domain.ErrInvalidPaymentMethod
	}

	paidAt := s.now().UTC()
	week := payroll.WeekOf(paidAt)
	order.Status = domain.OrderPaid
	order.PaymentMethod = method
	order.Commission = s.policy.Calculate(method, order.ReplacementCost, order.TotalPrice)
	if order.PaidAt == nil {
		order.PaidAt = &paidAt
	}
	if order.PayoutWeek == nil || order.PayoutYear == nil {
		order.PayoutWeek, order.PayoutYear = &week.Number, &week.Year
	}
	if number := strings.TrimSpace(receiptNumber); number != "" {
		order.ReceiptNumber = &number
		order.ReceiptStatus = domain.ReceiptUnchecked
	}

	if err := s.repo.MarkPaid(ctx, order); err != nil {
		return nil, err
	}
	zap.L().Info("order marked paid",
		zap.Int("order_id", order.ID),
		zap.Int("technician_id", order.TechnicianID),
		zap.String("commission", order.Commission.String()),
		zap.String("week", payroll.PayoutWeek{Number: *order.PayoutWeek, Year: *order.PayoutYear}.String()))
	return order, nil
}

// Return moves a paid order to returned. Its commission becomes a penalty in
// the week it was paid in.
func (s *Service) Return(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderPaid {
		return nil, domain.ErrInvalidTransition
	}
	return s.transition(ctx, order, domain.OrderReturned)
}

func (s *Service) Cancel(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderPending && order.Status != domain.OrderPaid {
		return nil, domain.ErrInvalidTransition
	}
	return s.transition(ctx, order, domain.OrderCancelled)
}

func (s *Service) transition(ctx context.Context, order *domain.Order, to domain.OrderStatus) (*domain.Order, error) {
	if err := s.repo.UpdateStatus(ctx, order.ID, order.Status, to); err != nil {
		return nil, err
	}
	zap.L().Info("order status changed",
		zap.Int("order_id", order.ID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(to)))
	order.Status = to
	return order, nil
}

// List returns the technician's orders, newest first. Pending orders show
// the commission their current method would give.
func (s *Service) List(ctx context.Context, technicianID int) ([]domain.Order, error) {
	orders, err := s.repo.FindByTechnician(ctx, technicianID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	for i := range orders {
		o := &orders[i]
		if o.Status != domain.OrderPending || o.PaymentMethod == domain.PaymentNone {
			continue
		}
		if _, err := domain.ParsePaymentMethod(string(o.PaymentMethod)); err != nil {
			zap.L().Warn("unknown payment method on order", zap.Int("order_id", o.ID), zap.String("method", string(o.PaymentMethod)))
			continue
		}
		o.Commission = s.policy.Calculate(o.PaymentMethod, o.ReplacementCost, o.TotalPrice)
	}
	return orders, nil
}

// Delete removes the order and returns the recomputed totals of the week it
// counted towards.
func (s *Service) Delete(ctx context.Context, id int) (*payroll.WeeklyTotals, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	zap.L().Info("order deleted", zap.Int("order_id", id), zap.Int("technician_id", order.TechnicianID))
	return s.totals.WeeklyTotals(ctx, order.TechnicianID, s.weekOf(order))
}

func (s *Service) weekOf(order *domain.Order) payroll.PayoutWeek {
	switch {
	case order.PayoutWeek != nil && order.PayoutYear != nil:
		return payroll.PayoutWeek{Number: *order.PayoutWeek, Year: *order.PayoutYear}
	case order.PaidAt != nil:
		return payroll.WeekOf(*order.PaidAt)
	}
	return s.totals.CurrentWeek()
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Order, error) {
	return s.find(ctx, id)
}

func (s *Service) find(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}
