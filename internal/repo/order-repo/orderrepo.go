package orderrepo

import (
	"context"
	"time"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/payroll"
	"github.com/GlebRadaev/repairshop/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const orderColumns = `id, technician_id, replacement_cost, total_price, payment_method, status, commission,
	created_at, paid_at, payout_week, payout_year, receipt_number, receipt_status`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func weekBounds(week payroll.PayoutWeek) (time.Time, time.Time) {
	return week.Start(), week.Next().Start()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.TechnicianID, &o.ReplacementCost, &o.TotalPrice, &o.PaymentMethod, &o.Status, &o.Commission,
		&o.CreatedAt, &o.PaidAt, &o.PayoutWeek, &o.PayoutYear, &o.ReceiptNumber, &o.ReceiptStatus)
	return o, err
}

func (r *Repository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
		INSERT INTO orders (technician_id, replacement_cost, total_price, payment_method, status, commission, receipt_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, order.TechnicianID, order.ReplacementCost, order.TotalPrice,
		order.PaymentMethod, order.Status, order.Commission, order.ReceiptStatus).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if pg.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) FindByTechnician(ctx context.Context, technicianID int) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE technician_id = $1 ORDER BY created_at DESC`
	orders, err := r.queryOrders(ctx, query, technicianID)
	if err != nil {
		zap.L().Error("can't get technician orders", zap.Int("technician_id", technicianID), zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// FindWeekOrders reads the three record shapes that can place an order in a
// payout week. Deduplication is left to payroll.CanonicalOrders.
func (r *Repository) FindWeekOrders(ctx context.Context, technicianID int, week payroll.PayoutWeek) (payroll.OrderSources, error) {
	start, next := weekBounds(week)

	byPaidAt, err := r.queryOrders(ctx, `SELECT `+orderColumns+` FROM orders
		WHERE technician_id = $1 AND paid_at >= $2 AND paid_at < $3 ORDER BY id`,
		technicianID, start, next)
	if err != nil {
		zap.L().Error("can't get week orders by paid_at", zap.Int("technician_id", technicianID), zap.Error(err))
		return payroll.OrderSources{}, err
	}

	byPayoutWeek, err := r.queryOrders(ctx, `SELECT `+orderColumns+` FROM orders
		WHERE technician_id = $1 AND paid_at IS NULL AND payout_week = $2 AND payout_year = $3 ORDER BY id`,
		technicianID, week.Number, week.Year)
	if err != nil {
		zap.L().Error("can't get week orders by payout week", zap.Int("technician_id", technicianID), zap.Error(err))
		return payroll.OrderSources{}, err
	}

	byCreatedAt, err := r.queryOrders(ctx, `SELECT `+orderColumns+` FROM orders
		WHERE technician_id = $1 AND paid_at IS NULL AND payout_week IS NULL AND created_at >= $2 AND created_at < $3 ORDER BY id`,
		technicianID, start, next)
	if err != nil {
		zap.L().Error("can't get week orders by created_at", zap.Int("technician_id", technicianID), zap.Error(err))
		return payroll.OrderSources{}, err
	}

	return payroll.OrderSources{
		ByPaidAt:     byPaidAt,
		ByPayoutWeek: byPayoutWeek,
		ByCreatedAt:  byCreatedAt,
	}, nil
}

func (r *Repository) UpdatePaymentMethod(ctx context.Context, id int, method domain.PaymentMethod, commission decimal.Decimal) error {
	query := `
		UPDATE orders
		SET payment_method = $2, commission = $3
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, id, method, commission)
	if err != nil {
		zap.L().Error("can't update payment method", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

// MarkPaid moves a pending order to paid. paid_at and the payout week are
// only written when still empty, so a week assigned once is never replaced.
func (r *Repository) MarkPaid(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE orders
		SET status = 'paid',
			payment_method = $2,
			commission = $3,
			paid_at = COALESCE(paid_at, $4),
			payout_week = COALESCE(payout_week, $5),
			payout_year = COALESCE(payout_year, $6),
			receipt_number = $7,
			receipt_status = $8
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, order.ID, order.PaymentMethod, order.Commission, order.PaidAt,
		order.PayoutWeek, order.PayoutYear, order.ReceiptNumber, order.ReceiptStatus)
	if err != nil {
		zap.L().Error("can't mark order paid", zap.Int("id", order.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

// UpdateStatus changes the status only when the order is still in from.
// Payout columns are left untouched.
func (r *Repository) UpdateStatus(ctx context.Context, id int, from, to domain.OrderStatus) error {
	query := `UPDATE orders SET status = $3 WHERE id = $1 AND status = $2`
	tag, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		zap.L().Error("can't update order status", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete order", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) FindUncheckedReceipts(ctx context.Context, limit uint32) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE receipt_status = 'unchecked'
		ORDER BY paid_at ASC
		LIMIT $1`
	orders, err := r.queryOrders(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get orders with unchecked receipts", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// UpdateReceiptStatuses stores a batch of lookup results in one transaction.
func (r *Repository) UpdateReceiptStatuses(ctx context.Context, statuses map[int]domain.ReceiptStatus) error {
	query := `UPDATE orders SET receipt_status = $2 WHERE id = $1 AND receipt_status = 'unchecked'`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for id, status := range statuses {
			if _, err := r.db.Exec(ctx, query, id, status); err != nil {
				zap.L().Error("failed to update receipt status", zap.Int("id", id), zap.Error(err))
				return err
			}
		}
		return nil
	})
}
