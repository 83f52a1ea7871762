package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/payroll"
	"github.com/GlebRadaev/repairshop/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var columns = []string{"id", "technician_id", "replacement_cost", "total_price", "payment_method", "status", "commission",
	"created_at", "paid_at", "payout_week", "payout_year", "receipt_number", "receipt_status"}

var (
	createdAt = time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
	paidAt    = time.Date(2026, 10, 13, 16, 30, 0, 0, time.UTC)
	week      = 41
	year      = 2026
	receipt   = "INV-0042"
)

func pendingRow(rows *pgxmock.Rows, id int) *pgxmock.Rows {
	return rows.AddRow(id, 3, decimal.NewFromInt(20000), decimal.NewFromInt(120000), domain.PaymentNone, domain.OrderPending,
		decimal.Zero, createdAt, nil, nil, nil, nil, domain.ReceiptNone)
}

func paidRow(rows *pgxmock.Rows, id int) *pgxmock.Rows {
	return rows.AddRow(id, 3, decimal.NewFromInt(20000), decimal.NewFromInt(120000), domain.PaymentCash, domain.OrderPaid,
		decimal.NewFromInt(40000), createdAt, &paidAt, &week, &year, &receipt, domain.ReceiptUnchecked)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		check     func(t *testing.T, order *domain.Order)
	}{
		{
			name: "Paid order with payout week",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
					WithArgs(1).
					WillReturnRows(paidRow(pgxmock.NewRows(columns), 1))
			},
			check: func(t *testing.T, order *domain.Order) {
				require.NotNil(t, order)
				assert.Equal(t, domain.OrderPaid, order.Status)
				assert.True(t, order.Commission.Equal(decimal.NewFromInt(40000)))
				require.NotNil(t, order.PayoutWeek)
				assert.Equal(t, 41, *order.PayoutWeek)
				assert.Equal(t, receipt, *order.ReceiptNumber)
				assert.Equal(t, paidAt, *order.PaidAt)
			},
		},
		{
			name: "Pending order has no payout columns",
			id:   2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
					WithArgs(2).
					WillReturnRows(pendingRow(pgxmock.NewRows(columns), 2))
			},
			check: func(t *testing.T, order *domain.Order) {
				require.NotNil(t, order)
				assert.Nil(t, order.PaidAt)
				assert.Nil(t, order.PayoutWeek)
				assert.False(t, order.WasPaid())
			},
		},
		{
			name: "Order does not exist",
			id:   3,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
					WithArgs(3).
					WillReturnError(pgx.ErrNoRows)
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Nil(t, order)
			},
		},
		{
			name: "Database error",
			id:   4,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
					WithArgs(4).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			order, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			tt.check(t, order)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)

	order := &domain.Order{
		TechnicianID:    3,
		ReplacementCost: decimal.NewFromInt(20000),
		TotalPrice:      decimal.NewFromInt(120000),
		PaymentMethod:   domain.PaymentCash,
		Status:          domain.OrderPending,
		Commission:      decimal.NewFromInt(40000),
		ReceiptStatus:   domain.ReceiptNone,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs(3, pgxmock.AnyArg(), pgxmock.AnyArg(), domain.PaymentCash, domain.OrderPending, pgxmock.AnyArg(), domain.ReceiptNone).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, createdAt))

	result, err := repo.Create(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, 10, result.ID)
	assert.Equal(t, createdAt, result.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs(3, pgxmock.AnyArg(), pgxmock.AnyArg(), domain.PaymentCash, domain.OrderPending, pgxmock.AnyArg(), domain.ReceiptNone).
		WillReturnError(errors.New("database error"))
	_, err = repo.Create(context.Background(), order)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByTechnician(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   bool
		expectedIDs []int
	}{
		{
			name: "Orders found",
			mockSetup: func() {
				rows := paidRow(pendingRow(pgxmock.NewRows(columns), 2), 1)
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE technician_id = $1 ORDER BY created_at DESC")).
					WithArgs(3).
					WillReturnRows(rows)
			},
			expectedIDs: []int{2, 1},
		},
		{
			name: "Scan row error",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow("x", 3, decimal.Zero, decimal.Zero, domain.PaymentNone, domain.OrderPending,
						decimal.Zero, createdAt, nil, nil, nil, nil, domain.ReceiptNone)
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE technician_id = $1")).
					WithArgs(3).
					WillReturnRows(rows)
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE technician_id = $1")).
					WithArgs(3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			orders, err := repo.FindByTechnician(context.Background(), 3)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			ids := make([]int, 0, len(orders))
			for _, o := range orders {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestRepository_FindWeekOrders(t *testing.T) {
	repo, mock, _ := NewMock(t)
	payoutWeek := payroll.PayoutWeek{Number: 41, Year: 2026}
	start := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	next := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	t.Run("All three shapes are read", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("paid_at >= $2 AND paid_at < $3")).
			WithArgs(3, start, next).
			WillReturnRows(paidRow(pgxmock.NewRows(columns), 1))
		mock.ExpectQuery(regexp.QuoteMeta("paid_at IS NULL AND payout_week = $2 AND payout_year = $3")).
			WithArgs(3, 41, 2026).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(5, 3, decimal.Zero, decimal.Zero, domain.PaymentCash, domain.OrderPaid,
				decimal.NewFromInt(12000), createdAt, nil, &week, &year, nil, domain.ReceiptNone))
		mock.ExpectQuery(regexp.QuoteMeta("payout_week IS NULL AND created_at >= $2 AND created_at < $3")).
			WithArgs(3, start, next).
			WillReturnRows(pendingRow(pgxmock.NewRows(columns), 6))

		sources, err := repo.FindWeekOrders(context.Background(), 3, payoutWeek)
		require.NoError(t, err)
		require.Len(t, sources.ByPaidAt, 1)
		require.Len(t, sources.ByPayoutWeek, 1)
		require.Len(t, sources.ByCreatedAt, 1)
		assert.Equal(t, 5, sources.ByPayoutWeek[0].ID)
		assert.Len(t, payroll.CanonicalOrders(sources), 3)
	})

	t.Run("Error stops the read", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("paid_at >= $2 AND paid_at < $3")).
			WithArgs(3, start, next).
			WillReturnRows(pgxmock.NewRows(columns))
		mock.ExpectQuery(regexp.QuoteMeta("payout_week = $2 AND payout_year = $3")).
			WithArgs(3, 41, 2026).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindWeekOrders(context.Background(), 3, payoutWeek)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkPaid(t *testing.T) {
	repo, mock, _ := NewMock(t)
	order := &domain.Order{
		ID:            1,
		PaymentMethod: domain.PaymentCard,
		Commission:    decimal.NewFromInt(40000),
		PaidAt:        &paidAt,
		PayoutWeek:    &week,
		PayoutYear:    &year,
		ReceiptNumber: &receipt,
		ReceiptStatus: domain.ReceiptUnchecked,
	}

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Pending order is paid",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("payout_week = COALESCE(payout_week, $5)")).
					WithArgs(1, domain.PaymentCard, pgxmock.AnyArg(), &paidAt, &week, &year, &receipt, domain.ReceiptUnchecked).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Order is no longer pending",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = 'pending'")).
					WithArgs(1, domain.PaymentCard, pgxmock.AnyArg(), &paidAt, &week, &year, &receipt, domain.ReceiptUnchecked).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr:   true,
			expectedErr: domain.ErrInvalidTransition,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
					WithArgs(1, domain.PaymentCard, pgxmock.AnyArg(), &paidAt, &week, &year, &receipt, domain.ReceiptUnchecked).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.MarkPaid(context.Background(), order)
			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}

func TestRepository_StatusUpdates(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Payment method on pending order", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET payment_method = $2, commission = $3")).
			WithArgs(1, domain.PaymentTransfer, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdatePaymentMethod(context.Background(), 1, domain.PaymentTransfer, decimal.NewFromInt(25613)))
	})

	t.Run("Payment method on paid order", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET payment_method = $2, commission = $3")).
			WithArgs(1, domain.PaymentTransfer, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.UpdatePaymentMethod(context.Background(), 1, domain.PaymentTransfer, decimal.NewFromInt(25613))
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("Return a paid order", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $3 WHERE id = $1 AND status = $2")).
			WithArgs(1, domain.OrderPaid, domain.OrderReturned).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdateStatus(context.Background(), 1, domain.OrderPaid, domain.OrderReturned))
	})

	t.Run("Status changed concurrently", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $3")).
			WithArgs(1, domain.OrderPending, domain.OrderCancelled).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.UpdateStatus(context.Background(), 1, domain.OrderPending, domain.OrderCancelled)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("Delete existing order", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(context.Background(), 1))
	})

	t.Run("Delete missing order", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
			WithArgs(2).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(context.Background(), 2), domain.ErrOrderNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Receipts(t *testing.T) {
	repo, mock, tx := NewMock(t)

	t.Run("Unchecked receipts", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE receipt_status = 'unchecked'")).
			WithArgs(10).
			WillReturnRows(paidRow(pgxmock.NewRows(columns), 1))
		orders, err := repo.FindUncheckedReceipts(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, domain.ReceiptUnchecked, orders[0].ReceiptStatus)
	})

	t.Run("Store lookup results", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET receipt_status = $2")).
				WithArgs(1, domain.ReceiptFound).
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			return fn(ctx)
		})
		assert.NoError(t, repo.UpdateReceiptStatuses(context.Background(), map[int]domain.ReceiptStatus{1: domain.ReceiptFound}))
	})

	t.Run("Store lookup results fails", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET receipt_status = $2")).
				WithArgs(1, domain.ReceiptMissing).
				WillReturnError(errors.New("database error"))
			return fn(ctx)
		})
		assert.Error(t, repo.UpdateReceiptStatuses(context.Background(), map[int]domain.ReceiptStatus{1: domain.ReceiptMissing}))
	})
}
