package settlementservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/payroll"
	"github.com/GlebRadaev/repairshop/internal/pg"
)

type txKey struct{}

type memTx struct {
	undo []func()
	held []*sync.Mutex
}

// memStore keeps one technician's ledger in memory. Writes made inside Begin
// are undone when the callback fails, and technician locks live until the
// callback returns.
type memStore struct {
	mu           sync.Mutex
	locks        map[int]*sync.Mutex
	orders       []domain.Order
	adjustments  []domain.SalaryAdjustment
	applications []domain.AdjustmentApplication
	settlements  []domain.SettlementTransaction
	failApply    error
}

func newMemStore() *memStore {
	return &memStore{locks: make(map[int]*sync.Mutex)}
}

func (m *memStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	tx := &memTx{}
	err := fn(context.WithValue(ctx, txKey{}, tx))
	if err != nil {
		m.mu.Lock()
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		m.mu.Unlock()
	}
	for _, l := range tx.held {
		l.Unlock()
	}
	return err
}

func (m *memStore) onRollback(ctx context.Context, undo func()) {
	if tx, ok := ctx.Value(txKey{}).(*memTx); ok {
		tx.undo = append(tx.undo, undo)
	}
}

func (m *memStore) LockTechnician(ctx context.Context, technicianID int) error {
	tx, ok := ctx.Value(txKey{}).(*memTx)
	if !ok {
		return errors.New("lock outside of transaction")
	}
	m.mu.Lock()
	l, found := m.locks[technicianID]
	if !found {
		l = &sync.Mutex{}
		m.locks[technicianID] = l
	}
	m.mu.Unlock()

	l.Lock()
	tx.held = append(tx.held, l)
	return nil
}

func (m *memStore) FindWeekOrders(_ context.Context, _ int, week payroll.PayoutWeek) (payroll.OrderSources, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var src payroll.OrderSources
	for _, o := range m.orders {
		if o.PaidAt != nil && week.Contains(*o.PaidAt) {
			src.ByPaidAt = append(src.ByPaidAt, o)
		}
	}
	return src, nil
}

func (m *memStore) FindByTechnician(_ context.Context, _ int) ([]domain.SalaryAdjustment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SalaryAdjustment(nil), m.adjustments...), nil
}

func (m *memStore) FindApplications(_ context.Context, _ int) ([]domain.AdjustmentApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.AdjustmentApplication(nil), m.applications...), nil
}

func (m *memStore) CreateApplication(ctx context.Context, app *domain.AdjustmentApplication) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failApply != nil {
		return m.failApply
	}

	remaining := decimal.Zero
	for _, a := range m.adjustments {
		if a.ID == app.AdjustmentID {
			remaining = a.Amount
		}
	}
	for _, a := range m.applications {
		if a.AdjustmentID == app.AdjustmentID {
			remaining = remaining.Sub(a.AppliedAmount)
		}
	}
	if remaining.LessThan(app.AppliedAmount) {
		return domain.ErrConcurrentModification
	}

	n := len(m.applications)
	m.applications = append(m.applications, *app)
	m.onRollback(ctx, func() { m.applications = m.applications[:n] })
	return nil
}

func (m *memStore) Defer(ctx context.Context, id int, availableFrom time.Time, note string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.adjustments {
		if m.adjustments[i].ID == id {
			prev := m.adjustments[i]
			m.adjustments[i].AvailableFrom = availableFrom
			m.adjustments[i].Note = note
			m.onRollback(ctx, func() { m.adjustments[i] = prev })
			return nil
		}
	}
	return domain.ErrConcurrentModification
}

func (m *memStore) Create(ctx context.Context, s *domain.SettlementTransaction) (*domain.SettlementTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.settlements)
	s.ID = n + 1
	m.settlements = append(m.settlements, *s)
	m.onRollback(ctx, func() { m.settlements = m.settlements[:n] })
	return s, nil
}

func (m *memStore) FindByWeek(_ context.Context, _ int, weekStart time.Time) ([]domain.SettlementTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found []domain.SettlementTransaction
	for _, s := range m.settlements {
		if s.WeekStart.Equal(weekStart) {
			found = append(found, s)
		}
	}
	return found, nil
}

func (m *memStore) Find(_ context.Context, _ domain.SettlementFilter) ([]domain.SettlementTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SettlementTransaction(nil), m.settlements...), nil
}

func (m *memStore) FindByID(_ context.Context, id int) (*domain.User, error) {
	return &domain.User{ID: id, Role: domain.RoleTechnician}, nil
}

func (m *memStore) appliedTotal() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := decimal.Zero
	for _, a := range m.applications {
		total = total.Add(a.AppliedAmount)
	}
	return total
}

func newStoreService(store *memStore) *Service {
	service := New(store, store, store, store, store, payroll.NewCalculator(payroll.TraversalCreation))
	service.now = func() time.Time { return now }
	return service
}

func seededStore() *memStore {
	store := newMemStore()
	store.orders = []domain.Order{paidOrder(1, "40000")}
	store.adjustments = []domain.SalaryAdjustment{discount(10, "10000", lastMonth)}
	return store
}

func TestRecordSettlement_ConcurrentNetSettlements(t *testing.T) {
	store := seededStore()
	service := newStoreService(store)

	const attempts = 2
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.RecordSettlement(context.Background(), payroll.SettlementRequest{
				TechnicianID:  3,
				Preset:        payroll.PresetNet,
				PaymentMethod: domain.SettlementCash,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrNothingToSettle)
	}
	assert.Equal(t, 1, succeeded)
	assert.True(t, store.appliedTotal().LessThanOrEqual(amount("10000")), "applied %s", store.appliedTotal())
	assert.Len(t, store.settlements, 1)
}

func TestRecordSettlement_RollsBackOnFailure(t *testing.T) {
	store := newMemStore()
	store.orders = []domain.Order{paidOrder(1, "40000")}
	store.adjustments = []domain.SalaryAdjustment{discount(10, "10000", now)}
	store.failApply = errors.New("connection reset")
	service := newStoreService(store)

	_, err := service.RecordSettlement(context.Background(), payroll.SettlementRequest{
		TechnicianID:  3,
		Amount:        amount("35000"),
		PaymentMethod: domain.SettlementCash,
	})
	require.Error(t, err)
	assert.Empty(t, store.settlements)
	assert.Empty(t, store.applications)
	assert.Equal(t, now, store.adjustments[0].AvailableFrom)

	store.failApply = nil
	settlement, err := service.RecordSettlement(context.Background(), payroll.SettlementRequest{
		TechnicianID:  3,
		Amount:        amount("35000"),
		PaymentMethod: domain.SettlementCash,
	})
	require.NoError(t, err)
	assert.True(t, amount("35000").Equal(settlement.Amount))
	assert.Equal(t, nextStart, store.adjustments[0].AvailableFrom)

	totals, err := service.WeeklyTotals(context.Background(), 3, week)
	require.NoError(t, err)
	assert.True(t, amount("0").Equal(totals.Gross), "gross %s", totals.Gross)
	assert.False(t, totals.Quote.Settleable())
}
