package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/repairshop/internal/domain"
)

func TestCanonicalOrders(t *testing.T) {
	week := 41
	year := 2026
	byPaidAt := paidOrder(1, "40000", inWeek)
	legacy := domain.Order{ID: 2, Status: domain.OrderPaid, Commission: amount("12000"), PayoutWeek: &week, PayoutYear: &year}
	fallback := domain.Order{ID: 3, Status: domain.OrderPaid, Commission: amount("5000"), CreatedAt: inWeek}

	tests := []struct {
		name        string
		sources     OrderSources
		expectedIDs []int
		earned      string
	}{
		{
			name:        "All three shapes are counted",
			sources:     OrderSources{ByPaidAt: []domain.Order{byPaidAt}, ByPayoutWeek: []domain.Order{legacy}, ByCreatedAt: []domain.Order{fallback}},
			expectedIDs: []int{1, 2, 3},
			earned:      "57000",
		},
		{
			name:        "Duplicates across sources are counted once",
			sources:     OrderSources{ByPaidAt: []domain.Order{byPaidAt}, ByPayoutWeek: []domain.Order{byPaidAt, legacy}, ByCreatedAt: []domain.Order{legacy, byPaidAt}},
			expectedIDs: []int{1, 2},
			earned:      "52000",
		},
		{
			name:        "Empty sources",
			sources:     OrderSources{},
			expectedIDs: []int{},
			earned:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := CanonicalOrders(tt.sources)
			ids := make([]int, 0, len(orders))
			for _, o := range orders {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assertAmount(t, tt.earned, SummarizeOrders(orders).Earned)
		})
	}
}

func TestSummarizeOrders_ReturnedAfterPayment(t *testing.T) {
	paidAt := inWeek
	returned := paidOrder(7, "8000", paidAt)
	returned.Status = domain.OrderReturned

	before := SummarizeOrders([]domain.Order{paidOrder(1, "40000", inWeek)})
	after := SummarizeOrders([]domain.Order{paidOrder(1, "40000", inWeek), returned})

	grossBefore := before.Earned.Sub(before.Penalties)
	grossAfter := after.Earned.Sub(after.Penalties)
	assertAmount(t, "8000", grossBefore.Sub(grossAfter))

	// the penalty lands on the order's payout week, not the week it was returned in
	assert.Equal(t, 41, *returned.PayoutWeek)
	assert.True(t, testWeek.Contains(*returned.PaidAt))
	assert.False(t, testWeek.Contains(paidAt.Add(14*24*time.Hour)))
}

func TestSummarizeOrders_PendingIgnored(t *testing.T) {
	e := SummarizeOrders([]domain.Order{{ID: 1, Status: domain.OrderPending, Commission: amount("1000")}})
	assertAmount(t, "0", e.Earned)
	assertAmount(t, "0", e.Penalties)
	assert.Equal(t, 0, e.PaidOrders)
}

func TestSettledTotal(t *testing.T) {
	total := SettledTotal([]domain.SettlementTransaction{
		{Amount: amount("30000"), Breakdown: domain.Breakdown{AdjustmentsTotal: amount("10000")}},
		{Amount: amount("2000"), Breakdown: domain.Breakdown{LoanPaymentsTotal: amount("500")}},
	})
	assertAmount(t, "42500", total)
}
