package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/repairshop/internal/domain"
)

// OrderSources holds the three historical shapes of "an order that belongs to
// this week": rows with paid_at inside the week, legacy rows with only
// payout_week/payout_year set, and rows with neither whose created_at falls
// inside the week.
type OrderSources struct {
	ByPaidAt     []domain.Order
	ByPayoutWeek []domain.Order
	ByCreatedAt  []domain.Order
}

// CanonicalOrders unions the sources and drops duplicates by order id, keeping
// the first occurrence. Every weekly figure must be computed from its result.
func CanonicalOrders(src OrderSources) []domain.Order {
	total := len(src.ByPaidAt) + len(src.ByPayoutWeek) + len(src.ByCreatedAt)
	seen := make(map[int]struct{}, total)
	orders := make([]domain.Order, 0, total)
	for _, group := range [][]domain.Order{src.ByPaidAt, src.ByPayoutWeek, src.ByCreatedAt} {
		for _, o := range group {
			if _, ok := seen[o.ID]; ok {
				continue
			}
			seen[o.ID] = struct{}{}
			orders = append(orders, o)
		}
	}
	return orders
}

// Earnings splits a week's orders into earned commission and penalties.
// Only previously paid orders can be penalised: a job cancelled before
// payment never produced an earning.
type Earnings struct {
	Earned        decimal.Decimal `json:"earned"`
	Penalties     decimal.Decimal `json:"penalties"`
	PaidOrders    int             `json:"paid_orders"`
	PenaltyOrders int             `json:"penalty_orders"`
}

func SummarizeOrders(orders []domain.Order) Earnings {
	e := Earnings{Earned: decimal.Zero, Penalties: decimal.Zero}
	for _, o := range orders {
		switch o.Status {
		case domain.OrderPaid:
			e.Earned = e.Earned.Add(o.Commission)
			e.PaidOrders++
		case domain.OrderReturned, domain.OrderCancelled:
			if !o.WasPaid() {
				continue
			}
			e.Penalties = e.Penalties.Add(o.Commission)
			e.PenaltyOrders++
		}
	}
	return e
}

// SettledTotal is how much of the week's earnings is already resolved: cash
// handed over plus the deductions and loan repayments each settlement paid
// off on the technician's behalf.
func SettledTotal(settlements []domain.SettlementTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, s := range settlements {
		total = total.
			Add(s.Amount).
			Add(s.Breakdown.AdjustmentsTotal).
			Add(s.Breakdown.LoanPaymentsTotal)
	}
	return total
}
