package payroll

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/repairshop/internal/domain"
)

// AdjustmentBalance is one outstanding advance or discount.
type AdjustmentBalance struct {
	Adjustment domain.SalaryAdjustment `json:"adjustment"`
	Applied    decimal.Decimal         `json:"applied"`
	Remaining  decimal.Decimal         `json:"remaining"`
	Available  bool                    `json:"is_available_this_week"`
}

// Ledger is the outstanding deduction state of one technician for one week.
type Ledger struct {
	Week             PayoutWeek          `json:"week"`
	Outstanding      []AdjustmentBalance `json:"outstanding"`
	TotalAdjustable  decimal.Decimal     `json:"total_adjustable"`
	DeferredHoldback decimal.Decimal     `json:"deferred_holdback"`
}

// BuildLedger sums applications across all weeks. Loans are skipped, as are
// adjustments with nothing left. Outstanding is in creation order.
func BuildLedger(adjustments []domain.SalaryAdjustment, applications []domain.AdjustmentApplication, week PayoutWeek) Ledger {
	applied := make(map[int]decimal.Decimal, len(applications))
	for _, app := range applications {
		applied[app.AdjustmentID] = applied[app.AdjustmentID].Add(app.AppliedAmount)
	}

	ledger := Ledger{
		Week:             week,
		Outstanding:      make([]AdjustmentBalance, 0, len(adjustments)),
		TotalAdjustable:  decimal.Zero,
		DeferredHoldback: decimal.Zero,
	}
	for _, adj := range byCreation(adjustments) {
		if adj.Type == domain.AdjustmentLoan {
			continue
		}
		remaining := clampZero(adj.Amount.Sub(applied[adj.ID]))
		if !remaining.IsPositive() {
			continue
		}
		balance := AdjustmentBalance{
			Adjustment: adj,
			Applied:    applied[adj.ID],
			Remaining:  remaining,
			Available:  !adj.AvailableFrom.After(week.End()),
		}
		if balance.Available {
			ledger.TotalAdjustable = ledger.TotalAdjustable.Add(remaining)
		} else {
			ledger.DeferredHoldback = ledger.DeferredHoldback.Add(remaining)
		}
		ledger.Outstanding = append(ledger.Outstanding, balance)
	}
	return ledger
}

func (l Ledger) Find(adjustmentID int) (AdjustmentBalance, bool) {
	for _, b := range l.Outstanding {
		if b.Adjustment.ID == adjustmentID {
			return b, true
		}
	}
	return AdjustmentBalance{}, false
}

// LoanBalance is the display-only view of a loan. Loans never enter the
// payable range.
type LoanBalance struct {
	Loan        domain.SalaryAdjustment `json:"loan"`
	Repaid      decimal.Decimal         `json:"repaid"`
	Outstanding decimal.Decimal         `json:"outstanding"`
}

// LoanBalances reads repayments from settlement breakdowns.
func LoanBalances(adjustments []domain.SalaryAdjustment, settlements []domain.SettlementTransaction) []LoanBalance {
	repaid := make(map[int]decimal.Decimal)
	for _, s := range settlements {
		for _, p := range s.Breakdown.LoanPayments {
			repaid[p.AdjustmentID] = repaid[p.AdjustmentID].Add(p.Amount)
		}
	}

	loans := make([]LoanBalance, 0)
	for _, adj := range byCreation(adjustments) {
		if adj.Type != domain.AdjustmentLoan {
			continue
		}
		loans = append(loans, LoanBalance{
			Loan:        adj,
			Repaid:      repaid[adj.ID],
			Outstanding: clampZero(adj.Amount.Sub(repaid[adj.ID])),
		})
	}
	return loans
}

func byCreation(adjustments []domain.SalaryAdjustment) []domain.SalaryAdjustment {
	sorted := make([]domain.SalaryAdjustment, len(adjustments))
	copy(sorted, adjustments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}
