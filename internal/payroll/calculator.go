package payroll

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/repairshop/internal/domain"
)

// TraversalOrder decides which adjustments a partial deduction consumes first.
type TraversalOrder string

const (
	// TraversalCreation oldest adjustment first;
	TraversalCreation TraversalOrder = "creation"
	// TraversalUrgency earliest available_from first, then oldest.
	TraversalUrgency TraversalOrder = "urgency"
)

func ParseTraversalOrder(s string) (TraversalOrder, error) {
	switch TraversalOrder(s) {
	case TraversalCreation, TraversalUrgency:
		return TraversalOrder(s), nil
	}
	return "", fmt.Errorf("unsupported distribution order: %s", s)
}

type Preset string

const (
	PresetNet    Preset = "net"
	PresetFull   Preset = "full"
	PresetCustom Preset = "custom"
)

func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case PresetNet, PresetFull, PresetCustom:
		return Preset(s), nil
	case "":
		return PresetCustom, nil
	}
	return "", fmt.Errorf("unsupported preset: %s", s)
}

// Quote is the read-only settlement state of one technician for one week.
type Quote struct {
	Week PayoutWeek `json:"week"`
	Earnings
	AlreadySettled   decimal.Decimal `json:"already_settled"`
	Gross            decimal.Decimal `json:"gross_available"`
	TotalAdjustable  decimal.Decimal `json:"total_adjustable"`
	DeferredHoldback decimal.Decimal `json:"deferred_holdback"`
	MinPayable       decimal.Decimal `json:"min_payable"`
	MaxPayable       decimal.Decimal `json:"max_payable"`

	Ledger Ledger `json:"-"`
}

type WeeklyTotals struct {
	TechnicianID int `json:"technician_id"`
	Quote
	Warning string `json:"warning,omitempty"`
}

type PendingAdjustments struct {
	TechnicianID int `json:"technician_id"`
	Ledger
	Warning string `json:"warning,omitempty"`
}

// SettlementRequest asks to settle the current week. Amount is only read for
// PresetCustom. LoanPayments are withheld from the amount handed over.
type SettlementRequest struct {
	TechnicianID  int
	Preset        Preset
	Amount        decimal.Decimal
	PaymentMethod domain.SettlementMethod
	LoanPayments  []domain.LoanPayment
	CreatedBy     int
}

type Calculator struct {
	Order TraversalOrder
}

func NewCalculator(order TraversalOrder) Calculator {
	if order == "" {
		order = TraversalCreation
	}
	return Calculator{Order: order}
}

// Quote has no side effects; the same inputs always give the same quote.
func (c Calculator) Quote(orders []domain.Order, ledger Ledger, settled []domain.SettlementTransaction) Quote {
	earnings := SummarizeOrders(orders)
	settledTotal := SettledTotal(settled)

	q := Quote{
		Week:             ledger.Week,
		Earnings:         earnings,
		AlreadySettled:   settledTotal,
		Gross:            earnings.Earned.Sub(earnings.Penalties).Sub(settledTotal),
		TotalAdjustable:  ledger.TotalAdjustable,
		DeferredHoldback: ledger.DeferredHoldback,
		MinPayable:       decimal.Zero,
		MaxPayable:       decimal.Zero,
		Ledger:           ledger,
	}
	if !q.Gross.IsPositive() {
		return q
	}

	q.MinPayable = clampZero(q.Gross.Sub(q.TotalAdjustable.Add(q.DeferredHoldback)))
	q.MaxPayable = decimal.Max(q.Gross.Add(q.DeferredHoldback), q.Gross)
	return q
}

func (q Quote) Settleable() bool {
	return q.Gross.IsPositive() && q.MaxPayable.IsPositive()
}

func (q Quote) InRange(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(q.MinPayable) && amount.LessThanOrEqual(q.MaxPayable)
}

// Target resolves a preset into an amount. Custom amounts are clamped into
// [MinPayable, MaxPayable].
func (q Quote) Target(preset Preset, amount decimal.Decimal) decimal.Decimal {
	switch preset {
	case PresetNet:
		return q.MinPayable
	case PresetFull:
		return q.MaxPayable
	}
	return clamp(amount, q.MinPayable, q.MaxPayable)
}

// DesiredDeduction is how much of the available adjustments must be applied
// so that target is what remains to hand over.
func (q Quote) DesiredDeduction(target decimal.Decimal) decimal.Decimal {
	return clamp(q.Gross.Sub(q.DeferredHoldback).Sub(target), decimal.Zero, q.TotalAdjustable)
}

// Allocation is the share of the deduction given to one adjustment.
type Allocation struct {
	Adjustment domain.SalaryAdjustment `json:"adjustment"`
	Remaining  decimal.Decimal         `json:"remaining"`
	Applied    decimal.Decimal         `json:"applied"`
	Leftover   decimal.Decimal         `json:"leftover"`
	Available  bool                    `json:"available"`
	// Carry marks a leftover of an adjustment created during the settled
	// week; it moves to the next week's Saturday.
	Carry bool `json:"carry"`
}

type Distribution struct {
	Target     decimal.Decimal `json:"target"`
	Deduction  decimal.Decimal `json:"deduction"`
	Allocation []Allocation    `json:"allocation"`
}

// Distribute walks the outstanding adjustments in the calculator's order and
// applies min(remaining, budget) to each available one until the budget is
// gone. Deferred adjustments always get zero.
func (c Calculator) Distribute(q Quote, target decimal.Decimal) Distribution {
	budget := q.DesiredDeduction(target)
	d := Distribution{
		Target:     target,
		Deduction:  budget,
		Allocation: make([]Allocation, 0, len(q.Ledger.Outstanding)),
	}

	for _, b := range c.traverse(q.Ledger.Outstanding) {
		a := Allocation{
			Adjustment: b.Adjustment,
			Remaining:  b.Remaining,
			Applied:    decimal.Zero,
			Available:  b.Available,
		}
		if b.Available && budget.IsPositive() {
			a.Applied = decimal.Min(b.Remaining, budget)
			budget = budget.Sub(a.Applied)
		}
		a.Leftover = b.Remaining.Sub(a.Applied)
		a.Carry = b.Available && a.Leftover.IsPositive() && q.Week.Contains(b.Adjustment.CreatedAt)
		d.Allocation = append(d.Allocation, a)
	}
	return d
}

func (d Distribution) AppliedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range d.Allocation {
		total = total.Add(a.Applied)
	}
	return total
}

// Lines renders the allocation as breakdown lines.
func (d Distribution) Lines() []domain.AdjustmentLine {
	lines := make([]domain.AdjustmentLine, 0, len(d.Allocation))
	for _, a := range d.Allocation {
		line := domain.AdjustmentLine{
			AdjustmentID: a.Adjustment.ID,
			Type:         a.Adjustment.Type,
			Remaining:    a.Remaining,
			Applied:      a.Applied,
			Omitted:      decimal.Zero,
			Carried:      decimal.Zero,
		}
		if a.Carry {
			line.Carried = a.Leftover
		} else {
			line.Omitted = a.Leftover
		}
		lines = append(lines, line)
	}
	return lines
}

func (c Calculator) traverse(balances []AdjustmentBalance) []AdjustmentBalance {
	sorted := make([]AdjustmentBalance, len(balances))
	copy(sorted, balances)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Adjustment, sorted[j].Adjustment
		if c.Order == TraversalUrgency && !a.AvailableFrom.Equal(b.AvailableFrom) {
			return a.AvailableFrom.Before(b.AvailableFrom)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return sorted
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
