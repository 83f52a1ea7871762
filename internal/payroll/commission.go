package payroll

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/repairshop/internal/domain"
)

var (
	DefaultCommissionRate = decimal.RequireFromString("0.40")
	DefaultCardTaxRate    = decimal.RequireFromString("0.19")
)

// CommissionPolicy turns an order price into the technician's share.
// For card and transfer payments the total price is tax-inclusive and is
// divided down by (1 + TaxRate) before the margin is taken.
type CommissionPolicy struct {
	Rate    decimal.Decimal
	TaxRate decimal.Decimal
}

func DefaultCommissionPolicy() CommissionPolicy {
	return CommissionPolicy{
		Rate:    DefaultCommissionRate,
		TaxRate: DefaultCardTaxRate,
	}
}

// Calculate never fails. Negative inputs are clamped to zero, a negative
// margin yields zero and the result is truncated to whole currency units.
// PaymentNone has no knowable deduction and yields zero; keeping the stored
// snapshot in that case is the caller's decision.
func (p CommissionPolicy) Calculate(method domain.PaymentMethod, replacementCost, totalPrice decimal.Decimal) decimal.Decimal {
	cost := clampZero(replacementCost)
	total := clampZero(totalPrice)

	var taxable decimal.Decimal
	switch method {
	case domain.PaymentCash:
		taxable = total
	case domain.PaymentCard, domain.PaymentTransfer:
		taxable = total.Div(decimal.NewFromInt(1).Add(clampZero(p.TaxRate)))
	case domain.PaymentNone:
		return decimal.Zero
	default:
		zap.L().Warn("unknown payment method, commission is zero", zap.String("method", string(method)))
		return decimal.Zero
	}

	margin := taxable.Sub(cost)
	if !margin.IsPositive() {
		return decimal.Zero
	}
	return margin.Mul(clampZero(p.Rate)).Truncate(0)
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
