package payroll

import (
	"testing"

	"github.com/GlebRadaev/repairshop/internal/domain"
)

func TestCommissionPolicy_Calculate(t *testing.T) {
	policy := DefaultCommissionPolicy()

	tests := []struct {
		name     string
		method   domain.PaymentMethod
		cost     string
		total    string
		expected string
	}{
		{name: "Cash takes margin as is", method: domain.PaymentCash, cost: "20000", total: "120000", expected: "40000"},
		{name: "Card excludes tax first", method: domain.PaymentCard, cost: "0", total: "119000", expected: "40000"},
		{name: "Transfer excludes tax first", method: domain.PaymentTransfer, cost: "20000", total: "100000", expected: "25613"},
		{name: "Fractions are truncated", method: domain.PaymentCash, cost: "0", total: "1001", expected: "400"},
		{name: "Unset method yields zero", method: domain.PaymentNone, cost: "0", total: "100000", expected: "0"},
		{name: "Unknown method yields zero", method: domain.PaymentMethod("crypto"), cost: "0", total: "100000", expected: "0"},
		{name: "Negative margin yields zero", method: domain.PaymentCash, cost: "50000", total: "30000", expected: "0"},
		{name: "Negative cost is clamped", method: domain.PaymentCash, cost: "-5000", total: "10000", expected: "4000"},
		{name: "Negative total is clamped", method: domain.PaymentCard, cost: "0", total: "-10000", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertAmount(t, tt.expected, policy.Calculate(tt.method, amount(tt.cost), amount(tt.total)))
		})
	}
}

func TestCommissionPolicy_CustomRates(t *testing.T) {
	policy := CommissionPolicy{Rate: amount("0.5"), TaxRate: amount("0.25")}
	assertAmount(t, "40000", policy.Calculate(domain.PaymentCard, amount("0"), amount("100000")))
	assertAmount(t, "50000", policy.Calculate(domain.PaymentCash, amount("0"), amount("100000")))
}
