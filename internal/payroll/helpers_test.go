package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/repairshop/internal/domain"
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, amount(want).Equal(got), "expected %s, got %s", want, got.String())
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func paidOrder(id int, commission string, paidAt time.Time) domain.Order {
	w := WeekOf(paidAt)
	return domain.Order{
		ID:            id,
		TechnicianID:  1,
		PaymentMethod: domain.PaymentCash,
		Status:        domain.OrderPaid,
		Commission:    amount(commission),
		CreatedAt:     paidAt,
		PaidAt:        &paidAt,
		PayoutWeek:    &w.Number,
		PayoutYear:    &w.Year,
	}
}

func adjustment(id int, typ domain.AdjustmentType, value string, createdAt, availableFrom time.Time) domain.SalaryAdjustment {
	return domain.SalaryAdjustment{
		ID:            id,
		TechnicianID:  1,
		Type:          typ,
		Amount:        amount(value),
		CreatedAt:     createdAt,
		AvailableFrom: availableFrom,
	}
}
