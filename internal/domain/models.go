package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentNone     PaymentMethod = "none"
)

// ParsePaymentMethod maps the empty string to PaymentNone.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentNone:
		return PaymentMethod(s), nil
	case "":
		return PaymentNone, nil
	}
	return "", ErrInvalidPaymentMethod
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderReturned  OrderStatus = "returned"
	OrderCancelled OrderStatus = "cancelled"
)

type ReceiptStatus string

const (
	ReceiptNone      ReceiptStatus = "none"
	ReceiptUnchecked ReceiptStatus = "unchecked"
	ReceiptFound     ReceiptStatus = "found"
	// ReceiptMissing the document service answered that the receipt does not exist.
	ReceiptMissing ReceiptStatus = "missing"
)

type Order struct {
	ID              int             `db:"id"`
	TechnicianID    int             `db:"technician_id"`
	ReplacementCost decimal.Decimal `db:"replacement_cost"`
	TotalPrice      decimal.Decimal `db:"total_price"`
	PaymentMethod   PaymentMethod   `db:"payment_method"`
	Status          OrderStatus     `db:"status"`
	Commission      decimal.Decimal `db:"commission"`
	CreatedAt       time.Time       `db:"created_at"`
	PaidAt          *time.Time      `db:"paid_at"`
	PayoutWeek      *int            `db:"payout_week"`
	PayoutYear      *int            `db:"payout_year"`
	ReceiptNumber   *string         `db:"receipt_number"`
	ReceiptStatus   ReceiptStatus   `db:"receipt_status"`
}

// WasPaid reports whether the order ever reached the paid state. Returned and
// cancelled orders keep their paid_at and payout week.
func (o Order) WasPaid() bool {
	return o.PaidAt != nil || o.PayoutWeek != nil
}

type AdjustmentType string

const (
	AdjustmentAdvance  AdjustmentType = "advance"
	AdjustmentDiscount AdjustmentType = "discount"
	AdjustmentLoan     AdjustmentType = "loan"
)

func ParseAdjustmentType(s string) (AdjustmentType, error) {
	switch AdjustmentType(s) {
	case AdjustmentAdvance, AdjustmentDiscount, AdjustmentLoan:
		return AdjustmentType(s), nil
	}
	return "", ErrInvalidAdjustmentType
}

type SalaryAdjustment struct {
	ID            int             `db:"id"`
	TechnicianID  int             `db:"technician_id"`
	Type          AdjustmentType  `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Note          string          `db:"note"`
	CreatedAt     time.Time       `db:"created_at"`
	AvailableFrom time.Time       `db:"available_from"`
}

type AdjustmentApplication struct {
	ID            int             `db:"id"`
	AdjustmentID  int             `db:"adjustment_id"`
	TechnicianID  int             `db:"technician_id"`
	WeekStart     time.Time       `db:"week_start"`
	AppliedAmount decimal.Decimal `db:"applied_amount"`
	CreatedAt     time.Time       `db:"created_at"`
}

type SettlementMethod string

const (
	SettlementCash     SettlementMethod = "cash"
	SettlementTransfer SettlementMethod = "transfer"
	SettlementOther    SettlementMethod = "other"
)

func ParseSettlementMethod(s string) (SettlementMethod, error) {
	switch SettlementMethod(s) {
	case SettlementCash, SettlementTransfer, SettlementOther:
		return SettlementMethod(s), nil
	}
	return "", ErrInvalidPaymentMethod
}

// AdjustmentLine is the per-adjustment part of a settlement breakdown.
// Applied + Omitted + Carried always equals Remaining.
type AdjustmentLine struct {
	AdjustmentID int             `json:"adjustment_id"`
	Type         AdjustmentType  `json:"type"`
	Remaining    decimal.Decimal `json:"remaining"`
	Applied      decimal.Decimal `json:"applied"`
	Omitted      decimal.Decimal `json:"omitted"`
	Carried      decimal.Decimal `json:"carried"`
}

type LoanPayment struct {
	AdjustmentID int             `json:"adjustment_id"`
	Amount       decimal.Decimal `json:"amount"`
}

type Breakdown struct {
	BaseAmount        decimal.Decimal  `json:"base_amount"`
	DeferredHoldback  decimal.Decimal  `json:"deferred_holdback"`
	AdjustmentsTotal  decimal.Decimal  `json:"selected_adjustments_total"`
	Adjustments       []AdjustmentLine `json:"adjustments"`
	LoanPayments      []LoanPayment    `json:"loan_payments,omitempty"`
	LoanPaymentsTotal decimal.Decimal  `json:"loan_payments_total"`
}

type SettlementTransaction struct {
	ID            int              `db:"id"`
	TechnicianID  int              `db:"technician_id"`
	WeekStart     time.Time        `db:"week_start"`
	Amount        decimal.Decimal  `db:"amount"`
	PaymentMethod SettlementMethod `db:"payment_method"`
	Breakdown     Breakdown        `db:"breakdown"`
	Reference     uuid.UUID        `db:"reference"`
	CreatedAt     time.Time        `db:"created_at"`
	CreatedBy     int              `db:"created_by"`
}

type SettlementFilter struct {
	TechnicianID  *int
	PaymentMethod *SettlementMethod
	From          *time.Time
	To            *time.Time
}
