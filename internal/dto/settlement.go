package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/payroll"
)

type LoanPaymentDTO struct {
	AdjustmentID int             `json:"adjustment_id" example:"30"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"5000"`
}

// RecordSettlementRequestDTO settles the current week. Preset is net, full or
// custom; amount is required for custom only.
type RecordSettlementRequestDTO struct {
	Preset        string           `json:"preset,omitempty" example:"custom"`
	Amount        decimal.Decimal  `json:"amount" swaggertype:"string" example:"35000"`
	PaymentMethod string           `json:"payment_method" example:"cash"`
	LoanPayments  []LoanPaymentDTO `json:"loan_payments,omitempty"`
}

func (r RecordSettlementRequestDTO) LoanPaymentList() []domain.LoanPayment {
	if len(r.LoanPayments) == 0 {
		return nil
	}
	payments := make([]domain.LoanPayment, 0, len(r.LoanPayments))
	for _, p := range r.LoanPayments {
		payments = append(payments, domain.LoanPayment{AdjustmentID: p.AdjustmentID, Amount: p.Amount})
	}
	return payments
}

type SettlementResponseDTO struct {
	ID            int              `json:"id" example:"20"`
	TechnicianID  int              `json:"technician_id" example:"3"`
	Week          string           `json:"week" example:"2026-W41"`
	WeekStart     string           `json:"week_start" example:"2026-10-10"`
	Amount        decimal.Decimal  `json:"amount" swaggertype:"string" example:"35000"`
	PaymentMethod string           `json:"payment_method" example:"cash"`
	Breakdown     domain.Breakdown `json:"breakdown"`
	Reference     string           `json:"reference" example:"5f0c2f7e-3c7b-4a53-9d0f-2f7a4f6c1a01"`
	CreatedAt     string           `json:"created_at" example:"2026-10-14T12:30:00Z"`
	CreatedBy     int              `json:"created_by" example:"1"`
}

func NewSettlementResponse(s domain.SettlementTransaction) SettlementResponseDTO {
	return SettlementResponseDTO{
		ID:            s.ID,
		TechnicianID:  s.TechnicianID,
		Week:          payroll.WeekOf(s.WeekStart).String(),
		WeekStart:     s.WeekStart.Format(time.DateOnly),
		Amount:        s.Amount,
		PaymentMethod: string(s.PaymentMethod),
		Breakdown:     s.Breakdown,
		Reference:     s.Reference.String(),
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
		CreatedBy:     s.CreatedBy,
	}
}

func NewSettlementsResponse(settlements []domain.SettlementTransaction) []SettlementResponseDTO {
	resp := make([]SettlementResponseDTO, 0, len(settlements))
	for _, s := range settlements {
		resp = append(resp, NewSettlementResponse(s))
	}
	return resp
}
