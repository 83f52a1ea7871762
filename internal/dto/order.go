package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/repairshop/internal/domain"
)

type CreateOrderRequestDTO struct {
	TechnicianID    int             `json:"technician_id" example:"3"`
	ReplacementCost decimal.Decimal `json:"replacement_cost" swaggertype:"string" example:"20000"`
	TotalPrice      decimal.Decimal `json:"total_price" swaggertype:"string" example:"120000"`
	PaymentMethod   string          `json:"payment_method,omitempty" example:"cash"`
}

type PaymentMethodRequestDTO struct {
	PaymentMethod string `json:"payment_method" example:"card"`
}

type PayOrderRequestDTO struct {
	PaymentMethod string `json:"payment_method,omitempty" example:"transfer"`
	ReceiptNumber string `json:"receipt_number,omitempty" example:"R-2026-0042"`
}

type OrderResponseDTO struct {
	ID              int             `json:"id" example:"1"`
	TechnicianID    int             `json:"technician_id" example:"3"`
	ReplacementCost decimal.Decimal `json:"replacement_cost" swaggertype:"string" example:"20000"`
	TotalPrice      decimal.Decimal `json:"total_price" swaggertype:"string" example:"120000"`
	PaymentMethod   string          `json:"payment_method" example:"cash"`
	Status          string          `json:"status" example:"paid"`
	Commission      decimal.Decimal `json:"commission" swaggertype:"string" example:"40000"`
	CreatedAt       string          `json:"created_at" example:"2026-10-12T09:00:00Z"`
	PaidAt          string          `json:"paid_at,omitempty" example:"2026-10-14T12:00:00Z"`
	PayoutWeek      *int            `json:"payout_week,omitempty" example:"41"`
	PayoutYear      *int            `json:"payout_year,omitempty" example:"2026"`
	ReceiptNumber   *string         `json:"receipt_number,omitempty" example:"R-2026-0042"`
	ReceiptStatus   string          `json:"receipt_status" example:"found"`
}

func NewOrderResponse(o domain.Order) OrderResponseDTO {
	resp := OrderResponseDTO{
		ID:              o.ID,
		TechnicianID:    o.TechnicianID,
		ReplacementCost: o.ReplacementCost,
		TotalPrice:      o.TotalPrice,
		PaymentMethod:   string(o.PaymentMethod),
		Status:          string(o.Status),
		Commission:      o.Commission,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		PayoutWeek:      o.PayoutWeek,
		PayoutYear:      o.PayoutYear,
		ReceiptNumber:   o.ReceiptNumber,
		ReceiptStatus:   string(o.ReceiptStatus),
	}
	if o.PaidAt != nil {
		resp.PaidAt = o.PaidAt.Format(time.RFC3339)
	}
	return resp
}
