package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/payroll"
)

type CreateAdjustmentRequestDTO struct {
	TechnicianID  int             `json:"technician_id" example:"3"`
	Type          string          `json:"type" example:"discount"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"10000"`
	Note          string          `json:"note,omitempty" example:"damaged screen"`
	AvailableFrom *time.Time      `json:"available_from,omitempty" example:"2026-10-17T00:00:00Z"`
}

type AdjustmentResponseDTO struct {
	ID            int             `json:"id" example:"10"`
	TechnicianID  int             `json:"technician_id" example:"3"`
	Type          string          `json:"type" example:"discount"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"10000"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     string          `json:"created_at" example:"2026-10-12T09:00:00Z"`
	AvailableFrom string          `json:"available_from" example:"2026-10-12T09:00:00Z"`
}

func NewAdjustmentResponse(a domain.SalaryAdjustment) AdjustmentResponseDTO {
	return AdjustmentResponseDTO{
		ID:            a.ID,
		TechnicianID:  a.TechnicianID,
		Type:          string(a.Type),
		Amount:        a.Amount,
		Note:          a.Note,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		AvailableFrom: a.AvailableFrom.Format(time.RFC3339),
	}
}

type AdjustmentBalanceDTO struct {
	AdjustmentResponseDTO
	Applied   decimal.Decimal `json:"applied" swaggertype:"string" example:"4000"`
	Remaining decimal.Decimal `json:"remaining" swaggertype:"string" example:"6000"`
	Available bool            `json:"is_available_this_week"`
}

type PendingAdjustmentsResponseDTO struct {
	TechnicianID     int                    `json:"technician_id" example:"3"`
	Week             payroll.PayoutWeek     `json:"week"`
	Outstanding      []AdjustmentBalanceDTO `json:"outstanding"`
	TotalAdjustable  decimal.Decimal        `json:"total_adjustable" swaggertype:"string" example:"6000"`
	DeferredHoldback decimal.Decimal        `json:"deferred_holdback" swaggertype:"string" example:"0"`
	Warning          string                 `json:"warning,omitempty"`
}

func NewPendingAdjustmentsResponse(p *payroll.PendingAdjustments) PendingAdjustmentsResponseDTO {
	resp := PendingAdjustmentsResponseDTO{
		TechnicianID:     p.TechnicianID,
		Week:             p.Week,
		Outstanding:      make([]AdjustmentBalanceDTO, 0, len(p.Outstanding)),
		TotalAdjustable:  p.TotalAdjustable,
		DeferredHoldback: p.DeferredHoldback,
		Warning:          p.Warning,
	}
	for _, b := range p.Outstanding {
		resp.Outstanding = append(resp.Outstanding, AdjustmentBalanceDTO{
			AdjustmentResponseDTO: NewAdjustmentResponse(b.Adjustment),
			Applied:               b.Applied,
			Remaining:             b.Remaining,
			Available:             b.Available,
		})
	}
	return resp
}

type LoanResponseDTO struct {
	AdjustmentResponseDTO
	Repaid      decimal.Decimal `json:"repaid" swaggertype:"string" example:"25000"`
	Outstanding decimal.Decimal `json:"outstanding" swaggertype:"string" example:"45000"`
}

func NewLoansResponse(loans []payroll.LoanBalance) []LoanResponseDTO {
	resp := make([]LoanResponseDTO, 0, len(loans))
	for _, l := range loans {
		resp = append(resp, LoanResponseDTO{
			AdjustmentResponseDTO: NewAdjustmentResponse(l.Loan),
			Repaid:                l.Repaid,
			Outstanding:           l.Outstanding,
		})
	}
	return resp
}
