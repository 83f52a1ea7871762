package adjustments

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/dto"
	"github.com/GlebRadaev/repairshop/internal/handlers/httpx"
	"github.com/GlebRadaev/repairshop/internal/payroll"
	"github.com/GlebRadaev/repairshop/pkg/utils"
)

//go:generate mockgen -source=adjustments.go -destination=mock_adjustments.go -package=adjustments

type Service interface {
	Create(ctx context.Context, adj *domain.SalaryAdjustment) (*domain.SalaryAdjustment, error)
	Delete(ctx context.Context, id int) (*payroll.WeeklyTotals, error)
}

type AdjustmentHandler struct {
	adjustmentService Service
}

func New(adjustmentService Service) *AdjustmentHandler {
	return &AdjustmentHandler{
		adjustmentService: adjustmentService,
	}
}

// CreateAdjustment godoc
//
//	@Summary		Record an advance, discount or loan
//	@Description	Admin only. Without available_from the adjustment can be deducted from the current week.
//	@Tags			Adjustments
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateAdjustmentRequestDTO	true	"Adjustment"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.AdjustmentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Technician not found"
//	@Failure		422	{object}	utils.Response	"Invalid type or amount"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/adjustments [post]
func (h *AdjustmentHandler) CreateAdjustment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdjustmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	adj := &domain.SalaryAdjustment{
		TechnicianID: req.TechnicianID,
		Type:         domain.AdjustmentType(req.Type),
		Amount:       req.Amount,
		Note:         req.Note,
	}
	if req.AvailableFrom != nil {
		adj.AvailableFrom = req.AvailableFrom.UTC()
	}

	created, err := h.adjustmentService.Create(r.Context(), adj)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewAdjustmentResponse(*created))
}

// DeleteAdjustment godoc
//
//	@Summary		Delete an adjustment
//	@Description	Admin only. Removes the adjustment with its application history and returns the technician's recomputed totals for the current week.
//	@Tags			Adjustments
//	@Produce		json
//	@Param			id	path	int	true	"Adjustment id"
//	@Security		BearerAuth
//	@Success		200	{object}	payroll.WeeklyTotals
//	@Failure		400	{object}	utils.Response	"Invalid adjustment id"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Adjustment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/adjustments/{id} [delete]
func (h *AdjustmentHandler) DeleteAdjustment(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid adjustment id")
		return
	}
	totals, err := h.adjustmentService.Delete(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, totals)
}
