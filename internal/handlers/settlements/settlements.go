package settlements

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/dto"
	"github.com/GlebRadaev/repairshop/internal/handlers/httpx"
	"github.com/GlebRadaev/repairshop/internal/payroll"
	"github.com/GlebRadaev/repairshop/internal/report"
	"github.com/GlebRadaev/repairshop/pkg/auth"
	"github.com/GlebRadaev/repairshop/pkg/utils"
)

//go:generate mockgen -source=settlements.go -destination=mock_settlements.go -package=settlements

type Service interface {
	CurrentWeek() payroll.PayoutWeek
	WeeklyTotals(ctx context.Context, technicianID int, week payroll.PayoutWeek) (*payroll.WeeklyTotals, error)
	PendingAdjustments(ctx context.Context, technicianID int, week payroll.PayoutWeek) (*payroll.PendingAdjustments, error)
	Loans(ctx context.Context, technicianID int) ([]payroll.LoanBalance, error)
	RecordSettlement(ctx context.Context, req payroll.SettlementRequest) (*domain.SettlementTransaction, error)
	History(ctx context.Context, filter domain.SettlementFilter) ([]domain.SettlementTransaction, error)
}

type SettlementHandler struct {
	settlementService Service
}

func New(settlementService Service) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
	}
}

// GetWeeklyTotals godoc
//
//	@Summary		Weekly totals of a technician
//	@Description	Earnings, penalties, already settled amount and the payable range. Defaults to the current week.
//	@Tags			Settlements
//	@Produce		json
//	@Param			id		path	int	true	"Technician id"
//	@Param			week	query	int	false	"Payout week number"
//	@Param			year	query	int	false	"Payout week year"
//	@Security		BearerAuth
//	@Success		200	{object}	payroll.WeeklyTotals
//	@Failure		400	{object}	utils.Response	"Invalid technician id"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Technician not found"
//	@Failure		422	{object}	utils.Response	"Invalid payout week"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/technicians/{id}/weekly-totals [get]
func (h *SettlementHandler) GetWeeklyTotals(w http.ResponseWriter, r *http.Request) {
	technicianID, week, ok := h.technicianWeek(w, r)
	if !ok {
		return
	}
	totals, err := h.settlementService.WeeklyTotals(r.Context(), technicianID, week)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, totals)
}

// GetPendingAdjustments godoc
//
//	@Summary		Outstanding adjustments of a technician
//	@Description	Advances and discounts not yet fully applied, with availability for the requested week. Defaults to the current week.
//	@Tags			Settlements
//	@Produce		json
//	@Param			id		path	int	true	"Technician id"
//	@Param			week	query	int	false	"Payout week number"
//	@Param			year	query	int	false	"Payout week year"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PendingAdjustmentsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid technician id"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Technician not found"
//	@Failure		422	{object}	utils.Response	"Invalid payout week"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/technicians/{id}/adjustments [get]
func (h *SettlementHandler) GetPendingAdjustments(w http.ResponseWriter, r *http.Request) {
	technicianID, week, ok := h.technicianWeek(w, r)
	if !ok {
		return
	}
	pending, err := h.settlementService.PendingAdjustments(r.Context(), technicianID, week)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPendingAdjustmentsResponse(pending))
}

// GetLoans godoc
//
//	@Summary		Loans of a technician
//	@Tags			Settlements
//	@Produce		json
//	@Param			id	path	int	true	"Technician id"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.LoanResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid technician id"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Technician not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/technicians/{id}/loans [get]
func (h *SettlementHandler) GetLoans(w http.ResponseWriter, r *http.Request) {
	technicianID, ok := h.technician(w, r)
	if !ok {
		return
	}
	loans, err := h.settlementService.Loans(r.Context(), technicianID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoansResponse(loans))
}

// RecordSettlement godoc
//
//	@Summary		Settle the current week
//	@Description	Admin only. The preset net pays the floor, full pays the ceiling, custom pays amount. Loan payments are withheld from the cash handed over.
//	@Tags			Settlements
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int								true	"Technician id"
//	@Param			request	body	dto.RecordSettlementRequestDTO	true	"Settlement"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.SettlementResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Technician not found"
//	@Failure		409	{object}	utils.Response	"Ledger changed, reload and retry"
//	@Failure		422	{object}	utils.Response	"Amount outside the payable range"
//	@Failure		503	{object}	utils.Response	"Adjustment history unavailable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/technicians/{id}/settlements [post]
func (h *SettlementHandler) RecordSettlement(w http.ResponseWriter, r *http.Request) {
	technicianID, err := httpx.PathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid technician id")
		return
	}
	var req dto.RecordSettlementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	preset, err := payroll.ParsePreset(req.Preset)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	createdBy, _ := auth.UserID(r.Context())

	settlement, err := h.settlementService.RecordSettlement(r.Context(), payroll.SettlementRequest{
		TechnicianID:  technicianID,
		Preset:        preset,
		Amount:        req.Amount,
		PaymentMethod: domain.SettlementMethod(req.PaymentMethod),
		LoanPayments:  req.LoanPaymentList(),
		CreatedBy:     createdBy,
	})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSettlementResponse(*settlement))
}

// GetHistory godoc
//
//	@Summary		Settlement history
//	@Description	Newest first. Technicians only see their own settlements.
//	@Tags			Settlements
//	@Produce		json
//	@Param			technician_id	query	int		false	"Technician id"
//	@Param			payment_method	query	string	false	"cash, transfer or other"
//	@Param			from			query	string	false	"Created at or after, YYYY-MM-DD or RFC3339"
//	@Param			to				query	string	false	"Created at or before, YYYY-MM-DD or RFC3339"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.SettlementResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid filter"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		422	{object}	utils.Response	"Invalid payment method or date range"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/settlements [get]
func (h *SettlementHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.filter(w, r)
	if !ok {
		return
	}
	settlements, err := h.settlementService.History(r.Context(), filter)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSettlementsResponse(settlements))
}

// ExportHistory godoc
//
//	@Summary		Export settlement history
//	@Description	Admin only. Same filters as the history, rendered as an xlsx sheet.
//	@Tags			Settlements
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			technician_id	query	int		false	"Technician id"
//	@Param			payment_method	query	string	false	"cash, transfer or other"
//	@Param			from			query	string	false	"Created at or after"
//	@Param			to				query	string	false	"Created at or before"
//	@Security		BearerAuth
//	@Success		200	{file}		file
//	@Failure		400	{object}	utils.Response	"Invalid filter"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/settlements/export [get]
func (h *SettlementHandler) ExportHistory(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.filter(w, r)
	if !ok {
		return
	}
	settlements, err := h.settlementService.History(r.Context(), filter)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteSettlements(&buf, settlements); err != nil {
		zap.L().Error("can't render settlements report", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="settlements-%s.xlsx"`, h.settlementService.CurrentWeek()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *SettlementHandler) technician(w http.ResponseWriter, r *http.Request) (int, bool) {
	technicianID, err := httpx.PathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid technician id")
		return 0, false
	}
	if !auth.CanAccess(r.Context(), technicianID) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return 0, false
	}
	return technicianID, true
}

func (h *SettlementHandler) technicianWeek(w http.ResponseWriter, r *http.Request) (int, payroll.PayoutWeek, bool) {
	technicianID, ok := h.technician(w, r)
	if !ok {
		return 0, payroll.PayoutWeek{}, false
	}
	week, err := httpx.QueryWeek(r, h.settlementService.CurrentWeek())
	if err != nil {
		httpx.WriteError(w, err)
		return 0, payroll.PayoutWeek{}, false
	}
	return technicianID, week, true
}

// filter reads the history filters. Technicians are pinned to themselves.
func (h *SettlementHandler) filter(w http.ResponseWriter, r *http.Request) (domain.SettlementFilter, bool) {
	var filter domain.SettlementFilter

	technicianID, ok, err := httpx.QueryInt(r, "technician_id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid technician id")
		return filter, false
	}
	if !auth.IsAdmin(r.Context()) {
		callerID, _ := auth.UserID(r.Context())
		if ok && technicianID != callerID {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return filter, false
		}
		technicianID, ok = callerID, true
	}
	if ok {
		filter.TechnicianID = &technicianID
	}

	if raw := r.URL.Query().Get("payment_method"); raw != "" {
		method, err := domain.ParseSettlementMethod(raw)
		if err != nil {
			httpx.WriteError(w, err)
			return filter, false
		}
		filter.PaymentMethod = &method
	}

	if filter.From, err = httpx.QueryTime(r, "from", false); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return filter, false
	}
	if filter.To, err = httpx.QueryTime(r, "to", true); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return filter, false
	}
	return filter, true
}
