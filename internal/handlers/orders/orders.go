package orders

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/dto"
	"github.com/GlebRadaev/repairshop/internal/handlers/httpx"
	"github.com/GlebRadaev/repairshop/internal/payroll"
	"github.com/GlebRadaev/repairshop/pkg/auth"
	"github.com/GlebRadaev/repairshop/pkg/utils"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

type Service interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context, technicianID int) ([]domain.Order, error)
	SetPaymentMethod(ctx context.Context, id int, method domain.PaymentMethod) (*domain.Order, error)
	Pay(ctx context.Context, id int, method domain.PaymentMethod, receiptNumber string) (*domain.Order, error)
	Return(ctx context.Context, id int) (*domain.Order, error)
	Cancel(ctx context.Context, id int) (*domain.Order, error)
	Delete(ctx context.Context, id int) (*payroll.WeeklyTotals, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create an order
//	@Description	Register a repair order for a technician. Technicians may only create their own orders.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOrderRequestDTO	true	"Order"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Technician not found"
//	@Failure		422	{object}	utils.Response	"Invalid amount or payment method"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.TechnicianID == 0 {
		req.TechnicianID, _ = auth.UserID(r.Context())
	}
	if !auth.CanAccess(r.Context(), req.TechnicianID) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	order, err := h.orderService.Create(r.Context(), &domain.Order{
		TechnicianID:    req.TechnicianID,
		ReplacementCost: req.ReplacementCost,
		TotalPrice:      req.TotalPrice,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOrderResponse(*order))
}

// GetOrders godoc
//
//	@Summary		List orders of a technician
//	@Description	Newest first. Pending orders show the commission their current payment method would give.
//	@Tags			Orders
//	@Produce		json
//	@Param			technician_id	query	int	false	"Technician, defaults to the caller"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid technician id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	technicianID, ok, err := httpx.QueryInt(r, "technician_id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid technician id")
		return
	}
	if !ok {
		technicianID, _ = auth.UserID(r.Context())
	}
	if !auth.CanAccess(r.Context(), technicianID) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	orders, err := h.orderService.List(r.Context(), technicianID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for _, order := range orders {
		response = append(response, dto.NewOrderResponse(order))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetPaymentMethod godoc
//
//	@Summary		Change the payment method of a pending order
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Order id"
//	@Param			request	body	dto.PaymentMethodRequestDTO	true	"Payment method"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order is not pending"
//	@Failure		422	{object}	utils.Response	"Invalid payment method"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/payment-method [post]
func (h *OrderHandler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorize(w, r)
	if !ok {
		return
	}
	var req dto.PaymentMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := h.orderService.SetPaymentMethod(r.Context(), id, domain.PaymentMethod(req.PaymentMethod))
	h.respond(w, order, err)
}

// PayOrder godoc
//
//	@Summary		Mark an order paid
//	@Description	Recomputes the commission and assigns the payout week the first time the order is paid. An optional receipt number is checked in the background.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Order id"
//	@Param			request	body	dto.PayOrderRequestDTO	false	"Payment details"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order already paid"
//	@Failure		422	{object}	utils.Response	"Invalid payment method"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/pay [post]
func (h *OrderHandler) PayOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorize(w, r)
	if !ok {
		return
	}
	var req dto.PayOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := h.orderService.Pay(r.Context(), id, domain.PaymentMethod(req.PaymentMethod), req.ReceiptNumber)
	h.respond(w, order, err)
}

// ReturnOrder godoc
//
//	@Summary		Mark a paid order returned
//	@Description	The order's commission becomes a penalty in the week it was paid.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order is not paid"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/return [post]
func (h *OrderHandler) ReturnOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorize(w, r)
	if !ok {
		return
	}
	order, err := h.orderService.Return(r.Context(), id)
	h.respond(w, order, err)
}

// CancelOrder godoc
//
//	@Summary		Cancel an order
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order can not be cancelled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorize(w, r)
	if !ok {
		return
	}
	order, err := h.orderService.Cancel(r.Context(), id)
	h.respond(w, order, err)
}

// DeleteOrder godoc
//
//	@Summary		Delete an order
//	@Description	Admin only. Returns the recomputed totals of the week the order counted towards.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	payroll.WeeklyTotals
//	@Failure		400	{object}	utils.Response	"Invalid order id"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	totals, err := h.orderService.Delete(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, totals)
}

// authorize resolves the order id and checks the caller owns the order.
func (h *OrderHandler) authorize(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return 0, false
	}
	order, err := h.orderService.Get(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, err)
		return 0, false
	}
	if !auth.CanAccess(r.Context(), order.TechnicianID) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return 0, false
	}
	return id, true
}

func (h *OrderHandler) respond(w http.ResponseWriter, order *domain.Order, err error) {
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(*order))
}
