package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/repairshop/docs"
	adjustmenthandlers "github.com/GlebRadaev/repairshop/internal/handlers/adjustments"
	authhandlers "github.com/GlebRadaev/repairshop/internal/handlers/auth"
	ordershandlers "github.com/GlebRadaev/repairshop/internal/handlers/orders"
	settlementhandlers "github.com/GlebRadaev/repairshop/internal/handlers/settlements"
	"github.com/GlebRadaev/repairshop/internal/service"
	"github.com/GlebRadaev/repairshop/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	SetPaymentMethod(w http.ResponseWriter, r *http.Request)
	PayOrder(w http.ResponseWriter, r *http.Request)
	ReturnOrder(w http.ResponseWriter, r *http.Request)
	CancelOrder(w http.ResponseWriter, r *http.Request)
	DeleteOrder(w http.ResponseWriter, r *http.Request)
}

type AdjustmentHandler interface {
	CreateAdjustment(w http.ResponseWriter, r *http.Request)
	DeleteAdjustment(w http.ResponseWriter, r *http.Request)
}

type SettlementHandler interface {
	GetWeeklyTotals(w http.ResponseWriter, r *http.Request)
	GetPendingAdjustments(w http.ResponseWriter, r *http.Request)
	GetLoans(w http.ResponseWriter, r *http.Request)
	RecordSettlement(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	ExportHistory(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	OrderHandler      OrderHandler
	AdjustmentHandler AdjustmentHandler
	SettlementHandler SettlementHandler

	jwtService  auth.JWTServiceInterface
	corsOrigins []string
}

func New(s *service.Services, corsOrigins []string) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		OrderHandler:      ordershandlers.New(s.OrderService),
		AdjustmentHandler: adjustmenthandlers.New(s.AdjustmentService),
		SettlementHandler: settlementhandlers.New(s.SettlementService),
		jwtService:        s.JWTService,
		corsOrigins:       corsOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: h.corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders: []string{"Authorization", "Content-Disposition"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.OrderHandler.GetOrders)
				r.Post("/", h.OrderHandler.CreateOrder)
				r.Route("/{id}", func(r chi.Router) {
					r.Post("/payment-method", h.OrderHandler.SetPaymentMethod)
					r.Post("/pay", h.OrderHandler.PayOrder)
					r.Post("/return", h.OrderHandler.ReturnOrder)
					r.Post("/cancel", h.OrderHandler.CancelOrder)
					r.With(auth.RequireAdmin).Delete("/", h.OrderHandler.DeleteOrder)
				})
			})

			r.Route("/adjustments", func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				r.Post("/", h.AdjustmentHandler.CreateAdjustment)
				r.Delete("/{id}", h.AdjustmentHandler.DeleteAdjustment)
			})

			r.Route("/technicians/{id}", func(r chi.Router) {
				r.Get("/weekly-totals", h.SettlementHandler.GetWeeklyTotals)
				r.Get("/adjustments", h.SettlementHandler.GetPendingAdjustments)
				r.Get("/loans", h.SettlementHandler.GetLoans)
				r.With(auth.RequireAdmin).Post("/settlements", h.SettlementHandler.RecordSettlement)
			})

			r.Route("/settlements", func(r chi.Router) {
				r.Get("/", h.SettlementHandler.GetHistory)
				r.With(auth.RequireAdmin).Get("/export", h.SettlementHandler.ExportHistory)
			})
		})
	})

	return r
}
