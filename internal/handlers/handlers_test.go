package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/GlebRadaev/repairshop/docs"
	"github.com/GlebRadaev/repairshop/internal/handlers/adjustments"
	authhandlers "github.com/GlebRadaev/repairshop/internal/handlers/auth"
	"github.com/GlebRadaev/repairshop/internal/handlers/orders"
	"github.com/GlebRadaev/repairshop/internal/handlers/settlements"
	"github.com/GlebRadaev/repairshop/internal/service"
	"github.com/GlebRadaev/repairshop/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:       authhandlers.NewMockService(ctrl),
		OrderService:      orders.NewMockService(ctrl),
		AdjustmentService: adjustments.NewMockService(ctrl),
		SettlementService: settlements.NewMockService(ctrl),
		JWTService:        auth.NewMockJWTServiceInterface(ctrl),
	}

	h := New(services, []string{"*"})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.SettlementHandler)
}

func newRouter(t *testing.T) chi.Router {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	authHandler := NewMockAuthHandler(ctrl)
	orderHandler := NewMockOrderHandler(ctrl)
	adjustmentHandler := NewMockAdjustmentHandler(ctrl)
	settlementHandler := NewMockSettlementHandler(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	authHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	orderHandler.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).AnyTimes()
	orderHandler.EXPECT().GetOrders(gomock.Any(), gomock.Any()).AnyTimes()
	orderHandler.EXPECT().SetPaymentMethod(gomock.Any(), gomock.Any()).AnyTimes()
	orderHandler.EXPECT().PayOrder(gomock.Any(), gomock.Any()).AnyTimes()
	orderHandler.EXPECT().ReturnOrder(gomock.Any(), gomock.Any()).AnyTimes()
	orderHandler.EXPECT().CancelOrder(gomock.Any(), gomock.Any()).AnyTimes()
	orderHandler.EXPECT().DeleteOrder(gomock.Any(), gomock.Any()).AnyTimes()
	adjustmentHandler.EXPECT().CreateAdjustment(gomock.Any(), gomock.Any()).AnyTimes()
	adjustmentHandler.EXPECT().DeleteAdjustment(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().GetWeeklyTotals(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().GetPendingAdjustments(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().GetLoans(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().RecordSettlement(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().ExportHistory(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService.EXPECT().ValidateToken("admin-token").Return(&auth.Claims{UserID: 1, Role: auth.RoleAdmin}, nil).AnyTimes()
	jwtService.EXPECT().ValidateToken("technician-token").Return(&auth.Claims{UserID: 3, Role: auth.RoleTechnician}, nil).AnyTimes()

	h := &Handlers{
		AuthHandler:       authHandler,
		OrderHandler:      orderHandler,
		AdjustmentHandler: adjustmentHandler,
		SettlementHandler: settlementHandler,
		jwtService:        jwtService,
		corsOrigins:       []string{"http://dashboard.local"},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router
}

func TestInitRoutes(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{http.MethodPost, "/api/user/register", "", http.StatusOK},
		{http.MethodPost, "/api/user/login", "", http.StatusOK},
		{http.MethodGet, "/api/orders", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/orders", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/technicians/3/weekly-totals", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/settlements", "", http.StatusUnauthorized},

		{http.MethodGet, "/api/orders", "technician-token", http.StatusOK},
		{http.MethodPost, "/api/orders", "technician-token", http.StatusOK},
		{http.MethodPost, "/api/orders/1/payment-method", "technician-token", http.StatusOK},
		{http.MethodPost, "/api/orders/1/pay", "technician-token", http.StatusOK},
		{http.MethodPost, "/api/orders/1/return", "technician-token", http.StatusOK},
		{http.MethodPost, "/api/orders/1/cancel", "technician-token", http.StatusOK},
		{http.MethodGet, "/api/technicians/3/weekly-totals", "technician-token", http.StatusOK},
		{http.MethodGet, "/api/technicians/3/adjustments", "technician-token", http.StatusOK},
		{http.MethodGet, "/api/technicians/3/loans", "technician-token", http.StatusOK},
		{http.MethodGet, "/api/settlements", "technician-token", http.StatusOK},

		{http.MethodDelete, "/api/orders/1", "technician-token", http.StatusForbidden},
		{http.MethodPost, "/api/adjustments", "technician-token", http.StatusForbidden},
		{http.MethodDelete, "/api/adjustments/10", "technician-token", http.StatusForbidden},
		{http.MethodPost, "/api/technicians/3/settlements", "technician-token", http.StatusForbidden},
		{http.MethodGet, "/api/settlements/export", "technician-token", http.StatusForbidden},

		{http.MethodDelete, "/api/orders/1", "admin-token", http.StatusOK},
		{http.MethodPost, "/api/adjustments", "admin-token", http.StatusOK},
		{http.MethodDelete, "/api/adjustments/10", "admin-token", http.StatusOK},
		{http.MethodPost, "/api/technicians/3/settlements", "admin-token", http.StatusOK},
		{http.MethodGet, "/api/settlements/export", "admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_CORSPreflight(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "http://dashboard.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://dashboard.local", rec.Header().Get("Access-Control-Allow-Origin"))
}
