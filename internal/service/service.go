package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/GlebRadaev/repairshop/internal/config"
	"github.com/GlebRadaev/repairshop/internal/handlers/adjustments"
	"github.com/GlebRadaev/repairshop/internal/handlers/auth"
	"github.com/GlebRadaev/repairshop/internal/handlers/orders"
	"github.com/GlebRadaev/repairshop/internal/handlers/settlements"
	"github.com/GlebRadaev/repairshop/internal/payroll"
	"github.com/GlebRadaev/repairshop/internal/repo"
	"github.com/GlebRadaev/repairshop/internal/service/adjustmentservice"
	"github.com/GlebRadaev/repairshop/internal/service/authservice"
	"github.com/GlebRadaev/repairshop/internal/service/orderservice"
	"github.com/GlebRadaev/repairshop/internal/service/settlementservice"

	pkgauth "github.com/GlebRadaev/repairshop/pkg/auth"
)

type Services struct {
	AuthService       auth.Service
	OrderService      orders.Service
	AdjustmentService adjustments.Service
	SettlementService settlements.Service
	JWTService        pkgauth.JWTServiceInterface
}

func New(cfg *config.Config, repo *repo.Repositories) (*Services, error) {
	order, err := payroll.ParseTraversalOrder(cfg.DistributionOrder)
	if err != nil {
		return nil, err
	}
	calculator := payroll.NewCalculator(order)
	policy := payroll.CommissionPolicy{Rate: cfg.CommissionRate, TaxRate: cfg.CardTaxRate}
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	settlementService := settlementservice.New(repo.OrderRepo, repo.AdjustmentRepo, repo.SettlementRepo, repo.UserRepo, repo.TxManager, calculator)
	adjustmentService := adjustmentservice.New(repo.AdjustmentRepo, repo.UserRepo, settlementService)
	orderService := orderservice.New(repo.OrderRepo, repo.UserRepo, settlementService, policy)
	authService := authservice.New(repo.UserRepo, pkgauth.NewHashService(bcrypt.DefaultCost), jwtService, cfg.AdminLogins)

	return &Services{
		AuthService:       authService,
		OrderService:      orderService,
		AdjustmentService: adjustmentService,
		SettlementService: settlementService,
		JWTService:        jwtService,
	}, nil
}
