package repo

import (
	"github.com/GlebRadaev/repairshop/internal/pg"
	"github.com/GlebRadaev/repairshop/internal/receipts"
	adjustmentrepo "github.com/GlebRadaev/repairshop/internal/repo/adjustment-repo"
	orderrepo "github.com/GlebRadaev/repairshop/internal/repo/order-repo"
	settlementrepo "github.com/GlebRadaev/repairshop/internal/repo/settlement-repo"
	userrepo "github.com/GlebRadaev/repairshop/internal/repo/user-repo"
	"github.com/GlebRadaev/repairshop/internal/service/adjustmentservice"
	"github.com/GlebRadaev/repairshop/internal/service/authservice"
	"github.com/GlebRadaev/repairshop/internal/service/orderservice"
	"github.com/GlebRadaev/repairshop/internal/service/settlementservice"
)

//go:generate mockgen -source=repo.go -destination=mock_repo.go -package=repo

type UserRepo interface {
	authservice.Repo
	settlementservice.UserRepo
}

type OrderRepo interface {
	orderservice.Repo
	settlementservice.OrderRepo
	receipts.OrderRepo
}

type AdjustmentRepo interface {
	adjustmentservice.Repo
	settlementservice.AdjustmentRepo
}

type Repositories struct {
	UserRepo       UserRepo
	OrderRepo      OrderRepo
	AdjustmentRepo AdjustmentRepo
	SettlementRepo settlementservice.SettlementRepo
	TxManager      pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		OrderRepo:      orderrepo.New(conn, txManager),
		AdjustmentRepo: adjustmentrepo.New(conn),
		SettlementRepo: settlementrepo.New(conn),
		TxManager:      txManager,
	}
}
