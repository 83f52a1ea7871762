package settlementrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/pg"
	"go.uber.org/zap"
)

const settlementColumns = `id, technician_id, week_start, amount, payment_method, breakdown, reference, created_at, created_by`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// LockTechnician serialises settlement writes for one technician until the
// surrounding transaction ends. It must run inside TXManager.Begin.
func (r *Repository) LockTechnician(ctx context.Context, technicianID int) error {
	_, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(technicianID))
	if err != nil {
		zap.L().Error("can't lock technician", zap.Int("technician_id", technicianID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, s *domain.SettlementTransaction) (*domain.SettlementTransaction, error) {
	breakdown, err := json.Marshal(s.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("can't encode breakdown: %w", err)
	}
	query := `
		INSERT INTO salary_settlements (technician_id, week_start, amount, payment_method, breakdown, reference, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err = r.db.QueryRow(ctx, query, s.TechnicianID, s.WeekStart, s.Amount, s.PaymentMethod, breakdown, s.Reference, s.CreatedBy).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		zap.L().Error("can't save settlement", zap.Int("technician_id", s.TechnicianID), zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) FindByWeek(ctx context.Context, technicianID int, weekStart time.Time) ([]domain.SettlementTransaction, error) {
	query := `SELECT ` + settlementColumns + ` FROM salary_settlements
		WHERE technician_id = $1 AND week_start = $2
		ORDER BY created_at, id`
	settlements, err := r.querySettlements(ctx, query, technicianID, weekStart)
	if err != nil {
		zap.L().Error("can't get week settlements", zap.Int("technician_id", technicianID), zap.Error(err))
		return nil, err
	}
	return settlements, nil
}

// Find lists settlements newest first. Empty filter fields are ignored; From
// and To bound created_at inclusively.
func (r *Repository) Find(ctx context.Context, filter domain.SettlementFilter) ([]domain.SettlementTransaction, error) {
	var (
		conditions []string
		args       []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}
	if filter.TechnicianID != nil {
		add("technician_id = $%d", *filter.TechnicianID)
	}
	if filter.PaymentMethod != nil {
		add("payment_method = $%d", *filter.PaymentMethod)
	}
	if filter.From != nil {
		add("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("created_at <= $%d", *filter.To)
	}

	query := `SELECT ` + settlementColumns + ` FROM salary_settlements`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`

	settlements, err := r.querySettlements(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get settlement history", zap.Error(err))
		return nil, err
	}
	return settlements, nil
}

func (r *Repository) querySettlements(ctx context.Context, query string, args ...any) ([]domain.SettlementTransaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settlements []domain.SettlementTransaction
	for rows.Next() {
		var (
			s         domain.SettlementTransaction
			breakdown []byte
		)
		err := rows.Scan(&s.ID, &s.TechnicianID, &s.WeekStart, &s.Amount, &s.PaymentMethod, &breakdown, &s.Reference, &s.CreatedAt, &s.CreatedBy)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(breakdown, &s.Breakdown); err != nil {
			return nil, fmt.Errorf("can't decode breakdown of settlement %d: %w", s.ID, err)
		}
		settlements = append(settlements, s)
	}
	return settlements, rows.Err()
}
