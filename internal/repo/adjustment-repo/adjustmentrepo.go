package adjustmentrepo

import (
	"context"
	"time"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/pg"
	"go.uber.org/zap"
)

const adjustmentColumns = `id, technician_id, type, amount, note, created_at, available_from`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAdjustment(row scanner) (domain.SalaryAdjustment, error) {
	var a domain.SalaryAdjustment
	err := row.Scan(&a.ID, &a.TechnicianID, &a.Type, &a.Amount, &a.Note, &a.CreatedAt, &a.AvailableFrom)
	return a, err
}

func (r *Repository) Create(ctx context.Context, adj *domain.SalaryAdjustment) (*domain.SalaryAdjustment, error) {
	query := `
		INSERT INTO salary_adjustments (technician_id, type, amount, note, created_at, available_from)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, adj.TechnicianID, adj.Type, adj.Amount, adj.Note, adj.CreatedAt, adj.AvailableFrom).Scan(&adj.ID)
	if err != nil {
		zap.L().Error("can't save adjustment", zap.Error(err))
		return nil, err
	}
	return adj, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.SalaryAdjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM salary_adjustments WHERE id = $1`
	adj, err := scanAdjustment(r.db.QueryRow(ctx, query, id))
	if pg.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find adjustment", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &adj, nil
}

func (r *Repository) FindByTechnician(ctx context.Context, technicianID int) ([]domain.SalaryAdjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM salary_adjustments WHERE technician_id = $1 ORDER BY created_at, id`
	rows, err := r.db.Query(ctx, query, technicianID)
	if err != nil {
		zap.L().Error("can't get adjustments", zap.Int("technician_id", technicianID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var adjustments []domain.SalaryAdjustment
	for rows.Next() {
		adj, err := scanAdjustment(rows)
		if err != nil {
			zap.L().Error("can't scan adjustment row", zap.Error(err))
			return nil, err
		}
		adjustments = append(adjustments, adj)
	}
	return adjustments, rows.Err()
}

// FindApplications returns every application of the technician's adjustments
// across all weeks. A missing table is returned as is so callers can detect it
// with pg.IsUndefinedTable.
func (r *Repository) FindApplications(ctx context.Context, technicianID int) ([]domain.AdjustmentApplication, error) {
	query := `
		SELECT id, adjustment_id, technician_id, week_start, applied_amount, created_at
		FROM salary_adjustment_applications
		WHERE technician_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, technicianID)
	if err != nil {
		if !pg.IsUndefinedTable(err) {
			zap.L().Error("can't get adjustment applications", zap.Int("technician_id", technicianID), zap.Error(err))
		}
		return nil, err
	}
	defer rows.Close()

	var applications []domain.AdjustmentApplication
	for rows.Next() {
		var a domain.AdjustmentApplication
		if err := rows.Scan(&a.ID, &a.AdjustmentID, &a.TechnicianID, &a.WeekStart, &a.AppliedAmount, &a.CreatedAt); err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

// CreateApplication inserts the application only if the adjustment still has
// at least the applied amount left. Zero inserted rows means another writer
// consumed the balance first.
func (r *Repository) CreateApplication(ctx context.Context, app *domain.AdjustmentApplication) error {
	query := `
		INSERT INTO salary_adjustment_applications (adjustment_id, technician_id, week_start, applied_amount)
		SELECT a.id, a.technician_id, $2, $3
		FROM salary_adjustments a
		WHERE a.id = $1
			AND a.amount - COALESCE((
				SELECT SUM(applied_amount) FROM salary_adjustment_applications WHERE adjustment_id = a.id
			), 0) >= $3
	`
	tag, err := r.db.Exec(ctx, query, app.AdjustmentID, app.WeekStart, app.AppliedAmount)
	if err != nil {
		zap.L().Error("can't save adjustment application", zap.Int("adjustment_id", app.AdjustmentID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentModification
	}
	return nil
}

// Defer moves the adjustment to a later week and appends note to its note.
func (r *Repository) Defer(ctx context.Context, id int, availableFrom time.Time, note string) error {
	query := `
		UPDATE salary_adjustments
		SET available_from = $2, note = CONCAT_WS(' ', NULLIF(note, ''), $3::text)
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id, availableFrom, note)
	if err != nil {
		zap.L().Error("can't defer adjustment", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentModification
	}
	return nil
}

// Delete removes the adjustment. Its applications go with it.
func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM salary_adjustments WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete adjustment", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAdjustmentNotFound
	}
	return nil
}
