package adjustmentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var (
	columns   = []string{"id", "technician_id", "type", "amount", "note", "created_at", "available_from"}
	createdAt = time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
	nextWeek  = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
)

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	adj := &domain.SalaryAdjustment{
		TechnicianID:  3,
		Type:          domain.AdjustmentDiscount,
		Amount:        decimal.NewFromInt(10000),
		Note:          "broken screen",
		CreatedAt:     createdAt,
		AvailableFrom: createdAt,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO salary_adjustments")).
		WithArgs(3, domain.AdjustmentDiscount, pgxmock.AnyArg(), "broken screen", createdAt, createdAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))

	result, err := repo.Create(context.Background(), adj)
	require.NoError(t, err)
	assert.Equal(t, 10, result.ID)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO salary_adjustments")).
		WithArgs(3, domain.AdjustmentDiscount, pgxmock.AnyArg(), "broken screen", createdAt, createdAt).
		WillReturnError(errors.New("database error"))
	_, err = repo.Create(context.Background(), adj)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM salary_adjustments WHERE id = $1")).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(10, 3, domain.AdjustmentAdvance, decimal.NewFromInt(5000), "", createdAt, createdAt))
	adj, err := repo.FindByID(context.Background(), 10)
	require.NoError(t, err)
	require.NotNil(t, adj)
	assert.Equal(t, domain.AdjustmentAdvance, adj.Type)

	mock.ExpectQuery(regexp.QuoteMeta("FROM salary_adjustments WHERE id = $1")).
		WithArgs(11).
		WillReturnError(pgx.ErrNoRows)
	adj, err = repo.FindByID(context.Background(), 11)
	assert.NoError(t, err)
	assert.Nil(t, adj)
}

func TestRepository_FindByTechnician(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  []domain.SalaryAdjustment
	}{
		{
			name: "Adjustments found",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(1, 3, domain.AdjustmentDiscount, decimal.NewFromInt(10000), "", createdAt, createdAt).
					AddRow(2, 3, domain.AdjustmentLoan, decimal.NewFromInt(70000), "phone", createdAt, nextWeek)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE technician_id = $1 ORDER BY created_at, id")).
					WithArgs(3).
					WillReturnRows(rows)
			},
			expected: []domain.SalaryAdjustment{
				{ID: 1, TechnicianID: 3, Type: domain.AdjustmentDiscount, Amount: decimal.NewFromInt(10000), CreatedAt: createdAt, AvailableFrom: createdAt},
				{ID: 2, TechnicianID: 3, Type: domain.AdjustmentLoan, Amount: decimal.NewFromInt(70000), Note: "phone", CreatedAt: createdAt, AvailableFrom: nextWeek},
			},
		},
		{
			name: "Scan row error",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(1, 3, domain.AdjustmentDiscount, "not a number", "", createdAt, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE technician_id = $1")).
					WithArgs(3).
					WillReturnRows(rows)
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE technician_id = $1")).
					WithArgs(3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByTechnician(context.Background(), 3)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRepository_FindApplications(t *testing.T) {
	repo, mock := NewMock(t)
	weekStart := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Applications across weeks", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "adjustment_id", "technician_id", "week_start", "applied_amount", "created_at"}).
			AddRow(1, 10, 3, weekStart.AddDate(0, 0, -7), decimal.NewFromInt(4000), createdAt).
			AddRow(2, 10, 3, weekStart, decimal.NewFromInt(2500), createdAt)
		mock.ExpectQuery(regexp.QuoteMeta("FROM salary_adjustment_applications")).
			WithArgs(3).
			WillReturnRows(rows)

		apps, err := repo.FindApplications(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, apps, 2)
		assert.True(t, apps[1].AppliedAmount.Equal(decimal.NewFromInt(2500)))
	})

	t.Run("Missing table is reported to the caller", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM salary_adjustment_applications")).
			WithArgs(3).
			WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "salary_adjustment_applications" does not exist`})

		_, err := repo.FindApplications(context.Background(), 3)
		assert.True(t, pg.IsUndefinedTable(err))
	})
}

func TestRepository_CreateApplication(t *testing.T) {
	repo, mock := NewMock(t)
	app := &domain.AdjustmentApplication{
		AdjustmentID:  10,
		TechnicianID:  3,
		WeekStart:     time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
		AppliedAmount: decimal.NewFromInt(5000),
	}

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Balance covers the application",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO salary_adjustment_applications")).
					WithArgs(10, app.WeekStart, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Balance was consumed by another settlement",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SELECT SUM(applied_amount) FROM salary_adjustment_applications WHERE adjustment_id = a.id")).
					WithArgs(10, app.WeekStart, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			expectErr:   true,
			expectedErr: domain.ErrConcurrentModification,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO salary_adjustment_applications")).
					WithArgs(10, app.WeekStart, pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.CreateApplication(context.Background(), app)
			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeferAndDelete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET available_from = $2, note = CONCAT_WS(' ', NULLIF(note, ''), $3::text)")).
		WithArgs(10, nextWeek, "carried to 2026-W42").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Defer(context.Background(), 10, nextWeek, "carried to 2026-W42"))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE salary_adjustments")).
		WithArgs(11, nextWeek, "carried to 2026-W42").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Defer(context.Background(), 11, nextWeek, "carried to 2026-W42"), domain.ErrConcurrentModification)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM salary_adjustments WHERE id = $1")).
		WithArgs(10).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), 10))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM salary_adjustments WHERE id = $1")).
		WithArgs(12).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 12), domain.ErrAdjustmentNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
