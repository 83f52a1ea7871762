package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/GlebRadaev/repairshop/internal/domain"
)

func TestWriteSettlements(t *testing.T) {
	reference := uuid.MustParse("5f0c2f7e-3c7b-4a53-9d0f-2f7a4f6c1a01")
	settlements := []domain.SettlementTransaction{{
		ID:            20,
		TechnicianID:  3,
		WeekStart:     time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(35000),
		PaymentMethod: domain.SettlementCash,
		Breakdown: domain.Breakdown{
			BaseAmount:       decimal.NewFromInt(40000),
			AdjustmentsTotal: decimal.NewFromInt(5000),
		},
		Reference: reference,
		CreatedAt: time.Date(2026, 10, 14, 12, 30, 0, 0, time.UTC),
		CreatedBy: 1,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteSettlements(&buf, settlements))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SettlementsSheet}, f.GetSheetList())
	rows, err := f.GetRows(SettlementsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, settlementHeaders, rows[0])

	row := rows[1]
	assert.Equal(t, "20", row[0])
	assert.Equal(t, "2026-W41", row[2])
	assert.Equal(t, "2026-10-10", row[3])
	assert.Equal(t, "35000", row[4])
	assert.Equal(t, "cash", row[5])
	assert.Equal(t, "5000", row[7])
	assert.Equal(t, reference.String(), row[10])
	assert.Equal(t, "2026-10-14 12:30:00", row[11])
}

func TestWriteSettlements_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSettlements(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SettlementsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
