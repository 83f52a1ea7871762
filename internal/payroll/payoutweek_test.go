package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/repairshop/internal/domain"
)

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name          string
		at            time.Time
		expectedWeek  PayoutWeek
		expectedStart time.Time
	}{
		{
			name:          "Wednesday belongs to previous Saturday",
			at:            time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC),
			expectedWeek:  PayoutWeek{Number: 41, Year: 2026},
			expectedStart: day(2026, 10, 10),
		},
		{
			name:          "Saturday midnight starts a new week",
			at:            day(2026, 10, 17),
			expectedWeek:  PayoutWeek{Number: 42, Year: 2026},
			expectedStart: day(2026, 10, 17),
		},
		{
			name:          "Friday last millisecond stays in the week",
			at:            day(2026, 10, 17).Add(-time.Millisecond),
			expectedWeek:  PayoutWeek{Number: 41, Year: 2026},
			expectedStart: day(2026, 10, 10),
		},
		{
			name:          "Early January belongs to the December Saturday",
			at:            day(2026, 1, 1),
			expectedWeek:  PayoutWeek{Number: 52, Year: 2025},
			expectedStart: day(2025, 12, 27),
		},
		{
			name:          "First Saturday of the year is week one",
			at:            time.Date(2026, 1, 3, 8, 0, 0, 0, time.UTC),
			expectedWeek:  PayoutWeek{Number: 1, Year: 2026},
			expectedStart: day(2026, 1, 3),
		},
		{
			name:          "Non UTC timestamps are normalised",
			at:            time.Date(2026, 10, 16, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			expectedWeek:  PayoutWeek{Number: 42, Year: 2026},
			expectedStart: day(2026, 10, 17),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedWeek, WeekOf(tt.at))
			assert.Equal(t, tt.expectedStart, WeekStart(tt.at))
			assert.Equal(t, tt.expectedStart, tt.expectedWeek.Start())
			assert.True(t, tt.expectedWeek.Contains(tt.at))
		})
	}
}

func TestWeekRange(t *testing.T) {
	start, end, err := WeekRange(41, 2026)
	require.NoError(t, err)
	assert.Equal(t, day(2026, 10, 10), start)
	assert.Equal(t, time.Date(2026, 10, 16, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)
	assert.Equal(t, time.Friday, end.Weekday())

	_, _, err = WeekRange(0, 2026)
	assert.ErrorIs(t, err, domain.ErrInvalidWeek)

	_, _, err = WeekRange(53, 2026)
	assert.ErrorIs(t, err, domain.ErrInvalidWeek)
}

func TestPayoutWeek_Next(t *testing.T) {
	assert.Equal(t, PayoutWeek{Number: 42, Year: 2026}, PayoutWeek{Number: 41, Year: 2026}.Next())
	assert.Equal(t, PayoutWeek{Number: 1, Year: 2026}, PayoutWeek{Number: 52, Year: 2025}.Next())
}

func TestCurrentWeekIsStableForPersistedWeek(t *testing.T) {
	paidAt := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	order := paidOrder(1, "40000", paidAt)

	later := func() time.Time { return paidAt.AddDate(0, 1, 0) }
	current := CurrentWeek(later)

	assert.NotEqual(t, current.Number, *order.PayoutWeek)
	assert.Equal(t, 41, *order.PayoutWeek)
	assert.Equal(t, 2026, *order.PayoutYear)
}

func TestPayoutWeek_String(t *testing.T) {
	assert.Equal(t, "2026-W05", PayoutWeek{Number: 5, Year: 2026}.String())
}
