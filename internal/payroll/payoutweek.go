package payroll

import (
	"fmt"
	"time"

	"github.com/GlebRadaev/repairshop/internal/domain"
)

// PayoutWeek identifies a Saturday to Friday cycle. Number 1 is the week whose
// Saturday is the first Saturday of Year. All boundaries are in UTC.
type PayoutWeek struct {
	Number int `json:"week"`
	Year   int `json:"year"`
}

// WeekStart returns Saturday 00:00 UTC of the cycle containing t.
func WeekStart(t time.Time) time.Time {
	u := t.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) - int(time.Saturday) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekOf is the payout week an order paid at t belongs to. The result is
// meant to be persisted once, not recomputed on read.
func WeekOf(t time.Time) PayoutWeek {
	start := WeekStart(t)
	return PayoutWeek{
		Number: (start.YearDay()-1)/7 + 1,
		Year:   start.Year(),
	}
}

// CurrentWeek resolves "now" into a payout week. Callers resolve it once per
// request and pass the week down.
func CurrentWeek(now func() time.Time) PayoutWeek {
	return WeekOf(now())
}

// WeekRange returns the first and last instant of the week.
func WeekRange(week, year int) (start, end time.Time, err error) {
	w := PayoutWeek{Number: week, Year: year}
	if err := w.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return w.Start(), w.End(), nil
}

func firstSaturday(year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(time.Saturday) - int(jan1.Weekday()) + 7) % 7
	return jan1.AddDate(0, 0, offset)
}

func (w PayoutWeek) Start() time.Time {
	return firstSaturday(w.Year).AddDate(0, 0, (w.Number-1)*7)
}

// End is Friday 23:59:59.999 UTC.
func (w PayoutWeek) End() time.Time {
	return w.nextStart().Add(-time.Millisecond)
}

func (w PayoutWeek) nextStart() time.Time {
	return w.Start().AddDate(0, 0, 7)
}

// Contains uses the half-open interval [Start, next Start).
func (w PayoutWeek) Contains(t time.Time) bool {
	u := t.UTC()
	return !u.Before(w.Start()) && u.Before(w.nextStart())
}

func (w PayoutWeek) Next() PayoutWeek {
	return WeekOf(w.nextStart())
}

func (w PayoutWeek) Validate() error {
	if w.Year < 1970 || w.Number < 1 || w.Number > 53 {
		return domain.ErrInvalidWeek
	}
	if w.Start().Year() != w.Year {
		return domain.ErrInvalidWeek
	}
	return nil
}

func (w PayoutWeek) String() string {
	return fmt.Sprintf("%d-W%02d", w.Year, w.Number)
}
