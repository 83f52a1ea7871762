package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/payroll"
	"github.com/GlebRadaev/repairshop/pkg/utils"
)

var (
	ErrInvalidID   = errors.New("invalid id")
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or RFC3339")
)

var statusByError = []struct {
	err    error
	status int
}{
	{domain.ErrOrderNotFound, http.StatusNotFound},
	{domain.ErrAdjustmentNotFound, http.StatusNotFound},
	{domain.ErrTechnicianNotFound, http.StatusNotFound},
	{domain.ErrInvalidPaymentMethod, http.StatusUnprocessableEntity},
	{domain.ErrInvalidAdjustmentType, http.StatusUnprocessableEntity},
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{domain.ErrInvalidWeek, http.StatusUnprocessableEntity},
	{domain.ErrInvalidDateRange, http.StatusUnprocessableEntity},
	{domain.ErrTargetOutOfRange, http.StatusUnprocessableEntity},
	{domain.ErrNothingToSettle, http.StatusUnprocessableEntity},
	{domain.ErrInvalidLoanPayment, http.StatusUnprocessableEntity},
	{domain.ErrInvalidTransition, http.StatusConflict},
	{domain.ErrOrderAlreadyPaid, http.StatusConflict},
	{domain.ErrConcurrentModification, http.StatusConflict},
	{domain.ErrLedgerUnavailable, http.StatusServiceUnavailable},
}

// WriteError maps domain errors to their status. Anything else is logged
// and answered with a generic 500.
func WriteError(w http.ResponseWriter, err error) {
	for _, e := range statusByError {
		if errors.Is(err, e.err) {
			utils.RespondWithError(w, e.status, e.err.Error())
			return
		}
	}
	zap.L().Error("request failed", zap.Error(err))
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

func PathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// QueryInt returns 0, false when the parameter is absent.
func QueryInt(r *http.Request, name string) (int, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, ErrInvalidID
	}
	return v, true, nil
}

// QueryWeek reads ?week=&year=. Without both the current week is used.
func QueryWeek(r *http.Request, current payroll.PayoutWeek) (payroll.PayoutWeek, error) {
	week, hasWeek, err := QueryInt(r, "week")
	if err != nil {
		return payroll.PayoutWeek{}, domain.ErrInvalidWeek
	}
	year, hasYear, err := QueryInt(r, "year")
	if err != nil {
		return payroll.PayoutWeek{}, domain.ErrInvalidWeek
	}
	switch {
	case !hasWeek && !hasYear:
		return current, nil
	case hasWeek && !hasYear:
		year = current.Year
	case !hasWeek:
		return payroll.PayoutWeek{}, domain.ErrInvalidWeek
	}
	w := payroll.PayoutWeek{Number: week, Year: year}
	return w, w.Validate()
}

// QueryTime accepts a date or an RFC3339 timestamp. A bare date used as an
// upper bound covers the whole day.
func QueryTime(r *http.Request, name string, endOfDay bool) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
