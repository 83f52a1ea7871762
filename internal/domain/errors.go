package domain

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrAdjustmentNotFound = errors.New("adjustment not found")
	ErrTechnicianNotFound = errors.New("technician not found")

	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidAdjustmentType = errors.New("invalid adjustment type")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrInvalidWeek           = errors.New("invalid payout week")
	ErrInvalidTransition     = errors.New("order status does not allow this operation")
	ErrOrderAlreadyPaid      = errors.New("order already paid")
	ErrInvalidDateRange      = errors.New("date range start is after its end")

	ErrNothingToSettle        = errors.New("nothing to settle for this week")
	ErrTargetOutOfRange       = errors.New("settlement amount is outside the payable range")
	ErrInvalidLoanPayment     = errors.New("loan payment exceeds the outstanding loan")
	ErrLedgerUnavailable      = errors.New("adjustment history is unavailable, settlements are disabled until migrations are applied")
	ErrConcurrentModification = errors.New("ledger changed while the settlement was being recorded, reload and retry")
)
