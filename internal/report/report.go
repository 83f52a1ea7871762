package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/internal/payroll"
)

const (
	SettlementsSheet = "Settlements"
	ContentType      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	dateLayout       = "2006-01-02"
)

var settlementHeaders = []string{
	"ID", "Technician", "Week", "Week start", "Paid out", "Method",
	"Base amount", "Deductions applied", "Loan repayments", "Deferred holdback",
	"Reference", "Created at", "Created by",
}

// WriteSettlements renders the settlement history as a single sheet
// workbook. Money columns are numeric cells.
func WriteSettlements(w io.Writer, settlements []domain.SettlementTransaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(SettlementsSheet); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	index, err := f.GetSheetIndex(SettlementsSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	for i, header := range settlementHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SettlementsSheet, cell, header); err != nil {
			return err
		}
	}

	for i, s := range settlements {
		row := []any{
			s.ID,
			s.TechnicianID,
			payroll.WeekOf(s.WeekStart).String(),
			s.WeekStart.Format(dateLayout),
			s.Amount.InexactFloat64(),
			string(s.PaymentMethod),
			s.Breakdown.BaseAmount.InexactFloat64(),
			s.Breakdown.AdjustmentsTotal.InexactFloat64(),
			s.Breakdown.LoanPaymentsTotal.InexactFloat64(),
			s.Breakdown.DeferredHoldback.InexactFloat64(),
			s.Reference.String(),
			s.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			s.CreatedBy,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SettlementsSheet, cell, &row); err != nil {
			return fmt.Errorf("write settlement %d: %w", s.ID, err)
		}
	}

	return f.Write(w)
}
