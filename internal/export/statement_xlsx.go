// Package export renders credit statements as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	statementSheet = "Statement"
	headerRow      = 6
	dateLayout     = "2006-01-02"
	amountFormat   = "#,##0.00"
)

// XLSXContentType is the MIME type of the workbook written by WriteStatementXLSX.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StatementFilename is the download name for a customer's statement.
func StatementFilename(st domain.Statement) string {
	return fmt.Sprintf("statement-%s.xlsx", st.Customer.CustomerID)
}

// WriteStatementXLSX writes st as a single-sheet workbook: customer details,
// one row per merged item, then the period totals.
func WriteStatementXLSX(w io.Writer, st domain.Statement, shopName string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", statementSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	fmtCode := amountFormat
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: &fmtCode})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	set := func(cell string, value any) {
		if err == nil {
			err = f.SetCellValue(statementSheet, cell, value)
		}
	}

	set("A1", shopName+" - Credit Statement")
	set("A2", "Customer")
	set("B2", st.Customer.Name)
	set("A3", "Phone")
	set("B3", st.Customer.Phone)
	set("A4", "Period")
	set("B4", periodLabel(st))
	if err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	header := []any{"Item", "Qty", "Price", "Amount"}
	if err := f.SetSheetRow(statementSheet, cellName(1, headerRow), &header); err != nil {
		return fmt.Errorf("write column headings: %w", err)
	}

	row := headerRow + 1
	for _, line := range st.Lines {
		values := []any{line.Name, line.Quantity, amount(line.Price), amount(line.Amount)}
		if err := f.SetSheetRow(statementSheet, cellName(1, row), &values); err != nil {
			return fmt.Errorf("write line %q: %w", line.Name, err)
		}
		row++
	}
	lastLine := row - 1

	row++
	summaryStart := row
	summary := []struct {
		label string
		value any
	}{
		{"Receipts", st.ReceiptCount},
		{"Period billed", amount(st.PeriodBilled)},
		{"Recovered", amount(st.Recovered)},
		{"Remaining due", amount(st.RemainingDue)},
	}
	for _, s := range summary {
		set(cellName(3, row), s.label)
		set(cellName(4, row), s.value)
		row++
	}
	if err != nil {
		return fmt.Errorf("write totals: %w", err)
	}

	styles := []struct {
		from, to string
		style    int
	}{
		{"A1", "A1", title},
		{"A2", "A4", bold},
		{cellName(1, headerRow), cellName(4, headerRow), bold},
		{cellName(3, summaryStart), cellName(3, row-1), bold},
		{cellName(4, summaryStart+1), cellName(4, row-1), money},
	}
	if lastLine > headerRow {
		styles = append(styles, struct {
			from, to string
			style    int
		}{cellName(3, headerRow+1), cellName(4, lastLine), money})
	}
	for _, s := range styles {
		if err := f.SetCellStyle(statementSheet, s.from, s.to, s.style); err != nil {
			return fmt.Errorf("apply style: %w", err)
		}
	}
	if err := f.SetColWidth(statementSheet, "A", "A", 32); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(statementSheet, "B", "D", 14); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func periodLabel(st domain.Statement) string {
	switch {
	case st.From != nil && st.To != nil:
		// To is exclusive; show the last day it covers.
		return st.From.Format(dateLayout) + " to " + st.To.AddDate(0, 0, -1).Format(dateLayout)
	case st.From != nil:
		return "From " + st.From.Format(dateLayout)
	case st.To != nil:
		return "Until " + st.To.AddDate(0, 0, -1).Format(dateLayout)
	default:
		return "All time"
	}
}

func amount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
