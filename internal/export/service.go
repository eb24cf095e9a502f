package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Akk525/invoice-parser/internal/invoice"
)

// Service produces XLSX bytes for an extracted invoice record.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportLineItemsXLSX returns an XLSX workbook (as bytes) holding one row
// per extracted line item, with the invoice summary fields above the table.
func (s *Service) ExportLineItemsXLSX(rec *invoice.Record) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Line Items"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet so the workbook has just ours
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	// Summary block
	write(1, 1, "Invoice Number")
	write(2, 1, strOrDash(rec.InvoiceNumber))
	write(1, 2, "Date")
	write(2, 2, strOrDash(rec.Date))
	write(1, 3, "Vendor")
	write(2, 3, strOrDash(rec.VendorName))
	write(1, 4, "Total")
	write(2, 4, amountCell(rec.Total))

	// Line-item table
	headers := []string{"Description", "Quantity", "Unit Price", "Total Amount", "Service Period"}
	const headerRow = 6
	for i, h := range headers {
		write(i+1, headerRow, h)
	}

	row := headerRow + 1
	for _, item := range rec.LineItems {
		write(1, row, item.Description)
		write(2, row, amountCell(item.Quantity))
		write(3, row, amountCell(item.UnitPrice))
		write(4, row, amountCell(item.TotalAmount))
		write(5, row, item.ServicePeriod)
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 40) // description
	_ = f.SetColWidth(sheet, "B", "D", 14) // amounts
	_ = f.SetColWidth(sheet, "E", "E", 28) // service period

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"line_items", len(rec.LineItems),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOrDash(p *string) string {
	if p == nil || *p == "" {
		return "—"
	}
	return *p
}

func amountCell(a *invoice.Amount) any {
	if a == nil {
		return ""
	}
	if v, ok := a.Float64(); ok {
		return v
	}
	return a.Raw()
}
