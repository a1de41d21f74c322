// internal/adapters/report/xlsx.go
package report

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/odalton/storekeep/internal/core/domain"
	"github.com/odalton/storekeep/internal/core/ports"
)

// XLSXWriter renders inventory reports as Excel workbooks.
type XLSXWriter struct {
	exportDir string
	logger    *slog.Logger
	now       func() time.Time
}

// Statically assert that *XLSXWriter implements the ReportWriter port.
var _ ports.ReportWriter = (*XLSXWriter)(nil)

// NewXLSXWriter creates a writer that places report files in exportDir.
func NewXLSXWriter(exportDir string, logger *slog.Logger) *XLSXWriter {
	return &XLSXWriter{
		exportDir: exportDir,
		logger:    logger.With(slog.String("adapter", "report")),
		now:       time.Now,
	}
}

// WriteReport writes an inventory worksheet with one row per product and a
// total-value summary row, and returns the path of the written file.
func (w *XLSXWriter) WriteReport(ctx context.Context, products []domain.Product) (string, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Inventory")
	if err != nil {
		return "", fmt.Errorf("failed to add worksheet: %w", err)
	}

	headers := []string{"Product ID", "Name", "Type", "Price", "In Stock", "Total Value", "Details"}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	total := decimal.Zero
	for _, p := range products {
		row := sheet.AddRow()
		for _, value := range []string{
			p.ID(),
			p.Name(),
			string(p.Type()),
			p.Price().StringFixed(2),
			strconv.Itoa(p.Quantity()),
			p.TotalValue().StringFixed(2),
			detailsFor(p),
		} {
			row.AddCell().Value = value
		}
		total = total.Add(p.TotalValue())
	}

	summary := sheet.AddRow()
	summary.AddCell().Value = "Total inventory value"
	for i := 1; i < 5; i++ {
		summary.AddCell()
	}
	cell := summary.AddCell()
	cell.Value = total.StringFixed(2)
	cell.GetStyle().Font.Bold = true

	for i := range headers {
		sheet.SetColWidth(i, i, 18)
	}

	path := filepath.Join(w.exportDir, fmt.Sprintf("inventory_report_%s.xlsx", w.now().Format("20060102_150405")))
	if err := file.Save(path); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	w.logger.InfoContext(ctx, "inventory report written",
		slog.String("file", path),
		slog.Int("products", len(products)))
	return path, nil
}

// detailsFor renders the variant-specific fields for the report sheet,
// dispatching on the persisted record's discriminator.
func detailsFor(p domain.Product) string {
	rec := p.Record()
	switch rec.Type {
	case domain.TypeElectronics:
		return fmt.Sprintf("Warranty: %d years | Brand: %s", *rec.WarrantyYears, *rec.Brand)
	case domain.TypeGrocery:
		return fmt.Sprintf("Expiry: %s", *rec.ExpiryDate)
	case domain.TypeClothing:
		return fmt.Sprintf("Size: %s | Material: %s", *rec.Size, *rec.Material)
	}
	return ""
}
