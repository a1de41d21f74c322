// internal/core/ports/report_writer.go
package ports

import (
	"context"

	"github.com/odalton/storekeep/internal/core/domain"
)

// ReportWriter defines the export port for inventory reports.
type ReportWriter interface {
	// WriteReport renders the products into a report file and returns the
	// path of the file it wrote.
	WriteReport(ctx context.Context, products []domain.Product) (string, error)
}
