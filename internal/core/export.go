package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JonMunkholm/orderflow/internal/logging"
)

// Export precondition and result errors.
var (
	ErrNoExportType        = errors.New("no export type selected")
	ErrUnknownExportType   = errors.New("unknown export type")
	ErrNoStartInvoice      = errors.New("no start invoice number")
	ErrInvalidStartInvoice = errors.New("invalid start invoice number")
	ErrNoSelection         = errors.New("no orders selected")
	ErrNothingToExport     = errors.New("no valid rows to export")
)

// ExportRequest describes one export action.
type ExportRequest struct {
	Type         string  // Format key, e.g. "shipGlobal"
	StartInvoice string  // As typed by the user
	Orders       []Order // Selected orders, in view order
	Now          time.Time
}

// ExportResult is a mapped export ready to be encoded.
type ExportResult struct {
	Format       FormatInfo
	FileName     string
	Columns      []string
	StartInvoice int
	Records      []ExportRecord
	Skipped      []Outcome
}

// Rows returns the records as string rows in column order.
func (r *ExportResult) Rows() [][]string {
	rows := make([][]string, len(r.Records))
	for i, rec := range r.Records {
		rows[i] = rec.Values()
	}
	return rows
}

// Export validates req, maps the orders with the requested format and
// collects the rows to write. Skipped rows are logged and returned in
// ExportResult.Skipped. When every row is skipped the error is
// ErrNothingToExport.
func Export(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	key := strings.TrimSpace(req.Type)
	if key == "" {
		return nil, ErrNoExportType
	}
	format, ok := Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExportType, key)
	}

	if strings.TrimSpace(req.StartInvoice) == "" {
		return nil, ErrNoStartInvoice
	}
	start, ok := LeadingInt(req.StartInvoice)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStartInvoice, req.StartInvoice)
	}

	if len(req.Orders) == 0 {
		return nil, ErrNoSelection
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	logger := logging.WithFields(ctx, "export_type", format.Info.Key)

	result := &ExportResult{
		Format:       format.Info,
		FileName:     format.FileName(now),
		Columns:      format.Columns,
		StartInvoice: start,
	}

	for _, outcome := range format.Map(req.Orders, start, now) {
		if outcome.Skipped() {
			logger.Warn("skipping row with missing required fields",
				"order_id", outcome.OrderID,
				"index", outcome.Index,
				"missing", strings.Join(outcome.Skip.Missing, ","),
			)
			result.Skipped = append(result.Skipped, outcome)
			continue
		}
		result.Records = append(result.Records, *outcome.Record)
	}

	if len(result.Records) == 0 {
		return nil, ErrNothingToExport
	}

	logger.Info("export mapped",
		"file", result.FileName,
		"rows", len(result.Records),
		"skipped", len(result.Skipped),
	)

	return result, nil
}
