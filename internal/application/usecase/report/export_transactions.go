// Package report contains reporting and export use cases.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
)

// ExportFormat selects the export encoding.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatJSON ExportFormat = "json"
)

// ErrInvalidExportFormat is returned for an unknown export format.
var ErrInvalidExportFormat = fmt.Errorf("export format must be 'csv' or 'json'")

// ExportTransactionsInput represents the input for a transaction export.
type ExportTransactionsInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Format    ExportFormat
}

// ExportTransactionsOutput carries the rendered export file.
type ExportTransactionsOutput struct {
	ContentType string
	Filename    string
	Data        []byte
}

// exportRecord is the shape of one exported transaction.
type exportRecord struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Pocket      string `json:"pocket"`
}

// ExportTransactionsUseCase renders the user's transactions in a date range
// as a downloadable CSV or JSON file, oldest entry first.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute renders the export.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	format := input.Format
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatJSON {
		return nil, ErrInvalidExportFormat
	}

	start, end := input.StartDate, input.EndDate
	if start.IsZero() {
		start = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if end.IsZero() {
		end = time.Now().UTC()
	}

	rows, err := uc.transactionRepo.FindByDateRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	records := make([]exportRecord, len(rows))
	for i, row := range rows {
		record := exportRecord{
			Date:        row.Transaction.Date.Format("2006-01-02"),
			Description: row.Transaction.Description,
			Amount:      row.Transaction.Amount.StringFixed(2),
			Type:        string(row.Transaction.Type),
		}
		if row.Category != nil {
			record.Category = row.Category.Name
		}
		if row.Pocket != nil {
			record.Pocket = row.Pocket.Name
		}
		records[i] = record
	}

	stamp := time.Now().UTC().Format("2006-01-02")
	if format == ExportFormatJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode export: %w", err)
		}
		return &ExportTransactionsOutput{
			ContentType: "application/json",
			Filename:    fmt.Sprintf("transactions-%s.json", stamp),
			Data:        data,
		}, nil
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write([]string{"date", "description", "amount", "type", "category", "pocket"}); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}
	for _, record := range records {
		row := []string{record.Date, record.Description, record.Amount, record.Type, record.Category, record.Pocket}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write export row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	return &ExportTransactionsOutput{
		ContentType: "text/csv",
		Filename:    fmt.Sprintf("transactions-%s.csv", stamp),
		Data:        buf.Bytes(),
	}, nil
}
