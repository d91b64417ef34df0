package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "penguincli/internal/errors"
	"penguincli/pkg/contracts/domain"
)

// SummaryHeaders is the header row of the island summary export
var SummaryHeaders = []string{"Island", "MaleMeanBillDepth", "FemaleMeanBillDepth"}

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes headers and records to filePath, truncating any existing file
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	w.logger.Info("Writing CSV file",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(options.Records)))

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory", err).WithContext("path", dir)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return apperrors.NewStorageError("failed to open file", err).WithContext("path", filePath)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return apperrors.NewStorageError("failed to write BOM", err).WithContext("path", filePath)
		}
	}

	writer := csv.NewWriter(file)

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return apperrors.NewStorageError("failed to write headers", err).WithContext("path", filePath)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to write record %d", i), err).
				WithContext("path", filePath)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewStorageError("failed to flush CSV", err).WithContext("path", filePath)
	}
	return nil
}

// WriteSummary exports the island summary, one row per island in summary order
func (w *CSVWriter) WriteSummary(filePath string, summary *domain.BillDepthSummary) error {
	records := make([][]string, 0, summary.Len())
	for _, im := range summary.Islands() {
		records = append(records, []string{
			im.Island,
			formatFloat(im.Means.Male),
			formatFloat(im.Means.Female),
		})
	}

	return w.WriteCSV(filePath, WriteOptions{
		Headers: SummaryHeaders,
		Records: records,
	})
}

// WriteSummaryCSV exports the island summary with a default writer
func WriteSummaryCSV(filePath string, summary *domain.BillDepthSummary) error {
	return NewCSVWriter(nil).WriteSummary(filePath, summary)
}
