package dataprocessing

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	apperrors "penguincli/internal/errors"
	"penguincli/pkg/contracts/domain"
)

// Loader reads penguin tables from CSV or XLSX files
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader; a nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger.With(slog.String("component", "loader"))}
}

// LoadFile loads path with the default loader
func LoadFile(path string) (*domain.SpeciesTable, error) {
	return NewLoader(nil).LoadFile(context.Background(), path)
}

// LoadCSV loads a CSV file with the default loader
func LoadCSV(path string) (*domain.SpeciesTable, error) {
	return NewLoader(nil).LoadCSV(context.Background(), path)
}

// ParseCSV parses CSV records from r with the default loader
func ParseCSV(r io.Reader) (*domain.SpeciesTable, error) {
	return NewLoader(nil).ParseCSV(context.Background(), r)
}

// IsWorkbook reports whether path names an .xlsx workbook
func IsWorkbook(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// LoadFile dispatches on the file extension: .xlsx is read as a workbook
// (first sheet), anything else as CSV.
func (l *Loader) LoadFile(ctx context.Context, path string) (*domain.SpeciesTable, error) {
	if IsWorkbook(path) {
		return l.LoadXLSX(ctx, path, "")
	}
	return l.LoadCSV(ctx, path)
}

// LoadCSV opens path and parses it as CSV
func (l *Loader) LoadCSV(ctx context.Context, path string) (*domain.SpeciesTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to open %s", path), err).
			WithContext("path", path)
	}
	defer file.Close()

	table, err := l.ParseCSV(ctx, file)
	if err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "Table loaded",
		slog.String("path", path),
		slog.Int("species", table.Len()),
		slog.Int("rows", table.Rows()))
	return table, nil
}

// ParseCSV reads a comma-delimited table whose first record is the header.
func (l *Loader) ParseCSV(ctx context.Context, r io.Reader) (*domain.SpeciesTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // short rows are reported with their line below
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, apperrors.NewParsingError("input has no header row", nil)
	}
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read header", err)
	}

	builder, err := newTableBuilder(header)
	if err != nil {
		return nil, err
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError("failed to read record", err)
		}

		line, _ := reader.FieldPos(0)
		if err := builder.add(record, line); err != nil {
			return nil, err
		}
	}

	l.logger.DebugContext(ctx, "CSV parsed",
		slog.Int("columns", len(header)),
		slog.Int("rows", builder.table.Rows()))
	return builder.table, nil
}

// normalizeCell trims surrounding whitespace, then one pair of enclosing
// double quotes.
func normalizeCell(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}

// tableBuilder maps records onto penguins using the header positions of
// the required columns.
type tableBuilder struct {
	index   map[string]int
	columns int
	table   *domain.SpeciesTable
}

// newTableBuilder locates the required columns in header. Every missing
// column is reported at once.
func newTableBuilder(header []string) (*tableBuilder, error) {
	index := make(map[string]int, len(header))
	for i, name := range lo.Map(header, func(h string, _ int) string { return normalizeCell(h) }) {
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	missing := lo.Filter(domain.RequiredColumns, func(col string, _ int) bool {
		_, ok := index[col]
		return !ok
	})
	if len(missing) > 0 {
		return nil, apperrors.NewMissingColumnError(missing)
	}

	return &tableBuilder{
		index:   index,
		columns: len(header),
		table:   domain.NewSpeciesTable(),
	}, nil
}

// add appends one data record found at the given 1-based line
func (b *tableBuilder) add(record []string, line int) error {
	if len(record) < b.columns {
		return apperrors.NewParsingError(
			fmt.Sprintf("line %d has %d fields, header has %d", line, len(record), b.columns), nil).
			WithContext("line", line)
	}

	field := func(col string) string { return normalizeCell(record[b.index[col]]) }

	b.table.Append(field(domain.ColumnSpecies), domain.Penguin{
		Mass:          domain.ParseMeasurement(field(domain.ColumnBodyMass)),
		BillLength:    domain.ParseMeasurement(field(domain.ColumnBillLength)),
		FlipperLength: domain.ParseMeasurement(field(domain.ColumnFlipperLength)),
		BillDepth:     domain.ParseMeasurement(field(domain.ColumnBillDepth)),
		Island:        field(domain.ColumnIsland),
		Sex:           field(domain.ColumnSex),
		Line:          line,
	})
	return nil
}
