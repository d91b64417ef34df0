package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	apperrors "penguincli/internal/errors"
	"penguincli/pkg/contracts/domain"
)

// LoadXLSX loads a workbook with the default loader
func LoadXLSX(path, sheet string) (*domain.SpeciesTable, error) {
	return NewLoader(nil).LoadXLSX(context.Background(), path, sheet)
}

// LoadXLSX reads the named sheet of a workbook, or the first sheet when
// sheet is empty. The first row is the header; rows are handled like CSV
// records except that short rows are padded, as trailing empty cells are
// not stored in the file.
func (l *Loader) LoadXLSX(ctx context.Context, path, sheet string) (*domain.SpeciesTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to open workbook %s", path), err).
			WithContext("path", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, apperrors.NewParsingError("workbook has no sheets", nil).WithContext("path", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read sheet %q", sheet), err).
			WithContext("path", path)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewParsingError(fmt.Sprintf("sheet %q has no header row", sheet), nil).
			WithContext("path", path)
	}

	builder, err := newTableBuilder(rows[0])
	if err != nil {
		return nil, err
	}

	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		for len(row) < builder.columns {
			row = append(row, "")
		}
		// header is spreadsheet row 1
		if err := builder.add(row, i+2); err != nil {
			return nil, err
		}
	}

	l.logger.InfoContext(ctx, "Table loaded",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("species", builder.table.Len()),
		slog.Int("rows", builder.table.Rows()))
	return builder.table, nil
}
