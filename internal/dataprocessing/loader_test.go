package dataprocessing

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "penguincli/internal/errors"
	"penguincli/internal/shared/testutil"
	"penguincli/pkg/contracts/domain"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantSpecies []string
		wantRows    int
		wantErrType apperrors.ErrorType
		wantErrIs   error
		errContains string
	}{
		{
			name:        "groups rows by species in first-seen order",
			input:       testutil.SampleCSV,
			wantSpecies: []string{"Adelie", "Gentoo"},
			wantRows:    7,
		},
		{
			name:        "header only yields an empty table",
			input:       testutil.CSV(),
			wantSpecies: []string{},
			wantRows:    0,
		},
		{
			name:        "columns are matched by name in any order",
			input:       "sex,island,bill_depth_mm,flipper_length_mm,bill_length_mm,body_mass_g,species\nmale,Dream,18.0,190,40.0,3900,Chinstrap\n",
			wantSpecies: []string{"Chinstrap"},
			wantRows:    1,
		},
		{
			name:        "header cells are normalized",
			input:       " species ,\" island\",bill_length_mm,bill_depth_mm,flipper_length_mm , body_mass_g,sex\nAdelie,Dream,1,2,3,4,male\n",
			wantSpecies: []string{"Adelie"},
			wantRows:    1,
		},
		{
			name:        "missing columns are all reported",
			input:       "species,body_mass_g,bill_length_mm,flipper_length_mm,bill_depth_mm\nAdelie,1,2,3,4\n",
			wantErrType: apperrors.ErrTypeSchema,
			wantErrIs:   apperrors.ErrMissingColumn,
			errContains: "island, sex",
		},
		{
			name:        "missing column without data rows",
			input:       "species,island,bill_length_mm,bill_depth_mm,flipper_length_mm,sex\n",
			wantErrType: apperrors.ErrTypeSchema,
			wantErrIs:   apperrors.ErrMissingColumn,
			errContains: "body_mass_g",
		},
		{
			name:        "empty input",
			input:       "",
			wantErrType: apperrors.ErrTypeParsing,
			errContains: "no header",
		},
		{
			name:        "short row names its line",
			input:       testutil.CSV("Adelie,Torgersen,39.1,18.7,181,3750,male,2007", "Adelie,Torgersen,39.5"),
			wantErrType: apperrors.ErrTypeParsing,
			errContains: "line 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseCSV(strings.NewReader(tt.input))

			if tt.wantErrType != "" {
				require.Error(t, err)
				assert.Nil(t, table)
				assert.True(t, apperrors.IsType(err, tt.wantErrType), "got %v", err)
				if tt.wantErrIs != nil {
					assert.True(t, errors.Is(err, tt.wantErrIs))
				}
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSpecies, table.Species())
			assert.Equal(t, len(tt.wantSpecies), table.Len())
			assert.Equal(t, tt.wantRows, table.Rows())
		})
	}
}

func TestParseCSV_RowContents(t *testing.T) {
	input := testutil.CSV(
		`Adelie,Torgersen,39.1,18.7,181,3750,male,2007`,
		`"Adelie", "Dream" ,NA,,"190",heavy, "female",2008`,
		`Gentoo,Biscoe,46.1,13.2,211,4500,female,2007`,
	)

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	adelie, ok := table.Get("Adelie")
	require.True(t, ok)
	require.Len(t, adelie, 2)

	first := adelie[0]
	assert.Equal(t, "Torgersen", first.Island)
	assert.Equal(t, "male", first.Sex)
	assert.Equal(t, 2, first.Line)
	mass, err := first.Mass.Float()
	require.NoError(t, err)
	assert.Equal(t, 3750.0, mass)

	second := adelie[1]
	assert.Equal(t, "Dream", second.Island)
	assert.Equal(t, "female", second.Sex)
	assert.Equal(t, 3, second.Line)
	assert.True(t, second.BillLength.IsMissing())
	assert.True(t, second.BillDepth.IsMissing())
	assert.Equal(t, domain.MeasurementValid, second.FlipperLength.State())
	assert.Equal(t, domain.MeasurementMalformed, second.Mass.State(), "malformed values load without error")

	gentoo, ok := table.Get("Gentoo")
	require.True(t, ok)
	assert.Len(t, gentoo, 1)
}

func TestNormalizeCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Adelie", "Adelie"},
		{"  Adelie\t", "Adelie"},
		{`"Adelie"`, "Adelie"},
		{` "Adelie" `, "Adelie"},
		{`""Adelie""`, `"Adelie"`},
		{`"`, `"`},
		{`""`, ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeCell(tt.in))
		})
	}
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteCSV(t, dir, testutil.SampleCSV)

	logger, handler := testutil.NewTestLogger(t)
	table, err := NewLoader(logger).LoadCSV(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 7, table.Rows())

	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Table loaded")
	testutil.AssertLogAttr(t, handler, "species", int64(2))
	testutil.AssertLogAttr(t, handler, "component", "loader")
	testutil.AssertNoErrors(t, handler)

	_, err = LoadCSV(filepath.Join(dir, "absent.csv"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}

func writeWorkbook(t *testing.T, path, sheet string, rows [][]string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &cells))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLoadXLSX(t *testing.T) {
	header := strings.Split(testutil.PenguinHeader, ",")[:7]
	rows := [][]string{
		header,
		{"Adelie", "Torgersen", "39.1", "18.7", "181", "3750", "male"},
		{"Gentoo", "Biscoe", "46.1", "13.2", "211", "4500"},
		{"Adelie", "Dream", "NA", "18.0", "190", "3900", "female"},
	}

	t.Run("first sheet through LoadFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "penguins.xlsx")
		writeWorkbook(t, path, "Sheet1", rows)

		table, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Adelie", "Gentoo"}, table.Species())
		assert.Equal(t, 3, table.Rows())

		gentoo, _ := table.Get("Gentoo")
		require.Len(t, gentoo, 1)
		assert.Equal(t, "", gentoo[0].Sex, "trailing empty cells are padded")
		assert.Equal(t, 3, gentoo[0].Line)
	})

	t.Run("named sheet", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "penguins.xlsx")
		writeWorkbook(t, path, "Palmer", rows)

		table, err := LoadXLSX(path, "Palmer")
		require.NoError(t, err)
		assert.Equal(t, 3, table.Rows())

		_, err = LoadXLSX(path, "Absent")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	})

	t.Run("missing column", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "penguins.xlsx")
		writeWorkbook(t, path, "Sheet1", [][]string{{"species", "island"}})

		_, err := LoadXLSX(path, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrMissingColumn)
	})

	t.Run("unreadable workbook", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "broken.xlsx", "not a zip")

		_, err := LoadXLSX(path, "")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
	})
}
