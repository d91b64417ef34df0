// Package dataprocessing loads penguin measurement tables and computes the
// descriptive statistics of the report.
//
// # Loading
//
// A Loader reads a CSV file, or an XLSX workbook when the file name ends in
// .xlsx, into a domain.SpeciesTable. The header row must name every column
// in domain.RequiredColumns, in any order; a table missing any of them is
// rejected with errors.ErrMissingColumn before a data row is read. Cells
// are trimmed and stripped of one pair of enclosing quotes. Numeric cells
// become domain.Measurement values: blank and "NA" are missing, anything
// that does not parse is kept as malformed.
//
//	loader := dataprocessing.NewLoader(logger)
//	table, err := loader.LoadFile(ctx, "penguins.csv")
//
// # Aggregation
//
// MassRatio averages mass / (bill length x flipper length) over one
// species, skipping rows with a missing field or a zero denominator.
// BillDepthByIslandAndSex averages bill depth per island for male and
// female rows across all species. Both return 0 for an empty category.
// A malformed value only fails the aggregation when a row that is not
// skipped needs it.
//
//	ratio, err := dataprocessing.MassRatio(table, "Adelie")
//	summary, err := dataprocessing.BillDepthByIslandAndSex(table)
package dataprocessing
