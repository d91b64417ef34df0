package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// PenguinHeader is the column order of the Palmer penguins export
const PenguinHeader = "species,island,bill_length_mm,bill_depth_mm,flipper_length_mm,body_mass_g,sex,year"

// SampleCSV is a small table covering missing values, two species and a
// row with a blank sex.
var SampleCSV = CSV(
	"Adelie,Torgersen,39.1,18.7,181,3750,male,2007",
	"Adelie,Torgersen,39.5,17.4,186,3800,female,2007",
	"Adelie,Torgersen,NA,NA,NA,NA,NA,2007",
	"Adelie,Biscoe,37.8,18.3,174,3400,female,2007",
	"Gentoo,Biscoe,46.1,13.2,211,4500,female,2007",
	"Gentoo,Biscoe,50.0,16.3,230,5700,male,2007",
	"Gentoo,Biscoe,44.5,14.3,216,4100,,2007",
)

// CSV joins PenguinHeader and rows into a newline-terminated table
func CSV(rows ...string) string {
	var b strings.Builder
	b.WriteString(PenguinHeader)
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(r)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteCSV writes content to penguins.csv in dir and returns its path
func WriteCSV(t *testing.T, dir, content string) string {
	t.Helper()
	return WriteFile(t, dir, "penguins.csv", content)
}

// WriteFile writes content to name in dir and returns its path
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
	return path
}
