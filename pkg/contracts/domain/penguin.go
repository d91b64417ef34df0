package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Column names required in every penguin dataset
const (
	ColumnSpecies       = "species"
	ColumnBodyMass      = "body_mass_g"
	ColumnBillLength    = "bill_length_mm"
	ColumnFlipperLength = "flipper_length_mm"
	ColumnBillDepth     = "bill_depth_mm"
	ColumnIsland        = "island"
	ColumnSex           = "sex"
)

// RequiredColumns lists the header names a dataset must contain, in the
// order they are reported when missing.
var RequiredColumns = []string{
	ColumnSpecies,
	ColumnBodyMass,
	ColumnBillLength,
	ColumnFlipperLength,
	ColumnBillDepth,
	ColumnIsland,
	ColumnSex,
}

// Penguin represents one observation row of the dataset.
type Penguin struct {
	Mass          Measurement `json:"body_mass_g"`
	BillLength    Measurement `json:"bill_length_mm"`
	FlipperLength Measurement `json:"flipper_length_mm"`
	BillDepth     Measurement `json:"bill_depth_mm"`
	Island        string      `json:"island"`
	Sex           string      `json:"sex"`
	Line          int         `json:"line"` // 1-based source line, header is line 1
}

// SpeciesTable groups penguin rows by species, keeping species in the order
// they were first seen and rows in source order.
type SpeciesTable struct {
	groups *orderedmap.OrderedMap[string, []Penguin]
	rows   int
}

// NewSpeciesTable creates an empty table
func NewSpeciesTable() *SpeciesTable {
	return &SpeciesTable{groups: orderedmap.New[string, []Penguin]()}
}

// Append adds a row under the given species, creating the group on first use.
func (t *SpeciesTable) Append(species string, p Penguin) {
	rows, _ := t.groups.Get(species)
	t.groups.Set(species, append(rows, p))
	t.rows++
}

// Get returns the rows recorded for a species
func (t *SpeciesTable) Get(species string) ([]Penguin, bool) {
	return t.groups.Get(species)
}

// Species returns species names in first-seen order
func (t *SpeciesTable) Species() []string {
	names := make([]string, 0, t.groups.Len())
	for pair := t.groups.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Len returns the number of species
func (t *SpeciesTable) Len() int {
	return t.groups.Len()
}

// Rows returns the total number of data rows across all species
func (t *SpeciesTable) Rows() int {
	return t.rows
}

// Each calls fn for every species in first-seen order
func (t *SpeciesTable) Each(fn func(species string, rows []Penguin)) {
	for pair := t.groups.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}
