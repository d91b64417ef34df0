package dataprocessing

import (
	"fmt"
	"strings"

	apperrors "penguincli/internal/errors"
	"penguincli/pkg/contracts/domain"
)

// meanAccumulator keeps a running sum and count
type meanAccumulator struct {
	sum   float64
	count int
}

// Update adds one observation
func (a *meanAccumulator) Update(v float64) {
	a.sum += v
	a.count++
}

// Mean returns sum/count, or 0 with no observations
func (a *meanAccumulator) Mean() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

// RatioResult is the mass ratio of one species with its row accounting
type RatioResult struct {
	Species string
	Ratio   float64
	Used    int
	Skipped int
}

// MassRatio returns the mean of mass / (bill length x flipper length) over
// the rows of species.
func MassRatio(table *domain.SpeciesTable, species string) (float64, error) {
	res, err := ComputeMassRatio(table, species)
	if err != nil {
		return 0, err
	}
	return res.Ratio, nil
}

// ComputeMassRatio is MassRatio with the number of rows used and skipped.
// Rows with a missing mass, bill length or flipper length are skipped, as
// are rows whose bill length or flipper length is exactly zero. A
// malformed value in a row that is not skipped fails the computation.
func ComputeMassRatio(table *domain.SpeciesTable, species string) (RatioResult, error) {
	rows, ok := table.Get(species)
	if !ok {
		return RatioResult{}, apperrors.NewSpeciesNotFoundError(species)
	}

	res := RatioResult{Species: species}
	var acc meanAccumulator

	for _, p := range rows {
		if p.Mass.IsMissing() || p.BillLength.IsMissing() || p.FlipperLength.IsMissing() {
			res.Skipped++
			continue
		}

		mass, err := measurementValue(p, domain.ColumnBodyMass, p.Mass)
		if err != nil {
			return RatioResult{}, err
		}
		bill, err := measurementValue(p, domain.ColumnBillLength, p.BillLength)
		if err != nil {
			return RatioResult{}, err
		}
		flipper, err := measurementValue(p, domain.ColumnFlipperLength, p.FlipperLength)
		if err != nil {
			return RatioResult{}, err
		}

		if bill == 0 || flipper == 0 {
			res.Skipped++
			continue
		}

		acc.Update(mass / (bill * flipper))
	}

	res.Used = acc.count
	res.Ratio = acc.Mean()
	return res, nil
}

// islandAccumulator holds one running mean per recognised sex
type islandAccumulator struct {
	male   meanAccumulator
	female meanAccumulator
}

// BillDepthResult is the bill depth summary with its row accounting.
// Unclassified counts rows that created or reached an island bucket but
// whose sex is neither male nor female.
type BillDepthResult struct {
	Summary      *domain.BillDepthSummary
	Used         int
	Skipped      int
	Unclassified int
}

// BillDepthByIslandAndSex returns the mean bill depth per island and sex
// across all species.
func BillDepthByIslandAndSex(table *domain.SpeciesTable) (*domain.BillDepthSummary, error) {
	res, err := ComputeBillDepth(table)
	if err != nil {
		return nil, err
	}
	return res.Summary, nil
}

// ComputeBillDepth is BillDepthByIslandAndSex with row accounting. A row
// qualifies when island, sex and bill depth are all present; the first
// qualifying row of an island creates its bucket whatever its sex. Only
// rows whose lower-cased sex is exactly male or female contribute.
func ComputeBillDepth(table *domain.SpeciesTable) (BillDepthResult, error) {
	var (
		order   []string
		buckets = make(map[string]*islandAccumulator)
		res     BillDepthResult
		failure error
	)

	table.Each(func(_ string, rows []domain.Penguin) {
		if failure != nil {
			return
		}
		for _, p := range rows {
			if p.Island == "" || p.Sex == "" || p.BillDepth.IsMissing() {
				res.Skipped++
				continue
			}

			depth, err := measurementValue(p, domain.ColumnBillDepth, p.BillDepth)
			if err != nil {
				failure = err
				return
			}

			bucket, ok := buckets[p.Island]
			if !ok {
				bucket = &islandAccumulator{}
				buckets[p.Island] = bucket
				order = append(order, p.Island)
			}

			switch strings.ToLower(p.Sex) {
			case domain.SexMale:
				bucket.male.Update(depth)
				res.Used++
			case domain.SexFemale:
				bucket.female.Update(depth)
				res.Used++
			default:
				res.Unclassified++
			}
		}
	})
	if failure != nil {
		return BillDepthResult{}, failure
	}

	res.Summary = domain.NewBillDepthSummary()
	for _, island := range order {
		b := buckets[island]
		res.Summary.Set(island, domain.SexMeans{Male: b.male.Mean(), Female: b.female.Mean()})
	}
	return res, nil
}

// measurementValue returns the float of m, wrapping a parse failure with
// the row line and column it came from.
func measurementValue(p domain.Penguin, column string, m domain.Measurement) (float64, error) {
	v, err := m.Float()
	if err != nil {
		return 0, apperrors.NewParsingError(
			fmt.Sprintf("invalid %s %q on line %d", column, m.Raw, p.Line), err).
			WithContext("line", p.Line).
			WithContext("column", column)
	}
	return v, nil
}
