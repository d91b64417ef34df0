package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sex categories recognised by the bill depth summary
const (
	SexMale   = "male"
	SexFemale = "female"
)

// SexMeans holds the mean bill depth for each sex on one island.
// A sex with no observations reports 0.
type SexMeans struct {
	Male   float64 `json:"male"`
	Female float64 `json:"female"`
}

// IslandMeans pairs an island name with its means
type IslandMeans struct {
	Island string
	Means  SexMeans
}

// BillDepthSummary maps island to bill depth means in first-observation order.
type BillDepthSummary struct {
	islands *orderedmap.OrderedMap[string, SexMeans]
}

// NewBillDepthSummary creates an empty summary
func NewBillDepthSummary() *BillDepthSummary {
	return &BillDepthSummary{islands: orderedmap.New[string, SexMeans]()}
}

// Set records the means for an island; an existing island keeps its position.
func (s *BillDepthSummary) Set(island string, means SexMeans) {
	s.islands.Set(island, means)
}

// Get returns the means for an island
func (s *BillDepthSummary) Get(island string) (SexMeans, bool) {
	return s.islands.Get(island)
}

// Len returns the number of islands
func (s *BillDepthSummary) Len() int {
	if s == nil || s.islands == nil {
		return 0
	}
	return s.islands.Len()
}

// Islands returns entries in insertion order
func (s *BillDepthSummary) Islands() []IslandMeans {
	if s.Len() == 0 {
		return nil
	}
	out := make([]IslandMeans, 0, s.islands.Len())
	for pair := s.islands.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, IslandMeans{Island: pair.Key, Means: pair.Value})
	}
	return out
}

// AsMap flattens the summary into island -> sex -> mean
func (s *BillDepthSummary) AsMap() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, s.Len())
	for _, im := range s.Islands() {
		out[im.Island] = map[string]float64{
			SexMale:   im.Means.Male,
			SexFemale: im.Means.Female,
		}
	}
	return out
}
