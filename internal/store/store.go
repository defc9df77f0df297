// Package store holds the form-factor data loaded from the table directories.
// A Store is built once and never mutated; reloading produces a new Store.
package store

import (
	"slices"
	"sort"
	"strconv"

	"github.com/samber/lo"

	"github.com/user/form_factor_viewer_go/internal/parser"
)

// LoadStats summarises one load.
type LoadStats struct {
	FilesScanned int
	FilesParsed  int
	FilesSkipped int
	RowsAccepted int
	RowsSkipped  int
}

// Store answers element/valence/model-type queries over the loaded tables.
// All methods are safe for concurrent use.
type Store struct {
	// element -> valence -> model type -> coefficients
	magnetic     map[string]map[string]map[string]parser.CoefficientSet
	descriptions map[string]string
	scattering   map[string]parser.ScatteringEntry

	reports []*parser.ParseReport
	stats   LoadStats
}

// Build folds parsed tables into a Store in the order given. A later table
// overwrites coefficients, descriptions and scattering entries of earlier ones.
func Build(magnetic []*parser.MagneticTable, scattering []*parser.ScatteringTable) *Store {
	s := &Store{
		magnetic:     make(map[string]map[string]map[string]parser.CoefficientSet),
		descriptions: make(map[string]string),
		scattering:   make(map[string]parser.ScatteringEntry),
	}

	for _, t := range magnetic {
		if t == nil {
			continue
		}
		for _, row := range t.Rows {
			byValence, ok := s.magnetic[row.Ion.Element]
			if !ok {
				byValence = make(map[string]map[string]parser.CoefficientSet)
				s.magnetic[row.Ion.Element] = byValence
			}
			byType, ok := byValence[row.Ion.Valence]
			if !ok {
				byType = make(map[string]parser.CoefficientSet)
				byValence[row.Ion.Valence] = byType
			}
			byType[t.ModelType] = row.Coefficients
			s.descriptions[t.ModelType] = t.Header
		}
	}

	for _, t := range scattering {
		if t == nil {
			continue
		}
		for _, e := range t.Entries {
			s.scattering[e.Element] = e
		}
	}

	return s
}

// Elements lists the elements with magnetic coefficients, alphabetically.
func (s *Store) Elements() []string {
	return sortedKeys(s.magnetic)
}

// ScatteringElements lists the elements with X-ray scattering data, alphabetically.
// This set is independent of Elements.
func (s *Store) ScatteringElements() []string {
	return sortedKeys(s.scattering)
}

// Valences lists the valences known for elem in numeric order.
func (s *Store) Valences(elem string) []string {
	vals := lo.Keys(s.magnetic[elem])
	sort.Slice(vals, func(i, j int) bool { return valenceLess(vals[i], vals[j]) })
	return vals
}

// ModelTypes lists the model types available for (elem, valence), alphabetically.
func (s *Store) ModelTypes(elem, valence string) []string {
	return sortedKeys(s.magnetic[elem][valence])
}

// Coefficients returns a copy of the coefficient set for the triple.
func (s *Store) Coefficients(elem, valence, modelType string) (parser.CoefficientSet, bool) {
	c, ok := s.magnetic[elem][valence][modelType]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// ModelTypeDescription is the header line of the file that last defined modelType.
func (s *Store) ModelTypeDescription(modelType string) string {
	return s.descriptions[modelType]
}

// HasMagneticData reports whether elem has any magnetic coefficients.
func (s *Store) HasMagneticData(elem string) bool {
	_, ok := s.magnetic[elem]
	return ok
}

func (s *Store) HasScatteringData(elem string) bool {
	_, ok := s.scattering[elem]
	return ok
}

func (s *Store) ScatteringMethod(elem string) string {
	return s.scattering[elem].Method
}

// ScatteringPoints returns a copy of elem's points in file order.
func (s *Store) ScatteringPoints(elem string) []parser.Point {
	return slices.Clone(s.scattering[elem].Points)
}

// ScatteringEntry returns the full entry for elem.
func (s *Store) ScatteringEntry(elem string) (parser.ScatteringEntry, bool) {
	e, ok := s.scattering[elem]
	if !ok {
		return parser.ScatteringEntry{}, false
	}
	e.Points = slices.Clone(e.Points)
	return e, true
}

// Stats describes the load that produced this store.
func (s *Store) Stats() LoadStats {
	return s.stats
}

// Reports returns the per-file parse reports of the load, in load order.
func (s *Store) Reports() []*parser.ParseReport {
	return slices.Clone(s.reports)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

func valenceLess(a, b string) bool {
	ai, errA := strconv.Atoi(a)
	bi, errB := strconv.Atoi(b)
	if errA == nil && errB == nil && ai != bi {
		return ai < bi
	}
	return a < b
}
