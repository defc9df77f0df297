package parser

import (
	"fmt"
	"strings"
)

// ZeroOrderModelType is the monopole tag. Every other tag carries the extra D term.
const ZeroOrderModelType = "j0"

// MinMagneticFields is the smallest number of tab-separated fields a magnetic data
// row may have: the ion key plus seven coefficients.
const MinMagneticFields = 8

// MinScatteringLines is the number of non-blank lines a scattering table needs:
// symbols, atomic numbers, methods and at least one data row.
const MinScatteringLines = 4

// Table kinds, used in reports and metrics labels.
const (
	KindMagnetic   = "magnetic"
	KindScattering = "scattering"
)

// CoefficientSet maps a coefficient name (A, a, B, b, C, c, D) to its value.
// It is treated as read-only once parsed.
type CoefficientSet map[string]float64

// Get returns the named coefficient and whether it is present.
func (c CoefficientSet) Get(name string) (float64, bool) {
	v, ok := c[name]
	return v, ok
}

// Clone returns an independent copy.
func (c CoefficientSet) Clone() CoefficientSet {
	out := make(CoefficientSet, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// IonKey is the (element, valence) pair derived from a row's leading token.
type IonKey struct {
	Element string
	Valence string
}

func (k IonKey) String() string {
	return k.Element + k.Valence
}

// MagneticRow is one accepted coefficient row of a magnetic table.
type MagneticRow struct {
	Ion          IonKey
	Coefficients CoefficientSet
}

// MagneticTable is the accepted content of one magnetic table file.
type MagneticTable struct {
	Source    string
	ModelType string // e.g. "j0", "j2"
	Header    string // first line, trimmed
	Columns   []string
	Rows      []MagneticRow
}

// Point is one (x, y) sample of a scattering-factor series, x = sinθ/λ in Å⁻¹.
type Point struct {
	X float64
	Y float64
}

// ScatteringEntry is the series for one element of a scattering table.
type ScatteringEntry struct {
	Element      string
	AtomicNumber int // 0 when the Z row cell is missing or not an integer
	Method       string
	Points       []Point
}

// ScatteringTable is the accepted content of one scattering table file, in column order.
type ScatteringTable struct {
	Source  string
	Entries []ScatteringEntry
}

// ParseReport describes what a parser accepted and what it silently dropped.
// Parsers never fail on content; everything worth knowing ends up here.
type ParseReport struct {
	Source       string
	Kind         string
	Skipped      bool   // the whole file contributed nothing
	Reason       string // why the file was skipped
	RowsAccepted int
	RowsSkipped  int
	Warnings     []string
}

func newParseReport(source, kind string) *ParseReport {
	return &ParseReport{
		Source:   source,
		Kind:     kind,
		Warnings: make([]string, 0),
	}
}

func (r *ParseReport) skipFile(format string, args ...interface{}) {
	r.Skipped = true
	r.Reason = fmt.Sprintf(format, args...)
}

func (r *ParseReport) skipRow(line int, format string, args ...interface{}) {
	r.RowsSkipped++
	r.Warnings = append(r.Warnings, fmt.Sprintf("line %d: %s", line, fmt.Sprintf(format, args...)))
}

// String gives a one-line summary suitable for status output.
func (r *ParseReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s table %s: ", r.Kind, r.Source)
	if r.Skipped {
		fmt.Fprintf(&b, "skipped (%s)", r.Reason)
		return b.String()
	}
	fmt.Fprintf(&b, "%d rows accepted, %d skipped", r.RowsAccepted, r.RowsSkipped)
	return b.String()
}
