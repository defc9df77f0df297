package analysis

import (
	"errors"

	"github.com/user/form_factor_viewer_go/internal/parser"
)

var (
	// ErrInvalidParameters covers every sampling-range violation; callers show one
	// generic message for it.
	ErrInvalidParameters = errors.New("invalid wavelength or theta range parameters")

	// ErrNoData means the selection has nothing to plot.
	ErrNoData = errors.New("no data available for the selection")
)

// Limits of the scattering angle, in degrees.
const (
	MinTheta = 0.0
	MaxTheta = 180.0
)

// MaxSamples bounds the number of θ values one request may produce.
const MaxSamples = 1_000_000

// CoefficientLookup is the part of the store the evaluator needs.
type CoefficientLookup interface {
	Coefficients(elem, valence, modelType string) (parser.CoefficientSet, bool)
}

// SamplingSpec is the angular sampling of a plot request.
type SamplingSpec struct {
	ThetaMin   float64 `json:"thetaMin"`   // degrees
	ThetaMax   float64 `json:"thetaMax"`   // degrees, inclusive
	Step       float64 `json:"step"`       // degrees
	Wavelength float64 `json:"wavelength"` // Å
}

// Curve is one model type's form factor over the sampled s values.
type Curve struct {
	ModelType string
	S         []float64
	Y         []float64
}

// CurveSet is the result of one plot request. All curves share the same S.
type CurveSet struct {
	Element  string
	Valence  string
	Sampling SamplingSpec
	Curves   []Curve
	Omitted  []string // requested model types with no usable coefficients
}

// ModelTypes lists the model types of the curves, in request order.
func (cs *CurveSet) ModelTypes() []string {
	out := make([]string, len(cs.Curves))
	for i, c := range cs.Curves {
		out[i] = c.ModelType
	}
	return out
}
