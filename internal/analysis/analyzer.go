package analysis

import (
	"fmt"
	"math"

	"github.com/user/form_factor_viewer_go/internal/parser"
)

// stepSlack absorbs floating-point error when counting steps, so a range that is
// an exact multiple of the step includes its upper bound.
const stepSlack = 1e-9

var baseCoefficients = []string{"A", "a", "B", "b", "C", "c"}

const multipoleExtra = "D"

// Validate checks the sampling spec, including that it yields at most MaxSamples
// values. Any violation yields ErrInvalidParameters.
func (sp SamplingSpec) Validate() error {
	for _, v := range []float64{sp.ThetaMin, sp.ThetaMax, sp.Step, sp.Wavelength} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidParameters
		}
	}
	if sp.Wavelength <= 0 || sp.ThetaMin < MinTheta || sp.ThetaMax > MaxTheta ||
		sp.ThetaMin >= sp.ThetaMax || sp.Step <= 0 {
		return ErrInvalidParameters
	}
	if (sp.ThetaMax-sp.ThetaMin)/sp.Step+stepSlack >= MaxSamples {
		return ErrInvalidParameters
	}
	return nil
}

// NumSamples is the number of theta values from ThetaMin to ThetaMax inclusive.
// It is only meaningful for a spec that passes Validate.
func (sp SamplingSpec) NumSamples() int {
	return int(math.Floor((sp.ThetaMax-sp.ThetaMin)/sp.Step+stepSlack)) + 1
}

// Thetas returns the sampled angles in degrees.
func (sp SamplingSpec) Thetas() ([]float64, error) {
	if err := sp.Validate(); err != nil {
		return nil, err
	}
	n := sp.NumSamples()
	thetas := make([]float64, n)
	for i := range thetas {
		thetas[i] = sp.ThetaMin + float64(i)*sp.Step
	}
	return thetas, nil
}

// SValues returns s = sin(θ)/λ for every sampled θ.
func (sp SamplingSpec) SValues() ([]float64, error) {
	thetas, err := sp.Thetas()
	if err != nil {
		return nil, err
	}
	s := make([]float64, len(thetas))
	for i, th := range thetas {
		s[i] = math.Sin(th*math.Pi/180) / sp.Wavelength
	}
	return s, nil
}

// HasRequiredCoefficients reports whether coeffs can be evaluated for modelType.
func HasRequiredCoefficients(modelType string, coeffs parser.CoefficientSet) bool {
	for _, name := range baseCoefficients {
		if _, ok := coeffs[name]; !ok {
			return false
		}
	}
	if modelType != parser.ZeroOrderModelType {
		if _, ok := coeffs[multipoleExtra]; !ok {
			return false
		}
	}
	return true
}

// FormFactor evaluates the analytic approximation at s:
//
//	j0:     A·exp(−a s²) + B·exp(−b s²) + C·exp(−c s²)
//	others: (A·exp(−a s²) + B·exp(−b s²) + C·exp(−c s²) + D)·s²
//
// Missing coefficients count as zero; use HasRequiredCoefficients first.
func FormFactor(modelType string, coeffs parser.CoefficientSet, s float64) float64 {
	s2 := s * s
	y := coeffs["A"]*math.Exp(-coeffs["a"]*s2) +
		coeffs["B"]*math.Exp(-coeffs["b"]*s2) +
		coeffs["C"]*math.Exp(-coeffs["c"]*s2)
	if modelType == parser.ZeroOrderModelType {
		return y
	}
	return (y + coeffs["D"]) * s2
}

// EvaluateCurve computes one curve over the given s values.
func EvaluateCurve(modelType string, coeffs parser.CoefficientSet, s []float64) Curve {
	y := make([]float64, len(s))
	for i, v := range s {
		y[i] = FormFactor(modelType, coeffs, v)
	}
	return Curve{ModelType: modelType, S: s, Y: y}
}

// EvaluateCurves validates the sampling and evaluates every requested model type
// that has coefficients for (elem, valence). Model types without a complete
// coefficient set are left out. If nothing remains the result is ErrNoData.
func EvaluateCurves(lookup CoefficientLookup, elem, valence string, modelTypes []string, sp SamplingSpec) (*CurveSet, error) {
	s, err := sp.SValues()
	if err != nil {
		return nil, err
	}

	result := &CurveSet{
		Element:  elem,
		Valence:  valence,
		Sampling: sp,
		Curves:   make([]Curve, 0, len(modelTypes)),
		Omitted:  make([]string, 0),
	}

	for _, mt := range modelTypes {
		coeffs, ok := lookup.Coefficients(elem, valence, mt)
		if !ok || !HasRequiredCoefficients(mt, coeffs) {
			result.Omitted = append(result.Omitted, mt)
			continue
		}
		result.Curves = append(result.Curves, EvaluateCurve(mt, coeffs, s))
	}

	if len(result.Curves) == 0 {
		return nil, fmt.Errorf("%s%s %v: %w", elem, valence, modelTypes, ErrNoData)
	}
	return result, nil
}
