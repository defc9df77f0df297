package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/form_factor_viewer_go/internal/parser"
)

var sc0 = parser.CoefficientSet{
	"A": 0.2512, "a": 90.0296,
	"B": 0.329, "b": 39.4021,
	"C": 0.4235, "c": 14.3222,
	"D": -0.0043,
}

type mapLookup map[string]parser.CoefficientSet

func (m mapLookup) Coefficients(elem, valence, modelType string) (parser.CoefficientSet, bool) {
	c, ok := m[elem+valence+"/"+modelType]
	return c, ok
}

func TestFormFactorJ0AtZero(t *testing.T) {
	assert.InDelta(t, 1.0037, FormFactor("j0", sc0, 0), 1e-9)
}

func TestFormFactorMultipoleAtZero(t *testing.T) {
	for _, mt := range []string{"j2", "j4", "j6"} {
		assert.Equal(t, 0.0, FormFactor(mt, parser.CoefficientSet{
			"A": 5, "a": 1, "B": 5, "b": 1, "C": 5, "c": 1, "D": 3,
		}, 0), mt)
	}
}

func TestFormFactorMultipole(t *testing.T) {
	c := parser.CoefficientSet{"A": 1, "a": 2, "B": 0, "b": 0, "C": 0, "c": 0, "D": 0.5}
	s := 0.3
	want := (math.Exp(-2*s*s) + 0.5) * s * s
	assert.InDelta(t, want, FormFactor("j2", c, s), 1e-12)
}

func TestValidate(t *testing.T) {
	valid := SamplingSpec{ThetaMin: 0, ThetaMax: 80, Step: 0.05, Wavelength: 1.54}
	require.NoError(t, valid.Validate())

	cases := map[string]func(*SamplingSpec){
		"zero wavelength":     func(s *SamplingSpec) { s.Wavelength = 0 },
		"negative wavelength": func(s *SamplingSpec) { s.Wavelength = -1 },
		"negative theta min":  func(s *SamplingSpec) { s.ThetaMin = -1 },
		"theta max over 180":  func(s *SamplingSpec) { s.ThetaMax = 181 },
		"equal bounds":        func(s *SamplingSpec) { s.ThetaMin = 80 },
		"reversed bounds":     func(s *SamplingSpec) { s.ThetaMin = 90 },
		"zero step":           func(s *SamplingSpec) { s.Step = 0 },
		"nan step":            func(s *SamplingSpec) { s.Step = math.NaN() },
		"inf wavelength":      func(s *SamplingSpec) { s.Wavelength = math.Inf(1) },
		"tiny step":           func(s *SamplingSpec) { s.Step = 1e-300 },
		"too many samples":    func(s *SamplingSpec) { s.Step = 1e-9 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			sp := valid
			mutate(&sp)
			assert.ErrorIs(t, sp.Validate(), ErrInvalidParameters)
		})
	}
}

func TestTinyStepIsRejected(t *testing.T) {
	sp := SamplingSpec{ThetaMin: 0, ThetaMax: 180, Step: 1e-300, Wavelength: 1.54}
	s, err := sp.SValues()
	assert.ErrorIs(t, err, ErrInvalidParameters)
	assert.Nil(t, s)

	_, err = EvaluateCurves(mapLookup{"Sc0/j0": sc0}, "Sc", "0", []string{"j0"}, sp)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestMaxSamplesBoundary(t *testing.T) {
	sp := SamplingSpec{ThetaMin: 0, ThetaMax: 100, Step: 100.0 / (MaxSamples - 1), Wavelength: 1}
	require.NoError(t, sp.Validate())
	assert.Equal(t, MaxSamples, sp.NumSamples())

	sp.Step = 100.0 / MaxSamples
	assert.ErrorIs(t, sp.Validate(), ErrInvalidParameters)
}

func TestSValuesInclusiveCount(t *testing.T) {
	sp := SamplingSpec{ThetaMin: 0, ThetaMax: 80, Step: 0.05, Wavelength: 1.54}
	s, err := sp.SValues()
	require.NoError(t, err)
	require.Len(t, s, 1601)

	assert.Equal(t, 0.0, s[0])
	assert.InDelta(t, math.Sin(80*math.Pi/180)/1.54, s[len(s)-1], 1e-9)

	sp = SamplingSpec{ThetaMin: 10, ThetaMax: 20, Step: 3, Wavelength: 1}
	thetas, err := sp.Thetas()
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 13, 16, 19}, thetas)
}

func TestEvaluateCurves(t *testing.T) {
	lookup := mapLookup{
		"Sc0/j0": sc0,
		"Sc0/j2": sc0,
		"Sc0/j4": {"A": 1, "a": 1, "B": 1, "b": 1, "C": 1, "c": 1}, // no D
	}
	sp := SamplingSpec{ThetaMin: 0, ThetaMax: 80, Step: 0.05, Wavelength: 1.54}

	cs, err := EvaluateCurves(lookup, "Sc", "0", []string{"j0", "j2", "j4", "j6"}, sp)
	require.NoError(t, err)
	assert.Equal(t, []string{"j0", "j2"}, cs.ModelTypes())
	assert.Equal(t, []string{"j4", "j6"}, cs.Omitted)

	for _, c := range cs.Curves {
		assert.Len(t, c.S, 1601)
		assert.Len(t, c.Y, 1601)
	}
	assert.InDelta(t, 1.0037, cs.Curves[0].Y[0], 1e-9)
	assert.Equal(t, 0.0, cs.Curves[1].Y[0])
}

func TestEvaluateCurvesErrors(t *testing.T) {
	lookup := mapLookup{"Sc0/j0": sc0}

	_, err := EvaluateCurves(lookup, "Sc", "0", []string{"j0"}, SamplingSpec{ThetaMin: 0, ThetaMax: 80, Step: 0.05})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	sp := SamplingSpec{ThetaMin: 0, ThetaMax: 80, Step: 0.05, Wavelength: 1.54}
	_, err = EvaluateCurves(lookup, "Fe", "2", []string{"j0"}, sp)
	assert.ErrorIs(t, err, ErrNoData)
	assert.NotErrorIs(t, err, ErrInvalidParameters)

	_, err = EvaluateCurves(lookup, "Sc", "0", nil, sp)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestHasRequiredCoefficients(t *testing.T) {
	j0Only := parser.CoefficientSet{"A": 1, "a": 1, "B": 1, "b": 1, "C": 1, "c": 1}
	assert.True(t, HasRequiredCoefficients("j0", j0Only))
	assert.False(t, HasRequiredCoefficients("j2", j0Only))
	assert.False(t, HasRequiredCoefficients("j0", parser.CoefficientSet{"A": 1}))
}
