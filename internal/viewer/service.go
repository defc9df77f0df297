// Package viewer ties the table store, the curve evaluator and the exporters
// together for the desktop app and the command line tool.
package viewer

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/user/form_factor_viewer_go/internal/analysis"
	"github.com/user/form_factor_viewer_go/internal/config"
	"github.com/user/form_factor_viewer_go/internal/elements"
	"github.com/user/form_factor_viewer_go/internal/metrics"
	"github.com/user/form_factor_viewer_go/internal/parser"
	"github.com/user/form_factor_viewer_go/internal/report"
	"github.com/user/form_factor_viewer_go/internal/store"
)

// Data categories shown by the front ends.
const (
	CategoryMagnetic = "magnetic"
	CategoryXray     = "xray"
)

// ErrUnknownCategory is returned for a category other than the two above.
var ErrUnknownCategory = errors.New("unknown data category")

// User-facing messages for the two evaluation failures.
const (
	MsgInvalidParameters = "Please enter a valid wavelength and theta range."
	MsgNoData            = "No data available for this selection yet."
)

// Categories lists the data categories in display order.
func Categories() []string {
	return []string{CategoryMagnetic, CategoryXray}
}

// ElementStatus is one periodic table cell with its data availability.
type ElementStatus struct {
	elements.Element
	HasData bool `json:"hasData"`
}

// MagneticRequest selects curves to evaluate. A zero Sampling means the
// configured defaults.
type MagneticRequest struct {
	Element    string                `json:"element"`
	Valence    string                `json:"valence"`
	ModelTypes []string              `json:"modelTypes"`
	Sampling   analysis.SamplingSpec `json:"sampling"`
}

// Service answers front-end requests against the current table snapshot.
type Service struct {
	cfg     *config.Config
	holder  *store.Holder
	metrics *metrics.Collector
	logger  *zap.Logger
}

// New loads the tables named by cfg.
func New(ctx context.Context, cfg *config.Config, m *metrics.Collector, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := cfg.StoreOptions()
	opts.Metrics = m
	holder, err := store.NewHolder(ctx, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}
	return &Service{cfg: cfg, holder: holder, metrics: m, logger: logger}, nil
}

// Config returns the configuration the service was built with.
func (s *Service) Config() *config.Config { return s.cfg }

// Store returns the current table snapshot.
func (s *Service) Store() *store.Store { return s.holder.Current() }

// Metrics returns the collector, which may be nil.
func (s *Service) Metrics() *metrics.Collector { return s.metrics }

// Reload rereads the tables from disk; on failure the old snapshot stays.
func (s *Service) Reload(ctx context.Context) (store.LoadStats, error) {
	st, err := s.holder.Reload(ctx)
	if err != nil {
		s.logger.Error("Reload failed", zap.Error(err))
		return store.LoadStats{}, err
	}
	return st.Stats(), nil
}

// Elements lists the whole periodic table with the availability of data in
// category.
func (s *Service) Elements(category string) ([]ElementStatus, error) {
	has, err := s.hasData(category)
	if err != nil {
		return nil, err
	}
	return lo.Map(elements.All(), func(e elements.Element, _ int) ElementStatus {
		return ElementStatus{Element: e, HasData: has(e.Symbol)}
	}), nil
}

func (s *Service) hasData(category string) (func(string) bool, error) {
	st := s.Store()
	switch category {
	case CategoryMagnetic:
		return st.HasMagneticData, nil
	case CategoryXray:
		return st.HasScatteringData, nil
	}
	return nil, fmt.Errorf("%q: %w", category, ErrUnknownCategory)
}

// Coverage counts the entries per element in category: valences for
// magnetic data, one per element for X-ray data.
func (s *Service) Coverage(category string) (map[string]int, error) {
	st := s.Store()
	switch category {
	case CategoryMagnetic:
		return lo.SliceToMap(st.Elements(), func(e string) (string, int) {
			return e, len(st.Valences(e))
		}), nil
	case CategoryXray:
		return lo.SliceToMap(st.ScatteringElements(), func(e string) (string, int) {
			return e, 1
		}), nil
	}
	return nil, fmt.Errorf("%q: %w", category, ErrUnknownCategory)
}

// Curves evaluates the requested model types of one ion.
func (s *Service) Curves(req MagneticRequest) (*analysis.CurveSet, error) {
	sp := req.Sampling
	if sp == (analysis.SamplingSpec{}) {
		sp = s.cfg.SamplingDefaults()
	}
	modelTypes := req.ModelTypes
	if len(modelTypes) == 0 {
		modelTypes = s.Store().ModelTypes(req.Element, req.Valence)
	}

	cs, err := analysis.EvaluateCurves(s.Store(), req.Element, req.Valence, modelTypes, sp)
	if err != nil {
		s.logger.Debug("No curves for request",
			zap.String("element", req.Element), zap.String("valence", req.Valence),
			zap.Strings("model_types", modelTypes), zap.Error(err))
		return nil, err
	}
	for _, mt := range cs.ModelTypes() {
		s.metrics.RecordCurve(mt)
	}
	return cs, nil
}

// MagneticReport evaluates the request and gathers the coefficients and table
// descriptions of every plotted model type.
func (s *Service) MagneticReport(req MagneticRequest) (report.MagneticReport, error) {
	cs, err := s.Curves(req)
	if err != nil {
		return report.MagneticReport{}, err
	}
	st := s.Store()
	rep := report.MagneticReport{
		Curves:       cs,
		Coefficients: make(map[string]parser.CoefficientSet, len(cs.Curves)),
		Descriptions: make(map[string]string, len(cs.Curves)),
	}
	for _, mt := range cs.ModelTypes() {
		rep.Coefficients[mt], _ = st.Coefficients(req.Element, req.Valence, mt)
		rep.Descriptions[mt] = st.ModelTypeDescription(mt)
	}
	return rep, nil
}

// ScatteringEntry returns the X-ray data of elem or ErrNoData.
func (s *Service) ScatteringEntry(elem string) (parser.ScatteringEntry, error) {
	entry, ok := s.Store().ScatteringEntry(elem)
	if !ok || len(entry.Points) == 0 {
		return parser.ScatteringEntry{}, fmt.Errorf("%s: %w", elem, analysis.ErrNoData)
	}
	return entry, nil
}

// PlotOptions returns the configured plot size with the given axis scaling.
func (s *Service) PlotOptions(logX bool) report.PlotOptions {
	return report.PlotOptions{LogX: logX, WidthPt: s.cfg.PlotWidthPt, HeightPt: s.cfg.PlotHeightPt}
}

// ExportMagnetic evaluates the request and writes it to path.
func (s *Service) ExportMagnetic(path string, req MagneticRequest, logX bool) error {
	rep, err := s.MagneticReport(req)
	if err != nil {
		return err
	}
	if err := report.ExportMagneticFile(path, rep, s.PlotOptions(logX)); err != nil {
		return err
	}
	s.logger.Info("Exported magnetic form factor",
		zap.String("element", req.Element), zap.String("valence", req.Valence), zap.String("path", path))
	return nil
}

// ExportScattering writes the X-ray data of elem to path.
func (s *Service) ExportScattering(path, elem string, logX bool) error {
	entry, err := s.ScatteringEntry(elem)
	if err != nil {
		return err
	}
	if err := report.ExportScatteringFile(path, entry, s.PlotOptions(logX)); err != nil {
		return err
	}
	s.logger.Info("Exported X-ray scattering factor", zap.String("element", elem), zap.String("path", path))
	return nil
}

// UserMessage turns an error into the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, analysis.ErrInvalidParameters):
		return MsgInvalidParameters
	case errors.Is(err, analysis.ErrNoData):
		return MsgNoData
	}
	return err.Error()
}
