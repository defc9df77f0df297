// Package metrics provides Prometheus collectors for table loading and curve
// evaluation. Collectors live on a private registry; nothing is served over HTTP.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Label values for the status label.
const (
	StatusParsed   = "parsed"
	StatusSkipped  = "skipped"
	StatusAccepted = "accepted"
)

// Collector groups the viewer's metrics.
type Collector struct {
	registry *prometheus.Registry

	FilesTotal *prometheus.CounterVec
	RowsTotal  *prometheus.CounterVec
	// Duration of a full directory load.
	LoadDuration prometheus.Histogram
	// Curves produced by the evaluator, by model type.
	CurvesEvaluated *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		FilesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formfactor_files_total",
				Help: "Table files seen during loads",
			},
			[]string{"kind", "status"},
		),
		RowsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formfactor_rows_total",
				Help: "Table rows (or scattering cells) accepted or skipped",
			},
			[]string{"kind", "status"},
		),
		LoadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "formfactor_load_duration_seconds",
				Help:    "Time taken to scan and parse the table directories",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),
		CurvesEvaluated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formfactor_curves_evaluated_total",
				Help: "Form factor curves produced by the evaluator",
			},
			[]string{"model_type"},
		),
	}
}

// RecordFile counts one file of the given kind.
func (c *Collector) RecordFile(kind string, skipped bool) {
	if c == nil {
		return
	}
	status := StatusParsed
	if skipped {
		status = StatusSkipped
	}
	c.FilesTotal.WithLabelValues(kind, status).Inc()
}

// RecordRows adds accepted and skipped row counts for kind.
func (c *Collector) RecordRows(kind string, accepted, skipped int) {
	if c == nil {
		return
	}
	c.RowsTotal.WithLabelValues(kind, StatusAccepted).Add(float64(accepted))
	c.RowsTotal.WithLabelValues(kind, StatusSkipped).Add(float64(skipped))
}

// ObserveLoad records how long a load took.
func (c *Collector) ObserveLoad(d time.Duration) {
	if c == nil {
		return
	}
	c.LoadDuration.Observe(d.Seconds())
}

// RecordCurve counts one evaluated curve.
func (c *Collector) RecordCurve(modelType string) {
	if c == nil {
		return
	}
	c.CurvesEvaluated.WithLabelValues(modelType).Inc()
}

// WriteText writes every metric family in the Prometheus text format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
