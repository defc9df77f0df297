package store

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/user/form_factor_viewer_go/internal/metrics"
	"github.com/user/form_factor_viewer_go/internal/parser"
)

// Options says where the tables live. Empty directories are not scanned.
type Options struct {
	MagneticDir       string
	ScatteringDir     string
	MagneticPattern   string // defaults to parser.MagneticPattern
	ScatteringPattern string // defaults to parser.ScatteringPattern

	Metrics *metrics.Collector // optional
}

// Load scans both directories, parses every candidate file and builds a Store.
// Bad files and rows are skipped and reported, never returned as errors; only an
// invalid pattern or a cancelled context fails the load.
func Load(ctx context.Context, opts Options, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()

	magPattern := opts.MagneticPattern
	if magPattern == "" {
		magPattern = parser.MagneticPattern
	}
	scatPattern := opts.ScatteringPattern
	if scatPattern == "" {
		scatPattern = parser.ScatteringPattern
	}

	var stats LoadStats
	var reports []*parser.ParseReport

	record := func(r *parser.ParseReport) {
		reports = append(reports, r)
		stats.FilesScanned++
		if r.Skipped {
			stats.FilesSkipped++
			logger.Debug("Table skipped",
				zap.String("kind", r.Kind), zap.String("file", r.Source), zap.String("reason", r.Reason))
		} else {
			stats.FilesParsed++
		}
		stats.RowsAccepted += r.RowsAccepted
		stats.RowsSkipped += r.RowsSkipped
		if len(r.Warnings) > 0 {
			logger.Debug("Table rows dropped",
				zap.String("file", r.Source), zap.Strings("warnings", r.Warnings))
		}
		opts.Metrics.RecordFile(r.Kind, r.Skipped)
		opts.Metrics.RecordRows(r.Kind, r.RowsAccepted, r.RowsSkipped)
	}

	var magnetic []*parser.MagneticTable
	if opts.MagneticDir != "" {
		files, err := parser.ScanTables(opts.MagneticDir, magPattern)
		if err != nil {
			return nil, fmt.Errorf("magnetic tables: %w", err)
		}
		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			table, report := parser.ParseMagneticFile(file)
			record(report)
			if table != nil {
				magnetic = append(magnetic, table)
			}
		}
	}

	var scattering []*parser.ScatteringTable
	if opts.ScatteringDir != "" {
		files, err := parser.ScanTables(opts.ScatteringDir, scatPattern)
		if err != nil {
			return nil, fmt.Errorf("scattering tables: %w", err)
		}
		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			table, report := parser.ParseScatteringFile(file)
			record(report)
			if table != nil {
				scattering = append(scattering, table)
			}
		}
	}

	s := Build(magnetic, scattering)
	s.reports = reports
	s.stats = stats

	elapsed := time.Since(start)
	opts.Metrics.ObserveLoad(elapsed)
	logger.Info("Form factor tables loaded",
		zap.Int("files_scanned", stats.FilesScanned),
		zap.Int("files_skipped", stats.FilesSkipped),
		zap.Int("rows_accepted", stats.RowsAccepted),
		zap.Int("rows_skipped", stats.RowsSkipped),
		zap.Int("magnetic_elements", len(s.magnetic)),
		zap.Int("scattering_elements", len(s.scattering)),
		zap.Duration("elapsed", elapsed),
	)
	return s, nil
}

// Holder keeps the current Store and swaps in a fresh one on Reload, so readers
// always see a complete snapshot.
type Holder struct {
	opts    Options
	logger  *zap.Logger
	current atomic.Pointer[Store]
}

// NewHolder performs the initial load.
func NewHolder(ctx context.Context, opts Options, logger *zap.Logger) (*Holder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Holder{opts: opts, logger: logger}
	if _, err := h.Reload(ctx); err != nil {
		return nil, err
	}
	return h, nil
}

// Current returns the snapshot in use.
func (h *Holder) Current() *Store {
	return h.current.Load()
}

// Reload rebuilds the store from disk. On failure the previous snapshot stays.
func (h *Holder) Reload(ctx context.Context) (*Store, error) {
	s, err := Load(ctx, h.opts, h.logger)
	if err != nil {
		return nil, err
	}
	h.current.Store(s)
	return s, nil
}
