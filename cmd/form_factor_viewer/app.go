package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"

	"github.com/user/form_factor_viewer_go/internal/analysis"
	"github.com/user/form_factor_viewer_go/internal/report"
	"github.com/user/form_factor_viewer_go/internal/viewer"
)

// App is bound to the frontend; every exported method is callable from JS.
type App struct {
	ctx    context.Context
	svc    *viewer.Service
	logger *zap.Logger
}

// NewApp creates a new App application struct
func NewApp(svc *viewer.Service, logger *zap.Logger) *App {
	return &App{svc: svc, logger: logger}
}

// ScatteringInfo describes the X-ray data of one element.
type ScatteringInfo struct {
	Element string `json:"element"`
	HasData bool   `json:"hasData"`
	Method  string `json:"method"`
	Points  int    `json:"points"`
}

// PlotResult carries a rendered chart to the frontend.
type PlotResult struct {
	Image   string   `json:"image"` // base64 PNG
	Omitted []string `json:"omitted"`
}

// ExportRequest is a save request from the frontend. An empty Path opens a
// save dialog.
type ExportRequest struct {
	Category string                 `json:"category"`
	Magnetic viewer.MagneticRequest `json:"magnetic"`
	Element  string                 `json:"element"` // X-ray only
	LogX     bool                   `json:"logX"`
	Path     string                 `json:"path"`
}

// Startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	runtime.WindowSetTitle(a.ctx, "Form Factor Viewer")
	stats := a.svc.Store().Stats()
	a.sendStatus(fmt.Sprintf("Loaded %d tables (%d skipped), %d rows.",
		stats.FilesParsed, stats.FilesSkipped, stats.RowsAccepted))
}

func (a *App) sendStatus(message string) {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "statusUpdate", message)
	}
	a.logger.Info(message)
}

// userError logs err and returns the message the frontend shows.
func (a *App) userError(err error) error {
	a.logger.Debug("Request failed", zap.Error(err))
	return errors.New(viewer.UserMessage(err))
}

// Categories lists the selectable data categories.
func (a *App) Categories() []string {
	return viewer.Categories()
}

// Elements returns the periodic table with data availability for category.
func (a *App) Elements(category string) ([]viewer.ElementStatus, error) {
	return a.svc.Elements(category)
}

// Valences lists the valences of elem in numeric order.
func (a *App) Valences(elem string) []string {
	return a.svc.Store().Valences(elem)
}

// ModelTypes lists the model types available for an ion.
func (a *App) ModelTypes(elem, valence string) []string {
	return a.svc.Store().ModelTypes(elem, valence)
}

// DefaultSampling is the sampling the parameter fields start with.
func (a *App) DefaultSampling() analysis.SamplingSpec {
	return a.svc.Config().SamplingDefaults()
}

// DefaultLogX is the initial state of the log axis checkbox.
func (a *App) DefaultLogX() bool {
	return a.svc.Config().LogXAxis
}

// ScatteringInfo reports whether elem has X-ray data and how much.
func (a *App) ScatteringInfo(elem string) ScatteringInfo {
	st := a.svc.Store()
	return ScatteringInfo{
		Element: elem,
		HasData: st.HasScatteringData(elem),
		Method:  st.ScatteringMethod(elem),
		Points:  len(st.ScatteringPoints(elem)),
	}
}

// PlotMagnetic evaluates the requested curves and renders them as a PNG.
func (a *App) PlotMagnetic(req viewer.MagneticRequest, logX bool) (PlotResult, error) {
	cs, err := a.svc.Curves(req)
	if err != nil {
		return PlotResult{}, a.userError(err)
	}
	img, err := report.CreateMagneticPlot(cs, a.svc.PlotOptions(logX))
	if err != nil {
		return PlotResult{}, a.userError(err)
	}
	return PlotResult{Image: base64.StdEncoding.EncodeToString(img), Omitted: cs.Omitted}, nil
}

// PlotScattering renders the X-ray scattering factor of elem as a PNG.
func (a *App) PlotScattering(elem string, logX bool) (PlotResult, error) {
	entry, err := a.svc.ScatteringEntry(elem)
	if err != nil {
		return PlotResult{}, a.userError(err)
	}
	img, err := report.CreateScatteringPlot(entry, a.svc.PlotOptions(logX))
	if err != nil {
		return PlotResult{}, a.userError(err)
	}
	return PlotResult{Image: base64.StdEncoding.EncodeToString(img)}, nil
}

// CoverageMap renders which elements have data in category.
func (a *App) CoverageMap(category string) (string, error) {
	counts, err := a.svc.Coverage(category)
	if err != nil {
		return "", err
	}
	img, err := report.CreateCoverageHeatmap(fmt.Sprintf("Elements with %s data", category), counts, report.PlotOptions{})
	if err != nil {
		return "", a.userError(err)
	}
	return base64.StdEncoding.EncodeToString(img), nil
}

// Export writes the current selection to a file. It returns the path written,
// or "" when the save dialog was cancelled.
func (a *App) Export(req ExportRequest) (string, error) {
	path := req.Path
	if path == "" {
		var err error
		path, err = runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
			Title:           "Export",
			DefaultFilename: defaultExportName(req),
			Filters: []runtime.FileFilter{
				{DisplayName: "Data file (*.dat)", Pattern: "*.dat"},
				{DisplayName: "Arrow IPC (*.arrow)", Pattern: "*.arrow"},
				{DisplayName: "PNG image (*.png)", Pattern: "*.png"},
				{DisplayName: "PDF report (*.pdf)", Pattern: "*.pdf"},
			},
		})
		if err != nil {
			return "", err
		}
		if path == "" {
			return "", nil
		}
	}

	var err error
	switch req.Category {
	case viewer.CategoryMagnetic:
		err = a.svc.ExportMagnetic(path, req.Magnetic, req.LogX)
	case viewer.CategoryXray:
		err = a.svc.ExportScattering(path, req.Element, req.LogX)
	default:
		err = fmt.Errorf("%q: %w", req.Category, viewer.ErrUnknownCategory)
	}
	if err != nil {
		return "", a.userError(err)
	}
	a.sendStatus(fmt.Sprintf("Exported %s", path))
	return path, nil
}

func defaultExportName(req ExportRequest) string {
	if req.Category == viewer.CategoryXray {
		return req.Element + "_xray.dat"
	}
	return fmt.Sprintf("%s%s_form_factor.dat", req.Magnetic.Element, req.Magnetic.Valence)
}

// Reload rereads the tables from disk.
func (a *App) Reload() (string, error) {
	stats, err := a.svc.Reload(a.ctx)
	if err != nil {
		return "", err
	}
	msg := fmt.Sprintf("Reloaded %d tables (%d skipped), %d rows.",
		stats.FilesParsed, stats.FilesSkipped, stats.RowsAccepted)
	a.sendStatus(msg)
	runtime.EventsEmit(a.ctx, "dataReloaded")
	return msg, nil
}
