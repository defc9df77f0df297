package report

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/user/form_factor_viewer_go/internal/analysis"
	"github.com/user/form_factor_viewer_go/internal/parser"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	magneticXLabel   = "s = sinθ / λ (Å⁻¹)"
	magneticYLabel   = "Form Factor"
	scatteringXLabel = "(sinθ)/λ (Å⁻¹)"
	scatteringYLabel = "scattering factor (count)"
)

// PlotOptions controls the rendered chart.
type PlotOptions struct {
	LogX     bool    // log-scaled x axis; points with x <= 0 are dropped
	WidthPt  float64 // defaults to 800
	HeightPt float64 // defaults to 400
}

func (o PlotOptions) size() (vg.Length, vg.Length) {
	w, h := o.WidthPt, o.HeightPt
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 400
	}
	return vg.Points(w), vg.Points(h)
}

var plotColors = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}, // blue
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 255}, // orange
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 255}, // green
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 255}, // red
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 255}, // purple
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 255}, // brown
}

// MagneticTitle is the chart title of a magnetic form factor plot.
func MagneticTitle(elem, valence string) string {
	return fmt.Sprintf("%s %s+  Form Factor", elem, valence)
}

// ScatteringTitle is the chart title of an X-ray scattering factor plot.
func ScatteringTitle(elem string) string {
	return fmt.Sprintf("%s X-ray scattering factor", elem)
}

// CreateMagneticPlot draws one line per model type of the curve set.
func CreateMagneticPlot(cs *analysis.CurveSet, opts PlotOptions) ([]byte, error) {
	if cs == nil || len(cs.Curves) == 0 {
		return nil, fmt.Errorf("no curves to plot: %w", analysis.ErrNoData)
	}

	p := newPlot(MagneticTitle(cs.Element, cs.Valence), magneticXLabel, magneticYLabel, opts)

	linesPlotted := 0
	for i, c := range cs.Curves {
		pts := toXYs(c.S, c.Y, opts.LogX)
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create line for %s: %w", c.ModelType, err)
		}
		line.Color = plotColors[i%len(plotColors)]
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(c.ModelType, line)
		linesPlotted++
	}
	if linesPlotted == 0 {
		return nil, fmt.Errorf("no positive s values on a log axis: %w", analysis.ErrNoData)
	}

	p.Legend.Top = true
	p.Legend.XOffs = -vg.Points(10)
	return renderPNG(p, opts)
}

// CreateScatteringPlot draws the tabulated points of one element with markers.
func CreateScatteringPlot(entry parser.ScatteringEntry, opts PlotOptions) ([]byte, error) {
	xs := make([]float64, len(entry.Points))
	ys := make([]float64, len(entry.Points))
	for i, pt := range entry.Points {
		xs[i], ys[i] = pt.X, pt.Y
	}
	pts := toXYs(xs, ys, opts.LogX)
	if len(pts) == 0 {
		return nil, fmt.Errorf("no scattering points for %s: %w", entry.Element, analysis.ErrNoData)
	}

	p := newPlot(ScatteringTitle(entry.Element), scatteringXLabel, scatteringYLabel, opts)

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to create scattering line for %s: %w", entry.Element, err)
	}
	line.Color = plotColors[0]
	line.LineStyle.Width = vg.Points(1.5)
	points.Shape = draw.CircleGlyph{}
	points.Color = plotColors[0]
	p.Add(line, points)
	return renderPNG(p, opts)
}

func newPlot(title, xLabel, yLabel string, opts PlotOptions) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	if opts.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())
	return p
}

// toXYs pairs xs with ys, dropping non-positive x on a log axis.
func toXYs(xs, ys []float64, logX bool) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if logX && xs[i] <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}

func renderPNG(p *plot.Plot, opts PlotOptions) ([]byte, error) {
	w, h := opts.size()
	writer, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}
