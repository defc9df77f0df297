package report

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/user/form_factor_viewer_go/internal/elements"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// periodicGrid lays per-element values out on the periodic table. Cells
// without an element, or elements without a value, are NaN. Grid row 0 is
// the bottom of the chart, so table rows are flipped.
type periodicGrid struct {
	z [elements.GridRows][elements.GridCols]float64
}

func newPeriodicGrid(values map[string]float64) *periodicGrid {
	g := &periodicGrid{}
	for r := range g.z {
		for c := range g.z[r] {
			g.z[r][c] = math.NaN()
		}
	}
	for _, e := range elements.All() {
		if v, ok := values[e.Symbol]; ok {
			g.z[flipRow(e.Row)][e.Col] = v
		}
	}
	return g
}

func flipRow(row int) int { return elements.GridRows - 1 - row }

func (g *periodicGrid) Dims() (c, r int)   { return elements.GridCols, elements.GridRows }
func (g *periodicGrid) Z(c, r int) float64 { return g.z[r][c] }
func (g *periodicGrid) X(c int) float64    { return float64(c) }
func (g *periodicGrid) Y(r int) float64    { return float64(r) }

// CreateCoverageHeatmap colours every element of the periodic table by how
// many entries the store holds for it (valences for magnetic data, one for
// scattering data). Elements without data stay grey.
func CreateCoverageHeatmap(title string, counts map[string]int, opts PlotOptions) ([]byte, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("no element data to map")
	}

	values := make(map[string]float64, len(counts))
	for sym, n := range counts {
		if _, ok := elements.Lookup(sym); ok && n > 0 {
			values[sym] = float64(n)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("none of the %d symbols are known elements", len(counts))
	}

	p := plot.New()
	p.Title.Text = title
	p.HideAxes()

	hm := plotter.NewHeatMap(newPeriodicGrid(values), palette.Heat(12, 1))
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		nums = append(nums, v)
	}
	hm.Min = 0
	hm.Max = slices.Max(nums)
	if hm.Max == hm.Min {
		hm.Max = hm.Min + 1
	}
	hm.NaN = color.Gray{Y: 230}
	p.Add(hm)

	labels, err := symbolLabels()
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	p.X.Min, p.X.Max = -0.5, float64(elements.GridCols)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(elements.GridRows)-0.5

	if opts.WidthPt <= 0 {
		opts.WidthPt = 1000
	}
	if opts.HeightPt <= 0 {
		opts.HeightPt = 500
	}
	opts.LogX = false
	return renderPNG(p, opts)
}

func symbolLabels() (*plotter.Labels, error) {
	all := elements.All()
	data := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(all)),
		Labels: make([]string, len(all)),
	}
	for i, e := range all {
		data.XYs[i] = plotter.XY{X: float64(e.Col), Y: float64(flipRow(e.Row))}
		data.Labels[i] = e.Symbol
	}
	labels, err := plotter.NewLabels(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create element labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(9)
		labels.TextStyle[i].XAlign = -0.5
		labels.TextStyle[i].YAlign = -0.5
	}
	return labels, nil
}
