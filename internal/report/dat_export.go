package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/user/form_factor_viewer_go/internal/analysis"
	"github.com/user/form_factor_viewer_go/internal/parser"
)

// WriteMagneticDat writes the curve set as tab-separated columns: s followed by
// one column per model type.
func WriteMagneticDat(w io.Writer, cs *analysis.CurveSet) error {
	if cs == nil || len(cs.Curves) == 0 {
		return fmt.Errorf("no curves to export: %w", analysis.ErrNoData)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s %s+ Form Factor\n", cs.Element, cs.Valence)
	fmt.Fprintf(bw, "# s\t%s\n", strings.Join(cs.ModelTypes(), "\t"))

	s := cs.Curves[0].S
	row := make([]string, 0, len(cs.Curves)+1)
	for i := range s {
		row = append(row[:0], fmt.Sprintf("%.6f", s[i]))
		for _, c := range cs.Curves {
			row = append(row, fmt.Sprintf("%.6f", c.Y[i]))
		}
		bw.WriteString(strings.Join(row, "\t"))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteScatteringDat writes the tabulated X-ray points of one element.
func WriteScatteringDat(w io.Writer, entry parser.ScatteringEntry) error {
	if len(entry.Points) == 0 {
		return fmt.Errorf("no scattering points for %s: %w", entry.Element, analysis.ErrNoData)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s X-ray scattering factor\n", entry.Element)
	fmt.Fprintf(bw, "# %s\n", entry.Method)
	bw.WriteString("# (sinθ)/λ (Å⁻¹)\tscattering factor (count)\n")
	for _, pt := range entry.Points {
		fmt.Fprintf(bw, "%.6f\t%.6f\n", pt.X, pt.Y)
	}
	return bw.Flush()
}
