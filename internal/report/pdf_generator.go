package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/user/form_factor_viewer_go/internal/analysis"
	"github.com/user/form_factor_viewer_go/internal/elements"
	"github.com/user/form_factor_viewer_go/internal/parser"
)

const (
	inchToMm               = 25.4
	pdfPageWidthLandscape  = 11 * inchToMm // Letter landscape
	pdfPageHeightLandscape = 8.5 * inchToMm
	pdfMargin              = 0.5 * inchToMm
	pdfContentWidth        = pdfPageWidthLandscape - (2 * pdfMargin)
)

// coefficientColumns is the column order of the coefficient table.
var coefficientColumns = []string{"A", "a", "B", "b", "C", "c", "D"}

// MagneticReport is everything the PDF shows for one ion.
type MagneticReport struct {
	Curves       *analysis.CurveSet
	Coefficients map[string]parser.CoefficientSet // by model type
	Descriptions map[string]string                // table title lines, by model type
}

// pdfStyler holds reusable styling and state for PDF generation
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	tr          func(string) string
	styles      map[string]func()
	lineHeight  float64
	currentY    float64
	pageHeight  float64
	contentTopY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		tr:          pdf.UnicodeTranslatorFromDescriptor(""),
		styles:      make(map[string]func()),
		lineHeight:  6, // mm
		pageHeight:  pdfPageHeightLandscape - pdfMargin,
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 14)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["muted"] = func() {
		s.pdf.SetFont("Arial", "I", 9)
		s.pdf.SetTextColor(100, 100, 100)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
}

func (s *pdfStyler) applyStyle(styleName string) {
	if fn, ok := s.styles[styleName]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageHeight {
		s.pdf.AddPage()
		s.currentY = s.contentTopY
	}
}

func (s *pdfStyler) writeParagraph(text string, styleName string, align string) {
	s.applyStyle(styleName)
	lines := s.pdf.SplitLines([]byte(s.tr(text)), pdfContentWidth)
	s.checkAddPage(float64(len(lines)) * s.lineHeight)

	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, s.tr(text), "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width, height float64) {
	s.pdf.RegisterImageOptionsReader(imageName, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(imageBytes))
	s.checkAddPage(height)
	s.pdf.ImageOptions(imageName, pdfMargin+(pdfContentWidth-width)/2, s.currentY, width, height, false,
		gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	s.currentY += height
	s.addSpacer(2)
}

// addTable draws a bordered table with relative column widths.
func (s *pdfStyler) addTable(headers []string, widthsRel []float64, rows [][]string) {
	widths := make([]float64, len(widthsRel))
	for i, rel := range widthsRel {
		widths[i] = rel * pdfContentWidth
	}

	s.checkAddPage(s.lineHeight * 2)
	x := pdfMargin
	s.applyStyle("tableHeader")
	for i, header := range headers {
		s.pdf.SetXY(x, s.currentY)
		s.pdf.CellFormat(widths[i], s.lineHeight, s.tr(header), "1", 0, "C", true, 0, "")
		x += widths[i]
	}
	s.currentY += s.lineHeight

	s.applyStyle("tableCell")
	for _, row := range rows {
		s.checkAddPage(s.lineHeight)
		x = pdfMargin
		for i, cell := range row {
			s.pdf.SetXY(x, s.currentY)
			s.pdf.CellFormat(widths[i], s.lineHeight, s.tr(cell), "1", 0, "C", false, 0, "")
			x += widths[i]
		}
		s.currentY += s.lineHeight
	}
}

func newReportPDF() (*gofpdf.Fpdf, *pdfStyler) {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()
	return pdf, newPDFStyler(pdf)
}

func elementHeading(symbol string) string {
	if e, ok := elements.Lookup(symbol); ok {
		return fmt.Sprintf("%s (%s, Z = %d)", symbol, e.Name, e.Z)
	}
	return symbol
}

// BuildMagneticPDF writes a report with the plot, the sampling parameters and
// the coefficients of every plotted model type.
func BuildMagneticPDF(w io.Writer, rep MagneticReport, opts PlotOptions) error {
	cs := rep.Curves
	if cs == nil || len(cs.Curves) == 0 {
		return fmt.Errorf("no curves to report: %w", analysis.ErrNoData)
	}

	plotPNG, err := CreateMagneticPlot(cs, opts)
	if err != nil {
		return err
	}

	pdf, styler := newReportPDF()
	styler.writeParagraph(fmt.Sprintf("Magnetic Form Factor Report: %s %s+", elementHeading(cs.Element), cs.Valence), "h1", "C")
	styler.addSpacer(3)

	sp := cs.Sampling
	styler.writeParagraph(fmt.Sprintf(
		"Wavelength: %g Å    Theta: %g° to %g° in steps of %g°    Samples: %d",
		sp.Wavelength, sp.ThetaMin, sp.ThetaMax, sp.Step, len(cs.Curves[0].S)), "normal", "L")
	if len(cs.Omitted) > 0 {
		styler.writeParagraph(fmt.Sprintf("Not available for this ion: %s", strings.Join(cs.Omitted, ", ")), "muted", "L")
	}
	styler.addSpacer(2)

	imgWidth := pdfContentWidth * 0.8
	styler.addImage(plotPNG, "magnetic_plot", imgWidth, imgWidth*plotAspect(opts))

	pdf.AddPage()
	styler.currentY = styler.contentTopY
	styler.writeParagraph("Coefficients", "h2", "L")

	headers := append([]string{"Type"}, coefficientColumns...)
	widths := []float64{0.16, 0.12, 0.12, 0.12, 0.12, 0.12, 0.12, 0.12}
	rows := make([][]string, 0, len(cs.Curves))
	for _, c := range cs.Curves {
		coeffs := rep.Coefficients[c.ModelType]
		row := []string{c.ModelType}
		for _, name := range coefficientColumns {
			if v, ok := coeffs[name]; ok {
				row = append(row, fmt.Sprintf("%.4f", v))
			} else {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}
	styler.addTable(headers, widths, rows)
	styler.addSpacer(4)

	for _, mt := range cs.ModelTypes() {
		if desc := rep.Descriptions[mt]; desc != "" {
			styler.writeParagraph(fmt.Sprintf("%s: %s", mt, desc), "muted", "L")
		}
	}

	return pdf.Output(w)
}

// BuildScatteringPDF writes a report with the X-ray plot, the computation
// method and the tabulated points.
func BuildScatteringPDF(w io.Writer, entry parser.ScatteringEntry, opts PlotOptions) error {
	plotPNG, err := CreateScatteringPlot(entry, opts)
	if err != nil {
		return err
	}

	pdf, styler := newReportPDF()
	styler.writeParagraph(fmt.Sprintf("X-ray Scattering Factor Report: %s", elementHeading(entry.Element)), "h1", "C")
	styler.addSpacer(3)
	styler.writeParagraph(fmt.Sprintf("Method: %s    Points: %d", entry.Method, len(entry.Points)), "normal", "L")
	styler.addSpacer(2)

	imgWidth := pdfContentWidth * 0.8
	styler.addImage(plotPNG, "scattering_plot", imgWidth, imgWidth*plotAspect(opts))

	pdf.AddPage()
	styler.currentY = styler.contentTopY
	styler.writeParagraph("Tabulated values", "h2", "L")
	rows := make([][]string, len(entry.Points))
	for i, pt := range entry.Points {
		rows[i] = []string{fmt.Sprintf("%.4f", pt.X), fmt.Sprintf("%.4f", pt.Y)}
	}
	styler.addTable([]string{"sin(theta)/lambda (1/Å)", "scattering factor"}, []float64{0.3, 0.3}, rows)

	return pdf.Output(w)
}

func plotAspect(opts PlotOptions) float64 {
	w, h := opts.size()
	return float64(h) / float64(w)
}
