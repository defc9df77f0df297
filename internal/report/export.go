package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/user/form_factor_viewer_go/internal/parser"
)

// Format is an export file format, chosen by file extension.
type Format string

const (
	FormatDat   Format = "dat"
	FormatArrow Format = "arrow"
	FormatPNG   Format = "png"
	FormatPDF   Format = "pdf"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatDat, FormatArrow, FormatPNG, FormatPDF}

var ErrUnsupportedFormat = errors.New("unsupported export format")

// FormatFromPath picks the export format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if string(f) == ext {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q: %w (want .dat, .arrow, .png or .pdf)", path, ErrUnsupportedFormat)
}

// WriteMagnetic renders the report in format f to w.
func WriteMagnetic(w io.Writer, f Format, rep MagneticReport, opts PlotOptions) error {
	switch f {
	case FormatDat:
		return WriteMagneticDat(w, rep.Curves)
	case FormatArrow:
		return WriteMagneticArrow(w, rep.Curves)
	case FormatPNG:
		img, err := CreateMagneticPlot(rep.Curves, opts)
		if err != nil {
			return err
		}
		_, err = w.Write(img)
		return err
	case FormatPDF:
		return BuildMagneticPDF(w, rep, opts)
	}
	return fmt.Errorf("%q: %w", f, ErrUnsupportedFormat)
}

// WriteScattering renders one element's X-ray data in format f to w.
func WriteScattering(w io.Writer, f Format, entry parser.ScatteringEntry, opts PlotOptions) error {
	switch f {
	case FormatDat:
		return WriteScatteringDat(w, entry)
	case FormatArrow:
		return WriteScatteringArrow(w, entry)
	case FormatPNG:
		img, err := CreateScatteringPlot(entry, opts)
		if err != nil {
			return err
		}
		_, err = w.Write(img)
		return err
	case FormatPDF:
		return BuildScatteringPDF(w, entry, opts)
	}
	return fmt.Errorf("%q: %w", f, ErrUnsupportedFormat)
}

// ExportMagneticFile writes rep to path in the format its extension names.
// Nothing is written when rendering fails.
func ExportMagneticFile(path string, rep MagneticReport, opts PlotOptions) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := WriteMagnetic(&buf, f, rep, opts); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes())
}

// ExportScatteringFile writes entry to path in the format its extension names.
func ExportScatteringFile(path string, entry parser.ScatteringEntry, opts PlotOptions) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := WriteScattering(&buf, f, entry, opts); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
