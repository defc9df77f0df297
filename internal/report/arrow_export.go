package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/user/form_factor_viewer_go/internal/analysis"
	"github.com/user/form_factor_viewer_go/internal/parser"
)

// Schema metadata keys of exported record batches.
const (
	MetaKind         = "kind"
	MetaElement      = "element"
	MetaValence      = "valence"
	MetaMethod       = "method"
	MetaAtomicNumber = "atomic_number"
	MetaWavelength   = "wavelength"
	MetaThetaMin     = "theta_min"
	MetaThetaMax     = "theta_max"
	MetaThetaStep    = "theta_step"
)

// WriteMagneticArrow writes the curve set as one Arrow IPC record batch with a
// Float64 column "s" and one Float64 column per model type.
func WriteMagneticArrow(w io.Writer, cs *analysis.CurveSet) error {
	if cs == nil || len(cs.Curves) == 0 {
		return fmt.Errorf("no curves to export: %w", analysis.ErrNoData)
	}

	fields := make([]arrow.Field, 0, len(cs.Curves)+1)
	columns := make([][]float64, 0, len(cs.Curves)+1)
	fields = append(fields, arrow.Field{Name: "s", Type: arrow.PrimitiveTypes.Float64})
	columns = append(columns, cs.Curves[0].S)
	for _, c := range cs.Curves {
		fields = append(fields, arrow.Field{Name: c.ModelType, Type: arrow.PrimitiveTypes.Float64})
		columns = append(columns, c.Y)
	}

	fmtFloat := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	md := arrow.NewMetadata(
		[]string{MetaKind, MetaElement, MetaValence, MetaWavelength, MetaThetaMin, MetaThetaMax, MetaThetaStep},
		[]string{parser.KindMagnetic, cs.Element, cs.Valence,
			fmtFloat(cs.Sampling.Wavelength), fmtFloat(cs.Sampling.ThetaMin),
			fmtFloat(cs.Sampling.ThetaMax), fmtFloat(cs.Sampling.Step)},
	)
	return writeFloatRecord(w, arrow.NewSchema(fields, &md), columns)
}

// WriteScatteringArrow writes the X-ray points of one element as columns x and y.
func WriteScatteringArrow(w io.Writer, entry parser.ScatteringEntry) error {
	if len(entry.Points) == 0 {
		return fmt.Errorf("no scattering points for %s: %w", entry.Element, analysis.ErrNoData)
	}

	xs := make([]float64, len(entry.Points))
	ys := make([]float64, len(entry.Points))
	for i, pt := range entry.Points {
		xs[i], ys[i] = pt.X, pt.Y
	}

	md := arrow.NewMetadata(
		[]string{MetaKind, MetaElement, MetaAtomicNumber, MetaMethod},
		[]string{parser.KindScattering, entry.Element, strconv.Itoa(entry.AtomicNumber), entry.Method},
	)
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "x", Type: arrow.PrimitiveTypes.Float64},
		{Name: "y", Type: arrow.PrimitiveTypes.Float64},
	}, &md)
	return writeFloatRecord(w, schema, [][]float64{xs, ys})
}

func writeFloatRecord(w io.Writer, schema *arrow.Schema, columns [][]float64) error {
	builder := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer builder.Release()
	for i, col := range columns {
		builder.Field(i).(*array.Float64Builder).AppendValues(col, nil)
	}
	rec := builder.NewRecord()
	defer rec.Release()

	writer := ipc.NewWriter(w, ipc.WithSchema(schema), ipc.WithAllocator(memory.DefaultAllocator))
	if err := writer.Write(rec); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write arrow record: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close arrow writer: %w", err)
	}
	return nil
}
