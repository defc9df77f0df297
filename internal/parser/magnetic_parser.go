package parser

import (
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	modelTypeTag = regexp.MustCompile(`<(j\d)>`)
	ionKeyRe     = regexp.MustCompile(`^([A-Za-z]+)(\d+)`)
)

// ParseIonKey splits a leading identifier such as "Fe2" into element "Fe" and
// valence "2". Tokens without trailing digits are rejected.
func ParseIonKey(token string) (IonKey, bool) {
	m := ionKeyRe.FindStringSubmatch(token)
	if m == nil {
		return IonKey{}, false
	}
	return IonKey{Element: m[1], Valence: m[2]}, true
}

// ExtractModelType finds the first <jN> tag in a header line.
func ExtractModelType(header string) (string, bool) {
	m := modelTypeTag.FindStringSubmatch(header)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseMagneticFile opens path and parses it as a magnetic coefficient table.
// An unreadable file is reported as skipped rather than returned as an error.
func ParseMagneticFile(path string) (*MagneticTable, *ParseReport) {
	f, err := os.Open(path)
	if err != nil {
		report := newParseReport(path, KindMagnetic)
		report.skipFile("failed to open file: %v", err)
		return nil, report
	}
	defer f.Close()

	return ParseMagneticTable(f, path)
}

// ParseMagneticTable reads one magnetic form-factor table. The first line must
// carry a <jN> tag, the second names the columns, and every later line is an
// ion row. Malformed rows are dropped and counted; a file that cannot yield any
// model type returns a nil table.
func ParseMagneticTable(r io.Reader, source string) (*MagneticTable, *ParseReport) {
	report := newParseReport(source, KindMagnetic)

	lines, err := readLines(r)
	if err != nil {
		report.skipFile("failed to read file: %v", err)
		return nil, report
	}
	if len(lines) < 2 {
		report.skipFile("expected at least 2 lines, found %d", len(lines))
		return nil, report
	}

	header := strings.TrimSpace(lines[0])
	modelType, ok := ExtractModelType(header)
	if !ok {
		report.skipFile("no <jN> model type tag in header")
		return nil, report
	}

	columns := make([]string, 0, MinMagneticFields)
	for _, col := range strings.Split(lines[1], "\t") {
		if col = strings.TrimSpace(col); col != "" {
			columns = append(columns, col)
		}
	}
	var coefNames []string
	if len(columns) > 1 {
		coefNames = columns[1:]
	}

	table := &MagneticTable{
		Source:    source,
		ModelType: modelType,
		Header:    header,
		Columns:   columns,
		Rows:      make([]MagneticRow, 0, len(lines)-2),
	}

	for i, line := range lines[2:] {
		lineNo := i + 3
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitFields(line)
		if len(fields) < MinMagneticFields {
			report.skipRow(lineNo, "expected at least %d fields, found %d", MinMagneticFields, len(fields))
			continue
		}

		ion, ok := ParseIonKey(fields[0])
		if !ok {
			report.skipRow(lineNo, "ion identifier %q is not <element><valence>", fields[0])
			continue
		}

		coeffs, bad := zipCoefficients(coefNames, fields[1:])
		if bad >= 0 {
			report.skipRow(lineNo, "non-numeric coefficient %q for %s", fields[bad+1], ion)
			continue
		}

		table.Rows = append(table.Rows, MagneticRow{Ion: ion, Coefficients: coeffs})
		report.RowsAccepted++
	}

	return table, report
}

// zipCoefficients pairs names with values positionally; the shorter side wins.
// On a non-numeric value it returns a nil set and the offending index, else -1.
func zipCoefficients(names, values []string) (CoefficientSet, int) {
	n := len(names)
	if len(values) < n {
		n = len(values)
	}
	coeffs := make(CoefficientSet, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(values[i], 64)
		if err != nil {
			return nil, i
		}
		coeffs[names[i]] = v
	}
	return coeffs, -1
}
