package parser

import (
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseScatteringFile opens path and parses it as an X-ray scattering-factor table.
func ParseScatteringFile(path string) (*ScatteringTable, *ParseReport) {
	f, err := os.Open(path)
	if err != nil {
		report := newParseReport(path, KindScattering)
		report.skipFile("failed to open file: %v", err)
		return nil, report
	}
	defer f.Close()

	return ParseScatteringTable(f, path)
}

// ParseScatteringTable reads an element-indexed scattering table. Structure is
// positional after blank lines are dropped:
//
//	Element  H    He   ...
//	Z        1    2    ...
//	Method   m1   m2   ...
//	x        yH   yHe  ...
//
// Blank header cells are dropped, and the i-th remaining element reads field i+1
// of the Z, Method and data rows. Each element is read independently, so a cell
// that does not parse only removes that (row, element) point. Elements without
// points are left out.
func ParseScatteringTable(r io.Reader, source string) (*ScatteringTable, *ParseReport) {
	report := newParseReport(source, KindScattering)

	raw, err := readLines(r)
	if err != nil {
		report.skipFile("failed to read file: %v", err)
		return nil, report
	}

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < MinScatteringLines {
		report.skipFile("expected at least %d non-blank lines, found %d", MinScatteringLines, len(lines))
		return nil, report
	}

	symbols := strings.Split(lines[0], "\t")
	atomicNumbers := strings.Split(lines[1], "\t")
	methods := strings.Split(lines[2], "\t")
	rows := make([][]string, 0, len(lines)-3)
	for _, line := range lines[3:] {
		rows = append(rows, strings.Split(line, "\t"))
	}

	elements := make([]string, 0, len(symbols))
	for _, sym := range symbols[1:] {
		if sym = strings.TrimSpace(sym); sym != "" {
			elements = append(elements, sym)
		}
	}

	table := &ScatteringTable{Source: source}

	for idx, elem := range elements {
		col := idx + 1
		entry := ScatteringEntry{
			Element: elem,
			Method:  cell(methods, col),
		}
		if z, err := strconv.Atoi(cell(atomicNumbers, col)); err == nil {
			entry.AtomicNumber = z
		}

		for _, row := range rows {
			xs, ys := cell(row, 0), cell(row, col)
			if xs == "" || ys == "" {
				continue
			}
			x, errX := strconv.ParseFloat(xs, 64)
			y, errY := strconv.ParseFloat(ys, 64)
			if errX != nil || errY != nil {
				report.RowsSkipped++
				continue
			}
			entry.Points = append(entry.Points, Point{X: x, Y: y})
		}

		if len(entry.Points) == 0 {
			report.Warnings = append(report.Warnings, "no numeric points for "+elem)
			continue
		}
		report.RowsAccepted += len(entry.Points)
		table.Entries = append(table.Entries, entry)
	}

	return table, report
}

// cell returns the trimmed field at idx, or "" when the row is too short.
func cell(fields []string, idx int) string {
	if idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}
