package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScatteringTableIndependentColumns(t *testing.T) {
	content := "Element\tH\tHe\n" +
		"Z\t1\t2\n" +
		"Method\tRHF\tHF\n" +
		"0.10\tn/a\t1.8\n"

	table, report := ParseScatteringTable(strings.NewReader(content), "Table_small.txt")
	require.NotNil(t, table)
	require.False(t, report.Skipped)

	require.Len(t, table.Entries, 1)
	he := table.Entries[0]
	assert.Equal(t, "He", he.Element)
	assert.Equal(t, 2, he.AtomicNumber)
	assert.Equal(t, "HF", he.Method)
	assert.Equal(t, []Point{{X: 0.10, Y: 1.8}}, he.Points)
	assert.Equal(t, 1, report.RowsSkipped)
}

func TestParseScatteringTable(t *testing.T) {
	content := "Element\tH\tHe\tLi\n" +
		"\n" +
		"Z\t1\t2\t3\n" +
		"Method\tRHF\tRHF\tDirac-Slater\n" +
		"0.00\t1.000\t2.000\t3.000\n" +
		"0.05\t0.811\t1.931\t\n" +
		"  \n" +
		"0.10\t0.481\t1.752\t2.215\n" +
		"0.15\t0.251\n"

	table, _ := ParseScatteringTable(strings.NewReader(content), "Table_light.txt")
	require.NotNil(t, table)
	require.Len(t, table.Entries, 3)

	h := table.Entries[0]
	assert.Equal(t, "H", h.Element)
	assert.Equal(t, []Point{{0, 1}, {0.05, 0.811}, {0.10, 0.481}, {0.15, 0.251}}, h.Points)

	li := table.Entries[2]
	assert.Equal(t, "Dirac-Slater", li.Method)
	assert.Equal(t, []Point{{0, 3}, {0.10, 2.215}}, li.Points)
}

func TestParseScatteringTableTooShort(t *testing.T) {
	content := "Element\tH\n\nZ\t1\nMethod\tRHF\n\n"
	table, report := ParseScatteringTable(strings.NewReader(content), "short")
	assert.Nil(t, table)
	assert.True(t, report.Skipped)
}

func TestParseScatteringTableCompactsBlankHeaderCells(t *testing.T) {
	content := "Element\t\tC\n" +
		"Z\t6\t\n" +
		"Method\tRHF\t\n" +
		"0.2\t9.9\t4.5\n"

	table, _ := ParseScatteringTable(strings.NewReader(content), "gap")
	require.NotNil(t, table)
	require.Len(t, table.Entries, 1)
	e := table.Entries[0]
	assert.Equal(t, "C", e.Element)
	assert.Equal(t, 6, e.AtomicNumber)
	assert.Equal(t, "RHF", e.Method)
	assert.Equal(t, []Point{{0.2, 9.9}}, e.Points)
}
