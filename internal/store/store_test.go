package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/user/form_factor_viewer_go/internal/metrics"
	"github.com/user/form_factor_viewer_go/internal/parser"
)

const (
	tableJ0 = "Table 1: <j0> 3d ions\n" +
		"Ion\tA\ta\tB\tb\tC\tc\tD\n" +
		"Sc0\t0.2512\t90.0296\t0.329\t39.4021\t0.4235\t14.3222\t-0.0043\n" +
		"Fe2\t0.0263\t34.9597\t0.3668\t15.9435\t0.6188\t5.5935\t-0.0119\n" +
		"Fe10\t1\t1\t1\t1\t1\t1\t1\n" +
		"Fe3\t0.3972\t13.2442\t0.6295\t4.9034\t-0.0314\t0.3496\t0.0044\n"

	tableJ2 = "Table 2: <j2> 3d ions\n" +
		"Ion\tA\ta\tB\tb\tC\tc\tD\n" +
		"Fe2\t1.6490\t16.5593\t1.9064\t6.1325\t0.5206\t2.1370\t0.0035\n"

	// Sorted after tableJ0, so its Sc0 row wins.
	tableJ0Patch = "Table 3: <j0> corrections\n" +
		"Ion\tA\ta\tB\tb\tC\tc\tD\n" +
		"Sc0\t0.5\t1\t0.25\t1\t0.25\t1\t0\n"

	tableXray = "Element\tH\tHe\tFe\n" +
		"Z\t1\t2\t26\n" +
		"Method\tRHF\tRHF\tHF\n" +
		"0.00\t1.000\t2.000\tx\n" +
		"0.10\t0.481\t1.752\t\n"
)

func writeFixtures(t *testing.T) (magDir, xrayDir string) {
	t.Helper()
	magDir = t.TempDir()
	xrayDir = t.TempDir()
	files := map[string]string{
		filepath.Join(magDir, "Table1.txt"):       tableJ0,
		filepath.Join(magDir, "Table2.txt"):       tableJ2,
		filepath.Join(magDir, "Table3.txt"):       tableJ0Patch,
		filepath.Join(magDir, "Table_notes.txt"):  "just notes\nwithout a tag\n",
		filepath.Join(xrayDir, "Table_light.txt"): tableXray,
	}
	for path, content := range files {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return magDir, xrayDir
}

func loadFixtures(t *testing.T, m *metrics.Collector) *Store {
	t.Helper()
	magDir, xrayDir := writeFixtures(t)
	s, err := Load(context.Background(), Options{MagneticDir: magDir, ScatteringDir: xrayDir, Metrics: m}, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestStoreQueries(t *testing.T) {
	s := loadFixtures(t, nil)

	assert.Equal(t, []string{"Fe", "Sc"}, s.Elements())
	assert.Equal(t, []string{"2", "3", "10"}, s.Valences("Fe"))
	assert.Equal(t, []string{"j0", "j2"}, s.ModelTypes("Fe", "2"))
	assert.Equal(t, []string{"j0"}, s.ModelTypes("Fe", "3"))

	c, ok := s.Coefficients("Fe", "2", "j2")
	require.True(t, ok)
	assert.Equal(t, parser.CoefficientSet{
		"A": 1.6490, "a": 16.5593, "B": 1.9064, "b": 6.1325, "C": 0.5206, "c": 2.1370, "D": 0.0035,
	}, c)

	assert.Equal(t, "Table 2: <j2> 3d ions", s.ModelTypeDescription("j2"))
	assert.Equal(t, "", s.ModelTypeDescription("j6"))
}

func TestStoreLastWriteWins(t *testing.T) {
	s := loadFixtures(t, nil)

	c, ok := s.Coefficients("Sc", "0", "j0")
	require.True(t, ok)
	assert.Equal(t, 0.5, c["A"])
	assert.Equal(t, "Table 3: <j0> corrections", s.ModelTypeDescription("j0"))

	// Fe rows of the first j0 table are untouched by the patch file.
	c, ok = s.Coefficients("Fe", "2", "j0")
	require.True(t, ok)
	assert.Equal(t, 0.0263, c["A"])
}

func TestStoreUnknownQueries(t *testing.T) {
	s := loadFixtures(t, nil)

	assert.Empty(t, s.Valences("Xx"))
	assert.NotNil(t, s.Valences("Xx"))
	assert.Empty(t, s.ModelTypes("Fe", "7"))
	assert.Empty(t, s.ModelTypes("Xx", "1"))

	_, ok := s.Coefficients("Fe", "2", "j6")
	assert.False(t, ok)
	_, ok = s.Coefficients("Xx", "2", "j0")
	assert.False(t, ok)

	assert.False(t, s.HasScatteringData("Xx"))
	assert.Equal(t, "", s.ScatteringMethod("Xx"))
	assert.Empty(t, s.ScatteringPoints("Xx"))
}

func TestStoreScattering(t *testing.T) {
	s := loadFixtures(t, nil)

	assert.Equal(t, []string{"H", "He"}, s.ScatteringElements())
	assert.True(t, s.HasScatteringData("He"))
	assert.False(t, s.HasScatteringData("Fe"))
	assert.Equal(t, "RHF", s.ScatteringMethod("H"))
	assert.Equal(t, []parser.Point{{X: 0, Y: 1}, {X: 0.10, Y: 0.481}}, s.ScatteringPoints("H"))

	e, ok := s.ScatteringEntry("He")
	require.True(t, ok)
	assert.Equal(t, 2, e.AtomicNumber)
}

func TestStoreReturnsCopies(t *testing.T) {
	s := loadFixtures(t, nil)

	c, _ := s.Coefficients("Fe", "2", "j0")
	c["A"] = 42
	again, _ := s.Coefficients("Fe", "2", "j0")
	assert.Equal(t, 0.0263, again["A"])

	pts := s.ScatteringPoints("H")
	pts[0].Y = 42
	assert.Equal(t, 1.0, s.ScatteringPoints("H")[0].Y)
}

func TestLoadIsIdempotent(t *testing.T) {
	magDir, xrayDir := writeFixtures(t)
	opts := Options{MagneticDir: magDir, ScatteringDir: xrayDir}

	first, err := Load(context.Background(), opts, nil)
	require.NoError(t, err)
	second, err := Load(context.Background(), opts, nil)
	require.NoError(t, err)

	assert.Equal(t, first.magnetic, second.magnetic)
	assert.Equal(t, first.descriptions, second.descriptions)
	assert.Equal(t, first.scattering, second.scattering)
	assert.Equal(t, first.Stats(), second.Stats())
}

func TestLoadStatsAndMetrics(t *testing.T) {
	m := metrics.NewCollector()
	s := loadFixtures(t, m)

	stats := s.Stats()
	assert.Equal(t, 5, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)
	assert.Len(t, s.Reports(), 5)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.FilesTotal.WithLabelValues(parser.KindMagnetic, metrics.StatusSkipped)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.FilesTotal.WithLabelValues(parser.KindMagnetic, metrics.StatusParsed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FilesTotal.WithLabelValues(parser.KindScattering, metrics.StatusParsed)))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.RowsTotal.WithLabelValues(parser.KindMagnetic, metrics.StatusAccepted)))
}

func TestLoadMissingDirectories(t *testing.T) {
	root := t.TempDir()
	s, err := Load(context.Background(), Options{
		MagneticDir:   filepath.Join(root, "nope"),
		ScatteringDir: filepath.Join(root, "also-nope"),
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, s.Elements())
	assert.Empty(t, s.ScatteringElements())
}

func TestLoadCancelled(t *testing.T) {
	magDir, _ := writeFixtures(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, Options{MagneticDir: magDir}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHolderReload(t *testing.T) {
	magDir, xrayDir := writeFixtures(t)
	h, err := NewHolder(context.Background(), Options{MagneticDir: magDir, ScatteringDir: xrayDir}, nil)
	require.NoError(t, err)

	before := h.Current()
	assert.Equal(t, []string{"Fe", "Sc"}, before.Elements())

	extra := "<j4> added later\nIon\tA\ta\tB\tb\tC\tc\tD\nNi2\t1\t2\t3\t4\t5\t6\t7\n"
	require.NoError(t, os.WriteFile(filepath.Join(magDir, "Table4.txt"), []byte(extra), 0o644))

	after, err := h.Reload(context.Background())
	require.NoError(t, err)
	assert.Same(t, after, h.Current())
	assert.Equal(t, []string{"Fe", "Ni", "Sc"}, after.Elements())
	// The old snapshot is unchanged.
	assert.Equal(t, []string{"Fe", "Sc"}, before.Elements())

	_, err = NewHolder(context.Background(), Options{MagneticDir: magDir, MagneticPattern: "Table["}, nil)
	assert.Error(t, err)
}
