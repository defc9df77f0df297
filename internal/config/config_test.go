package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/form_factor_viewer_go/internal/analysis"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := LoadConfig(writeConfig(t, `{"magnetic_data_dir": "data/magnetic"}`))
	require.NoError(t, err)

	assert.Equal(t, "data/magnetic", conf.MagneticDataDir)
	assert.Equal(t, "Table*.txt", conf.MagneticPattern)
	assert.Equal(t, "Table_*.txt", conf.XrayPattern)
	assert.Equal(t, analysis.SamplingSpec{ThetaMin: 0, ThetaMax: 80, Step: 0.05, Wavelength: 1.54}, conf.SamplingDefaults())
	assert.Equal(t, 800.0, conf.PlotWidthPt)
	assert.Equal(t, "info", conf.Log.Level)
	assert.False(t, conf.DebugMode)

	opts := conf.StoreOptions()
	assert.Equal(t, "data/magnetic", opts.MagneticDir)
	assert.Empty(t, opts.ScatteringDir)
}

func TestExampleConfigLoads(t *testing.T) {
	conf, err := LoadConfig(filepath.Join("..", "..", "config.example.json"))
	require.NoError(t, err)

	assert.Equal(t, "data/magnetic", conf.MagneticDataDir)
	assert.Equal(t, "data/xray", conf.XrayDataDir)
	defaults := Default()
	assert.Equal(t, defaults.SamplingDefaults(), conf.SamplingDefaults())
	assert.Equal(t, "form_factor_viewer", conf.Log.Fields["service"])
}

func TestLoadConfigOverrides(t *testing.T) {
	conf, err := LoadConfig(writeConfig(t, `{
		"xray_data_dir": "xray",
		"default_wavelength": 0.71,
		"default_theta_max": 60,
		"log_x_axis": true,
		"debug_mode": true,
		"log": {"level": "debug", "output_path": "viewer.log"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, 0.71, conf.DefaultWavelength)
	assert.Equal(t, 60.0, conf.DefaultThetaMax)
	assert.True(t, conf.LogXAxis)
	assert.True(t, conf.DebugMode)
	assert.Equal(t, "viewer.log", conf.Log.OutputPath)
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"no data dir":    `{}`,
		"bad sampling":   `{"magnetic_data_dir": "m", "default_wavelength": 0}`,
		"bad plot size":  `{"magnetic_data_dir": "m", "plot_width_pt": -1}`,
		"malformed json": `{"magnetic_data_dir": `,
		"unknown field":  `{"magnetic_data_dir": "m", "colour": "red"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBadSamplingWrapsSentinel(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"magnetic_data_dir": "m", "default_theta_step": 0}`))
	assert.ErrorIs(t, err, analysis.ErrInvalidParameters)
}
