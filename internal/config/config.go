package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/user/form_factor_viewer_go/internal/analysis"
	"github.com/user/form_factor_viewer_go/internal/logging"
	"github.com/user/form_factor_viewer_go/internal/parser"
	"github.com/user/form_factor_viewer_go/internal/store"
)

// Config is the JSON configuration shared by the desktop app and the CLI.
type Config struct {
	MagneticDataDir string `json:"magnetic_data_dir"`
	XrayDataDir     string `json:"xray_data_dir"`
	MagneticPattern string `json:"magnetic_pattern"`
	XrayPattern     string `json:"xray_pattern"`

	DefaultWavelength float64 `json:"default_wavelength"` // Å
	DefaultThetaMin   float64 `json:"default_theta_min"`  // degrees
	DefaultThetaMax   float64 `json:"default_theta_max"`  // degrees
	DefaultThetaStep  float64 `json:"default_theta_step"` // degrees

	LogXAxis     bool    `json:"log_x_axis"`
	PlotWidthPt  float64 `json:"plot_width_pt"`
	PlotHeightPt float64 `json:"plot_height_pt"`

	Log       logging.Config `json:"log"`
	DebugMode bool           `json:"debug_mode"` // log to console instead of file when true
}

// Default returns the configuration used for any field the file leaves out.
func Default() Config {
	return Config{
		MagneticPattern:   parser.MagneticPattern,
		XrayPattern:       parser.ScatteringPattern,
		DefaultWavelength: 1.54,
		DefaultThetaMin:   0,
		DefaultThetaMax:   80,
		DefaultThetaStep:  0.05,
		PlotWidthPt:       800,
		PlotHeightPt:      400,
		Log: logging.Config{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadConfig decodes the JSON file at filePath over Default and validates it.
func LoadConfig(filePath string) (*Config, error) {
	conf := Default()

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&conf); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", filePath, err)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks that at least one table directory is set and that the plot
// defaults form a usable sampling.
func (c *Config) Validate() error {
	if c.MagneticDataDir == "" && c.XrayDataDir == "" {
		return errors.New("no magnetic_data_dir or xray_data_dir provided in config file")
	}
	if err := c.SamplingDefaults().Validate(); err != nil {
		return fmt.Errorf("default sampling: %w", err)
	}
	if c.PlotWidthPt <= 0 || c.PlotHeightPt <= 0 {
		return fmt.Errorf("plot size %gx%g must be positive", c.PlotWidthPt, c.PlotHeightPt)
	}
	return nil
}

// SamplingDefaults is the sampling the front ends start from.
func (c *Config) SamplingDefaults() analysis.SamplingSpec {
	return analysis.SamplingSpec{
		ThetaMin:   c.DefaultThetaMin,
		ThetaMax:   c.DefaultThetaMax,
		Step:       c.DefaultThetaStep,
		Wavelength: c.DefaultWavelength,
	}
}

// StoreOptions maps the table locations onto loader options.
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		MagneticDir:       c.MagneticDataDir,
		ScatteringDir:     c.XrayDataDir,
		MagneticPattern:   c.MagneticPattern,
		ScatteringPattern: c.XrayPattern,
	}
}
