package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/user/form_factor_viewer_go/internal/config"
	"github.com/user/form_factor_viewer_go/internal/logging"
	"github.com/user/form_factor_viewer_go/internal/metrics"
	"github.com/user/form_factor_viewer_go/internal/report"
	"github.com/user/form_factor_viewer_go/internal/viewer"
)

type command struct {
	fs         *flag.FlagSet
	configPath *string
}

func newCommand(name string) *command {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return &command{
		fs:         fs,
		configPath: fs.String("config", "config.json", "path to the JSON configuration file"),
	}
}

// parse parses args and checks the number of positional arguments.
func (c *command) parse(args []string, minArgs, maxArgs int) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if n := c.fs.NArg(); n < minArgs || n > maxArgs {
		fmt.Fprintf(os.Stderr, "%s: expected %d to %d arguments, got %d\n%s", c.fs.Name(), minArgs, maxArgs, n, usage)
		return errUsage
	}
	return nil
}

// open loads the config and the tables it names.
func (c *command) open() (*viewer.Service, *zap.Logger, error) {
	conf, err := config.LoadConfig(*c.configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.NewLogger(conf.Log, conf.DebugMode)
	if err != nil {
		return nil, nil, err
	}
	svc, err := viewer.New(context.Background(), conf, metrics.NewCollector(), logger)
	if err != nil {
		logger.Sync()
		return nil, nil, err
	}
	return svc, logger, nil
}

func runElements(args []string, stdout io.Writer) error {
	cmd := newCommand("elements")
	category := cmd.fs.String("category", viewer.CategoryMagnetic, "data category: magnetic or xray")
	mapPath := cmd.fs.String("map", "", "write a periodic table coverage map (PNG) to this file")
	if err := cmd.parse(args, 0, 0); err != nil {
		return err
	}
	svc, logger, err := cmd.open()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cells, err := svc.Elements(*category)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Z\tSymbol\tName")
	for _, e := range cells {
		if e.HasData {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", e.Z, e.Symbol, e.Name)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if *mapPath != "" {
		counts, err := svc.Coverage(*category)
		if err != nil {
			return err
		}
		img, err := report.CreateCoverageHeatmap(fmt.Sprintf("Elements with %s data", *category), counts, report.PlotOptions{})
		if err != nil {
			return err
		}
		if err := os.WriteFile(*mapPath, img, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", *mapPath, err)
		}
	}
	return nil
}

func runValences(args []string, stdout io.Writer) error {
	cmd := newCommand("valences")
	if err := cmd.parse(args, 1, 1); err != nil {
		return err
	}
	svc, logger, err := cmd.open()
	if err != nil {
		return err
	}
	defer logger.Sync()

	for _, v := range svc.Store().Valences(cmd.fs.Arg(0)) {
		fmt.Fprintln(stdout, v)
	}
	return nil
}

func runTypes(args []string, stdout io.Writer) error {
	cmd := newCommand("types")
	if err := cmd.parse(args, 2, 2); err != nil {
		return err
	}
	svc, logger, err := cmd.open()
	if err != nil {
		return err
	}
	defer logger.Sync()

	st := svc.Store()
	for _, mt := range st.ModelTypes(cmd.fs.Arg(0), cmd.fs.Arg(1)) {
		fmt.Fprintf(stdout, "%s\t%s\n", mt, st.ModelTypeDescription(mt))
	}
	return nil
}

func runCurve(args []string, stdout io.Writer) error {
	cmd := newCommand("curve")
	wavelength := cmd.fs.Float64("wavelength", 0, "wavelength in Å (default from config)")
	thetaMin := cmd.fs.Float64("theta-min", 0, "minimum θ in degrees (default from config)")
	thetaMax := cmd.fs.Float64("theta-max", 0, "maximum θ in degrees (default from config)")
	step := cmd.fs.Float64("step", 0, "θ step in degrees (default from config)")
	logX := cmd.fs.Bool("log", false, "log-scaled s axis for .png and .pdf output")
	out := cmd.fs.String("out", "", "output file (.dat, .arrow, .png, .pdf)")
	if err := cmd.parse(args, 2, 3); err != nil {
		return err
	}
	svc, logger, err := cmd.open()
	if err != nil {
		return err
	}
	defer logger.Sync()

	sp := svc.Config().SamplingDefaults()
	cmd.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "wavelength":
			sp.Wavelength = *wavelength
		case "theta-min":
			sp.ThetaMin = *thetaMin
		case "theta-max":
			sp.ThetaMax = *thetaMax
		case "step":
			sp.Step = *step
		}
	})

	req := viewer.MagneticRequest{
		Element:  cmd.fs.Arg(0),
		Valence:  cmd.fs.Arg(1),
		Sampling: sp,
	}
	if types := cmd.fs.Arg(2); types != "" {
		req.ModelTypes = strings.Split(types, ",")
	}

	if *out != "" {
		if err := svc.ExportMagnetic(*out, req, *logX || svc.Config().LogXAxis); err != nil {
			return errors.New(viewer.UserMessage(err))
		}
		return nil
	}

	cs, err := svc.Curves(req)
	if err != nil {
		return errors.New(viewer.UserMessage(err))
	}
	if len(cs.Omitted) > 0 {
		logger.Warn("Model types not available", zap.Strings("omitted", cs.Omitted))
	}
	return report.WriteMagneticDat(stdout, cs)
}

func runXray(args []string, stdout io.Writer) error {
	cmd := newCommand("xray")
	logX := cmd.fs.Bool("log", false, "log-scaled x axis for .png and .pdf output")
	out := cmd.fs.String("out", "", "output file (.dat, .arrow, .png, .pdf)")
	if err := cmd.parse(args, 1, 1); err != nil {
		return err
	}
	svc, logger, err := cmd.open()
	if err != nil {
		return err
	}
	defer logger.Sync()

	elem := cmd.fs.Arg(0)
	if *out != "" {
		if err := svc.ExportScattering(*out, elem, *logX); err != nil {
			return errors.New(viewer.UserMessage(err))
		}
		return nil
	}

	entry, err := svc.ScatteringEntry(elem)
	if err != nil {
		return errors.New(viewer.UserMessage(err))
	}
	return report.WriteScatteringDat(stdout, entry)
}

func runStats(args []string, stdout io.Writer) error {
	cmd := newCommand("stats")
	verbose := cmd.fs.Bool("v", false, "list every skipped file and row")
	if err := cmd.parse(args, 0, 0); err != nil {
		return err
	}
	svc, logger, err := cmd.open()
	if err != nil {
		return err
	}
	defer logger.Sync()

	st := svc.Store()
	stats := st.Stats()
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "files scanned\t%d\n", stats.FilesScanned)
	fmt.Fprintf(tw, "files parsed\t%d\n", stats.FilesParsed)
	fmt.Fprintf(tw, "files skipped\t%d\n", stats.FilesSkipped)
	fmt.Fprintf(tw, "rows accepted\t%d\n", stats.RowsAccepted)
	fmt.Fprintf(tw, "rows skipped\t%d\n", stats.RowsSkipped)
	fmt.Fprintf(tw, "magnetic elements\t%d\n", len(st.Elements()))
	fmt.Fprintf(tw, "x-ray elements\t%d\n", len(st.ScatteringElements()))
	if err := tw.Flush(); err != nil {
		return err
	}

	if *verbose {
		fmt.Fprintln(stdout)
		for _, r := range st.Reports() {
			if r.Skipped || r.RowsSkipped > 0 {
				fmt.Fprintln(stdout, r.String())
				for _, w := range r.Warnings {
					fmt.Fprintf(stdout, "  %s\n", w)
				}
			}
		}
	}

	fmt.Fprintln(stdout)
	return svc.Metrics().WriteText(stdout)
}
