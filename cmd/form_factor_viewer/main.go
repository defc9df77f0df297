package main

import (
	"context"
	"embed"
	"flag"
	"log"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"go.uber.org/zap"

	"github.com/user/form_factor_viewer_go/internal/config"
	"github.com/user/form_factor_viewer_go/internal/logging"
	"github.com/user/form_factor_viewer_go/internal/metrics"
	"github.com/user/form_factor_viewer_go/internal/viewer"
)

//go:embed all:frontend/public
var assets embed.FS

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file (see config.example.json)")
	flag.Parse()

	conf, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logger, err := logging.NewLogger(conf.Log, conf.DebugMode)
	if err != nil {
		log.Fatal("Error setting up logging: ", err)
	}
	defer logger.Sync()

	svc, err := viewer.New(context.Background(), conf, metrics.NewCollector(), logger)
	if err != nil {
		logger.Fatal("Error loading form factor tables", zap.Error(err))
	}

	app := NewApp(svc, logger)

	err = wails.Run(&options.App{
		Title:  "Form Factor Viewer",
		Width:  1100,
		Height: 760,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 46, G: 46, B: 46, A: 255}, // #2e2e2e
		OnStartup:        app.Startup,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		logger.Fatal("Error running Wails app", zap.Error(err))
	}
}
