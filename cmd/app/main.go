// Image Explorer: per-channel threshold inspector for multi-channel images

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/sirupsen/logrus"

	"image-inspector/internal/config"
	"image-inspector/internal/gui"
	"image-inspector/internal/imaging"
	imageio "image-inspector/internal/io"
	"image-inspector/internal/opencv"
)

const (
	AppName    = "Image Explorer"
	AppID      = "com.imageinspector.explorer"
	AppVersion = "1.0.0"
)

func main() {
	debugMode := flag.Bool("debug", false, "Enable debug mode with verbose logging")
	configPath := flag.String("config", "", "Path to a TOML configuration file")
	historyDepth := flag.Int("history", config.Default().History.Depth, "Number of isolate/convert steps that can be undone (0 disables undo)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [FILE...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	// Explicit flags win over file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugMode
		case "history":
			cfg.History.Depth = *historyDepth
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	logger := initLogger(cfg)
	logger.WithFields(logrus.Fields{
		"version":       AppVersion,
		"debug_mode":    cfg.Debug,
		"history_depth": cfg.History.Depth,
		"images":        flag.NArg(),
	}).Info("Starting " + AppName)

	loader := imageio.NewImageLoader(logger)
	images, err := loader.LoadAll(flag.Args())
	if err != nil && flag.NArg() > 0 {
		var invalid *imaging.InputValidationError
		if errors.As(err, &invalid) {
			logger.WithError(err).Error("Rejected input image")
		} else {
			logger.WithError(err).Error("Failed to load input images")
		}
		os.Exit(1)
	}

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(theme.DocumentIcon())
	myApp.Settings().SetTheme(theme.DefaultTheme())

	mainApp := gui.NewApplication(myApp, cfg, loader, opencv.NewConverter(logger), logger)
	for i, img := range images {
		name := filepath.Base(flag.Arg(i))
		if err := mainApp.AddImage(name, img); err != nil {
			logger.WithError(err).WithField("image", name).Error("Failed to create inspector window")
			os.Exit(1)
		}
	}
	mainApp.ShowAndRun()

	logger.Info("Application shutting down gracefully")
	os.Exit(0)
}

func loadConfig(path string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv(nil)
	return cfg, nil
}

// initLogger initializes the logger with appropriate level and format
func initLogger(cfg config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	format := cfg.LogFormat
	if format == config.LogFormatAuto {
		format = config.LogFormatJSON
		if cfg.Debug {
			format = config.LogFormatText
		}
	}

	if format == config.LogFormatText {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   cfg.Debug,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	logger.Debug("Debug logging enabled")
	return logger
}
