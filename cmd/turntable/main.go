// Package main is the entry point for the turntable multi-view renderer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/fogwise/turntable/internal/config"
	"github.com/fogwise/turntable/internal/logger"
	"github.com/fogwise/turntable/internal/render"
	"github.com/fogwise/turntable/internal/watch"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	assetPath := config.AssetPath()
	if assetPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: turntable [flags] <asset.glb>")
		os.Exit(2)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== turntable ===", zap.String("asset", assetPath))
	logger.Sugar.Debugf("Config: %+v", cfg)

	opts := render.OptionsFromConfig(cfg)
	run := func() error {
		results, err := render.RenderAsset(assetPath, opts)
		if err != nil {
			return err
		}
		logger.Info("render complete",
			zap.Int("views", len(results)),
			zap.String("out", opts.OutDir))
		return nil
	}

	if cfg.Watch.Enabled {
		if err := watch.Run(assetPath, cfg.Watch.MaxRetries, run); err != nil {
			logger.Error("watch failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if err := run(); err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}
}
