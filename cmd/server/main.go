// Package main - Entry point for the TCO calculator HTTP server
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tco-calculator/api"
	"tco-calculator/internal/config"
	"tco-calculator/internal/logging"
	"tco-calculator/internal/metrics"
)

const version = "0.1.0"

func main() {
	cfgPath := flag.String("config", "", "config file (default is $HOME/.tco-calculator.json)")
	addr := flag.String("addr", "", "server address (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	gin.SetMode(cfg.Server.Mode)

	opts := api.Options{
		Version:          version,
		Logger:           logging.Named("api"),
		DefaultTimeframe: cfg.Calculator.DefaultTimeframe,
	}
	if cfg.Server.MetricsEnabled {
		opts.Metrics = metrics.New()
	}

	logging.Info("starting TCO calculator server",
		zap.String("addr", cfg.Server.Addr),
		zap.String("version", version),
		zap.Bool("metrics", cfg.Server.MetricsEnabled),
	)

	if err := api.NewServer(opts).ListenAndServe(cfg.Server.Addr); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, err
	}
	return cfg, nil
}
