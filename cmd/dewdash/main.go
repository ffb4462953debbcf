// cmd/dewdash/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"dewdash/internal/cache"
	"dewdash/internal/config"
	"dewdash/internal/console"
	"dewdash/internal/poller"
	"dewdash/internal/server"
)

func main() {
	var (
		cfgPath       = flag.String("config", "", "path to YAML config (env vars apply either way)")
		exampleConfig = flag.Bool("example-config", false, "print the built-in example config and exit")
	)
	flag.Parse()

	if *exampleConfig {
		out, err := config.ExampleYAML()
		if err != nil {
			log.Fatalf("example config failed: %v", err)
		}
		os.Stdout.Write(out)
		return
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Build the pipeline: cache, server, poller, console
	// --------------------

	store := cache.New()

	// The HTTP server comes up before first gateway contact so the
	// dashboard never sees a refused connection while the sensor is
	// still warming up.
	srv := server.New(
		server.Config{
			Listen:           cfg.HTTP.Listen,
			PollPeriod:       cfg.Poll.Interval(),
			StaleAfterFactor: cfg.Poll.StaleAfterFactor,
			EnableShutdown:   cfg.HTTP.EnableShutdown,
		},
		store,
		stop,
		logger.Named("http"),
	)

	p, err := poller.Build(cfg, store, logger)
	if err != nil {
		logger.Fatal("poller build failed", zap.Error(err))
	}

	// Bootstrap hook: the one-shot browser launch keys off the first
	// successful reading. The core only logs it.
	go func() {
		select {
		case <-store.FirstReading():
			logger.Info("first reading acquired",
				zap.String("dashboard", "http://localhost"+cfg.HTTP.Listen))
		case <-ctx.Done():
		}
	}()

	if cfg.Console.Enabled {
		rep := console.New(store, logger.Named("console"))
		if err := rep.Start(); err != nil {
			logger.Fatal("console start failed", zap.Error(err))
		}
		defer rep.Stop()
	}

	go p.Run(ctx)

	logger.Info("dewdash started",
		zap.String("gateway", cfg.Gateway.Endpoint()),
		zap.Uint8("unit_id", cfg.Gateway.UnitID),
		zap.String("listen", cfg.HTTP.Listen),
		zap.Duration("poll_interval", cfg.Poll.Interval()),
	)

	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server error", zap.Error(err))
	}

	logger.Info("shutdown complete")
}
