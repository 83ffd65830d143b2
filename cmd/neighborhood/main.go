package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dnetlabs/smartneighborhood/pkg/controller"
	"github.com/dnetlabs/smartneighborhood/pkg/fleet"
	"github.com/dnetlabs/smartneighborhood/pkg/log"
	"github.com/dnetlabs/smartneighborhood/pkg/pricing"
	"github.com/dnetlabs/smartneighborhood/pkg/server"

	"github.com/levenlabs/go-lflag"
	"github.com/levenlabs/go-llog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// init packages
	prices := pricing.Configured()
	f := fleet.Configured()
	c := controller.Configured(prices, f)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	c.SetMetrics(controller.NewMetrics(reg))

	// init server
	srv := server.Configured(c, reg)

	refreshInterval := lflag.Duration("refresh-interval", 15*time.Minute, "How often the neighborhood data is regenerated")

	// parse flags
	lflag.Configure()

	var level slog.Level
	// lflag automatically sets llog's level, but we need to set the slog level
	switch llog.GetLevel() {
	case llog.DebugLevel:
		level = slog.LevelDebug
	case llog.InfoLevel:
		level = slog.LevelInfo
	case llog.WarnLevel:
		level = slog.LevelWarn
	case llog.ErrorLevel:
		level = slog.LevelError
	default:
		panic(fmt.Errorf("unknown log level: %s", llog.GetLevel().String()))
	}
	log.SetDefaultLogLevel(level)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	slog.Debug("logger configured", slog.String("level", level.String()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// serve data from the first request on
	if _, err := c.Refresh(ctx, time.Now()); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "initial refresh failed", slog.Any("error", err))
		os.Exit(1)
	}

	refresher := controller.NewRefresher(ctx, c, *refreshInterval, time.Now)
	refresher.Start()
	defer refresher.Stop()

	// Run will block until context is canceled or error happens
	if err := srv.Run(ctx); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "server failed", "error", err)
		refresher.Stop()
		os.Exit(1)
	}
	log.Ctx(ctx).InfoContext(ctx, "server exited cleanly")
}
