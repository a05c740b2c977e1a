// main is the entry point of the SIM verification API.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file (+ env overrides)
//  2. Initialise the logger
//  3. Open the database pool and check it with a ping
//  4. Register all HTTP routes
//  5. Serve until SIGINT/SIGTERM, then drain in-flight requests and exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/sim-verify --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/sim-verify
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/aanand-mishra/sim-verify/internal/config"
	"github.com/aanand-mishra/sim-verify/internal/http/router"
	"github.com/aanand-mishra/sim-verify/internal/metrics"
	"github.com/aanand-mishra/sim-verify/internal/storage/sqldb"
	"github.com/aanand-mishra/sim-verify/internal/validation"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting sim-verify",
		slog.String("env", cfg.Env),
		slog.String("driver", cfg.Storage.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqldb.Open(ctx, cfg.Storage)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	gateway := sqldb.NewGateway(db)
	defer gateway.Close()

	log.Info("storage initialised")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.Storage.Driver),
	)
	m := metrics.New(reg)

	handler := router.New(router.Deps{
		Store:    metrics.InstrumentStorage(sqldb.New(gateway), m),
		Validate: validation.New(),
		Logger:   log,
		Metrics:  m,
		Gatherer: reg,
	})

	server := &http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, stopping server...")

		// The parent context is already cancelled here.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// dev: human-readable text at DEBUG. staging: JSON at DEBUG. prod: JSON at INFO.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "staging":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
