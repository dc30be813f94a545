package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edvin/saasadmin/internal/api"
	"github.com/edvin/saasadmin/internal/config"
	"github.com/edvin/saasadmin/internal/core"
	"github.com/edvin/saasadmin/internal/db"
	"github.com/edvin/saasadmin/internal/gateway"
	"github.com/edvin/saasadmin/internal/logging"
	"github.com/edvin/saasadmin/internal/metrics"
	"github.com/edvin/saasadmin/internal/store"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "Run database migrations before starting")
	migrateDirFlag := flag.String("migrate-dir", "migrations/admin", "Migration files directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg)

	if *migrateFlag {
		logger.Info().Str("dir", *migrateDirFlag).Msg("running database migrations")
		if err := db.RunMigrations(cfg.AdminDatabaseURL, *migrateDirFlag); err != nil {
			logger.Fatal().Err(err).Msg("migration failed")
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var st store.Store
	switch cfg.StoreBackend {
	case "memory":
		st = store.NewMemory()
	case "file":
		st, err = store.NewFile(cfg.DataDir)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to open file store")
		}
	case "postgres":
		pool, err := db.NewAdminPool(ctx, cfg.AdminDatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to admin database")
		}
		defer pool.Close()
		metrics.RegisterPgxPoolMetrics(pool)
		st = store.NewPostgres(pool)
	}

	gw := gateway.NewSimulator(cfg.PaymentCreateLatency, cfg.PaymentChargeLatency, cfg.PaymentSuccessRate)
	services := core.NewServices(st, gw)

	srv := api.NewServer(logger, services, st, cfg)

	httpServer := &http.Server{
		Addr:         cfg.HTTPListenAddr,
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPListenAddr).Msg("starting admin API server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
}
