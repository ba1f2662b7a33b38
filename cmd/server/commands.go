package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-catalog-backend/internal/api/routes"
	"product-catalog-backend/internal/config"
	"product-catalog-backend/internal/database"
	"product-catalog-backend/internal/logger"
	"product-catalog-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	connectAttempts = 30
	connectDelay    = 2 * time.Second
	shutdownTimeout = 10 * time.Second
)

// bootstrap loads configuration, sets up logging and connects to the database
func bootstrap(autoMigrate bool) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	if err := logger.Setup(logger.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		JSON:       true,
	}); err != nil {
		logrus.WithError(err).Warn("Invalid LOG_LEVEL, using info")
	}

	db, err := database.ConnectWithRetry(cfg.DatabaseDriver, cfg.DatabaseURL, &database.Options{
		LogLevel:    database.ParseLogLevel(cfg.DatabaseLogLevel),
		AutoMigrate: autoMigrate,
	}, connectAttempts, connectDelay)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func serve() error {
	cfg, db, err := bootstrap(true)
	if err != nil {
		return err
	}
	defer closeDB(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.SeedDefaults(ctx, db); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	m := metrics.New(cfg.MetricsPrefix)
	if err := m.InstrumentDB(db); err != nil {
		return fmt.Errorf("instrument database: %w", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.SetupRoutes(db, cfg, m, version)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{"port": cfg.Port, "version": version}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func migrate() error {
	_, db, err := bootstrap(true)
	if err != nil {
		return err
	}
	defer closeDB(db)

	logrus.Info("Schema is up to date")
	return nil
}

func seed(ctx context.Context, file string) error {
	cfg, db, err := bootstrap(true)
	if err != nil {
		return err
	}
	defer closeDB(db)

	if err := database.SeedDefaults(ctx, db); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	if file == "" {
		file = cfg.SeedFile
	}
	if file == "" {
		return nil
	}

	catalog, err := database.LoadCatalog(file)
	if err != nil {
		return err
	}
	if _, err := database.ApplyCatalog(ctx, db, catalog); err != nil {
		return fmt.Errorf("apply catalog %s: %w", file, err)
	}
	return nil
}
