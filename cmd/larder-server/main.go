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

	"github.com/alwitt/larder/api"
	"github.com/alwitt/larder/config"
	"github.com/alwitt/larder/db"
	"github.com/alwitt/larder/store"
	"github.com/apex/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Invalid server configuration")
	}
	cfg.SetupLogger()

	if err := run(cfg); err != nil {
		log.WithError(err).Fatal("Archive server failed")
	}
}

func run(cfg config.Config) error {
	ctx := context.Background()

	// Prepare persistence
	dbClient, err := db.NewConnection(db.GetSqliteDialector(cfg.DBFile), cfg.SQLLogLevel)
	if err != nil {
		return fmt.Errorf("failed to connect to database '%s' [%w]", cfg.DBFile, err)
	}
	if err := dbClient.RunSQLInTransaction(ctx, db.DefineTables); err != nil {
		return fmt.Errorf("failed to prepare database tables [%w]", err)
	}

	archive, err := store.NewDocumentArchive(ctx, dbClient)
	if err != nil {
		return fmt.Errorf("failed to initialize document archive [%w]", err)
	}

	if cfg.SeedSampleData {
		referenceDay := time.Now().UTC().Truncate(24 * time.Hour)
		if err := archive.SeedSampleData(ctx, referenceDay, nil); err != nil {
			return fmt.Errorf("failed to seed archive sample data [%w]", err)
		}
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.NewRouter(archive),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Info("Archive server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error [%w]", err)
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed [%w]", err)
	}

	log.Info("Archive server stopped")
	return nil
}
