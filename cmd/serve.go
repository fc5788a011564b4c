package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/router"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/seed"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

const shutdownTimeout = 10 * time.Second

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				log.WithError(err).Error("Failed to close database")
			}
		}()

		if cfg.SeedOnStart {
			if err := seedIfEmpty(cmd.Context(), store.New(db)); err != nil {
				return err
			}
		}

		return serve(cfg, db)
	},
}

// seedIfEmpty only seeds a database without any rows
func seedIfEmpty(ctx context.Context, s *store.Store) error {
	restaurants, pizzas, associations, err := s.Counts(ctx)
	if err != nil {
		return err
	}
	if restaurants+pizzas+associations > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")
	_, err = seed.Run(ctx, s, seed.DefaultOptions())
	return err
}

func serve(cfg *config.Config, db *gorm.DB) error {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := router.Options{
		AuthEnabled: cfg.AuthEnabled,
		JWTSecret:   cfg.JWTSecret,
		Logger:      log.StandardLogger(),
	}
	engine := router.Setup(router.NewControllers(db, opts), opts)

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	failed := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-failed:
		return errors.Wrap(err, "http server")
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutting down http server")
	}

	log.Info("Server stopped")
	return nil
}
