package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-scheduler/config"
	"clinic-scheduler/controllers"
	"clinic-scheduler/middleware"
	"clinic-scheduler/routes"
	"clinic-scheduler/scheduler"
	"clinic-scheduler/store"
)

func main() {
	logger := config.NewLogger()
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	ctx := context.Background()
	if err := store.EnsureSchema(ctx, db); err != nil {
		logger.Fatal().Err(err).Msg("schema setup failed")
	}
	records := store.NewSQLStore(db)

	if cfg.DoctorsSeedFile != "" {
		n, err := store.SeedDoctors(ctx, records, cfg.DoctorsSeedFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", cfg.DoctorsSeedFile).Msg("doctor roster seeding failed")
		}
		if n > 0 {
			logger.Info().Int("doctors", n).Str("file", cfg.DoctorsSeedFile).Msg("seeded doctor roster")
		}
	}

	engine := scheduler.New(records, cfg.Location, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api/v1")
	routes.ClinicRoutes(api, controllers.New(engine, cfg))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("db_driver", cfg.DBDriver).Msg("clinic scheduler starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down clinic scheduler")

	// Give outstanding requests 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("forced shutdown")
	}
	logger.Info().Msg("clinic scheduler exited")
}
