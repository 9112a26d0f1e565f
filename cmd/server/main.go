package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pwms/backend/internal/application/invoker"
	"github.com/pwms/backend/internal/infrastructure/config"
	"github.com/pwms/backend/internal/infrastructure/logger"
	"github.com/pwms/backend/internal/infrastructure/persistence"
	"github.com/pwms/backend/internal/interfaces/http/handler"
	"github.com/pwms/backend/internal/interfaces/http/middleware"
	"github.com/pwms/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// Largest accepted request body. Create payloads are small string maps.
const maxBodyBytes = 1 << 20

//	@title			PWMS API
//	@version		1.0
//	@description	Ports, warehouses, items, inventory and shippings
//	@BasePath		/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("driver", cfg.Database.Driver),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Constraint violations are answered with 409, so the SQL logger keeps them out of the error level
	gormLog := logger.NewGormLogger(log,
		logger.MapGormLogLevel(cfg.Log.SQLLevel),
		logger.WithSlowThreshold(cfg.Database.SlowThreshold),
		logger.WithRejectedErrors(persistence.IsConstraintViolation),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	if err := db.Migrate(startupCtx); err != nil {
		cancelStartup()
		log.Fatal("Failed to migrate schema", zap.Error(err))
	}
	cancelStartup()
	log.Info("Database ready")

	store := persistence.NewGormEntityStore(db.DB)
	dispatcher := invoker.NewDispatcher(store, log)

	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.Secure(),
		middleware.CORSWithConfig(cors),
		middleware.BodyLimit(maxBodyBytes),
	)

	router.Mount(engine, router.Handlers{
		Entity: handler.NewEntityHandler(store, dispatcher),
		Geo:    handler.NewGeoHandler(store),
		System: handler.NewSystemHandler(db),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}
