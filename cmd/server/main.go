package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"fleetshare/internal/app"
	"fleetshare/internal/config"
	"fleetshare/internal/domain"
	"fleetshare/internal/handler"
	"fleetshare/internal/logging"
	"fleetshare/internal/pricing"
	internalRedis "fleetshare/internal/redis"
	"fleetshare/internal/repository/postgres"
	"fleetshare/internal/service"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the database can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			logger.Warn("failed to initialize New Relic", slog.String("error", err.Error()))
		} else {
			logger.Info("New Relic enabled", slog.String("app", cfg.NewRelic.AppName))
		}
	}

	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to PostgreSQL")

	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		logger.Error("failed to connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()
	logger.Info("connected to Redis")

	server := wireServer(db, redisClient, nrApp, cfg, logger)

	go func() {
		logger.Info("starting server", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config, logger *slog.Logger) *http.Server {
	cacheStore := internalRedis.NewCacheStore(redisClient)

	vehicleRepo := postgres.NewVehicleRepository(db)
	userRepo := postgres.NewUserRepository(db)
	tripRepo := postgres.NewTripRepository(db)

	strategy := buildPricingStrategy(cfg.Pricing)

	tripService := service.NewTripService(vehicleRepo, userRepo, tripRepo, strategy, logger)
	vehicleService := service.NewVehicleService(vehicleRepo, cacheStore, logger)
	reportingService := service.NewReportingService(tripRepo)

	router := app.NewRouter(app.RouterDeps{
		VehicleHandler: handler.NewVehicleHandler(vehicleService),
		UserHandler:    handler.NewUserHandler(userRepo),
		TripHandler:    handler.NewTripHandler(tripService),
		ReportHandler:  handler.NewReportHandler(reportingService),
		RedisClient:    redisClient,
		NewRelicApp:    nrApp,
	})

	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

// buildPricingStrategy composes the strategy tree from configuration.
func buildPricingStrategy(cfg config.PricingConfig) *pricing.Strategy {
	timeRate := domain.NewMoney(decimal.NewFromFloat(cfg.TimeRatePerMinute), cfg.Currency)
	distanceRate := domain.NewMoney(decimal.NewFromFloat(cfg.DistanceRatePerKm), cfg.Currency)

	strategy := pricing.Hybrid(
		pricing.TimeBased(timeRate),
		pricing.DistanceBased(distanceRate),
	)

	if cfg.SurgeMultiplier != 1.0 {
		strategy = pricing.Surge(strategy, cfg.SurgeMultiplier)
	}

	return strategy
}
