package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"fleetshare/internal/handler"
	"fleetshare/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	VehicleHandler *handler.VehicleHandler
	UserHandler    *handler.UserHandler
	TripHandler    *handler.TripHandler
	ReportHandler  *handler.ReportHandler
	RedisClient    *redis.Client
	NewRelicApp    *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RedisClient != nil {
		router.Use(middleware.Idempotency(deps.RedisClient))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics.
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Vehicle routes.
		vehicles := v1.Group("/vehicles")
		{
			vehicles.POST("", deps.VehicleHandler.AddVehicle)
			vehicles.GET("", deps.VehicleHandler.GetAll)
			vehicles.GET("/available", deps.VehicleHandler.GetAvailable)
			vehicles.GET("/:id", deps.VehicleHandler.GetVehicle)
		}

		// User routes.
		users := v1.Group("/users")
		{
			users.POST("/register", deps.UserHandler.Register)
			users.GET("", deps.UserHandler.GetAll)
		}

		// Trip routes.
		trips := v1.Group("/trips")
		{
			trips.POST("/start", deps.TripHandler.StartTrip)
			trips.POST("/:id/end", deps.TripHandler.EndTrip)
			trips.POST("/:id/cancel", deps.TripHandler.CancelTrip)
			trips.POST("/:id/distance", deps.TripHandler.RecordDistance)
			trips.GET("/:id", deps.TripHandler.GetActive)
			trips.GET("", deps.TripHandler.GetAllActive)
		}

		// Reporting routes.
		reports := v1.Group("/reports")
		{
			reports.GET("/completed-trips", deps.ReportHandler.GetCompletedTrips)
			reports.GET("/revenue", deps.ReportHandler.GetRevenue)
		}
	}

	return router
}
