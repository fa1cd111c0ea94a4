package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/timedelta-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	deltaHandler *handler.DeltaHandler,
	intervalHandler *handler.IntervalHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Health)

	deltaRoutes := router.Group("/deltas")
	{
		deltaRoutes.POST("", deltaHandler.Construct)
		deltaRoutes.GET("/between", deltaHandler.Between)
		deltaRoutes.GET("/since", deltaHandler.Since)
		deltaRoutes.GET("/:ticks", deltaHandler.FromMicroseconds)
	}

	intervalRoutes := router.Group("/intervals")
	{
		intervalRoutes.POST("", intervalHandler.Create)
		intervalRoutes.GET("", intervalHandler.List)
		intervalRoutes.GET("/:id", intervalHandler.Get)
		intervalRoutes.DELETE("/:id", intervalHandler.Delete)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	allowedOrigins []string,
) {
	// Recovery must wrap everything else
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
