package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/timedelta-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/database"
)

// HealthChecker reports the health of a dependency
type HealthChecker interface {
	Health(ctx context.Context) database.HealthStatus
}

// HealthHandler handles the health endpoint
type HealthHandler struct {
	checker      HealthChecker
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checker HealthChecker, timeProvider coreport.TimeProvider, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		checker:      checker,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := h.checker.Health(c.Request.Context())

	response := dto.HealthResponse{
		Status:    "ok",
		Timestamp: h.timeProvider.Now(),
		Database:  dbStatus,
	}

	if !dbStatus.Healthy {
		h.logger.Warn("Health check failed", map[string]any{
			"driver": dbStatus.Driver,
			"error":  dbStatus.Error,
		})
		response.Status = "unavailable"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
