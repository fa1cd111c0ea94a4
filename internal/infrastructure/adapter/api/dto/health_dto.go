package dto

import (
	"time"

	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/database"
)

// HealthResponse represents the service health
type HealthResponse struct {
	Status    string                `json:"status"`
	Timestamp time.Time             `json:"timestamp"`
	Database  database.HealthStatus `json:"database"`
}
