package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/timedelta-service/internal/domain/port/core"
)

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int   `json:"open_connections"`
	IdleConnections    int   `json:"idle_connections"`
	MaxOpenConnections int   `json:"max_open_connections"`
	InUse              int   `json:"in_use"`
	WaitCount          int64 `json:"wait_count"`
	WaitDurationMs     int64 `json:"wait_duration_ms"`
	MaxIdleClosed      int64 `json:"max_idle_closed"`
	MaxLifetimeClosed  int64 `json:"max_lifetime_closed"`
}

// HealthStatus is the result of a database health check
type HealthStatus struct {
	Healthy   bool                  `json:"healthy"`
	Driver    string                `json:"driver"`
	LatencyMs int64                 `json:"latency_ms"`
	Error     string                `json:"error,omitempty"`
	Pool      ConnectionPoolMetrics `json:"pool"`
}

// ConnectionPoolMonitor periodically samples the connection pool
type ConnectionPoolMonitor struct {
	db           *Manager
	logger       coreport.Logger
	metricsCache *ConnectionPoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
	stopOnce     sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *Manager, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start collects metrics once and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collectMetrics(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.collectMetrics(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring; calling it twice is safe
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
}

// GetMetrics returns the last sampled connection pool metrics
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return ConnectionPoolMetrics{}
	}
	return *m.metricsCache
}

// collectMetrics samples sql.DBStats and warns when the pool is nearly exhausted
func (m *ConnectionPoolMonitor) collectMetrics() error {
	metrics, err := m.db.poolMetrics()
	if err != nil {
		return err
	}

	m.mutex.Lock()
	m.metricsCache = &metrics
	m.mutex.Unlock()

	threshold := float64(metrics.MaxOpenConnections) * 0.8
	if metrics.MaxOpenConnections > 0 && float64(metrics.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":       metrics.InUse,
			"max_open":     metrics.MaxOpenConnections,
			"idle":         metrics.IdleConnections,
			"wait_count":   metrics.WaitCount,
			"wait_time_ms": metrics.WaitDurationMs,
		})
	}

	return nil
}

// poolMetrics reads the current sql.DBStats
func (m *Manager) poolMetrics() (ConnectionPoolMetrics, error) {
	if m.db == nil {
		return ConnectionPoolMetrics{}, ErrNotConnected
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return ConnectionPoolMetrics{}, fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()
	return ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDurationMs:     stats.WaitDuration.Milliseconds(),
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}, nil
}

// Health pings the database within the query timeout and reports pool statistics
func (m *Manager) Health(ctx context.Context) HealthStatus {
	status := HealthStatus{Driver: m.config.Driver}

	if m.db == nil {
		status.Error = ErrNotConnected.Error()
		return status
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		status.Error = err.Error()
		return status
	}

	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()

	start := m.timeProvider.Now()
	err = sqlDB.PingContext(ctx)
	status.LatencyMs = m.timeProvider.Since(start).Std().Milliseconds()
	if err != nil {
		m.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
		status.Error = err.Error()
		return status
	}

	status.Healthy = true
	if metrics, err := m.poolMetrics(); err == nil {
		status.Pool = metrics
	}
	return status
}
