package database

import (
	"context"
	"testing"

	coreport "github.com/amirhossein-jamali/timedelta-service/internal/domain/port/core"
	timeprovider "github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/time"
)

// TestDBManager provides a migrated in-memory database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh in-memory SQLite database and migrates it.
// The connection is closed when the test finishes.
func NewTestDBManager(t testing.TB, logger coreport.Logger, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	if timeProvider == nil {
		timeProvider = timeprovider.NewRealTimeProvider()
	}

	config := MemoryConfig()
	manager := NewManager(config, logger, timeProvider)

	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// TruncateAllTables removes every stored interval
func (m *TestDBManager) TruncateAllTables(t testing.TB) {
	t.Helper()

	if err := m.Manager.DB().Exec("DELETE FROM intervals").Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}
