package persistence

import (
	"context"

	"github.com/amirhossein-jamali/timedelta-service/internal/domain/entity"
)

// IntervalRepository defines the methods to store and load named intervals
type IntervalRepository interface {
	// Create stores a new interval
	//
	// Possible errors:
	// - ErrDuplicateInterval: If an interval with the same name already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, interval *entity.Interval) error

	// GetByID retrieves an interval by ID
	// Used for the GET /intervals/{id} endpoint
	//
	// Possible errors:
	// - ErrIntervalNotFound: If no interval has the given ID
	// - ErrInternalServer: If the stored tick count is outside the valid range
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Interval, error)

	// GetByName retrieves an interval by its unique name
	//
	// Possible errors:
	// - ErrIntervalNotFound: If no interval has the given name
	// - ErrDatabaseConnection: If database connection fails
	GetByName(ctx context.Context, name string) (*entity.Interval, error)

	// List returns up to limit intervals, newest first
	List(ctx context.Context, limit int) ([]*entity.Interval, error)

	// Delete removes an interval by ID
	//
	// Possible errors:
	// - ErrIntervalNotFound: If no interval has the given ID
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id string) error
}
