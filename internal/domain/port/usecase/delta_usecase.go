package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/timedelta-service/internal/domain/entity"
)

// Units holds unnormalized unit magnitudes for building a time delta
type Units struct {
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
	Microseconds int64
}

// Decomposition is the standardized view of a time delta
type Decomposition struct {
	Ticks    int64
	Negative bool
	Fields   entity.Fields
	Text     string
}

// IntervalView is a persisted interval together with its decomposition
type IntervalView struct {
	ID            string
	Name          string
	CreatedAt     time.Time
	Decomposition Decomposition
}

// DeltaUseCase defines the time delta operations exposed to transports
type DeltaUseCase interface {
	// Construct validates unit magnitudes and decomposes the resulting delta
	Construct(ctx context.Context, units Units) (*Decomposition, error)

	// FromMicroseconds validates a microsecond total and decomposes it
	FromMicroseconds(ctx context.Context, ticks int64) (*Decomposition, error)

	// Between decomposes the delta end - start
	Between(ctx context.Context, start, end time.Time) (*Decomposition, error)

	// Since decomposes the delta from start until now
	Since(ctx context.Context, start time.Time) (*Decomposition, error)

	// SaveInterval builds a delta from units and stores it under a unique name
	SaveInterval(ctx context.Context, name string, units Units) (*IntervalView, error)

	// GetInterval loads a stored interval by ID
	GetInterval(ctx context.Context, id string) (*IntervalView, error)

	// ListIntervals returns stored intervals, newest first
	ListIntervals(ctx context.Context, limit int) ([]*IntervalView, error)

	// DeleteInterval removes a stored interval by ID
	DeleteInterval(ctx context.Context, id string) error
}
