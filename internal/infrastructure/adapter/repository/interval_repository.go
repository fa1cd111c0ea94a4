package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/timedelta-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timedelta-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/timedelta-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/model"
)

// IntervalRepository implements persistence.IntervalRepository using GORM
type IntervalRepository struct {
	manager     *database.Manager
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
	retryConfig database.RetryConfig
}

var _ persistence.IntervalRepository = (*IntervalRepository)(nil)

// NewIntervalRepository creates a new IntervalRepository on a connected manager
func NewIntervalRepository(manager *database.Manager, logger coreport.Logger) *IntervalRepository {
	return &IntervalRepository{
		manager:     manager,
		logger:      logger,
		errorMapper: manager.ErrorMapper(),
		retryConfig: database.DefaultRetryConfig(),
	}
}

// WithRetryConfig overrides the retry policy used for reads
func (r *IntervalRepository) WithRetryConfig(cfg database.RetryConfig) *IntervalRepository {
	r.retryConfig = cfg
	return r
}

// modelToEntity converts an interval row to an entity.
// A stored tick count outside the valid range is reported as an internal error.
func (r *IntervalRepository) modelToEntity(row *model.Interval) (*entity.Interval, error) {
	interval, err := entity.RestoreInterval(row.ID, row.Name, row.Ticks, row.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to restore interval entity", map[string]any{
			"interval_id": row.ID,
			"ticks":       row.Ticks,
			"error":       err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to restore interval %s: %s", errs.ErrInternalServer, row.ID, err.Error())
	}
	return interval, nil
}

func entityToModel(interval *entity.Interval) *model.Interval {
	return &model.Interval{
		ID:        interval.ID,
		Name:      interval.Name,
		Ticks:     interval.Delta.Ticks(),
		CreatedAt: interval.CreatedAt,
	}
}

// handleDatabaseError logs and maps a database error to a domain error
func (r *IntervalRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorMapper.MapError(err, operation)

	logFields := map[string]any{
		"operation": operation,
		"error":     err.Error(),
	}
	for k, v := range fields {
		logFields[k] = v
	}

	switch {
	case errors.Is(mapped, errs.ErrIntervalNotFound):
		r.logger.Debug("Interval not found", logFields)
	case errors.Is(mapped, errs.ErrDuplicateInterval):
		r.logger.Warn("Duplicate interval name", logFields)
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)
	}

	return mapped
}

// db returns a session bound to ctx
func (r *IntervalRepository) db(ctx context.Context) (*gorm.DB, error) {
	db := r.manager.DB()
	if db == nil {
		return nil, database.ErrNotConnected
	}
	return db.WithContext(ctx), nil
}

// Create stores a new interval
func (r *IntervalRepository) Create(ctx context.Context, interval *entity.Interval) error {
	r.logger.Debug("Creating interval", map[string]any{
		"interval_id": interval.ID,
		"name":        interval.Name,
		"ticks":       interval.Delta.Ticks(),
	})

	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	db, err := r.db(ctx)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	if err := db.Create(entityToModel(interval)).Error; err != nil {
		return r.handleDatabaseError("creating interval", err, map[string]any{
			"interval_id": interval.ID,
			"name":        interval.Name,
		})
	}

	return nil
}

// GetByID retrieves an interval by ID
func (r *IntervalRepository) GetByID(ctx context.Context, id string) (*entity.Interval, error) {
	return r.getOne(ctx, "getting interval", map[string]any{"interval_id": id}, func(db *gorm.DB, row *model.Interval) error {
		return db.Where("id = ?", id).First(row).Error
	})
}

// GetByName retrieves an interval by its unique name
func (r *IntervalRepository) GetByName(ctx context.Context, name string) (*entity.Interval, error) {
	return r.getOne(ctx, "getting interval by name", map[string]any{"name": name}, func(db *gorm.DB, row *model.Interval) error {
		return db.Where("name = ?", name).First(row).Error
	})
}

func (r *IntervalRepository) getOne(
	ctx context.Context,
	operation string,
	fields map[string]any,
	query func(db *gorm.DB, row *model.Interval) error,
) (*entity.Interval, error) {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	var row model.Interval
	err := database.RetryOnTransientError(ctx, r.retryConfig, func(ctx context.Context) error {
		db, err := r.db(ctx)
		if err != nil {
			return err
		}
		return query(db, &row)
	}, r.logger)
	if err != nil {
		if errors.Is(err, database.ErrNotConnected) {
			return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		return nil, r.handleDatabaseError(operation, err, fields)
	}

	return r.modelToEntity(&row)
}

// List returns up to limit intervals, newest first.
// Ties on creation time are ordered by ID so paging is stable.
func (r *IntervalRepository) List(ctx context.Context, limit int) ([]*entity.Interval, error) {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	var rows []model.Interval
	err := database.RetryOnTransientError(ctx, r.retryConfig, func(ctx context.Context) error {
		db, err := r.db(ctx)
		if err != nil {
			return err
		}
		return db.Order("created_at desc").Order("id").Limit(limit).Find(&rows).Error
	}, r.logger)
	if err != nil {
		if errors.Is(err, database.ErrNotConnected) {
			return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		return nil, r.handleDatabaseError("listing intervals", err, map[string]any{"limit": limit})
	}

	intervals := make([]*entity.Interval, 0, len(rows))
	for i := range rows {
		interval, err := r.modelToEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}

	r.logger.Debug("Intervals listed", map[string]any{
		"limit": limit,
		"count": len(intervals),
	})

	return intervals, nil
}

// Delete removes an interval by ID
func (r *IntervalRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	db, err := r.db(ctx)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	result := db.Where("id = ?", id).Delete(&model.Interval{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting interval", result.Error, map[string]any{"interval_id": id})
	}
	if result.RowsAffected == 0 {
		return errs.ErrIntervalNotFound
	}

	return nil
}
