package delta

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/timedelta-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
	"github.com/amirhossein-jamali/timedelta-service/internal/domain/port/usecase"
)

// toView converts an interval entity into its use case view
func toView(interval *entity.Interval) *usecase.IntervalView {
	return &usecase.IntervalView{
		ID:            interval.ID,
		Name:          interval.Name,
		CreatedAt:     interval.CreatedAt,
		Decomposition: *Decompose(interval.Delta),
	}
}

// SaveInterval builds a delta from units and stores it under a unique name
func (s *Service) SaveInterval(ctx context.Context, name string, units usecase.Units) (*usecase.IntervalView, error) {
	td, err := s.buildDelta(units)
	if err != nil {
		return nil, err
	}

	interval, err := entity.NewInterval(name, td, s.timeProvider)
	if err != nil {
		return nil, err
	}

	// Reject duplicates before hitting the unique index
	existing, err := s.intervalRepo.GetByName(ctx, interval.Name)
	switch {
	case err == nil && existing != nil:
		s.logger.Warn("Interval name already taken", map[string]any{
			"name":        interval.Name,
			"existing_id": existing.ID,
		})
		return nil, errs.ErrDuplicateInterval
	case err != nil && !errors.Is(err, errs.ErrIntervalNotFound):
		s.logIntervalError("Failed to check interval name", "", interval.Name, err)
		return nil, err
	}

	if err := s.intervalRepo.Create(ctx, interval); err != nil {
		s.logIntervalError("Failed to save interval", interval.ID, interval.Name, err)
		return nil, err
	}

	s.logger.Info("Interval saved", map[string]any{
		"interval_id": interval.ID,
		"name":        interval.Name,
		"ticks":       td.Ticks(),
	})

	return toView(interval), nil
}

// GetInterval loads a stored interval by ID
func (s *Service) GetInterval(ctx context.Context, id string) (*usecase.IntervalView, error) {
	id, err := entity.ValidateIntervalID(id)
	if err != nil {
		return nil, err
	}

	interval, err := s.intervalRepo.GetByID(ctx, id)
	if err != nil {
		s.logIntervalError("Failed to get interval", id, "", err)
		return nil, err
	}

	return toView(interval), nil
}

// ListIntervals returns stored intervals, newest first.
// A non-positive limit selects the default page size; larger limits are capped.
func (s *Service) ListIntervals(ctx context.Context, limit int) ([]*usecase.IntervalView, error) {
	if limit <= 0 {
		limit = s.defaultListSize
	}
	if limit > s.maxListSize {
		limit = s.maxListSize
	}

	intervals, err := s.intervalRepo.List(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to list intervals", map[string]any{
			"limit": limit,
			"error": err.Error(),
		})
		return nil, err
	}

	views := make([]*usecase.IntervalView, 0, len(intervals))
	for _, interval := range intervals {
		views = append(views, toView(interval))
	}
	return views, nil
}

// DeleteInterval removes a stored interval by ID
func (s *Service) DeleteInterval(ctx context.Context, id string) error {
	id, err := entity.ValidateIntervalID(id)
	if err != nil {
		return err
	}

	if err := s.intervalRepo.Delete(ctx, id); err != nil {
		s.logIntervalError("Failed to delete interval", id, "", err)
		return err
	}

	s.logger.Info("Interval deleted", map[string]any{
		"interval_id": id,
	})
	return nil
}
