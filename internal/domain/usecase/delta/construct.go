package delta

import (
	"context"
	"math"
	"time"

	"github.com/amirhossein-jamali/timedelta-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
	"github.com/amirhossein-jamali/timedelta-service/internal/domain/port/usecase"
)

// Construct validates unit magnitudes and decomposes the resulting delta
func (s *Service) Construct(ctx context.Context, units usecase.Units) (*usecase.Decomposition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	td, err := s.buildDelta(units)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Time delta constructed", map[string]any{
		"ticks": td.Ticks(),
		"delta": td.String(),
	})

	return Decompose(td), nil
}

// FromMicroseconds validates a microsecond total and decomposes it
func (s *Service) FromMicroseconds(ctx context.Context, ticks int64) (*usecase.Decomposition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	td, err := entity.TimeDeltaFromMicroseconds(ticks)
	if err != nil {
		s.logRangeError("Rejected microsecond total", err)
		return nil, err
	}

	return Decompose(td), nil
}

// Between decomposes the delta end - start at microsecond resolution
func (s *Service) Between(ctx context.Context, start, end time.Time) (*usecase.Decomposition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ticks, ok := subMicros(end.UnixMicro(), start.UnixMicro())
	if !ok {
		saturated := int64(math.MaxInt64)
		if end.Before(start) {
			saturated = math.MinInt64
		}
		err := errs.NewTotalRangeError(saturated, entity.MinTicks, entity.MaxTicks)
		s.logger.Warn("Timestamp difference overflows", map[string]any{
			"start": start.Format(time.RFC3339Nano),
			"end":   end.Format(time.RFC3339Nano),
		})
		return nil, err
	}

	return s.FromMicroseconds(ctx, ticks)
}

// Since decomposes the delta from start until now
func (s *Service) Since(ctx context.Context, start time.Time) (*usecase.Decomposition, error) {
	return s.Between(ctx, start, s.timeProvider.Now())
}

// subMicros returns a - b and false if the subtraction overflows int64
func subMicros(a, b int64) (int64, bool) {
	d := a - b
	if (a >= 0) != (b >= 0) && (d >= 0) != (a >= 0) {
		return 0, false
	}
	return d, true
}
