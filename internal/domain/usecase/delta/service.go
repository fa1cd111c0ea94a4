package delta

import (
	"errors"

	"github.com/amirhossein-jamali/timedelta-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timedelta-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/timedelta-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timedelta-service/internal/domain/port/usecase"
)

// Default limits for interval listing
const (
	DefaultListSize = 50
	MaxListSize     = 500
)

// Service implements the time delta business logic
type Service struct {
	intervalRepo persistence.IntervalRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	defaultListSize int
	maxListSize     int
}

// Option configures a Service
type Option func(*Service)

// WithMaxListSize caps the number of intervals a single list call may return
func WithMaxListSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxListSize = n
		}
	}
}

// WithDefaultListSize sets the page size used when a list call passes no limit
func WithDefaultListSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.defaultListSize = n
		}
	}
}

// NewService creates a new delta service instance
func NewService(
	intervalRepo persistence.IntervalRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		intervalRepo:    intervalRepo,
		timeProvider:    timeProvider,
		logger:          logger,
		defaultListSize: DefaultListSize,
		maxListSize:     MaxListSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.defaultListSize > s.maxListSize {
		s.defaultListSize = s.maxListSize
	}
	return s
}

var _ usecase.DeltaUseCase = (*Service)(nil)

// Decompose builds the standardized view of a time delta
func Decompose(td entity.TimeDelta) *usecase.Decomposition {
	return &usecase.Decomposition{
		Ticks:    td.Ticks(),
		Negative: td.IsNegative(),
		Fields:   td.Fields(),
		Text:     td.String(),
	}
}

// buildDelta validates unit magnitudes and logs rejected input
func (s *Service) buildDelta(units usecase.Units) (entity.TimeDelta, error) {
	td, err := entity.NewTimeDelta(
		units.Days,
		units.Hours,
		units.Minutes,
		units.Seconds,
		units.Milliseconds,
		units.Microseconds,
	)
	if err != nil {
		s.logRangeError("Rejected time delta units", err)
		return entity.TimeDelta{}, err
	}
	return td, nil
}

// logRangeError logs a construction failure with its structured fields
func (s *Service) logRangeError(message string, err error) {
	if rangeErr, ok := errs.AsRangeError(err); ok {
		s.logger.Warn(message, rangeErr.LogFields())
		return
	}
	s.logger.Warn(message, map[string]any{
		"error": err.Error(),
	})
}

// logIntervalError logs repository failures, keeping not-found at debug level
func (s *Service) logIntervalError(message, id, name string, err error) {
	intervalErr := &errs.IntervalError{
		IntervalID: id,
		Name:       name,
		Reason:     message,
		Err:        err,
	}
	if errors.Is(err, errs.ErrIntervalNotFound) {
		s.logger.Debug(message, intervalErr.LogFields())
		return
	}
	s.logger.Error(message, intervalErr.LogFields())
}
