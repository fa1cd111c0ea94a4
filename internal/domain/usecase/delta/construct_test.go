package delta

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/timedelta-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
	"github.com/amirhossein-jamali/timedelta-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timedelta-service/mocks/port/core"
	"github.com/amirhossein-jamali/timedelta-service/mocks/port/persistence"
)

func newTestService(t *testing.T) (*Service, *persistence.MockIntervalRepository, *core.MockTimeProvider, *core.MockLogger) {
	t.Helper()

	mockRepo := persistence.NewMockIntervalRepository(t)
	mockTime := core.NewMockTimeProvider(t)
	mockLogger := core.NewMockLogger(t)
	mockLogger.On("Debug", mock.Anything, mock.Anything).Return().Maybe()

	return NewService(mockRepo, mockTime, mockLogger), mockRepo, mockTime, mockLogger
}

func TestService_Construct(t *testing.T) {
	t.Run("should decompose valid units", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		result, err := service.Construct(context.Background(), usecase.Units{
			Days: 1, Hours: 2, Minutes: 3, Seconds: 4, Milliseconds: 5, Microseconds: 6,
		})

		require.NoError(t, err)
		assert.False(t, result.Negative)
		assert.Equal(t, entity.Fields{Days: 1, Hours: 2, Minutes: 3, Seconds: 4, Milliseconds: 5, Microseconds: 6}, result.Fields)
		assert.Equal(t, result.Fields.Ticks(), result.Ticks)
		assert.Equal(t, "1 day, 02:03:04.005006", result.Text)
	})

	t.Run("should use floored convention for negative units", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		result, err := service.Construct(context.Background(), usecase.Units{Days: -1, Microseconds: -1})

		require.NoError(t, err)
		assert.True(t, result.Negative)
		assert.Equal(t, -(entity.MicrosecondsPerDay + 1), result.Ticks)
		assert.Equal(t, entity.Fields{Days: -2, Hours: 23, Minutes: 59, Seconds: 59, Milliseconds: 999, Microseconds: 999}, result.Fields)
	})

	t.Run("should reject and log field out of range", func(t *testing.T) {
		service, _, _, mockLogger := newTestService(t)
		mockLogger.On("Warn", "Rejected time delta units", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["field"] == "days" && fields["value"] == int64(100_000_000)
		})).Return().Once()

		result, err := service.Construct(context.Background(), usecase.Units{Days: 100_000_000})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrFieldOutOfRange)
	})

	t.Run("should reject combined overflow", func(t *testing.T) {
		service, _, _, mockLogger := newTestService(t)
		mockLogger.On("Warn", "Rejected time delta units", mock.Anything).Return().Once()

		result, err := service.Construct(context.Background(), usecase.Units{Days: entity.MaxDays, Hours: 24})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrTotalOutOfRange)
	})

	t.Run("should stop on cancelled context", func(t *testing.T) {
		service, _, _, _ := newTestService(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := service.Construct(ctx, usecase.Units{Days: 1})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestService_FromMicroseconds(t *testing.T) {
	t.Run("should decompose exact negative day", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		result, err := service.FromMicroseconds(context.Background(), -entity.MicrosecondsPerDay)

		require.NoError(t, err)
		assert.Equal(t, entity.Fields{Days: -1}, result.Fields)
		assert.Equal(t, "-1 day, 00:00:00.000000", result.Text)
	})

	t.Run("should reject total out of range", func(t *testing.T) {
		service, _, _, mockLogger := newTestService(t)
		mockLogger.On("Warn", "Rejected microsecond total", mock.Anything).Return().Once()

		result, err := service.FromMicroseconds(context.Background(), entity.MaxTicks+1)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrTotalOutOfRange)
	})
}

func TestService_Between(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should decompose positive difference", func(t *testing.T) {
		service, _, _, _ := newTestService(t)
		end := start.Add(26*time.Hour + 1500*time.Microsecond)

		result, err := service.Between(context.Background(), start, end)

		require.NoError(t, err)
		assert.Equal(t, entity.Fields{Days: 1, Hours: 2, Milliseconds: 1, Microseconds: 500}, result.Fields)
	})

	t.Run("should decompose negative difference", func(t *testing.T) {
		service, _, _, _ := newTestService(t)
		end := start.Add(-time.Hour)

		result, err := service.Between(context.Background(), start, end)

		require.NoError(t, err)
		assert.True(t, result.Negative)
		assert.Equal(t, entity.Fields{Days: -1, Hours: 23}, result.Fields)
	})

	t.Run("should accept the zero time", func(t *testing.T) {
		service, _, _, _ := newTestService(t)
		epoch := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)

		result, err := service.Between(context.Background(), epoch, epoch.Add(24*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, entity.Fields{Days: 1}, result.Fields)
	})

	t.Run("should reject differences beyond the canonical range", func(t *testing.T) {
		service, _, _, mockLogger := newTestService(t)
		mockLogger.On("Warn", "Rejected microsecond total", mock.Anything).Return().Once()
		far := time.Date(280000, 1, 1, 0, 0, 0, 0, time.UTC)

		_, err := service.Between(context.Background(), start, far)

		assert.ErrorIs(t, err, errs.ErrTotalOutOfRange)
	})
}

func TestService_Since(t *testing.T) {
	service, _, mockTime, _ := newTestService(t)
	now := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	mockTime.EXPECT().Now().Return(now).Once()

	result, err := service.Since(context.Background(), now.Add(-90*time.Minute))

	require.NoError(t, err)
	assert.Equal(t, entity.Fields{Hours: 1, Minutes: 30}, result.Fields)
}

func TestSubMicros(t *testing.T) {
	d, ok := subMicros(10, 3)
	assert.True(t, ok)
	assert.Equal(t, int64(7), d)

	d, ok = subMicros(-10, 3)
	assert.True(t, ok)
	assert.Equal(t, int64(-13), d)

	_, ok = subMicros(math.MaxInt64, -1)
	assert.False(t, ok)

	_, ok = subMicros(math.MinInt64, 1)
	assert.False(t, ok)
}
