package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/timedelta-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/model"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func setupRepository(t *testing.T) (*IntervalRepository, *database.TestDBManager) {
	t.Helper()

	testDB := database.NewTestDBManager(t, logger.NewNoopLogger(), nil)
	repo := NewIntervalRepository(testDB.Manager, logger.NewNoopLogger()).
		WithRetryConfig(database.RetryConfig{MaxRetries: 0})
	return repo, testDB
}

func newInterval(t *testing.T, name string, ticks int64, createdAt time.Time) *entity.Interval {
	t.Helper()

	interval, err := entity.RestoreInterval(uuid.NewString(), name, ticks, createdAt)
	require.NoError(t, err)
	return interval
}

func TestIntervalRepository_CreateAndGet(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	td, err := entity.NewTimeDelta(-1, 23, 59, 59, 999, 999)
	require.NoError(t, err)
	interval := &entity.Interval{
		ID:        uuid.NewString(),
		Name:      "almost nothing",
		Delta:     td,
		CreatedAt: baseTime,
	}

	require.NoError(t, repo.Create(ctx, interval))

	byID, err := repo.GetByID(ctx, interval.ID)
	require.NoError(t, err)
	assert.Equal(t, interval.ID, byID.ID)
	assert.Equal(t, interval.Name, byID.Name)
	assert.Equal(t, int64(-1), byID.Delta.Ticks())
	assert.True(t, baseTime.Equal(byID.CreatedAt))

	byName, err := repo.GetByName(ctx, "almost nothing")
	require.NoError(t, err)
	assert.Equal(t, interval.ID, byName.ID)
}

func TestIntervalRepository_ExtremeTicks(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	for _, ticks := range []int64{entity.MaxTicks, entity.MinTicks} {
		interval := newInterval(t, uuid.NewString(), ticks, baseTime)
		require.NoError(t, repo.Create(ctx, interval))

		loaded, err := repo.GetByID(ctx, interval.ID)
		require.NoError(t, err)
		assert.Equal(t, ticks, loaded.Delta.Ticks())
	}
}

func TestIntervalRepository_DuplicateName(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newInterval(t, "lunch", 3_600_000_000, baseTime)))

	err := repo.Create(ctx, newInterval(t, "lunch", 60_000_000, baseTime))
	assert.ErrorIs(t, err, errs.ErrDuplicateInterval)
}

func TestIntervalRepository_NotFound(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, errs.ErrIntervalNotFound)

	_, err = repo.GetByName(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrIntervalNotFound)

	err = repo.Delete(ctx, uuid.NewString())
	assert.ErrorIs(t, err, errs.ErrIntervalNotFound)
}

func TestIntervalRepository_CorruptedRow(t *testing.T) {
	repo, testDB := setupRepository(t)
	ctx := context.Background()

	id := uuid.NewString()
	row := model.Interval{ID: id, Name: "corrupt", Ticks: entity.MaxTicks + 1, CreatedAt: baseTime}
	require.NoError(t, testDB.Manager.DB().Create(&row).Error)

	_, err := repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, errs.ErrInternalServer)

	_, err = repo.List(ctx, 10)
	assert.ErrorIs(t, err, errs.ErrInternalServer)
}

func TestIntervalRepository_List(t *testing.T) {
	repo, testDB := setupRepository(t)
	ctx := context.Background()

	oldest := newInterval(t, "oldest", 1, baseTime)
	middle := newInterval(t, "middle", 2, baseTime.Add(time.Minute))
	newest := newInterval(t, "newest", 3, baseTime.Add(2*time.Minute))
	for _, interval := range []*entity.Interval{middle, oldest, newest} {
		require.NoError(t, repo.Create(ctx, interval))
	}

	all, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "newest", all[0].Name)
	assert.Equal(t, "middle", all[1].Name)
	assert.Equal(t, "oldest", all[2].Name)

	page, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "newest", page[0].Name)

	testDB.TruncateAllTables(t)
	empty, err := repo.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestIntervalRepository_Delete(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	interval := newInterval(t, "to delete", 42, baseTime)
	require.NoError(t, repo.Create(ctx, interval))

	require.NoError(t, repo.Delete(ctx, interval.ID))

	_, err := repo.GetByID(ctx, interval.ID)
	assert.ErrorIs(t, err, errs.ErrIntervalNotFound)
}

func TestIntervalRepository_ClosedDatabase(t *testing.T) {
	repo, testDB := setupRepository(t)
	require.NoError(t, testDB.Manager.Close())

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
}
