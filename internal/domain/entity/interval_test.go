package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
	"github.com/amirhossein-jamali/timedelta-service/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/timedelta-service/mocks/port/core"
)

var _ core.TimeProvider = (*mockcore.MockTimeProvider)(nil)

func TestNewInterval(t *testing.T) {
	now := time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)
	delta, err := NewTimeDelta(0, 1, 30, 0, 0, 0)
	require.NoError(t, err)

	t.Run("valid interval", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now).Once()

		interval, err := NewInterval("  standup  ", delta, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "standup", interval.Name)
		assert.Equal(t, delta, interval.Delta)
		assert.Equal(t, now, interval.CreatedAt)
		_, parseErr := uuid.Parse(interval.ID)
		assert.NoError(t, parseErr)
	})

	t.Run("unique IDs", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now).Twice()

		a, err := NewInterval("a", delta, mockTime)
		require.NoError(t, err)
		b, err := NewInterval("b", delta, mockTime)
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("invalid name", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)

		_, err := NewInterval("", delta, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidIntervalName)
	})
}

func TestRestoreInterval(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	interval, err := RestoreInterval("id", "name", -1, createdAt)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), interval.Delta.Ticks())
	assert.Equal(t, int64(-1), interval.Delta.Days())

	_, err = RestoreInterval("id", "name", MaxTicks+1, createdAt)
	assert.ErrorIs(t, err, errs.ErrTotalOutOfRange)
}

func TestValidateIntervalName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"simple", "coffee", "coffee", false},
		{"trimmed", "\t coffee \n", "coffee", false},
		{"unicode at limit", strings.Repeat("é", MaxIntervalNameLength), strings.Repeat("é", MaxIntervalNameLength), false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"too long", strings.Repeat("x", MaxIntervalNameLength+1), "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateIntervalName(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidIntervalName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestValidateIntervalID(t *testing.T) {
	id := uuid.New()

	got, err := ValidateIntervalID(strings.ToUpper(id.String()))
	require.NoError(t, err)
	assert.Equal(t, id.String(), got)

	_, err = ValidateIntervalID("12345")
	assert.ErrorIs(t, err, errs.ErrInvalidIntervalID)
}
