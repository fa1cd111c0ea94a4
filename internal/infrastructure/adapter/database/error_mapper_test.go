package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{"not found", gorm.ErrRecordNotFound, domainErr.ErrIntervalNotFound},
		{"wrapped not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), domainErr.ErrIntervalNotFound},
		{"translated duplicate", gorm.ErrDuplicatedKey, domainErr.ErrDuplicateInterval},
		{"sqlite duplicate", errors.New("constraint failed: UNIQUE constraint failed: intervals.name (2067)"), domainErr.ErrDuplicateInterval},
		{"postgres duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "idx_intervals_name" (SQLSTATE 23505)`), domainErr.ErrDuplicateInterval},
		{"check constraint", errors.New(`violates check constraint "chk_intervals_ticks_range"`), domainErr.ErrConstraintViolation},
		{"connection refused", errors.New("dial tcp: connection refused"), domainErr.ErrDatabaseConnection},
		{"deadline", context.DeadlineExceeded, domainErr.ErrDatabaseConnection},
		{"domain passthrough", domainErr.ErrTotalOutOfRange, domainErr.ErrTotalOutOfRange},
		{"unknown", errors.New("something odd"), domainErr.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tc.err, "test"), tc.expected)
		})
	}

	assert.NoError(t, mapper.MapError(nil, "test"))
}
