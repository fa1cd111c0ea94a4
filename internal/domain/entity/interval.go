package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timedelta-service/internal/domain/port/core"
)

// MaxIntervalNameLength defines the maximum number of characters in an interval name
const MaxIntervalNameLength = 128

// Interval is a named, persisted time delta
type Interval struct {
	ID        string    // UUID assigned at creation
	Name      string    // Unique, human readable label
	Delta     TimeDelta // The stored duration
	CreatedAt time.Time // When the interval was created
}

// NewInterval creates a new interval with a fresh ID
func NewInterval(name string, delta TimeDelta, timeProvider coreport.TimeProvider) (*Interval, error) {
	name, err := ValidateIntervalName(name)
	if err != nil {
		return nil, err
	}

	return &Interval{
		ID:        uuid.NewString(),
		Name:      name,
		Delta:     delta,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// RestoreInterval rebuilds an interval from stored values.
// The tick count is re-validated so a corrupted row can never produce an invalid delta.
func RestoreInterval(id, name string, ticks int64, createdAt time.Time) (*Interval, error) {
	delta, err := TimeDeltaFromMicroseconds(ticks)
	if err != nil {
		return nil, err
	}

	return &Interval{
		ID:        id,
		Name:      name,
		Delta:     delta,
		CreatedAt: createdAt,
	}, nil
}

// ValidateIntervalName trims the name and checks its length
func ValidateIntervalName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty value", errs.ErrInvalidIntervalName)
	}
	if utf8.RuneCountInString(name) > MaxIntervalNameLength {
		return "", fmt.Errorf("%w: maximum %d characters allowed", errs.ErrInvalidIntervalName, MaxIntervalNameLength)
	}
	return name, nil
}

// ValidateIntervalID checks that the ID is a UUID and returns its canonical form
func ValidateIntervalID(id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidIntervalID, err.Error())
	}
	return parsed.String(), nil
}
