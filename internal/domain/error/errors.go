package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeFieldOutOfRange     = 4001
	CodeTotalOutOfRange     = 4002
	CodeInvalidIntervalName = 4003
	CodeInvalidIntervalID   = 4004
	CodeInvalidTimestamp    = 4005
	CodeIntervalNotFound    = 4040
	CodeDuplicateInterval   = 4090
	CodeConstraintViolation = 4091

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrOutOfRange is the common parent of every time delta range violation
	ErrOutOfRange = errors.New("time delta out of range")

	// ErrFieldOutOfRange is returned when a single unit magnitude exceeds its bound
	ErrFieldOutOfRange = fmt.Errorf("%w: field", ErrOutOfRange)

	// ErrTotalOutOfRange is returned when the combined microsecond total exceeds the canonical bound
	ErrTotalOutOfRange = fmt.Errorf("%w: total", ErrOutOfRange)

	// ErrInvalidIntervalName is returned when an interval name is empty or too long
	ErrInvalidIntervalName = errors.New("invalid interval name")

	// ErrInvalidIntervalID is returned when an interval ID is not a valid UUID
	ErrInvalidIntervalID = errors.New("invalid interval ID")

	// ErrInvalidTimestamp is returned when a timestamp cannot be parsed or is missing
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrIntervalNotFound is returned when the requested interval doesn't exist
	ErrIntervalNotFound = errors.New("interval not found")

	// ErrDuplicateInterval is returned when an interval with the same name already exists
	ErrDuplicateInterval = errors.New("interval with this name already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrFieldOutOfRange):
		return CodeFieldOutOfRange
	case errors.Is(err, ErrTotalOutOfRange):
		return CodeTotalOutOfRange
	case errors.Is(err, ErrInvalidIntervalName):
		return CodeInvalidIntervalName
	case errors.Is(err, ErrInvalidIntervalID):
		return CodeInvalidIntervalID
	case errors.Is(err, ErrInvalidTimestamp):
		return CodeInvalidTimestamp
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrIntervalNotFound):
		return CodeIntervalNotFound
	case errors.Is(err, ErrDuplicateInterval):
		return CodeDuplicateInterval
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// TotalField names the combined microsecond total in a RangeError
const TotalField = "total"

// RangeError describes a rejected time delta construction.
// Field is the offending unit ("days", "hours", ...) or TotalField.
type RangeError struct {
	Field string
	Value int64
	Min   int64
	Max   int64
}

// Error implements the error interface for RangeError
func (e *RangeError) Error() string {
	if e.Field == TotalField {
		return fmt.Sprintf("out of total range: %d microseconds (allowed [%d, %d])", e.Value, e.Min, e.Max)
	}
	return fmt.Sprintf("out of range: input %s %d (allowed [%d, %d])", e.Field, e.Value, e.Min, e.Max)
}

// Is matches ErrTotalOutOfRange or ErrFieldOutOfRange, and ErrOutOfRange for both
func (e *RangeError) Is(target error) bool {
	if target == ErrOutOfRange {
		return true
	}
	if e.Field == TotalField {
		return target == ErrTotalOutOfRange
	}
	return target == ErrFieldOutOfRange
}

// LogFields returns a map of fields for structured logging
func (e *RangeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "range_error",
		"field":      e.Field,
		"value":      e.Value,
		"min":        e.Min,
		"max":        e.Max,
		"error_code": ErrorCode(e),
	}
}

// NewFieldRangeError creates a RangeError for a single unit magnitude
func NewFieldRangeError(field string, value, bound int64) error {
	return &RangeError{
		Field: field,
		Value: value,
		Min:   -bound,
		Max:   bound,
	}
}

// NewTotalRangeError creates a RangeError for the combined microsecond total
func NewTotalRangeError(total, min, max int64) error {
	return &RangeError{
		Field: TotalField,
		Value: total,
		Min:   min,
		Max:   max,
	}
}

// AsRangeError checks whether an error is a RangeError and returns it
func AsRangeError(err error) (*RangeError, bool) {
	var rangeErr *RangeError
	if errors.As(err, &rangeErr) {
		return rangeErr, true
	}
	return nil, false
}

// IntervalError represents an error related to a persisted interval
type IntervalError struct {
	IntervalID string
	Name       string
	Reason     string
	Err        error
}

// Error implements the error interface for IntervalError
func (e *IntervalError) Error() string {
	return fmt.Sprintf("interval error for ID %s (name: %q): %s - %v",
		e.IntervalID, e.Name, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *IntervalError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *IntervalError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "interval_error",
		"interval_id": e.IntervalID,
		"name":        e.Name,
		"reason":      e.Reason,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewIntervalError creates a detailed interval error
func NewIntervalError(intervalID, name, reason string, err error) error {
	return &IntervalError{
		IntervalID: intervalID,
		Name:       name,
		Reason:     reason,
		Err:        err,
	}
}

// IsRangeError checks if the error is any time delta range violation
func IsRangeError(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsDuplicateIntervalError checks if the error is a duplicate interval error
func IsDuplicateIntervalError(err error) bool {
	return errors.Is(err, ErrDuplicateInterval)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrIntervalNotFound)
}

// IsValidationError checks if the error was caused by client input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidIntervalName) ||
		errors.Is(err, ErrInvalidIntervalID) ||
		errors.Is(err, ErrInvalidTimestamp)
}
