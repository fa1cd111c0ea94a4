package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error.
// Errors that already carry a domain sentinel pass through unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainErr.ErrIntervalNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey) || IsDuplicateKeyError(err):
		return domainErr.ErrDuplicateInterval
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s operation: %s", domainErr.ErrDatabaseConnection, operation, err.Error())
	case isDomainError(err):
		return err
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "not null constraint"):
		return domainErr.ErrConstraintViolation

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "database is closed") ||
		strings.Contains(errMsg, "database is locked"):
		return domainErr.ErrDatabaseConnection

	case strings.Contains(errMsg, "timeout"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return fmt.Errorf("%w: %s operation failed", domainErr.ErrInternalServer, operation)
	}
}

// IsDuplicateKeyError matches unique violations from both PostgreSQL and SQLite
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

func isDomainError(err error) bool {
	return domainErr.ErrorCode(err) != domainErr.CodeInternalServer || errors.Is(err, domainErr.ErrInternalServer)
}
