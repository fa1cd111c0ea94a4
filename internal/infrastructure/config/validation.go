package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/amirhossein-jamali/timedelta-service/internal/domain/port/core"
)

var validate = validator.New()

// Validate checks struct tags first and then the rules tags cannot express
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	if _, err := core.ParseLogLevel(cfg.Logger.Level); err != nil {
		return fmt.Errorf("logger.level: %w", err)
	}

	if cfg.Database.Driver == "sqlite" && cfg.Environment == Production {
		return fmt.Errorf("database.driver: sqlite is not supported in %s", Production)
	}

	for _, origin := range cfg.Server.AllowedOrigins {
		if origin == "*" || strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://") {
			continue
		}
		return fmt.Errorf("server.allowedOrigins: %q must be \"*\" or start with http:// or https://", origin)
	}

	return nil
}

// ProductionWarnings lists settings that are valid but unsafe for production.
// It returns nil outside production.
func ProductionWarnings(cfg *Config) []string {
	if cfg.Environment != Production {
		return nil
	}

	var warnings []string

	switch strings.ToLower(cfg.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
	}

	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if cfg.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}

	for _, origin := range cfg.Server.AllowedOrigins {
		if origin == "*" {
			warnings = append(warnings, "server.allowedOrigins allows every origin")
			break
		}
	}

	return warnings
}

// formatValidationError reports the first failing field with its tag
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		e := validationErrs[0]
		return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
			e.Namespace(), e.Tag(), e.Value())
	}
	return err
}
