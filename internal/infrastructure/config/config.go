package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment" validate:"required,oneof=development production test"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Delta       DeltaConfig    `mapstructure:"delta"`
}

// ServerConfig contains HTTP server settings. Timeouts are read as seconds.
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout" validate:"required"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout" validate:"required"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout" validate:"required"`
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings.
// Path is only used by the sqlite driver; the network settings only by postgres.
// Connection lifetimes are read as minutes, the other durations as seconds.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver" validate:"required,oneof=postgres sqlite"`
	Path            string        `mapstructure:"path" validate:"required_if=Driver sqlite"`
	Host            string        `mapstructure:"host" validate:"required_if=Driver postgres"`
	Port            string        `mapstructure:"port" validate:"required_if=Driver postgres"`
	Username        string        `mapstructure:"username" validate:"required_if=Driver postgres"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database" validate:"required_if=Driver postgres"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns" validate:"min=0"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns" validate:"min=0"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"`
	QueryTimeout    time.Duration `mapstructure:"queryTimeout" validate:"required"`
	RetryAttempts   int           `mapstructure:"retryAttempts" validate:"min=0"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"required"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=json console"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// DeltaConfig contains limits for the delta and interval endpoints
type DeltaConfig struct {
	DefaultListSize int `mapstructure:"defaultListSize" validate:"min=1"`
	MaxListSize     int `mapstructure:"maxListSize" validate:"min=1,gtefield=DefaultListSize"`
}
