package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the permission service
type Config struct {
	// Database configuration
	DBHost            string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort            string        `envconfig:"DB_PORT" default:"5432"`
	DBUser            string        `envconfig:"DB_USER" default:"postgres"`
	DBPassword        string        `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName            string        `envconfig:"DB_NAME" default:"postgres"`
	DBSSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	DBAutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"false"`

	// Server configuration
	Port        string   `envconfig:"PORT" default:"8080"`
	Environment string   `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string   `envconfig:"LOG_LEVEL" default:"info"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173,http://127.0.0.1:5173"`

	// Graceful shutdown timeout in seconds
	ShutdownTimeout int `envconfig:"SHUTDOWN_TIMEOUT" default:"30"`

	// Operator identity. Tokens are only enforced when AuthRequired is set.
	JWTSecret    string `envconfig:"JWT_SECRET"`
	AuthRequired bool   `envconfig:"AUTH_REQUIRED" default:"false"`

	// Parameter type stamped on permission parameter rows when the request omits it
	DefaultParameterType string `envconfig:"DEFAULT_PARAMETER_TYPE" default:"VENRP"`
}

// Load reads configs/.env (if present) and then the process environment.
// A missing .env file is not an error; the returned bool reports whether it was loaded.
func Load(envFile string) (*Config, bool, error) {
	loaded := godotenv.Load(envFile) == nil

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, loaded, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.AuthRequired && cfg.JWTSecret == "" {
		return nil, loaded, fmt.Errorf("JWT_SECRET is required when AUTH_REQUIRED is set")
	}
	return &cfg, loaded, nil
}

// DSN builds the PostgreSQL connection string
func (c *Config) DSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// ShutdownTimeoutDuration falls back to 30s when the configured value is not positive
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	if c.ShutdownTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.ShutdownTimeout) * time.Second
}
