package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Typesense   TypesenseConfig
	Schedule    ScheduleConfig
	OTEL        OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// TypesenseConfig holds Typesense configuration
type TypesenseConfig struct {
	URL    string
	APIKey string
}

// ScheduleConfig bounds the hour window rendered on facility schedule grids
type ScheduleConfig struct {
	StartHour int
	EndHour   int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "sportmap"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Typesense: TypesenseConfig{
			URL:    getEnv("TYPESENSE_URL", "http://localhost:8108"),
			APIKey: getEnv("TYPESENSE_API_KEY", "xyz"),
		},
		Schedule: ScheduleConfig{
			StartHour: getEnvAsInt("SCHEDULE_START_HOUR", 6),
			EndHour:   getEnvAsInt("SCHEDULE_END_HOUR", 23),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "sportmap-backend"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// Validate checks the loaded configuration at startup. It replaces the legacy
// deployment-diagnostics HTTP endpoints: misconfiguration is reported before
// the server starts serving requests, never through the request path.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("SERVER_PORT %d is out of range", c.Server.Port))
	}
	if c.Database.Host == "" {
		problems = append(problems, "DB_HOST is empty")
	}
	if c.Database.User == "" {
		problems = append(problems, "DB_USER is empty")
	}
	if c.Database.Database == "" {
		problems = append(problems, "DB_NAME is empty")
	}
	if c.Environment == "production" && c.Database.Password == "" {
		problems = append(problems, "DB_PASSWORD must be set in production")
	}
	if c.Schedule.StartHour < 0 || c.Schedule.StartHour > 23 {
		problems = append(problems, fmt.Sprintf("SCHEDULE_START_HOUR %d is out of range", c.Schedule.StartHour))
	}
	if c.Schedule.EndHour < 1 || c.Schedule.EndHour > 24 {
		problems = append(problems, fmt.Sprintf("SCHEDULE_END_HOUR %d is out of range", c.Schedule.EndHour))
	}
	if c.Schedule.StartHour >= c.Schedule.EndHour {
		problems = append(problems, "SCHEDULE_START_HOUR must be before SCHEDULE_END_HOUR")
	}
	if c.OTEL.Enabled && c.OTEL.Endpoint == "" {
		problems = append(problems, "OTEL_ENDPOINT must be set when OTEL_ENABLED is true")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
