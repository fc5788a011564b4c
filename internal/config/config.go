package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Env  string `json:"env"`
	Port int    `json:"port"`
	Host string `json:"host"`

	// Database configuration
	DatabaseURL string `json:"database_url"`
	DBDriver    string `json:"db_driver"`
	DBPath      string `json:"db_path"`
	DBHost      string `json:"db_host"`
	DBPort      string `json:"db_port"`
	DBName      string `json:"db_name"`
	DBUser      string `json:"db_user"`
	DBPassword  string `json:"db_password"`
	DBSSLMode   string `json:"db_sslmode"`

	// Logging configuration
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`

	// Security Configuration
	AuthEnabled bool   `json:"auth_enabled"`
	JWTSecret   string `json:"jwt_secret"`

	// SeedOnStart fills an empty database with sample data when serving
	SeedOnStart bool `json:"seed_on_start"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	db := c.Database()
	return fmt.Sprintf("Config{Env: %s, Port: %d, Host: %s, DatabaseURL: %s, Database: %s, LogLevel: %s, LogFile: %s, AuthEnabled: %t, JWTSecret: [REDACTED], SeedOnStart: %t}",
		c.Env, c.Port, c.Host, maskDatabaseURL(c.DatabaseURL), db.String(), c.LogLevel, c.LogFile, c.AuthEnabled, c.SeedOnStart)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// Address is the host:port the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Database returns the connection settings for database.InitDatabase
func (c *Config) Database() database.DatabaseConfig {
	return database.DatabaseConfig{
		Driver:   c.DBDriver,
		URL:      c.DatabaseURL,
		Path:     c.DBPath,
		Host:     c.DBHost,
		Port:     c.DBPort,
		Name:     c.DBName,
		User:     c.DBUser,
		Password: c.DBPassword,
		SSLMode:  c.DBSSLMode,
	}
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct.
// Values from a .env file in the working directory are used for variables that are not set.
// Returns an error if a variable is malformed or the auth settings are inconsistent.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded environment from .env")
	}

	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, errors.Wrap(err, "APP_PORT must be a number")
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort != "" {
		if _, err := strconv.Atoi(dbPort); err != nil {
			return nil, errors.Wrap(err, "DB_PORT must be a number")
		}
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL != "" {
		if _, err := url.ParseRequestURI(dbURL); err != nil {
			return nil, errors.Wrap(err, "invalid DATABASE_URL format")
		}
	}

	config := &Config{
		Env:         GetEnvWithDefault("APP_ENV", "development"),
		Port:        port,
		Host:        GetEnvWithDefault("APP_HOST", "localhost"),
		DatabaseURL: dbURL,
		DBDriver:    GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBPath:      GetEnvWithDefault("DB_PATH", "restaurants.db"),
		DBHost:      GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:      dbPort,
		DBName:      GetEnvWithDefault("DB_NAME", "restaurants"),
		DBUser:      GetEnvWithDefault("DB_USER", ""),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBSSLMode:   GetEnvWithDefault("DB_SSLMODE", "disable"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		LogFile:     os.Getenv("LOG_FILE"),
		AuthEnabled: GetEnvAsType("AUTH_ENABLED", false),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SeedOnStart: GetEnvAsType("SEED_ON_START", false),
	}

	if config.AuthEnabled && config.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required when AUTH_ENABLED is true")
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
