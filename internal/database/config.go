package database

import (
	"fmt"
	"strings"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (sqlite, sqlite-nocgo, postgres, mysql)
	Driver string

	// URL is used verbatim as DSN for postgres and mysql when set
	URL string

	// Server configuration shared by PostgreSQL and MySQL
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string

	// MaxOpenConns caps the pool, 0 means the default of 25
	MaxOpenConns int
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds a Data Source Name string based on the driver.
// SQLite DSNs always switch foreign key enforcement on, which SQLite leaves
// off by default.
func (c *DatabaseConfig) DSN() string {
	switch normalizeDriver(c.Driver) {
	case driverPostgres:
		if c.URL != "" {
			return c.URL
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.portOr("5432"), c.SSLMode)
	case driverMySQL:
		if c.URL != "" {
			return c.URL
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, c.portOr("3306"), c.Name)
	case driverSQLite:
		return withParam(c.Path, "_foreign_keys", "on")
	case driverSQLiteNoCGO:
		return withParam(c.Path, "_pragma", "foreign_keys(1)")
	default:
		return ""
	}
}

func (c *DatabaseConfig) portOr(fallback string) string {
	if c.Port == "" {
		return fallback
	}
	return c.Port
}

// InMemory reports whether the config points at a private SQLite memory database
func (c *DatabaseConfig) InMemory() bool {
	d := normalizeDriver(c.Driver)
	return (d == driverSQLite || d == driverSQLiteNoCGO) && strings.Contains(c.Path, ":memory:")
}

const (
	driverSQLite      = "sqlite"
	driverSQLiteNoCGO = "sqlite-nocgo"
	driverPostgres    = "postgres"
	driverMySQL       = "mysql"
)

func normalizeDriver(driver string) string {
	switch strings.ToLower(driver) {
	case "", "sqlite", "sqlite3":
		return driverSQLite
	case "sqlite-nocgo":
		return driverSQLiteNoCGO
	case "postgres", "postgresql":
		return driverPostgres
	case "mysql", "mariadb":
		return driverMySQL
	default:
		return strings.ToLower(driver)
	}
}

func withParam(dsn, key, value string) string {
	if strings.Contains(dsn, key+"=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + key + "=" + value
}
