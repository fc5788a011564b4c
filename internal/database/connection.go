package database

import (
	"database/sql"
	"time"

	glebarez "github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// ErrUnsupportedDriver is returned for a driver name InitDatabase does not know
var ErrUnsupportedDriver = errors.New("unsupported database driver (supported: sqlite, sqlite-nocgo, postgres, mysql)")

// InitDatabase initializes the database connection based on the provided configuration
// It supports SQLite, PostgreSQL and MySQL with automatic retry logic and connection pooling
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	driver := normalizeDriver(cfg.Driver)

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	dialector, err := openDialector(driver, cfg.DSN())
	if err != nil {
		return nil, err
	}

	// Retry logic: max 5 attempts with exponential backoff
	maxRetries := 5
	retryDelays := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": maxRetries,
		}).Info("Attempting database connection")

		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			var sqlDB *sql.DB
			sqlDB, err = db.DB()
			if err == nil {
				err = sqlDB.Ping()
			}
			if err == nil {
				log.Info("Database connection successful, configuring connection pool")
				configureConnectionPool(sqlDB, cfg)

				log.WithFields(logrus.Fields{
					"db_driver": driver,
					"attempt":   attempt,
				}).Info("Database initialized successfully")
				return db, nil
			}
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt < maxRetries {
			delay := retryDelays[attempt-1]
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}

	return nil, errors.Wrapf(err, "failed to connect to database after %d attempts", maxRetries)
}

func openDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case driverPostgres:
		log.Debug("Connecting to PostgreSQL")
		return postgres.Open(dsn), nil
	case driverMySQL:
		log.Debug("Connecting to MySQL")
		return mysql.Open(dsn), nil
	case driverSQLite:
		log.WithField("dsn", dsn).Debug("Connecting to SQLite")
		return sqlite.Open(dsn), nil
	case driverSQLiteNoCGO:
		log.WithField("dsn", dsn).Debug("Connecting to SQLite (pure Go)")
		return glebarez.Open(dsn), nil
	default:
		return nil, errors.Wrap(ErrUnsupportedDriver, driver)
	}
}

// configureConnectionPool sets up connection pool parameters.
// An in-memory SQLite database lives inside one connection, so the pool is pinned to it.
func configureConnectionPool(sqlDB *sql.DB, cfg DatabaseConfig) {
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 25
	}
	if cfg.InMemory() {
		maxOpen = 1
	}
	maxIdle := 5
	if maxIdle > maxOpen {
		maxIdle = maxOpen
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	if !cfg.InMemory() {
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	log.WithFields(logrus.Fields{
		"max_open_conns": maxOpen,
		"max_idle_conns": maxIdle,
	}).Debug("Connection pool configured")
}

// Migrate creates or updates every table the API needs
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Restaurant{},
		&models.Pizza{},
		&models.RestaurantPizza{},
		&models.User{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate database schema")
	}
	log.Info("Database schema migrated")
	return nil
}

// Close releases the connection pool behind db
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get database instance")
	}
	return sqlDB.Close()
}
