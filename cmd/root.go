package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/logging"
)

const serviceName = "gin-restaurant-api"

var rootCmd = &cobra.Command{
	Use:   "restaurant-api",
	Short: "Restaurant API serves restaurants, pizzas and their prices",
	Long: `Restaurant API is a JSON web service over restaurants, pizzas and the
prices each restaurant charges for a pizza. It can also seed sample data and
register OAuth2 clients for the protected routes.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// bootstrap loads the configuration, configures the standard logger and
// returns a migrated database. The caller owns the database handle.
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading configuration")
	}

	err = logging.Configure(logrus.StandardLogger(), logging.Options{
		Level:   cfg.LogLevel,
		Env:     cfg.Env,
		File:    cfg.LogFile,
		Service: serviceName,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "configuring logging")
	}

	db, err := database.InitDatabase(cfg.Database())
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening database")
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, nil, errors.Wrap(err, "migrating database")
	}
	return cfg, db, nil
}
