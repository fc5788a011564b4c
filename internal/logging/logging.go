// Package logging configures the process wide logrus logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much is logged
type Options struct {
	// Level is a logrus level name. When empty it is derived from Env.
	Level string
	// Env is the APP_ENV value: development, production or anything else.
	Env string
	// File enables a rotated JSON log file next to stdout when set.
	File string
	// Service labels the log statement metrics.
	Service string
}

// Rotation limits for the optional log file
const (
	fileMaxSizeMB  = 50
	fileMaxBackups = 5
	fileMaxAgeDays = 28
)

// Configure applies opts to logger: JSON output, the resolved level, the
// optional rotated file and the Prometheus hook counting log statements.
// Hooks installed earlier are replaced, so calling it twice is safe.
func Configure(logger *logrus.Logger, opts Options) error {
	level, err := ResolveLevel(opts.Level, opts.Env)
	if err != nil {
		return err
	}

	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(level)

	var out io.Writer = os.Stdout
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			return errors.Wrapf(err, "can't create log directory for %s", opts.File)
		}
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    fileMaxSizeMB,
			MaxBackups: fileMaxBackups,
			MaxAge:     fileMaxAgeDays,
		})
	}
	logger.SetOutput(out)

	hooks := make(logrus.LevelHooks)
	hooks.Add(NewPrometheusHook(opts.Service))
	logger.ReplaceHooks(hooks)
	return nil
}

// ResolveLevel parses level, falling back to the environment default:
// debug in development, error in production and info otherwise.
func ResolveLevel(level, env string) (logrus.Level, error) {
	if level != "" {
		parsed, err := logrus.ParseLevel(strings.ToLower(level))
		if err != nil {
			return logrus.InfoLevel, errors.Wrapf(err, "log level %s is not supported", level)
		}
		return parsed, nil
	}

	switch env {
	case "development":
		return logrus.DebugLevel, nil
	case "production":
		return logrus.ErrorLevel, nil
	default:
		return logrus.InfoLevel, nil
	}
}
