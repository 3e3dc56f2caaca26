// Package logger configures the logger used by the golake binaries
package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/golake/golake/config"
)

// New returns a logger set up according to the argument configuration
func New(cfg config.LoggingConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("Invalid log level %q, using 'info'", cfg.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	switch cfg.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		log.Warnf("Invalid log format %q, using 'text'", cfg.Format)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
