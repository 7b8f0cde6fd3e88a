package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger. An unknown level falls back to info.
func (a APP) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(a.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q, using info", a.LogLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
