package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger = newLogger()
	mu     sync.Mutex
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// InitLogger configures the shared logger. Packages grab the logger in their
// init(), so this mutates the existing instance instead of replacing it.
func InitLogger(level logrus.Level, format string) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetLevel(level)
	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// GetLogger returns the process-wide logger.
func GetLogger() *logrus.Logger {
	return logger
}

// ParseLevel is logrus.ParseLevel with a fallback to info.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
