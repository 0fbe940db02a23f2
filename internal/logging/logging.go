// Package logging wraps a process-wide logrus logger for the matmul CLI.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

// Init initializes the logger with the given level, optional log file and
// console output. An unknown level falls back to info.
func Init(level, logFile string, console bool) error {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var writers []io.Writer
	if console {
		writers = append(writers, os.Stderr)
	}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return err
		}
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return err
		}
		writers = append(writers, file)
	}

	switch len(writers) {
	case 0:
		l.SetOutput(io.Discard)
	case 1:
		l.SetOutput(writers[0])
	default:
		l.SetOutput(io.MultiWriter(writers...))
	}

	log = l
	return nil
}

// Get returns the logger instance, creating a default one on first use.
func Get() *logrus.Logger {
	if log == nil {
		log = logrus.New()
	}
	return log
}

// WithField starts an entry on the shared logger.
func WithField(key string, value any) *logrus.Entry {
	return Get().WithField(key, value)
}

// Convenience functions
func Debugf(format string, args ...any) {
	Get().Debugf(format, args...)
}

func Infof(format string, args ...any) {
	Get().Infof(format, args...)
}

func Warnf(format string, args ...any) {
	Get().Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	Get().Errorf(format, args...)
}
