// ABOUTME: Logrus implementation of the core Logger interface
// ABOUTME: Provides structured logging with level support and pluggable output

package logrus

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface using sirupsen/logrus
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger creates a new logrus-backed logger writing to stdout
func NewLogrusLogger() *LogrusLogger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)

	return &LogrusLogger{log: log}
}

// SetOutput redirects log output, e.g. into a rotating file
func (l *LogrusLogger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

// SetLevel adjusts the minimum logged level. Unknown level names keep the
// current level.
func (l *LogrusLogger) SetLevel(level string) {
	if parsed, err := logrus.ParseLevel(level); err == nil {
		l.log.SetLevel(parsed)
	}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
