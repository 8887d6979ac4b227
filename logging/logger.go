package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus so callers can swap in their own configured instance.
type Logger struct {
	*logrus.Logger
}

// NewLogger creates a JSON logger for the client. The level can be
// overridden with the COINPAYMENTS_LOG_LEVEL environment variable
// (defaults to info so request/response dumps stay out of production logs).
func NewLogger() *Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)

	if lvl := os.Getenv("COINPAYMENTS_LOG_LEVEL"); lvl != "" {
		parsed, err := logrus.ParseLevel(lvl)
		if err != nil {
			log.Warnf("invalid COINPAYMENTS_LOG_LEVEL %q, using info", lvl)
		} else {
			log.SetLevel(parsed)
		}
	}

	return &Logger{log}
}

// FromLogrus wraps an existing logrus instance.
func FromLogrus(log *logrus.Logger) *Logger {
	return &Logger{log}
}
