package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logrus logger. Unknown levels fall back to info; format is
// "json" or anything else for text.
func New(level, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if out == nil {
		out = os.Stdout
	}
	log.SetOutput(out)

	return log
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
