package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns the diagnostics logger. Parsed lines never go through it.
// An unknown level falls back to warn.
func newLogger(level string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	log.SetLevel(lvl)

	return log
}
