package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger builds the process logger. level and format are validated by
// parseArgs.
func newLogger(w io.Writer, level, format string) *logrus.Logger {
	l := logrus.New()
	l.Out = w
	if lvl, err := logrus.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	}
	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return l
}
