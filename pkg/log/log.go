// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(args ...interface{})
}

var _ Logger = (*logrus.Logger)(nil)

// New returns a Logger writing plain text lines to stderr at info level.
func New() Logger {
	return NewWithLevel(logrus.InfoLevel)
}

// NewWithLevel returns a Logger writing at the given level.
func NewWithLevel(level logrus.Level) Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewWriter returns a debug level Logger writing to w, useful for
// capturing output in tests.
func NewWriter(w io.Writer) Logger {
	l := NewWithLevel(logrus.DebugLevel).(*logrus.Logger)
	l.SetOutput(w)
	return l
}
